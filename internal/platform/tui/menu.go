package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-steps/internal/core"
)

// MenuChoice is what the user picked in the launcher menu.
type MenuChoice int

const (
	MenuChoiceNone MenuChoice = iota
	MenuChoicePlay
	MenuChoiceScores
	MenuChoiceQuit
)

// Difficulties lists the presets the menu cycles through.
// The empty preset keeps whatever the config file says.
var Difficulties = []string{"", "easy", "normal", "hard", "fixed"}

const (
	itemPlay = iota
	itemDifficulty
	itemScores
	itemQuit
	itemCount
)

var (
	menuTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	menuActiveStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57")).Padding(0, 1)
	menuItemStyle   = lipgloss.NewStyle().Padding(0, 1)
	menuDimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// MenuModel is the launcher shown before each game.
type MenuModel struct {
	cursor     int
	difficulty int
	best       int
	width      int
	height     int
	config     core.RuntimeConfig
	keys       MenuKeyMap
	help       help.Model
	choice     MenuChoice
}

// NewMenuModel creates a launcher. difficulty preselects a preset and
// best is the stored high score shown under the title.
func NewMenuModel(cfg core.RuntimeConfig, difficulty string, best int) MenuModel {
	idx := 0
	for i, d := range Difficulties {
		if d == difficulty {
			idx = i
		}
	}

	h := help.New()
	h.Width = cfg.ScreenW

	return MenuModel{
		difficulty: idx,
		best:       best,
		width:      cfg.ScreenW,
		height:     cfg.ScreenH,
		config:     cfg,
		keys:       DefaultMenuKeyMap(),
		help:       h,
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.help.Width = msg.Width
	}

	return m, nil
}

func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.choice = MenuChoiceQuit
		return m, tea.Quit

	case key.Matches(msg, m.keys.Scores):
		m.choice = MenuChoiceScores
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		m.cursor = (m.cursor + itemCount - 1) % itemCount

	case key.Matches(msg, m.keys.Down):
		m.cursor = (m.cursor + 1) % itemCount

	case key.Matches(msg, m.keys.Left):
		if m.cursor == itemDifficulty {
			m.difficulty = (m.difficulty + len(Difficulties) - 1) % len(Difficulties)
		}

	case key.Matches(msg, m.keys.Right):
		if m.cursor == itemDifficulty {
			m.difficulty = (m.difficulty + 1) % len(Difficulties)
		}

	case key.Matches(msg, m.keys.Select):
		switch m.cursor {
		case itemPlay:
			m.choice = MenuChoicePlay
			return m, tea.Quit
		case itemDifficulty:
			m.difficulty = (m.difficulty + 1) % len(Difficulties)
		case itemScores:
			m.choice = MenuChoiceScores
			return m, tea.Quit
		case itemQuit:
			m.choice = MenuChoiceQuit
			return m, tea.Quit
		}
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.choice != MenuChoiceNone {
		return ""
	}

	items := []string{
		"Play",
		fmt.Sprintf("Difficulty: < %s >", difficultyLabel(Difficulties[m.difficulty])),
		"High scores",
		"Quit",
	}

	var b strings.Builder
	b.WriteString(menuTitleStyle.Render("M I N D   Y O U R   S T E P"))
	b.WriteString("\n")
	b.WriteString(menuDimStyle.Render(fmt.Sprintf("best: %d", m.best)))
	b.WriteString("\n\n")

	for i, item := range items {
		if i == m.cursor {
			b.WriteString(menuActiveStyle.Render(item))
		} else {
			b.WriteString(menuItemStyle.Render(item))
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(menuDimStyle.Render(m.help.View(m.keys)))

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center, b.String()))
}

// Choice returns what the user picked, or MenuChoiceNone.
func (m MenuModel) Choice() MenuChoice {
	return m.choice
}

// Difficulty returns the selected preset name ("" for the config default).
func (m MenuModel) Difficulty() string {
	return Difficulties[m.difficulty]
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

func difficultyLabel(d string) string {
	if d == "" {
		return "default"
	}
	return d
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, text)
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	Choice     MenuChoice
	Difficulty string
	Config     core.RuntimeConfig
}

// RunMenu shows the launcher and returns the user's choice.
func RunMenu(cfg core.RuntimeConfig, difficulty string, best int) (MenuResult, error) {
	p := tea.NewProgram(
		NewMenuModel(cfg, difficulty, best),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg, Difficulty: difficulty}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok || m.Choice() == MenuChoiceNone {
		return MenuResult{Choice: MenuChoiceQuit, Config: cfg, Difficulty: difficulty}, nil
	}

	return MenuResult{
		Choice:     m.Choice(),
		Difficulty: m.Difficulty(),
		Config:     m.Config(),
	}, nil
}
