package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-steps/internal/core"
	"github.com/vovakirdan/tui-steps/internal/registry"
	"github.com/vovakirdan/tui-steps/internal/storage"
)

// helpHeight is the number of rows reserved below the game for key help.
const helpHeight = 1

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Recorder persists finished rounds together with their scores.
// *storage.Store satisfies it.
type Recorder interface {
	RecordRound(r storage.RoundRecord) (string, error)
}

// Resizer is implemented by games that can follow a terminal resize
// without restarting.
type Resizer interface {
	Resize(w, h int)
}

// Model is the Bubble Tea model that runs one game.
type Model struct {
	game        registry.Game
	screen      *core.Screen
	recorder    Recorder
	logger      *log.Logger
	config      core.RuntimeConfig
	keys        KeyMap
	help        help.Model
	inputFrame  core.InputFrame
	gameState   core.GameState
	lastRoundID string
	loop        int64
	canGoBack   bool // Back returns to a parent menu instead of quitting
	quitting    bool
	backToMenu  bool
}

// NewModel creates a model for game. rec and logger may be nil.
func NewModel(game registry.Game, rec Recorder, cfg core.RuntimeConfig, logger *log.Logger) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	h := help.New()
	h.Width = cfg.ScreenW

	m := Model{
		game:       game,
		recorder:   rec,
		logger:     logger,
		config:     cfg,
		keys:       DefaultKeyMap(),
		help:       h,
		inputFrame: core.NewInputFrame(),
		loop:       nextLoop(),
	}
	gc := m.gameConfig()
	m.screen = core.NewScreen(gc.ScreenW, gc.ScreenH)
	return m
}

// WithBackToMenu makes the Back key hand control to a parent menu.
func (m Model) WithBackToMenu() Model {
	m.canGoBack = true
	return m
}

// gameConfig is the runtime config with the help row taken off.
func (m Model) gameConfig() core.RuntimeConfig {
	cfg := m.config
	cfg.ScreenH = core.Max(cfg.ScreenH-helpHeight, 0)
	return cfg
}

// Init resets the game and starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.gameConfig())
	return tickCmd(m.loop, m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		if msg.Loop != m.loop {
			return m, nil
		}
		return m.handleTick()
	}

	return m, nil
}

// handleKey maps keyboard input onto the next input frame.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		m.saveScreenshot()
		return m, nil
	}

	switch action := m.keys.Action(msg); action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit

	case core.ActionBack:
		if m.gameState.Playing && !m.gameState.Paused {
			return m, nil
		}
		if !m.canGoBack {
			m.quitting = true
			return m, tea.Quit
		}
		m.backToMenu = true
		return m, nil

	case core.ActionNone:
		return m, nil

	default:
		m.inputFrame.Set(action)
	}

	return m, nil
}

// handleResize follows the terminal size.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.help.Width = msg.Width

	gc := m.gameConfig()
	m.screen.Resize(gc.ScreenW, gc.ScreenH)

	if r, ok := m.game.(Resizer); ok {
		r.Resize(gc.ScreenW, gc.ScreenH)
	} else if !m.gameState.Playing {
		m.game.Reset(gc)
	}

	return m, nil
}

// handleTick runs one simulation step and records a finished round.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	if result.Round != nil {
		m.recordRound(result.Round)
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.loop, m.config.TickRate)
}

// recordRound saves a finished round. Storage errors never stop the game.
func (m *Model) recordRound(r *core.RoundSummary) {
	gameID := m.game.ID()
	m.logger.Info("round finished",
		"game", gameID,
		"score", r.Score,
		"index", r.MoveIndex,
		"seed", r.Seed,
		"overshot", r.Overshot,
	)

	if m.recorder == nil {
		return
	}
	id, err := m.recorder.RecordRound(storage.RoundRecord{
		GameID:     gameID,
		Seed:       r.Seed,
		RoadLength: r.RoadLength,
		Score:      r.Score,
		MoveIndex:  r.MoveIndex,
		Overshot:   r.Overshot,
		Ticks:      r.Ticks,
	})
	if err != nil {
		m.logger.Warn("could not save round", "error", err)
		return
	}
	m.lastRoundID = id
	m.logger.Debug("round saved", "round_id", id)
}

// saveScreenshot writes the current screen to ~/.steps/screenshots.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		return
	}
	dir := filepath.Join(home, ".steps", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		return
	}

	name := fmt.Sprintf("%s_%s.txt", m.game.ID(), time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the game and the key help line.
func (m Model) View() string {
	if m.quitting || m.backToMenu {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// IsQuitting returns true if the user asked to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if the user asked to return to the menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// LastRoundID returns the ID of the most recently saved round.
func (m Model) LastRoundID() string {
	return m.lastRoundID
}

// Run plays game in the alternate screen until the user quits.
// store may be nil, in which case nothing is saved.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) error {
	var rec Recorder
	if store != nil {
		rec = store
	}

	p := tea.NewProgram(
		NewModel(game, rec, cfg, logger),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
