// Package steps implements Mind Your Step: hop along a procedurally
// generated road one or two tiles at a time without landing in a gap.
package steps

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-steps/internal/config"
	"github.com/vovakirdan/tui-steps/internal/core"
	"github.com/vovakirdan/tui-steps/internal/registry"
)

const (
	// GameID is the registry and storage identifier.
	GameID = "steps"
	// GameTitle is the display name.
	GameTitle = "Mind Your Step"
)

// Game implements registry.Game on top of the Manager.
type Game struct {
	runtime    core.RuntimeConfig
	cfg        config.StepsConfig
	difficulty *config.DifficultyManager
	manager    *Manager
	player     *Player
	scene      *blockScene
	stepsLabel *textLabel
	overLabel  *textLabel
	startMenu  *toggle
	controls   *toggle
	preset     *config.DifficultyPreset // overrides difficultyPreset when set
	paused     bool
	tick       uint64
	best       int // best score this session
}

// configPath stores the custom config path set via CLI
var configPath string
var difficultyPreset config.DifficultyPreset
var logger = log.New(io.Discard)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown values use the config default.
func SetDifficultyPreset(preset string) {
	p, err := config.ParsePreset(preset)
	if err != nil {
		p = ""
	}
	difficultyPreset = p
}

// SetLogger sets the logger new games report state changes to.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

// New creates a new game instance.
func New() *Game {
	return &Game{}
}

// NewWithDifficulty creates a game that loads its config on Reset and
// applies preset instead of the package-wide one. An unknown preset
// keeps the config's own difficulty.
func NewWithDifficulty(preset string) *Game {
	p, err := config.ParsePreset(preset)
	if err != nil {
		logger.Warn("ignoring difficulty", "error", err)
	}
	return &Game{preset: &p}
}

// NewWithConfig creates a game that uses cfg instead of loading one.
func NewWithConfig(cfg config.StepsConfig) *Game {
	return &Game{cfg: cfg}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return GameTitle
}

// Reset loads configuration and starts a fresh controller in Init.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	if g.cfg == (config.StepsConfig{}) {
		cfg, err := config.LoadSteps(configPath)
		if err != nil {
			logger.Warn("using default config", "error", err)
			cfg = config.DefaultStepsConfig()
		}
		preset := difficultyPreset
		if g.preset != nil {
			preset = *g.preset
		}
		config.ApplyPreset(&cfg, preset)
		g.cfg = cfg
	}
	if err := g.cfg.Validate(); err != nil {
		logger.Warn("using default config", "error", err)
		g.cfg = config.DefaultStepsConfig()
	}

	g.difficulty = config.NewDifficultyManager(g.cfg.Difficulty)
	g.player = NewPlayer(g.cfg.Player.JumpTicks)
	g.scene = &blockScene{}
	g.stepsLabel = &textLabel{}
	g.overLabel = &textLabel{}
	g.startMenu = &toggle{}
	g.controls = &toggle{}
	g.paused = false
	g.tick = 0

	g.manager = NewManager(ManagerConfig{
		RoadLength:      g.cfg.Road.Length,
		InputDelayTicks: g.cfg.Player.InputDelayTicks,
		Seed:            runtime.Seed,
		Logger:          logger,
	}, Collaborators{
		Player:     g.player,
		Scene:      g.scene,
		StartMenu:  g.startMenu,
		Controls:   g.controls,
		StepsLabel: g.stepsLabel,
		OverLabel:  g.overLabel,
	})
	g.manager.Start()
}

// Resize adapts to a new screen size without disturbing the round.
func (g *Game) Resize(w, h int) {
	g.runtime.ScreenW = w
	g.runtime.ScreenH = h
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionPause) && g.manager.State() == StatePlaying {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.tick++

	started := false
	switch g.manager.State() {
	case StateInit:
		if in.Has(core.ActionConfirm) {
			started = g.manager.StartRound()
		}
	case StatePlaying:
		g.player.SetJumpTicks(g.difficulty.JumpTicks(g.cfg.Player.JumpTicks, g.manager.Score(), g.manager.PlayTicks()))
		switch {
		case in.Has(core.ActionStepOne):
			g.player.Jump(1)
		case in.Has(core.ActionStepTwo):
			g.player.Jump(2)
		}
	}

	g.player.Update()
	// The start tick does not count towards the input delay.
	if !started {
		g.manager.Update()
	}

	result := core.StepResult{}
	if round := g.manager.TakeFinishedRound(); round != nil {
		if round.Score > g.best {
			g.best = round.Score
		}
		result.Round = round
	}
	result.State = g.State()
	return result
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:   g.manager.Score(),
		Playing: g.manager.State() == StatePlaying,
		Paused:  g.paused,
	}
}

// Manager exposes the controller for inspection.
func (g *Game) Manager() *Manager {
	return g.manager
}

// Register the game with the registry
func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
}
