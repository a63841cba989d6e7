package steps

import (
	"fmt"
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-steps/internal/core"
	"github.com/vovakirdan/tui-steps/internal/road"
)

// State is the controller's game state.
type State int

const (
	StateInit State = iota
	StatePlaying
	// StateEnded is declared for completeness; a failed round goes straight
	// back to StateInit with the final score left on the over label.
	StateEnded
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StateInit:
		return "init"
	case StatePlaying:
		return "playing"
	case StateEnded:
		return "ended"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// PlayerController is the player the controller drives.
type PlayerController interface {
	SetInputActive(active bool)
	Reset()
	OnJumpEnd(fn func(moveIndex int))
}

// Scene materializes the road. Spawn is called once per solid tile.
type Scene interface {
	Clear()
	Spawn(index int)
}

// Toggle is a UI element that can be shown or hidden.
type Toggle interface {
	SetActive(active bool)
}

// Label is a UI text display.
type Label interface {
	SetText(text string)
}

// Collaborators are the UI and player objects wired into a Manager.
// Any of them may be nil; calls on a missing collaborator are skipped.
type Collaborators struct {
	Player     PlayerController
	Scene      Scene
	StartMenu  Toggle
	Controls   Toggle
	StepsLabel Label
	OverLabel  Label
}

// ManagerConfig configures a Manager.
type ManagerConfig struct {
	RoadLength      int
	InputDelayTicks int
	Seed            int64       // seeds the per-round road seeds
	Logger          *log.Logger // nil discards
}

// Manager owns the game state machine, the current road and the
// pending input activation.
type Manager struct {
	cfg        ManagerConfig
	c          Collaborators
	logger     *log.Logger
	rng        *rand.Rand
	sched      *core.Scheduler
	activation *core.Task

	state     State
	track     road.Track
	seed      int64
	score     int
	playTicks int
	rounds    int

	lastRound *core.RoundSummary
	finished  *core.RoundSummary
}

// NewManager creates a controller. Call Start to enter the Init state.
func NewManager(cfg ManagerConfig, c Collaborators) *Manager {
	logger := cfg.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Manager{
		cfg:    cfg,
		c:      c,
		logger: logger,
		rng:    rand.New(rand.NewSource(cfg.Seed)),
		sched:  core.NewScheduler(),
		track:  road.Track{},
	}
}

// Start subscribes to the player's landings and enters Init.
func (m *Manager) Start() {
	if m.c.Player != nil {
		m.c.Player.OnJumpEnd(m.OnPlayerJumpEnd)
	}
	m.SetState(StateInit)
}

// SetState transitions to s. Any pending input activation is canceled first,
// so a delayed activation never outlives the state that scheduled it.
func (m *Manager) SetState(s State) {
	m.activation.Cancel()
	m.activation = nil

	m.logger.Debug("state change", "from", m.state, "to", s)
	m.state = s

	switch s {
	case StateInit:
		setActive(m.c.Controls, false)
		m.score = 0
		setText(m.c.StepsLabel, scoreText(0))
		m.init()

	case StatePlaying:
		setText(m.c.OverLabel, "")
		setActive(m.c.Controls, true)
		setActive(m.c.StartMenu, false)
		m.score = 1
		m.playTicks = 0
		setText(m.c.StepsLabel, scoreText(1))

		if player := m.c.Player; player != nil {
			m.activation = m.sched.After(m.cfg.InputDelayTicks, func() {
				m.activation = nil
				player.SetInputActive(true)
			})
		}

	case StateEnded:
	}
}

// init shows the start menu, builds a fresh road and parks the player.
func (m *Manager) init() {
	setActive(m.c.StartMenu, true)
	m.generateRoad()

	if player := m.c.Player; player != nil {
		player.SetInputActive(false)
		player.Reset()
	}
}

// generateRoad replaces the track wholesale and respawns its blocks.
func (m *Manager) generateRoad() {
	if m.c.Scene != nil {
		m.c.Scene.Clear()
	}

	m.seed = m.rng.Int63()
	m.track = road.Generate(m.cfg.RoadLength, road.SeededBits(m.seed))

	if m.c.Scene != nil {
		for _, i := range m.track.Solids() {
			m.c.Scene.Spawn(i)
		}
	}
	m.logger.Debug("road generated", "seed", m.seed, "length", m.track.Len(), "gaps", m.track.Gaps())
}

// StartRound handles the start command. It only has an effect in Init.
func (m *Manager) StartRound() bool {
	if m.state != StateInit {
		return false
	}
	m.rounds++
	m.SetState(StatePlaying)
	return true
}

// OnPlayerJumpEnd scores a landing and ends the round on a gap or overshoot.
func (m *Manager) OnPlayerJumpEnd(moveIndex int) {
	if m.state != StatePlaying {
		m.logger.Debug("landing ignored", "state", m.state, "index", moveIndex)
		return
	}

	m.score = road.DisplayScore(m.track, moveIndex)
	setText(m.c.StepsLabel, scoreText(m.score))

	result := road.CheckResult(m.track, moveIndex)
	if !result.Failed() {
		return
	}

	summary := &core.RoundSummary{
		Score:      result.Score,
		MoveIndex:  moveIndex,
		RoadLength: m.track.Len(),
		Seed:       m.seed,
		Ticks:      m.playTicks,
		Overshot:   moveIndex >= m.track.Len(),
	}
	m.lastRound = summary
	m.finished = summary
	m.logger.Debug("round over", "score", summary.Score, "index", moveIndex, "overshot", summary.Overshot)

	setText(m.c.OverLabel, finalScoreText(result.Score))
	m.SetState(StateInit)
}

// Update advances the controller by one tick.
func (m *Manager) Update() {
	if m.state == StatePlaying {
		m.playTicks++
	}
	m.sched.Advance()
}

// TakeFinishedRound returns the round that ended since the last call, if any.
func (m *Manager) TakeFinishedRound() *core.RoundSummary {
	r := m.finished
	m.finished = nil
	return r
}

// State returns the current state.
func (m *Manager) State() State {
	return m.state
}

// Track returns the current road. Callers must not modify it.
func (m *Manager) Track() road.Track {
	return m.track
}

// Seed returns the seed the current road was generated from.
func (m *Manager) Seed() int64 {
	return m.seed
}

// Score returns the score currently shown on the steps label.
func (m *Manager) Score() int {
	return m.score
}

// PlayTicks returns the ticks spent in the current round.
func (m *Manager) PlayTicks() int {
	return m.playTicks
}

// Rounds returns how many rounds have been started.
func (m *Manager) Rounds() int {
	return m.rounds
}

// LastRound returns the most recent finished round, or nil.
func (m *Manager) LastRound() *core.RoundSummary {
	return m.lastRound
}

// ActivationPending reports whether input activation is still scheduled.
func (m *Manager) ActivationPending() bool {
	return m.activation.Pending()
}

func scoreText(score int) string {
	return fmt.Sprintf("Score: %d", score)
}

func finalScoreText(score int) string {
	return fmt.Sprintf("Final score: %d", score)
}

func setText(l Label, text string) {
	if l != nil {
		l.SetText(text)
	}
}

func setActive(t Toggle, active bool) {
	if t != nil {
		t.SetActive(active)
	}
}
