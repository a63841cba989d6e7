package tui

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-steps/internal/core"
	"github.com/vovakirdan/tui-steps/internal/storage"
)

type stubGame struct {
	resets  int
	resized [2]int
	cfg     core.RuntimeConfig
	actions []core.Action
	state   core.GameState
	next    *core.RoundSummary
}

func (g *stubGame) ID() string    { return "stub" }
func (g *stubGame) Title() string { return "Stub" }

func (g *stubGame) Reset(cfg core.RuntimeConfig) {
	g.resets++
	g.cfg = cfg
}

func (g *stubGame) Step(in core.InputFrame) core.StepResult {
	for a := range in.Actions {
		g.actions = append(g.actions, a)
	}
	res := core.StepResult{State: g.state, Round: g.next}
	g.next = nil
	return res
}

func (g *stubGame) Render(dst *core.Screen) {
	dst.Clear()
	dst.DrawText(0, 0, "stub game")
}

func (g *stubGame) State() core.GameState { return g.state }

type resizableGame struct {
	stubGame
}

func (g *resizableGame) Resize(w, h int) {
	g.resized = [2]int{w, h}
}

type fakeRecorder struct {
	rounds  []storage.RoundRecord
	failAll bool
}

func (r *fakeRecorder) RecordRound(rec storage.RoundRecord) (string, error) {
	if r.failAll {
		return "", errors.New("disk full")
	}
	r.rounds = append(r.rounds, rec)
	return "round-1", nil
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func testRuntime() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1}
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return model, cmd
}

func TestModelReservesHelpRow(t *testing.T) {
	g := &stubGame{}
	m := NewModel(g, nil, testRuntime(), nil)
	m.Init()

	if g.cfg.ScreenH != 23 || g.cfg.ScreenW != 80 {
		t.Errorf("game got %dx%d, expected 80x23", g.cfg.ScreenW, g.cfg.ScreenH)
	}
	view := m.View()
	if !strings.Contains(view, "stub game") || !strings.Contains(view, "quit") {
		t.Errorf("view should contain the game and the key help:\n%s", view)
	}
}

func TestModelMapsKeysToInput(t *testing.T) {
	g := &stubGame{}
	m := NewModel(g, nil, testRuntime(), nil)
	m.Init()

	m, _ = update(t, m, keyMsg("left"))
	m, _ = update(t, m, TickMsg{Loop: m.loop})
	m, _ = update(t, m, keyMsg("d"))
	m, _ = update(t, m, TickMsg{Loop: m.loop})
	m, _ = update(t, m, keyMsg("enter"))
	m, _ = update(t, m, TickMsg{Loop: m.loop})

	want := []core.Action{core.ActionStepOne, core.ActionStepTwo, core.ActionConfirm}
	if len(g.actions) != len(want) {
		t.Fatalf("actions = %v, expected %v", g.actions, want)
	}
	for i := range want {
		if g.actions[i] != want[i] {
			t.Errorf("actions[%d] = %v, expected %v", i, g.actions[i], want[i])
		}
	}

	// The frame is cleared after each tick.
	update(t, m, TickMsg{Loop: m.loop})
	if len(g.actions) != len(want) {
		t.Error("input leaked into the next tick")
	}
}

func TestModelIgnoresForeignTicks(t *testing.T) {
	g := &stubGame{}
	m := NewModel(g, nil, testRuntime(), nil)
	m.Init()

	m, _ = update(t, m, keyMsg("left"))
	_, cmd := update(t, m, TickMsg{Loop: m.loop + 1000})
	if cmd != nil || len(g.actions) != 0 {
		t.Error("tick from another loop should be ignored")
	}
}

func TestModelRecordsFinishedRound(t *testing.T) {
	g := &stubGame{}
	rec := &fakeRecorder{}
	m := NewModel(g, rec, testRuntime(), nil)
	m.Init()

	g.next = &core.RoundSummary{Score: 12, MoveIndex: 11, RoadLength: 500, Seed: 99, Ticks: 300}
	m, _ = update(t, m, TickMsg{Loop: m.loop})
	m, _ = update(t, m, TickMsg{Loop: m.loop})

	if len(rec.rounds) != 1 {
		t.Fatalf("rounds = %v", rec.rounds)
	}
	r := rec.rounds[0]
	if r.GameID != "stub" || r.Score != 12 || r.Seed != 99 || r.RoadLength != 500 || r.MoveIndex != 11 || r.Ticks != 300 {
		t.Errorf("round record = %+v", r)
	}
	if m.LastRoundID() != "round-1" {
		t.Errorf("LastRoundID() = %q", m.LastRoundID())
	}
}

func TestModelSurvivesStorageErrors(t *testing.T) {
	g := &stubGame{}
	m := NewModel(g, &fakeRecorder{failAll: true}, testRuntime(), nil)
	m.Init()

	g.next = &core.RoundSummary{Score: 3}
	m, cmd := update(t, m, TickMsg{Loop: m.loop})
	if cmd == nil {
		t.Error("tick loop should continue after a failed save")
	}
	if m.LastRoundID() != "" {
		t.Error("failed save should not record an ID")
	}
}

func TestModelQuit(t *testing.T) {
	m := NewModel(&stubGame{}, nil, testRuntime(), nil)
	m, cmd := update(t, m, keyMsg("q"))

	if !m.IsQuitting() || cmd == nil {
		t.Error("q should quit")
	}
	if m.View() != "" {
		t.Error("view should be empty after quitting")
	}
}

func TestModelBack(t *testing.T) {
	g := &stubGame{state: core.GameState{Playing: true}}
	m := NewModel(g, nil, testRuntime(), nil).WithBackToMenu()
	m, _ = update(t, m, TickMsg{Loop: m.loop})

	m, _ = update(t, m, keyMsg("b"))
	if m.BackToMenu() {
		t.Fatal("back should be ignored mid-round")
	}

	g.state = core.GameState{Playing: true, Paused: true}
	m, _ = update(t, m, TickMsg{Loop: m.loop})
	m, cmd := update(t, m, keyMsg("b"))
	if !m.BackToMenu() || m.IsQuitting() || cmd != nil {
		t.Error("back while paused should return to the menu")
	}
}

func TestModelBackWithoutMenuQuits(t *testing.T) {
	m := NewModel(&stubGame{}, nil, testRuntime(), nil)
	m, cmd := update(t, m, keyMsg("b"))
	if !m.IsQuitting() || cmd == nil {
		t.Error("back with no parent menu should quit")
	}
}

func TestModelResize(t *testing.T) {
	plain := &stubGame{}
	m := NewModel(plain, nil, testRuntime(), nil)
	m.Init()
	update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	if plain.resets != 2 || plain.cfg.ScreenH != 29 {
		t.Errorf("game without Resize should be reset: resets=%d cfg=%+v", plain.resets, plain.cfg)
	}

	rg := &resizableGame{}
	m = NewModel(rg, nil, testRuntime(), nil)
	m.Init()
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	if rg.resets != 1 || rg.resized != [2]int{100, 29} {
		t.Errorf("resizable game: resets=%d resized=%v", rg.resets, rg.resized)
	}
	if m.screen.Width() != 100 || m.screen.Height() != 29 {
		t.Errorf("screen = %dx%d", m.screen.Width(), m.screen.Height())
	}
}
