package tui

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-steps/internal/registry"
	"github.com/vovakirdan/tui-steps/internal/storage"
)

type fakeStore struct {
	fakeRecorder
	top     []storage.ScoreEntry
	recent  []storage.RoundRecord
	high    int
	loadErr error
}

func (s *fakeStore) TopScores(string, int) ([]storage.ScoreEntry, error) {
	return s.top, s.loadErr
}

func (s *fakeStore) RecentRounds(string, int) ([]storage.RoundRecord, error) {
	return s.recent, s.loadErr
}

func (s *fakeStore) HighScore(string) (int, error) {
	return s.high, nil
}

func TestMenuNavigation(t *testing.T) {
	m := NewMenuModel(testRuntime(), "hard", 42)
	if m.Difficulty() != "hard" {
		t.Fatalf("Difficulty() = %q", m.Difficulty())
	}
	if !strings.Contains(m.View(), "best: 42") {
		t.Error("menu should show the best score")
	}

	step := func(key string) tea.Cmd {
		next, cmd := m.Update(keyMsg(key))
		m = next.(MenuModel)
		return cmd
	}

	// Left/right only change difficulty on the difficulty row.
	step("right")
	if m.Difficulty() != "hard" {
		t.Error("difficulty changed from the play row")
	}
	step("down")
	step("right")
	if m.Difficulty() != "fixed" {
		t.Errorf("Difficulty() = %q, expected fixed", m.Difficulty())
	}
	step("right")
	if m.Difficulty() != "" {
		t.Errorf("difficulty should wrap to the config default, got %q", m.Difficulty())
	}

	step("up")
	if cmd := step("enter"); cmd == nil || m.Choice() != MenuChoicePlay {
		t.Errorf("Choice() = %v, expected play", m.Choice())
	}
}

func TestMenuScoresAndQuit(t *testing.T) {
	m := NewMenuModel(testRuntime(), "", 0)
	next, _ := m.Update(keyMsg("tab"))
	if next.(MenuModel).Choice() != MenuChoiceScores {
		t.Error("tab should open the scoreboard")
	}

	next, _ = m.Update(keyMsg("q"))
	if next.(MenuModel).Choice() != MenuChoiceQuit {
		t.Error("q should quit")
	}
}

func TestScoreboardTabs(t *testing.T) {
	created := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	store := &fakeStore{
		top: []storage.ScoreEntry{{Score: 30, CreatedAt: created}, {Score: 10, CreatedAt: created}},
		recent: []storage.RoundRecord{
			{RoundID: "0123456789abcdef", Score: 6, MoveIndex: 6, RoadLength: 5, Overshot: true, CreatedAt: created},
		},
	}

	m := NewScoreboardModel(store, "steps", "Mind Your Step", 80, 24)
	if m.Tab() != TabTopScores || len(m.table.Rows()) != 2 {
		t.Fatalf("top tab rows = %d", len(m.table.Rows()))
	}
	if m.table.Rows()[0][0] != "#1" || m.table.Rows()[0][1] != "30" {
		t.Errorf("first row = %v", m.table.Rows()[0])
	}

	next, _ := m.Update(keyMsg("tab"))
	m = next.(ScoreboardModel)
	if m.Tab() != TabRecentRounds {
		t.Fatal("tab should switch to recent rounds")
	}
	row := m.table.Rows()[0]
	if row[0] != "01234567" || row[2] != "past" {
		t.Errorf("recent row = %v", row)
	}
	if !strings.Contains(m.View(), "Recent rounds") {
		t.Error("view should show the tab names")
	}

	next, cmd := m.Update(keyMsg("esc"))
	m = next.(ScoreboardModel)
	if !m.IsGoingBack() || cmd == nil {
		t.Error("esc should go back")
	}
}

func TestScoreboardEmptyAndErrors(t *testing.T) {
	m := NewScoreboardModel(nil, "steps", "Mind Your Step", 80, 24)
	if !strings.Contains(m.View(), "No rounds recorded yet") {
		t.Error("nil source should show the empty message")
	}

	m = NewScoreboardModel(&fakeStore{loadErr: errors.New("locked")}, "steps", "Mind Your Step", 80, 24)
	if !strings.Contains(m.View(), "locked") {
		t.Error("load errors should be shown")
	}
}

func TestSessionFlow(t *testing.T) {
	store := &fakeStore{high: 7}
	var difficulties []string
	opts := SessionOptions{
		Difficulty: "normal",
		NewGame: func(d string) registry.Game {
			difficulties = append(difficulties, d)
			return &stubGame{}
		},
	}

	var m tea.Model = NewSessionModel(store, testRuntime(), opts)
	send := func(msg tea.Msg) tea.Cmd {
		var cmd tea.Cmd
		m, cmd = m.Update(msg)
		return cmd
	}
	session := func() SessionModel { return m.(SessionModel) }

	if !strings.Contains(session().View(), "best: 7") {
		t.Error("menu should show the stored high score")
	}

	if cmd := send(keyMsg("enter")); cmd == nil {
		t.Fatal("starting a game should start its tick loop")
	}
	if session().screen != screenGame {
		t.Fatalf("screen = %v, expected game", session().screen)
	}
	if difficulties[len(difficulties)-1] != "normal" {
		t.Errorf("game created with difficulty %q", difficulties[len(difficulties)-1])
	}
	if !strings.Contains(session().View(), "stub game") {
		t.Error("session should render the game")
	}

	send(TickMsg{Loop: session().game.loop})
	send(keyMsg("b"))
	if session().screen != screenMenu || session().IsQuitting() {
		t.Fatal("back should return to the menu")
	}

	send(keyMsg("tab"))
	if session().screen != screenScores {
		t.Fatal("tab should open the scoreboard")
	}
	send(keyMsg("b"))
	if session().screen != screenMenu {
		t.Fatal("back from the scoreboard should return to the menu")
	}

	if cmd := send(keyMsg("q")); cmd == nil || !session().IsQuitting() {
		t.Error("q should end the session")
	}
	if session().View() != "" {
		t.Error("view should be empty after quitting")
	}
}
