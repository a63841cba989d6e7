// Package tui runs games in the terminal with Bubble Tea. It owns the
// tick loop, key bindings, screen rendering, the launcher menu, the
// scoreboard and the SSH front end.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick. Loop identifies the
// model that scheduled it, so a model never runs another model's ticks.
type TickMsg struct {
	Loop int64
	Time time.Time
}

var loopSeq atomic.Int64

// nextLoop returns a fresh tick loop ID.
func nextLoop() int64 {
	return loopSeq.Add(1)
}

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(loop int64, tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Loop: loop, Time: t}
	})
}
