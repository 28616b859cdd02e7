// Package tui runs the game in a terminal with Bubble Tea, locally or over SSH.
// It handles the tick loop, input mapping and rendering of the cell buffer.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
// Gen identifies the game the tick loop belongs to, so a loop left over
// from a finished game cannot drive the next one.
type TickMsg struct {
	At  time.Time
	Gen uint64
}

var tickGen atomic.Uint64

// nextTickGen returns a fresh tick loop identifier.
func nextTickGen() uint64 {
	return tickGen.Add(1)
}

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int, gen uint64) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{At: t, Gen: gen}
	})
}
