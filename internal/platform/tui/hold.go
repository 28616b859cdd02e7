package tui

import "github.com/shamyl/Brick-Blitz-Vibe-Coding/internal/core"

// HoldLatch turns direction key presses into held state.
// Terminals report presses (and auto-repeats) but never releases, so a
// direction stays held for a fixed number of ticks after the last press.
// Pressing the opposite direction takes over immediately.
type HoldLatch struct {
	ticks     int
	dir       core.Action
	remaining int
}

// NewHoldLatch creates a latch that holds each press for ticks ticks.
func NewHoldLatch(ticks int) *HoldLatch {
	if ticks < 1 {
		ticks = 1
	}
	return &HoldLatch{ticks: ticks}
}

// Press records a direction press.
func (h *HoldLatch) Press(dir core.Action) {
	h.dir = dir
	h.remaining = h.ticks
}

// Release drops any held direction.
func (h *HoldLatch) Release() {
	h.dir = core.ActionNone
	h.remaining = 0
}

// Held returns the direction currently held, or ActionNone.
func (h *HoldLatch) Held() core.Action {
	if h.remaining <= 0 {
		return core.ActionNone
	}
	return h.dir
}

// Apply adds the held direction to the frame and consumes one tick.
func (h *HoldLatch) Apply(frame *core.InputFrame) {
	if dir := h.Held(); dir != core.ActionNone {
		frame.Set(dir)
		h.remaining--
	}
}
