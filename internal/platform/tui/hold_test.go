package tui

import (
	"testing"

	"github.com/shamyl/Brick-Blitz-Vibe-Coding/internal/core"
)

func TestHoldLatchHoldsForTicks(t *testing.T) {
	h := NewHoldLatch(3)
	h.Press(core.ActionRight)

	for i := range 3 {
		frame := core.NewInputFrame()
		h.Apply(&frame)
		if !frame.Has(core.ActionRight) {
			t.Fatalf("tick %d: expected right held", i)
		}
	}

	frame := core.NewInputFrame()
	h.Apply(&frame)
	if frame.Has(core.ActionRight) {
		t.Error("right should be released after 3 ticks")
	}
	if h.Held() != core.ActionNone {
		t.Errorf("Held = %v, want none", h.Held())
	}
}

func TestHoldLatchRepeatRefreshes(t *testing.T) {
	h := NewHoldLatch(2)
	h.Press(core.ActionLeft)

	frame := core.NewInputFrame()
	h.Apply(&frame)
	h.Press(core.ActionLeft) // Auto-repeat

	for i := range 2 {
		frame := core.NewInputFrame()
		h.Apply(&frame)
		if !frame.Has(core.ActionLeft) {
			t.Fatalf("tick %d after repeat: expected left held", i)
		}
	}
}

func TestHoldLatchOppositeTakesOver(t *testing.T) {
	h := NewHoldLatch(8)
	h.Press(core.ActionLeft)
	h.Press(core.ActionRight)

	frame := core.NewInputFrame()
	h.Apply(&frame)
	if frame.Has(core.ActionLeft) {
		t.Error("left should no longer be held")
	}
	if !frame.Has(core.ActionRight) {
		t.Error("right should be held")
	}
}

func TestHoldLatchRelease(t *testing.T) {
	h := NewHoldLatch(8)
	h.Press(core.ActionLeft)
	h.Release()

	frame := core.NewInputFrame()
	h.Apply(&frame)
	if frame.Has(core.ActionLeft) {
		t.Error("released latch should not hold")
	}
}

func TestHoldLatchMinimumTicks(t *testing.T) {
	h := NewHoldLatch(0)
	h.Press(core.ActionRight)

	frame := core.NewInputFrame()
	h.Apply(&frame)
	if !frame.Has(core.ActionRight) {
		t.Error("a press should hold for at least one tick")
	}
}
