package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/shamyl/Brick-Blitz-Vibe-Coding/internal/core"
)

// KeySource reports keyboard and cursor state for one frame.
type KeySource interface {
	Pressed(k ebiten.Key) bool
	JustPressed(k ebiten.Key) bool
	Cursor() (x, y int)
	Clicked() bool
}

// ebitenKeys reads the live ebiten input state.
type ebitenKeys struct{}

func (ebitenKeys) Pressed(k ebiten.Key) bool     { return ebiten.IsKeyPressed(k) }
func (ebitenKeys) JustPressed(k ebiten.Key) bool { return inpututil.IsKeyJustPressed(k) }
func (ebitenKeys) Cursor() (int, int)            { return ebiten.CursorPosition() }
func (ebitenKeys) Clicked() bool {
	return inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
}

// one-shot actions and the keys that trigger them
var actionKeys = []struct {
	action core.Action
	keys   []ebiten.Key
}{
	{core.ActionLaunch, []ebiten.Key{ebiten.KeySpace}},
	{core.ActionConfirm, []ebiten.Key{ebiten.KeyEnter, ebiten.KeyNumpadEnter}},
	{core.ActionPause, []ebiten.Key{ebiten.KeyP}},
	{core.ActionRestart, []ebiten.Key{ebiten.KeyR}},
	{core.ActionLevelPrev, []ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyW}},
	{core.ActionLevelNext, []ebiten.Key{ebiten.KeyArrowDown, ebiten.KeyS}},
	{core.ActionQuit, []ebiten.Key{ebiten.KeyQ, ebiten.KeyEscape}},
}

var levelKeys = []ebiten.Key{
	ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3,
	ebiten.KeyDigit4, ebiten.KeyDigit5, ebiten.KeyDigit6,
	ebiten.KeyDigit7, ebiten.KeyDigit8, ebiten.KeyDigit9,
}

// InputReader turns key and cursor state into input frames.
// The pointer steers the paddle after the cursor moves and until a
// direction key is pressed.
type InputReader struct {
	src        KeySource
	lastX      int
	lastY      int
	seenCursor bool
	pointerOn  bool
}

// NewInputReader creates a reader over src.
func NewInputReader(src KeySource) *InputReader {
	return &InputReader{src: src}
}

// Read builds the input frame for this tick.
// The second result is a level number when a digit key was pressed.
func (r *InputReader) Read() (core.InputFrame, int) {
	frame := core.NewInputFrame()

	left := r.src.Pressed(ebiten.KeyArrowLeft) || r.src.Pressed(ebiten.KeyA)
	right := r.src.Pressed(ebiten.KeyArrowRight) || r.src.Pressed(ebiten.KeyD)
	if left {
		frame.Set(core.ActionLeft)
	}
	if right {
		frame.Set(core.ActionRight)
	}
	if left || right {
		r.pointerOn = false
	}

	for _, ak := range actionKeys {
		for _, k := range ak.keys {
			if r.src.JustPressed(k) {
				frame.Set(ak.action)
			}
		}
	}
	if r.src.Clicked() {
		frame.Set(core.ActionLaunch)
	}

	x, y := r.src.Cursor()
	if r.seenCursor && (x != r.lastX || y != r.lastY) {
		r.pointerOn = true
	}
	r.lastX, r.lastY, r.seenCursor = x, y, true
	if r.pointerOn {
		frame.SetPointer(float64(x))
	}

	level := 0
	for i, k := range levelKeys {
		if r.src.JustPressed(k) {
			level = i + 1
		}
	}
	return frame, level
}
