// Package window runs the game in a desktop window drawn with ebiten.
package window

import (
	"errors"
	"fmt"
	"io"
	"unicode"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/shamyl/Brick-Blitz-Vibe-Coding/internal/audio"
	"github.com/shamyl/Brick-Blitz-Vibe-Coding/internal/config"
	"github.com/shamyl/Brick-Blitz-Vibe-Coding/internal/core"
	"github.com/shamyl/Brick-Blitz-Vibe-Coding/internal/games/blitz"
)

// flashFrames is how long a flash message stays on screen.
const flashFrames = 90

// Options configures a window session.
type Options struct {
	Config  config.BlitzConfig
	Runtime core.RuntimeConfig
	Audio   audio.Player // nil plays nothing
	Logger  *log.Logger  // nil discards
	Keys    KeySource    // nil reads ebiten input
}

// Game adapts a blitz.Game to the ebiten.Game interface.
type Game struct {
	game   *blitz.Game
	input  *InputReader
	player audio.Player
	logger *log.Logger
	labels config.Labels
	state  core.GameState

	flash       string
	flashFrames int
}

// NewGame builds a game on the start screen.
func NewGame(opts Options) *Game {
	if opts.Audio == nil {
		opts.Audio = audio.NopPlayer{}
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Keys == nil {
		opts.Keys = ebitenKeys{}
	}

	// The window draws one pixel per field unit
	rt := opts.Runtime
	rt.ScreenW = int(opts.Config.Field.Width)
	rt.ScreenH = int(opts.Config.Field.Height)

	g := blitz.New(opts.Config)
	g.Reset(rt)

	return &Game{
		game:   g,
		input:  NewInputReader(opts.Keys),
		player: opts.Audio,
		logger: opts.Logger,
		labels: drawableLabels(g.Labels()),
		state:  g.State(),
	}
}

// Update advances the simulation by one frame.
func (w *Game) Update() error {
	frame, level := w.input.Read()
	if frame.Has(core.ActionQuit) {
		return ebiten.Termination
	}

	if level > 0 && w.state.Phase == blitz.StateStart {
		w.selectLevel(level)
	}

	prev := w.state
	result := w.game.Step(frame)
	w.state = result.State

	audio.PlayAll(w.player, audio.Cues(result.Events))
	for _, e := range result.Events {
		if e.Kind == core.EventWallBounce || e.Kind == core.EventPaddleHit || e.Kind == core.EventBrickBreak {
			continue
		}
		w.logger.Info("event", "kind", e.Kind, "level", e.Level, "score", w.state.Score, "lives", w.state.Lives)
	}
	if prev.Phase != w.state.Phase {
		w.logger.Debug("phase", "from", prev.Phase, "to", w.state.Phase)
	}

	if w.flashFrames > 0 {
		w.flashFrames--
	}
	return nil
}

func (w *Game) selectLevel(n int) {
	err := w.game.SelectLevel(n)
	switch {
	case err == nil:
		w.flashFrames = 0
	case errors.Is(err, blitz.ErrLevelOutOfRange):
		w.flash = fmt.Sprintf(w.labels.LevelUnavailable, n)
		w.flashFrames = flashFrames
		w.logger.Debug("level unavailable", "level", n, "err", err)
	}
}

// Draw renders the current frame.
func (w *Game) Draw(screen *ebiten.Image) {
	v := w.game.View()
	v.Labels = w.labels

	flash := ""
	if w.flashFrames > 0 {
		flash = w.flash
	}
	drawFrame(screen, v, flash)
}

// Layout keeps a fixed logical canvas of the field size.
func (w *Game) Layout(_, _ int) (int, int) {
	return int(w.game.View().FieldW), int(w.game.View().FieldH)
}

// State returns the last observed game state.
func (w *Game) State() core.GameState {
	return w.state
}

// Flash returns the visible flash message, if any.
func (w *Game) Flash() string {
	if w.flashFrames > 0 {
		return w.flash
	}
	return ""
}

// drawableLabels falls back to English when a locale needs glyphs the
// bitmap font lacks.
func drawableLabels(l config.Labels) config.Labels {
	for _, s := range []string{
		l.Title, l.Score, l.Lives, l.Level, l.Paused, l.Resume, l.Restart,
		l.GameOver, l.Won, l.PressStart, l.GetReady, l.LevelUnavailable,
		l.TooSmall, l.NeedSize,
	} {
		for _, r := range s {
			if r > unicode.MaxASCII {
				return config.LabelsFor("en")
			}
		}
	}
	return l
}

// Run opens the window and blocks until it is closed.
func Run(opts Options) error {
	g := NewGame(opts)

	ebiten.SetWindowSize(int(opts.Config.Field.Width), int(opts.Config.Field.Height))
	ebiten.SetWindowTitle(g.labels.Title)
	if opts.Runtime.TickRate > 0 {
		ebiten.SetTPS(opts.Runtime.TickRate)
	}

	err := ebiten.RunGame(g)
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}
