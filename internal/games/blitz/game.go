package blitz

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/shamyl/Brick-Blitz-Vibe-Coding/internal/config"
	"github.com/shamyl/Brick-Blitz-Vibe-Coding/internal/core"
)

// Game phases
const (
	StateStart    = "start"    // Title screen, level can be chosen
	StatePlaying  = "playing"  // Ball in play
	StatePaused   = "paused"   // Frozen until resumed
	StateGameOver = "gameover" // No lives left
	StateWon      = "won"      // Last level cleared
)

var (
	// ErrLevelOutOfRange is returned when selecting a level that does not exist.
	ErrLevelOutOfRange = errors.New("blitz: level out of range")

	// ErrLevelLocked is returned when selecting a level outside the start screen.
	ErrLevelLocked = errors.New("blitz: level can only be chosen before starting")
)

// Glyphs used by the terminal rendering.
const (
	BrickChar  = '█'
	PaddleChar = '▀'
	BallChar   = '●'
)

// Game implements Brick Blitz.
type Game struct {
	levels     []*Level
	levelIndex int
	paddle     *Paddle
	ball       *Ball

	state     string
	score     int
	lives     int
	tickCount int
	waitTicks int // Ball stays put until this reaches zero

	runtime    core.RuntimeConfig
	cfg        config.BlitzConfig
	labels     config.Labels
	difficulty *config.DifficultyManager
	maxBounce  float64 // Radians

	minScreenW     int
	minScreenH     int
	screenTooSmall bool
}

// New creates a game for the given configuration. Call Reset before Step.
func New(cfg config.BlitzConfig) *Game {
	return &Game{cfg: cfg}
}

// Title returns the localized display name.
func (g *Game) Title() string {
	return config.LabelsFor(g.cfg.Locale).Title
}

// Reset builds all levels and returns to the start screen on level 1.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	seed := runtime.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed)) //#nosec G404 -- colours only

	g.labels = config.LabelsFor(g.cfg.Locale)
	g.difficulty = config.NewDifficultyManager(g.cfg.Difficulty)
	g.maxBounce = g.cfg.Gameplay.MaxBounceDeg * math.Pi / 180
	g.levels = BuildLevels(g.cfg, rng)

	g.minScreenW = 30
	g.minScreenH = 15
	g.screenTooSmall = runtime.ScreenW < g.minScreenW || runtime.ScreenH < g.minScreenH

	g.levelIndex = 0
	g.score = 0
	g.lives = g.cfg.Gameplay.Lives
	g.tickCount = 0
	g.waitTicks = 0
	g.placeActors()
	g.state = StateStart
}

// Resize updates the terminal size used by Render without touching
// game progress.
func (g *Game) Resize(w, h int) {
	g.runtime.ScreenW = w
	g.runtime.ScreenH = h
	g.screenTooSmall = w < g.minScreenW || h < g.minScreenH
}

// FieldWidth returns the playfield width in field units.
func (g *Game) FieldWidth() float64 {
	return g.cfg.Field.Width
}

// Labels returns the localized user-facing strings.
func (g *Game) Labels() config.Labels {
	return g.labels
}

// LevelCount returns the number of levels.
func (g *Game) LevelCount() int {
	return len(g.levels)
}

// Level returns the current level.
func (g *Game) Level() *Level {
	return g.levels[g.levelIndex]
}

// SelectLevel chooses the starting level (1-based) on the start screen.
func (g *Game) SelectLevel(n int) error {
	if g.state != StateStart {
		return ErrLevelLocked
	}
	if n < 1 || n > len(g.levels) {
		return fmt.Errorf("%w: %d (have %d)", ErrLevelOutOfRange, n, len(g.levels))
	}
	g.levelIndex = n - 1
	g.placeActors()
	return nil
}

// Start begins play on the selected level with a fresh score and lives.
func (g *Game) Start() {
	for _, lvl := range g.levels {
		lvl.Restore()
	}
	g.score = 0
	g.lives = g.cfg.Gameplay.Lives
	g.tickCount = 0
	g.waitTicks = 0
	g.placeActors()
	g.state = StatePlaying
}

// Pause freezes a running game.
func (g *Game) Pause() {
	if g.state == StatePlaying {
		g.state = StatePaused
	}
}

// Resume continues a paused game.
func (g *Game) Resume() {
	if g.state == StatePaused {
		g.state = StatePlaying
	}
}

// Restart abandons the current game and returns to the start screen on level 1.
func (g *Game) Restart() {
	g.levelIndex = 0
	g.score = 0
	g.lives = g.cfg.Gameplay.Lives
	g.tickCount = 0
	g.waitTicks = 0
	for _, lvl := range g.levels {
		lvl.Restore()
	}
	g.placeActors()
	g.state = StateStart
}

// placeActors centres the paddle and puts the ball at the level's start.
func (g *Game) placeActors() {
	lvl := g.Level()
	field := g.cfg.Field

	g.paddle = &Paddle{
		X:      (field.Width - lvl.PaddleWidth) / 2,
		Y:      field.Height - g.cfg.Paddle.Height,
		Width:  lvl.PaddleWidth,
		Height: g.cfg.Paddle.Height,
		Speed:  lvl.PaddleSpeed,
	}
	g.resetBall()
}

func (g *Game) resetBall() {
	lvl := g.Level()
	g.ball = &Ball{
		X:      lvl.BallStartX,
		Y:      lvl.BallStartY,
		Radius: g.cfg.Ball.Radius,
		Speed:  lvl.BallSpeed,
		Angle:  lvl.BallAngle,
	}
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.screenTooSmall {
		return core.StepResult{State: g.State()}
	}

	if g.handlePhaseInput(in) || g.state != StatePlaying {
		return core.StepResult{State: g.State()}
	}

	g.tickCount++

	// Paddle stays controllable while the ball waits
	g.paddle.Move(in, g.cfg.Field.Width)

	if g.waitTicks > 0 {
		g.waitTicks--
		return core.StepResult{State: g.State()}
	}

	events := g.updateBall()
	return core.StepResult{State: g.State(), Events: events}
}

// handlePhaseInput applies actions that change the phase.
// It returns true when the input consumed the tick.
func (g *Game) handlePhaseInput(in core.InputFrame) bool {
	switch g.state {
	case StateStart:
		switch {
		case in.Has(core.ActionLevelNext):
			_ = g.SelectLevel(g.levelIndex + 2)
			return true
		case in.Has(core.ActionLevelPrev):
			_ = g.SelectLevel(g.levelIndex)
			return true
		case in.Has(core.ActionLaunch), in.Has(core.ActionConfirm):
			g.Start()
			return true
		}

	case StatePlaying:
		switch {
		case in.Has(core.ActionRestart):
			g.Restart()
			return true
		case in.Has(core.ActionPause):
			g.Pause()
			return true
		}

	case StatePaused:
		switch {
		case in.Has(core.ActionRestart):
			g.Restart()
			return true
		case in.Has(core.ActionPause), in.Has(core.ActionConfirm):
			g.Resume()
			return true
		}

	case StateGameOver, StateWon:
		if in.Has(core.ActionRestart) || in.Has(core.ActionConfirm) {
			g.Restart()
			return true
		}
	}
	return false
}

// updateBall moves the ball and resolves walls, paddle, bricks and the
// bottom exit, in that order.
func (g *Game) updateBall() []core.Event {
	var events []core.Event
	level := g.levelIndex + 1
	field := g.cfg.Field

	g.ball.Speed = g.difficulty.Speed(g.Level().BallSpeed, g.score, g.tickCount)
	g.ball.Advance()

	for range BounceWalls(g.ball, field.Width) {
		events = append(events, core.Event{Kind: core.EventWallBounce, Level: level})
	}

	if BouncePaddle(g.ball, g.paddle, g.maxBounce) {
		events = append(events, core.Event{Kind: core.EventPaddleHit, Level: level})
	}

	if idx := BounceBrick(g.ball, g.Level().Bricks); idx >= 0 {
		points := g.Level().Bricks[idx].Points
		g.score += points
		events = append(events, core.Event{Kind: core.EventBrickBreak, Points: points, Level: level})

		if g.Level().Cleared() {
			return append(events, g.handleLevelClear()...)
		}
	}

	if g.ball.Y+g.ball.Radius > field.Height {
		events = append(events, g.handleMiss()...)
	}

	return events
}

// handleMiss handles the ball leaving through the bottom edge.
func (g *Game) handleMiss() []core.Event {
	level := g.levelIndex + 1
	g.lives--
	events := []core.Event{{Kind: core.EventLifeLost, Level: level}}

	if g.lives <= 0 {
		g.lives = 0
		g.state = StateGameOver
		return append(events, core.Event{Kind: core.EventGameOver, Level: level})
	}

	g.resetBall()
	g.waitTicks = g.cfg.Gameplay.RespawnDelay
	return events
}

// handleLevelClear moves to the next level or ends the game as won.
func (g *Game) handleLevelClear() []core.Event {
	level := g.levelIndex + 1
	events := []core.Event{{Kind: core.EventLevelClear, Level: level}}

	if g.levelIndex+1 >= len(g.levels) {
		g.state = StateWon
		return append(events, core.Event{Kind: core.EventWon, Level: level})
	}

	g.levelIndex++
	g.placeActors()
	g.waitTicks = g.cfg.Gameplay.LevelClearDelay
	return events
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Phase:    g.state,
		Score:    g.score,
		Lives:    g.lives,
		Level:    g.levelIndex + 1,
		GameOver: g.state == StateGameOver || g.state == StateWon,
		Paused:   g.state == StatePaused,
	}
}

// Waiting reports whether the ball is held before a respawn or new level.
func (g *Game) Waiting() bool {
	return g.waitTicks > 0
}
