package core

// RuntimeConfig contains configuration passed to the game at initialization.
// Frontends fill it from the terminal or window size.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters (terminal) or pixels (window)
	ScreenH  int   // Screen height in characters (terminal) or pixels (window)
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for brick colours, 0 means pick from the clock
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0,
	}
}

// GameState is the externally visible status of a game.
type GameState struct {
	Phase    string // start, playing, paused, gameover, won
	Score    int
	Lives    int
	Level    int  // 1-based
	GameOver bool // True for both gameover and won
	Paused   bool
}

// StepResult is returned by Game.Step after each simulation tick.
type StepResult struct {
	State  GameState
	Events []Event
}

// EventKind identifies something that happened during a tick.
type EventKind int

const (
	EventPaddleHit EventKind = iota
	EventBrickBreak
	EventWallBounce
	EventLifeLost
	EventLevelClear
	EventGameOver
	EventWon
)

// String returns a short name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventPaddleHit:
		return "paddle_hit"
	case EventBrickBreak:
		return "brick_break"
	case EventWallBounce:
		return "wall_bounce"
	case EventLifeLost:
		return "life_lost"
	case EventLevelClear:
		return "level_clear"
	case EventGameOver:
		return "game_over"
	case EventWon:
		return "won"
	default:
		return "unknown"
	}
}

// Event is a single occurrence emitted by the simulation.
type Event struct {
	Kind   EventKind
	Points int // Points scored, for brick breaks
	Level  int // Level the event happened on (1-based)
}
