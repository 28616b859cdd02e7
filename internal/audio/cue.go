// Package audio plays synthesised sound cues for game events.
package audio

import "github.com/shamyl/Brick-Blitz-Vibe-Coding/internal/core"

// Cue identifies a sound effect.
type Cue int

const (
	CuePaddleHit Cue = iota
	CueBrickBreak
	CueLifeLost
	CueLevelClear
	CueGameOver
	CueWon
)

// String returns the cue name.
func (c Cue) String() string {
	switch c {
	case CuePaddleHit:
		return "paddle_hit"
	case CueBrickBreak:
		return "brick_break"
	case CueLifeLost:
		return "life_lost"
	case CueLevelClear:
		return "level_clear"
	case CueGameOver:
		return "game_over"
	case CueWon:
		return "won"
	default:
		return "unknown"
	}
}

// Cues maps one tick's events to the cues to play, in order.
// Wall bounces are silent, and each cue plays at most once per tick.
func Cues(events []core.Event) []Cue {
	var cues []Cue
	seen := make(map[Cue]bool, len(events))

	for _, e := range events {
		var c Cue
		switch e.Kind {
		case core.EventPaddleHit:
			c = CuePaddleHit
		case core.EventBrickBreak:
			c = CueBrickBreak
		case core.EventLifeLost:
			c = CueLifeLost
		case core.EventLevelClear:
			c = CueLevelClear
		case core.EventGameOver:
			c = CueGameOver
		case core.EventWon:
			c = CueWon
		default:
			continue
		}
		if !seen[c] {
			seen[c] = true
			cues = append(cues, c)
		}
	}
	return cues
}
