// Package blitz implements the Brick Blitz paddle-and-ball game.
package blitz

import (
	"math"
	"math/rand"

	"github.com/shamyl/Brick-Blitz-Vibe-Coding/internal/config"
	"github.com/shamyl/Brick-Blitz-Vibe-Coding/internal/core"
)

// Brick is one target in the level grid.
type Brick struct {
	Rect   core.RectF
	Color  core.Color
	Points int
	Hit    bool
}

// Level is a playable level: a brick layout plus the paddle and ball
// parameters that come with it.
type Level struct {
	Number int // 1-based
	Name   string
	Rows   int
	Cols   int
	Bricks []Brick

	PaddleWidth float64
	PaddleSpeed float64
	BallSpeed   float64
	BallAngle   float64 // Radians
	BallStartX  float64
	BallStartY  float64
}

// Remaining returns the number of bricks not yet hit.
func (l *Level) Remaining() int {
	count := 0
	for _, b := range l.Bricks {
		if !b.Hit {
			count++
		}
	}
	return count
}

// Cleared reports whether every brick has been hit.
func (l *Level) Cleared() bool {
	return l.Remaining() == 0
}

// Restore marks every brick as standing again.
func (l *Level) Restore() {
	for i := range l.Bricks {
		l.Bricks[i].Hit = false
	}
}

// BuildLevels builds every level described by the config.
func BuildLevels(cfg config.BlitzConfig, rng *rand.Rand) []*Level {
	levels := make([]*Level, len(cfg.Levels))
	for i := range cfg.Levels {
		levels[i] = BuildLevel(cfg, i+1, rng)
	}
	return levels
}

// BuildLevel builds level number n (1-based) from the config.
// Brick colours are drawn from the palette using rng.
func BuildLevel(cfg config.BlitzConfig, n int, rng *rand.Rand) *Level {
	lc := cfg.Levels[n-1]
	field := cfg.Field

	lvl := &Level{
		Number:      n,
		Name:        lc.Name,
		Rows:        lc.Rows,
		Cols:        lc.Cols,
		PaddleWidth: lc.PaddleWidth,
		PaddleSpeed: lc.PaddleSpeed,
		BallSpeed:   lc.BallSpeed,
		BallAngle:   NormalizeAngle(lc.BallAngleDeg * math.Pi / 180),
		BallStartX:  field.Width / 2,
	}

	switch lc.BallStart {
	case "bottom":
		lvl.BallStartY = field.Height - 30
	default:
		lvl.BallStartY = field.Height / 2
	}

	lvl.Bricks = layoutBricks(field.Width, lc.Rows, lc.Cols, n*cfg.Gameplay.PointsPerLevel, cfg.Bricks, rng)
	return lvl
}

// layoutBricks places a rows x cols grid, column by column.
// The grid starts at the configured left offset, or is centred when
// that offset would push the last column past the right edge.
func layoutBricks(fieldW float64, rows, cols, points int, bc config.BricksConfig, rng *rand.Rand) []Brick {
	width := math.Floor(fieldW/float64(cols)) - bc.WidthTrim
	gridW := float64(cols)*(width+bc.Padding) - bc.Padding

	left := bc.OffsetLeft
	if left+gridW > fieldW {
		left = math.Max(0, (fieldW-gridW)/2)
	}

	palette := bc.Palette
	if len(palette) == 0 {
		palette = []string{"white"}
	}

	bricks := make([]Brick, 0, rows*cols)
	for c := range cols {
		for r := range rows {
			bricks = append(bricks, Brick{
				Rect: core.NewRectF(
					left+float64(c)*(width+bc.Padding),
					bc.OffsetTop+float64(r)*(bc.Height+bc.Padding),
					width,
					bc.Height,
				),
				Color:  core.ParseColor(palette[rng.Intn(len(palette))]),
				Points: points,
			})
		}
	}
	return bricks
}
