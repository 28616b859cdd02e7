// Package config provides YAML-based game configuration loading,
// localized labels and difficulty management.
package config

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidConfig is returned by Validate for unusable configurations.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// BlitzConfig contains all configuration for the game.
type BlitzConfig struct {
	Field      FieldConfig      `yaml:"field"`
	Paddle     PaddleConfig     `yaml:"paddle"`
	Ball       BallConfig       `yaml:"ball"`
	Bricks     BricksConfig     `yaml:"bricks"`
	Gameplay   GameplayConfig   `yaml:"gameplay"`
	Levels     []LevelConfig    `yaml:"levels"`
	Input      InputConfig      `yaml:"input"`
	Sound      SoundConfig      `yaml:"sound"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
	Locale     string           `yaml:"locale"`
}

// FieldConfig is the size of the playfield in field units.
// The window frontend draws one unit per pixel.
type FieldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PaddleConfig holds level-independent paddle geometry.
type PaddleConfig struct {
	Height float64 `yaml:"height"`
}

// BallConfig holds level-independent ball geometry.
type BallConfig struct {
	Radius float64 `yaml:"radius"`
}

// BricksConfig describes the brick grid layout shared by all levels.
type BricksConfig struct {
	Height     float64  `yaml:"height"`
	Padding    float64  `yaml:"padding"`
	OffsetTop  float64  `yaml:"offset_top"`
	OffsetLeft float64  `yaml:"offset_left"`
	WidthTrim  float64  `yaml:"width_trim"` // Subtracted from field_width/cols
	Palette    []string `yaml:"palette"`
}

// GameplayConfig holds rules that are not tied to geometry.
type GameplayConfig struct {
	Lives           int     `yaml:"lives"`
	PointsPerLevel  int     `yaml:"points_per_level"` // Brick points = level * this
	MaxBounceDeg    float64 `yaml:"max_bounce_deg"`   // Paddle deflection at the paddle edge
	RespawnDelay    int     `yaml:"respawn_delay"`    // Ticks the ball waits after a lost life
	LevelClearDelay int     `yaml:"level_clear_delay"`
}

// LevelConfig describes one level.
type LevelConfig struct {
	Name         string  `yaml:"name"`
	Rows         int     `yaml:"rows"`
	Cols         int     `yaml:"cols"`
	PaddleWidth  float64 `yaml:"paddle_width"`
	PaddleSpeed  float64 `yaml:"paddle_speed"`
	BallSpeed    float64 `yaml:"ball_speed"`
	BallAngleDeg float64 `yaml:"ball_angle_deg"`
	BallStart    string  `yaml:"ball_start"` // "bottom" or "center"
}

// InputConfig tunes input handling in the terminal frontend.
type InputConfig struct {
	// HoldTicks is how long a direction key stays held after a press.
	// Terminals report no key releases, so held state is emulated.
	HoldTicks int `yaml:"hold_ticks"`
}

// SoundConfig controls audio cues.
type SoundConfig struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"` // 0.0 to 1.0
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Added to ball speed factor at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI value into a preset. Empty input yields "".
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyNormal:
		return 0.0
	case DifficultyHard:
		return 0.3
	default:
		return 0.0
	}
}

// minLaunchSin is the smallest vertical share of a level's launch direction.
const minLaunchSin = 0.1

// Validate checks that the configuration can drive a game.
func (c BlitzConfig) Validate() error {
	if c.Field.Width <= 0 || c.Field.Height <= 0 {
		return fmt.Errorf("%w: field size %vx%v", ErrInvalidConfig, c.Field.Width, c.Field.Height)
	}
	if c.Ball.Radius <= 0 {
		return fmt.Errorf("%w: ball radius %v", ErrInvalidConfig, c.Ball.Radius)
	}
	if c.Paddle.Height <= 0 {
		return fmt.Errorf("%w: paddle height %v", ErrInvalidConfig, c.Paddle.Height)
	}
	if c.Gameplay.Lives < 1 {
		return fmt.Errorf("%w: lives %d", ErrInvalidConfig, c.Gameplay.Lives)
	}
	if c.Gameplay.MaxBounceDeg <= 0 || c.Gameplay.MaxBounceDeg >= 90 {
		return fmt.Errorf("%w: max bounce %v degrees, want between 0 and 90", ErrInvalidConfig, c.Gameplay.MaxBounceDeg)
	}
	if len(c.Levels) == 0 {
		return fmt.Errorf("%w: no levels defined", ErrInvalidConfig)
	}
	for i, lvl := range c.Levels {
		if lvl.Rows < 1 || lvl.Cols < 1 {
			return fmt.Errorf("%w: level %d grid %dx%d", ErrInvalidConfig, i+1, lvl.Rows, lvl.Cols)
		}
		if lvl.PaddleWidth <= 0 || lvl.PaddleWidth > c.Field.Width {
			return fmt.Errorf("%w: level %d paddle width %v", ErrInvalidConfig, i+1, lvl.PaddleWidth)
		}
		if lvl.BallSpeed <= 0 || lvl.PaddleSpeed <= 0 {
			return fmt.Errorf("%w: level %d speeds must be positive", ErrInvalidConfig, i+1)
		}
		// A flat launch angle never reaches the paddle or the bricks
		if math.Abs(math.Sin(lvl.BallAngleDeg*math.Pi/180)) < minLaunchSin {
			return fmt.Errorf("%w: level %d ball angle %v degrees is too flat", ErrInvalidConfig, i+1, lvl.BallAngleDeg)
		}
		if c.Field.Width/float64(lvl.Cols)-c.Bricks.WidthTrim <= 0 {
			return fmt.Errorf("%w: level %d has %d columns, bricks would have no width", ErrInvalidConfig, i+1, lvl.Cols)
		}
	}
	return nil
}
