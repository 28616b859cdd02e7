package config

import (
	_ "embed"
)

//go:embed defaults/blitz.yaml
var defaultBlitzYAML []byte

//go:embed defaults/labels.yaml
var defaultLabelsYAML []byte

// DefaultBlitzConfig returns the built-in configuration.
// It matches defaults/blitz.yaml and is used when the embedded YAML fails to parse.
func DefaultBlitzConfig() BlitzConfig {
	return BlitzConfig{
		Field:  FieldConfig{Width: 640, Height: 480},
		Paddle: PaddleConfig{Height: 10},
		Ball:   BallConfig{Radius: 10},
		Bricks: BricksConfig{
			Height:     20,
			Padding:    10,
			OffsetTop:  50,
			OffsetLeft: 30,
			WidthTrim:  10,
			Palette:    []string{"red", "green", "yellow", "orange"},
		},
		Gameplay: GameplayConfig{
			Lives:           3,
			PointsPerLevel:  10,
			MaxBounceDeg:    60,
			RespawnDelay:    45,
			LevelClearDelay: 60,
		},
		Levels: []LevelConfig{
			{Name: "Warm-up", Rows: 3, Cols: 8, PaddleWidth: 80, PaddleSpeed: 10, BallSpeed: 5, BallAngleDeg: 30, BallStart: "bottom"},
			{Name: "Crossfire", Rows: 4, Cols: 9, PaddleWidth: 70, PaddleSpeed: 11, BallSpeed: 6, BallAngleDeg: 30, BallStart: "center"},
			{Name: "Blitz", Rows: 5, Cols: 10, PaddleWidth: 60, PaddleSpeed: 12, BallSpeed: 7, BallAngleDeg: 30, BallStart: "center"},
		},
		Input: InputConfig{HoldTicks: 8},
		Sound: SoundConfig{Enabled: true, Volume: 0.5},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 1200,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 0.5,
			},
		},
		Locale: "en",
	}
}
