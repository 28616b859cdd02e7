package config

import (
	"math"
	"testing"
)

func TestDifficultyDisabledKeepsBaseSpeed(t *testing.T) {
	d := NewDifficultyManager(DefaultBlitzConfig().Difficulty)
	if d.IsEnabled() {
		t.Fatal("default difficulty should be disabled")
	}
	if got := d.Speed(5, 10000, 10000); got != 5 {
		t.Errorf("Speed() = %v, expected 5", got)
	}
}

func TestDifficultyScoreProgression(t *testing.T) {
	cfg := DifficultyConfig{
		Enabled:     true,
		Progression: ProgressionConfig{Type: "score", MaxAt: 1000},
		Scaling:     ScalingConfig{SpeedMultiplier: 0.5},
	}
	d := NewDifficultyManager(cfg)

	tests := []struct {
		score int
		level float64
		speed float64
	}{
		{0, 0, 6},
		{500, 0.5, 7.5},
		{1000, 1, 9},
		{5000, 1, 9},
	}
	for _, tc := range tests {
		if got := d.Level(tc.score, 0); math.Abs(got-tc.level) > 1e-9 {
			t.Errorf("Level(%d) = %v, expected %v", tc.score, got, tc.level)
		}
		if got := d.Speed(6, tc.score, 0); math.Abs(got-tc.speed) > 1e-9 {
			t.Errorf("Speed(6, %d) = %v, expected %v", tc.score, got, tc.speed)
		}
	}
}

func TestDifficultyTimeProgressionFromInitialLevel(t *testing.T) {
	cfg := DifficultyConfig{
		Enabled:      true,
		InitialLevel: 0.5,
		Progression:  ProgressionConfig{Type: "time", MaxAt: 100},
	}
	d := NewDifficultyManager(cfg)

	if got := d.Level(0, 0); got != 0.5 {
		t.Errorf("Level at start = %v, expected 0.5", got)
	}
	if got := d.Level(0, 50); math.Abs(got-0.75) > 1e-9 {
		t.Errorf("Level at half time = %v, expected 0.75", got)
	}
}

func TestDifficultyNoneProgression(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{Enabled: true, Progression: ProgressionConfig{Type: "none"}})
	if d.IsEnabled() {
		t.Error("progression type none should report disabled")
	}
}
