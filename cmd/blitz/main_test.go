package main

import (
	"errors"
	"testing"

	"github.com/shamyl/Brick-Blitz-Vibe-Coding/internal/audio"
)

type closeRecorder struct {
	audio.NopPlayer
	closed int
}

func (r *closeRecorder) Close() { r.closed++ }

func TestWithPlayerClosesOnError(t *testing.T) {
	failed := errors.New("session failed")
	tests := []struct {
		name string
		err  error
	}{
		{"success", nil},
		{"failure", failed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := &closeRecorder{}
			err := withPlayer(rec, func(p audio.Player) error {
				if rec.closed != 0 {
					t.Error("player closed before the session ended")
				}
				return tt.err
			})
			if !errors.Is(err, tt.err) {
				t.Errorf("err = %v, want %v", err, tt.err)
			}
			if rec.closed != 1 {
				t.Errorf("Close called %d times, want 1", rec.closed)
			}
		})
	}
}

func TestRuntimeConfig(t *testing.T) {
	tests := []struct {
		name     string
		fps      int
		seed     int64
		wantRate int
	}{
		{"flags", 30, 7, 30},
		{"zero fps keeps default", 0, 0, 60},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rt := runtimeConfig(tt.fps, tt.seed)
			if rt.TickRate != tt.wantRate || rt.Seed != tt.seed {
				t.Errorf("runtimeConfig = %+v, want rate %d seed %d", rt, tt.wantRate, tt.seed)
			}
			if rt.ScreenW != 80 || rt.ScreenH != 24 {
				t.Errorf("screen = %dx%d, want the 80x24 default", rt.ScreenW, rt.ScreenH)
			}
		})
	}
}
