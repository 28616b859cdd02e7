package audio

import (
	"reflect"
	"testing"

	"github.com/shamyl/Brick-Blitz-Vibe-Coding/internal/config"
	"github.com/shamyl/Brick-Blitz-Vibe-Coding/internal/core"
)

func TestCues(t *testing.T) {
	tests := []struct {
		name   string
		events []core.Event
		want   []Cue
	}{
		{"none", nil, nil},
		{"wall bounce is silent", []core.Event{{Kind: core.EventWallBounce}}, nil},
		{
			"paddle then brick",
			[]core.Event{{Kind: core.EventPaddleHit}, {Kind: core.EventBrickBreak}},
			[]Cue{CuePaddleHit, CueBrickBreak},
		},
		{
			"final brick",
			[]core.Event{{Kind: core.EventBrickBreak}, {Kind: core.EventLevelClear}, {Kind: core.EventWon}},
			[]Cue{CueBrickBreak, CueLevelClear, CueWon},
		},
		{
			"last life",
			[]core.Event{{Kind: core.EventWallBounce}, {Kind: core.EventLifeLost}, {Kind: core.EventGameOver}},
			[]Cue{CueLifeLost, CueGameOver},
		},
		{
			"duplicates collapse",
			[]core.Event{{Kind: core.EventBrickBreak}, {Kind: core.EventBrickBreak}},
			[]Cue{CueBrickBreak},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Cues(tt.events); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Cues = %v, want %v", got, tt.want)
			}
		})
	}
}

type recordingPlayer struct {
	played []Cue
}

func (r *recordingPlayer) Play(c Cue) { r.played = append(r.played, c) }
func (r *recordingPlayer) Close()     {}

func TestPlayAll(t *testing.T) {
	p := &recordingPlayer{}
	PlayAll(p, []Cue{CuePaddleHit, CueGameOver})

	if !reflect.DeepEqual(p.played, []Cue{CuePaddleHit, CueGameOver}) {
		t.Errorf("played = %v", p.played)
	}
}

func TestDisabledSoundIsNop(t *testing.T) {
	p, err := New(config.SoundConfig{Enabled: false, Volume: 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := p.(NopPlayer); !ok {
		t.Errorf("player = %T, want NopPlayer", p)
	}
	p.Play(CueWon)
	p.Close()
}
