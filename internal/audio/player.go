package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/shamyl/Brick-Blitz-Vibe-Coding/internal/config"
)

const sampleRate = beep.SampleRate(44100)

// Player plays sound cues.
type Player interface {
	Play(c Cue)
	Close()
}

// NopPlayer discards every cue. Used when sound is disabled or
// no output device is available.
type NopPlayer struct{}

func (NopPlayer) Play(Cue) {}
func (NopPlayer) Close()   {}

// SpeakerPlayer mixes cues onto the system speaker.
type SpeakerPlayer struct {
	mu     sync.Mutex
	mixer  *beep.Mixer
	volume float64
	closed bool
}

// NewSpeakerPlayer opens the speaker. It returns an error when no audio
// device can be initialised; callers should fall back to NopPlayer.
func NewSpeakerPlayer(cfg config.SoundConfig) (*SpeakerPlayer, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return nil, fmt.Errorf("audio: init speaker: %w", err)
	}

	p := &SpeakerPlayer{
		mixer:  &beep.Mixer{},
		volume: cfg.Volume,
	}
	speaker.Play(p.mixer)
	return p, nil
}

// Play starts a cue. Overlapping cues are mixed.
func (p *SpeakerPlayer) Play(c Cue) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return
	}
	s := Effect(c, sampleRate, p.volume)
	if s == nil {
		return
	}

	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

// Close stops all sounds and releases the device.
func (p *SpeakerPlayer) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return
	}
	p.closed = true

	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
}

// New returns a speaker-backed player, or NopPlayer when sound is
// disabled. The returned error reports why the speaker was not used.
func New(cfg config.SoundConfig) (Player, error) {
	if !cfg.Enabled {
		return NopPlayer{}, nil
	}
	p, err := NewSpeakerPlayer(cfg)
	if err != nil {
		return NopPlayer{}, err
	}
	return p, nil
}

// PlayAll plays every cue in order.
func PlayAll(p Player, cues []Cue) {
	for _, c := range cues {
		p.Play(c)
	}
}
