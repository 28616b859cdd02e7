package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"
)

// drain streams s to exhaustion and returns the sample count, or -1 if it
// never ends.
func drain(s beep.Streamer) int {
	buf := make([][2]float64, 512)
	total := 0
	for range 10000 {
		n, ok := s.Stream(buf)
		total += n
		if !ok {
			return total
		}
	}
	return -1
}

func TestOscillatorLength(t *testing.T) {
	rate := beep.SampleRate(44100)
	osc := NewOscillator(440, 100*time.Millisecond, WaveSine, rate)

	if got, want := drain(osc), rate.N(100*time.Millisecond); got != want {
		t.Errorf("streamed %d samples, want %d", got, want)
	}
	if osc.Err() != nil {
		t.Errorf("unexpected error: %v", osc.Err())
	}
}

func TestOscillatorRange(t *testing.T) {
	rate := beep.SampleRate(44100)

	for _, wave := range []WaveType{WaveSine, WaveSquare, WaveSaw, WaveNoise} {
		osc := NewOscillator(220, 50*time.Millisecond, wave, rate)
		samples := make([][2]float64, 200)
		n, ok := osc.Stream(samples)
		if !ok || n != 200 {
			t.Fatalf("wave %d: Stream = (%d, %v), want (200, true)", wave, n, ok)
		}
		for i := range n {
			if samples[i][0] < -1 || samples[i][0] > 1 {
				t.Errorf("wave %d: sample %d out of range: %f", wave, i, samples[i][0])
			}
			if samples[i][0] != samples[i][1] {
				t.Errorf("wave %d: sample %d channels differ", wave, i)
			}
		}
	}
}

func TestOscillatorSquareValues(t *testing.T) {
	rate := beep.SampleRate(44100)
	osc := NewOscillator(220, 50*time.Millisecond, WaveSquare, rate)

	samples := make([][2]float64, 100)
	n, _ := osc.Stream(samples)
	for i := range n {
		if v := samples[i][0]; v != 1 && v != -1 {
			t.Fatalf("sample %d = %f, want ±1", i, v)
		}
	}
}

func TestEnvelopeShape(t *testing.T) {
	rate := beep.SampleRate(44100)
	d := 100 * time.Millisecond
	env := NewEnvelope(NewOscillator(440, d, WaveSquare, rate), d, 10*time.Millisecond, 10*time.Millisecond, rate)

	total := rate.N(d)
	samples := make([][2]float64, total)
	n, _ := env.Stream(samples)
	if n != total {
		t.Fatalf("streamed %d samples, want %d", n, total)
	}

	if samples[0][0] != 0 {
		t.Errorf("first sample = %f, want 0 at start of attack", samples[0][0])
	}
	if mid := math.Abs(samples[total/2][0]); mid != 1 {
		t.Errorf("sustain sample = %f, want full volume", mid)
	}
	if last := math.Abs(samples[total-1][0]); last > 0.01 {
		t.Errorf("last sample = %f, want near silence", last)
	}
}

func TestVolumeSilent(t *testing.T) {
	rate := beep.SampleRate(44100)
	s := newVolume(NewOscillator(440, 10*time.Millisecond, WaveSquare, rate), 0)

	samples := make([][2]float64, 100)
	n, _ := s.Stream(samples)
	for i := range n {
		if samples[i][0] != 0 || samples[i][1] != 0 {
			t.Fatalf("sample %d not silent: %v", i, samples[i])
		}
	}
}

func TestEffectForEveryCue(t *testing.T) {
	rate := beep.SampleRate(44100)

	for _, c := range []Cue{CuePaddleHit, CueBrickBreak, CueLifeLost, CueLevelClear, CueGameOver, CueWon} {
		t.Run(c.String(), func(t *testing.T) {
			s := Effect(c, rate, 0.5)
			if s == nil {
				t.Fatal("Effect returned nil")
			}
			n := drain(s)
			if n <= 0 {
				t.Errorf("effect streamed %d samples", n)
			}
			if n > rate.N(2*time.Second) {
				t.Errorf("effect too long: %d samples", n)
			}
		})
	}

	if Effect(Cue(99), rate, 0.5) != nil {
		t.Error("unknown cue should have no effect")
	}
}

func TestGameOverIsThreeNotes(t *testing.T) {
	rate := beep.SampleRate(44100)
	s := Effect(CueGameOver, rate, 1)

	if got, want := drain(s), 3*rate.N(longDuration); got != want {
		t.Errorf("streamed %d samples, want %d", got, want)
	}
}
