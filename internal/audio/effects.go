package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// Cue timings
const (
	shortDuration = 70 * time.Millisecond
	noteDuration  = 120 * time.Millisecond
	longDuration  = 300 * time.Millisecond
	attack        = 5 * time.Millisecond
	release       = 40 * time.Millisecond
)

// oscillator generates a raw wave for a fixed number of samples
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a streamer producing the given wave.
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1 //#nosec G404 -- audio noise
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies a linear attack and release to a stream
type envelope struct {
	streamer     beep.Streamer
	position     int
	attack       int
	release      int
	releaseStart int
	total        int
}

// NewEnvelope shapes s with an attack/release envelope over duration.
func NewEnvelope(s beep.Streamer, duration, att, rel time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	a := rate.N(att)
	r := rate.N(rel)
	return &envelope{
		streamer:     s,
		attack:       a,
		release:      r,
		releaseStart: max(a, total-r),
		total:        total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := range n {
		if e.position >= e.total {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attack {
			vol = float64(e.position) / float64(e.attack)
		}
		if e.position >= e.releaseStart && e.release > 0 {
			vol = math.Max(0, float64(e.total-e.position)/float64(e.release))
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales a stream by a linear gain.
// math.Log2(0) is -Inf, so zero gain is rendered silent instead.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// tone is one shaped note.
func tone(freq float64, d time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewEnvelope(NewOscillator(freq, d, wave, rate), d, attack, release, rate)
}

// melody plays notes back to back.
func melody(freqs []float64, d time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	notes := make([]beep.Streamer, len(freqs))
	for i, f := range freqs {
		notes[i] = tone(f, d, wave, rate)
	}
	return beep.Seq(notes...)
}

// Effect builds the streamer for a cue at the given linear volume.
// It returns nil for unknown cues.
func Effect(c Cue, rate beep.SampleRate, volume float64) beep.Streamer {
	var s beep.Streamer

	switch c {
	case CuePaddleHit:
		s = tone(440, shortDuration, WaveSine, rate)
	case CueBrickBreak:
		// Square click with a noise burst on top
		s = beep.Mix(
			newVolume(tone(880, shortDuration, WaveSquare, rate), 0.6),
			newVolume(tone(0, shortDuration, WaveNoise, rate), 0.3),
		)
	case CueLifeLost:
		s = tone(110, longDuration, WaveSaw, rate)
	case CueLevelClear:
		s = melody([]float64{659.25, 987.77}, noteDuration, WaveSquare, rate)
	case CueGameOver:
		s = melody([]float64{392.00, 329.63, 261.63}, longDuration, WaveSaw, rate)
	case CueWon:
		s = melody([]float64{523.25, 659.25, 783.99, 1046.50}, noteDuration, WaveSquare, rate)
	default:
		return nil
	}
	return newVolume(s, volume)
}
