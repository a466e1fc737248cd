package audio

import (
	"math"
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
)

const (
	bumpFreq     = 110.0
	bumpDuration = 60 * time.Millisecond
	bumpAttack   = 2 * time.Millisecond
	bumpRelease  = 40 * time.Millisecond

	winNoteDuration = 140 * time.Millisecond
	winNoteAttack   = 5 * time.Millisecond
	winNoteRelease  = 90 * time.Millisecond
)

// winNotes is a C major arpeggio, C5 E5 G5 C6
var winNotes = []float64{523.25, 659.25, 783.99, 1046.50}

// oscillator generates raw audio waves
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a finite oscillator for wave generation
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
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase) // Keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies linear attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	totalSamples   int
}

// NewEnvelope wraps s with an attack/release envelope over duration
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer:       s,
		attackSamples:  rate.N(attack),
		releaseSamples: rate.N(release),
		totalSamples:   rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	releaseStart := e.totalSamples - e.releaseSamples
	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		if e.releaseSamples > 0 && e.position >= releaseStart {
			vol = math.Max(0, float64(e.totalSamples-e.position)/float64(e.releaseSamples))
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales a stream linearly; 0 is silent since math.Log2(0) is -Inf
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// CreateBumpSound generates a short low thud for wall contact
func CreateBumpSound(rate beep.SampleRate, vol float64) beep.Streamer {
	osc := NewOscillator(bumpFreq, bumpDuration, WaveSquare, rate)
	shaped := NewEnvelope(osc, bumpDuration, bumpAttack, bumpRelease, rate)
	return newVolume(shaped, vol*0.5)
}

// CreateWinSound generates an ascending arpeggio played when the goal is reached
func CreateWinSound(rate beep.SampleRate, vol float64) beep.Streamer {
	notes := make([]beep.Streamer, 0, len(winNotes))
	for _, freq := range winNotes {
		osc := NewOscillator(freq, winNoteDuration, WaveSine, rate)
		notes = append(notes, NewEnvelope(osc, winNoteDuration, winNoteAttack, winNoteRelease, rate))
	}
	return newVolume(beep.Seq(notes...), vol)
}

// WinSoundDuration is the total length of CreateWinSound
func WinSoundDuration() time.Duration {
	return time.Duration(len(winNotes)) * winNoteDuration
}
