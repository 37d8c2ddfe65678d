package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// Wave defines oscillator wave shapes.
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveTriangle
	WaveSaw
)

// floorGain is the level every tone decays to at its end.
const floorGain = 0.01

// sweep is a tone whose frequency ramps exponentially from 'from' to 'to'
// while its amplitude decays exponentially from gain to floorGain.
type sweep struct {
	wave     Wave
	from, to float64
	gain     float64
	rate     beep.SampleRate
	total    int
	position int
	phase    float64
}

// Tone returns a swept tone streamer. from == to gives a fixed pitch.
func Tone(wave Wave, from, to float64, d time.Duration, gain float64, rate beep.SampleRate) beep.Streamer {
	return &sweep{
		wave:  wave,
		from:  from,
		to:    to,
		gain:  gain,
		rate:  rate,
		total: rate.N(d),
	}
}

func (s *sweep) Stream(samples [][2]float64) (n int, ok bool) {
	if s.position >= s.total {
		return 0, false
	}
	for i := range samples {
		if s.position >= s.total {
			return i, true
		}

		t := float64(s.position) / float64(s.total)
		freq := s.from * math.Pow(s.to/s.from, t)
		amp := s.gain
		if s.gain > floorGain {
			amp = s.gain * math.Pow(floorGain/s.gain, t)
		}

		val := shape(s.wave, s.phase) * amp
		samples[i][0] = val
		samples[i][1] = val

		s.phase += freq / float64(s.rate)
		s.phase -= math.Floor(s.phase) // Keep in [0, 1)
		s.position++
	}
	return len(samples), true
}

func (s *sweep) Err() error { return nil }

// shape evaluates one period of the wave at phase in [0, 1).
func shape(w Wave, phase float64) float64 {
	switch w {
	case WaveSquare:
		if phase < 0.5 {
			return 1
		}
		return -1
	case WaveTriangle:
		return 1 - 4*math.Abs(phase-0.5)
	case WaveSaw:
		return 2 * (phase - 0.5)
	default:
		return math.Sin(2 * math.Pi * phase)
	}
}

// newVolume scales s by a linear factor. Zero or below is silent.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}
