package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// sirenStreamer synthesizes a two-tone police siren: a sine carrier whose
// frequency sweeps between lo and hi on a fixed period, faded in and out
// at the ends so the one-shot doesn't click.
type sirenStreamer struct {
	lo, hi   float64
	period   float64 // sweep period in seconds
	phase    float64
	position int
	duration int
	rate     beep.SampleRate
}

// NewSiren builds a finite siren streamer.
func NewSiren(lo, hi float64, period, duration time.Duration, rate beep.SampleRate) beep.Streamer {
	return &sirenStreamer{
		lo:       lo,
		hi:       hi,
		period:   period.Seconds(),
		duration: rate.N(duration),
		rate:     rate,
	}
}

func (s *sirenStreamer) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if s.position >= s.duration {
			return i, false
		}

		t := float64(s.position) / float64(s.rate)
		sweep := 0.5 + 0.5*math.Sin(2*math.Pi*t/s.period)
		freq := s.lo + (s.hi-s.lo)*sweep

		val := math.Sin(2*math.Pi*s.phase) * s.gain()

		samples[i][0] = val
		samples[i][1] = val

		s.phase += freq / float64(s.rate)
		s.phase -= math.Floor(s.phase)
		s.position++
	}
	return len(samples), true
}

// gain fades the first and last tenth of the clip.
func (s *sirenStreamer) gain() float64 {
	edge := s.duration / 10
	if edge == 0 {
		return 0.4
	}
	g := 1.0
	if s.position < edge {
		g = float64(s.position) / float64(edge)
	} else if left := s.duration - s.position; left < edge {
		g = float64(left) / float64(edge)
	}
	return 0.4 * g
}

func (s *sirenStreamer) Err() error { return nil }
