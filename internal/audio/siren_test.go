package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"
)

func TestSirenStreamerIsFinite(t *testing.T) {
	rate := beep.SampleRate(48000)
	s := NewSiren(600, 1000, 900*time.Millisecond, 100*time.Millisecond, rate)

	buf := make([][2]float64, 512)
	total := 0
	for {
		n, ok := s.Stream(buf)
		total += n
		if !ok {
			break
		}
		if total > rate.N(time.Second) {
			t.Fatal("streamer did not terminate")
		}
	}
	if want := rate.N(100 * time.Millisecond); total != want {
		t.Errorf("samples = %d, want %d", total, want)
	}
	if err := s.Err(); err != nil {
		t.Errorf("Err() = %v", err)
	}
}

func TestSirenStreamerStaysInRange(t *testing.T) {
	rate := beep.SampleRate(48000)
	s := NewSiren(500, 1200, 1400*time.Millisecond, 50*time.Millisecond, rate)

	buf := make([][2]float64, 256)
	for {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			for ch := 0; ch < 2; ch++ {
				if v := buf[i][ch]; v < -1 || v > 1 {
					t.Fatalf("sample out of range: %v", v)
				}
			}
		}
		if !ok {
			break
		}
	}
}

func TestManagerSilentBeforeEnable(t *testing.T) {
	m := NewManager(3, nil)
	if m.Enabled() {
		t.Fatal("manager enabled without the unmute gesture")
	}
	m.PlaySiren() // must be a safe no-op, even with a nil rng
	m.Close()
}
