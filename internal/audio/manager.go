package audio

import (
	"math/rand"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/HaPhanBaoMinh/ktoast/help"
)

const sampleRate = beep.SampleRate(48000)

// sirenBank holds the numbered siren patterns; one is picked uniformly
// per playback. Extra configured counts wrap around the bank.
var sirenBank = []struct {
	lo, hi float64
	period time.Duration
}{
	{600, 1000, 900 * time.Millisecond},
	{500, 1200, 1400 * time.Millisecond},
	{700, 900, 500 * time.Millisecond},
}

// Manager owns the speaker and mixer. It starts disabled: terminals have
// no autoplay policy but the product keeps the same one-time unmute
// gesture, so the speaker is only initialized on the first unmute.
type Manager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	rng         *rand.Rand
	count       int
	initialized bool
	failed      bool
}

// NewManager creates a silent manager with count siren patterns.
func NewManager(count int, rng *rand.Rand) *Manager {
	if count <= 0 {
		count = len(sirenBank)
	}
	return &Manager{
		mixer: &beep.Mixer{},
		rng:   rng,
		count: count,
	}
}

// Enable is the unmute gesture: it initializes the speaker once. Failure
// leaves the manager permanently silent, never surfaced to the user.
func (m *Manager) Enable() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.initialized || m.failed {
		return
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		help.Dbg("audio: speaker init failed, staying silent: %v", err)
		m.failed = true
		return
	}
	speaker.Play(m.mixer)
	m.initialized = true
}

// Enabled reports whether the unmute gesture succeeded.
func (m *Manager) Enabled() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.initialized
}

// PlaySiren fires one randomly chosen siren, fire-and-forget. A no-op
// before Enable or after an init failure.
func (m *Manager) PlaySiren() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return
	}
	p := sirenBank[m.rng.Intn(m.count)%len(sirenBank)]
	speaker.Lock()
	m.mixer.Add(NewSiren(p.lo, p.hi, p.period, 2*time.Second, sampleRate))
	speaker.Unlock()
}

// Close silences everything. beep has no speaker teardown; clearing the
// mixer is the available cleanup.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return
	}
	speaker.Lock()
	m.mixer.Clear()
	speaker.Unlock()
	m.initialized = false
}
