package toast

import (
	"math/rand"
	"time"

	"github.com/HaPhanBaoMinh/ktoast/internal/config"
)

// Phase is the sprite lifecycle stage. There is no terminal phase; a
// sprite flies legs until it is disposed.
type Phase int

const (
	Pending Phase = iota // waiting out the initial stagger delay
	Flying
)

// Events reports what happened during one Step.
type Events struct {
	BecameVisible bool
	LegCompleted  bool
	PlaySiren     bool
}

// Sprite drives one entity's animation. Each sprite owns its state
// exclusively; the only shared inputs are the read-only config and the
// pause/mute flags its caller consults.
//
// The whole transition function is driven by the timestamps handed to
// Step, so a test can run thousands of legs without a real frame loop.
type Sprite struct {
	Kind    Kind
	Variant string
	Name    string
	Size    int // rows, scaled from usage

	phase      Phase
	activateAt time.Time

	path        Path
	legStart    time.Time
	legDuration time.Duration
	pos         Point

	IsZoomie     bool
	IsCop        bool
	HasButter    bool
	ButterSlices int
	LegToken     uint64 // shared cache-buster for paired overlay imagery

	soundPlayed bool
	disposed    bool

	cfg *config.Config
	rng *rand.Rand
	vp  Viewport
}

// NewSprite creates a sprite in Pending phase. It stays invisible until
// now+delay, then enters its first flight leg.
func NewSprite(cfg *config.Config, rng *rand.Rand, vp Viewport, kind Kind, name, variant string, size int, delay time.Duration, now time.Time) *Sprite {
	return &Sprite{
		Kind:       kind,
		Variant:    variant,
		Name:       name,
		Size:       size,
		phase:      Pending,
		activateAt: now.Add(delay),
		cfg:        cfg,
		rng:        rng,
		vp:         vp,
	}
}

func (s *Sprite) Phase() Phase    { return s.phase }
func (s *Sprite) Visible() bool   { return s.phase == Flying && !s.disposed }
func (s *Sprite) Position() Point { return s.pos }
func (s *Sprite) Disposed() bool  { return s.disposed }

// Progress returns the active leg's progress in [0,1).
func (s *Sprite) Progress(now time.Time) float64 {
	if s.phase != Flying || s.legDuration <= 0 {
		return 0
	}
	p := float64(now.Sub(s.legStart)) / float64(s.legDuration)
	if p < 0 {
		return 0
	}
	if p >= 1 {
		return 1
	}
	return p
}

// Step advances the sprite to now. The caller skips Step entirely while
// paused, which leaves the timing basis untouched: on resume the sprite
// jumps forward by the paused duration.
func (s *Sprite) Step(now time.Time, muted bool) Events {
	var ev Events
	if s.disposed {
		return ev
	}

	if s.phase == Pending {
		if now.Before(s.activateAt) {
			return ev
		}
		s.phase = Flying
		s.path = GenerateRandomPath(s.rng, s.vp, s.Size)
		s.legStart = now
		s.legDuration = s.rollDuration(false)
		s.pos = s.path.Start
		ev.BecameVisible = true
		return ev
	}

	progress := float64(now.Sub(s.legStart)) / float64(s.legDuration)
	if progress >= 1 {
		s.completeLeg(now)
		ev.LegCompleted = true
		progress = 0
	}
	s.pos = s.path.At(progress)

	if s.IsCop && !s.soundPlayed && progress > 0.2 && progress < 0.8 && !muted && s.vp.Contains(s.pos) {
		s.soundPlayed = true
		ev.PlaySiren = true
	}
	return ev
}

// completeLeg resets the timing basis and redraws path and decorations.
// Draw order is fixed (path, zoomie, duration, cop, butter, slices,
// token) so seeded runs stay reproducible.
func (s *Sprite) completeLeg(now time.Time) {
	s.legStart = now
	s.path = GenerateRandomPath(s.rng, s.vp, s.Size)

	s.IsZoomie = oneIn(s.rng, s.cfg.ZoomiesFrequency)
	s.legDuration = s.rollDuration(s.IsZoomie)

	s.IsCop = false
	if s.IsZoomie && s.cfg.CopsEnabled {
		s.IsCop = oneIn(s.rng, s.cfg.CopsFrequency)
	}
	if s.IsCop {
		// Cop and butter never ride the same leg.
		s.HasButter = false
		s.ButterSlices = 0
	} else if s.Kind == KindToast && oneIn(s.rng, s.cfg.ButterChance) {
		s.HasButter = true
		if s.IsZoomie && s.cfg.ButterMaxSlices > 0 {
			s.ButterSlices = 1 + s.rng.Intn(s.cfg.ButterMaxSlices)
		} else {
			s.ButterSlices = 0
		}
	} else {
		s.HasButter = false
		s.ButterSlices = 0
	}

	s.LegToken = s.rng.Uint64()
	s.soundPlayed = false
}

func (s *Sprite) rollDuration(zoomie bool) time.Duration {
	min, max := s.cfg.DurationMin, s.cfg.DurationMax
	if max < min {
		max = min
	}
	sec := min + s.rng.Float64()*(max-min)
	if zoomie {
		sec /= 3
	}
	return time.Duration(sec * float64(time.Second))
}

// Dispose tears the sprite down. Every later Step is a no-op, so nothing
// mutates a sprite whose entity left the snapshot.
func (s *Sprite) Dispose() {
	s.disposed = true
}

// oneIn rolls a 1-in-freq chance; freq <= 0 disables the draw without
// consuming randomness.
func oneIn(rng *rand.Rand, freq float64) bool {
	if freq <= 0 {
		return false
	}
	return rng.Float64() < 1/freq
}
