package scene

import (
	"math/rand"
	"time"

	"github.com/HaPhanBaoMinh/ktoast/internal/config"
	"github.com/HaPhanBaoMinh/ktoast/internal/domain"
	"github.com/HaPhanBaoMinh/ktoast/internal/toast"
)

// Composer owns the displayed sprite set. It rebuilds the set whenever a
// snapshot with a new timestamp arrives and steps every sprite once per
// frame. Sprite identity is positional: slot i of the pods list is slot i
// of the toast sprites, so a reordered feed reassigns in-flight state.
type Composer struct {
	cfg *config.Config
	rng *rand.Rand
	vp  toast.Viewport

	snapshot domain.Snapshot
	haveData bool

	sprites []*toast.Sprite

	// usage history for the roster sparklines, keyed ns/name
	trends map[string][]float64
}

func New(cfg *config.Config, rng *rand.Rand) *Composer {
	return &Composer{
		cfg:    cfg,
		rng:    rng,
		trends: make(map[string][]float64),
	}
}

// SetViewport resizes the scene. Existing sprites are rebuilt from the
// current snapshot so their paths match the new bounds.
func (c *Composer) SetViewport(vp toast.Viewport) {
	c.vp = vp
	if c.haveData {
		c.rebuild(time.Now())
	}
}

// Refresh applies a snapshot. A snapshot with the timestamp already on
// screen is the same data and is skipped; anything else replaces pods and
// nodes wholesale. Reports whether the sprite set changed.
func (c *Composer) Refresh(now time.Time, snap domain.Snapshot) bool {
	if c.haveData && snap.Timestamp == c.snapshot.Timestamp {
		return false
	}
	c.snapshot = snap
	c.haveData = true
	c.recordTrends(snap)
	c.rebuild(now)
	return true
}

func (c *Composer) rebuild(now time.Time) {
	for _, s := range c.sprites {
		s.Dispose()
	}
	c.sprites = c.sprites[:0]

	for i, e := range c.snapshot.Pods {
		delay := time.Duration(float64(i) * c.cfg.PodStagger * float64(time.Second))
		c.sprites = append(c.sprites, c.newSprite(e, toast.KindToast, delay, now))
	}
	for i, e := range c.snapshot.Nodes {
		delay := time.Duration(float64(i) * c.cfg.NodeStagger * float64(time.Second))
		c.sprites = append(c.sprites, c.newSprite(e, toast.KindToaster, delay, now))
	}
}

func (c *Composer) newSprite(e domain.Entity, kind toast.Kind, delay time.Duration, now time.Time) *toast.Sprite {
	variant := toast.SelectVariant(e, kind, c.cfg, c.rng)
	size := c.spriteSize(toast.UsageRatio(e, kind, c.cfg))
	return toast.NewSprite(c.cfg, c.rng, c.vp, kind, e.Name, variant, size, delay, now)
}

// spriteSize scales a 0..1 usage ratio into the configured row range.
func (c *Composer) spriteSize(ratio float64) int {
	span := c.cfg.MaxSize - c.cfg.MinSize
	size := c.cfg.MinSize + int(ratio*float64(span)+0.5)
	if size > c.cfg.MaxSize {
		size = c.cfg.MaxSize
	}
	if size < c.cfg.MinSize {
		size = c.cfg.MinSize
	}
	return size
}

// Step advances every sprite and returns how many siren one-shots fired
// this frame. The caller skips Step entirely while paused.
func (c *Composer) Step(now time.Time, muted bool) int {
	sirens := 0
	for _, s := range c.sprites {
		if ev := s.Step(now, muted); ev.PlaySiren {
			sirens++
		}
	}
	return sirens
}

func (c *Composer) Sprites() []*toast.Sprite { return c.sprites }

func (c *Composer) Snapshot() domain.Snapshot { return c.snapshot }

// Trend returns the recorded usage history for an entity key.
func (c *Composer) Trend(key string) []float64 { return c.trends[key] }

func (c *Composer) recordTrends(snap domain.Snapshot) {
	for _, e := range snap.Pods {
		c.appendTrend(trendKey(e), toast.UsageRatio(e, toast.KindToast, c.cfg))
	}
	for _, e := range snap.Nodes {
		c.appendTrend(trendKey(e), toast.UsageRatio(e, toast.KindToaster, c.cfg))
	}
}

func (c *Composer) appendTrend(key string, v float64) {
	s := append(c.trends[key], v)
	if len(s) > 90 {
		s = s[len(s)-90:]
	}
	c.trends[key] = s
}

func trendKey(e domain.Entity) string {
	if e.Namespace != "" {
		return e.Namespace + "/" + e.Name
	}
	return e.Name
}

// AverageUsage summarizes the snapshot for the footer bars: mean pod cpu
// ratio and mean node memory ratio.
func (c *Composer) AverageUsage() (podCPU, nodeMem float64) {
	if n := len(c.snapshot.Pods); n > 0 {
		for _, e := range c.snapshot.Pods {
			podCPU += toast.UsageRatio(e, toast.KindToast, c.cfg)
		}
		podCPU /= float64(n)
	}
	if n := len(c.snapshot.Nodes); n > 0 {
		for _, e := range c.snapshot.Nodes {
			nodeMem += toast.UsageRatio(e, toast.KindToaster, c.cfg)
		}
		nodeMem /= float64(n)
	}
	return podCPU, nodeMem
}
