package mock

import (
	"context"
	"math"
	"math/rand"
	"time"

	"github.com/HaPhanBaoMinh/ktoast/internal/domain"
)

// Repo serves synthetic snapshots for demos and development. Usage
// wobbles over time, one pod reports the missing sentinel, and the
// timestamp advances on every fetch so the composer always refreshes.
type Repo struct {
	start time.Time
	rnd   *rand.Rand
}

func New() *Repo {
	src := rand.NewSource(time.Now().UnixNano())
	return &Repo{start: time.Now(), rnd: rand.New(src)}
}

func (r *Repo) Fetch(ctx context.Context) (domain.Snapshot, error) {
	pods := []struct {
		name, ns string
		base     float64
	}{
		{"api-7cfb9d9c9c-9tghd", "default", 120},
		{"api-7cfb9d9c9c-sj2lq", "default", 90},
		{"worker-5f7dcbffd6-2jqkz", "default", 310},
		{"cart-6d79f8b5f7-m2x8l", "staging", 60},
		{"ingest-84c9cf6b4d-qq2v7", "staging", 440},
	}
	nodes := []struct {
		name string
		base float64
	}{
		{"ip-10-0-1-5", 0.45},
		{"ip-10-0-1-12", 0.62},
		{"ip-10-0-2-3", 0.30},
	}

	snap := domain.Snapshot{
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Source:    domain.SourceLocal,
	}

	for i, p := range pods {
		e := domain.Entity{
			Name:        p.name,
			Namespace:   p.ns,
			CPUUsage:    domain.CPUValue{Value: p.base * (0.8 + 0.4*r.noise(i))},
			MemoryUsage: 300 + 200*r.noise(i+7),
		}
		if i == len(pods)-1 {
			e.CPUUsage = domain.CPUValue{Missing: true}
		}
		snap.Pods = append(snap.Pods, e)
	}
	for i, n := range nodes {
		snap.Nodes = append(snap.Nodes, domain.Entity{
			Name:        n.name,
			CPUUsage:    domain.CPUValue{Value: clamp01(n.base + 0.2*r.noise(i+3))},
			MemoryUsage: clamp01(n.base + 0.25*r.noise(i+11)),
		})
	}
	return snap, nil
}

func (r *Repo) noise(seed int) float64 {
	t := time.Since(r.start).Seconds()
	return 0.5 + 0.3*math.Sin(t/7+float64(seed)) + 0.2*r.rnd.Float64()
}

func clamp01(f float64) float64 {
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}
