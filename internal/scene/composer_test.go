package scene

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HaPhanBaoMinh/ktoast/internal/config"
	"github.com/HaPhanBaoMinh/ktoast/internal/domain"
	"github.com/HaPhanBaoMinh/ktoast/internal/toast"
)

var t0 = time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

func testComposer() *Composer {
	cfg := config.Default()
	cfg.MaxCPUToast = 100
	c := New(cfg, rand.New(rand.NewSource(1)))
	c.SetViewport(toast.Viewport{W: 100, H: 40})
	return c
}

func snapshot(ts string) domain.Snapshot {
	return domain.Snapshot{
		Timestamp: ts,
		Pods: []domain.Entity{
			{Name: "api-1", Namespace: "default", CPUUsage: domain.CPUValue{Value: 10}, MemoryUsage: 100},
			{Name: "api-2", Namespace: "default", CPUUsage: domain.CPUValue{Value: 90}, MemoryUsage: 400},
		},
		Nodes: []domain.Entity{
			{Name: "node-a", CPUUsage: domain.CPUValue{Value: 0.5}, MemoryUsage: 0.5},
		},
		Source: domain.SourceRemote,
	}
}

func TestRefreshBuildsOneSpritePerEntity(t *testing.T) {
	c := testComposer()

	require.True(t, c.Refresh(t0, snapshot("2026-01-02T03:04:05Z")))
	require.Len(t, c.Sprites(), 3)

	// pods first, then nodes
	assert.Equal(t, toast.KindToast, c.Sprites()[0].Kind)
	assert.Equal(t, toast.KindToast, c.Sprites()[1].Kind)
	assert.Equal(t, toast.KindToaster, c.Sprites()[2].Kind)
}

func TestRefreshSameTimestampIsSkipped(t *testing.T) {
	c := testComposer()
	c.Refresh(t0, snapshot("ts-1"))
	before := c.Sprites()

	assert.False(t, c.Refresh(t0.Add(time.Minute), snapshot("ts-1")))
	require.Len(t, c.Sprites(), len(before))
	for i := range before {
		assert.Same(t, before[i], c.Sprites()[i], "sprite %d was replaced", i)
	}
}

func TestRefreshNewTimestampReplacesWholesale(t *testing.T) {
	c := testComposer()
	c.Refresh(t0, snapshot("ts-1"))
	old := c.Sprites()[0]

	next := domain.Snapshot{
		Timestamp: "ts-2",
		Pods:      []domain.Entity{{Name: "fresh", CPUUsage: domain.CPUValue{Value: 50}}},
	}
	require.True(t, c.Refresh(t0.Add(time.Minute), next))

	require.Len(t, c.Sprites(), 1)
	assert.Equal(t, "fresh", c.Sprites()[0].Name)
	assert.True(t, old.Disposed(), "stale sprite not disposed")

	// a disposed stale sprite must ignore later ticks
	ev := old.Step(t0.Add(time.Hour), false)
	assert.Equal(t, toast.Events{}, ev)
}

func TestSpriteSizeScaling(t *testing.T) {
	c := testComposer()
	cfg := c.cfg

	snap := domain.Snapshot{
		Timestamp: "ts",
		Pods: []domain.Entity{
			{Name: "cold", CPUUsage: domain.CPUValue{Value: 0}},
			{Name: "hot", CPUUsage: domain.CPUValue{Value: 100}},
			{Name: "over", CPUUsage: domain.CPUValue{Value: 100000}},
			{Name: "nodata", CPUUsage: domain.CPUValue{Missing: true}},
		},
	}
	c.Refresh(t0, snap)

	assert.Equal(t, cfg.MinSize, c.Sprites()[0].Size)
	assert.Equal(t, cfg.MaxSize, c.Sprites()[1].Size)
	assert.Equal(t, cfg.MaxSize, c.Sprites()[2].Size, "size must clamp at the configured max")
	assert.Equal(t, cfg.MinSize, c.Sprites()[3].Size, "missing data flies at minimum size")
}

func TestStaggerTricklesInByIndex(t *testing.T) {
	c := testComposer()
	c.cfg.PodStagger = 2
	c.cfg.NodeStagger = 10

	snap := domain.Snapshot{
		Timestamp: "ts",
		Pods: []domain.Entity{
			{Name: "p0", CPUUsage: domain.CPUValue{Value: 1}},
			{Name: "p1", CPUUsage: domain.CPUValue{Value: 1}},
		},
		Nodes: []domain.Entity{
			{Name: "n0", MemoryUsage: 0.5},
			{Name: "n1", MemoryUsage: 0.5},
		},
	}
	c.Refresh(t0, snap)

	// just after refresh: only index-0 sprites are due
	c.Step(t0.Add(100*time.Millisecond), true)
	assert.True(t, c.Sprites()[0].Visible(), "p0 should fly immediately")
	assert.False(t, c.Sprites()[1].Visible(), "p1 still staggered")
	assert.True(t, c.Sprites()[2].Visible(), "n0 should fly immediately")
	assert.False(t, c.Sprites()[3].Visible(), "n1 still staggered")

	// pod stagger elapses before the larger node stagger
	c.Step(t0.Add(3*time.Second), true)
	assert.True(t, c.Sprites()[1].Visible())
	assert.False(t, c.Sprites()[3].Visible(), "node stagger multiplier must exceed the pod one")

	c.Step(t0.Add(11*time.Second), true)
	assert.True(t, c.Sprites()[3].Visible())
}

func TestTrendsAndAverages(t *testing.T) {
	c := testComposer()
	c.Refresh(t0, snapshot("ts-1"))

	trend := c.Trend("default/api-1")
	require.Len(t, trend, 1)
	assert.InDelta(t, 0.1, trend[0], 1e-9)

	podCPU, nodeMem := c.AverageUsage()
	assert.InDelta(t, 0.5, podCPU, 1e-9) // (0.1+0.9)/2
	assert.InDelta(t, 0.5, nodeMem, 1e-9)
}
