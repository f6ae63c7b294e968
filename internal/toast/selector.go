package toast

import (
	"math/rand"

	"github.com/HaPhanBaoMinh/ktoast/internal/config"
	"github.com/HaPhanBaoMinh/ktoast/internal/domain"
)

// Kind says what an entity renders as: pods fly as toast, nodes as toasters.
type Kind int

const (
	KindToast Kind = iota
	KindToaster
)

func (k Kind) String() string {
	if k == KindToaster {
		return "toaster"
	}
	return "toast"
}

// SpecialVariant is the single rare themed variant.
const SpecialVariant = "santa"

// SelectVariant maps an entity's usage onto a sprite variant name.
//
// Missing CPU data always routes to the kind's missing variant. Otherwise
// the toast shade follows cpu/maxCpuToast and the toaster shade follows
// memory usage (already a 0..1 fraction). Thresholds at 0.25/0.5/0.75
// split four shades; a boundary value belongs to the next shade up.
//
// Under a seasonal theme the ratio mapping is skipped entirely: a
// specialFrequency roll yields the special variant, anything else a
// uniform pick from the themed list.
func SelectVariant(e domain.Entity, kind Kind, cfg *config.Config, rng *rand.Rand) string {
	if e.CPUUsage.Missing {
		return kind.String() + "-missing"
	}

	if cfg.Themed() {
		if rng.Float64() < cfg.SpecialFrequency {
			return SpecialVariant
		}
		return cfg.ThemedVariants[rng.Intn(len(cfg.ThemedVariants))]
	}

	var ratio float64
	if kind == KindToast {
		max := cfg.MaxCPUToast
		if max <= 0 {
			max = 1
		}
		ratio = e.CPUUsage.Value / max
	} else {
		ratio = e.MemoryUsage
	}

	switch {
	case ratio < 0.25:
		return kind.String() + "1"
	case ratio < 0.5:
		return kind.String() + "2"
	case ratio < 0.75:
		return kind.String() + "3"
	default:
		return kind.String() + "4"
	}
}

// UsageRatio is the sizing metric for an entity: cpu-based for toast,
// memory-based for toasters. Missing data counts as zero so the sprite
// still flies at minimum size.
func UsageRatio(e domain.Entity, kind Kind, cfg *config.Config) float64 {
	if kind == KindToaster {
		return clamp01(e.MemoryUsage)
	}
	if e.CPUUsage.Missing {
		return 0
	}
	max := cfg.MaxCPUToast
	if max <= 0 {
		max = 1
	}
	return clamp01(e.CPUUsage.Value / max)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
