package app

import (
	"math"

	"github.com/charmbracelet/lipgloss"

	"github.com/HaPhanBaoMinh/ktoast/internal/toast"
	"github.com/HaPhanBaoMinh/ktoast/internal/ui"
	"github.com/HaPhanBaoMinh/ktoast/internal/ui/styles"
)

// renderScene blits every visible sprite onto a fresh canvas. Draw order
// is slice order, so later sprites (nodes) pass in front of earlier ones.
func (m Model) renderScene() string {
	cv := ui.NewCanvas(m.width, max(0, m.height-2))

	for _, s := range m.composer.Sprites() {
		if !s.Visible() {
			continue
		}
		m.drawSprite(cv, s)
	}
	return cv.String()
}

func (m Model) drawSprite(cv *ui.Canvas, s *toast.Sprite) {
	pos := s.Position()
	x := int(math.Round(pos.X))
	y := int(math.Round(pos.Y))

	art, ok := m.reg.Lookup(s.Variant)
	if !ok {
		// failed or unmapped asset: the main image just doesn't render
		return
	}

	st := styles.ForVariant(s.Variant)
	if s.IsCop {
		st = m.copFlash(s.LegToken)
	}
	cv.Blit(x, y, art.Lines, &st)

	if s.IsZoomie {
		trail := styles.Faint
		cv.Blit(x-3, y+art.Height/2, []string{"~~"}, &trail)
	}

	if s.IsCop {
		if overlay, ok := m.reg.Lookup("cop"); ok {
			// both cop parts flash in lockstep off the same leg token
			alt := m.copFlashAlt(s.LegToken)
			cv.Blit(x+art.Width/2-overlay.Width/2, y-1, overlay.Lines, &alt)
		}
	}

	if s.HasButter {
		if butter, ok := m.reg.Lookup("butter"); ok {
			bs := styles.Butter
			// one pat always, extra slices stack upward
			for i := 0; i <= s.ButterSlices; i++ {
				cv.Blit(x+art.Width/2-butter.Width/2, y-i, butter.Lines, &bs)
			}
		}
	}
}

// copFlash alternates the sprite body between the two siren colors a few
// frames apart; the leg token offsets the phase so simultaneous cops
// don't blink in unison.
func (m Model) copFlash(token uint64) lipgloss.Style {
	if (uint64(m.frame/3)+token)%2 == 0 {
		return styles.CopA
	}
	return styles.CopB
}

func (m Model) copFlashAlt(token uint64) lipgloss.Style {
	if (uint64(m.frame/3)+token)%2 == 0 {
		return styles.CopB
	}
	return styles.CopA
}
