package app

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/HaPhanBaoMinh/ktoast/internal/domain"
	"github.com/HaPhanBaoMinh/ktoast/internal/toast"
	"github.com/HaPhanBaoMinh/ktoast/internal/ui/styles"
	"github.com/HaPhanBaoMinh/ktoast/internal/ui/widgets"
)

// rebuildRoster refreshes the overlay table from the current snapshot.
func (m *Model) rebuildRoster() {
	total := m.rosterTable.Width()
	wName := clamp(total-46, 16, 48)
	wBar := 12

	snap := m.composer.Snapshot()

	switch m.view {
	case ViewPods:
		cols := []table.Column{
			{Title: "POD", Width: wName},
			{Title: "CPU", Width: 7},
			{Title: "", Width: wBar},
			{Title: "MEM", Width: 9},
			{Title: "TREND", Width: 10},
		}
		var rows []table.Row
		for _, e := range snap.Pods {
			cpu := "n/a"
			ratio := 0.0
			if !e.CPUUsage.Missing {
				cpu = fmt.Sprintf("%4.0fm", e.CPUUsage.Value)
				ratio = toast.UsageRatio(e, toast.KindToast, m.cfg)
			}
			rows = append(rows, table.Row{
				rosterName(e),
				cpu,
				widgets.Bar(ratio, wBar-1),
				fmt.Sprintf("%6.0fMi", e.MemoryUsage),
				widgets.Spark8(m.composer.Trend(rosterName(e)), 10),
			})
		}
		m.rosterTable.SetColumns(cols)
		m.rosterTable.SetRows(rows)

	case ViewNodes:
		cols := []table.Column{
			{Title: "NODE", Width: wName},
			{Title: "CPU%", Width: 6},
			{Title: "MEM%", Width: 6},
			{Title: "", Width: wBar},
			{Title: "TREND", Width: 10},
		}
		var rows []table.Row
		for _, e := range snap.Nodes {
			cpu := "n/a"
			if !e.CPUUsage.Missing {
				cpu = fmt.Sprintf("%3.0f%%", e.CPUUsage.Value*100)
			}
			rows = append(rows, table.Row{
				rosterName(e),
				cpu,
				fmt.Sprintf("%3.0f%%", e.MemoryUsage*100),
				widgets.Bar(e.MemoryUsage, wBar-1),
				widgets.Spark8(m.composer.Trend(rosterName(e)), 10),
			})
		}
		m.rosterTable.SetColumns(cols)
		m.rosterTable.SetRows(rows)
	}
}

func rosterName(e domain.Entity) string {
	if e.Namespace != "" {
		return e.Namespace + "/" + e.Name
	}
	return e.Name
}

// renderRoster draws the centered overlay box, kmet-picker style.
func (m Model) renderRoster() string {
	label := map[View]string{ViewPods: "Pods", ViewNodes: "Nodes"}[m.view]
	title := styles.Title.Render(fmt.Sprintf(" Roster: %s (Tab to switch, i to close) ", label))
	box := styles.Box.BorderForeground(lipgloss.Color("#7DCE13"))
	content := lipgloss.JoinVertical(lipgloss.Left, title, m.rosterTable.View())
	return lipgloss.Place(m.width, m.height,
		lipgloss.Center, lipgloss.Center,
		box.Render(content),
	)
}
