package styles

import "github.com/charmbracelet/lipgloss"

var (
	Title  = lipgloss.NewStyle().Bold(true)
	Header = lipgloss.NewStyle().Foreground(lipgloss.Color("#AAAAAA"))
	Footer = lipgloss.NewStyle().Foreground(lipgloss.Color("#777777"))
	Box    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	Faint  = lipgloss.NewStyle().Foreground(lipgloss.Color("#6C6C6C"))
	Danger = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF5F87"))
	Warn   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFAF00"))
	Good   = lipgloss.NewStyle().Foreground(lipgloss.Color("#5FD7AF"))

	// toast shades, pale to burnt
	Toast1 = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFE4B5"))
	Toast2 = lipgloss.NewStyle().Foreground(lipgloss.Color("#DEB887"))
	Toast3 = lipgloss.NewStyle().Foreground(lipgloss.Color("#CD853F"))
	Toast4 = lipgloss.NewStyle().Foreground(lipgloss.Color("#8B4513"))

	Chrome  = lipgloss.NewStyle().Foreground(lipgloss.Color("#C0C0C0"))
	Missing = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF5F87")).Bold(true)
	Butter  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFD700"))
	CopA    = lipgloss.NewStyle().Foreground(lipgloss.Color("#5F87FF")).Bold(true)
	CopB    = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF5F5F")).Bold(true)
	Festive = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B"))
)

// ForVariant picks the drawing style for a sprite variant name.
func ForVariant(name string) lipgloss.Style {
	switch name {
	case "toast1", "toaster1":
		return Toast1
	case "toast2", "toaster2":
		return Toast2
	case "toast3", "toaster3":
		return Toast3
	case "toast4", "toaster4":
		return Toast4
	case "toast-missing", "toaster-missing":
		return Missing
	case "santa", "gingerbread", "candycane", "snowman":
		return Festive
	default:
		return Chrome
	}
}
