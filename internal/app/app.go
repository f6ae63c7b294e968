package app

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/HaPhanBaoMinh/ktoast/internal/assets"
	"github.com/HaPhanBaoMinh/ktoast/internal/audio"
	"github.com/HaPhanBaoMinh/ktoast/internal/config"
	"github.com/HaPhanBaoMinh/ktoast/internal/domain"
	"github.com/HaPhanBaoMinh/ktoast/internal/scene"
	"github.com/HaPhanBaoMinh/ktoast/internal/toast"
	"github.com/HaPhanBaoMinh/ktoast/internal/ui/styles"
	"github.com/HaPhanBaoMinh/ktoast/internal/ui/widgets"
)

type View int

const (
	ViewPods View = iota
	ViewNodes
)

type (
	frameMsg    time.Time
	pollTickMsg struct{}
	snapMsg     domain.Snapshot
	errMsg      struct{ error }
)

type Model struct {
	ctx    context.Context
	cancel context.CancelFunc

	cfg      *config.Config
	repo     domain.SnapshotRepo
	composer *scene.Composer
	reg      *assets.Registry
	sound    *audio.Manager

	// shared read-only flags every sprite tick consults
	paused bool
	muted  bool

	status string
	frame  int

	rosterOpen  bool
	view        View
	rosterTable table.Model

	width, height int
	err           error
}

func New(cfg *config.Config, repo domain.SnapshotRepo, rng *rand.Rand) Model {
	ctx, cancel := context.WithCancel(context.Background())

	t := table.New()
	t.SetHeight(12)
	t.SetWidth(80)

	return Model{
		ctx:         ctx,
		cancel:      cancel,
		cfg:         cfg,
		repo:        repo,
		composer:    scene.New(cfg, rng),
		reg:         assets.Load(cfg.Themed()),
		sound:       audio.NewManager(cfg.SirenCount, rng),
		muted:       true, // audio needs the one-time unmute gesture
		view:        ViewPods,
		rosterTable: t,
		status:      domain.Snapshot{}.StatusLine(),
	}
}

func (m Model) frameInterval() time.Duration {
	fps := m.cfg.FrameRate
	if fps <= 0 {
		fps = 30
	}
	return time.Second / time.Duration(fps)
}

func (m Model) pollInterval() time.Duration {
	sec := m.cfg.PollSeconds
	if sec <= 0 {
		sec = 30
	}
	return time.Duration(sec * float64(time.Second))
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.fetch(),
		tea.Tick(m.frameInterval(), func(t time.Time) tea.Msg { return frameMsg(t) }),
		tea.Tick(m.pollInterval(), func(time.Time) tea.Msg { return pollTickMsg{} }),
	)
}

func (m Model) fetch() tea.Cmd {
	return func() tea.Msg {
		snap, err := m.repo.Fetch(m.ctx)
		if err != nil {
			return errMsg{err}
		}
		return snapMsg(snap)
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		// one header line, one footer line, the rest is sky
		m.composer.SetViewport(toast.Viewport{W: m.width, H: max(0, m.height-2)})
		m.rosterTable.SetWidth(clamp(m.width-8, 40, 110))
		m.rosterTable.SetHeight(clamp(m.height-10, 5, 20))
		m.rebuildRoster()
		return m, nil

	case frameMsg:
		m.frame++
		if !m.paused {
			now := time.Time(msg)
			for i := m.composer.Step(now, m.muted); i > 0; i-- {
				m.sound.PlaySiren()
			}
		}
		return m, tea.Tick(m.frameInterval(), func(t time.Time) tea.Msg { return frameMsg(t) })

	case pollTickMsg:
		return m, tea.Batch(
			m.fetch(),
			tea.Tick(m.pollInterval(), func(time.Time) tea.Msg { return pollTickMsg{} }),
		)

	case snapMsg:
		snap := domain.Snapshot(msg)
		m.composer.Refresh(time.Now(), snap)
		m.status = snap.StatusLine()
		m.err = nil
		m.rebuildRoster()
		return m, nil

	case errMsg:
		m.err = msg.error
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			m.cancel()
			m.sound.Close()
			return m, tea.Quit

		case " ", "p":
			m.paused = !m.paused
			return m, nil

		case "m":
			// first unmute doubles as the enable-audio gesture
			m.muted = !m.muted
			if !m.muted {
				m.sound.Enable()
			}
			return m, nil

		case "i":
			m.rosterOpen = !m.rosterOpen
			if m.rosterOpen {
				m.rebuildRoster()
				m.rosterTable.Focus()
			} else {
				m.rosterTable.Blur()
			}
			return m, nil

		case "tab":
			if m.rosterOpen {
				if m.view == ViewPods {
					m.view = ViewNodes
				} else {
					m.view = ViewPods
				}
				m.rebuildRoster()
			}
			return m, nil

		case "up", "k", "down", "j", "pgup", "pgdn", "home", "end":
			if m.rosterOpen {
				var cmd tea.Cmd
				m.rosterTable, cmd = m.rosterTable.Update(msg)
				return m, cmd
			}
			return m, nil
		}
	}

	return m, nil
}

func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "warming up the toaster..."
	}

	head := styles.Header.Render(m.headerLine())
	body := m.renderScene()
	foot := styles.Footer.Render(m.footerLine())

	main := lipgloss.JoinVertical(lipgloss.Left, head, body, foot)
	if m.rosterOpen {
		return main + "\n" + m.renderRoster()
	}
	return main
}

func (m Model) headerLine() string {
	var flags []string
	if m.paused {
		flags = append(flags, "PAUSED")
	}
	if m.muted {
		flags = append(flags, "muted")
	}
	if m.cfg.Themed() {
		flags = append(flags, "theme:"+m.cfg.Theme)
	}
	extra := ""
	if len(flags) > 0 {
		extra = "  [" + strings.Join(flags, " ") + "]"
	}
	if m.err != nil {
		extra += "  err: " + m.err.Error()
	}
	return fmt.Sprintf("ktoast  │ last updated: %s%s", m.status, extra)
}

func (m Model) footerLine() string {
	podCPU, nodeMem := m.composer.AverageUsage()
	return fmt.Sprintf("pods cpu %s  nodes mem %s  │ [space]pause [m]mute [i]roster [q]quit",
		widgets.Bar(podCPU, 10), widgets.Bar(nodeMem, 10))
}

func clamp(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
