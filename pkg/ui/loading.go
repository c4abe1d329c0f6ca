package ui

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/kraitsura/folio/pkg/anim"
)

// frameInterval is how often the loading screen asks for a frame. The flame
// itself only advances at anim.FlameRate.
const frameInterval = time.Second / 30

type loadingFrameMsg struct{ gen uint64 }

type loadingDoneMsg struct{ gen uint64 }

// LoadingModel is the startup screen: a flame over the site name, shown
// until the load time passes or any key is pressed.
type LoadingModel struct {
	flame   *anim.Flame
	title   string
	visible bool
	gen     uint64
	hold    time.Duration
	width   int
	height  int
	theme   Theme
	now     func() time.Time
}

// NewLoadingModel creates a visible loading screen.
func NewLoadingModel(title string, hold time.Duration, seed uint64, theme Theme) LoadingModel {
	return LoadingModel{
		flame:   anim.NewFlame(40, 12, seed),
		title:   title,
		visible: true,
		hold:    hold,
		theme:   theme,
		now:     time.Now,
	}
}

// Init starts the frame loop and the dismissal timer.
func (m LoadingModel) Init() tea.Cmd {
	if !m.visible {
		return nil
	}
	gen := m.gen
	return tea.Batch(m.frame(), tea.Tick(m.hold, func(time.Time) tea.Msg {
		return loadingDoneMsg{gen: gen}
	}))
}

func (m LoadingModel) frame() tea.Cmd {
	gen := m.gen
	return tea.Tick(frameInterval, func(time.Time) tea.Msg {
		return loadingFrameMsg{gen: gen}
	})
}

// Dismiss hides the screen and cancels the frame loop.
func (m *LoadingModel) Dismiss() {
	m.gen++
	m.visible = false
}

// IsVisible returns true while the loading screen is up
func (m LoadingModel) IsVisible() bool {
	return m.visible
}

// SetSize sets dimensions
func (m *LoadingModel) SetSize(width, height int) {
	m.width, m.height = width, height
	fw, fh := width/2, height/3
	if fw < 10 {
		fw = 10
	}
	if fh < 4 {
		fh = 4
	}
	m.flame.Resize(fw, fh)
}

// SetTheme swaps the colors after a theme change.
func (m *LoadingModel) SetTheme(theme Theme) {
	m.theme = theme
}

// Update advances the flame on frame messages.
func (m LoadingModel) Update(msg tea.Msg) (LoadingModel, tea.Cmd) {
	switch msg := msg.(type) {
	case loadingFrameMsg:
		if !m.visible || msg.gen != m.gen {
			return m, nil
		}
		m.flame.Frame(m.now())
		return m, m.frame()
	case loadingDoneMsg:
		if msg.gen == m.gen && m.visible {
			m.Dismiss()
		}
	}
	return m, nil
}

// View renders the flame, its hottest rows in the accent color.
func (m LoadingModel) View() string {
	if !m.visible {
		return ""
	}
	lines := m.flame.Lines()
	hot := m.theme.Renderer.NewStyle().Foreground(m.theme.Accent)
	warm := m.theme.Renderer.NewStyle().Foreground(m.theme.Primary)
	var b strings.Builder
	for i, line := range lines {
		if i >= len(lines)*2/3 {
			b.WriteString(hot.Render(line))
		} else {
			b.WriteString(warm.Render(line))
		}
		b.WriteString("\n")
	}
	title := m.theme.Renderer.NewStyle().Bold(true).Foreground(m.theme.Text).Render(m.title)
	hint := m.theme.Renderer.NewStyle().Faint(true).Render("press any key")
	body := lipgloss.JoinVertical(lipgloss.Center, b.String(), title, "", hint)
	if m.width == 0 || m.height == 0 {
		return body
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, body)
}
