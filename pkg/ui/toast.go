package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/wordwrap"
)

// ToastKind selects the toast icon and color.
type ToastKind int

const (
	ToastSuccess ToastKind = iota
	ToastError
	ToastInfo
)

// Icon returns the glyph shown before the message.
func (k ToastKind) Icon() string {
	switch k {
	case ToastSuccess:
		return "✓"
	case ToastError:
		return "✗"
	default:
		return "ℹ"
	}
}

// DefaultToastTimeout is how long a toast stays up.
const DefaultToastTimeout = 4 * time.Second

// toastHideMsg expires the toast shown under gen.
type toastHideMsg struct{ gen uint64 }

// ToastModel is the single notification slot. Every Show supersedes the
// previous toast and its pending hide.
type ToastModel struct {
	message string
	kind    ToastKind
	visible bool
	gen     uint64
	timeout time.Duration
	width   int
	theme   Theme
}

// NewToastModel creates a hidden toast.
func NewToastModel(timeout time.Duration, theme Theme) ToastModel {
	if timeout <= 0 {
		timeout = DefaultToastTimeout
	}
	return ToastModel{timeout: timeout, theme: theme}
}

// Show displays message and returns the command that hides it after the
// timeout. An earlier pending hide no longer matches and is ignored.
func (m *ToastModel) Show(message string, kind ToastKind) tea.Cmd {
	m.gen++
	m.message = message
	m.kind = kind
	m.visible = true
	gen := m.gen
	return tea.Tick(m.timeout, func(time.Time) tea.Msg {
		return toastHideMsg{gen: gen}
	})
}

// Hide clears the toast immediately.
func (m *ToastModel) Hide() {
	m.gen++
	m.visible = false
}

// IsVisible returns true if a toast is showing
func (m ToastModel) IsVisible() bool {
	return m.visible
}

// Message returns the text of the current toast.
func (m ToastModel) Message() string {
	return m.message
}

// Kind returns the kind of the current toast.
func (m ToastModel) Kind() ToastKind {
	return m.kind
}

// SetTheme swaps the colors after a theme change.
func (m *ToastModel) SetTheme(theme Theme) {
	m.theme = theme
}

// SetWidth caps the toast width.
func (m *ToastModel) SetWidth(width int) {
	m.width = width
}

// Update handles the expiry message.
func (m ToastModel) Update(msg tea.Msg) (ToastModel, tea.Cmd) {
	if hide, ok := msg.(toastHideMsg); ok && hide.gen == m.gen {
		m.visible = false
	}
	return m, nil
}

// View renders the toast box, or "" when hidden.
func (m ToastModel) View() string {
	if !m.visible {
		return ""
	}
	color := m.theme.Info
	switch m.kind {
	case ToastSuccess:
		color = m.theme.Success
	case ToastError:
		color = m.theme.Danger
	}

	maxWidth := 48
	if m.width > 0 && m.width-6 < maxWidth {
		maxWidth = m.width - 6
	}
	if maxWidth < 12 {
		maxWidth = 12
	}
	text := m.message
	if runewidth.StringWidth(text) > maxWidth-2 {
		text = wordwrap.String(text, maxWidth-2)
	}

	icon := m.theme.Renderer.NewStyle().Foreground(color).Bold(true).Render(m.kind.Icon())
	body := m.theme.Renderer.NewStyle().Foreground(m.theme.Text).Render(text)
	return m.theme.Renderer.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(color).
		Padding(0, 1).
		Render(icon + " " + body)
}
