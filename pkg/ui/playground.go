package ui

import (
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/kraitsura/folio/pkg/cssgen"
)

// DefaultCopiedReset is how long the copy button reads "✓ Copied".
const DefaultCopiedReset = 2 * time.Second

// Copy feedback strings.
const (
	copyButtonLabel   = "[y] Copy CSS"
	copiedButtonLabel = "✓ Copied"
	msgCSSCopied      = "CSS code copied to clipboard!"
	msgCSSCopyFailed  = "Failed to copy code"
)

type copiedResetMsg struct{ gen uint64 }

// PlaygroundModel is the CSS generator panel: a tab per generator, its
// parameter list, a live preview and the copyable declaration.
type PlaygroundModel struct {
	gens  []*cssgen.Generator
	tab   int
	param int

	editing bool
	input   textinput.Model

	copied      bool
	copiedGen   uint64
	copiedReset time.Duration

	width int
	theme Theme
}

// NewPlaygroundModel creates the panel with every generator at defaults.
func NewPlaygroundModel(copiedReset time.Duration, theme Theme) PlaygroundModel {
	if copiedReset <= 0 {
		copiedReset = DefaultCopiedReset
	}
	ti := textinput.New()
	ti.Prompt = "› "
	ti.CharLimit = 16
	ti.Width = 12
	return PlaygroundModel{
		gens:        cssgen.All(),
		input:       ti,
		copiedReset: copiedReset,
		theme:       theme,
	}
}

// Current returns the selected generator.
func (m PlaygroundModel) Current() *cssgen.Generator {
	return m.gens[m.tab]
}

// Editing reports whether the raw value input has focus.
func (m PlaygroundModel) Editing() bool {
	return m.editing
}

// CopiedShown reports whether the copy button shows its confirmation.
func (m PlaygroundModel) CopiedShown() bool {
	return m.copied
}

// SetWidth sets the render width.
func (m *PlaygroundModel) SetWidth(width int) {
	m.width = width
}

// SetTheme swaps the colors after a theme change.
func (m *PlaygroundModel) SetTheme(theme Theme) {
	m.theme = theme
}

func (m PlaygroundModel) currentParam() cssgen.Param {
	return m.Current().Params()[m.param]
}

// Copied switches the button to its confirmation and schedules the reset.
// Copying again restarts the window.
func (m *PlaygroundModel) Copied() tea.Cmd {
	m.copied = true
	m.copiedGen++
	gen := m.copiedGen
	return tea.Tick(m.copiedReset, func(time.Time) tea.Msg {
		return copiedResetMsg{gen: gen}
	})
}

// Update handles keys while the panel is focused. It returns the text to
// copy when the user asks for it.
func (m PlaygroundModel) Update(msg tea.Msg) (PlaygroundModel, tea.Cmd, string) {
	switch msg := msg.(type) {
	case copiedResetMsg:
		if msg.gen == m.copiedGen {
			m.copied = false
		}
		return m, nil, ""
	case tea.KeyMsg:
		if m.editing {
			return m.updateEditing(msg)
		}
		return m.updateKeys(msg)
	}
	if m.editing {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd, ""
	}
	return m, nil, ""
}

func (m PlaygroundModel) updateEditing(msg tea.KeyMsg) (PlaygroundModel, tea.Cmd, string) {
	switch msg.String() {
	case "enter":
		p := m.currentParam()
		if sub, err := m.Current().Set(p.Name, m.input.Value()); err != nil {
			slog.Warn("playground: set failed", "generator", m.Current().ID, "param", p.Name, "err", err)
		} else if sub {
			slog.Debug("playground: input replaced by default", "param", p.Name, "raw", m.input.Value())
		}
		m.editing = false
		m.input.Blur()
		return m, nil, ""
	case "esc":
		m.editing = false
		m.input.Blur()
		return m, nil, ""
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd, ""
}

func step(g *cssgen.Generator, name string, delta int) {
	if err := g.Step(name, delta); err != nil {
		slog.Warn("playground: step failed", "generator", g.ID, "param", name, "delta", delta, "err", err)
	}
}

func (m PlaygroundModel) updateKeys(msg tea.KeyMsg) (PlaygroundModel, tea.Cmd, string) {
	g := m.Current()
	p := m.currentParam()
	switch msg.String() {
	case "tab":
		m.tab = (m.tab + 1) % len(m.gens)
		m.param = 0
	case "shift+tab":
		m.tab = (m.tab + len(m.gens) - 1) % len(m.gens)
		m.param = 0
	case "1", "2", "3", "4":
		if i := int(msg.String()[0] - '1'); i < len(m.gens) {
			m.tab = i
			m.param = 0
		}
	case "up", "k":
		if m.param > 0 {
			m.param--
		}
	case "down", "j":
		if m.param < len(g.Params())-1 {
			m.param++
		}
	case "left", "h":
		step(g, p.Name, -1)
	case "right", "l":
		step(g, p.Name, 1)
	case "shift+left", "H":
		step(g, p.Name, -10)
	case "shift+right", "L":
		step(g, p.Name, 10)
	case " ":
		if p.Kind == cssgen.Toggle {
			step(g, p.Name, 1)
		}
	case "enter", "e":
		if p.Kind == cssgen.Toggle {
			step(g, p.Name, 1)
			break
		}
		m.editing = true
		if p.Kind == cssgen.Number {
			m.input.SetValue(strconv.Itoa(g.Number(p.Name)))
		} else {
			m.input.SetValue(g.Color(p.Name))
		}
		m.input.CursorEnd()
		return m, m.input.Focus(), ""
	case "r":
		g.Reset()
	case "y":
		return m, nil, g.Declaration()
	}
	return m, nil, ""
}

// View renders the panel.
func (m PlaygroundModel) View(focused bool) string {
	r := m.theme.Renderer
	g := m.Current()

	// Tabs
	var tabs []string
	for i, gen := range m.gens {
		style := r.NewStyle().Padding(0, 1).Foreground(m.theme.Subtext)
		if i == m.tab {
			style = style.Bold(true).Foreground(m.theme.Primary).Underline(true)
		}
		tabs = append(tabs, style.Render(strconv.Itoa(i+1)+" "+gen.Title))
	}

	// Parameter list
	labelStyle := r.NewStyle().Foreground(m.theme.Text).Width(20)
	valueStyle := r.NewStyle().Foreground(m.theme.Subtext)
	var controls strings.Builder
	for i, p := range g.Params() {
		cursor := "  "
		ls := labelStyle
		if i == m.param {
			cursor = r.NewStyle().Foreground(m.theme.Primary).Render("▸ ")
			ls = ls.Foreground(m.theme.Primary).Bold(true)
		}
		controls.WriteString(cursor + ls.Render(p.Label))
		switch {
		case i == m.param && m.editing:
			controls.WriteString(m.input.View())
		case p.Kind == cssgen.Number:
			frac := float64(g.Number(p.Name)-p.Min) / float64(p.Max-p.Min)
			controls.WriteString(RenderMiniBar(frac, 12, m.theme) + " " + valueStyle.Render(g.Display(p.Name)))
		case p.Kind == cssgen.Color:
			swatch := r.NewStyle().Foreground(lipgloss.Color(g.Color(p.Name))).Render("██")
			controls.WriteString(swatch + " " + valueStyle.Render(g.Display(p.Name)))
		default:
			box := "[ ]"
			if g.Flag(p.Name) {
				box = "[x]"
			}
			controls.WriteString(valueStyle.Render(box))
		}
		controls.WriteString("\n")
	}

	preview := renderPreview(g, m.theme, m.width/2)
	top := lipgloss.JoinHorizontal(lipgloss.Top,
		controls.String(),
		r.NewStyle().PaddingLeft(SpaceLG).Render(preview),
	)

	code := r.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(m.theme.Border).
		Foreground(m.theme.Info).
		Padding(0, 1).
		Render(g.Declaration())

	button := r.NewStyle().Foreground(m.theme.Primary).Bold(true).Render(copyButtonLabel)
	if m.copied {
		button = r.NewStyle().Foreground(m.theme.Success).Bold(true).Render(copiedButtonLabel)
	}

	hint := "[enter] interact"
	if focused {
		hint = "[tab] generator  [↑↓] parameter  [←→] adjust  [e] edit  [r] reset  [esc] leave"
	}
	hintLine := r.NewStyle().Faint(true).Render(hint)

	body := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.JoinHorizontal(lipgloss.Top, tabs...),
		"",
		top,
		"",
		code,
		button,
		"",
		hintLine,
	)
	style := m.theme.PanelStyle()
	if focused {
		style = m.theme.FocusedPanelStyle()
	}
	return style.Render(body)
}
