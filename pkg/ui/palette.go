package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sahilm/fuzzy"
)

// paletteEntry is a section the palette can jump to.
type paletteEntry struct {
	id    string
	title string
}

// PaletteModel is the fuzzy section finder.
type PaletteModel struct {
	entries []paletteEntry
	matches []paletteEntry
	cursor  int
	input   textinput.Model
	visible bool
	theme   Theme
}

// NewPaletteModel creates a hidden palette.
func NewPaletteModel(theme Theme) PaletteModel {
	ti := textinput.New()
	ti.Prompt = "/ "
	ti.Placeholder = "section"
	ti.CharLimit = 32
	ti.Width = 24
	return PaletteModel{input: ti, theme: theme}
}

// SetEntries sets the sections in page order.
func (m *PaletteModel) SetEntries(ids, titles []string) {
	m.entries = m.entries[:0]
	for i, id := range ids {
		m.entries = append(m.entries, paletteEntry{id: id, title: titles[i]})
	}
	m.filter()
}

// SetTheme swaps the colors after a theme change.
func (m *PaletteModel) SetTheme(theme Theme) {
	m.theme = theme
}

// IsVisible returns true if the palette is showing
func (m PaletteModel) IsVisible() bool {
	return m.visible
}

// Show opens the palette with an empty query.
func (m *PaletteModel) Show() tea.Cmd {
	m.visible = true
	m.input.Reset()
	m.filter()
	return m.input.Focus()
}

// Hide closes the palette.
func (m *PaletteModel) Hide() {
	m.visible = false
	m.input.Blur()
}

// Matches returns the ids matching the current query, best first.
func (m PaletteModel) Matches() []string {
	out := make([]string, len(m.matches))
	for i, e := range m.matches {
		out[i] = e.id
	}
	return out
}

func (m *PaletteModel) filter() {
	query := strings.TrimSpace(m.input.Value())
	m.cursor = 0
	if query == "" {
		m.matches = append(m.matches[:0], m.entries...)
		return
	}
	targets := make([]string, len(m.entries))
	for i, e := range m.entries {
		targets[i] = e.title + " " + e.id
	}
	m.matches = m.matches[:0]
	for _, match := range fuzzy.Find(query, targets) {
		m.matches = append(m.matches, m.entries[match.Index])
	}
}

// Update handles keys while visible. It returns the chosen section id when
// the user confirms.
func (m PaletteModel) Update(msg tea.Msg) (PaletteModel, tea.Cmd, string) {
	if !m.visible {
		return m, nil, ""
	}
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "esc":
			m.Hide()
			return m, nil, ""
		case "enter":
			m.Hide()
			if len(m.matches) == 0 {
				return m, nil, ""
			}
			return m, nil, m.matches[m.cursor].id
		case "up", "ctrl+p":
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil, ""
		case "down", "ctrl+n":
			if m.cursor < len(m.matches)-1 {
				m.cursor++
			}
			return m, nil, ""
		}
	}
	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != before {
		m.filter()
	}
	return m, cmd, ""
}

// View renders the palette box.
func (m PaletteModel) View() string {
	if !m.visible {
		return ""
	}
	r := m.theme.Renderer
	var b strings.Builder
	b.WriteString(m.input.View())
	b.WriteString("\n\n")
	if len(m.matches) == 0 {
		b.WriteString(r.NewStyle().Foreground(m.theme.Muted).Render("no matching section"))
	}
	for i, e := range m.matches {
		style := r.NewStyle().Foreground(m.theme.Subtext)
		prefix := "  "
		if i == m.cursor {
			style = style.Foreground(m.theme.Primary).Bold(true)
			prefix = "▸ "
		}
		b.WriteString(style.Render(prefix+e.title) + "\n")
	}
	return m.theme.FocusedPanelStyle().Padding(0, 2).Render(strings.TrimRight(b.String(), "\n"))
}
