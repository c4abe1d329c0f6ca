package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// HelpOverlayModel shows keyboard shortcuts help
type HelpOverlayModel struct {
	visible bool
	keys    keyMap
	theme   Theme
}

// NewHelpOverlayModel creates a new help overlay
func NewHelpOverlayModel(keys keyMap, theme Theme) HelpOverlayModel {
	return HelpOverlayModel{keys: keys, theme: theme}
}

// Toggle toggles visibility
func (m *HelpOverlayModel) Toggle() {
	m.visible = !m.visible
}

// IsVisible returns true if overlay is showing
func (m HelpOverlayModel) IsVisible() bool {
	return m.visible
}

// SetTheme swaps the colors after a theme change.
func (m *HelpOverlayModel) SetTheme(theme Theme) {
	m.theme = theme
}

// Update handles input
func (m HelpOverlayModel) Update(msg tea.Msg) (HelpOverlayModel, tea.Cmd) {
	if !m.visible {
		return m, nil
	}
	if _, ok := msg.(tea.KeyMsg); ok {
		// Any key closes help
		m.visible = false
	}
	return m, nil
}

// View renders the help overlay
func (m HelpOverlayModel) View() string {
	if !m.visible {
		return ""
	}

	var b strings.Builder
	r := m.theme.Renderer

	titleStyle := r.NewStyle().Bold(true).Foreground(m.theme.Primary)
	b.WriteString(titleStyle.Render("Keyboard Shortcuts"))
	b.WriteString("\n\n")

	sectionStyle := r.NewStyle().Bold(true).Foreground(m.theme.Secondary)
	keyStyle := r.NewStyle().Foreground(m.theme.Primary).Width(12)
	descStyle := r.NewStyle().Foreground(m.theme.Subtext)

	groups := m.keys.FullHelp()
	names := []string{"NAVIGATION", "PAGE", "ACTIONS"}
	for i, group := range groups {
		b.WriteString(sectionStyle.Render(names[i]) + "\n")
		writeBindings(&b, group, keyStyle, descStyle)
		b.WriteString("\n")
	}

	b.WriteString(sectionStyle.Render("PANELS") + "\n")
	panels := []struct{ key, desc string }{
		{"tab", "Next generator / field"},
		{"←/→", "Adjust parameter"},
		{"y", "Copy CSS"},
		{"+/-/0", "Zoom resume / reset"},
		{"ctrl+s", "Send message"},
	}
	for _, p := range panels {
		b.WriteString("  " + keyStyle.Render(p.key) + descStyle.Render(p.desc) + "\n")
	}

	b.WriteString("\n")
	hintStyle := r.NewStyle().Faint(true).Italic(true)
	b.WriteString(hintStyle.Render("[Press any key to close]"))

	boxStyle := r.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.theme.Border).
		Padding(1, 2)

	return boxStyle.Render(b.String())
}

func writeBindings(b *strings.Builder, bindings []key.Binding, keyStyle, descStyle lipgloss.Style) {
	for _, kb := range bindings {
		h := kb.Help()
		b.WriteString("  " + keyStyle.Render(h.Key) + descStyle.Render(h.Desc) + "\n")
	}
}
