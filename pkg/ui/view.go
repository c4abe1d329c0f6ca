package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
)

const (
	headerHeight = 2
	statusHeight = 1
)

// refresh lays out the page from the current component state.
func (m *Model) refresh() {
	if !m.ready {
		return
	}
	ids := m.nav.IDs()
	if !m.sections.Continuous() {
		ids = []string{m.nav.Active()}
	}
	blocks := make([]block, 0, len(ids))
	for _, id := range ids {
		blocks = append(blocks, block{id: id, text: m.sectionView(id)})
	}
	m.sections.SetBlocks(blocks)
}

func (m *Model) sectionView(id string) string {
	if id == "home" {
		return m.home.View()
	}

	r := m.theme.Renderer
	focused := m.focused && m.nav.Active() == id
	heading := r.NewStyle().Bold(true).Foreground(m.theme.Primary).Render(m.nav.Title(id)) +
		r.NewStyle().Foreground(m.theme.Muted).Render("  #"+id)

	parts := []string{heading}
	if s, ok := m.content.Section(id); ok {
		if md := m.sections.Markdown(id, s.Body); md != "" {
			parts = append(parts, md)
		}
	}

	switch id {
	case "skills":
		parts = append(parts, m.skills.View())
	case "css-playground":
		parts = append(parts, m.playground.View(focused))
	case "resume":
		parts = append(parts, m.resume.View(focused))
	case "contact":
		parts = append(parts, m.contactCardsView(), m.contact.View(focused))
	}

	return r.NewStyle().Padding(1, SpaceSM).Render(strings.Join(parts, "\n\n"))
}

func (m Model) contactCardsView() string {
	r := m.theme.Renderer
	var cards []string
	for _, c := range m.content.Contacts {
		cards = append(cards, r.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(m.theme.Border).
			Padding(0, 1).
			Render(r.NewStyle().Foreground(m.theme.Subtext).Render(c.Label)+"\n"+
				r.NewStyle().Foreground(m.theme.Text).Render(c.Value)))
	}
	if len(cards) == 0 {
		return ""
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cards...)
}

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return "Loading..."
	}
	if m.loading.IsVisible() {
		return m.loading.View()
	}

	bodyHeight := m.sections.viewport.Height
	body := m.sections.View()
	switch {
	case m.helpOverlay.IsVisible():
		body = lipgloss.Place(m.width, bodyHeight, lipgloss.Center, lipgloss.Center, m.helpOverlay.View())
	case m.palette.IsVisible():
		body = lipgloss.Place(m.width, bodyHeight, lipgloss.Center, lipgloss.Top, m.palette.View())
	case m.cards.IsOpen():
		body = lipgloss.Place(m.width, bodyHeight, lipgloss.Center, lipgloss.Center, m.cards.View())
	case m.nav.MenuOpen():
		body = lipgloss.Place(m.width, bodyHeight, lipgloss.Left, lipgloss.Top, m.menuView())
	}
	if m.toast.IsVisible() {
		body = overlayTopRight(body, m.toast.View(), m.width)
	}

	return lipgloss.JoinVertical(lipgloss.Left, m.headerView(), body, m.statusView())
}

func (m Model) headerView() string {
	r := m.theme.Renderer
	brand := r.NewStyle().Bold(true).Foreground(m.theme.Primary).Render(m.content.Name)
	toggle := r.NewStyle().Foreground(m.theme.Accent).Render(m.themes.Mode().Icon() + " [t]")

	var links string
	if m.width >= narrowWidth {
		var parts []string
		for _, s := range m.nav.Sections() {
			style := r.NewStyle().Foreground(m.theme.Subtext)
			if s.Visible {
				style = r.NewStyle().Foreground(m.theme.Primary).Bold(true).Underline(true)
			}
			parts = append(parts, style.Render(s.Title))
		}
		links = strings.Join(parts, "  ")
	} else {
		links = r.NewStyle().Foreground(m.theme.Subtext).Render("☰ " + m.nav.Title(m.nav.Active()) + " [m]")
	}

	left := brand + "   " + links
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(toggle)
	if gap < 1 {
		left = truncate.StringWithTail(left, uint(max(m.width-lipgloss.Width(toggle)-1, 0)), "…")
		gap = 1
	}
	line := left + strings.Repeat(" ", gap) + toggle
	return line + "\n" + RenderDivider(m.width, m.theme)
}

func (m Model) menuView() string {
	r := m.theme.Renderer
	var b strings.Builder
	for i, s := range m.nav.Sections() {
		style := r.NewStyle().Foreground(m.theme.Text)
		prefix := "  "
		if i == m.menuCursor {
			style = style.Foreground(m.theme.Primary).Bold(true)
			prefix = "▸ "
		}
		marker := ""
		if s.Visible {
			marker = r.NewStyle().Foreground(m.theme.Success).Render(" •")
		}
		b.WriteString(fmt.Sprintf("%s%d %s%s\n", prefix, i+1, style.Render(s.Title), marker))
	}
	b.WriteString(r.NewStyle().Faint(true).Render("[enter] go  [esc] close"))
	return m.theme.FocusedPanelStyle().Render(b.String())
}

func (m Model) statusView() string {
	r := m.theme.Renderer
	muted := r.NewStyle().Foreground(m.theme.Muted)

	parts := []string{r.NewStyle().Foreground(m.theme.Primary).Render(m.nav.Fragment())}
	if m.sections.Continuous() {
		parts = append(parts, muted.Render("continuous"))
	}
	parts = append(parts, muted.Render(fmt.Sprintf("%3.0f%%", m.sections.ScrollPercent()*100)))
	if m.sections.ShowBackToTop() {
		parts = append(parts, r.NewStyle().Foreground(m.theme.Accent).Render("↑ top [g]"))
	}
	left := strings.Join(parts, "  ")
	right := m.help.View(m.keys)

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	line := left + "  " + right
	if gap >= 2 {
		line = left + strings.Repeat(" ", gap) + right
	}
	if m.width > 0 {
		line = truncate.StringWithTail(line, uint(m.width), "…")
	}
	return line
}

// overlayTopRight draws box over the first lines of body, right aligned.
func overlayTopRight(body, box string, width int) string {
	lines := strings.Split(body, "\n")
	for i, bl := range strings.Split(box, "\n") {
		if i >= len(lines) {
			break
		}
		lines[i] = lipgloss.PlaceHorizontal(width, lipgloss.Right, bl)
	}
	return strings.Join(lines, "\n")
}
