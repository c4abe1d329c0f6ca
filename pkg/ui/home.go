package ui

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/kraitsura/folio/pkg/typing"
)

type typingTickMsg struct{ gen uint64 }

// HomeModel is the hero section: name, typed headline and the two call to
// action shortcuts.
type HomeModel struct {
	name    string
	tagline string
	typer   *typing.Typer
	text    string
	running bool
	gen     uint64
	width   int
	theme   Theme
}

// NewHomeModel creates the hero. The typer does not run until Start.
func NewHomeModel(name, tagline string, phrases []string, timing typing.Timing, theme Theme) HomeModel {
	if len(phrases) == 0 {
		phrases = typing.DefaultPhrases
	}
	return HomeModel{
		name:    name,
		tagline: tagline,
		typer:   typing.New(phrases, timing),
		theme:   theme,
	}
}

// Start (re)starts the headline from an empty line. Ticks scheduled by an
// earlier run are dropped.
func (m *HomeModel) Start() tea.Cmd {
	m.gen++
	m.running = true
	m.typer.Reset()
	return m.tick()
}

// Stop halts the headline; the pending tick is dropped when it arrives.
func (m *HomeModel) Stop() {
	m.gen++
	m.running = false
}

// Running reports whether the headline is animating.
func (m HomeModel) Running() bool {
	return m.running
}

// Text returns the headline as currently typed.
func (m HomeModel) Text() string {
	return m.text
}

func (m *HomeModel) tick() tea.Cmd {
	text, delay := m.typer.Tick()
	m.text = text
	gen := m.gen
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return typingTickMsg{gen: gen}
	})
}

// SetContent replaces the hero text, restarting the headline if it runs.
func (m *HomeModel) SetContent(name, tagline string, phrases []string, timing typing.Timing) tea.Cmd {
	m.name, m.tagline = name, tagline
	if len(phrases) == 0 {
		phrases = typing.DefaultPhrases
	}
	m.typer = typing.New(phrases, timing)
	m.text = ""
	if m.running {
		return m.Start()
	}
	return nil
}

// SetWidth sets the render width.
func (m *HomeModel) SetWidth(width int) {
	m.width = width
}

// SetTheme swaps the colors after a theme change.
func (m *HomeModel) SetTheme(theme Theme) {
	m.theme = theme
}

// Update advances the headline on its own ticks only.
func (m HomeModel) Update(msg tea.Msg) (HomeModel, tea.Cmd) {
	if tick, ok := msg.(typingTickMsg); ok {
		if !m.running || tick.gen != m.gen {
			return m, nil
		}
		return m, m.tick()
	}
	return m, nil
}

// View renders the hero block.
func (m HomeModel) View() string {
	r := m.theme.Renderer
	var b strings.Builder

	b.WriteString(r.NewStyle().Foreground(m.theme.Subtext).Render("Hi, I'm"))
	b.WriteString("\n")
	b.WriteString(r.NewStyle().Bold(true).Foreground(m.theme.Text).Render(m.name))
	b.WriteString("\n\n")

	cursor := r.NewStyle().Foreground(m.theme.Primary).Blink(true).Render("▌")
	b.WriteString(r.NewStyle().Foreground(m.theme.Primary).Bold(true).Render(m.text) + cursor)
	b.WriteString("\n\n")

	if m.tagline != "" {
		b.WriteString(r.NewStyle().Foreground(m.theme.Subtext).Render(m.tagline))
		b.WriteString("\n\n")
	}

	btn := r.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.theme.Primary).
		Foreground(m.theme.Primary).
		Padding(0, 1)
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
		btn.Render("[p] View Projects"),
		" ",
		btn.BorderForeground(m.theme.Border).Foreground(m.theme.Text).Render("[c] Get In Touch"),
	))

	style := r.NewStyle().Padding(1, SpaceSM)
	if m.width > 0 {
		style = style.Width(m.width)
	}
	return style.Render(b.String())
}
