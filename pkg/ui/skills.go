package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-runewidth"

	"github.com/kraitsura/folio/pkg/anim"
	"github.com/kraitsura/folio/pkg/content"
)

type skillsTickMsg struct{ gen uint64 }

// SkillsModel draws the skill bars. The bars fill and the counters climb
// once, the first time the section becomes active.
type SkillsModel struct {
	skills   []content.Skill
	anim     *anim.SkillAnimation
	bar      progress.Model
	started  time.Time
	elapsed  time.Duration
	animated bool
	running  bool
	gen      uint64
	width    int
	theme    Theme
	now      func() time.Time
}

// NewSkillsModel creates the bars at zero.
func NewSkillsModel(skills []content.Skill, theme Theme) SkillsModel {
	m := SkillsModel{theme: theme, now: time.Now}
	m.SetSkills(skills)
	m.SetTheme(theme)
	return m
}

// SetSkills replaces the skill list. Bars that already played show their
// final levels.
func (m *SkillsModel) SetSkills(skills []content.Skill) {
	m.skills = skills
	levels := make([]int, len(skills))
	for i, s := range skills {
		levels[i] = s.Level
	}
	m.anim = anim.NewSkillAnimation(levels)
	if m.animated {
		m.elapsed = m.anim.Duration()
	}
}

// SetTheme swaps the colors after a theme change.
func (m *SkillsModel) SetTheme(theme Theme) {
	m.theme = theme
	m.bar = progress.New(
		progress.WithGradient(theme.Hex(theme.Primary), theme.Hex(theme.Accent)),
		progress.WithoutPercentage(),
		progress.WithWidth(m.barWidth()),
	)
}

// SetWidth sets the render width.
func (m *SkillsModel) SetWidth(width int) {
	m.width = width
	m.bar.Width = m.barWidth()
}

func (m SkillsModel) barWidth() int {
	w := m.width - 24
	if w < 10 {
		w = 10
	}
	if w > 50 {
		w = 50
	}
	return w
}

// Animate starts the fill. Later calls are no-ops.
func (m *SkillsModel) Animate() tea.Cmd {
	if m.animated {
		return nil
	}
	m.animated = true
	m.running = true
	m.gen++
	m.started = m.now()
	return m.tick()
}

// Animated reports whether the fill has been triggered.
func (m SkillsModel) Animated() bool {
	return m.animated
}

func (m SkillsModel) tick() tea.Cmd {
	gen := m.gen
	return tea.Tick(anim.CounterInterval, func(time.Time) tea.Msg {
		return skillsTickMsg{gen: gen}
	})
}

// Update steps the counters.
func (m SkillsModel) Update(msg tea.Msg) (SkillsModel, tea.Cmd) {
	tick, ok := msg.(skillsTickMsg)
	if !ok || tick.gen != m.gen || !m.running {
		return m, nil
	}
	m.elapsed = m.now().Sub(m.started)
	if m.anim.Done(m.elapsed) {
		m.running = false
		return m, nil
	}
	return m, m.tick()
}

// Value returns the counter currently shown for skill i.
func (m SkillsModel) Value(i int) int {
	if !m.animated {
		return 0
	}
	return m.anim.At(i, m.elapsed)
}

// View renders one row per skill, grouped under headings.
func (m SkillsModel) View() string {
	r := m.theme.Renderer
	nameStyle := r.NewStyle().Foreground(m.theme.Text)
	groupStyle := r.NewStyle().Bold(true).Foreground(m.theme.Secondary)
	pctStyle := r.NewStyle().Foreground(m.theme.Subtext)

	nameWidth := 12
	for _, s := range m.skills {
		if w := runewidth.StringWidth(s.Name); w > nameWidth {
			nameWidth = w
		}
	}

	var b strings.Builder
	group := ""
	for i, s := range m.skills {
		if s.Group != group {
			if group != "" {
				b.WriteString("\n")
			}
			group = s.Group
			if group != "" {
				b.WriteString(groupStyle.Render(group) + "\n")
			}
		}
		v := m.Value(i)
		name := runewidth.FillRight(s.Name, nameWidth)
		b.WriteString("  " + nameStyle.Render(name) + " ")
		b.WriteString(m.bar.ViewAs(float64(v) / 100))
		b.WriteString(pctStyle.Render(fmt.Sprintf(" %3d%%", v)))
		b.WriteString("\n")
	}
	return b.String()
}
