package ui

import (
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/muesli/reflow/wordwrap"

	"github.com/kraitsura/folio/pkg/anim"
)

// backToTopLines is how far the page must be scrolled before the back to
// top hint shows.
const backToTopLines = 10

// block is one section's rendered text in the page.
type block struct {
	id   string
	text string
}

type scrollFlushMsg struct{}

// SectionsModel is the scrolling page. In paged layout it holds only the
// active section; in continuous layout it holds every section stacked, and
// the visible share of each one drives the active section.
type SectionsModel struct {
	viewport   viewport.Model
	continuous bool

	order   []string
	offsets map[string]int
	heights map[string]int

	md      *glamour.TermRenderer
	mdWidth int
	mdStyle string
	cache   map[string]string

	throttle *anim.Throttle
	flushing bool
	theme    Theme
}

// NewSectionsModel creates an empty page.
func NewSectionsModel(scrollLimit time.Duration, theme Theme) SectionsModel {
	vp := viewport.New(0, 0)
	vp.MouseWheelEnabled = false
	return SectionsModel{
		viewport: vp,
		offsets:  make(map[string]int),
		heights:  make(map[string]int),
		cache:    make(map[string]string),
		throttle: anim.NewThrottle(scrollLimit),
		theme:    theme,
	}
}

// SetSize sets the page dimensions. Markdown is re-rendered at the new wrap
// width on next use.
func (m *SectionsModel) SetSize(width, height int) {
	m.viewport.Width = width
	m.viewport.Height = height
	if width != m.mdWidth {
		m.Invalidate()
	}
}

// SetTheme swaps the colors after a theme change.
func (m *SectionsModel) SetTheme(theme Theme) {
	m.theme = theme
	m.Invalidate()
}

// Invalidate drops the rendered markdown.
func (m *SectionsModel) Invalidate() {
	m.md = nil
	m.cache = make(map[string]string)
}

// Continuous reports the layout.
func (m SectionsModel) Continuous() bool {
	return m.continuous
}

// ToggleLayout switches between paged and continuous layout.
func (m *SectionsModel) ToggleLayout() bool {
	m.continuous = !m.continuous
	return m.continuous
}

// Markdown renders a section body, cached per id until Invalidate.
func (m *SectionsModel) Markdown(id, body string) string {
	if body == "" {
		return ""
	}
	if out, ok := m.cache[id]; ok {
		return out
	}
	width := m.viewport.Width - 2*SpaceSM
	if width < 20 {
		width = 20
	}
	style := m.theme.GlamourStyle()
	if m.md == nil || m.mdWidth != width || m.mdStyle != style {
		r, err := glamour.NewTermRenderer(
			glamour.WithStandardStyle(style),
			glamour.WithWordWrap(width),
		)
		if err != nil {
			slog.Warn("sections: markdown renderer unavailable", "err", err)
			m.md = nil
		} else {
			m.md = r
		}
		m.mdWidth, m.mdStyle = width, style
	}

	var out string
	if m.md != nil {
		rendered, err := m.md.Render(body)
		if err != nil {
			slog.Warn("sections: markdown render failed", "section", id, "err", err)
		} else {
			out = strings.TrimRight(rendered, "\n")
		}
	}
	if out == "" {
		out = wordwrap.String(body, width)
	}
	m.cache[id] = out
	return out
}

// SetBlocks lays out the page, keeping the scroll position.
func (m *SectionsModel) SetBlocks(blocks []block) {
	m.order = m.order[:0]
	m.offsets = make(map[string]int, len(blocks))
	m.heights = make(map[string]int, len(blocks))

	var b strings.Builder
	line := 0
	for i, blk := range blocks {
		if i > 0 {
			b.WriteString("\n")
			line++
		}
		text := strings.TrimRight(blk.text, "\n")
		h := strings.Count(text, "\n") + 1
		m.order = append(m.order, blk.id)
		m.offsets[blk.id] = line
		m.heights[blk.id] = h
		b.WriteString(text)
		b.WriteString("\n")
		line += h
	}
	m.viewport.SetContent(b.String())
}

// ScrollTo brings a section's first line to the top of the page.
func (m *SectionsModel) ScrollTo(id string) {
	if off, ok := m.offsets[id]; ok {
		m.viewport.SetYOffset(off)
	}
}

// GotoTop scrolls to the top of the page.
func (m *SectionsModel) GotoTop() {
	m.viewport.GotoTop()
}

// Scroll moves the page by n lines, negative for up.
func (m *SectionsModel) Scroll(n int) {
	if n < 0 {
		m.viewport.ScrollUp(-n)
	} else {
		m.viewport.ScrollDown(n)
	}
}

// Offset returns the first visible line.
func (m SectionsModel) Offset() int {
	return m.viewport.YOffset
}

// ScrollPercent returns how far down the page is scrolled, 0..1.
func (m SectionsModel) ScrollPercent() float64 {
	if m.viewport.TotalLineCount() <= m.viewport.Height {
		return 0
	}
	return m.viewport.ScrollPercent()
}

// ShowBackToTop reports whether the back to top hint should show.
func (m SectionsModel) ShowBackToTop() bool {
	return m.viewport.YOffset > backToTopLines
}

// Ratios returns the visible share of each section block, the way an
// intersection observer reports it.
func (m SectionsModel) Ratios() map[string]float64 {
	top := m.viewport.YOffset
	bottom := top + m.viewport.Height
	ratios := make(map[string]float64, len(m.order))
	for _, id := range m.order {
		start, h := m.offsets[id], m.heights[id]
		if h <= 0 {
			continue
		}
		visible := min(bottom, start+h) - max(top, start)
		if visible < 0 {
			visible = 0
		}
		ratios[id] = float64(visible) / float64(h)
	}
	return ratios
}

// Scrolled reports a scroll at now. It returns true when the observer should
// run now; otherwise a trailing flush may be returned so the final position
// is still evaluated.
func (m *SectionsModel) Scrolled(now time.Time) (bool, tea.Cmd) {
	if m.throttle.Allow(now) {
		return true, nil
	}
	if m.flushing {
		return false, nil
	}
	m.flushing = true
	return false, tea.Tick(m.throttle.Limit(), func(time.Time) tea.Msg {
		return scrollFlushMsg{}
	})
}

// Flushed handles the trailing flush, reporting whether a dropped scroll
// still needs evaluating.
func (m *SectionsModel) Flushed(now time.Time) bool {
	m.flushing = false
	if !m.throttle.Pending() {
		return false
	}
	return m.throttle.Allow(now)
}

// View renders the visible part of the page.
func (m SectionsModel) View() string {
	return m.viewport.View()
}
