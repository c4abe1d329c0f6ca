package ui

import (
	"fmt"
	"image"
	"image/color"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/kraitsura/folio/pkg/cssgen"
	"github.com/kraitsura/folio/pkg/resume"
)

// panStep is how far one pan key moves the page, in viewer pixels.
const panStep = 4

// ResumeModel is the zoom/pan viewer panel. Each terminal cell shows two
// vertical pixels, so viewer pixels map to cells 1:1 across and 2:1 down.
type ResumeModel struct {
	viewer *resume.Viewer
	page   image.Image

	width, height int

	cache *canvasCache
	theme Theme
}

// canvasCache is shared by copies of the model so View can reuse the last
// render while the transform is unchanged.
type canvasCache struct {
	key  string
	text string
}

// NewResumeModel creates the panel showing page.
func NewResumeModel(page image.Image, minScale, maxScale float64, theme Theme) ResumeModel {
	return ResumeModel{
		viewer: resume.NewViewer(minScale, maxScale),
		page:   page,
		cache:  &canvasCache{},
		theme:  theme,
	}
}

// Viewer exposes the transform state.
func (m ResumeModel) Viewer() *resume.Viewer {
	return m.viewer
}

// SetPage replaces the displayed image.
func (m *ResumeModel) SetPage(page image.Image) {
	m.page = page
	m.cache.key = ""
}

// SetSize sets the canvas size in cells.
func (m *ResumeModel) SetSize(width, height int) {
	m.width, m.height = width, height
}

// SetTheme swaps the colors after a theme change.
func (m *ResumeModel) SetTheme(theme Theme) {
	m.theme = theme
	m.cache.key = ""
}

// toViewer maps a screen cell to viewer pixels. Panning only uses pointer
// deltas, so the panel's screen position cancels out.
func toViewer(x, y int) resume.Point {
	return resume.Point{X: float64(x), Y: float64(2 * y)}
}

// Update handles zoom and pan input while the panel is focused.
func (m ResumeModel) Update(msg tea.Msg) (ResumeModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "+", "=":
			m.viewer.ZoomIn()
		case "-", "_":
			m.viewer.ZoomOut()
		case "0":
			m.viewer.Reset()
		case "h", "left":
			m.viewer.Pan(-panStep, 0)
		case "l", "right":
			m.viewer.Pan(panStep, 0)
		case "k", "up":
			m.viewer.Pan(0, -panStep)
		case "j", "down":
			m.viewer.Pan(0, panStep)
		}
	case tea.MouseMsg:
		switch {
		case msg.Button == tea.MouseButtonWheelUp:
			m.viewer.Wheel(-1)
		case msg.Button == tea.MouseButtonWheelDown:
			m.viewer.Wheel(1)
		case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
			m.viewer.PointerDown(toViewer(msg.X, msg.Y))
		case msg.Action == tea.MouseActionMotion:
			m.viewer.PointerMove(toViewer(msg.X, msg.Y))
		case msg.Action == tea.MouseActionRelease:
			m.viewer.PointerUp()
		}
	}
	return m, nil
}

// Leave ends any pan gesture, as when the pointer leaves the viewer.
func (m *ResumeModel) Leave() {
	m.viewer.PointerUp()
}

func (m ResumeModel) canvas() string {
	w, h := m.width, m.height
	if w < 10 {
		w = 10
	}
	if h < 5 {
		h = 5
	}
	key := fmt.Sprintf("%dx%d %s %s", w, h, m.viewer.Transform(), m.theme.Mode)
	if key == m.cache.key {
		return m.cache.text
	}
	bg := color.RGBA{0x28, 0x2a, 0x36, 0xff}
	if c, ok := cssgen.RGBA(m.theme.Hex(m.theme.BgSubtle)); ok {
		bg = c
	}
	img := resume.Render(m.page, m.viewer, w, 2*h, bg)
	m.cache.text = resume.HalfBlocks(img)
	m.cache.key = key
	return m.cache.text
}

// View renders the panel.
func (m ResumeModel) View(focused bool) string {
	r := m.theme.Renderer
	status := r.NewStyle().Foreground(m.theme.Subtext).Render(
		fmt.Sprintf("%3.0f%%  %s  %s", m.viewer.Scale()*100, m.viewer.State(), m.viewer.Transform()))
	hint := "[enter] interact"
	if focused {
		hint = "[+/-] zoom  [0] reset  [hjkl/drag] pan  [wheel] zoom  [esc] leave"
	}
	body := lipgloss.JoinVertical(lipgloss.Left,
		m.canvas(),
		status,
		r.NewStyle().Faint(true).Render(hint),
	)
	style := m.theme.PanelStyle()
	if focused {
		style = m.theme.FocusedPanelStyle()
	}
	return style.Render(body)
}
