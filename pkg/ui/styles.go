package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/kraitsura/folio/pkg/theme"
)

// ══════════════════════════════════════════════════════════════════════════════
// DESIGN TOKENS - Consistent spacing, colors, and visual language
// ══════════════════════════════════════════════════════════════════════════════

// Spacing constants for consistent layout (in characters)
const (
	SpaceXS = 1
	SpaceSM = 2
	SpaceMD = 3
	SpaceLG = 4
)

// narrowWidth is the width below which the nav bar collapses into the menu.
const narrowWidth = 80

// ══════════════════════════════════════════════════════════════════════════════
// COLOR PALETTE - Dracula for dark mode, a paper palette for light mode
// ══════════════════════════════════════════════════════════════════════════════

var (
	colorBg        = lipgloss.AdaptiveColor{Light: "#FCFCF9", Dark: "#282A36"}
	colorBgSubtle  = lipgloss.AdaptiveColor{Light: "#F0EFEA", Dark: "#363949"}
	colorText      = lipgloss.AdaptiveColor{Light: "#13343B", Dark: "#F8F8F2"}
	colorSubtext   = lipgloss.AdaptiveColor{Light: "#626C71", Dark: "#BFBFBF"}
	colorMuted     = lipgloss.AdaptiveColor{Light: "#A7A9A9", Dark: "#6272A4"}
	colorBorder    = lipgloss.AdaptiveColor{Light: "#D6D4CC", Dark: "#44475A"}
	colorPrimary   = lipgloss.AdaptiveColor{Light: "#21808D", Dark: "#BD93F9"}
	colorSecondary = lipgloss.AdaptiveColor{Light: "#5E5240", Dark: "#6272A4"}
	colorSuccess   = lipgloss.AdaptiveColor{Light: "#21808D", Dark: "#50FA7B"}
	colorDanger    = lipgloss.AdaptiveColor{Light: "#C0152F", Dark: "#FF5555"}
	colorInfo      = lipgloss.AdaptiveColor{Light: "#626C71", Dark: "#8BE9FD"}
	colorAccent    = lipgloss.AdaptiveColor{Light: "#A84B2F", Dark: "#FF79C6"}
)

// Theme carries the renderer and the semantic colors every view draws with.
// The renderer's background flag picks the light or dark side of each
// adaptive color, so switching modes is a matter of flipping it.
type Theme struct {
	Renderer *lipgloss.Renderer
	Mode     theme.Mode

	Bg        lipgloss.AdaptiveColor
	BgSubtle  lipgloss.AdaptiveColor
	Text      lipgloss.AdaptiveColor
	Subtext   lipgloss.AdaptiveColor
	Muted     lipgloss.AdaptiveColor
	Border    lipgloss.AdaptiveColor
	Primary   lipgloss.AdaptiveColor
	Secondary lipgloss.AdaptiveColor
	Success   lipgloss.AdaptiveColor
	Danger    lipgloss.AdaptiveColor
	Info      lipgloss.AdaptiveColor
	Accent    lipgloss.AdaptiveColor

	Base lipgloss.Style
}

// NewTheme builds the theme for mode on renderer r.
func NewTheme(r *lipgloss.Renderer, mode theme.Mode) Theme {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	r.SetHasDarkBackground(mode != theme.Light)
	return Theme{
		Renderer:  r,
		Mode:      mode,
		Bg:        colorBg,
		BgSubtle:  colorBgSubtle,
		Text:      colorText,
		Subtext:   colorSubtext,
		Muted:     colorMuted,
		Border:    colorBorder,
		Primary:   colorPrimary,
		Secondary: colorSecondary,
		Success:   colorSuccess,
		Danger:    colorDanger,
		Info:      colorInfo,
		Accent:    colorAccent,
		Base:      r.NewStyle().Foreground(colorText),
	}
}

// Hex resolves an adaptive color for the theme's mode.
func (t Theme) Hex(c lipgloss.AdaptiveColor) string {
	if t.Mode == theme.Light {
		return c.Light
	}
	return c.Dark
}

// GlamourStyle names the markdown style matching the mode.
func (t Theme) GlamourStyle() string {
	if t.Mode == theme.Light {
		return "light"
	}
	return "dark"
}

// ══════════════════════════════════════════════════════════════════════════════
// PANEL STYLES
// ══════════════════════════════════════════════════════════════════════════════

// PanelStyle is the style for unfocused panels
func (t Theme) PanelStyle() lipgloss.Style {
	return t.Renderer.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Padding(0, 1)
}

// FocusedPanelStyle is the style for the panel receiving keys
func (t Theme) FocusedPanelStyle() lipgloss.Style {
	return t.PanelStyle().BorderForeground(t.Primary)
}

// ══════════════════════════════════════════════════════════════════════════════
// BARS AND DIVIDERS
// ══════════════════════════════════════════════════════════════════════════════

// RenderMiniBar renders a mini horizontal bar for a value between 0 and 1
func RenderMiniBar(value float64, width int, t Theme) string {
	if width <= 0 {
		return ""
	}
	if value < 0 {
		value = 0
	}
	if value > 1 {
		value = 1
	}

	filled := int(value * float64(width))
	if filled > width {
		filled = width
	}

	bar := t.Renderer.NewStyle().Foreground(t.Primary).Render(strings.Repeat("█", filled))
	rest := t.Renderer.NewStyle().Foreground(t.Muted).Render(strings.Repeat("░", width-filled))
	return bar + rest
}

// RenderDivider renders a horizontal divider line
func RenderDivider(width int, t Theme) string {
	if width <= 0 {
		return ""
	}
	return t.Renderer.NewStyle().
		Foreground(t.Border).
		Render(strings.Repeat("─", width))
}
