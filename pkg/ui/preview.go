package ui

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/kraitsura/folio/pkg/cssgen"
)

// cell is one character of a preview canvas. An empty fg draws in the
// theme's text color.
type cell struct {
	r  rune
	fg string
}

type canvas struct {
	w, h  int
	cells [][]cell
}

func newCanvas(w, h int) *canvas {
	c := &canvas{w: w, h: h, cells: make([][]cell, h)}
	for y := range c.cells {
		row := make([]cell, w)
		for x := range row {
			row[x] = cell{r: ' '}
		}
		c.cells[y] = row
	}
	return c
}

func (c *canvas) set(x, y int, r rune, fg string) {
	if x < 0 || y < 0 || x >= c.w || y >= c.h {
		return
	}
	c.cells[y][x] = cell{r: r, fg: fg}
}

func (c *canvas) text(x, y int, s, fg string) {
	for i, r := range []rune(s) {
		c.set(x+i, y, r, fg)
	}
}

func (c *canvas) render(t Theme) string {
	var b strings.Builder
	for y, row := range c.cells {
		if y > 0 {
			b.WriteByte('\n')
		}
		start := 0
		for x := 1; x <= len(row); x++ {
			if x < len(row) && row[x].fg == row[start].fg {
				continue
			}
			var run strings.Builder
			for _, cl := range row[start:x] {
				run.WriteRune(cl.r)
			}
			style := t.Renderer.NewStyle().Foreground(t.Text)
			if fg := row[start].fg; fg != "" {
				style = t.Renderer.NewStyle().Foreground(lipgloss.Color(fg))
			}
			b.WriteString(style.Render(run.String()))
			start = x
		}
	}
	return b.String()
}

// shade picks a glyph for a blur radius.
func shade(blur, limit int) rune {
	switch f := float64(blur) / float64(limit); {
	case f == 0:
		return '█'
	case f < 0.2:
		return '▓'
	case f < 0.5:
		return '▒'
	default:
		return '░'
	}
}

// cellOffset maps a pixel offset onto at most limit cells.
func cellOffset(px, perCell, limit int) int {
	if px == 0 {
		return 0
	}
	n := int(math.Ceil(math.Abs(float64(px)) / float64(perCell)))
	if n > limit {
		n = limit
	}
	if px < 0 {
		return -n
	}
	return n
}

func drawBox(c *canvas, x0, y0, w, h int, corners [4]rune, fg string) {
	for x := x0 + 1; x < x0+w-1; x++ {
		c.set(x, y0, '─', fg)
		c.set(x, y0+h-1, '─', fg)
	}
	for y := y0 + 1; y < y0+h-1; y++ {
		c.set(x0, y, '│', fg)
		c.set(x0+w-1, y, '│', fg)
		for x := x0 + 1; x < x0+w-1; x++ {
			c.set(x, y, ' ', fg)
		}
	}
	c.set(x0, y0, corners[0], fg)
	c.set(x0+w-1, y0, corners[1], fg)
	c.set(x0+w-1, y0+h-1, corners[2], fg)
	c.set(x0, y0+h-1, corners[3], fg)
}

var squareCorners = [4]rune{'┌', '┐', '┘', '└'}

// renderPreview draws the live preview of a generator.
func renderPreview(g *cssgen.Generator, t Theme, width int) string {
	if width < 20 {
		width = 20
	}
	switch g.ID {
	case cssgen.BoxShadowID:
		return previewBoxShadow(g, t, width)
	case cssgen.BorderRadiusID:
		return previewBorderRadius(g, t, width)
	case cssgen.GradientID:
		return previewGradient(g, t, width)
	case cssgen.TextShadowID:
		return previewTextShadow(g, t, width)
	}
	return t.Renderer.NewStyle().Foreground(t.Muted).Render(g.Value())
}

func previewBoxShadow(g *cssgen.Generator, t Theme, width int) string {
	const bw, bh = 18, 5
	dx := cellOffset(g.Number("x"), 10, 3)
	dy := cellOffset(g.Number("y"), 20, 2)
	spread := cellOffset(g.Number("spread"), 15, 2)
	glyph := shade(g.Number("blur"), 100)
	color := g.Color("color")

	pad := 5
	c := newCanvas(bw+2*pad, bh+2*pad/2+2)
	bx, by := pad, pad/2+1

	if g.Flag("inset") {
		drawBox(c, bx, by, bw, bh, squareCorners, t.Hex(t.Border))
		// Inset shadow hugs the inner edges on the side facing the light.
		for y := by + 1; y < by+bh-1; y++ {
			if dx > 0 {
				c.set(bx+1, y, glyph, color)
			} else if dx < 0 {
				c.set(bx+bw-2, y, glyph, color)
			}
		}
		for x := bx + 1; x < bx+bw-1; x++ {
			if dy > 0 {
				c.set(x, by+1, glyph, color)
			} else if dy < 0 {
				c.set(x, by+bh-2, glyph, color)
			}
		}
	} else {
		for y := by + dy - spread; y < by+dy+bh+spread; y++ {
			for x := bx + dx - spread; x < bx+dx+bw+spread; x++ {
				c.set(x, y, glyph, color)
			}
		}
		drawBox(c, bx, by, bw, bh, squareCorners, t.Hex(t.Border))
	}
	c.text(bx+(bw-7)/2, by+bh/2, "Preview", t.Hex(t.Text))
	return c.render(t)
}

func cornerFor(radius int, square, round rune) rune {
	if radius == 0 {
		return square
	}
	return round
}

func previewBorderRadius(g *cssgen.Generator, t Theme, width int) string {
	const bw, bh = 22, 7
	c := newCanvas(bw, bh)
	corners := [4]rune{
		cornerFor(g.Number("tl"), '┌', '╭'),
		cornerFor(g.Number("tr"), '┐', '╮'),
		cornerFor(g.Number("br"), '┘', '╯'),
		cornerFor(g.Number("bl"), '└', '╰'),
	}
	drawBox(c, 0, 0, bw, bh, corners, t.Hex(t.Primary))
	c.text(1, 1, g.Display("tl"), t.Hex(t.Subtext))
	tr := g.Display("tr")
	c.text(bw-1-len(tr), 1, tr, t.Hex(t.Subtext))
	c.text(1, bh-2, g.Display("bl"), t.Hex(t.Subtext))
	br := g.Display("br")
	c.text(bw-1-len(br), bh-2, br, t.Hex(t.Subtext))
	c.text((bw-7)/2, bh/2, "Preview", t.Hex(t.Text))
	return c.render(t)
}

func previewGradient(g *cssgen.Generator, t Theme, width int) string {
	w, h := min(width, 32), 6
	c := newCanvas(w, h)
	rad := float64(g.Number("angle")) * math.Pi / 180
	// CSS angles: 0deg points up, 90deg points right. Cells are about twice
	// as tall as they are wide.
	sx, sy := math.Sin(rad), -math.Cos(rad)
	hw, hh := float64(w-1)/2, float64(h-1)
	extent := math.Abs(sx)*hw + math.Abs(sy)*hh
	if extent == 0 {
		extent = 1
	}
	c1, c2 := g.Color("color1"), g.Color("color2")
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			px := float64(x) - hw
			py := (float64(y) - float64(h-1)/2) * 2
			pos := (px*sx + py*sy) / extent
			c.set(x, y, '█', cssgen.Blend(c1, c2, (pos+1)/2))
		}
	}
	return c.render(t)
}

func previewTextShadow(g *cssgen.Generator, t Theme, width int) string {
	const sample = "Sample Text"
	dx := cellOffset(g.Number("x"), 4, 2)
	dy := cellOffset(g.Number("y"), 8, 1)
	glyph := shade(g.Number("blur"), 20)
	c := newCanvas(len(sample)+6, 5)
	tx, ty := 3, 2
	if dx != 0 || dy != 0 {
		for i := range sample {
			if sample[i] == ' ' {
				continue
			}
			c.set(tx+dx+i, ty+dy, glyph, g.Color("color"))
		}
	}
	c.text(tx, ty, sample, g.Color("text"))
	return c.render(t)
}
