package resume

import (
	"fmt"
	"image"
	"image/color"
	stddraw "image/draw"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"strings"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/math/f64"
	_ "golang.org/x/image/webp"
)

// LoadImage decodes a PNG, JPEG or WebP resume image.
func LoadImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open resume image: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode resume image %s: %w", path, err)
	}
	return img, nil
}

// Render draws src into a width x height canvas: fitted whole at scale 1,
// then transformed by the viewer.
func Render(src image.Image, v *Viewer, width, height int, bg color.Color) *image.RGBA {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	stddraw.Draw(dst, dst.Bounds(), image.NewUniform(bg), image.Point{}, stddraw.Src)
	if src == nil {
		return dst
	}

	sb := src.Bounds()
	sw, sh := float64(sb.Dx()), float64(sb.Dy())
	if sw <= 0 || sh <= 0 {
		return dst
	}

	// Fit the page inside the canvas at scale 1 and centre it.
	fit := min(float64(width)/sw, float64(height)/sh)
	offX := (float64(width) - sw*fit) / 2
	offY := (float64(height) - sh*fit) / 2

	cx, cy := float64(width)/2, float64(height)/2
	m := v.Matrix(cx, cy)
	// Compose viewer ∘ fit, with source coordinates relative to sb.Min.
	k := m[0] * fit
	s2d := f64.Aff3{
		k, 0, m[0]*(offX-fit*float64(sb.Min.X)) + m[2],
		0, k, m[4]*(offY-fit*float64(sb.Min.Y)) + m[5],
	}
	xdraw.BiLinear.Transform(dst, s2d, src, sb, xdraw.Over, nil)
	return dst
}

// HalfBlocks renders an image as terminal text, two vertical pixels per
// cell using the upper half block with true-color escapes.
func HalfBlocks(img *image.RGBA) string {
	b := img.Bounds()
	var out strings.Builder
	for y := b.Min.Y; y < b.Max.Y; y += 2 {
		for x := b.Min.X; x < b.Max.X; x++ {
			top := img.RGBAAt(x, y)
			bottom := top
			if y+1 < b.Max.Y {
				bottom = img.RGBAAt(x, y+1)
			}
			fmt.Fprintf(&out, "\x1b[38;2;%d;%d;%dm\x1b[48;2;%d;%d;%dm▀",
				top.R, top.G, top.B, bottom.R, bottom.G, bottom.B)
		}
		out.WriteString("\x1b[0m")
		if y+2 < b.Max.Y {
			out.WriteByte('\n')
		}
	}
	return out.String()
}
