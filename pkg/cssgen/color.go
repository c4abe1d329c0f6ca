package cssgen

import (
	"image/color"
	"math"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// NormalizeColor parses a "#rgb" or "#rrggbb" color and returns it as
// lowercase "#rrggbb". Anything else, including truncated or over-long hex,
// is rejected.
func NormalizeColor(s string) (string, bool) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if !isHexColor(s) {
		return "", false
	}
	c, err := colorful.Hex("#" + s)
	if err != nil {
		return "", false
	}
	return c.Hex(), true
}

// isHexColor reports whether s is exactly three or six hex digits.
func isHexColor(s string) bool {
	if len(s) != 3 && len(s) != 6 {
		return false
	}
	for i := 0; i < len(s); i++ {
		switch c := s[i]; {
		case c >= '0' && c <= '9', c >= 'a' && c <= 'f', c >= 'A' && c <= 'F':
		default:
			return false
		}
	}
	return true
}

// RGBA parses a "#rrggbb" color into an opaque color.RGBA.
func RGBA(hex string) (color.RGBA, bool) {
	norm, ok := NormalizeColor(hex)
	if !ok {
		return color.RGBA{}, false
	}
	c, err := colorful.Hex(norm)
	if err != nil {
		return color.RGBA{}, false
	}
	r, g, b := c.RGB255()
	return color.RGBA{r, g, b, 0xff}, true
}

// RotateHue turns a color around the HSV wheel by degrees. Achromatic
// colors have no hue to rotate, so their brightness moves instead, 0.1 per
// 15 degrees.
func RotateHue(hex string, degrees float64) string {
	c, err := colorful.Hex(hex)
	if err != nil {
		return hex
	}
	h, s, v := c.Hsv()
	if s < 0.01 {
		v = math.Max(0, math.Min(1, v+degrees/150))
		return colorful.Hsv(h, s, v).Clamped().Hex()
	}
	h = math.Mod(h+degrees, 360)
	if h < 0 {
		h += 360
	}
	return colorful.Hsv(h, s, v).Clamped().Hex()
}

// Blend returns the color t of the way from a to b (t in 0..1), blended in
// Lab space so gradients stay perceptually even.
func Blend(a, b string, t float64) string {
	ca, errA := colorful.Hex(a)
	cb, errB := colorful.Hex(b)
	if errA != nil || errB != nil {
		return a
	}
	switch {
	case t <= 0:
		return ca.Hex()
	case t >= 1:
		return cb.Hex()
	}
	return ca.BlendLab(cb, t).Clamped().Hex()
}
