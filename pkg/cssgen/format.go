// Package cssgen maps small parameter sets to CSS declarations.
//
// The formatting functions are pure: the same inputs always yield the same
// bytes, because the generated text is what users copy into stylesheets.
package cssgen

import (
	"strconv"
	"strings"
)

// BoxShadowValue formats "[inset ]{x}px {y}px {blur}px {spread}px {color}".
func BoxShadowValue(x, y, blur, spread int, color string, inset bool) string {
	var b strings.Builder
	if inset {
		b.WriteString("inset ")
	}
	b.WriteString(px(x) + " " + px(y) + " " + px(blur) + " " + px(spread) + " " + color)
	return b.String()
}

// BorderRadiusValue formats "{tl}px {tr}px {br}px {bl}px".
func BorderRadiusValue(tl, tr, br, bl int) string {
	return px(tl) + " " + px(tr) + " " + px(br) + " " + px(bl)
}

// GradientValue formats "linear-gradient({angle}deg, {c1}, {c2})".
func GradientValue(angle int, c1, c2 string) string {
	return "linear-gradient(" + deg(angle) + ", " + c1 + ", " + c2 + ")"
}

// TextShadowValue formats "{x}px {y}px {blur}px {color}".
func TextShadowValue(x, y, blur int, color string) string {
	return px(x) + " " + px(y) + " " + px(blur) + " " + color
}

// Declaration formats "property: value;".
func Declaration(property, value string) string {
	return property + ": " + value + ";"
}

func px(v int) string {
	return strconv.Itoa(v) + "px"
}

func deg(v int) string {
	return strconv.Itoa(v) + "deg"
}
