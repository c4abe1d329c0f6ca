// Package resume implements the resume zoom/pan viewer.
//
// The viewer keeps a 2D affine transform of scale plus translation. The
// rendered transform is translate(tx, ty) scale(s): translation is measured
// in unscaled viewer pixels and scaling happens about the viewer centre, so
// pan deltas map 1:1 to pointer movement at every zoom level.
package resume

import (
	"math"
	"strconv"

	"golang.org/x/image/math/f64"
)

// Default scale bounds and zoom steps.
const (
	DefaultMinScale = 0.5
	DefaultMaxScale = 5.0
	ZoomFactor      = 1.2
	WheelStep       = 0.1
)

// State is the pointer state of the viewer.
type State int

const (
	Idle State = iota
	Panning
)

func (s State) String() string {
	if s == Panning {
		return "panning"
	}
	return "idle"
}

// Point is a position in viewer pixels.
type Point struct {
	X, Y float64
}

// Viewer holds the transform and the pan gesture state.
type Viewer struct {
	scale    float64
	tx, ty   float64
	min, max float64

	state  State
	origin Point
	base   Point
}

// NewViewer creates a viewer at the identity transform. Invalid bounds fall
// back to the defaults.
func NewViewer(minScale, maxScale float64) *Viewer {
	if minScale <= 0 || maxScale < minScale || math.IsNaN(minScale) || math.IsNaN(maxScale) {
		minScale, maxScale = DefaultMinScale, DefaultMaxScale
	}
	return &Viewer{scale: 1, min: minScale, max: maxScale}
}

// Scale returns the current zoom factor.
func (v *Viewer) Scale() float64 {
	return v.scale
}

// Bounds returns the scale limits.
func (v *Viewer) Bounds() (minScale, maxScale float64) {
	return v.min, v.max
}

// Translation returns the pan offset in viewer pixels.
func (v *Viewer) Translation() (x, y float64) {
	return v.tx, v.ty
}

// State returns the pointer state.
func (v *Viewer) State() State {
	return v.state
}

// ZoomIn multiplies the scale by ZoomFactor.
func (v *Viewer) ZoomIn() {
	v.setScale(v.scale * ZoomFactor)
}

// ZoomOut divides the scale by ZoomFactor.
func (v *Viewer) ZoomOut() {
	v.setScale(v.scale / ZoomFactor)
}

// Zoom adds delta to the scale.
func (v *Viewer) Zoom(delta float64) {
	v.setScale(v.scale + delta)
}

// Wheel applies a wheel event: scrolling down (positive deltaY) zooms out,
// scrolling up zooms in, by WheelStep.
func (v *Viewer) Wheel(deltaY float64) {
	switch {
	case deltaY > 0:
		v.Zoom(-WheelStep)
	case deltaY < 0:
		v.Zoom(WheelStep)
	}
}

func (v *Viewer) setScale(s float64) {
	if math.IsNaN(s) {
		return
	}
	// Round away float noise so repeated steps stay reproducible.
	s = math.Round(s*1e6) / 1e6
	v.scale = math.Max(v.min, math.Min(v.max, s))
}

// Reset restores the identity transform and ends any pan gesture.
func (v *Viewer) Reset() {
	v.scale = 1
	v.tx, v.ty = 0, 0
	v.state = Idle
}

// PointerDown starts a pan gesture, recording the pointer origin and the
// current translation as the baseline.
func (v *Viewer) PointerDown(p Point) {
	v.state = Panning
	v.origin = p
	v.base = Point{v.tx, v.ty}
}

// PointerMove updates the translation while panning. Returns whether the
// transform changed.
func (v *Viewer) PointerMove(p Point) bool {
	if v.state != Panning {
		return false
	}
	v.tx = v.base.X + (p.X - v.origin.X)
	v.ty = v.base.Y + (p.Y - v.origin.Y)
	return true
}

// PointerUp ends a pan gesture. Pointer leave is handled the same way.
func (v *Viewer) PointerUp() {
	v.state = Idle
}

// Pan moves the translation by a fixed delta, outside of any gesture.
func (v *Viewer) Pan(dx, dy float64) {
	v.PointerDown(Point{})
	v.PointerMove(Point{dx, dy})
	v.PointerUp()
}

// Transform returns the composed CSS-style transform string.
func (v *Viewer) Transform() string {
	return "translate(" + num(v.tx) + "px, " + num(v.ty) + "px) scale(" + num(v.scale) + ")"
}

// Matrix returns the affine map from unscaled viewer coordinates to screen
// coordinates for a viewer centred at (cx, cy):
//
//	screen = s*(p - c) + c + t
func (v *Viewer) Matrix(cx, cy float64) f64.Aff3 {
	s := v.scale
	return f64.Aff3{
		s, 0, (1-s)*cx + v.tx,
		0, s, (1-s)*cy + v.ty,
	}
}

func num(f float64) string {
	f = math.Round(f*1e4) / 1e4
	if f == 0 {
		f = 0 // drop negative zero
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}
