// Package anim holds the decorative animations: the loading flame, skill
// counters and scroll throttling. Everything here is driven by an external
// clock so it can be stepped deterministically.
package anim

import (
	"math/rand/v2"
	"strings"
	"time"
)

// FlameRate is the number of logical flame updates per second, independent
// of how often the frame callback fires.
const FlameRate = 4

// flameGlyphs maps heat (low to high) to characters.
var flameGlyphs = []rune(" .:-=+*#%@")

// Flame is a cellular fire simulation. Heat rises from the bottom row and
// decays randomly as it climbs.
type Flame struct {
	width, height int
	heat          []int
	maxHeat       int
	rng           *rand.Rand
	interval      time.Duration
	last          time.Time
	frames        int
}

// NewFlame creates a flame of the given size. seed makes the animation
// reproducible.
func NewFlame(width, height int, seed uint64) *Flame {
	f := &Flame{
		maxHeat:  len(flameGlyphs) - 1,
		rng:      rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		interval: time.Second / FlameRate,
	}
	f.Resize(width, height)
	return f
}

// Resize changes the grid size, keeping the fire source lit.
func (f *Flame) Resize(width, height int) {
	if width < 1 {
		width = 1
	}
	if height < 2 {
		height = 2
	}
	f.width, f.height = width, height
	f.heat = make([]int, width*height)
	base := (height - 1) * width
	for x := 0; x < width; x++ {
		f.heat[base+x] = f.maxHeat
	}
}

// Frame is the per-frame callback. It advances the simulation only when a
// full logical interval has passed since the last update and reports
// whether it did.
func (f *Flame) Frame(now time.Time) bool {
	if !f.last.IsZero() && now.Sub(f.last) < f.interval {
		return false
	}
	f.last = now
	f.step()
	f.frames++
	return true
}

// Updates returns the number of logical updates performed.
func (f *Flame) Updates() int {
	return f.frames
}

func (f *Flame) step() {
	w := f.width
	for y := 1; y < f.height; y++ {
		for x := 0; x < w; x++ {
			src := y*w + x
			r := f.rng.IntN(3)
			dst := src - w + 1 - r
			if dst < 0 || dst >= len(f.heat) {
				continue
			}
			v := f.heat[src] - (r & 1)
			if v < 0 {
				v = 0
			}
			f.heat[dst] = v
		}
	}
}

// Heat returns the heat at (x, y); out-of-range cells are cold.
func (f *Flame) Heat(x, y int) int {
	if x < 0 || y < 0 || x >= f.width || y >= f.height {
		return 0
	}
	return f.heat[y*f.width+x]
}

// MaxHeat returns the heat of the fire source.
func (f *Flame) MaxHeat() int {
	return f.maxHeat
}

// Lines renders the grid as text, one string per row.
func (f *Flame) Lines() []string {
	lines := make([]string, f.height)
	var b strings.Builder
	for y := 0; y < f.height; y++ {
		b.Reset()
		for x := 0; x < f.width; x++ {
			b.WriteRune(flameGlyphs[f.heat[y*f.width+x]])
		}
		lines[y] = b.String()
	}
	return lines
}
