package cssgen

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Kind is the type of input a parameter takes.
type Kind int

const (
	Number Kind = iota
	Color
	Toggle
)

// Param declares one generator input.
type Param struct {
	Name  string
	Label string
	Kind  Kind

	// Number bounds and unit
	Min, Max int
	Unit     string

	// Defaults, by kind
	DefaultNumber int
	DefaultColor  string
	DefaultFlag   bool
}

// State is the current value of every parameter.
type State struct {
	Numbers map[string]int
	Colors  map[string]string
	Flags   map[string]bool
}

// Generator owns the parameter state of one CSS property and its generated
// text. Value and Declaration are recomputed after every mutation, so they
// are never blank.
type Generator struct {
	ID       string
	Title    string
	Property string

	params []Param
	index  map[string]int
	state  State
	render func(State) (value, declaration string)

	value       string
	declaration string
}

func newGenerator(id, title, property string, params []Param, render func(State) (string, string)) *Generator {
	g := &Generator{
		ID:       id,
		Title:    title,
		Property: property,
		params:   params,
		index:    make(map[string]int, len(params)),
		render:   render,
	}
	for i, p := range params {
		g.index[p.Name] = i
	}
	g.Reset()
	return g
}

// Reset restores every parameter to its default.
func (g *Generator) Reset() {
	g.state = State{
		Numbers: make(map[string]int),
		Colors:  make(map[string]string),
		Flags:   make(map[string]bool),
	}
	for _, p := range g.params {
		switch p.Kind {
		case Number:
			g.state.Numbers[p.Name] = p.DefaultNumber
		case Color:
			g.state.Colors[p.Name] = p.DefaultColor
		case Toggle:
			g.state.Flags[p.Name] = p.DefaultFlag
		}
	}
	g.recompute()
}

func (g *Generator) recompute() {
	g.value, g.declaration = g.render(g.state)
}

// Params returns the parameter declarations in display order.
func (g *Generator) Params() []Param {
	out := make([]Param, len(g.params))
	copy(out, g.params)
	return out
}

// Param looks up a parameter by name.
func (g *Generator) Param(name string) (Param, bool) {
	i, ok := g.index[name]
	if !ok {
		return Param{}, false
	}
	return g.params[i], true
}

// Value returns the generated property value (the live preview style).
func (g *Generator) Value() string {
	return g.value
}

// Declaration returns the copyable declaration text.
func (g *Generator) Declaration() string {
	return g.declaration
}

// Number returns the current value of a numeric parameter.
func (g *Generator) Number(name string) int {
	return g.state.Numbers[name]
}

// Color returns the current value of a color parameter.
func (g *Generator) Color(name string) string {
	return g.state.Colors[name]
}

// Flag returns the current value of a toggle parameter.
func (g *Generator) Flag(name string) bool {
	return g.state.Flags[name]
}

// Display returns the value label shown next to a slider ("5px", "90deg").
func (g *Generator) Display(name string) string {
	p, ok := g.Param(name)
	if !ok {
		return ""
	}
	switch p.Kind {
	case Number:
		return strconv.Itoa(g.state.Numbers[name]) + p.Unit
	case Color:
		return g.state.Colors[name]
	default:
		if g.state.Flags[name] {
			return "on"
		}
		return "off"
	}
}

// SetNumber sets a numeric parameter, clamped to its bounds.
func (g *Generator) SetNumber(name string, v int) error {
	p, ok := g.Param(name)
	if !ok || p.Kind != Number {
		return fmt.Errorf("%s: no numeric parameter %q", g.ID, name)
	}
	g.state.Numbers[name] = clamp(v, p.Min, p.Max)
	g.recompute()
	return nil
}

// Step moves a numeric parameter by delta, or rotates a color's hue by
// delta degrees, or flips a toggle.
func (g *Generator) Step(name string, delta int) error {
	p, ok := g.Param(name)
	if !ok {
		return fmt.Errorf("%s: no parameter %q", g.ID, name)
	}
	switch p.Kind {
	case Number:
		return g.SetNumber(name, g.state.Numbers[name]+delta)
	case Color:
		g.state.Colors[name] = RotateHue(g.state.Colors[name], float64(delta))
	case Toggle:
		g.state.Flags[name] = !g.state.Flags[name]
	}
	g.recompute()
	return nil
}

// SetColor sets a color parameter. Unparseable input falls back to the
// parameter's default and reports substituted.
func (g *Generator) SetColor(name, raw string) (substituted bool, err error) {
	p, ok := g.Param(name)
	if !ok || p.Kind != Color {
		return false, fmt.Errorf("%s: no color parameter %q", g.ID, name)
	}
	c, valid := NormalizeColor(raw)
	if !valid {
		c = p.DefaultColor
	}
	g.state.Colors[name] = c
	g.recompute()
	return !valid, nil
}

// SetFlag sets a toggle parameter.
func (g *Generator) SetFlag(name string, v bool) error {
	p, ok := g.Param(name)
	if !ok || p.Kind != Toggle {
		return fmt.Errorf("%s: no toggle parameter %q", g.ID, name)
	}
	g.state.Flags[name] = v
	g.recompute()
	return nil
}

// Set applies a raw input value the way a form control reports it: numbers
// and colors as strings, toggles as "true"/"false"/"on"/"off". Empty or
// unparseable input is replaced with the parameter's default and reported
// as substituted. Unknown parameter names are an error.
func (g *Generator) Set(name, raw string) (substituted bool, err error) {
	p, ok := g.Param(name)
	if !ok {
		return false, fmt.Errorf("%s: no parameter %q", g.ID, name)
	}
	raw = strings.TrimSpace(raw)
	switch p.Kind {
	case Number:
		v, valid := parseNumber(raw)
		if !valid {
			v = p.DefaultNumber
		}
		return !valid, g.SetNumber(name, v)
	case Color:
		return g.SetColor(name, raw)
	default:
		switch strings.ToLower(raw) {
		case "true", "on", "1", "checked":
			return false, g.SetFlag(name, true)
		case "false", "off", "0", "":
			return false, g.SetFlag(name, false)
		}
		return true, g.SetFlag(name, p.DefaultFlag)
	}
}

func parseNumber(raw string) (int, bool) {
	if raw == "" {
		return 0, false
	}
	if v, err := strconv.Atoi(raw); err == nil {
		return v, true
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return int(math.Round(f)), true
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
