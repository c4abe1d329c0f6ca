// Package nav maps section identifiers to visibility state.
//
// Exactly one section is visible at any time. Navigation can be driven
// programmatically (NavigateTo), by an ordinal keyboard walk, by history
// (Back/Forward) or by a visibility observer fed from the scroll position.
package nav

import (
	"log/slog"
	"strings"
)

// DefaultOrder is the canonical section order.
var DefaultOrder = []string{
	"home",
	"about",
	"skills",
	"projects",
	"experience",
	"css-playground",
	"resume",
	"contact",
}

// ObserveThreshold is the minimum visibility ratio that lets the observer
// activate a section.
const ObserveThreshold = 0.1

// Section is a top-level content panel.
type Section struct {
	ID      string
	Title   string
	Visible bool
}

// Navigator owns the active section and the navigation overlay state.
type Navigator struct {
	sections []Section
	index    map[string]int
	active   int

	menuOpen   bool
	navigating bool
	seq        uint64

	history []string
	histPos int

	keys map[string]func() bool
}

// New creates a navigator over sections. The first section starts active.
// Duplicate identifiers keep their first position.
func New(sections []Section) *Navigator {
	n := &Navigator{index: make(map[string]int)}
	for _, s := range sections {
		if s.ID == "" {
			continue
		}
		if _, dup := n.index[s.ID]; dup {
			slog.Warn("nav: duplicate section ignored", "section", s.ID)
			continue
		}
		s.Visible = false
		n.index[s.ID] = len(n.sections)
		n.sections = append(n.sections, s)
	}
	if len(n.sections) > 0 {
		n.sections[0].Visible = true
		n.history = []string{n.sections[0].ID}
	}
	n.keys = map[string]func() bool{
		"up":    n.Prev,
		"left":  n.Prev,
		"down":  n.Next,
		"right": n.Next,
		"home":  n.First,
		"end":   n.Last,
		"esc":   n.CloseMenu,
	}
	return n
}

// NewDefault creates a navigator over DefaultOrder with titles derived from
// the identifiers.
func NewDefault() *Navigator {
	sections := make([]Section, len(DefaultOrder))
	for i, id := range DefaultOrder {
		sections[i] = Section{ID: id, Title: TitleFor(id)}
	}
	return New(sections)
}

// TitleFor derives a display title from an identifier ("css-playground" ->
// "CSS Playground").
func TitleFor(id string) string {
	parts := strings.Split(id, "-")
	for i, p := range parts {
		switch p {
		case "css", "ai", "ml":
			parts[i] = strings.ToUpper(p)
		default:
			if p != "" {
				parts[i] = strings.ToUpper(p[:1]) + p[1:]
			}
		}
	}
	return strings.Join(parts, " ")
}

// Active returns the identifier of the visible section.
func (n *Navigator) Active() string {
	if len(n.sections) == 0 {
		return ""
	}
	return n.sections[n.active].ID
}

// ActiveIndex returns the ordinal of the visible section.
func (n *Navigator) ActiveIndex() int {
	return n.active
}

// IsActive reports whether id is the visible section.
func (n *Navigator) IsActive(id string) bool {
	return len(n.sections) > 0 && n.sections[n.active].ID == id
}

// Has reports whether id names a known section.
func (n *Navigator) Has(id string) bool {
	_, ok := n.index[id]
	return ok
}

// Sections returns a copy of the sections in order.
func (n *Navigator) Sections() []Section {
	out := make([]Section, len(n.sections))
	copy(out, n.sections)
	return out
}

// IDs returns the section identifiers in order.
func (n *Navigator) IDs() []string {
	ids := make([]string, len(n.sections))
	for i, s := range n.sections {
		ids[i] = s.ID
	}
	return ids
}

// Title returns the display title of id, or "" if unknown.
func (n *Navigator) Title(id string) string {
	if i, ok := n.index[id]; ok {
		return n.sections[i].Title
	}
	return ""
}

// SetTitle replaces the display title of id.
func (n *Navigator) SetTitle(id, title string) {
	if i, ok := n.index[id]; ok && title != "" {
		n.sections[i].Title = title
	}
}

// NavigateTo activates id, records it in history, closes the menu overlay
// and marks a programmatic navigation as in progress. Unknown identifiers
// are logged and ignored.
func (n *Navigator) NavigateTo(id string) bool {
	if !n.activate(id) {
		return false
	}
	n.push(id)
	return true
}

func (n *Navigator) activate(id string) bool {
	i, ok := n.index[id]
	if !ok {
		slog.Warn("nav: section not found", "section", id)
		return false
	}
	n.sections[n.active].Visible = false
	n.active = i
	n.sections[i].Visible = true
	n.menuOpen = false
	n.navigating = true
	n.seq++
	return true
}

func (n *Navigator) push(id string) {
	if len(n.history) > 0 && n.history[n.histPos] == id {
		return
	}
	n.history = append(n.history[:n.histPos+1], id)
	n.histPos = len(n.history) - 1
}

// Seq identifies the most recent programmatic navigation. Settle must be
// called with this value once the scroll animation has finished.
func (n *Navigator) Seq() uint64 {
	return n.seq
}

// Settle clears the in-progress flag if seq is still the latest navigation.
func (n *Navigator) Settle(seq uint64) {
	if seq == n.seq {
		n.navigating = false
	}
}

// Navigating reports whether a programmatic navigation is still settling.
func (n *Navigator) Navigating() bool {
	return n.navigating
}

// Observe activates the most visible section as the user scrolls. It is
// suppressed while a programmatic navigation settles so two sections do not
// fight over the active state. Returns the activated id.
func (n *Navigator) Observe(ratios map[string]float64) (string, bool) {
	if n.navigating {
		return "", false
	}
	best, bestRatio := -1, ObserveThreshold
	for i, s := range n.sections {
		r, ok := ratios[s.ID]
		if !ok || r < bestRatio {
			continue
		}
		if best == -1 || r > bestRatio {
			best, bestRatio = i, r
		}
	}
	if best == -1 || best == n.active {
		return "", false
	}
	id := n.sections[best].ID
	n.sections[n.active].Visible = false
	n.active = best
	n.sections[best].Visible = true
	n.push(id)
	return id, true
}

// Next activates the following section, stopping at the last one.
func (n *Navigator) Next() bool {
	return n.walkTo(n.active + 1)
}

// Prev activates the preceding section, stopping at the first one.
func (n *Navigator) Prev() bool {
	return n.walkTo(n.active - 1)
}

// First activates the first section.
func (n *Navigator) First() bool {
	return n.walkTo(0)
}

// Last activates the last section.
func (n *Navigator) Last() bool {
	return n.walkTo(len(n.sections) - 1)
}

func (n *Navigator) walkTo(i int) bool {
	if len(n.sections) == 0 {
		return false
	}
	if i < 0 {
		i = 0
	}
	if i >= len(n.sections) {
		i = len(n.sections) - 1
	}
	return n.NavigateTo(n.sections[i].ID)
}

// HandleKey runs the keyboard binding for key. Keys are ignored while
// focus is inside a text input. Returns whether the key was consumed.
func (n *Navigator) HandleKey(key string, inputFocused bool) bool {
	if inputFocused {
		return false
	}
	fn, ok := n.keys[key]
	if !ok {
		return false
	}
	fn()
	return true
}

// Back moves to the previous history entry.
func (n *Navigator) Back() bool {
	if n.histPos == 0 {
		return false
	}
	n.histPos--
	return n.activate(n.history[n.histPos])
}

// Forward moves to the next history entry.
func (n *Navigator) Forward() bool {
	if n.histPos >= len(n.history)-1 {
		return false
	}
	n.histPos++
	return n.activate(n.history[n.histPos])
}

// Fragment returns the route fragment mirroring the active section.
func (n *Navigator) Fragment() string {
	return "#" + n.Active()
}

// ParseFragment extracts a section id from "#id", "/#id" or a bare "id".
func ParseFragment(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.LastIndex(s, "#"); i >= 0 {
		s = s[i+1:]
	}
	return strings.ToLower(s)
}

// ToggleMenu opens or closes the navigation overlay.
func (n *Navigator) ToggleMenu() bool {
	n.menuOpen = !n.menuOpen
	return true
}

// CloseMenu closes the navigation overlay. Returns whether it was open.
func (n *Navigator) CloseMenu() bool {
	was := n.menuOpen
	n.menuOpen = false
	return was
}

// MenuOpen reports whether the navigation overlay is showing.
func (n *Navigator) MenuOpen() bool {
	return n.menuOpen
}
