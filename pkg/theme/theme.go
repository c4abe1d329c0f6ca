// Package theme owns the two-valued display mode and its persistence.
package theme

import (
	"log/slog"
	"strings"

	"github.com/kraitsura/folio/pkg/prefs"
)

// Mode is the display mode consumed by the style layer.
type Mode string

const (
	Light Mode = "light"
	Dark  Mode = "dark"
)

// StorageKey is the preference key the mode is persisted under.
const StorageKey = "theme"

// ParseMode converts a persisted or configured string into a Mode.
func ParseMode(s string) (Mode, bool) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case Light:
		return Light, true
	case Dark:
		return Dark, true
	}
	return "", false
}

// Opposite returns the other mode.
func (m Mode) Opposite() Mode {
	if m == Dark {
		return Light
	}
	return Dark
}

// Icon returns the toggle glyph: a sun offers light mode while dark is
// active, a moon offers dark mode while light is active.
func (m Mode) Icon() string {
	if m == Dark {
		return "☀"
	}
	return "☾"
}

// SystemFunc reports the environment's preferred mode, if it has one.
type SystemFunc func() (Mode, bool)

// Resolve picks the initial mode: the persisted value when valid, else the
// system signal, else fallback.
func Resolve(store prefs.Store, system SystemFunc, fallback Mode) Mode {
	if store != nil {
		v, ok, err := store.Get(StorageKey)
		if err != nil {
			slog.Warn("theme: reading persisted mode failed", "err", err)
		} else if ok {
			if m, valid := ParseMode(v); valid {
				return m
			}
			slog.Warn("theme: ignoring invalid persisted mode", "value", v)
		}
	}
	if system != nil {
		if m, ok := system(); ok {
			return m
		}
	}
	if _, ok := ParseMode(string(fallback)); !ok {
		return Dark
	}
	return fallback
}

// Controller holds the active mode and writes every change through to the
// store.
type Controller struct {
	mode  Mode
	store prefs.Store
}

// NewController creates a controller starting at initial.
func NewController(store prefs.Store, initial Mode) *Controller {
	if _, ok := ParseMode(string(initial)); !ok {
		initial = Dark
	}
	return &Controller{mode: initial, store: store}
}

// Mode returns the active mode.
func (c *Controller) Mode() Mode {
	return c.mode
}

// Toggle flips the mode, persists it and returns the new value. A failed
// write is logged; the in-memory mode still flips.
func (c *Controller) Toggle() Mode {
	c.Set(c.mode.Opposite())
	return c.mode
}

// Set switches to m and persists it.
func (c *Controller) Set(m Mode) {
	if _, ok := ParseMode(string(m)); !ok {
		slog.Warn("theme: refusing invalid mode", "mode", m)
		return
	}
	c.mode = m
	if c.store == nil {
		return
	}
	if err := c.store.Set(StorageKey, string(m)); err != nil {
		slog.Warn("theme: persisting mode failed", "mode", m, "err", err)
	}
}
