// Package config provides TOML-based configuration for folio.
package config

import (
	"fmt"
	"time"
)

// Config is the root configuration document.
type Config struct {
	General  GeneralConfig  `toml:"general"`
	Theme    ThemeConfig    `toml:"theme"`
	Content  ContentConfig  `toml:"content"`
	Timing   TimingConfig   `toml:"timing"`
	Resume   ResumeConfig   `toml:"resume"`
	Contact  ContactConfig  `toml:"contact"`
	Navigate NavigateConfig `toml:"navigate"`
}

// GeneralConfig holds process-wide settings.
type GeneralConfig struct {
	LogLevel string `toml:"log_level"`
	LogFile  string `toml:"log_file"`
	DataDir  string `toml:"data_dir"`
}

// ThemeConfig controls the initial display mode.
type ThemeConfig struct {
	// Default is used when nothing is persisted and the terminal gives no
	// background hint. Must be "light" or "dark".
	Default string `toml:"default"`
	// Force overrides the persisted value for this run only.
	Force string `toml:"force"`
}

// ContentConfig points at the portfolio content file.
type ContentConfig struct {
	Path  string `toml:"path"`
	Watch bool   `toml:"watch"`
}

// TimingConfig holds every animation and timer duration.
type TimingConfig struct {
	TypeDelay    Duration `toml:"type_delay"`
	EraseDelay   Duration `toml:"erase_delay"`
	HoldDelay    Duration `toml:"hold_delay"`
	NextDelay    Duration `toml:"next_delay"`
	ToastTimeout Duration `toml:"toast_timeout"`
	LoadingTime  Duration `toml:"loading_time"`
	CopiedReset  Duration `toml:"copied_reset"`
	ScrollLimit  Duration `toml:"scroll_limit"`
}

// ResumeConfig configures the resume viewer.
type ResumeConfig struct {
	Image    string  `toml:"image"`
	MinScale float64 `toml:"min_scale"`
	MaxScale float64 `toml:"max_scale"`
}

// ContactConfig configures the simulated contact submission.
type ContactConfig struct {
	SubmitDelay Duration `toml:"submit_delay"`
}

// NavigateConfig configures section navigation.
type NavigateConfig struct {
	StartSection string   `toml:"start_section"`
	SettleDelay  Duration `toml:"settle_delay"`
}

// Validate reports configuration values that cannot be used.
func (c *Config) Validate() error {
	switch c.Theme.Default {
	case "light", "dark":
	default:
		return fmt.Errorf("theme.default must be light or dark, got %q", c.Theme.Default)
	}
	switch c.Theme.Force {
	case "", "light", "dark":
	default:
		return fmt.Errorf("theme.force must be light or dark, got %q", c.Theme.Force)
	}
	if c.Resume.MinScale <= 0 || c.Resume.MaxScale < c.Resume.MinScale {
		return fmt.Errorf("resume scale bounds invalid: [%g, %g]", c.Resume.MinScale, c.Resume.MaxScale)
	}
	if c.Timing.ToastTimeout.Duration <= 0 {
		return fmt.Errorf("timing.toast_timeout must be positive")
	}
	return nil
}

// Duration wraps time.Duration with TOML-friendly string parsing.
// Supports standard Go duration strings: "50ms", "2s", "1m", etc.
type Duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler for TOML parsing.
func (d *Duration) UnmarshalText(text []byte) error {
	s := string(text)
	if s == "" {
		d.Duration = 0
		return nil
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", s, err)
	}
	if parsed < 0 {
		return fmt.Errorf("negative duration %q not allowed", s)
	}
	d.Duration = parsed
	return nil
}

// MarshalText implements encoding.TextMarshaler for TOML serialization.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}
