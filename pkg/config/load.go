package config

import (
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
)

// Load reads configuration from the standard config path.
// Search order:
//  1. $XDG_CONFIG_HOME/folio/config.toml
//  2. ~/.config/folio/config.toml
//
// If no file exists, returns DefaultConfig() with env overrides applied.
func Load() (*Config, error) {
	for _, p := range configSearchPaths() {
		if _, err := os.Stat(p); err == nil {
			return LoadFromFile(p)
		}
	}
	cfg := DefaultConfig()
	applyEnvOverrides(cfg)
	return cfg, nil
}

// LoadFromFile reads configuration from a specific file path.
func LoadFromFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg := DefaultConfig()
			applyEnvOverrides(cfg)
			return cfg, nil
		}
		return nil, err
	}
	defer f.Close()
	return LoadFromReader(f)
}

// LoadFromReader reads configuration from an io.Reader.
func LoadFromReader(r io.Reader) (*Config, error) {
	cfg := DefaultConfig()
	if _, err := toml.NewDecoder(r).Decode(cfg); err != nil {
		return nil, err
	}
	applyEnvOverrides(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	home, _ := os.UserHomeDir()
	dataDir := filepath.Join(xdgDataHome(home), "folio")

	return &Config{
		General: GeneralConfig{
			LogLevel: "info",
			LogFile:  filepath.Join(dataDir, "folio.log"),
			DataDir:  dataDir,
		},
		Theme: ThemeConfig{
			Default: "dark",
		},
		Content: ContentConfig{
			Watch: true,
		},
		Timing: TimingConfig{
			TypeDelay:    Duration{100 * time.Millisecond},
			EraseDelay:   Duration{50 * time.Millisecond},
			HoldDelay:    Duration{2 * time.Second},
			NextDelay:    Duration{500 * time.Millisecond},
			ToastTimeout: Duration{4 * time.Second},
			LoadingTime:  Duration{2 * time.Second},
			CopiedReset:  Duration{2 * time.Second},
			ScrollLimit:  Duration{16 * time.Millisecond},
		},
		Resume: ResumeConfig{
			MinScale: 0.5,
			MaxScale: 5.0,
		},
		Contact: ContactConfig{
			SubmitDelay: Duration{2 * time.Second},
		},
		Navigate: NavigateConfig{
			StartSection: "home",
			SettleDelay:  Duration{600 * time.Millisecond},
		},
	}
}

// PrefsPath returns the location of the preference database.
func (c *Config) PrefsPath() string {
	return filepath.Join(c.General.DataDir, "prefs.db")
}

// applyEnvOverrides checks environment variables and overrides config values.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("FOLIO_THEME"); v != "" {
		cfg.Theme.Force = v
	}
	if v := os.Getenv("FOLIO_CONTENT"); v != "" {
		cfg.Content.Path = v
	}
	if v := os.Getenv("FOLIO_RESUME"); v != "" {
		cfg.Resume.Image = v
	}
	if v := os.Getenv("FOLIO_SECTION"); v != "" {
		cfg.Navigate.StartSection = v
	}
	if v := os.Getenv("FOLIO_LOG_LEVEL"); v != "" {
		cfg.General.LogLevel = v
	}
}

// configSearchPaths returns the ordered list of config file paths to try.
func configSearchPaths() []string {
	home, _ := os.UserHomeDir()
	var paths []string

	xdg := xdgConfigHome(home)
	paths = append(paths, filepath.Join(xdg, "folio", "config.toml"))

	// If XDG_CONFIG_HOME was explicitly set, also try the fallback default.
	defaultXDG := filepath.Join(home, ".config")
	if xdg != defaultXDG {
		paths = append(paths, filepath.Join(defaultXDG, "folio", "config.toml"))
	}

	return paths
}

// xdgConfigHome returns XDG_CONFIG_HOME or ~/.config as fallback.
func xdgConfigHome(home string) string {
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return v
	}
	return filepath.Join(home, ".config")
}

// xdgDataHome returns XDG_DATA_HOME or ~/.local/share as fallback.
func xdgDataHome(home string) string {
	if v := os.Getenv("XDG_DATA_HOME"); v != "" {
		return v
	}
	return filepath.Join(home, ".local", "share")
}
