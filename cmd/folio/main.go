package main

import (
	"context"
	"flag"
	"fmt"
	"image"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/sync/errgroup"
	"golang.org/x/term"

	"github.com/kraitsura/folio/pkg/config"
	"github.com/kraitsura/folio/pkg/content"
	"github.com/kraitsura/folio/pkg/prefs"
	"github.com/kraitsura/folio/pkg/resume"
	"github.com/kraitsura/folio/pkg/theme"
	"github.com/kraitsura/folio/pkg/ui"
	"github.com/kraitsura/folio/pkg/version"
	"github.com/kraitsura/folio/pkg/watcher"
)

func main() {
	help := flag.Bool("help", false, "Show help")
	showVersion := flag.Bool("version", false, "Show version")
	configPath := flag.String("config", "", "Path to config.toml")
	section := flag.String("section", "", "Section to open, e.g. projects or #contact")
	themeFlag := flag.String("theme", "", "Force light or dark mode for this run")
	contentPath := flag.String("content", "", "Path to a portfolio content YAML file")
	resumePath := flag.String("resume", "", "Path to a resume image (PNG, JPEG, WebP)")
	noSplash := flag.Bool("no-splash", false, "Skip the loading screen")
	flag.Parse()

	if *help {
		fmt.Println("Usage: folio [options]")
		fmt.Println("\nAn interactive terminal portfolio.")
		flag.PrintDefaults()
		os.Exit(0)
	}

	if *showVersion {
		fmt.Printf("folio version %s\n", version.Version)
		os.Exit(0)
	}

	var cfg *config.Config
	var err error
	if *configPath != "" {
		cfg, err = config.LoadFromFile(*configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}
	if *section != "" {
		cfg.Navigate.StartSection = *section
	}
	if *themeFlag != "" {
		cfg.Theme.Force = *themeFlag
	}
	if *contentPath != "" {
		cfg.Content.Path = *contentPath
	}
	if *resumePath != "" {
		cfg.Resume.Image = *resumePath
	}
	if err := cfg.Validate(); err != nil {
		fmt.Printf("Invalid config: %v\n", err)
		os.Exit(1)
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Println("folio needs an interactive terminal.")
		os.Exit(1)
	}

	logFile, err := setupLogging(cfg.General)
	if err != nil {
		fmt.Printf("Error opening log file: %v\n", err)
		os.Exit(1)
	}
	defer logFile.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Content, the resume image and the preference database are independent
	var (
		c     *content.Content
		page  image.Image
		store prefs.Store
	)
	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		c, err = content.Load(cfg.Content.Path)
		if err != nil {
			return fmt.Errorf("load content: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		page = loadResume(cfg.Resume.Image)
		return nil
	})
	g.Go(func() error {
		db, err := prefs.OpenDB(cfg.PrefsPath())
		if err != nil {
			slog.Warn("prefs: falling back to memory store", "path", cfg.PrefsPath(), "err", err)
			store = prefs.NewMemoryStore()
			return nil
		}
		store = db
		return nil
	})
	if err := g.Wait(); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if page == nil && c.Resume != "" {
		page = loadResume(c.Resume)
	}

	mode := theme.Resolve(store, systemMode, theme.Mode(cfg.Theme.Default))
	if forced, ok := theme.ParseMode(cfg.Theme.Force); ok {
		mode = forced
	}

	var w *watcher.Watcher
	if cfg.Content.Watch && cfg.Content.Path != "" {
		w, err = watcher.New(cfg.Content.Path, watcher.DefaultDebounce)
		if err == nil {
			err = w.Start()
		}
		if err != nil {
			slog.Warn("watcher: live reload disabled", "path", cfg.Content.Path, "err", err)
			w = nil
		} else {
			defer w.Stop()
		}
	}

	m := ui.NewModel(ui.Options{
		Context:     ctx,
		Config:      cfg,
		Content:     c,
		Store:       store,
		Mode:        mode,
		Resume:      page,
		Watcher:     w,
		SkipLoading: *noSplash,
	})

	slog.Info("folio: starting", "version", version.Version, "mode", mode, "section", cfg.Navigate.StartSection)

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running folio: %v\n", err)
		os.Exit(1)
	}
}

// systemMode reads the terminal background as the system preference.
func systemMode() (theme.Mode, bool) {
	if lipgloss.HasDarkBackground() {
		return theme.Dark, true
	}
	return theme.Light, true
}

// loadResume decodes the resume image, returning nil (and the placeholder
// page downstream) when it cannot be read.
func loadResume(path string) image.Image {
	if path == "" {
		return nil
	}
	img, err := resume.LoadImage(path)
	if err != nil {
		slog.Warn("resume: using placeholder page", "path", path, "err", err)
		return nil
	}
	return img
}

func setupLogging(cfg config.GeneralConfig) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(cfg.LogFile), 0755); err != nil {
		return nil, err
	}
	f, err := tea.LogToFile(cfg.LogFile, "folio")
	if err != nil {
		return nil, err
	}
	var level slog.Level
	switch strings.ToLower(cfg.LogLevel) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: level})))
	return f, nil
}
