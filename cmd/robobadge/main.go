package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/robobadge/robobadge/internal/browser"
	"github.com/robobadge/robobadge/internal/config"
	"github.com/robobadge/robobadge/internal/logger"
	"github.com/robobadge/robobadge/internal/prefs"
	"github.com/robobadge/robobadge/internal/theme"
	"github.com/robobadge/robobadge/internal/tui"
	"github.com/robobadge/robobadge/pkg/badge"
	"github.com/robobadge/robobadge/pkg/client"
	"github.com/robobadge/robobadge/pkg/domain"
)

// version is set at build time via -ldflags "-X main.version=..."
var version = "dev"

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	if len(args) > 0 {
		switch args[0] {
		case "--version", "version", "-v":
			fmt.Println("robobadge " + version)
			return nil
		case "help", "--help", "-h":
			printHelp()
			return nil
		}
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	log, err := logger.New(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		return err
	}
	defer log.Sync() //nolint:errcheck // best-effort flush

	if len(args) > 0 {
		switch args[0] {
		case "gen":
			return runGen(os.Stdout, cfg, args[1:])
		case "preview":
			return runPreview(os.Stdout, cfg, log, args[1:])
		case "check":
			return runCheck(os.Stdout, cfg, args[1:])
		case "theme":
			return runTheme(os.Stdout, newThemeController(cfg, log), args[1:])
		default:
			return fmt.Errorf("unknown command %q (see: robobadge help)", args[0])
		}
	}
	return runTUI(cfg, log)
}

func newThemeController(cfg *config.Config, log logger.Logger) *theme.Controller {
	return theme.New(prefs.NewFileStore(cfg.PrefsFile), lipgloss.HasDarkBackground, log)
}

func runTUI(cfg *config.Config, log logger.Logger) error {
	ctrl := newThemeController(cfg, log)
	ctrl.Init()

	app := tui.NewApp(tui.Options{
		Origin:      cfg.Origin,
		Badge:       badge.Options{EscapeUsername: cfg.EscapeUsername},
		Theme:       ctrl,
		Log:         log,
		Clipboard:   clipboard.WriteAll,
		OpenURL:     browser.Open,
		OpenFile:    browser.OpenFile,
		PreviewPath: previewPath(),
	})

	log.Info("tui started", logger.String("origin", cfg.Origin), logger.String("version", version))
	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui error: %w", err)
	}
	return nil
}

// genArgs is the parsed form of `gen` and `preview` arguments.
type genArgs struct {
	username string
	html     bool
}

func parseGenArgs(args []string) (genArgs, error) {
	var g genArgs
	var words []string
	for _, a := range args {
		switch a {
		case "--html":
			g.html = true
		default:
			if strings.HasPrefix(a, "-") {
				return g, fmt.Errorf("unknown flag %q", a)
			}
			words = append(words, a)
		}
	}
	if len(words) > 1 {
		return g, fmt.Errorf("expected one username, got %d", len(words))
	}
	if len(words) == 1 {
		g.username = words[0]
	}
	return g, nil
}

func runGen(w io.Writer, cfg *config.Config, args []string) error {
	g, err := parseGenArgs(args)
	if err != nil {
		return err
	}
	links, err := badge.Generate(cfg.Origin, g.username, badge.Options{EscapeUsername: cfg.EscapeUsername})
	if err != nil {
		return err
	}
	fmt.Fprintln(w, links.Markdown) //nolint:errcheck
	if g.html {
		fmt.Fprintln(w, links.PreviewHTML()) //nolint:errcheck
	}
	if err := badge.Verify(links); err != nil {
		fmt.Fprintln(os.Stderr, "warning: this username produces a broken link") //nolint:errcheck
	}
	return nil
}

func runPreview(w io.Writer, cfg *config.Config, log logger.Logger, args []string) error {
	g, err := parseGenArgs(args)
	if err != nil {
		return err
	}
	links, err := badge.Generate(cfg.Origin, g.username, badge.Options{EscapeUsername: cfg.EscapeUsername})
	if err != nil {
		return err
	}
	ctrl := newThemeController(cfg, log)
	path := previewPath()
	if err := tui.WritePreview(path, links, ctrl.Init()); err != nil {
		return err
	}
	if err := browser.OpenFile(path); err != nil {
		fmt.Fprintf(w, "Could not open browser. Open this file manually:\n  %s\n", path) //nolint:errcheck
		return nil
	}
	fmt.Fprintf(w, "Preview written to %s\n", path) //nolint:errcheck
	return nil
}

func runCheck(w io.Writer, cfg *config.Config, args []string) error {
	g, err := parseGenArgs(args)
	if err != nil {
		return err
	}
	username := strings.TrimSpace(g.username)
	if username == "" {
		return badge.ErrEmptyUsername
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	c := client.New(cfg.Origin, cfg.HTTPTimeout)
	b, err := c.FetchBadge(ctx, username)
	switch {
	case client.IsStatus(err, 400):
		return fmt.Errorf("badge endpoint rejected the request: %w", err)
	case errors.Is(err, client.ErrNotImage):
		return fmt.Errorf("%s does not serve a badge image: %w", cfg.Origin, err)
	case err != nil:
		return err
	}
	fmt.Fprintf(w, "ok  %s  %s  %d bytes\n", b.Username, b.ContentType, b.Size()) //nolint:errcheck
	return nil
}

func runTheme(w io.Writer, ctrl *theme.Controller, args []string) error {
	if len(args) == 0 {
		fmt.Fprintln(w, ctrl.Init()) //nolint:errcheck
		return nil
	}
	t, ok := domain.ParseTheme(args[0])
	if !ok {
		return fmt.Errorf("unknown theme %q (want light or dark)", args[0])
	}
	if err := ctrl.Set(t); err != nil {
		return err
	}
	fmt.Fprintf(w, "theme set to %s\n", t) //nolint:errcheck
	return nil
}

func previewPath() string {
	return filepath.Join(os.TempDir(), "robobadge-preview.html")
}
