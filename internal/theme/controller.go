// Package theme resolves, applies and persists the light/dark display theme.
package theme

import (
	"fmt"

	"github.com/robobadge/robobadge/internal/logger"
	"github.com/robobadge/robobadge/internal/prefs"
	"github.com/robobadge/robobadge/pkg/domain"
)

// Controller owns the process-wide theme value. All changes go through
// applyTheme; Toggle and Set also persist.
type Controller struct {
	store       prefs.Store
	prefersDark func() bool
	log         logger.Logger
	current     domain.Theme
}

// New returns a controller reading and writing store. prefersDark reports the
// environment's color-scheme preference; nil means no preference signal.
func New(store prefs.Store, prefersDark func() bool, log logger.Logger) *Controller {
	if log == nil {
		log = logger.Nop()
	}
	return &Controller{
		store:       store,
		prefersDark: prefersDark,
		log:         log,
		current:     domain.ThemeLight,
	}
}

// Init resolves the starting theme: stored value, then system preference,
// then light. The preference is not consulted when a value is stored.
func (c *Controller) Init() domain.Theme {
	stored, ok, err := c.store.Get(domain.ThemeKey)
	if err != nil {
		c.log.Warn("read stored theme", logger.Error(err))
		ok = false
	}
	if ok {
		// Anything other than "dark" applies as light.
		t, _ := domain.ParseTheme(stored)
		c.applyTheme(t)
		c.log.Debug("theme resolved", logger.String("source", "store"), logger.String("theme", t.String()))
		return c.current
	}

	t := domain.ThemeLight
	source := "default"
	if c.prefersDark != nil && c.prefersDark() {
		t = domain.ThemeDark
		source = "system"
	}
	c.applyTheme(t)
	c.log.Debug("theme resolved", logger.String("source", source), logger.String("theme", t.String()))
	return c.current
}

// Toggle applies dark when checked and light otherwise, then persists it.
// The theme is applied even if persisting fails.
func (c *Controller) Toggle(checked bool) error {
	t := domain.ThemeLight
	if checked {
		t = domain.ThemeDark
	}
	return c.Set(t)
}

// Set applies t and persists it.
func (c *Controller) Set(t domain.Theme) error {
	c.applyTheme(t)
	if err := c.store.Set(domain.ThemeKey, t.String()); err != nil {
		c.log.Error("persist theme", logger.String("theme", t.String()), logger.Error(err))
		return fmt.Errorf("theme.Set: %w", err)
	}
	c.log.Info("theme changed", logger.String("theme", t.String()))
	return nil
}

// Current returns the applied theme.
func (c *Controller) Current() domain.Theme { return c.current }

// Checked reports the toggle state matching the applied theme.
func (c *Controller) Checked() bool { return c.current.IsDark() }

func (c *Controller) applyTheme(t domain.Theme) {
	if t.IsDark() {
		c.current = domain.ThemeDark
		return
	}
	c.current = domain.ThemeLight
}
