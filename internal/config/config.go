package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"time"

	"github.com/robobadge/robobadge/internal/logger"
	"github.com/robobadge/robobadge/internal/prefs"
)

const defaultOrigin = "http://localhost:8000"

type Config struct {
	Origin         string        // base URL serving /api/badge (ex: https://badges.example.com)
	EscapeUsername bool          // percent-encode usernames in generated URLs
	PrefsFile      string        // path to the preferences YAML file
	LogFile        string        // path to the JSON log file
	LogLevel       string        // "debug" | "info" | "warn" | "error"
	HTTPTimeout    time.Duration // timeout for the badge endpoint probe
}

// Load reads configuration from ROBOBADGE_* environment variables.
func Load() (*Config, error) {
	prefsDefault, err := prefs.DefaultPath()
	if err != nil {
		return nil, fmt.Errorf("config.Load: %w", err)
	}
	logDefault, err := logger.DefaultPath()
	if err != nil {
		return nil, fmt.Errorf("config.Load: %w", err)
	}

	escape, err := getenvBool("ROBOBADGE_ESCAPE_USERNAME", false)
	if err != nil {
		return nil, fmt.Errorf("config.Load: %w", err)
	}
	timeout, err := getenvDuration("ROBOBADGE_HTTP_TIMEOUT", 10*time.Second)
	if err != nil {
		return nil, fmt.Errorf("config.Load: %w", err)
	}

	cfg := &Config{
		Origin:         getenv("ROBOBADGE_ORIGIN", defaultOrigin),
		EscapeUsername: escape,
		PrefsFile:      getenv("ROBOBADGE_PREFS_FILE", prefsDefault),
		LogFile:        getenv("ROBOBADGE_LOG_FILE", logDefault),
		LogLevel:       getenv("ROBOBADGE_LOG_LEVEL", "info"),
		HTTPTimeout:    timeout,
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config.Load: %w", err)
	}
	return cfg, nil
}

func (c *Config) validate() error {
	u, err := url.Parse(c.Origin)
	if err != nil {
		return fmt.Errorf("ROBOBADGE_ORIGIN: %w", err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("ROBOBADGE_ORIGIN: %q is not an absolute http(s) URL", c.Origin)
	}
	if !logger.ValidLevel(c.LogLevel) {
		return fmt.Errorf("ROBOBADGE_LOG_LEVEL: unknown level %q", c.LogLevel)
	}
	if c.HTTPTimeout <= 0 {
		return fmt.Errorf("ROBOBADGE_HTTP_TIMEOUT: must be positive, got %s", c.HTTPTimeout)
	}
	return nil
}

// helpers
func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvBool(key string, def bool) (bool, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("%s: invalid bool %q", key, v)
	}
	return b, nil
}

func getenvDuration(key string, def time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("%s: invalid duration %q", key, v)
	}
	return d, nil
}
