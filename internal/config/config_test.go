package config

import (
	"strings"
	"testing"
	"time"
)

var allKeys = []string{
	"ROBOBADGE_ORIGIN",
	"ROBOBADGE_ESCAPE_USERNAME",
	"ROBOBADGE_PREFS_FILE",
	"ROBOBADGE_LOG_FILE",
	"ROBOBADGE_LOG_LEVEL",
	"ROBOBADGE_HTTP_TIMEOUT",
}

// clearEnv blanks every ROBOBADGE_* variable for the test's duration.
func clearEnv(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	for _, k := range allKeys {
		t.Setenv(k, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Origin != "http://localhost:8000" {
		t.Errorf("Origin = %q", cfg.Origin)
	}
	if cfg.EscapeUsername {
		t.Error("EscapeUsername = true, want false")
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want info", cfg.LogLevel)
	}
	if cfg.HTTPTimeout != 10*time.Second {
		t.Errorf("HTTPTimeout = %s, want 10s", cfg.HTTPTimeout)
	}
	if !strings.HasSuffix(cfg.PrefsFile, "prefs.yaml") {
		t.Errorf("PrefsFile = %q", cfg.PrefsFile)
	}
	if !strings.HasSuffix(cfg.LogFile, "robobadge.log") {
		t.Errorf("LogFile = %q", cfg.LogFile)
	}
}

func TestLoadOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("ROBOBADGE_ORIGIN", "https://badges.example.com")
	t.Setenv("ROBOBADGE_ESCAPE_USERNAME", "true")
	t.Setenv("ROBOBADGE_PREFS_FILE", "/tmp/p.yaml")
	t.Setenv("ROBOBADGE_LOG_LEVEL", "debug")
	t.Setenv("ROBOBADGE_HTTP_TIMEOUT", "3s")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Origin != "https://badges.example.com" {
		t.Errorf("Origin = %q", cfg.Origin)
	}
	if !cfg.EscapeUsername {
		t.Error("EscapeUsername = false, want true")
	}
	if cfg.PrefsFile != "/tmp/p.yaml" {
		t.Errorf("PrefsFile = %q", cfg.PrefsFile)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q", cfg.LogLevel)
	}
	if cfg.HTTPTimeout != 3*time.Second {
		t.Errorf("HTTPTimeout = %s", cfg.HTTPTimeout)
	}
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		value   string
		wantErr string
	}{
		{"relative origin", "ROBOBADGE_ORIGIN", "example.com", "ROBOBADGE_ORIGIN"},
		{"ftp origin", "ROBOBADGE_ORIGIN", "ftp://example.com", "ROBOBADGE_ORIGIN"},
		{"bad bool", "ROBOBADGE_ESCAPE_USERNAME", "maybe", "ROBOBADGE_ESCAPE_USERNAME"},
		{"bad duration", "ROBOBADGE_HTTP_TIMEOUT", "soon", "ROBOBADGE_HTTP_TIMEOUT"},
		{"negative duration", "ROBOBADGE_HTTP_TIMEOUT", "-1s", "ROBOBADGE_HTTP_TIMEOUT"},
		{"bad level", "ROBOBADGE_LOG_LEVEL", "trace", "ROBOBADGE_LOG_LEVEL"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.value)
			_, err := Load()
			if err == nil {
				t.Fatalf("Load() with %s=%q: expected error", tt.key, tt.value)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %q, want it to mention %s", err, tt.wantErr)
			}
		})
	}
}
