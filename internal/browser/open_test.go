package browser

import (
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

func TestFileURL(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("unix paths")
	}
	got, err := FileURL("/tmp/robobadge preview.html")
	if err != nil {
		t.Fatalf("FileURL() error: %v", err)
	}
	if got != "file:///tmp/robobadge%20preview.html" {
		t.Errorf("FileURL() = %q", got)
	}
}

func TestFileURLRelative(t *testing.T) {
	got, err := FileURL("preview.html")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(got, "file://") || !strings.HasSuffix(got, filepath.ToSlash("/preview.html")) {
		t.Errorf("FileURL(relative) = %q", got)
	}
}
