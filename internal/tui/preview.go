package tui

import (
	"bytes"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/robobadge/robobadge/pkg/badge"
	"github.com/robobadge/robobadge/pkg/domain"
)

// previewOpenedMsg carries the result of writing and opening the preview page.
type previewOpenedMsg struct {
	path string
	err  error
}

// openPreview renders the preview page for the current links and opens it,
// letting the browser fetch the badge image.
func (a App) openPreview() (App, tea.Cmd) {
	if !a.resultsShown || a.opts.OpenFile == nil || a.opts.PreviewPath == "" {
		return a, nil
	}
	links := a.links
	t := a.theme.Current()
	path := a.opts.PreviewPath
	open := a.opts.OpenFile
	return a, func() tea.Msg {
		if err := WritePreview(path, links, t); err != nil {
			return previewOpenedMsg{path: path, err: err}
		}
		return previewOpenedMsg{path: path, err: open(path)}
	}
}

// WritePreview renders the preview page for links to path.
func WritePreview(path string, links badge.Links, t domain.Theme) error {
	var buf bytes.Buffer
	if err := badge.RenderPreviewPage(&buf, links, t); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0600); err != nil {
		return fmt.Errorf("write preview: %w", err)
	}
	return nil
}
