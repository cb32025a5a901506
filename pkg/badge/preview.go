package badge

import (
	"fmt"
	"html/template"
	"io"

	"github.com/robobadge/robobadge/pkg/domain"
)

type pagePalette struct {
	Background string
	Foreground string
	Muted      string
}

var pagePalettes = map[domain.Theme]pagePalette{
	domain.ThemeLight: {Background: "#f7f7f7", Foreground: "#1d1d24", Muted: "#6a7080"},
	domain.ThemeDark:  {Background: "#0d1117", Foreground: "#e4e4ec", Muted: "#8890a0"},
}

var previewPage = template.Must(template.New("preview").Parse(`<!DOCTYPE html>
<html lang="en"{{if .Dark}} data-theme="dark"{{end}}>
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width,initial-scale=1">
<title>RoboContest Stats / {{.Links.Username}}</title>
<style>
body{background:{{.Palette.Background}};color:{{.Palette.Foreground}};font-family:-apple-system,'Segoe UI',Roboto,sans-serif;margin:0;padding:48px;display:flex;flex-direction:column;align-items:center;gap:24px}
pre{color:{{.Palette.Muted}};white-space:pre-wrap;word-break:break-all;max-width:720px}
</style>
</head>
<body>
<a href="{{.Links.ProfileURL}}"><img src="{{.Links.BadgeURL}}" alt="RoboContest Stats Badge"></a>
<pre>{{.Links.Markdown}}</pre>
</body>
</html>
`))

// RenderPreviewPage writes a standalone HTML page showing the badge preview
// and its Markdown snippet, styled for t.
func RenderPreviewPage(w io.Writer, l Links, t domain.Theme) error {
	p, ok := pagePalettes[t]
	if !ok {
		p = pagePalettes[domain.ThemeLight]
	}
	data := struct {
		Links   Links
		Palette pagePalette
		Dark    bool
	}{Links: l, Palette: p, Dark: t.IsDark()}
	if err := previewPage.Execute(w, data); err != nil {
		return fmt.Errorf("badge.RenderPreviewPage: %w", err)
	}
	return nil
}
