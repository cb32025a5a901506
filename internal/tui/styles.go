package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/robobadge/robobadge/pkg/domain"
)

// palette is the full set of styles for one theme. Switching theme swaps
// the whole palette, never individual styles.
type palette struct {
	title       lipgloss.Style
	text        lipgloss.Style
	dim         lipgloss.Style
	meta        lipgloss.Style
	accent      lipgloss.Style
	label       lipgloss.Style
	code        lipgloss.Style
	warn        lipgloss.Style
	status      lipgloss.Style
	button      lipgloss.Style
	buttonFocus lipgloss.Style
	placeholder lipgloss.Style
	helpKey     lipgloss.Style
	helpLabel   lipgloss.Style
}

type colors struct {
	title, text, dim, meta, accent, code, codeBorder, warn, buttonFg, buttonBg, focusFg, focusBg, placeholder lipgloss.Color
}

// Dark uses the neutral slate palette; light inverts its contrast.
var themeColors = map[domain.Theme]colors{
	domain.ThemeDark: {
		title:       "#4ade80",
		text:        "#e4e4ec",
		dim:         "#8890a0",
		meta:        "#505868",
		accent:      "#34d474",
		code:        "#c0c4d0",
		codeBorder:  "#1e1e2a",
		warn:        "#d4a844",
		buttonFg:    "#c0c4d0",
		buttonBg:    "#1e1e2a",
		focusFg:     "#0a0a10",
		focusBg:     "#34d474",
		placeholder: "#343c4a",
	},
	domain.ThemeLight: {
		title:       "#15803d",
		text:        "#1d1d24",
		dim:         "#505868",
		meta:        "#8890a0",
		accent:      "#16a34a",
		code:        "#30363d",
		codeBorder:  "#d0d4dc",
		warn:        "#a16207",
		buttonFg:    "#30363d",
		buttonBg:    "#e4e4ec",
		focusFg:     "#ffffff",
		focusBg:     "#16a34a",
		placeholder: "#b0b6c2",
	},
}

func paletteFor(t domain.Theme) palette {
	c, ok := themeColors[t]
	if !ok {
		c = themeColors[domain.ThemeLight]
	}
	return palette{
		title:  lipgloss.NewStyle().Foreground(c.title).Bold(true),
		text:   lipgloss.NewStyle().Foreground(c.text),
		dim:    lipgloss.NewStyle().Foreground(c.dim),
		meta:   lipgloss.NewStyle().Foreground(c.meta),
		accent: lipgloss.NewStyle().Foreground(c.accent).Bold(true),
		label:  lipgloss.NewStyle().Foreground(c.dim),
		code: lipgloss.NewStyle().
			Foreground(c.code).
			BorderStyle(lipgloss.NormalBorder()).
			BorderLeft(true).
			BorderForeground(c.codeBorder).
			PaddingLeft(1),
		warn:   lipgloss.NewStyle().Foreground(c.warn),
		status: lipgloss.NewStyle().Foreground(c.accent),
		button: lipgloss.NewStyle().
			Foreground(c.buttonFg).
			Background(c.buttonBg).
			Padding(0, 1),
		buttonFocus: lipgloss.NewStyle().
			Foreground(c.focusFg).
			Background(c.focusBg).
			Bold(true).
			Padding(0, 1),
		placeholder: lipgloss.NewStyle().Foreground(c.placeholder),
		helpKey:     lipgloss.NewStyle().Foreground(c.dim),
		helpLabel:   lipgloss.NewStyle().Foreground(c.meta),
	}
}

func (p palette) helpEntry(key, label string) string {
	return p.helpKey.Render(key) + " " + p.helpLabel.Render(label)
}
