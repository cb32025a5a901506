package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/robobadge/robobadge/internal/logger"
	"github.com/robobadge/robobadge/internal/theme"
	"github.com/robobadge/robobadge/pkg/badge"
)

type focus int

const (
	focusInput focus = iota
	focusCopy
	focusTheme
	numFocus
)

// Options wires the App to its collaborators.
type Options struct {
	Origin string
	Badge  badge.Options
	Theme  *theme.Controller
	Log    logger.Logger

	// Clipboard writes text to the system clipboard.
	Clipboard func(text string) error
	// OpenURL opens a URL in the browser.
	OpenURL func(url string) error
	// OpenFile opens a local file in the browser.
	OpenFile func(path string) error
	// PreviewPath is where the rendered preview page is written.
	PreviewPath string
}

// browserResultMsg carries the result of opening the profile page.
type browserResultMsg struct {
	url string
	err error
}

// App is the root Bubbletea model: username form, results panel,
// copy button and theme toggle.
type App struct {
	opts  Options
	log   logger.Logger
	theme *theme.Controller
	pal   palette

	input string
	focus focus

	links        badge.Links
	resultsShown bool
	warning      string

	copyLabel string
	copySeq   int

	status string
	width  int
	height int
}

// NewApp creates the TUI application. The theme controller must already be
// initialised; the App reads its current value for the starting palette.
func NewApp(opts Options) App {
	log := opts.Log
	if log == nil {
		log = logger.Nop()
	}
	return App{
		opts:      opts,
		log:       log,
		theme:     opts.Theme,
		pal:       paletteFor(opts.Theme.Current()),
		copyLabel: copyLabelIdle,
	}
}

func (a App) Init() tea.Cmd {
	return nil
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case copyResultMsg:
		return a.handleCopyResult(msg)

	case copyResetMsg:
		if msg.seq == a.copySeq {
			a.copyLabel = copyLabelIdle
		}
		return a, nil

	case previewOpenedMsg:
		if msg.err != nil {
			a.log.Warn("open preview", logger.String("path", msg.path), logger.Error(msg.err))
			a.status = fmt.Sprintf("preview failed: %v", msg.err)
		} else {
			a.status = "preview opened in browser"
		}
		return a, nil

	case browserResultMsg:
		if msg.err != nil {
			a.log.Warn("open profile", logger.String("url", msg.url), logger.Error(msg.err))
			a.status = "could not open browser, visit: " + msg.url
		}
		return a, nil

	case tea.KeyMsg:
		return a.updateKeys(msg)
	}
	return a, nil
}

func (a App) updateKeys(msg tea.KeyMsg) (App, tea.Cmd) {
	a.status = ""

	switch msg.String() {
	case "ctrl+c", "esc":
		return a, tea.Quit
	case "tab":
		a.focus = a.nextFocus(1)
		return a, nil
	case "shift+tab":
		a.focus = a.nextFocus(-1)
		return a, nil
	case "ctrl+y":
		return a.copy()
	case "ctrl+t":
		return a.toggleTheme(), nil
	case "ctrl+o":
		return a.openProfile()
	case "ctrl+p":
		return a.openPreview()
	}

	switch a.focus {
	case focusInput:
		return a.updateInput(msg)
	case focusCopy:
		if msg.Type == tea.KeyEnter || msg.Type == tea.KeySpace {
			return a.copy()
		}
	case focusTheme:
		if msg.Type == tea.KeyEnter || msg.Type == tea.KeySpace {
			return a.toggleTheme(), nil
		}
	}
	return a, nil
}

// nextFocus steps focus by dir, skipping the copy button while the results
// panel that holds it is hidden.
func (a App) nextFocus(dir int) focus {
	f := a.focus
	for {
		f = (f + focus(dir) + numFocus) % numFocus
		if f != focusCopy || a.resultsShown {
			return f
		}
	}
}

func (a App) updateInput(msg tea.KeyMsg) (App, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		return a.submit(), nil
	case tea.KeyBackspace:
		a.input = editRune(a.input, "backspace")
	case tea.KeySpace:
		a.input = insertRunes(a.input, []rune{' '})
	case tea.KeyRunes:
		a.input = insertRunes(a.input, msg.Runes)
	}
	return a, nil
}

// submit generates links for the current input. Blank input is a silent no-op.
func (a App) submit() App {
	links, err := badge.Generate(a.opts.Origin, a.input, a.opts.Badge)
	if err != nil {
		return a
	}

	a.links = links
	a.resultsShown = true
	a.warning = ""
	if err := badge.Verify(links); err != nil {
		a.warning = "this username produces a broken link; check for spaces or brackets"
		a.log.Warn("malformed badge markdown", logger.String("username", links.Username), logger.Error(err))
	}
	a.log.Info("generated badge links",
		logger.String("username", links.Username),
		logger.String("badge_url", links.BadgeURL),
	)
	return a
}

func (a App) toggleTheme() App {
	if err := a.theme.Toggle(!a.theme.Checked()); err != nil {
		a.status = fmt.Sprintf("theme not saved: %v", err)
	}
	a.pal = paletteFor(a.theme.Current())
	return a
}

func (a App) openProfile() (App, tea.Cmd) {
	if !a.resultsShown || a.opts.OpenURL == nil {
		return a, nil
	}
	open := a.opts.OpenURL
	u := a.links.ProfileURL
	return a, func() tea.Msg {
		return browserResultMsg{url: u, err: open(u)}
	}
}

func (a App) View() string {
	p := a.pal
	var b strings.Builder

	b.WriteString("\n  " + p.title.Render("R O B O B A D G E") + "\n")
	b.WriteString("  " + p.dim.Render("RoboContest stats badge for your README") + "\n\n")

	b.WriteString("  " + a.renderInput() + "\n\n")

	if a.resultsShown {
		b.WriteString(a.renderResults())
	}

	b.WriteString("  " + a.renderThemeToggle() + "\n")

	if a.status != "" {
		b.WriteString("\n  " + p.status.Render(a.status) + "\n")
	}

	body := b.String()
	// Chrome budget: help bar(1)
	if a.height > 0 {
		body = strings.TrimRight(truncateToHeight(body, a.height-1), "\n")
	}

	help := " " + p.helpEntry("enter", "generate") + "  " +
		p.helpEntry("tab", "focus") + "  " +
		p.helpEntry("ctrl+y", "copy") + "  " +
		p.helpEntry("ctrl+t", "theme") + "  " +
		p.helpEntry("ctrl+o", "profile") + "  " +
		p.helpEntry("ctrl+p", "preview") + "  " +
		p.helpEntry("esc", "quit")

	return body + "\n" + help
}

func (a App) renderInput() string {
	p := a.pal
	label := p.label.Render("username")
	prompt := p.meta.Render("> ")
	if a.focus == focusInput {
		prompt = p.accent.Render("> ")
	}
	if a.input == "" {
		value := p.placeholder.Render("robocontest username")
		if a.focus == focusInput {
			value = p.accent.Render("█") + value
		}
		return label + "  " + prompt + value
	}
	value := p.text.Render(a.input)
	if a.focus == focusInput {
		value += p.accent.Render("█")
	}
	return label + "  " + prompt + value
}

func (a App) renderResults() string {
	p := a.pal
	code := p.code
	if a.width > 8 {
		code = code.Width(a.width - 6)
	}

	var b strings.Builder
	b.WriteString("  " + p.label.Render("markdown") + "\n")
	b.WriteString(indent(code.Render(a.links.Markdown), "  ") + "\n\n")
	b.WriteString("  " + p.label.Render("preview") + "\n")
	b.WriteString(indent(code.Render(a.links.PreviewHTML()), "  ") + "\n")
	if a.warning != "" {
		b.WriteString("  " + p.warn.Render("! "+a.warning) + "\n")
	}
	b.WriteString("\n  " + a.renderCopyButton() + "\n\n")
	return b.String()
}

func (a App) renderThemeToggle() string {
	box := "[ ]"
	if a.theme.Checked() {
		box = "[x]"
	}
	style := a.pal.button
	if a.focus == focusTheme {
		style = a.pal.buttonFocus
	}
	return style.Render(box + " dark theme")
}

func indent(s, prefix string) string {
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = prefix + l
	}
	return strings.Join(lines, "\n")
}
