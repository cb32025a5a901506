package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

func printHelp() {
	title := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#4ade80")).
		Bold(true).
		Render("R O B O B A D G E")

	tagline := lipgloss.NewStyle().
		Foreground(lipgloss.Color("245")).
		Italic(true).
		Render("RoboContest stats badges for your README.")

	cmdStyle := lipgloss.NewStyle().Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	commands := []struct{ cmd, desc string }{
		{"robobadge", "Interactive generator (TUI)"},
		{"robobadge gen <user>", "Print the Markdown snippet (--html adds the preview)"},
		{"robobadge preview <user>", "Open a badge preview in the browser"},
		{"robobadge check <user>", "Probe the badge endpoint"},
		{"robobadge theme [light|dark]", "Show or set the theme"},
		{"robobadge --version", "Show version"},
		{"robobadge help", "You are here"},
	}

	fmt.Printf("\n  %s\n\n  %s\n\n  Commands:\n", title, tagline)
	for _, c := range commands {
		fmt.Printf("    %s  %s\n", cmdStyle.Render(fmt.Sprintf("%-30s", c.cmd)), descStyle.Render(c.desc))
	}

	envStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	fmt.Printf("\n  Environment:\n")
	for _, e := range []string{
		"ROBOBADGE_ORIGIN           base URL serving /api/badge",
		"ROBOBADGE_ESCAPE_USERNAME  percent-encode usernames (true/false)",
		"ROBOBADGE_PREFS_FILE       preferences file",
		"ROBOBADGE_LOG_FILE         log file",
		"ROBOBADGE_LOG_LEVEL        debug, info, warn or error",
		"ROBOBADGE_HTTP_TIMEOUT     timeout for check (ex: 10s)",
	} {
		fmt.Printf("    %s\n", envStyle.Render(e))
	}
	fmt.Println()
}
