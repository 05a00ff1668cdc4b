package cli

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

var (
	keyStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("36"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	faintStyle   = lipgloss.NewStyle().Faint(true)
)

// colorEnabled reports whether styled output should be used. Honours
// NO_COLOR and falls back to plain text when stdout is not a terminal.
func colorEnabled() bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	return term.IsTerminal(int(os.Stdout.Fd()))
}

func renderKey(s string) string {
	if !colorEnabled() {
		return s
	}
	return keyStyle.Render(s)
}

func renderSuccess(s string) string {
	if !colorEnabled() {
		return s
	}
	return successStyle.Render(s)
}

func renderWarning(s string) string {
	if !colorEnabled() {
		return s
	}
	return warningStyle.Render(s)
}

func renderFaint(s string) string {
	if !colorEnabled() {
		return s
	}
	return faintStyle.Render(s)
}
