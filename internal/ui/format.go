package ui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	headingStyle = lipgloss.NewStyle().Bold(true)
	dimStyle     = lipgloss.NewStyle().Faint(true)
)

// Colorized reports whether styled output should be emitted: stdout is
// a terminal and NO_COLOR is unset.
func Colorized() bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}

func render(style lipgloss.Style, s string) string {
	if !Colorized() {
		return s
	}
	return style.Render(s)
}

// Success styles a success indicator.
func Success(s string) string { return render(successStyle, s) }

// Error styles a failure indicator.
func Error(s string) string { return render(errorStyle, s) }

// Heading styles a section heading.
func Heading(s string) string { return render(headingStyle, s) }

// Dim styles secondary detail such as paths.
func Dim(s string) string { return render(dimStyle, s) }
