package printer

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Style definitions for console output.
var (
	faintStyle   = lipgloss.NewStyle().Faint(true)
	boldStyle    = lipgloss.NewStyle().Bold(true)
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2")) // Green
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1")) // Red
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3")) // Yellow
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("6")) // Cyan
)

// SetNoColor disables (or re-enables) ANSI styling for every render function.
func SetNoColor(noColor bool) {
	if noColor {
		lipgloss.SetColorProfile(termenv.Ascii)
		return
	}
	lipgloss.SetColorProfile(termenv.NewOutput(os.Stdout).EnvColorProfile())
}

// Faint returns text with faint styling.
func Faint(text string) string {
	return faintStyle.Render(text)
}

// Bold returns text with bold styling.
func Bold(text string) string {
	return boldStyle.Render(text)
}

// Success returns text with success (green) styling.
func Success(text string) string {
	return successStyle.Render(text)
}

// Error returns text with error (red) styling.
func Error(text string) string {
	return errorStyle.Render(text)
}

// Warning returns text with warning (yellow) styling.
func Warning(text string) string {
	return warningStyle.Render(text)
}

// Info returns text with info (cyan) styling.
func Info(text string) string {
	return infoStyle.Render(text)
}

// KeyValue renders "key=value" with a faint key.
func KeyValue(key, value string) string {
	return Faint(key+"=") + Bold(value)
}

// Fprintln writes styled text to w followed by a newline.
// Write errors are ignored, like fmt.Println.
func Fprintln(w io.Writer, styled string) {
	_, _ = fmt.Fprintln(w, styled)
}

// PrintSuccess prints text with success (green) styling to stdout.
func PrintSuccess(text string) {
	Fprintln(os.Stdout, Success(text))
}

// PrintError prints text with error (red) styling to stderr.
func PrintError(text string) {
	Fprintln(os.Stderr, Error(text))
}

// PrintWarning prints text with warning (yellow) styling to stdout.
func PrintWarning(text string) {
	Fprintln(os.Stdout, Warning(text))
}

// PrintInfo prints text with info (cyan) styling to stdout.
func PrintInfo(text string) {
	Fprintln(os.Stdout, Info(text))
}
