package tui

import (
	"github.com/charmbracelet/huh"
)

// currentTheme holds the configured theme for TUI components.
// When nil, currentThemeOrDefault() returns the nodever theme.
var currentTheme *huh.Theme

// SetTheme sets the current theme by name.
// Empty or unknown names select the nodever theme.
func SetTheme(name string) {
	currentTheme = GetTheme(name)
}

func currentThemeOrDefault() *huh.Theme {
	if currentTheme == nil {
		return nodeverTheme()
	}
	return currentTheme
}

// resetTheme resets the current theme to the default.
func resetTheme() {
	currentTheme = nil
}
