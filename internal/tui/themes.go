package tui

import (
	"slices"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// ValidThemes is the list of supported theme names.
var ValidThemes = []string{
	"nodever",
	"base",
	"base16",
	"catppuccin",
	"charm",
	"dracula",
}

// IsValidTheme returns true if the given theme name is valid.
func IsValidTheme(name string) bool {
	return slices.Contains(ValidThemes, name)
}

// GetTheme returns the huh.Theme for the given theme name.
// Returns nil if the theme name is not recognized.
func GetTheme(name string) *huh.Theme {
	switch name {
	case "nodever":
		return nodeverTheme()
	case "base":
		return huh.ThemeBase()
	case "base16":
		return huh.ThemeBase16()
	case "catppuccin":
		return huh.ThemeCatppuccin()
	case "charm":
		return huh.ThemeCharm()
	case "dracula":
		return huh.ThemeDracula()
	default:
		return nil
	}
}

// nodeverTheme is the base theme with Node.js green accents.
func nodeverTheme() *huh.Theme {
	t := huh.ThemeBase()
	green := lipgloss.AdaptiveColor{Light: "#3C873A", Dark: "#68A063"}

	t.Focused.Base = t.Focused.Base.BorderStyle(lipgloss.RoundedBorder()).BorderForeground(green)
	t.Focused.Title = t.Focused.Title.Foreground(green).Bold(true)
	t.Focused.SelectSelector = t.Focused.SelectSelector.Foreground(green)
	t.Focused.SelectedOption = t.Focused.SelectedOption.Foreground(green)
	t.Focused.FocusedButton = t.Focused.FocusedButton.Bold(true).Padding(0, 1)
	t.Focused.BlurredButton = t.Focused.BlurredButton.Padding(0, 1)

	t.Blurred = t.Focused
	t.Blurred.Base = t.Blurred.Base.BorderStyle(lipgloss.HiddenBorder())
	return t
}
