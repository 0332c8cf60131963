package tui

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestValidThemes(t *testing.T) {
	expected := []string{"nodever", "base", "base16", "catppuccin", "charm", "dracula"}

	if len(ValidThemes) != len(expected) {
		t.Fatalf("expected %d valid themes, got %d", len(expected), len(ValidThemes))
	}
	for i, theme := range expected {
		if ValidThemes[i] != theme {
			t.Errorf("expected theme at index %d to be %q, got %q", i, theme, ValidThemes[i])
		}
	}
}

func TestGetTheme(t *testing.T) {
	for _, name := range ValidThemes {
		t.Run(name, func(t *testing.T) {
			if !IsValidTheme(name) {
				t.Errorf("IsValidTheme(%q) = false", name)
			}
			if GetTheme(name) == nil {
				t.Errorf("GetTheme(%q) returned nil", name)
			}
		})
	}

	for _, name := range []string{"", "neon", "Dracula"} {
		if IsValidTheme(name) {
			t.Errorf("IsValidTheme(%q) = true", name)
		}
		if GetTheme(name) != nil {
			t.Errorf("GetTheme(%q) should be nil", name)
		}
	}
}

func TestNodeverTheme(t *testing.T) {
	theme := nodeverTheme()

	if !theme.Focused.Title.GetBold() {
		t.Error("Focused.Title should be bold")
	}
	if theme.Focused.Base.GetBorderStyle() != lipgloss.RoundedBorder() {
		t.Error("Focused.Base should have rounded border")
	}
	_, right, _, left := theme.Focused.FocusedButton.GetPadding()
	if left != 1 || right != 1 {
		t.Errorf("Focused.FocusedButton padding = left %d right %d, want 1/1", left, right)
	}
	if theme.Blurred.Base.GetBorderStyle() != lipgloss.HiddenBorder() {
		t.Error("Blurred.Base should hide its border")
	}
}

func TestSetTheme(t *testing.T) {
	t.Cleanup(resetTheme)

	SetTheme("dracula")
	if currentTheme == nil {
		t.Fatal("SetTheme(dracula) left the theme unset")
	}

	SetTheme("unknown")
	if currentTheme != nil {
		t.Error("unknown theme should fall back to the default")
	}
	if currentThemeOrDefault() == nil {
		t.Error("currentThemeOrDefault() returned nil")
	}
}
