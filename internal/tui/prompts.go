package tui

import (
	"context"
	"errors"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/huh/spinner"
)

// ErrNoOptions is returned by Select when there is nothing to choose from.
var ErrNoOptions = errors.New("no options to select from")

// Select shows a single-select prompt and returns the chosen value.
func Select(title, description string, options []huh.Option[string]) (string, error) {
	if len(options) == 0 {
		return "", ErrNoOptions
	}

	selected := options[0].Value
	field := huh.NewSelect[string]().
		Title(title).
		Description(description).
		Options(options...).
		Value(&selected)

	if err := huh.NewForm(huh.NewGroup(field)).WithTheme(currentThemeOrDefault()).Run(); err != nil {
		return "", err
	}
	return selected, nil
}

// RunWithSpinner runs action behind a spinner titled title. Outside an
// interactive terminal the action runs directly.
func RunWithSpinner(ctx context.Context, title string, action func(context.Context) error) error {
	if !IsInteractive() {
		return action(ctx)
	}

	var actionErr error
	err := spinner.New().
		Title(title).
		Context(ctx).
		Action(func() {
			actionErr = action(ctx)
		}).
		Run()
	if err != nil {
		return err
	}
	return actionErr
}
