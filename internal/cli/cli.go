package cli

import (
	"context"
	"fmt"

	"github.com/indaco/nodever/internal/commands/env"
	"github.com/indaco/nodever/internal/commands/resolve"
	"github.com/indaco/nodever/internal/config"
	"github.com/indaco/nodever/internal/printer"
	"github.com/indaco/nodever/internal/tui"
	"github.com/indaco/nodever/internal/version"
	urfavecli "github.com/urfave/cli/v3"
)

// New builds and returns the root CLI command,
// configuring all subcommands and flags for the nodever cli.
func New(cfg *config.Config) *urfavecli.Command {
	if cfg == nil {
		cfg = &config.Config{}
	}

	var noColor bool
	return &urfavecli.Command{
		Name:                  "nodever",
		Version:               fmt.Sprintf("v%s", version.GetVersion()),
		Usage:                 "Resolve Node.js versions from project files and report installed tooling",
		EnableShellCompletion: true,
		Flags: []urfavecli.Flag{
			&urfavecli.BoolFlag{
				Name:        "no-color",
				Usage:       "Disable colored output",
				Destination: &noColor,
			},
			&urfavecli.StringFlag{
				Name:  "theme",
				Usage: fmt.Sprintf("Prompt theme (%v)", tui.ValidThemes),
				Value: cfg.Theme,
				Validator: func(s string) error {
					if s != "" && !tui.IsValidTheme(s) {
						return fmt.Errorf("unknown theme %q", s)
					}
					return nil
				},
			},
		},
		Before: func(ctx context.Context, cmd *urfavecli.Command) (context.Context, error) {
			printer.SetNoColor(noColor)
			tui.SetTheme(cmd.String("theme"))
			return ctx, nil
		},
		Commands: []*urfavecli.Command{
			resolve.Run(cfg),
			env.Run(cfg),
		},
	}
}
