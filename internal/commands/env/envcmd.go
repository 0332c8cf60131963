package env

import (
	"bytes"
	"context"
	"io"
	"strings"
	"time"

	"github.com/indaco/nodever/internal/actions"
	"github.com/indaco/nodever/internal/config"
	"github.com/indaco/nodever/internal/core"
	"github.com/indaco/nodever/internal/probe"
	"github.com/indaco/nodever/internal/tui"
	"github.com/urfave/cli/v3"
)

// Function variables for testability.
var (
	newRunner      = func() core.CommandRunner { return core.NewOSCommandRunner() }
	newLocator     = func() core.ToolLocator { return core.NewOSToolLocator() }
	isInteractive  = tui.IsInteractive
	runWithSpinner = tui.RunWithSpinner
)

// Run returns the "env" command.
func Run(cfg *config.Config) *cli.Command {
	if cfg == nil {
		cfg = &config.Config{}
	}
	timeout, err := cfg.Timeout()
	if err != nil || timeout <= 0 {
		timeout = probe.DefaultTimeout
	}

	return &cli.Command{
		Name:      "env",
		Usage:     "Report the versions of installed Node.js tooling",
		UsageText: "nodever env [--tool <name>]... [--timeout <duration>]",
		Flags: []cli.Flag{
			&cli.StringSliceFlag{
				Name:    "tool",
				Aliases: []string{"t"},
				Usage:   `Tool to probe, as name or "name:arg arg" (repeatable; default node, npm, yarn)`,
			},
			&cli.DurationFlag{
				Name:  "timeout",
				Usage: "Time budget for each probe",
				Value: timeout,
			},
			&cli.StringFlag{
				Name:  "output",
				Usage: "Name of the output receiving the node version",
				Value: cfg.Output,
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return runEnvCmd(ctx, cmd, cfg)
		},
	}
}

// runEnvCmd probes the configured tools and reports their versions.
func runEnvCmd(ctx context.Context, cmd *cli.Command, cfg *config.Config) error {
	w := cmd.Root().Writer
	specs := toolSpecs(cmd.StringSlice("tool"), cfg.Tools)
	timeout := cmd.Duration("timeout")
	output := cmd.String("output")

	if !isInteractive() {
		_, err := newProber(actions.Detect(w), timeout).Report(ctx, specs, output)
		return err
	}

	// Hold console lines until the spinner has cleared the line.
	var buf bytes.Buffer
	err := runWithSpinner(ctx, "Probing tool versions...", func(ctx context.Context) error {
		_, err := newProber(actions.NewConsole(&buf), timeout).Report(ctx, specs, output)
		return err
	})
	_, _ = io.Copy(w, &buf)
	return err
}

func newProber(log actions.Logger, timeout time.Duration) *probe.Prober {
	return probe.New(newRunner(), newLocator(), log, probe.WithTimeout(timeout))
}

// toolSpecs builds probe specs from --tool flags, falling back to the
// configured tools and then to probe.DefaultTools.
func toolSpecs(flags []string, tools []config.ToolConfig) []probe.ToolSpec {
	if len(flags) > 0 {
		specs := make([]probe.ToolSpec, 0, len(flags))
		for _, f := range flags {
			if spec, ok := parseToolFlag(f); ok {
				specs = append(specs, spec)
			}
		}
		if len(specs) > 0 {
			return specs
		}
	}

	if len(tools) > 0 {
		specs := make([]probe.ToolSpec, len(tools))
		for i, t := range tools {
			specs[i] = probe.ToolSpec{Name: strings.TrimSpace(t.Name), Args: t.Args}
		}
		return specs
	}

	return probe.DefaultTools()
}

// parseToolFlag parses "name" or "name:arg1 arg2".
func parseToolFlag(s string) (probe.ToolSpec, bool) {
	name, rawArgs, hasArgs := strings.Cut(strings.TrimSpace(s), ":")
	name = strings.TrimSpace(name)
	if name == "" {
		return probe.ToolSpec{}, false
	}

	spec := probe.ToolSpec{Name: name}
	if hasArgs {
		spec.Args = strings.Fields(rawArgs)
	}
	return spec, true
}
