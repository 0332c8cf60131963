package main

import (
	"context"
	"os"

	"github.com/indaco/nodever/internal/actions"
	"github.com/indaco/nodever/internal/cli"
	"github.com/indaco/nodever/internal/config"
	"github.com/indaco/nodever/internal/printer"
	"github.com/indaco/nodever/internal/tui"
)

func main() {
	if err := runCLI(os.Args); err != nil {
		reportError(err)
		os.Exit(1)
	}
}

// runCLI loads the configuration and runs the root command with args.
func runCLI(args []string) error {
	cfg, err := config.LoadConfigFn("")
	if err != nil {
		return err
	}
	return cli.New(cfg).Run(context.Background(), args)
}

// reportError annotates the job inside GitHub Actions and prints to stderr otherwise.
func reportError(err error) {
	if tui.IsGitHubActions() {
		actions.NewWorkflow(os.Stdout).Error(err.Error())
		return
	}
	printer.PrintError(err.Error())
}
