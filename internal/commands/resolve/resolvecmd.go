package resolve

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/indaco/nodever/internal/actions"
	"github.com/indaco/nodever/internal/config"
	"github.com/indaco/nodever/internal/core"
	"github.com/indaco/nodever/internal/discovery"
	"github.com/indaco/nodever/internal/nodeversion"
	"github.com/indaco/nodever/internal/tui"
	"github.com/urfave/cli/v3"
)

// ErrNoVersionFile is returned when no version file is given and none is
// found in the workspace.
var ErrNoVersionFile = errors.New("no node version file found")

// Function variables for testability.
var (
	newFileSystem = func() core.FileSystem { return core.NewOSFileSystem() }
	isInteractive = tui.IsInteractive
	selectFn      = tui.Select
	getwd         = os.Getwd
)

// Run returns the "resolve" command.
func Run(cfg *config.Config) *cli.Command {
	if cfg == nil {
		cfg = &config.Config{}
	}
	return &cli.Command{
		Name:  "resolve",
		Usage: "Resolve the Node.js version declared by the project",
		UsageText: `nodever resolve [--file <path>] [--node-version <version>]

Reads the version from a version file (.nvmrc, .node-version, .tool-versions,
package.json volta/engines fields, mise.toml). Without --file the workspace
is scanned for known version files.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "file",
				Aliases: []string{"f"},
				Usage:   "Path to the node version file",
				Value:   cfg.NodeVersionFile,
			},
			&cli.StringFlag{
				Name:  "node-version",
				Usage: "Explicit version; takes precedence over --file",
				Value: cfg.NodeVersion,
			},
			&cli.StringFlag{
				Name:    "workspace",
				Usage:   "Base directory for relative version file paths",
				Sources: cli.EnvVars("GITHUB_WORKSPACE"),
			},
			&cli.StringFlag{
				Name:  "output",
				Usage: "Name of the output receiving the version",
				Value: outputOrDefault(cfg.Output),
			},
			&cli.BoolFlag{
				Name:  "no-interactive",
				Usage: "Never prompt when several version files are found",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return runResolveCmd(ctx, cmd)
		},
	}
}

// runResolveCmd resolves the version and publishes it as an output.
func runResolveCmd(ctx context.Context, cmd *cli.Command) error {
	log := actions.Detect(cmd.Root().Writer)
	fs := newFileSystem()

	workspace := cmd.String("workspace")
	if workspace == "" {
		wd, err := getwd()
		if err != nil {
			return fmt.Errorf("failed to get current directory: %w", err)
		}
		workspace = wd
	}

	in := nodeversion.Input{
		Version:     cmd.String("node-version"),
		VersionFile: cmd.String("file"),
		Workspace:   workspace,
	}
	if in.Version == "" && in.VersionFile == "" {
		file, err := pickVersionFile(ctx, fs, workspace, isInteractive() && !cmd.Bool("no-interactive"))
		if err != nil {
			return err
		}
		in.VersionFile = file
	}

	version, found, err := nodeversion.NewResolver(fs, log).ResolveInput(ctx, in)
	if err != nil {
		return err
	}
	if !found {
		log.Warning(fmt.Sprintf("No Node.js version declared in %s", in.VersionFile))
	}

	return log.SetOutput(cmd.String("output"), version)
}

// pickVersionFile chooses a version file from the workspace. With several
// candidates it prompts when interactive and takes the first otherwise.
func pickVersionFile(ctx context.Context, fs core.FileSystem, dir string, interactive bool) (string, error) {
	candidates, err := discovery.Find(ctx, fs, dir)
	if err != nil {
		return "", err
	}

	switch {
	case len(candidates) == 0:
		return "", fmt.Errorf("%w in %s", ErrNoVersionFile, dir)
	case len(candidates) == 1 || !interactive:
		return candidates[0].Path, nil
	}

	options := make([]huh.Option[string], len(candidates))
	for i, c := range candidates {
		options[i] = huh.NewOption(fmt.Sprintf("%s (%s)", c.Name, c.Format), c.Path)
	}
	return selectFn("Node version file", "Several version files were found", options)
}

func outputOrDefault(name string) string {
	if name == "" {
		return config.DefaultOutput
	}
	return name
}
