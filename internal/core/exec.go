package core

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"time"
)

// ExecResult holds the captured output of a finished command.
type ExecResult struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// CommandRunner runs an external command to completion.
// A non-zero exit code is reported in ExecResult, not as an error.
type CommandRunner interface {
	Run(ctx context.Context, name string, args ...string) (ExecResult, error)
}

// ToolLocator resolves tool names on the search path.
type ToolLocator interface {
	// LookPath returns the resolved executable path, or ok=false when the
	// tool is not installed.
	LookPath(name string) (path string, ok bool)
}

// DefaultWaitDelay bounds how long Run waits for output pipes after the
// process has been killed by context expiry.
const DefaultWaitDelay = 2 * time.Second

// OSCommandRunner implements CommandRunner with os/exec.
// The context kills the child process when it expires.
type OSCommandRunner struct {
	execCommand func(ctx context.Context, name string, arg ...string) *exec.Cmd
	waitDelay   time.Duration
}

// NewOSCommandRunner creates an OSCommandRunner using exec.CommandContext.
func NewOSCommandRunner() *OSCommandRunner {
	return &OSCommandRunner{
		execCommand: exec.CommandContext,
		waitDelay:   DefaultWaitDelay,
	}
}

var _ CommandRunner = (*OSCommandRunner)(nil)

func (r *OSCommandRunner) Run(ctx context.Context, name string, args ...string) (ExecResult, error) {
	cmd := r.execCommand(ctx, name, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	cmd.WaitDelay = r.waitDelay

	err := cmd.Run()
	result := ExecResult{Stdout: stdout.String(), Stderr: stderr.String()}
	if err == nil {
		return result, nil
	}

	if ctxErr := ctx.Err(); ctxErr != nil {
		return result, fmt.Errorf("%s: %w", name, ctxErr)
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) && exitErr.ExitCode() > 0 {
		result.ExitCode = exitErr.ExitCode()
		return result, nil
	}
	return result, err
}

// OSToolLocator implements ToolLocator with exec.LookPath.
type OSToolLocator struct{}

// NewOSToolLocator returns a ToolLocator backed by the PATH environment.
func NewOSToolLocator() *OSToolLocator {
	return &OSToolLocator{}
}

var _ ToolLocator = (*OSToolLocator)(nil)

func (l *OSToolLocator) LookPath(name string) (string, bool) {
	path, err := exec.LookPath(name)
	if err != nil {
		return "", false
	}
	return path, true
}
