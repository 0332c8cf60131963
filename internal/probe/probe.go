package probe

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/indaco/nodever/internal/actions"
	"github.com/indaco/nodever/internal/core"
)

// DefaultTimeout is the time budget for a single version probe.
const DefaultTimeout = 30 * time.Second

// Prober runs tools to read their self-reported versions.
type Prober struct {
	runner  core.CommandRunner
	locator core.ToolLocator
	log     actions.Logger
	timeout time.Duration
}

// Option configures a Prober.
type Option func(*Prober)

// WithTimeout overrides DefaultTimeout. Non-positive values are ignored.
func WithTimeout(d time.Duration) Option {
	return func(p *Prober) {
		if d > 0 {
			p.timeout = d
		}
	}
}

// New creates a Prober.
func New(runner core.CommandRunner, locator core.ToolLocator, log actions.Logger, opts ...Option) *Prober {
	p := &Prober{
		runner:  runner,
		locator: locator,
		log:     log,
		timeout: DefaultTimeout,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Timeout returns the per-probe time budget.
func (p *Prober) Timeout() time.Duration {
	return p.timeout
}

type runOutcome struct {
	res core.ExecResult
	err error
}

// Version runs tool with args and returns its trimmed stdout. It never
// fails: on a non-zero exit the captured stderr is logged as a warning, on
// timeout or any other error an error is logged, and "" is returned.
//
// Version returns once the time budget is spent even if the runner ignores
// its context; the runner's goroutine then exits whenever Run returns.
func (p *Prober) Version(ctx context.Context, tool string, args ...string) string {
	probeCtx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	done := make(chan runOutcome, 1)
	go func() {
		res, err := p.runner.Run(probeCtx, tool, args...)
		done <- runOutcome{res: res, err: err}
	}()

	var out runOutcome
	select {
	case out = <-done:
	case <-probeCtx.Done():
		out.err = probeCtx.Err()
	}

	res, err := out.res, out.err
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) && ctx.Err() == nil {
			p.log.Error(fmt.Sprintf("Timeout: '%s' did not complete within %s", commandLine(tool, args), p.timeout))
			return ""
		}
		msg := err.Error()
		if msg == "" {
			msg = "unknown error"
		}
		p.log.Error(fmt.Sprintf("Failed to get %s version: %s", tool, msg))
		return ""
	}

	if res.ExitCode > 0 {
		p.log.Warning(res.Stderr)
		return ""
	}
	return strings.TrimSpace(res.Stdout)
}

func commandLine(tool string, args []string) string {
	if len(args) == 0 {
		return tool
	}
	return tool + " " + strings.Join(args, " ")
}
