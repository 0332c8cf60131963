package core

import (
	"context"
	"errors"
	"sync"
)

// MockCommandRunner is a CommandRunner driven by RunFunc.
// It records every invocation.
type MockCommandRunner struct {
	RunFunc func(ctx context.Context, name string, args ...string) (ExecResult, error)

	mu    sync.Mutex
	calls [][]string
}

var _ CommandRunner = (*MockCommandRunner)(nil)

func (m *MockCommandRunner) Run(ctx context.Context, name string, args ...string) (ExecResult, error) {
	m.mu.Lock()
	m.calls = append(m.calls, append([]string{name}, args...))
	m.mu.Unlock()

	if m.RunFunc != nil {
		return m.RunFunc(ctx, name, args...)
	}
	return ExecResult{}, errors.New("run not implemented")
}

// Calls returns the recorded invocations as name followed by args.
func (m *MockCommandRunner) Calls() [][]string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([][]string, len(m.calls))
	copy(out, m.calls)
	return out
}

// MockToolLocator resolves tools from a fixed name-to-path map.
type MockToolLocator struct {
	Paths map[string]string
}

var _ ToolLocator = (*MockToolLocator)(nil)

func (m *MockToolLocator) LookPath(name string) (string, bool) {
	path, ok := m.Paths[name]
	return path, ok
}
