package actions

import (
	"io"
	"os"
)

// Logger is the diagnostics capability consumed by the resolver and prober.
// Implementations must be safe for concurrent use.
type Logger interface {
	StartGroup(name string)
	EndGroup()
	Info(msg string)
	Warning(msg string)
	Error(msg string)
	// SetOutput publishes a named value for downstream consumption.
	SetOutput(name, value string) error
}

// Level identifies the severity of a log entry.
type Level string

const (
	LevelInfo    Level = "info"
	LevelWarning Level = "warning"
	LevelError   Level = "error"
)

// Detect returns a Workflow logger when running inside GitHub Actions and a
// Console logger otherwise. Both write to w.
func Detect(w io.Writer) Logger {
	if os.Getenv("GITHUB_ACTIONS") == "true" {
		return NewWorkflow(w)
	}
	return NewConsole(w)
}
