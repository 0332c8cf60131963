package actions

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/indaco/nodever/internal/core"
)

// ErrInvalidOutput is returned when an output name or value would break the
// GITHUB_OUTPUT heredoc framing.
var ErrInvalidOutput = errors.New("invalid output")

// Workflow writes GitHub Actions workflow commands.
type Workflow struct {
	mu           sync.Mutex
	w            io.Writer
	fs           core.FileSystem
	getenv       func(string) string
	newDelimiter func() string
}

// NewWorkflow creates a Workflow logger writing commands to w.
func NewWorkflow(w io.Writer) *Workflow {
	return &Workflow{
		w:      w,
		fs:     core.NewOSFileSystem(),
		getenv: os.Getenv,
		newDelimiter: func() string {
			return "ghadelimiter_" + uuid.NewString()
		},
	}
}

var _ Logger = (*Workflow)(nil)

func (l *Workflow) StartGroup(name string) { l.command("group", "", name) }
func (l *Workflow) EndGroup()              { l.command("endgroup", "", "") }
func (l *Workflow) Warning(msg string)     { l.command("warning", "", msg) }
func (l *Workflow) Error(msg string)       { l.command("error", "", msg) }

// Info writes msg as a plain log line.
func (l *Workflow) Info(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	_, _ = fmt.Fprintln(l.w, msg)
}

// SetOutput appends name/value to the file named by GITHUB_OUTPUT, or emits
// the legacy set-output command when the variable is unset.
func (l *Workflow) SetOutput(name, value string) error {
	path := l.getenv("GITHUB_OUTPUT")
	if path == "" {
		l.mu.Lock()
		defer l.mu.Unlock()
		_, _ = fmt.Fprintln(l.w)
		l.writeCommand("set-output", "name="+escapeProperty(name), value)
		return nil
	}

	delimiter := l.newDelimiter()
	if strings.Contains(name, delimiter) {
		return fmt.Errorf("%w: name should not contain the delimiter %q", ErrInvalidOutput, delimiter)
	}
	if strings.Contains(value, delimiter) {
		return fmt.Errorf("%w: value should not contain the delimiter %q", ErrInvalidOutput, delimiter)
	}

	entry := fmt.Sprintf("%s<<%s\n%s\n%s\n", name, delimiter, value, delimiter)

	l.mu.Lock()
	defer l.mu.Unlock()
	if err := l.fs.AppendFile(context.Background(), path, []byte(entry), core.PermOwnerRWGroupR); err != nil {
		return fmt.Errorf("failed to write output %q to %s: %w", name, path, err)
	}
	return nil
}

func (l *Workflow) command(cmd, props, msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.writeCommand(cmd, props, msg)
}

// writeCommand must be called with l.mu held.
func (l *Workflow) writeCommand(cmd, props, msg string) {
	var sb strings.Builder
	sb.WriteString("::")
	sb.WriteString(cmd)
	if props != "" {
		sb.WriteByte(' ')
		sb.WriteString(props)
	}
	sb.WriteString("::")
	sb.WriteString(escapeData(msg))
	_, _ = fmt.Fprintln(l.w, sb.String())
}

var (
	dataEscaper     = strings.NewReplacer("%", "%25", "\r", "%0D", "\n", "%0A")
	propertyEscaper = strings.NewReplacer("%", "%25", "\r", "%0D", "\n", "%0A", ":", "%3A", ",", "%2C")
)

func escapeData(s string) string     { return dataEscaper.Replace(s) }
func escapeProperty(s string) string { return propertyEscaper.Replace(s) }
