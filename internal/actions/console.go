package actions

import (
	"io"
	"strings"
	"sync"

	"github.com/indaco/nodever/internal/printer"
)

// Console renders log entries for an interactive terminal.
// Lines inside a group are indented.
type Console struct {
	mu    sync.Mutex
	w     io.Writer
	depth int
}

// NewConsole creates a Console logger writing to w.
func NewConsole(w io.Writer) *Console {
	return &Console{w: w}
}

var _ Logger = (*Console)(nil)

func (c *Console) StartGroup(name string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.line(printer.Bold(name))
	c.depth++
}

func (c *Console) EndGroup() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.depth > 0 {
		c.depth--
	}
}

func (c *Console) Info(msg string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.line(msg)
}

func (c *Console) Warning(msg string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.line(printer.Warning("warning: " + msg))
}

func (c *Console) Error(msg string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.line(printer.Error("error: " + msg))
}

func (c *Console) SetOutput(name, value string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.line(printer.KeyValue(name, value))
	return nil
}

func (c *Console) line(s string) {
	printer.Fprintln(c.w, strings.Repeat("  ", c.depth)+s)
}
