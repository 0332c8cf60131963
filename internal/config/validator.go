package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/indaco/nodever/internal/tui"
)

// Validate reports every configuration problem at once.
func (c *Config) Validate() error {
	var errs []error

	for i, tool := range c.Tools {
		if strings.TrimSpace(tool.Name) == "" {
			errs = append(errs, fmt.Errorf("tools[%d]: name is required", i))
		}
	}

	if d, err := c.Timeout(); err != nil {
		errs = append(errs, err)
	} else if d <= 0 {
		errs = append(errs, fmt.Errorf("probe-timeout must be positive, got %s", c.ProbeTimeout))
	}

	if strings.ContainsAny(c.Output, " \t\r\n") {
		errs = append(errs, fmt.Errorf("output name %q must not contain whitespace", c.Output))
	}

	if c.Theme != "" && !tui.IsValidTheme(c.Theme) {
		errs = append(errs, fmt.Errorf("unknown theme %q (valid: %s)", c.Theme, strings.Join(tui.ValidThemes, ", ")))
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid configuration: %w", errors.Join(errs...))
	}
	return nil
}
