package probe

import (
	"context"
	"fmt"
	"slices"

	"github.com/indaco/nodever/internal/dedup"
	"golang.org/x/sync/errgroup"
)

// PrimaryTool is the runtime whose version is published as an output.
const PrimaryTool = "node"

// DefaultOutputName is the output key for the primary runtime's version.
const DefaultOutputName = "node-version"

// DefaultArgs are passed to tools that do not specify their own.
var DefaultArgs = []string{"--version"}

// ToolSpec names a tool and the arguments that print its version.
type ToolSpec struct {
	Name string
	Args []string
}

// DefaultTools returns the tools reported by Report when none are configured.
func DefaultTools() []ToolSpec {
	return []ToolSpec{
		{Name: "node", Args: DefaultArgs},
		{Name: "npm", Args: DefaultArgs},
		{Name: "yarn", Args: DefaultArgs},
	}
}

// ToolVersion is the probe result for one tool. Path and Version are empty
// when the tool is not installed.
type ToolVersion struct {
	Tool    string
	Path    string
	Version string
}

// Installed reports whether the tool was found on the search path.
func (tv ToolVersion) Installed() bool {
	return tv.Path != ""
}

// ProbeAll probes every distinct tool concurrently and returns the results in
// the order of specs. Tools missing from the search path are not run.
func (p *Prober) ProbeAll(ctx context.Context, specs []ToolSpec) []ToolVersion {
	specs = dedup.FilterFunc(specs, func(s ToolSpec) string { return s.Name })
	results := make([]ToolVersion, len(specs))

	var g errgroup.Group
	for i, spec := range specs {
		results[i].Tool = spec.Name
		path, ok := p.locator.LookPath(spec.Name)
		if !ok {
			continue
		}
		results[i].Path = path

		args := spec.Args
		if len(args) == 0 {
			args = DefaultArgs
		}
		g.Go(func() error {
			results[i].Version = p.Version(ctx, spec.Name, slices.Clone(args)...)
			return nil
		})
	}
	_ = g.Wait() // probes never return errors

	return results
}

// Report probes specs inside an "Environment details" group, logs one
// "<tool>: <version>" line per tool, and publishes the primary runtime's
// version under outputName (DefaultOutputName when empty).
func (p *Prober) Report(ctx context.Context, specs []ToolSpec, outputName string) ([]ToolVersion, error) {
	if outputName == "" {
		outputName = DefaultOutputName
	}

	p.log.StartGroup("Environment details")
	defer p.log.EndGroup()

	results := p.ProbeAll(ctx, specs)
	for _, r := range results {
		if r.Tool == PrimaryTool {
			if err := p.log.SetOutput(outputName, r.Version); err != nil {
				return results, fmt.Errorf("failed to set output %q: %w", outputName, err)
			}
		}
		p.log.Info(fmt.Sprintf("%s: %s", r.Tool, r.Version))
	}
	return results, nil
}
