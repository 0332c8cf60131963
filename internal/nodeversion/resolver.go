// Package nodeversion resolves the Node.js version a project declares in a
// version file, following Volta "extends" links between manifests.
package nodeversion

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/indaco/nodever/internal/actions"
	"github.com/indaco/nodever/internal/core"
	"github.com/indaco/nodever/internal/parser"
)

var (
	// ErrFileNotFound is returned when the version file does not exist.
	ErrFileNotFound = errors.New("node version file not found")

	// ErrExtendsCycle is returned when volta.extends links revisit a file.
	ErrExtendsCycle = errors.New("volta.extends cycle detected")
)

// Resolver reads version files through a core.FileSystem.
type Resolver struct {
	fs  core.FileSystem
	log actions.Logger
}

// NewResolver creates a Resolver.
func NewResolver(fs core.FileSystem, log actions.Logger) *Resolver {
	return &Resolver{fs: fs, log: log}
}

// Resolve returns the version declared in the file at path. found is false
// when the file is a structured manifest without a recognised version field.
// The only errors are a missing file, an unreadable file, and an extends cycle.
func (r *Resolver) Resolve(ctx context.Context, path string) (version string, found bool, err error) {
	return r.resolve(ctx, path, nil)
}

func (r *Resolver) resolve(ctx context.Context, path string, chain []string) (string, bool, error) {
	key := chainKey(path)
	for _, seen := range chain {
		if seen == key {
			return "", false, fmt.Errorf("%w: %s", ErrExtendsCycle, strings.Join(append(chain, key), " -> "))
		}
	}
	chain = append(chain, key)

	if _, err := r.fs.Stat(ctx, path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", false, fmt.Errorf("%w: The specified node version file at: %s does not exist", ErrFileNotFound, path)
		}
		return "", false, fmt.Errorf("failed to stat %q: %w", path, err)
	}

	data, err := r.fs.ReadFile(ctx, path)
	if err != nil {
		return "", false, fmt.Errorf("failed to read file %q: %w", path, err)
	}

	if parser.DetectFormat(path) == parser.FormatTOML {
		version, ok, err := parser.ParseMiseNode(data)
		if err == nil {
			return version, ok, nil
		}
		r.log.Info("Node version file is not TOML file")
		return parser.ParseText(data), true, nil
	}

	manifest, err := parser.ParseManifest(data)
	if err != nil {
		if errors.Is(err, parser.ErrNotJSON) {
			r.log.Info("Node version file is not JSON file")
		}
		return parser.ParseText(data), true, nil
	}

	if v, ok := manifest.Field(parser.FieldVoltaNode); ok {
		return v, true, nil
	}
	if v, ok := manifest.Field(parser.FieldEnginesNode); ok {
		return v, true, nil
	}
	if extends, ok := manifest.Field(parser.FieldVoltaExtends); ok {
		next := extends
		if !filepath.IsAbs(next) {
			next = filepath.Join(filepath.Dir(path), extends)
		}
		r.log.Info("Resolving node version from " + next)
		return r.resolve(ctx, next, chain)
	}

	// Valid JSON without a version field: no plain-text fallback.
	return "", false, nil
}

func chainKey(path string) string {
	if abs, err := filepath.Abs(path); err == nil {
		return abs
	}
	return filepath.Clean(path)
}
