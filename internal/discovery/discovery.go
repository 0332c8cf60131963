package discovery

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/indaco/nodever/internal/core"
	"github.com/indaco/nodever/internal/dedup"
	"github.com/indaco/nodever/internal/parser"
)

// Candidate is a version file found in the searched directory.
type Candidate struct {
	// Name is the file's base name.
	Name string
	// Path is the full path to the file.
	Path string
	// Format is the primary format used to read it.
	Format parser.Format
}

// KnownFiles lists the recognised version file names in priority order.
var KnownFiles = []string{
	".nvmrc",
	".node-version",
	".tool-versions",
	"package.json",
	"mise.toml",
	".mise.toml",
}

// Find returns the known version files that exist in dir, in KnownFiles
// order. A directory without any of them yields an empty slice.
func Find(ctx context.Context, fsys core.FileSystem, dir string, extra ...string) ([]Candidate, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	names := dedup.Filter(append(append([]string{}, KnownFiles...), extra...))
	candidates := make([]Candidate, 0, len(names))
	for _, name := range names {
		path := filepath.Join(dir, name)
		info, err := fsys.Stat(ctx, path)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return nil, fmt.Errorf("failed to stat %q: %w", path, err)
		}
		if info.IsDir() {
			continue
		}
		candidates = append(candidates, Candidate{
			Name:   name,
			Path:   path,
			Format: formatOf(path),
		})
	}
	return candidates, nil
}

func formatOf(path string) parser.Format {
	if f := parser.DetectFormat(path); f == parser.FormatTOML {
		return f
	}
	if filepath.Ext(path) == ".json" {
		return parser.FormatJSON
	}
	return parser.FormatText
}
