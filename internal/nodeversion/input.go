package nodeversion

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
)

// Input mirrors the action inputs that select a Node.js version.
type Input struct {
	// Version is an explicit version (node-version input).
	Version string
	// VersionFile is a version file path (node-version-file input).
	VersionFile string
	// Workspace is the base directory for a relative VersionFile.
	Workspace string
}

// ResolveInput applies input precedence: an explicit Version wins over
// VersionFile, with a warning when both are set. A relative VersionFile is
// resolved against Workspace. With neither set, found is false.
func (r *Resolver) ResolveInput(ctx context.Context, in Input) (version string, found bool, err error) {
	version = strings.TrimSpace(in.Version)
	file := strings.TrimSpace(in.VersionFile)

	if version != "" && file != "" {
		r.log.Warning("Both node-version and node-version-file inputs are specified, only node-version will be used")
	}
	if version != "" {
		return version, true, nil
	}
	if file == "" {
		return "", false, nil
	}

	if !filepath.IsAbs(file) && in.Workspace != "" {
		file = filepath.Join(in.Workspace, file)
	}
	version, found, err = r.Resolve(ctx, file)
	if err != nil {
		return "", false, err
	}
	if found {
		r.log.Info(fmt.Sprintf("Resolved %s as %s", file, version))
	}
	return version, found, nil
}
