package parser

import (
	"path/filepath"
	"strings"
)

// Format represents how a version file's contents are interpreted.
type Format string

const (
	// FormatJSON is for JSON manifests (package.json, Volta extends targets).
	FormatJSON Format = "json"

	// FormatTOML is for mise configuration files (mise.toml, .mise.toml).
	FormatTOML Format = "toml"

	// FormatText is for plain-text files (.nvmrc, .node-version, .tool-versions).
	FormatText Format = "text"
)

// String returns the string representation of the format.
func (f Format) String() string {
	return string(f)
}

// Manifest field paths, in lookup order.
const (
	FieldVoltaNode    = "volta.node"
	FieldEnginesNode  = "engines.node"
	FieldVoltaExtends = "volta.extends"
	FieldMiseNode     = "tools.node"
)

// DetectFormat picks the primary format for a file from its name. JSON
// detection is content-based, so anything that is not a mise config reports
// FormatJSON and falls back to FormatText when it does not parse.
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Base(path)) {
	case "mise.toml", ".mise.toml":
		return FormatTOML
	default:
		return FormatJSON
	}
}
