package parser

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/tidwall/gjson"
)

var (
	// ErrNotJSON is returned by ParseManifest for contents that are not JSON.
	ErrNotJSON = errors.New("not a JSON document")

	// ErrNotObject is returned by ParseManifest for valid JSON whose top level
	// is a scalar or null.
	ErrNotObject = errors.New("JSON document is not an object")
)

// Manifest is a parsed JSON document whose top level is an object or array.
type Manifest struct {
	root gjson.Result
}

// ParseManifest parses data as JSON. Callers treat both ErrNotJSON and
// ErrNotObject as plain-text contents.
func ParseManifest(data []byte) (Manifest, error) {
	if !gjson.ValidBytes(data) {
		return Manifest{}, ErrNotJSON
	}
	root := gjson.ParseBytes(data)
	if !root.IsObject() && !root.IsArray() {
		return Manifest{}, ErrNotObject
	}
	return Manifest{root: root}, nil
}

// Field returns the value at the dot-notation path when it is set.
// Missing, null, false, 0 and "" count as unset.
func (m Manifest) Field(path string) (string, bool) {
	value := m.root.Get(path)
	if !truthy(value) {
		return "", false
	}
	if value.Type == gjson.String {
		return value.Str, true
	}
	return value.Raw, true
}

func truthy(r gjson.Result) bool {
	switch r.Type {
	case gjson.String:
		return r.Str != ""
	case gjson.Number:
		return r.Num != 0
	case gjson.True, gjson.JSON:
		return true
	default:
		return false
	}
}

// versionLineRegex matches a line holding a single version token, optionally
// prefixed by "node" or "nodejs" (asdf .tool-versions) and by "v".
var versionLineRegex = regexp.MustCompile(`(?m)^(?:node(?:js)?\s*)?v?(\S+)$`)

// ParseText extracts a version from plain-text contents. The first line that
// matches wins, even when earlier lines do not; without a match the trimmed
// contents are returned.
func ParseText(data []byte) string {
	content := strings.ReplaceAll(string(data), "\r\n", "\n")
	if m := versionLineRegex.FindStringSubmatch(content); m != nil {
		return m[1]
	}
	return strings.TrimSpace(content)
}

// ParseMiseNode reads tools.node from a mise TOML config. The value may be a
// version string, a list whose first element is used, or a table with a
// "version" key.
func ParseMiseNode(data []byte) (string, bool, error) {
	var obj map[string]any
	if err := toml.Unmarshal(data, &obj); err != nil {
		return "", false, fmt.Errorf("failed to parse TOML: %w", err)
	}

	value, err := getNestedValue(obj, FieldMiseNode)
	if err != nil {
		return "", false, nil
	}

	switch v := value.(type) {
	case string:
		return v, v != "", nil
	case []any:
		if len(v) > 0 {
			if s, ok := v[0].(string); ok && s != "" {
				return s, true, nil
			}
		}
	case map[string]any:
		if s, ok := v["version"].(string); ok && s != "" {
			return s, true, nil
		}
	}
	return "", false, nil
}

// getNestedValue retrieves a value from a nested map using dot notation.
// Example: "tools.node" accesses obj["tools"]["node"]
func getNestedValue(obj map[string]any, field string) (any, error) {
	if field == "" {
		return nil, fmt.Errorf("field path cannot be empty")
	}

	parts := strings.Split(field, ".")
	current := any(obj)

	for i, part := range parts {
		currentMap, ok := current.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("field %q is not an object at path %q", strings.Join(parts[:i], "."), part)
		}

		value, exists := currentMap[part]
		if !exists {
			return nil, fmt.Errorf("field %q not found", field)
		}

		current = value
	}

	return current, nil
}
