package config

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"time"

	"github.com/goccy/go-yaml"
	"github.com/indaco/nodever/internal/core"
)

// DefaultConfigFile is the configuration file looked up in the working directory.
const DefaultConfigFile = ".nodever.yaml"

// ToolConfig names a tool to probe and the arguments that print its version.
type ToolConfig struct {
	Name string   `yaml:"name"`
	Args []string `yaml:"args,omitempty"`
}

// Config is the main configuration structure for nodever.
type Config struct {
	NodeVersion     string       `yaml:"node-version,omitempty"`
	NodeVersionFile string       `yaml:"node-version-file,omitempty"`
	Tools           []ToolConfig `yaml:"tools,omitempty"`
	ProbeTimeout    string       `yaml:"probe-timeout,omitempty"`
	Output          string       `yaml:"output,omitempty"`
	Theme           string       `yaml:"theme,omitempty"`
}

// Defaults applied after loading.
const (
	DefaultProbeTimeout = "30s"
	DefaultOutput       = "node-version"
)

// LoadConfigFn is the loader used by the CLI. Tests may replace it.
var LoadConfigFn = func(path string) (*Config, error) {
	return Load(path, os.Getenv)
}

// newFileSystem returns the filesystem Load reads from.
var newFileSystem = func() core.FileSystem { return core.NewOSFileSystem() }

// Load reads the YAML file at path (DefaultConfigFile when empty), then
// applies environment overrides from getenv and fills defaults.
// A missing file is not an error.
//
// Precedence: action inputs (INPUT_*) > NODEVER_* variables > file > defaults.
func Load(path string, getenv func(string) string) (*Config, error) {
	return LoadFrom(context.Background(), newFileSystem(), path, getenv)
}

// LoadFrom is Load reading the config file through fsys.
func LoadFrom(ctx context.Context, fsys core.FileSystem, path string, getenv func(string) string) (*Config, error) {
	if path == "" {
		path = DefaultConfigFile
		if envPath := getenv("NODEVER_CONFIG"); envPath != "" {
			path = envPath
		}
	}

	cfg := &Config{}
	data, err := fsys.ReadFile(ctx, path)
	switch {
	case err == nil:
		decoder := yaml.NewDecoder(bytes.NewReader(data), yaml.Strict())
		if err := decoder.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("failed to parse config %q: %w", path, err)
		}
	case errors.Is(err, fs.ErrNotExist):
		// fallback to defaults
	default:
		return nil, fmt.Errorf("failed to read config %q: %w", path, err)
	}

	cfg.applyEnv(getenv)
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv(getenv func(string) string) {
	override := func(dst *string, keys ...string) {
		for _, key := range keys {
			if v := getenv(key); v != "" {
				*dst = v
				return
			}
		}
	}
	override(&c.NodeVersion, "INPUT_NODE-VERSION", "NODEVER_NODE_VERSION")
	override(&c.NodeVersionFile, "INPUT_NODE-VERSION-FILE", "NODEVER_NODE_VERSION_FILE")
	override(&c.ProbeTimeout, "NODEVER_PROBE_TIMEOUT")
	override(&c.Output, "NODEVER_OUTPUT")
	override(&c.Theme, "NODEVER_THEME")
}

func (c *Config) applyDefaults() {
	if c.ProbeTimeout == "" {
		c.ProbeTimeout = DefaultProbeTimeout
	}
	if c.Output == "" {
		c.Output = DefaultOutput
	}
}

// Timeout returns ProbeTimeout as a duration.
func (c *Config) Timeout() (time.Duration, error) {
	if c.ProbeTimeout == "" {
		return time.ParseDuration(DefaultProbeTimeout)
	}
	d, err := time.ParseDuration(c.ProbeTimeout)
	if err != nil {
		return 0, fmt.Errorf("invalid probe-timeout %q: %w", c.ProbeTimeout, err)
	}
	return d, nil
}
