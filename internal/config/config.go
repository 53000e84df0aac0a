// Package config loads the tunables that govern builtin classification,
// collector safety bounds, and the synthesized stub vocabulary.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ConfigFileName is the name of the hackslice configuration file.
const ConfigFileName = "hackslice.yaml"

// ConfigDirName is the name of the hackslice configuration directory.
const ConfigDirName = ".hackslice"

// Config holds all hackslice configuration.
type Config struct {
	Builtin   BuiltinConfig   `yaml:"builtin"`
	Collector CollectorConfig `yaml:"collector"`
	Synth     SynthConfig     `yaml:"synth"`
	Layout    LayoutConfig    `yaml:"layout"`
}

// BuiltinConfig controls how declarations are recognized as part of the
// host language's standard library and excluded from the dependency set.
type BuiltinConfig struct {
	// HeaderExtension is the filename suffix marking a header-interface
	// stub file (e.g. ".hhi").
	HeaderExtension string `yaml:"header_extension"`
	// RootNamespace is the top-level namespace segment builtins live
	// under; layout drops any name rooted here defensively.
	RootNamespace string `yaml:"root_namespace"`
	// PseudoConstants are builtin constant names regardless of where the
	// provider says they are declared.
	PseudoConstants []string `yaml:"pseudo_constants"`
}

// CollectorConfig controls the dependency closure worklist.
type CollectorConfig struct {
	// MaxClosureIterations bounds the worklist loop. Zero means
	// unbounded.
	MaxClosureIterations int `yaml:"max_closure_iterations"`
}

// SynthConfig controls the vocabulary synthesized stub bodies use.
type SynthConfig struct {
	// ExceptionClass is the fully qualified class thrown by every stub
	// body.
	ExceptionClass string `yaml:"exception_class"`
	// HelperName is the name of the synthetic default-factory helper.
	HelperName string `yaml:"helper_name"`
}

// LayoutConfig controls the emitted files' framing text.
type LayoutConfig struct {
	// HeaderLine is the language-mode marker written at the top of both
	// the top-level and namespaced files.
	HeaderLine string `yaml:"header_line"`
	// ToplevelMarker and NamespacesMarker are the multi-file separators
	// used when both emitted files carry content.
	ToplevelMarker   string `yaml:"toplevel_marker"`
	NamespacesMarker string `yaml:"namespaces_marker"`
}

// ErrConfigNotFound is returned when no config file can be found.
var ErrConfigNotFound = errors.New("config file not found")

// ErrInvalidConfig is returned when config validation fails.
var ErrInvalidConfig = errors.New("invalid configuration")

// Load reads config from .hackslice/hackslice.yaml, falling back to
// defaults. It searches for the config directory starting from workDir and
// walking up the directory tree. If no config is found, returns defaults.
func Load(workDir string) (*Config, error) {
	configDir, err := FindConfigDir(workDir)
	if err != nil {
		return DefaultConfig(), nil
	}

	configPath := filepath.Join(configDir, ConfigFileName)
	return LoadFromPath(configPath)
}

// LoadFromPath reads config from a specific path. Merges loaded config
// with defaults and validates the result.
func LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	loaded := &Config{}
	if err := yaml.Unmarshal(data, loaded); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	merged := Merge(loaded, DefaultConfig())

	if err := Validate(merged); err != nil {
		return nil, err
	}

	return merged, nil
}

// FindConfigDir walks up from workDir looking for a .hackslice directory.
func FindConfigDir(workDir string) (string, error) {
	dir, err := filepath.Abs(workDir)
	if err != nil {
		return "", fmt.Errorf("resolving work dir: %w", err)
	}

	for {
		candidate := filepath.Join(dir, ConfigDirName)
		if info, err := os.Stat(candidate); err == nil && info.IsDir() {
			return candidate, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", ErrConfigNotFound
		}
		dir = parent
	}
}

// Validate checks that a merged config is internally consistent.
func Validate(c *Config) error {
	if c.Synth.HelperName == "" {
		return fmt.Errorf("%w: synth.helper_name must not be empty", ErrInvalidConfig)
	}
	if c.Synth.ExceptionClass == "" {
		return fmt.Errorf("%w: synth.exception_class must not be empty", ErrInvalidConfig)
	}
	if c.Collector.MaxClosureIterations < 0 {
		return fmt.Errorf("%w: collector.max_closure_iterations must not be negative", ErrInvalidConfig)
	}
	if c.Layout.HeaderLine == "" {
		return fmt.Errorf("%w: layout.header_line must not be empty", ErrInvalidConfig)
	}
	return nil
}
