// Package config loads the reminder-lint configuration record.
//
// The record is assembled from an ordered list of sources. Each source yields a
// partial record and later sources override earlier ones key by key:
//
//  1. built-in defaults
//  2. the YAML config file (optional, remind.yml by default)
//  3. REMIND_* environment variables
//  4. command-line flags the user actually set
//
// The merged record is validated as a whole before it reaches the scanner.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix is the prefix of environment overrides, e.g. REMIND_COMMENT_REGEX
const EnvPrefix = "REMIND_"

// envKeys maps the lowercased environment suffix to its config key
var envKeys = map[string]string{
	"comment_regex":     "comment_regex",
	"trigger_datetime":  "trigger.datetime",
	"datetime_format":   "datetime_format",
	"search_directory":  "search_directory",
	"ignore_file_path":  "ignore_file_path",
	"remind_if_no_date": "remind_if_no_date",
	"sort_by_deadline":  "sort_by_deadline",
	"log_level":         "log_level",
}

// Source is one configuration layer
type Source struct {
	Name     string
	Provider koanf.Provider
	Parser   koanf.Parser // nil for providers that yield maps directly
}

// LoadOptions selects the file and flag layers of Load
type LoadOptions struct {
	// ConfigFilePath is the YAML file to read; DefaultConfigFilePath when empty
	ConfigFilePath string
	// RequireFile makes a missing config file an error instead of skipping the layer
	RequireFile bool
	// Overrides holds flag values keyed by config key, e.g. "sort_by_deadline"
	Overrides map[string]interface{}
}

// DefaultsSource returns the built-in defaults layer
func DefaultsSource() Source {
	return Source{Name: "defaults", Provider: NewDefaultProvider()}
}

// FileSource returns a YAML file layer
func FileSource(path string) Source {
	return Source{Name: path, Provider: file.Provider(path), Parser: yaml.Parser()}
}

// EnvSource returns the REMIND_* environment layer. Unknown REMIND_ variables are ignored.
func EnvSource() Source {
	return Source{
		Name: "environment",
		Provider: env.Provider(EnvPrefix, ".", func(s string) string {
			suffix := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
			return envKeys[suffix]
		}),
	}
}

// OverridesSource returns a layer built from explicit key/value overrides
func OverridesSource(name string, values map[string]interface{}) Source {
	return Source{Name: name, Provider: confmap.Provider(values, ".")}
}

// LoadSources merges sources in order and unmarshals the result without validating it.
func LoadSources(sources ...Source) (*Config, error) {
	k := koanf.New(".")
	for _, src := range sources {
		if err := k.Load(src.Provider, src.Parser); err != nil {
			return nil, &ConfigError{Message: fmt.Sprintf("failed to load %s", src.Name), Err: err}
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, &ConfigError{Message: "failed to unmarshal config", Err: err}
	}
	return &cfg, nil
}

// Load reads defaults, the config file (if present), the environment and the
// overrides, then validates the merged record.
func Load(opts LoadOptions) (*Config, error) {
	path := opts.ConfigFilePath
	if path == "" {
		path = DefaultConfigFilePath
	}

	sources := []Source{DefaultsSource()}
	loadedFile := ""
	if _, err := os.Stat(path); err == nil {
		sources = append(sources, FileSource(path))
		loadedFile = path
	} else if !os.IsNotExist(err) || opts.RequireFile {
		return nil, &ConfigError{Message: "failed to read config file", Err: err}
	}
	sources = append(sources, EnvSource())
	if len(opts.Overrides) > 0 {
		sources = append(sources, OverridesSource("flags", opts.Overrides))
	}

	cfg, err := LoadSources(sources...)
	if err != nil {
		return nil, err
	}
	cfg.File = loadedFile

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
