// Package loader loads configuration from TOML or YAML files with
// environment variable overrides.
package loader

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/dshills/subword/internal/config"
)

// EnvPrefix is the prefix for environment variable overrides.
const EnvPrefix = "SUBWORD_"

// Load reads configuration from the given path, applies environment
// overrides, and validates the result. An empty path or a missing file
// yields the defaults with overrides applied. The format is chosen by
// file extension: .toml, .yaml, or .yml.
func Load(path string) (config.Config, error) {
	cfg := config.Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
			// Missing file is not an error, defaults apply.
		case err != nil:
			return cfg, fmt.Errorf("reading config file %s: %w", path, err)
		default:
			if err := unmarshal(path, data, &cfg); err != nil {
				return cfg, err
			}
		}
	}

	applyEnv(&cfg)

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// unmarshal parses the file data into cfg based on the file extension.
func unmarshal(path string, data []byte, cfg *config.Config) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if err := toml.Unmarshal(data, cfg); err != nil {
			return &ParseError{Path: path, Err: err}
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return &ParseError{Path: path, Err: err}
		}
	default:
		return fmt.Errorf("unsupported config format: %s", path)
	}
	return nil
}

// applyEnv overrides config fields from SUBWORD_* environment variables.
func applyEnv(cfg *config.Config) {
	if v, ok := lookupInt("COUNT_CAP"); ok {
		cfg.Motion.CountCap = v
	}
	if v, ok := lookupBool("INCLUDE_END"); ok {
		cfg.Selection.IncludeEnd = v
	}
	if v, ok := os.LookupEnv(EnvPrefix + "OUTPUT_FORMAT"); ok && v != "" {
		cfg.Output.Format = strings.ToLower(strings.TrimSpace(v))
	}
	if v, ok := lookupInt("WATCH_INTERVAL_MS"); ok {
		cfg.Watch.IntervalMS = v
	}
	if v, ok := lookupInt("WATCH_DEBOUNCE_MS"); ok {
		cfg.Watch.DebounceMS = v
	}
}

// lookupInt reads an integer override, ignoring unset or malformed values.
func lookupInt(name string) (int, bool) {
	raw, ok := os.LookupEnv(EnvPrefix + name)
	if !ok {
		return 0, false
	}
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, false
	}
	return v, true
}

// lookupBool reads a boolean override, ignoring unset or malformed values.
func lookupBool(name string) (bool, bool) {
	raw, ok := os.LookupEnv(EnvPrefix + name)
	if !ok {
		return false, false
	}
	v, err := strconv.ParseBool(strings.TrimSpace(raw))
	if err != nil {
		return false, false
	}
	return v, true
}
