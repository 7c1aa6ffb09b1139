package config

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// MotionConfig controls motion execution.
type MotionConfig struct {
	// CountCap limits repeat counts to guard against runaway input like
	// "999999,w". Zero or negative means no cap.
	CountCap int `toml:"count_cap" yaml:"count_cap"`
}

// SelectionConfig controls how motions interact with selections.
type SelectionConfig struct {
	// IncludeEnd extends end-inclusive motions one rune past the
	// boundary when a selection is active, so the range covers the
	// final character of the sub-word.
	IncludeEnd bool `toml:"include_end" yaml:"include_end"`
}

// WatchConfig controls config file watching.
type WatchConfig struct {
	// IntervalMS is the polling interval in milliseconds.
	IntervalMS int `toml:"interval_ms" yaml:"interval_ms"`

	// DebounceMS is the quiet period after a change before reload fires.
	DebounceMS int `toml:"debounce_ms" yaml:"debounce_ms"`
}

// OutputConfig controls CLI output.
type OutputConfig struct {
	// Format is "text" or "json".
	Format string `toml:"format" yaml:"format"`
}

// Config is the root configuration.
type Config struct {
	Motion    MotionConfig    `toml:"motion" yaml:"motion"`
	Selection SelectionConfig `toml:"selection" yaml:"selection"`
	Watch     WatchConfig     `toml:"watch" yaml:"watch"`
	Output    OutputConfig    `toml:"output" yaml:"output"`
}

// Default returns the default configuration.
func Default() Config {
	return Config{
		Motion: MotionConfig{
			CountCap: 10000,
		},
		Selection: SelectionConfig{
			IncludeEnd: true,
		},
		Watch: WatchConfig{
			IntervalMS: 500,
			DebounceMS: 100,
		},
		Output: OutputConfig{
			Format: FormatText,
		},
	}
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	if c.Output.Format != FormatText && c.Output.Format != FormatJSON {
		return &ValidationError{
			Field:   "output.format",
			Message: "must be \"text\" or \"json\"",
		}
	}
	if c.Watch.IntervalMS < 0 {
		return &ValidationError{
			Field:   "watch.interval_ms",
			Message: "must not be negative",
		}
	}
	if c.Watch.DebounceMS < 0 {
		return &ValidationError{
			Field:   "watch.debounce_ms",
			Message: "must not be negative",
		}
	}
	return nil
}
