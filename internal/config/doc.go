// Package config defines the typed configuration for sub-word motion
// behavior and output, with defaults and validation. Loading from files
// and the environment lives in the loader subpackage; change detection
// in the watcher subpackage.
package config
