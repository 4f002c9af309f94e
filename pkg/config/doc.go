// Package config handles configuration management for modsync.
// It layers the embedded defaults, an optional user configuration file
// (TOML or YAML), MODSYNC_* environment variables and command-line
// overrides, then decodes the result into a Config.
package config
