package config

import (
	"path/filepath"
	"time"
)

// OutputFormat selects how command results are rendered
type OutputFormat string

const (
	OutputTable OutputFormat = "table"
	OutputJSON  OutputFormat = "json"
	OutputYAML  OutputFormat = "yaml"
)

// ParseOutputFormat validates a user supplied output format
func ParseOutputFormat(s string) (OutputFormat, bool) {
	switch OutputFormat(s) {
	case "", OutputTable:
		return OutputTable, true
	case OutputJSON, OutputYAML:
		return OutputFormat(s), true
	default:
		return "", false
	}
}

// RuntimeConfig represents the complete runtime configuration
// This is injected into use cases and contains all resolved settings
type RuntimeConfig struct {
	// Core settings
	ProjectRoot string
	DataDir     string

	// Registry bounds
	Limits Limits

	// Execution settings
	Debug          bool
	NonInteractive bool
	Output         OutputFormat
	Timeout        time.Duration

	// PrivateKey is the hex encoded key used to authenticate the caller.
	// Empty for read-only commands.
	PrivateKey string //nolint:gosec // resolved from flag or env, never persisted

	// Config source tracking: path of relayreg.toml, empty when defaults apply
	ConfigSource string
}

// StateFile returns the path of the persisted registry state
func (c *RuntimeConfig) StateFile() string {
	return filepath.Join(c.DataDir, "registry.json")
}

// JournalFile returns the path of the event journal database
func (c *RuntimeConfig) JournalFile() string {
	return filepath.Join(c.DataDir, "events.db")
}
