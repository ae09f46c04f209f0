package config

import (
	"fmt"
	"slices"
	"strings"
)

type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

var (
	logLevels  = []string{"debug", "info", "warn", "error"}
	logFormats = []string{"json", "text"}
)

func (c *LogConfig) String() string {
	return newSection("Log").
		field("level", c.Level).
		field("format", c.Format).
		String()
}

// Validate lowercases both values. Empty means info level and json format.
func (c *LogConfig) Validate() error {
	c.Level = strings.ToLower(strings.TrimSpace(c.Level))
	c.Format = strings.ToLower(strings.TrimSpace(c.Format))
	if c.Level != "" && !slices.Contains(logLevels, c.Level) {
		return fmt.Errorf("unknown log level: %s (want one of %s)", c.Level, strings.Join(logLevels, ", "))
	}
	if c.Format != "" && !slices.Contains(logFormats, c.Format) {
		return fmt.Errorf("unknown log format: %s (want one of %s)", c.Format, strings.Join(logFormats, ", "))
	}
	return nil
}
