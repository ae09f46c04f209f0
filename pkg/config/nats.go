package config

import (
	"fmt"
	"time"
)

// NATSConfig configures the JetStream publisher for inventory events.
type NATSConfig struct {
	Enabled bool          `koanf:"enabled"`
	Url     string        `koanf:"url"`
	Timeout time.Duration `koanf:"timeout"`
	Stream  string        `koanf:"stream"`
}

const (
	defaultNATSTimeout = 5 * time.Second
	defaultNATSStream  = "INVENTORY"
)

func (c *NATSConfig) String() string {
	return newSection("NATS").
		field("enabled", c.Enabled).
		field("url", redactURL(c.Url)).
		field("timeout", c.Timeout).
		field("stream", c.Stream).
		String()
}

// Validate is a no-op while publishing is disabled. Otherwise only the URL is mandatory.
func (c *NATSConfig) Validate() error {
	if !c.Enabled {
		return nil
	}
	if c.Url == "" {
		return fmt.Errorf("NATS URL is not configured")
	}
	if c.Timeout <= 0 {
		c.Timeout = defaultNATSTimeout
	}
	if c.Stream == "" {
		c.Stream = defaultNATSStream
	}
	return nil
}
