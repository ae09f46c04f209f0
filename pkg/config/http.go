package config

import (
	"fmt"
	"time"
)

type HTTPConfig struct {
	Port           int `koanf:"port"`
	MaxHeaderBytes int `koanf:"maxHeaderBytes"`
	Timeout        struct {
		Read       time.Duration `koanf:"read"`
		Write      time.Duration `koanf:"write"`
		Idle       time.Duration `koanf:"idle"`
		ReadHeader time.Duration `koanf:"readHeader"`
	} `koanf:"timeout"`
}

const (
	defaultReadTimeout       = 5 * time.Second
	defaultWriteTimeout      = 10 * time.Second
	defaultIdleTimeout       = time.Minute
	defaultReadHeaderTimeout = 2 * time.Second
)

func (c *HTTPConfig) String() string {
	return newSection("HTTP Server").
		field("port", c.Port).
		field("maxHeaderBytes", c.MaxHeaderBytes).
		field("timeout.read", c.Timeout.Read).
		field("timeout.write", c.Timeout.Write).
		field("timeout.idle", c.Timeout.Idle).
		field("timeout.readHeader", c.Timeout.ReadHeader).
		String()
}

// Validate requires a usable port. Unset timeouts fall back to defaults; negative ones are rejected.
func (c *HTTPConfig) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid HTTP server port: %d", c.Port)
	}
	if c.MaxHeaderBytes < 0 {
		return fmt.Errorf("invalid HTTP server max header bytes: %d", c.MaxHeaderBytes)
	}
	timeouts := []struct {
		name  string
		value *time.Duration
		def   time.Duration
	}{
		{"read", &c.Timeout.Read, defaultReadTimeout},
		{"write", &c.Timeout.Write, defaultWriteTimeout},
		{"idle", &c.Timeout.Idle, defaultIdleTimeout},
		{"read header", &c.Timeout.ReadHeader, defaultReadHeaderTimeout},
	}
	for _, t := range timeouts {
		switch {
		case *t.value < 0:
			return fmt.Errorf("invalid HTTP server %s timeout: %v", t.name, *t.value)
		case *t.value == 0:
			*t.value = t.def
		}
	}
	return nil
}
