package config

import (
	"fmt"
	"strings"
	"time"
)

type TelemetryConfig struct {
	Traces  TracesConfig  `koanf:"traces"`
	Metrics MetricsConfig `koanf:"metrics"`
}

// TracesConfig exports spans over OTLP/HTTP when enabled.
type TracesConfig struct {
	Enabled  bool           `koanf:"enabled"`
	OtlpHttp OtlpHttpConfig `koanf:"otlphttp"`
}

type OtlpHttpConfig struct {
	Endpoint string        `koanf:"endpoint"`
	Insecure bool          `koanf:"insecure"`
	Timeout  time.Duration `koanf:"timeout"`
}

// MetricsConfig exposes a Prometheus scrape endpoint on the HTTP server.
type MetricsConfig struct {
	Enabled bool   `koanf:"enabled"`
	Path    string `koanf:"path"`
}

const defaultMetricsPath = "/metrics"

func (c *TelemetryConfig) String() string {
	return newSection("Telemetry").
		field("traces.enabled", c.Traces.Enabled).
		field("traces.otlphttp.endpoint", c.Traces.OtlpHttp.Endpoint).
		field("traces.otlphttp.insecure", c.Traces.OtlpHttp.Insecure).
		field("traces.otlphttp.timeout", c.Traces.OtlpHttp.Timeout).
		field("metrics.enabled", c.Metrics.Enabled).
		field("metrics.path", c.Metrics.Path).
		String()
}

func (c *TelemetryConfig) Validate() error {
	if err := c.Metrics.validate(); err != nil {
		return err
	}
	return c.Traces.validate()
}

func (c *MetricsConfig) validate() error {
	if !c.Enabled {
		return nil
	}
	if c.Path == "" {
		c.Path = defaultMetricsPath
	}
	if !strings.HasPrefix(c.Path, "/") {
		return fmt.Errorf("metrics path must start with '/': %s", c.Path)
	}
	return nil
}

func (c *TracesConfig) validate() error {
	if !c.Enabled {
		return nil
	}
	if c.OtlpHttp.Endpoint == "" {
		return fmt.Errorf("OTel endpoint is not configured")
	}
	if c.OtlpHttp.Timeout <= 0 {
		return fmt.Errorf("telemetry timeout must be greater than 0")
	}
	return nil
}
