// Package bootstrap builds process-wide dependencies shared by the service entry points.
package bootstrap

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/AndySun25/bookstore/pkg/config"
	"github.com/AndySun25/bookstore/pkg/logger"
	"github.com/AndySun25/bookstore/pkg/messaging"
	"github.com/AndySun25/bookstore/pkg/nats"
)

// NewLogger creates a new slog.Logger writing to stdout with the configured level and format.
func NewLogger(cfg config.LogConfig) *slog.Logger {
	return newLogger(os.Stdout, cfg)
}

func newLogger(w io.Writer, cfg config.LogConfig) *slog.Logger {
	logLevel := toLevel(cfg.Level)
	loggerOpts := &slog.HandlerOptions{
		AddSource: logLevel == slog.LevelDebug,
		Level:     logLevel,
	}
	var logHandler slog.Handler
	if strings.EqualFold(cfg.Format, "text") {
		logHandler = slog.NewTextHandler(w, loggerOpts)
	} else {
		logHandler = slog.NewJSONHandler(w, loggerOpts)
	}
	return slog.New(logger.NewContextHandler(logHandler))
}

// NewPublisher connects to NATS when enabled and returns a publisher with its close function.
// When NATS is disabled events are dropped by a no-op publisher.
func NewPublisher(cfg config.NATSConfig, log *slog.Logger) (messaging.Publisher, func(), error) {
	if !cfg.Enabled {
		log.Info("NATS disabled, inventory events will not be published")
		return messaging.NopPublisher{}, func() {}, nil
	}
	nc, err := nats.NewClient(cfg.Url, cfg.Timeout, log)
	if err != nil {
		return nil, nil, err
	}
	js, err := nats.NewJetStreamContext(nc)
	if err != nil {
		return nil, nil, err
	}
	publisher, err := nats.NewNatsPublisher(js, cfg.Stream, cfg.Timeout)
	if err != nil {
		nc.Close()
		return nil, nil, fmt.Errorf("failed to set up event stream: %w", err)
	}
	log.Info("Connected to NATS", "url", nc.ConnectedUrlRedacted(), "stream", cfg.Stream)
	return publisher, func() { _ = nc.Drain() }, nil
}

// toLevel converts a string representation of a log level to slog.Level.
func toLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
