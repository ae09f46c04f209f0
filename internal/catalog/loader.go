package catalog

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/AndySun25/bookstore/internal/errors"
	"github.com/AndySun25/bookstore/internal/store"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

const maxLineBytes = 1 << 20

var tracer = otel.Tracer("github.com/AndySun25/bookstore/internal/catalog")

// BookAdder is the inventory operation the loader feeds records into.
type BookAdder interface {
	Add(book store.Book, amount int) (store.Entry, bool, error)
}

// Summary counts what a load did.
type Summary struct {
	Lines   int `json:"lines"`
	Added   int `json:"added"`
	Merged  int `json:"merged"`
	Skipped int `json:"skipped"`
}

// Loader reads catalog feeds from files or http(s) URLs.
type Loader struct {
	inventory BookAdder
	format    Format
	client    *http.Client
	logger    *slog.Logger
}

// NewLoader creates a Loader. timeout bounds remote fetches.
func NewLoader(inventory BookAdder, format Format, timeout time.Duration, logger *slog.Logger) *Loader {
	return &Loader{
		inventory: inventory,
		format:    format,
		client: &http.Client{
			Timeout:   timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		logger: logger.With("component", "catalog"),
	}
}

// LoadSource opens source and loads it. Bare paths and file:// URLs are read from disk,
// http:// and https:// URLs are fetched. A source that cannot be opened yields
// ErrSourceUnavailable; malformed lines are skipped.
func (l *Loader) LoadSource(ctx context.Context, source string) (Summary, error) {
	ctx, span := tracer.Start(ctx, "catalog.LoadSource")
	defer span.End()
	span.SetAttributes(attribute.String("catalog.source", source))

	rc, err := l.open(ctx, source)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "source unavailable")
		return Summary{}, err
	}
	defer func() {
		_ = rc.Close()
	}()

	summary, err := l.Load(ctx, rc)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "read failed")
		return summary, err
	}
	span.SetAttributes(
		attribute.Int("catalog.added", summary.Added),
		attribute.Int("catalog.merged", summary.Merged),
		attribute.Int("catalog.skipped", summary.Skipped),
	)
	l.logger.InfoContext(ctx, "Catalog loaded",
		"source", source,
		"lines", summary.Lines,
		"added", summary.Added,
		"merged", summary.Merged,
		"skipped", summary.Skipped,
	)
	return summary, nil
}

// Load adds every valid line of r to the inventory. Blank lines are ignored and
// malformed lines are logged and skipped. Only a failure to read r is returned.
func (l *Loader) Load(ctx context.Context, r io.Reader) (Summary, error) {
	var summary Summary
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		summary.Lines++

		record, err := ParseLine(line, l.format)
		if err != nil {
			summary.Skipped++
			l.logger.WarnContext(ctx, "Skipping catalog line", "line", lineNo, "error", err)
			continue
		}
		_, created, err := l.inventory.Add(record.Book, record.Stock)
		if err != nil {
			summary.Skipped++
			l.logger.WarnContext(ctx, "Skipping catalog line", "line", lineNo, "error", err)
			continue
		}
		if created {
			summary.Added++
		} else {
			summary.Merged++
		}
	}
	if err := scanner.Err(); err != nil {
		return summary, fmt.Errorf("%w: read failed after line %d: %v", errors.ErrSourceUnavailable, lineNo, err)
	}
	return summary, nil
}

func (l *Loader) open(ctx context.Context, source string) (io.ReadCloser, error) {
	u, err := url.Parse(source)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid location %q: %v", errors.ErrSourceUnavailable, source, err)
	}

	switch u.Scheme {
	case "http", "https":
		return l.fetch(ctx, u.String())
	case "file":
		return openFile(u.Path)
	case "":
		return openFile(source)
	default:
		return nil, fmt.Errorf("%w: unsupported scheme %q", errors.ErrSourceUnavailable, u.Scheme)
	}
}

func (l *Loader) fetch(ctx context.Context, location string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, location, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errors.ErrSourceUnavailable, err)
	}
	resp, err := l.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errors.ErrSourceUnavailable, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_ = resp.Body.Close()
		return nil, fmt.Errorf("%w: %s returned %s", errors.ErrSourceUnavailable, location, resp.Status)
	}
	return resp.Body, nil
}

func openFile(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errors.ErrSourceUnavailable, err)
	}
	return f, nil
}
