// Package server builds the HTTP and gRPC servers with the shared middleware stack.
package server

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/AndySun25/bookstore/pkg/config"
	"github.com/AndySun25/bookstore/pkg/web"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// untraced lists endpoints hit by probes and scrapers.
var untraced = map[string]bool{"/healthz": true, "/readyz": true, "/metrics": true}

// NewHTTPServer creates an HTTP server listening on cfg.Port. Server errors such as
// TLS handshake failures are written to logger at warn level.
func NewHTTPServer(cfg config.HTTPConfig, handler http.Handler, logger *slog.Logger) *http.Server {
	return &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           handler,
		ReadTimeout:       cfg.Timeout.Read,
		WriteTimeout:      cfg.Timeout.Write,
		IdleTimeout:       cfg.Timeout.Idle,
		ReadHeaderTimeout: cfg.Timeout.ReadHeader,
		MaxHeaderBytes:    cfg.MaxHeaderBytes,
		ErrorLog:          slog.NewLogLogger(logger.Handler(), slog.LevelWarn),
	}
}

// NewChiRouter creates a router that cleans paths, tags requests with an id, traces
// everything except probes, logs each request and recovers from panics. Unknown routes
// and methods get JSON errors.
func NewChiRouter(serviceName string, logger *slog.Logger) *chi.Mux {
	mux := chi.NewRouter()
	mux.Use(middleware.CleanPath)
	mux.Use(web.RequestIDInjector)
	mux.Use(otelhttp.NewMiddleware(serviceName, otelhttp.WithFilter(func(r *http.Request) bool {
		return !untraced[r.URL.Path]
	})))
	mux.Use(web.StructuredLogger(logger))
	mux.Use(web.Recoverer(logger))

	mux.NotFound(func(w http.ResponseWriter, r *http.Request) {
		web.RespondError(w, logger, http.StatusNotFound, fmt.Sprintf("No route for %s", r.URL.Path))
	})
	mux.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		web.RespondError(w, logger, http.StatusMethodNotAllowed, fmt.Sprintf("Method %s not allowed", r.Method))
	})
	return mux
}
