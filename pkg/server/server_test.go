package server

import (
	"context"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/AndySun25/bookstore/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/test/bufconn"
)

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

func TestNewChiRouter(t *testing.T) {
	mux := NewChiRouter("test", discard)
	mux.Get("/api/v1/books/{id}", func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, r.PathValue("id"))
	})
	mux.Get("/panic", func(http.ResponseWriter, *http.Request) {
		panic("boom")
	})

	testCases := []struct {
		name         string
		method       string
		target       string
		expectedCode int
		expectedBody string
	}{
		{name: "route with path value", method: http.MethodGet, target: "/api/v1/books/7", expectedCode: http.StatusOK, expectedBody: "7"},
		{name: "path is cleaned", method: http.MethodGet, target: "/api/v1//books/7", expectedCode: http.StatusOK, expectedBody: "7"},
		{name: "unknown route", method: http.MethodGet, target: "/nope", expectedCode: http.StatusNotFound, expectedBody: `{"error":"No route for /nope"}`},
		{name: "wrong method", method: http.MethodDelete, target: "/api/v1/books/7", expectedCode: http.StatusMethodNotAllowed, expectedBody: `{"error":"Method DELETE not allowed"}`},
		{name: "panic", method: http.MethodGet, target: "/panic", expectedCode: http.StatusInternalServerError, expectedBody: `{"error":"Internal Server Error"}`},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// when
			rr := httptest.NewRecorder()
			mux.ServeHTTP(rr, httptest.NewRequest(tc.method, tc.target, nil))

			// then
			assert.Equal(t, tc.expectedCode, rr.Code)
			assert.Equal(t, tc.expectedBody, rr.Body.String())
			assert.NotEmpty(t, rr.Header().Get("X-Request-Id"))
		})
	}
}

func TestNewHTTPServer(t *testing.T) {
	var cfg config.HTTPConfig
	cfg.Port = 8081
	cfg.MaxHeaderBytes = 4096
	cfg.Timeout.Read = time.Second
	cfg.Timeout.Write = 2 * time.Second
	cfg.Timeout.Idle = 3 * time.Second
	cfg.Timeout.ReadHeader = 4 * time.Second

	srv := NewHTTPServer(cfg, http.NotFoundHandler(), discard)

	assert.Equal(t, ":8081", srv.Addr)
	assert.Equal(t, 4096, srv.MaxHeaderBytes)
	assert.Equal(t, time.Second, srv.ReadTimeout)
	assert.Equal(t, 2*time.Second, srv.WriteTimeout)
	assert.Equal(t, 3*time.Second, srv.IdleTimeout)
	assert.Equal(t, 4*time.Second, srv.ReadHeaderTimeout)
	assert.NotNil(t, srv.ErrorLog)
}

func TestNewGRPCServer_Registers(t *testing.T) {
	// given
	srv := NewGRPCServer(discard, true, func(s *grpc.Server) {
		healthpb.RegisterHealthServer(s, health.NewServer())
	})
	lis := bufconn.Listen(1 << 20)
	go func() {
		_ = srv.Serve(lis)
	}()
	t.Cleanup(srv.Stop)

	conn, err := grpc.NewClient("passthrough://bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	// when
	resp, err := healthpb.NewHealthClient(conn).Check(context.Background(), &healthpb.HealthCheckRequest{})

	// then
	require.NoError(t, err)
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, resp.Status)
	assert.Contains(t, srv.GetServiceInfo(), "grpc.reflection.v1.ServerReflection")
}
