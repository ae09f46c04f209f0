package web

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

func TestRequestIDInjector(t *testing.T) {
	testCases := []struct {
		name   string
		header string
	}{
		{name: "generated"},
		{name: "propagated from header", header: "abc-123"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			var seen string
			handler := RequestIDInjector(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				seen = middleware.GetReqID(r.Context())
			}))
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tc.header != "" {
				req.Header.Set(RequestIDHeader, tc.header)
			}
			rec := httptest.NewRecorder()

			// when
			handler.ServeHTTP(rec, req)

			// then
			require.NotEmpty(t, seen)
			if tc.header != "" {
				assert.Equal(t, tc.header, seen)
			}
			assert.Equal(t, seen, rec.Header().Get(RequestIDHeader))
		})
	}
}

func TestRecoverer(t *testing.T) {
	// given
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	handler := Recoverer(logger)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))
	rec := httptest.NewRecorder()

	// when
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	// then
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"Internal Server Error"}`, rec.Body.String())
	assert.Contains(t, buf.String(), "Panic recovered")
}

func TestStructuredLogger(t *testing.T) {
	testCases := []struct {
		name      string
		path      string
		status    int
		wantLevel string
	}{
		{name: "client error", path: "/api/v1/books", status: http.StatusTeapot, wantLevel: `"level":"WARN"`},
		{name: "server error", path: "/api/v1/books", status: http.StatusBadGateway, wantLevel: `"level":"ERROR"`},
		{name: "success", path: "/api/v1/books", status: http.StatusOK, wantLevel: `"level":"INFO"`},
		{name: "probe is quiet", path: "/healthz", status: http.StatusOK},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			var buf bytes.Buffer
			logger := slog.New(slog.NewJSONHandler(&buf, nil))
			handler := StructuredLogger(logger)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tc.status)
			}))

			// when
			handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, tc.path, nil))

			// then
			if tc.wantLevel == "" {
				assert.Empty(t, buf.String())
				return
			}
			assert.Contains(t, buf.String(), tc.wantLevel)
			assert.Contains(t, buf.String(), fmt.Sprintf(`"status":%d`, tc.status))
			assert.Contains(t, buf.String(), `"path":"`+tc.path+`"`)
		})
	}
}

func TestParseID(t *testing.T) {
	testCases := []struct {
		value  string
		wantID int64
		wantOK bool
	}{
		{value: "12", wantID: 12, wantOK: true},
		{value: "0"},
		{value: "-3"},
		{value: "abc"},
	}
	for _, tc := range testCases {
		t.Run(tc.value, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/books/"+tc.value, nil)
			req.SetPathValue("id", tc.value)
			rec := httptest.NewRecorder()

			id, ok := ParseID(rec, req, discard)

			assert.Equal(t, tc.wantOK, ok)
			assert.Equal(t, tc.wantID, id)
			if !ok {
				assert.Equal(t, http.StatusBadRequest, rec.Code)
				assert.JSONEq(t, `{"error":"Invalid ID: `+tc.value+`"}`, rec.Body.String())
			}
		})
	}
}

func TestParseOptionalBool(t *testing.T) {
	rec := httptest.NewRecorder()
	v, ok := ParseOptionalBool(rec, httptest.NewRequest(http.MethodGet, "/?partial=false", nil), discard, "partial")
	require.True(t, ok)
	require.NotNil(t, v)
	assert.False(t, *v)

	v, ok = ParseOptionalBool(rec, httptest.NewRequest(http.MethodGet, "/", nil), discard, "partial")
	assert.True(t, ok)
	assert.Nil(t, v)

	rec = httptest.NewRecorder()
	_, ok = ParseOptionalBool(rec, httptest.NewRequest(http.MethodGet, "/?partial=maybe", nil), discard, "partial")
	assert.False(t, ok)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRespondValidationError(t *testing.T) {
	type payload struct {
		Title string `json:"title" validate:"required"`
	}
	req := httptest.NewRequest(http.MethodPost, "/", nil)

	rec := httptest.NewRecorder()
	RespondValidationError(rec, req, discard, validator.New().Struct(payload{}))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"validation_errors":{"Title":"failed on rule: required"}}`, rec.Body.String())

	rec = httptest.NewRecorder()
	RespondValidationError(rec, req, discard, errors.New("other"))
	assert.JSONEq(t, `{"error":"Invalid request body"}`, rec.Body.String())
}

func TestRespondJSON_NilPayload(t *testing.T) {
	rec := httptest.NewRecorder()
	RespondJSON(rec, discard, http.StatusNoContent, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestDecodeJSON(t *testing.T) {
	testCases := []struct {
		name       string
		body       string
		limit      int64
		wantOK     bool
		wantStatus int
	}{
		{name: "valid", body: `{"ids":[1,2]}`, limit: 64, wantOK: true},
		{name: "malformed", body: `{"ids":`, limit: 64, wantStatus: http.StatusBadRequest},
		{name: "too large", body: `{"ids":[1,2,3,4,5,6,7,8,9,10]}`, limit: 8, wantStatus: http.StatusRequestEntityTooLarge},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			req := httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(tc.body))
			rec := httptest.NewRecorder()
			var dst struct {
				IDs []int64 `json:"ids"`
			}

			// when
			ok := DecodeJSON(rec, req, discard, tc.limit, &dst)

			// then
			require.Equal(t, tc.wantOK, ok)
			if tc.wantOK {
				assert.Equal(t, []int64{1, 2}, dst.IDs)
				return
			}
			assert.Equal(t, tc.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), `"error"`)
		})
	}
}
