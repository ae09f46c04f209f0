// Package rest provides HTTP handlers for the inventory.
package rest

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"sync/atomic"

	inverrors "github.com/AndySun25/bookstore/internal/errors"
	"github.com/AndySun25/bookstore/internal/service"
	"github.com/AndySun25/bookstore/internal/store"
	"github.com/AndySun25/bookstore/pkg/web"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
)

const maxBodyBytes = 1 << 20

// PurchaseRequest is the body of POST /api/v1/purchases.
type PurchaseRequest struct {
	IDs []int64 `json:"ids" validate:"required"`
}

type Handler struct {
	service  service.InventoryService
	validate *validator.Validate
	logger   *slog.Logger
	ready    atomic.Bool
}

// NewHandler creates a new Handler. It reports not ready until SetReady is called.
func NewHandler(svc service.InventoryService, logger *slog.Logger) *Handler {
	return &Handler{
		service:  svc,
		validate: service.NewValidator(),
		logger:   logger.With("component", "rest"),
	}
}

// SetReady flips the readiness probe.
func (h *Handler) SetReady(ready bool) {
	h.ready.Store(ready)
}

// RegisterRoutes registers the HTTP routes for the inventory.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/books", func(r chi.Router) {
			r.Get("/", h.ListBooks)
			r.Post("/", h.AddBook)
			r.Post("/search", h.SearchBooks)
			r.Get("/{id}", h.GetBook)
		})
		r.Post("/purchases", h.Purchase)
	})
	r.Get("/healthz", h.HealthCheck)
	r.Get("/readyz", h.ReadyCheck)
}

// ListBooks lists the catalog. Any of the title, author, q or partial query parameters turn it into a search.
func (h *Handler) ListBooks(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	query := r.URL.Query()
	if !query.Has("title") && !query.Has("author") && !query.Has("q") && !query.Has("partial") {
		list, err := h.service.ListBooks(r.Context())
		if err != nil {
			mLogger.ErrorContext(r.Context(), "Error listing books", "error", err)
			web.RespondError(w, mLogger, http.StatusInternalServerError, "Failed to list books")
			return
		}
		web.RespondJSON(w, mLogger, http.StatusOK, list)
		return
	}

	partial, ok := web.ParseOptionalBool(w, r, mLogger, "partial")
	if !ok {
		return
	}
	criteria := store.Criteria{Partial: partial}
	if query.Has("title") {
		criteria.Title = ptr(query.Get("title"))
	}
	if query.Has("author") {
		criteria.Author = ptr(query.Get("author"))
	}
	if query.Has("q") {
		criteria.Text = ptr(query.Get("q"))
	}
	h.search(w, r, mLogger, criteria)
}

// SearchBooks runs a structured search given as a JSON body.
func (h *Handler) SearchBooks(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		mLogger.ErrorContext(r.Context(), "Error reading request body", "error", err)
		web.RespondError(w, mLogger, http.StatusBadRequest, "Invalid request body")
		return
	}
	criteria, err := store.ParseCriteria(body)
	if err != nil {
		mLogger.WarnContext(r.Context(), "Rejected search query", "error", err)
		web.RespondError(w, mLogger, http.StatusBadRequest, err.Error())
		return
	}
	h.search(w, r, mLogger, criteria)
}

func (h *Handler) search(w http.ResponseWriter, r *http.Request, mLogger *slog.Logger, criteria store.Criteria) {
	mLogger.DebugContext(r.Context(), "Received search request", "criteria", criteria.String())
	found, err := h.service.SearchBooks(r.Context(), criteria)
	if err != nil {
		h.respondServiceError(w, r, mLogger, err, "Failed to search books")
		return
	}
	web.RespondJSON(w, mLogger, http.StatusOK, found)
}

// GetBook retrieves a book by its ID.
func (h *Handler) GetBook(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	id, ok := web.ParseID(w, r, mLogger)
	if !ok {
		return
	}
	found, err := h.service.GetBook(r.Context(), id)
	if err != nil {
		h.respondServiceError(w, r, mLogger, err, fmt.Sprintf("Failed to retrieve book with ID %d", id))
		return
	}
	web.RespondJSON(w, mLogger, http.StatusOK, found)
}

// AddBook adds stock for a book. Responds 201 when a record was created and 200 when stock was merged.
func (h *Handler) AddBook(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	var createDto service.BookCreateDto
	if !web.DecodeJSON(w, r, mLogger, maxBodyBytes, &createDto) {
		return
	}
	if createDto.Amount < 0 {
		web.RespondError(w, mLogger, http.StatusBadRequest, inverrors.ErrNegativeAmount.Error())
		return
	}
	if err := h.validate.Struct(createDto); err != nil {
		web.RespondValidationError(w, r, mLogger, err)
		return
	}

	result, err := h.service.AddBook(r.Context(), createDto)
	if err != nil {
		h.respondServiceError(w, r, mLogger, err, "Failed to add book")
		return
	}
	status := http.StatusOK
	if result.Created {
		status = http.StatusCreated
	}
	mLogger.InfoContext(r.Context(), "Book stored", "ID", result.Book.ID, "created", result.Created)
	web.RespondJSON(w, mLogger, status, result)
}

// Purchase buys one unit of every listed id and responds with the receipt.
func (h *Handler) Purchase(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	var req PurchaseRequest
	if !web.DecodeJSON(w, r, mLogger, maxBodyBytes, &req) {
		return
	}
	if err := h.validate.Struct(req); err != nil {
		web.RespondValidationError(w, r, mLogger, err)
		return
	}

	receipt, err := h.service.Purchase(r.Context(), req.IDs)
	if err != nil {
		h.respondServiceError(w, r, mLogger, err, "Failed to process purchase")
		return
	}
	web.RespondJSON(w, mLogger, http.StatusOK, receipt)
}

// HealthCheck is a simple health check endpoint.
func (h *Handler) HealthCheck(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}

// ReadyCheck responds 503 until the catalog has been loaded.
func (h *Handler) ReadyCheck(w http.ResponseWriter, _ *http.Request) {
	if !h.ready.Load() {
		w.WriteHeader(http.StatusServiceUnavailable)
		return
	}
	w.WriteHeader(http.StatusOK)
}

func (h *Handler) respondServiceError(w http.ResponseWriter, r *http.Request, mLogger *slog.Logger, err error, message string) {
	switch {
	case errors.Is(err, inverrors.ErrBookNotFound):
		mLogger.WarnContext(r.Context(), "Book not found", "error", err)
		web.RespondError(w, mLogger, http.StatusNotFound, err.Error())
	case errors.Is(err, inverrors.ErrInvalidQuery),
		errors.Is(err, inverrors.ErrNegativeAmount),
		errors.Is(err, inverrors.ErrStockOverflow),
		errors.Is(err, inverrors.ErrInvalidPrice),
		errors.Is(err, inverrors.ErrInvalidBook):
		mLogger.WarnContext(r.Context(), "Rejected request", "error", err)
		web.RespondError(w, mLogger, http.StatusBadRequest, err.Error())
	default:
		mLogger.ErrorContext(r.Context(), message, "error", err)
		web.RespondError(w, mLogger, http.StatusInternalServerError, message)
	}
}

// loggerWithReqID creates a logger with the request ID from the context.
func (h *Handler) loggerWithReqID(r *http.Request) *slog.Logger {
	reqID := middleware.GetReqID(r.Context())
	return h.logger.With("request_id", reqID)
}

func ptr(s string) *string {
	return &s
}
