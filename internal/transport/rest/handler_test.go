package rest

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	inverrors "github.com/AndySun25/bookstore/internal/errors"
	"github.com/AndySun25/bookstore/internal/service"
	"github.com/AndySun25/bookstore/internal/store"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

type mockInventoryService struct {
	mock.Mock
}

func (m *mockInventoryService) AddBook(ctx context.Context, book service.BookCreateDto) (*service.AddResultDto, error) {
	args := m.Called(ctx, book)
	result, _ := args.Get(0).(*service.AddResultDto)
	return result, args.Error(1)
}

func (m *mockInventoryService) GetBook(ctx context.Context, id int64) (*service.BookDto, error) {
	args := m.Called(ctx, id)
	result, _ := args.Get(0).(*service.BookDto)
	return result, args.Error(1)
}

func (m *mockInventoryService) ListBooks(ctx context.Context) ([]service.BookDto, error) {
	args := m.Called(ctx)
	result, _ := args.Get(0).([]service.BookDto)
	return result, args.Error(1)
}

func (m *mockInventoryService) SearchBooks(ctx context.Context, criteria store.Criteria) ([]service.BookDto, error) {
	args := m.Called(ctx, criteria)
	result, _ := args.Get(0).([]service.BookDto)
	return result, args.Error(1)
}

func (m *mockInventoryService) Purchase(ctx context.Context, ids []int64) (*service.ReceiptDto, error) {
	args := m.Called(ctx, ids)
	result, _ := args.Get(0).(*service.ReceiptDto)
	return result, args.Error(1)
}

var (
	book1 = service.BookDto{ID: 1, Title: "title_1", Author: "author_1", Price: "10.00", Stock: 1}
	book2 = service.BookDto{ID: 2, Title: "title_2", Author: "author_2", Price: "15.00", Stock: 2}
)

func newRouter(svc service.InventoryService) (*chi.Mux, *Handler) {
	h := NewHandler(svc, discard)
	r := chi.NewRouter()
	h.RegisterRoutes(r)
	return r, h
}

func serve(r http.Handler, method, target, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

func criteriaMatch(expected store.Criteria) any {
	return mock.MatchedBy(func(c store.Criteria) bool {
		return c.String() == expected.String()
	})
}

func TestHandler_ListBooks(t *testing.T) {
	partialFalse := false
	testCases := []struct {
		name         string
		target       string
		setup        func(m *mockInventoryService)
		expectedCode int
		expectedBody string
	}{
		{
			name:   "Success - plain list",
			target: "/api/v1/books",
			setup: func(m *mockInventoryService) {
				m.On("ListBooks", mock.Anything).Return([]service.BookDto{book1, book2}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `[{"id":1,"title":"title_1","author":"author_1","price":"10.00","stock":1},
				{"id":2,"title":"title_2","author":"author_2","price":"15.00","stock":2}]`,
		},
		{
			name:   "Success - query parameters become a search",
			target: "/api/v1/books?title=Title_2&partial=false",
			setup: func(m *mockInventoryService) {
				m.On("SearchBooks", mock.Anything, criteriaMatch(store.TitleCriteria("title_2", false))).
					Return([]service.BookDto{book2}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `[{"id":2,"title":"title_2","author":"author_2","price":"15.00","stock":2}]`,
		},
		{
			name:   "Success - free text",
			target: "/api/v1/books?q=author_1",
			setup: func(m *mockInventoryService) {
				m.On("SearchBooks", mock.Anything, criteriaMatch(store.TextCriteria("author_1"))).
					Return([]service.BookDto{book1}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `[{"id":1,"title":"title_1","author":"author_1","price":"10.00","stock":1}]`,
		},
		{
			name:   "Success - no match is an empty array",
			target: "/api/v1/books?author=nobody&partial=false",
			setup: func(m *mockInventoryService) {
				m.On("SearchBooks", mock.Anything, criteriaMatch(store.Criteria{Author: ptr("nobody"), Partial: &partialFalse})).
					Return([]service.BookDto{}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `[]`,
		},
		{
			name:         "Error - partial is not a bool",
			target:       "/api/v1/books?title=x&partial=maybe",
			setup:        func(*mockInventoryService) {},
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"error":"Invalid partial value: maybe"}`,
		},
		{
			name:   "Error - service failure",
			target: "/api/v1/books",
			setup: func(m *mockInventoryService) {
				m.On("ListBooks", mock.Anything).Return(nil, errors.New("boom"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: `{"error":"Failed to list books"}`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			svc := &mockInventoryService{}
			tc.setup(svc)
			r, _ := newRouter(svc)

			// when
			rr := serve(r, http.MethodGet, tc.target, "")

			// then
			assert.Equal(t, tc.expectedCode, rr.Code)
			assert.JSONEq(t, tc.expectedBody, rr.Body.String())
			svc.AssertExpectations(t)
		})
	}
}

func TestHandler_SearchBooks(t *testing.T) {
	testCases := []struct {
		name         string
		body         string
		setup        func(m *mockInventoryService)
		expectedCode int
	}{
		{
			name: "Success - structured criteria",
			body: `{"author":"AUTHOR_1","partial":false}`,
			setup: func(m *mockInventoryService) {
				m.On("SearchBooks", mock.Anything, criteriaMatch(store.AuthorCriteria("author_1", false))).
					Return([]service.BookDto{book1}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{name: "Error - unknown field", body: `{"isbn":"123"}`, setup: func(*mockInventoryService) {}, expectedCode: http.StatusBadRequest},
		{name: "Error - wrong type", body: `{"partial":"yes"}`, setup: func(*mockInventoryService) {}, expectedCode: http.StatusBadRequest},
		{name: "Error - not json", body: `title=x`, setup: func(*mockInventoryService) {}, expectedCode: http.StatusBadRequest},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			svc := &mockInventoryService{}
			tc.setup(svc)
			r, _ := newRouter(svc)

			// when
			rr := serve(r, http.MethodPost, "/api/v1/books/search", tc.body)

			// then
			assert.Equal(t, tc.expectedCode, rr.Code)
			svc.AssertExpectations(t)
			if tc.expectedCode == http.StatusBadRequest {
				assert.Contains(t, rr.Body.String(), inverrors.ErrInvalidQuery.Error())
			}
		})
	}
}

func TestHandler_GetBook(t *testing.T) {
	testCases := []struct {
		name         string
		target       string
		setup        func(m *mockInventoryService)
		expectedCode int
		expectedBody string
	}{
		{
			name:   "Success - found",
			target: "/api/v1/books/1",
			setup: func(m *mockInventoryService) {
				m.On("GetBook", mock.Anything, int64(1)).Return(&book1, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `{"id":1,"title":"title_1","author":"author_1","price":"10.00","stock":1}`,
		},
		{
			name:   "Error - not found",
			target: "/api/v1/books/42",
			setup: func(m *mockInventoryService) {
				m.On("GetBook", mock.Anything, int64(42)).Return(nil, inverrors.ErrBookNotFound)
			},
			expectedCode: http.StatusNotFound,
			expectedBody: `{"error":"book not found"}`,
		},
		{
			name:         "Error - invalid id",
			target:       "/api/v1/books/abc",
			setup:        func(*mockInventoryService) {},
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"error":"Invalid ID: abc"}`,
		},
		{
			name:         "Error - zero id",
			target:       "/api/v1/books/0",
			setup:        func(*mockInventoryService) {},
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"error":"Invalid ID: 0"}`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			svc := &mockInventoryService{}
			tc.setup(svc)
			r, _ := newRouter(svc)

			// when
			rr := serve(r, http.MethodGet, tc.target, "")

			// then
			assert.Equal(t, tc.expectedCode, rr.Code)
			assert.JSONEq(t, tc.expectedBody, rr.Body.String())
			svc.AssertExpectations(t)
		})
	}
}

func TestHandler_AddBook(t *testing.T) {
	input := service.BookCreateDto{Title: "title_3", Author: "author_3", Price: "7.50", Amount: 3}
	testCases := []struct {
		name         string
		body         string
		setup        func(m *mockInventoryService)
		expectedCode int
		expectedBody string
	}{
		{
			name: "Success - created",
			body: `{"title":"title_3","author":"author_3","price":"7.50","amount":3}`,
			setup: func(m *mockInventoryService) {
				m.On("AddBook", mock.Anything, input).Return(&service.AddResultDto{
					Book:    service.BookDto{ID: 4, Title: "title_3", Author: "author_3", Price: "7.50", Stock: 3},
					Created: true,
				}, nil)
			},
			expectedCode: http.StatusCreated,
			expectedBody: `{"book":{"id":4,"title":"title_3","author":"author_3","price":"7.50","stock":3},"created":true}`,
		},
		{
			name: "Success - merged",
			body: `{"title":"title_1","author":"author_1","price":"10.00","amount":0}`,
			setup: func(m *mockInventoryService) {
				m.On("AddBook", mock.Anything, mock.Anything).Return(&service.AddResultDto{Book: book1}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `{"book":{"id":1,"title":"title_1","author":"author_1","price":"10.00","stock":1},"created":false}`,
		},
		{
			name:         "Error - negative amount",
			body:         `{"title":"t","author":"a","price":"1.00","amount":-1}`,
			setup:        func(*mockInventoryService) {},
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"error":"amount must not be negative"}`,
		},
		{
			name:         "Error - validation",
			body:         `{"author":"a","price":"1.00","amount":1}`,
			setup:        func(*mockInventoryService) {},
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"validation_errors":{"Title":"failed on rule: required"}}`,
		},
		{
			name:         "Error - blank title",
			body:         `{"title":"   ","author":"a","price":"1.00","amount":1}`,
			setup:        func(*mockInventoryService) {},
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"validation_errors":{"Title":"failed on rule: notblank"}}`,
		},
		{
			name:         "Error - amount above the limit",
			body:         `{"title":"t","author":"a","price":"1.00","amount":1000000000001}`,
			setup:        func(*mockInventoryService) {},
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"validation_errors":{"Amount":"failed on rule: max"}}`,
		},
		{
			name: "Error - stock overflow",
			body: `{"title":"t","author":"a","price":"1.00","amount":5}`,
			setup: func(m *mockInventoryService) {
				m.On("AddBook", mock.Anything, mock.Anything).Return(nil, fmt.Errorf("%w: book 1", inverrors.ErrStockOverflow))
			},
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"error":"stock limit exceeded: book 1"}`,
		},
		{
			name:         "Error - malformed body",
			body:         `{"title":`,
			setup:        func(*mockInventoryService) {},
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"error":"Invalid request body"}`,
		},
		{
			name: "Error - invalid price",
			body: `{"title":"t","author":"a","price":"ten","amount":1}`,
			setup: func(m *mockInventoryService) {
				m.On("AddBook", mock.Anything, mock.Anything).Return(nil, inverrors.ErrInvalidPrice)
			},
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"error":"invalid price"}`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			svc := &mockInventoryService{}
			tc.setup(svc)
			r, _ := newRouter(svc)

			// when
			rr := serve(r, http.MethodPost, "/api/v1/books", tc.body)

			// then
			assert.Equal(t, tc.expectedCode, rr.Code)
			assert.JSONEq(t, tc.expectedBody, rr.Body.String())
			svc.AssertExpectations(t)
		})
	}
}

func TestHandler_Purchase(t *testing.T) {
	receiptID := uuid.MustParse("123e4567-e89b-12d3-a456-426614174000")
	testCases := []struct {
		name         string
		body         string
		setup        func(m *mockInventoryService)
		expectedCode int
		expectedBody string
	}{
		{
			name: "Success - mixed outcomes",
			body: `{"ids":[1,99]}`,
			setup: func(m *mockInventoryService) {
				m.On("Purchase", mock.Anything, []int64{1, 99}).Return(&service.ReceiptDto{
					ID: receiptID,
					Lines: []service.ReceiptLineDto{
						{BookID: 1, Book: &service.BookDto{ID: 1, Title: "title_1", Author: "author_1", Price: "10.00"}, Outcome: store.Purchased},
						{BookID: 99, Outcome: store.NotFound},
					},
					Total:     "10.00",
					Purchased: 1,
				}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `{"id":"123e4567-e89b-12d3-a456-426614174000","lines":[
				{"book_id":1,"book":{"id":1,"title":"title_1","author":"author_1","price":"10.00","stock":0},"outcome":"PURCHASED"},
				{"book_id":99,"outcome":"NOT_FOUND"}],"total":"10.00","purchased":1}`,
		},
		{
			name:         "Error - missing ids",
			body:         `{}`,
			setup:        func(*mockInventoryService) {},
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"validation_errors":{"IDs":"failed on rule: required"}}`,
		},
		{
			name:         "Error - ids are not numbers",
			body:         `{"ids":["a"]}`,
			setup:        func(*mockInventoryService) {},
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"error":"Invalid request body"}`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			svc := &mockInventoryService{}
			tc.setup(svc)
			r, _ := newRouter(svc)

			// when
			rr := serve(r, http.MethodPost, "/api/v1/purchases", tc.body)

			// then
			assert.Equal(t, tc.expectedCode, rr.Code)
			assert.JSONEq(t, tc.expectedBody, rr.Body.String())
			svc.AssertExpectations(t)
		})
	}
}

func TestHandler_Probes(t *testing.T) {
	r, h := newRouter(&mockInventoryService{})

	assert.Equal(t, http.StatusOK, serve(r, http.MethodGet, "/healthz", "").Code)
	assert.Equal(t, http.StatusServiceUnavailable, serve(r, http.MethodGet, "/readyz", "").Code)

	h.SetReady(true)
	assert.Equal(t, http.StatusOK, serve(r, http.MethodGet, "/readyz", "").Code)
}
