// Package service provides the inventory use cases on top of the store: adding stock,
// browsing and searching the catalog, and purchasing books.
package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	inverrors "github.com/AndySun25/bookstore/internal/errors"
	"github.com/AndySun25/bookstore/internal/store"
	"github.com/AndySun25/bookstore/pkg/logger"
	"github.com/AndySun25/bookstore/pkg/messaging"
	"github.com/AndySun25/bookstore/pkg/messaging/events"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("github.com/AndySun25/bookstore/internal/service")

// InventoryService defines the inventory operations exposed to transports.
type InventoryService interface {
	// AddBook stores stock for a book, merging into an existing record with the same
	// title, author and price. Title, author and price are trimmed first. Returns
	// ErrInvalidBook, ErrInvalidPrice or ErrNegativeAmount for bad input and
	// ErrStockOverflow when the merged stock would not fit.
	AddBook(ctx context.Context, book BookCreateDto) (*AddResultDto, error)

	// GetBook returns a single book.
	// Returns ErrBookNotFound if no book exists with the given ID.
	GetBook(ctx context.Context, id int64) (*BookDto, error)

	// ListBooks returns every book in insertion order.
	ListBooks(ctx context.Context) ([]BookDto, error)

	// SearchBooks returns the books matching criteria in insertion order.
	SearchBooks(ctx context.Context, criteria store.Criteria) ([]BookDto, error)

	// Purchase buys one unit per id, in order, and returns a receipt with an outcome per id.
	Purchase(ctx context.Context, ids []int64) (*ReceiptDto, error)
}

// Service implements InventoryService.
type Service struct {
	inventory     store.BookStore
	publisher     messaging.Publisher
	validate      *validator.Validate
	logger        *slog.Logger
	booksAdded    metric.Int64Counter
	purchaseItems metric.Int64Counter
}

// NewService creates a new Service backed by inventory. Events are sent through publisher.
func NewService(inventory store.BookStore, publisher messaging.Publisher, log *slog.Logger) *Service {
	meter := otel.Meter("inventory-service")
	booksAdded, err := meter.Int64Counter("inventory_books_added", metric.WithDescription("Total number of created book records"))
	if err != nil {
		panic(fmt.Sprintf("failed to create inventory_books_added counter: %v", err))
	}
	purchaseItems, err := meter.Int64Counter("inventory_purchase_items", metric.WithDescription("Purchased items by outcome"))
	if err != nil {
		panic(fmt.Sprintf("failed to create inventory_purchase_items counter: %v", err))
	}
	if publisher == nil {
		publisher = messaging.NopPublisher{}
	}
	return &Service{
		inventory:     inventory,
		publisher:     publisher,
		validate:      NewValidator(),
		logger:        log.With("component", "service"),
		booksAdded:    booksAdded,
		purchaseItems: purchaseItems,
	}
}

// AddBook validates the request and adds it to the inventory.
func (s *Service) AddBook(ctx context.Context, book BookCreateDto) (*AddResultDto, error) {
	ctx, span := tracer.Start(ctx, "InventoryService.AddBook")
	defer span.End()

	if book.Amount < 0 {
		return nil, fmt.Errorf("%w: %d", inverrors.ErrNegativeAmount, book.Amount)
	}
	book.Title = strings.TrimSpace(book.Title)
	book.Author = strings.TrimSpace(book.Author)
	book.Price = strings.TrimSpace(book.Price)
	if err := s.validate.Struct(book); err != nil {
		return nil, fmt.Errorf("%w: %v", inverrors.ErrInvalidBook, err)
	}
	price, err := store.ParsePrice(book.Price)
	if err != nil {
		return nil, err
	}

	entry, created, err := s.inventory.Add(store.Book{Title: book.Title, Author: book.Author, Price: price}, book.Amount)
	if err != nil {
		return nil, err
	}
	span.SetAttributes(attribute.Int64("book.id", entry.ID), attribute.Bool("book.created", created))
	ctx = logger.WithAttrs(ctx, slog.Int64("book_id", entry.ID))

	if created {
		s.booksAdded.Add(ctx, 1)
		s.publish(ctx, events.BookAddedEvent{
			Carrier:   carrier(ctx),
			BookID:    entry.ID,
			Title:     entry.Title,
			Author:    entry.Author,
			Price:     entry.Price,
			Stock:     entry.Stock,
			CreatedAt: time.Now().UTC(),
		})
		s.logger.InfoContext(ctx, "Book created", "book", entry.Book.String(), "stock", entry.Stock)
	} else {
		s.logger.DebugContext(ctx, "Stock merged into existing book", "amount", book.Amount, "stock", entry.Stock)
	}

	return &AddResultDto{Book: toDto(entry), Created: created}, nil
}

// GetBook returns the book with the given id.
func (s *Service) GetBook(ctx context.Context, id int64) (*BookDto, error) {
	_, span := tracer.Start(ctx, "InventoryService.GetBook", trace.WithAttributes(attribute.Int64("book.id", id)))
	defer span.End()

	entry, err := s.inventory.Get(id)
	if err != nil {
		return nil, err
	}
	dto := toDto(entry)
	return &dto, nil
}

// ListBooks returns the whole catalog.
func (s *Service) ListBooks(ctx context.Context) ([]BookDto, error) {
	_, span := tracer.Start(ctx, "InventoryService.ListBooks")
	defer span.End()

	return toDtos(s.inventory.List()), nil
}

// SearchBooks returns the books matching criteria.
func (s *Service) SearchBooks(ctx context.Context, criteria store.Criteria) ([]BookDto, error) {
	ctx, span := tracer.Start(ctx, "InventoryService.SearchBooks", trace.WithAttributes(attribute.String("search.criteria", criteria.String())))
	defer span.End()

	found := s.inventory.Search(criteria)
	span.SetAttributes(attribute.Int("search.results", len(found)))
	s.logger.DebugContext(ctx, "Search finished", "criteria", criteria.String(), "count", len(found))
	return toDtos(found), nil
}

// Purchase buys the given ids and builds a receipt. Unknown and exhausted ids are reported
// per line; the call itself only fails on a cancelled context. Each line shows the book
// as it stood right after that item was bought.
func (s *Service) Purchase(ctx context.Context, ids []int64) (*ReceiptDto, error) {
	ctx, span := tracer.Start(ctx, "InventoryService.Purchase", trace.WithAttributes(attribute.Int("purchase.items", len(ids))))
	defer span.End()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	receipt := &ReceiptDto{ID: uuid.New(), Lines: make([]ReceiptLineDto, 0, len(ids))}
	ctx = logger.WithAttrs(ctx, slog.String("receipt_id", receipt.ID.String()))

	total := decimal.Zero
	var purchased []int64
	for i, result := range s.inventory.Buy(ids) {
		line := ReceiptLineDto{BookID: ids[i], Outcome: result.Outcome}
		if result.Outcome != store.NotFound {
			dto := toDto(result.Entry)
			line.Book = &dto
		}
		if result.Outcome == store.Purchased {
			total = total.Add(result.Entry.Price)
			purchased = append(purchased, ids[i])
		}
		s.purchaseItems.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", result.Outcome.String())))
		receipt.Lines = append(receipt.Lines, line)
	}
	receipt.Total = formatPrice(total)
	receipt.Purchased = len(purchased)
	span.SetAttributes(attribute.Int("purchase.purchased", receipt.Purchased))

	if len(purchased) > 0 {
		s.publish(ctx, events.BooksPurchasedEvent{
			Carrier:     carrier(ctx),
			ReceiptID:   receipt.ID,
			BookIDs:     purchased,
			Total:       total,
			PurchasedAt: time.Now().UTC(),
		})
	}
	s.logger.InfoContext(ctx, "Purchase processed", "requested", len(ids), "purchased", receipt.Purchased, "total", receipt.Total)
	return receipt, nil
}

func (s *Service) publish(ctx context.Context, event messaging.Event) {
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.logger.ErrorContext(ctx, "Failed to publish event", "subject", event.Subject(), "error", err)
	}
}

func carrier(ctx context.Context) propagation.MapCarrier {
	c := make(propagation.MapCarrier)
	otel.GetTextMapPropagator().Inject(ctx, c)
	return c
}
