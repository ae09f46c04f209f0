package service

import (
	"fmt"

	"github.com/AndySun25/bookstore/internal/store"
	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BookDto represents a stored book together with its remaining stock.
// Price is rendered as a decimal string so no precision is lost on the wire.
type BookDto struct {
	ID     int64  `json:"id"`
	Title  string `json:"title"`
	Author string `json:"author"`
	Price  string `json:"price"`
	Stock  int    `json:"stock"`
}

// MaxAmount bounds the stock a single add may bring in.
const MaxAmount = 1_000_000_000_000

// BookCreateDto represents the data transfer object for adding stock of a book.
// Title, author and price are trimmed before validation, so blank values are rejected.
type BookCreateDto struct {
	Title  string `json:"title" validate:"required,notblank"`
	Author string `json:"author" validate:"required,notblank"`
	Price  string `json:"price" validate:"required"`
	Amount int    `json:"amount" validate:"min=0,max=1000000000000"`
}

// NewValidator returns a validator that also knows the notblank rule used by BookCreateDto.
func NewValidator() *validator.Validate {
	v := validator.New()
	if err := v.RegisterValidation("notblank", validators.NotBlank); err != nil {
		panic(fmt.Sprintf("failed to register notblank validation: %v", err))
	}
	return v
}

// AddResultDto reports the stored book and whether a new record was created.
type AddResultDto struct {
	Book    BookDto `json:"book"`
	Created bool    `json:"created"`
}

// ReceiptDto summarises a purchase. Total is the sum of the prices of purchased lines.
type ReceiptDto struct {
	ID        uuid.UUID        `json:"id"`
	Lines     []ReceiptLineDto `json:"lines"`
	Total     string           `json:"total"`
	Purchased int              `json:"purchased"`
}

// ReceiptLineDto is the outcome for one requested id. Book is nil for unknown ids.
type ReceiptLineDto struct {
	BookID  int64         `json:"book_id"`
	Book    *BookDto      `json:"book,omitempty"`
	Outcome store.Outcome `json:"outcome"`
}

func toDto(entry store.Entry) BookDto {
	return BookDto{
		ID:     entry.ID,
		Title:  entry.Title,
		Author: entry.Author,
		Price:  formatPrice(entry.Price),
		Stock:  entry.Stock,
	}
}

func toDtos(entries []store.Entry) []BookDto {
	dtos := make([]BookDto, 0, len(entries))
	for _, entry := range entries {
		dtos = append(dtos, toDto(entry))
	}
	return dtos
}

// formatPrice keeps at least two fraction digits and never rounds.
func formatPrice(price decimal.Decimal) string {
	if price.Exponent() >= -2 {
		return price.StringFixed(2)
	}
	return price.String()
}
