package store

import (
	"fmt"
	"strings"

	"github.com/AndySun25/bookstore/internal/errors"
	"github.com/shopspring/decimal"
)

const (
	// MaxPriceScale is the number of decimal places a price may carry.
	MaxPriceScale = 6
	// MaxPriceDigits bounds the integer part of a price.
	MaxPriceDigits = 15
)

var priceLimit = decimal.New(1, MaxPriceDigits)

// Book represents a book record in the inventory.
// ID is assigned by the store on creation; any value set by the caller is ignored.
type Book struct {
	ID     int64
	Title  string
	Author string
	Price  decimal.Decimal
}

// String renders the book the way it is shown to customers.
func (b Book) String() string {
	return fmt.Sprintf("Title: %s, Author: %s, Price: %s", b.Title, b.Author, b.Price.StringFixed(2))
}

// Entry is a point-in-time copy of a stored book and its remaining stock.
type Entry struct {
	Book
	Stock int
}

// ParsePrice parses a plain non-negative decimal such as 12.50.
// Exponent notation is rejected, as are prices with more than MaxPriceScale decimal
// places or MaxPriceDigits integer digits. Errors wrap ErrInvalidPrice.
func ParsePrice(raw string) (decimal.Decimal, error) {
	if raw == "" || strings.ContainsAny(raw, "eE") {
		return decimal.Decimal{}, fmt.Errorf("%w: %q", errors.ErrInvalidPrice, raw)
	}
	price, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%w: %q", errors.ErrInvalidPrice, raw)
	}
	switch {
	case price.IsNegative():
		return decimal.Decimal{}, fmt.Errorf("%w: %q is negative", errors.ErrInvalidPrice, raw)
	case -price.Exponent() > MaxPriceScale:
		return decimal.Decimal{}, fmt.Errorf("%w: %q has more than %d decimal places", errors.ErrInvalidPrice, raw, MaxPriceScale)
	case price.Cmp(priceLimit) >= 0:
		return decimal.Decimal{}, fmt.Errorf("%w: %q has more than %d integer digits", errors.ErrInvalidPrice, raw, MaxPriceDigits)
	}
	return price, nil
}

// normalize maps titles and authors to their index key.
func normalize(s string) string {
	return strings.ToLower(s)
}
