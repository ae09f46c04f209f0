// Package errors provides sentinel errors for inventory operations.
package errors

import "errors"

var (
	ErrBookNotFound   = errors.New("book not found")
	ErrNegativeAmount = errors.New("amount must not be negative")
	ErrStockOverflow  = errors.New("stock limit exceeded")
	ErrInvalidQuery   = errors.New("invalid search query")
	ErrInvalidPrice   = errors.New("invalid price")
	ErrInvalidBook    = errors.New("invalid book")

	ErrMalformedLine     = errors.New("malformed catalog line")
	ErrSourceUnavailable = errors.New("catalog source unavailable")
)
