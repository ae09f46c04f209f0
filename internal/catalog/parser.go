// Package catalog loads the seed catalog feed into the inventory.
// The feed has one book per line: title;author;price;stock.
package catalog

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/AndySun25/bookstore/internal/errors"
	"github.com/AndySun25/bookstore/internal/store"
	"github.com/shopspring/decimal"
)

const (
	fieldSeparator = ";"
	fieldCount     = 4
)

// Format describes how prices are written in the feed.
type Format struct {
	DecimalSeparator string
	GroupSeparator   string
}

// DefaultFormat reads prices such as 1,234.50.
var DefaultFormat = Format{DecimalSeparator: ".", GroupSeparator: ","}

// Record is one parsed feed line.
type Record struct {
	Book  store.Book
	Stock int
}

// ParseLine parses a single feed line. Errors wrap ErrMalformedLine.
func ParseLine(line string, format Format) (Record, error) {
	fields := strings.Split(strings.TrimSpace(line), fieldSeparator)
	if len(fields) != fieldCount {
		return Record{}, fmt.Errorf("%w: expected %d fields, got %d", errors.ErrMalformedLine, fieldCount, len(fields))
	}
	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}

	title, author := fields[0], fields[1]
	if title == "" || author == "" {
		return Record{}, fmt.Errorf("%w: title and author are required", errors.ErrMalformedLine)
	}

	price, err := format.ParsePrice(fields[2])
	if err != nil {
		return Record{}, err
	}

	stock, err := strconv.Atoi(fields[3])
	if err != nil {
		return Record{}, fmt.Errorf("%w: invalid stock %q", errors.ErrMalformedLine, fields[3])
	}
	if stock < 0 {
		return Record{}, fmt.Errorf("%w: negative stock %d", errors.ErrMalformedLine, stock)
	}

	return Record{
		Book:  store.Book{Title: title, Author: author, Price: price},
		Stock: stock,
	}, nil
}

// ParsePrice parses a non-negative decimal written with the format's separators.
// Once the separators are normalized the value must pass store.ParsePrice.
func (f Format) ParsePrice(raw string) (decimal.Decimal, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return decimal.Decimal{}, fmt.Errorf("%w: empty price", errors.ErrMalformedLine)
	}
	if f.GroupSeparator != "" {
		s = strings.ReplaceAll(s, f.GroupSeparator, "")
	}
	if f.DecimalSeparator != "" && f.DecimalSeparator != "." {
		if strings.Contains(s, ".") {
			return decimal.Decimal{}, fmt.Errorf("%w: invalid price %q", errors.ErrMalformedLine, raw)
		}
		s = strings.Replace(s, f.DecimalSeparator, ".", 1)
	}
	price, err := store.ParsePrice(s)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%w: %w", errors.ErrMalformedLine, err)
	}
	return price, nil
}
