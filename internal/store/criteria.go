package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	inverrors "github.com/AndySun25/bookstore/internal/errors"
)

// Criteria describes a search over the inventory. Filters are trimmed; nil or blank
// filters are ignored.
// Title and Author narrow the result; Text matches books whose title or author matches
// and narrows the result the same way. Partial defaults to true.
type Criteria struct {
	Title   *string `json:"title,omitempty"`
	Author  *string `json:"author,omitempty"`
	Text    *string `json:"text,omitempty"`
	Partial *bool   `json:"partial,omitempty"`
}

// TextCriteria builds criteria for a bare search string matched against title or author.
func TextCriteria(text string) Criteria {
	return Criteria{Text: &text}
}

// TitleCriteria builds criteria filtering by title.
func TitleCriteria(title string, partial bool) Criteria {
	return Criteria{Title: &title, Partial: &partial}
}

// AuthorCriteria builds criteria filtering by author.
func AuthorCriteria(author string, partial bool) Criteria {
	return Criteria{Author: &author, Partial: &partial}
}

// ParseCriteria decodes a structured JSON query.
// Returns ErrInvalidQuery for unknown fields, wrong types or trailing data.
func ParseCriteria(data []byte) (Criteria, error) {
	var c Criteria
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&c); err != nil {
		return Criteria{}, fmt.Errorf("%w: %v", inverrors.ErrInvalidQuery, err)
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return Criteria{}, fmt.Errorf("%w: unexpected data after query object", inverrors.ErrInvalidQuery)
	}
	return c, nil
}

// PartialOrDefault reports whether substring matching is requested.
func (c Criteria) PartialOrDefault() bool {
	if c.Partial == nil {
		return true
	}
	return *c.Partial
}

// IsEmpty reports whether no filter is set, in which case a search lists everything.
func (c Criteria) IsEmpty() bool {
	_, title := filter(c.Title)
	_, author := filter(c.Author)
	_, text := filter(c.Text)
	return !title && !author && !text
}

func (c Criteria) String() string {
	var parts []string
	if v, ok := filter(c.Title); ok {
		parts = append(parts, "title="+v)
	}
	if v, ok := filter(c.Author); ok {
		parts = append(parts, "author="+v)
	}
	if v, ok := filter(c.Text); ok {
		parts = append(parts, "text="+v)
	}
	parts = append(parts, fmt.Sprintf("partial=%t", c.PartialOrDefault()))
	return strings.Join(parts, " ")
}

// filter returns the trimmed, normalized filter value and whether it is set.
func filter(v *string) (string, bool) {
	if v == nil {
		return "", false
	}
	trimmed := strings.TrimSpace(*v)
	if trimmed == "" {
		return "", false
	}
	return normalize(trimmed), true
}
