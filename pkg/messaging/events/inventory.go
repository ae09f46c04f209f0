// Package events contains the payloads published on inventory subjects.
package events

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/AndySun25/bookstore/pkg/messaging"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BookAddedEvent is published when a new book record is created.
type BookAddedEvent struct {
	Carrier   map[string]string `json:"carrier,omitempty"`
	Source    string            `json:"source"`
	BookID    int64             `json:"book_id"`
	Title     string            `json:"title"`
	Author    string            `json:"author"`
	Price     decimal.Decimal   `json:"price"`
	Stock     int               `json:"stock"`
	CreatedAt time.Time         `json:"created_at"`
}

func (e BookAddedEvent) Subject() string {
	return messaging.BookAddedSubject
}

func (e BookAddedEvent) MessageID() string {
	return fmt.Sprintf("book-added-%d", e.BookID)
}

func (e BookAddedEvent) Payload() ([]byte, error) {
	e.Source = messaging.Source
	return json.Marshal(e)
}

// BooksPurchasedEvent is published after a purchase in which at least one book was sold.
type BooksPurchasedEvent struct {
	Carrier     map[string]string `json:"carrier,omitempty"`
	Source      string            `json:"source"`
	ReceiptID   uuid.UUID         `json:"receipt_id"`
	BookIDs     []int64           `json:"book_ids"`
	Total       decimal.Decimal   `json:"total"`
	PurchasedAt time.Time         `json:"purchased_at"`
}

func (e BooksPurchasedEvent) Subject() string {
	return messaging.BooksPurchasedSubject
}

func (e BooksPurchasedEvent) MessageID() string {
	return "receipt-" + e.ReceiptID.String()
}

func (e BooksPurchasedEvent) Payload() ([]byte, error) {
	e.Source = messaging.Source
	return json.Marshal(e)
}
