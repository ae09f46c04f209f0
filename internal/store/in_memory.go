package store

import (
	"fmt"
	"math"
	"strings"
	"sync"

	"github.com/AndySun25/bookstore/internal/errors"
)

// inMemory implements BookStore. A single lock guards the records, the ledger,
// both indices and the id counter so every operation sees them in a consistent state.
type inMemory struct {
	mu      sync.RWMutex
	books   map[int64]Book
	stock   map[int64]int
	titles  index
	authors index
	order   []int64
	nextID  int64
}

// NewInMemoryStore creates a new, empty BookStore.
func NewInMemoryStore() BookStore {
	return &inMemory{
		books:   make(map[int64]Book),
		stock:   make(map[int64]int),
		titles:  make(index),
		authors: make(index),
		nextID:  1,
	}
}

// Add merges the book into an equal existing record or creates a new one.
func (s *inMemory) Add(book Book, amount int) (Entry, bool, error) {
	if amount < 0 {
		return Entry{}, false, fmt.Errorf("%w: %d", errors.ErrNegativeAmount, amount)
	}
	title, author := normalize(book.Title), normalize(book.Author)

	s.mu.Lock()
	defer s.mu.Unlock()

	candidates := s.authors.lookup(author).intersect(s.titles.lookup(title))
	for _, id := range candidates.sorted() {
		existing := s.books[id]
		if existing.Price.Equal(book.Price) {
			if s.stock[id] > math.MaxInt-amount {
				return Entry{}, false, fmt.Errorf("%w: book %d has %d, adding %d", errors.ErrStockOverflow, id, s.stock[id], amount)
			}
			s.stock[id] += amount
			return Entry{Book: existing, Stock: s.stock[id]}, false, nil
		}
	}

	book.ID = s.nextID
	s.nextID++
	s.books[book.ID] = book
	s.stock[book.ID] = amount
	s.titles.add(title, book.ID)
	s.authors.add(author, book.ID)
	s.order = append(s.order, book.ID)

	return Entry{Book: book, Stock: amount}, true, nil
}

// Get retrieves a book and its stock by ID.
func (s *inMemory) Get(id int64) (Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	book, ok := s.books[id]
	if !ok {
		return Entry{}, errors.ErrBookNotFound
	}
	return Entry{Book: book, Stock: s.stock[id]}, nil
}

// List retrieves all books.
func (s *inMemory) List() []Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.entries(s.order)
}

// Search evaluates title, author and text filters and intersects their matches.
func (s *inMemory) Search(criteria Criteria) []Entry {
	if criteria.IsEmpty() {
		return s.List()
	}
	partial := criteria.PartialOrDefault()

	s.mu.RLock()
	defer s.mu.RUnlock()

	var (
		result   idSet
		filtered bool
	)
	narrow := func(matches idSet) {
		if !filtered {
			result, filtered = matches, true
			return
		}
		result = result.intersect(matches)
	}

	if title, ok := filter(criteria.Title); ok {
		narrow(s.match(s.titles, title, partial, byTitle))
	}
	if author, ok := filter(criteria.Author); ok {
		narrow(s.match(s.authors, author, partial, byAuthor))
	}
	if text, ok := filter(criteria.Text); ok {
		narrow(s.match(s.titles, text, partial, byTitle).union(s.match(s.authors, text, partial, byAuthor)))
	}

	return s.entries(result.sorted())
}

// Buy processes each id in order against the ledger as left by the previous items.
func (s *inMemory) Buy(ids []int64) []BuyResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	results := make([]BuyResult, len(ids))
	for i, id := range ids {
		left, ok := s.stock[id]
		switch {
		case !ok:
			results[i] = BuyResult{Outcome: NotFound}
			continue
		case left < 1:
			results[i].Outcome = OutOfStock
		default:
			left--
			s.stock[id] = left
			results[i].Outcome = Purchased
		}
		results[i].Entry = Entry{Book: s.books[id], Stock: left}
	}
	return results
}

// Len returns the number of stored books.
func (s *inMemory) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.books)
}

func byTitle(b Book) string  { return b.Title }
func byAuthor(b Book) string { return b.Author }

// match returns the ids whose field equals key (index lookup) or contains it (full scan).
// Must be called with the lock held.
func (s *inMemory) match(idx index, key string, partial bool, field func(Book) string) idSet {
	if !partial {
		return idx.lookup(key)
	}
	out := make(idSet)
	for id, book := range s.books {
		if strings.Contains(normalize(field(book)), key) {
			out[id] = struct{}{}
		}
	}
	return out
}

// entries copies the records for ids. Must be called with the lock held.
func (s *inMemory) entries(ids []int64) []Entry {
	list := make([]Entry, 0, len(ids))
	for _, id := range ids {
		list = append(list, Entry{Book: s.books[id], Stock: s.stock[id]})
	}
	return list
}
