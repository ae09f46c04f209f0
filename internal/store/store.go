// Package store holds the inventory engine: book records, the stock ledger and the title and author indices.
package store

// BookStore defines the inventory operations.
// Implementations must be safe for concurrent use.
type BookStore interface {
	// Add stores a book with the given amount of stock. If a book with the same
	// title, author (both case-insensitive) and price exists, its stock is increased instead.
	// Returns the resulting entry and whether a new record was created.
	// Returns ErrNegativeAmount if amount is negative and ErrStockOverflow if the merged
	// stock would not fit in an int; the store is left unchanged in both cases.
	Add(book Book, amount int) (Entry, bool, error)

	// Get returns a single entry.
	// Returns ErrBookNotFound if no book exists with the given ID.
	Get(id int64) (Entry, error)

	// List returns every stored entry in insertion order.
	List() []Entry

	// Search returns the entries matching the criteria in insertion order.
	// Criteria without filters match every entry. Malformed queries are rejected
	// earlier by ParseCriteria.
	Search(criteria Criteria) []Entry

	// Buy decrements the stock of each id by one, in order, and reports a result per id.
	// Items are independent: a failed item does not undo earlier purchases.
	Buy(ids []int64) []BuyResult

	// Len returns the number of stored books.
	Len() int
}
