// In-memory book store. All stock mutation goes through here.
package catalog

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
)

var (
	ErrNotFound          = errors.New("book not found")
	ErrAlreadyExists     = errors.New("book already exists")
	ErrInvalidBook       = errors.New("book price must be positive and quantity non-negative")
	ErrInvalidQuantity   = errors.New("quantity must be greater than 0")
	ErrInsufficientStock = errors.New("insufficient stock")
)

// Catalog is the authoritative mapping of book ID to book record and stock.
// Every entry satisfies PriceCents > 0 and Quantity >= 0 at all times.
// Single actor, no locking.
type Catalog struct {
	books map[int64]Book
}

func New() *Catalog {
	return &Catalog{books: make(map[int64]Book)}
}

// Add inserts a new book. Existing IDs are not updated in place; callers
// that want to replace an entry remove it first.
func (c *Catalog) Add(b Book) error {
	if _, ok := c.books[b.ID]; ok {
		return fmt.Errorf("book %d: %w", b.ID, ErrAlreadyExists)
	}
	if b.PriceCents <= 0 || b.Quantity < 0 {
		return fmt.Errorf("book %d: %w", b.ID, ErrInvalidBook)
	}
	c.books[b.ID] = b
	return nil
}

func (c *Catalog) Remove(id int64) error {
	if _, ok := c.books[id]; !ok {
		return fmt.Errorf("book %d: %w", id, ErrNotFound)
	}
	delete(c.books, id)
	return nil
}

// DecreaseQuantity subtracts qty units of stock in place.
func (c *Catalog) DecreaseQuantity(id int64, qty int32) error {
	if qty <= 0 {
		return fmt.Errorf("book %d: %w", id, ErrInvalidQuantity)
	}
	b, ok := c.books[id]
	if !ok {
		return fmt.Errorf("book %d: %w", id, ErrNotFound)
	}
	if qty > b.Quantity {
		return fmt.Errorf("book %d: %d in stock, %d requested: %w", id, b.Quantity, qty, ErrInsufficientStock)
	}
	b.Quantity -= qty
	c.books[id] = b
	return nil
}

// DecrementQuantity subtracts a single unit.
func (c *Catalog) DecrementQuantity(id int64) error {
	return c.DecreaseQuantity(id, 1)
}

// IncreaseQuantity restores qty units of stock. It backs cancellation
// restock, whose line items came from this catalog in the first place; an
// absent ID here means order and catalog state have diverged, reported as a
// wrapped ErrNotFound rather than a panic.
func (c *Catalog) IncreaseQuantity(id int64, qty int32) error {
	if qty <= 0 {
		return fmt.Errorf("book %d: %w", id, ErrInvalidQuantity)
	}
	b, ok := c.books[id]
	if !ok {
		return fmt.Errorf("restock of book %d not in catalog: %w", id, ErrNotFound)
	}
	b.Quantity += qty
	c.books[id] = b
	return nil
}

// Get returns a copy of the entry; mutating it does not touch the catalog.
func (c *Catalog) Get(id int64) (Book, bool) {
	b, ok := c.books[id]
	return b, ok
}

// List returns a copied view of all entries, sorted by ID for display.
func (c *Catalog) List() []Book {
	out := make([]Book, 0, len(c.books))
	for _, b := range c.books {
		out = append(out, b)
	}
	slices.SortFunc(out, func(a, b Book) int {
		return cmp.Compare(a.ID, b.ID)
	})
	return out
}

func (c *Catalog) Len() int { return len(c.books) }
