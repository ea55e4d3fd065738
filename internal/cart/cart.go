// Shopping cart operations.
package cart

import (
	"errors"
	"fmt"
	"iter"
	"maps"

	"github.com/google/uuid"

	"github.com/kani-ahmed/Simple-Online-Book-Store/internal/catalog"
)

var (
	ErrNotInCart    = errors.New("book not in cart")
	ErrNotAvailable = errors.New("book not available")
)

// Cart stages requested purchases against a catalog. Additions are checked
// against stock at add time but nothing is reserved; checkout re-validates
// against whatever the catalog holds then.
type Cart struct {
	ID      uuid.UUID
	catalog *catalog.Catalog
	items   map[int64]int32 // book ID -> requested qty, entries always > 0
}

func New(cat *catalog.Catalog) *Cart {
	return &Cart{
		ID:      uuid.New(),
		catalog: cat,
		items:   make(map[int64]int32),
	}
}

// AddItem puts qty copies of a book into the cart, accumulating across
// repeated calls for the same ID. Each call checks its own requested
// quantity against current stock, not the accumulated cart line.
func (c *Cart) AddItem(id int64, qty int32) error {
	if qty <= 0 {
		return fmt.Errorf("book %d: %w", id, catalog.ErrInvalidQuantity)
	}
	b, ok := c.catalog.Get(id)
	if !ok || b.Quantity == 0 {
		return fmt.Errorf("book %d: %w", id, ErrNotAvailable)
	}
	if qty > b.Quantity {
		return fmt.Errorf("book %d: %d in stock, %d requested: %w", id, b.Quantity, qty, catalog.ErrInsufficientStock)
	}
	c.items[id] += qty
	return nil
}

func (c *Cart) RemoveItem(id int64) error {
	if _, ok := c.items[id]; !ok {
		return fmt.Errorf("book %d: %w", id, ErrNotInCart)
	}
	delete(c.items, id)
	return nil
}

// DecrementItem takes one copy off a line; the last copy removes the line
// entirely, a zero-quantity entry is never stored.
func (c *Cart) DecrementItem(id int64) error {
	qty, ok := c.items[id]
	if !ok {
		return fmt.Errorf("book %d: %w", id, ErrNotInCart)
	}
	if qty > 1 {
		c.items[id] = qty - 1
		return nil
	}
	delete(c.items, id)
	return nil
}

// Total prices the cart at current catalog prices, so the result can move
// between calls if the catalog changes. Lines whose book has left the
// catalog are skipped, same as Items.
func (c *Cart) Total() catalog.Money {
	var total catalog.Money
	for id, qty := range c.items {
		if b, ok := c.catalog.Get(id); ok {
			total = total.Add(b.Price().Mul(qty))
		}
	}
	return total
}

// Items yields the cart lines joined against the live catalog, in no
// particular order, skipping books no longer present.
func (c *Cart) Items() iter.Seq[Item] {
	return func(yield func(Item) bool) {
		for id, qty := range c.items {
			b, ok := c.catalog.Get(id)
			if !ok {
				continue
			}
			if !yield(Item{Book: b, Qty: qty}) {
				return
			}
		}
	}
}

// Snapshot copies every (book ID, quantity) line, including lines whose book
// has since left the catalog. Order construction snapshots through here.
func (c *Cart) Snapshot() map[int64]int32 {
	return maps.Clone(c.items)
}

func (c *Cart) Len() int { return len(c.items) }

// Quantity reports the staged quantity for a book, zero when absent.
func (c *Cart) Quantity(id int64) int32 { return c.items[id] }
