package order

import (
	"github.com/kani-ahmed/Simple-Online-Book-Store/internal/cart"
	"github.com/kani-ahmed/Simple-Online-Book-Store/internal/catalog"
)

// Order is a point-in-time snapshot of a cart. Books and TotalCents are
// fixed at construction; stock is only checked and taken at checkout.
type Order struct {
	ID         int64
	Books      map[int64]int32
	TotalCents int64
	Status     Status
}

// NewOrder snapshots the cart's lines and prices them at current catalog
// prices. The total is not re-priced at checkout. A line whose book has
// left the catalog contributes nothing to the total and will fail checkout
// validation instead.
func NewOrder(id int64, c *cart.Cart, cat *catalog.Catalog) *Order {
	books := c.Snapshot()
	var total int64
	for bookID, qty := range books {
		if b, ok := cat.Get(bookID); ok {
			total += b.PriceCents * int64(qty)
		}
	}
	return &Order{
		ID:         id,
		Books:      books,
		TotalCents: total,
		Status:     StatusNew,
	}
}
