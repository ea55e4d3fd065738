package cart

import "github.com/kani-ahmed/Simple-Online-Book-Store/internal/catalog"

// Item is a cart line joined against the current catalog entry.
type Item struct {
	Book catalog.Book
	Qty  int32
}

// LineTotal prices the line at the catalog price carried by the join.
func (it Item) LineTotal() catalog.Money {
	return it.Book.Price().Mul(it.Qty)
}
