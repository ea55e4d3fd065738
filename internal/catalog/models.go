package catalog

// Book is a single catalog entry. The ID is assigned by whoever loads the
// catalog and never changes; stock lives on the entry itself.
type Book struct {
	ID         int64
	Title      string
	Author     string
	PriceCents int64
	Quantity   int32
}

// Price returns the book's unit price as Money.
func (b Book) Price() Money { return Money{Cents: b.PriceCents} }

type Money struct{ Cents int64 }

func (m Money) Add(o Money) Money   { return Money{Cents: m.Cents + o.Cents} }
func (m Money) Mul(qty int32) Money { return Money{Cents: m.Cents * int64(qty)} }
