// Checkout and post-checkout order lifecycle.
package order

import (
	"cmp"
	"errors"
	"fmt"
	"maps"
	"slices"

	"github.com/rs/zerolog"

	"github.com/kani-ahmed/Simple-Online-Book-Store/internal/catalog"
)

var (
	ErrOrderNotFound     = errors.New("order not found")
	ErrDuplicateOrder    = errors.New("order already placed")
	ErrInvalidTransition = errors.New("invalid status transition")
)

const (
	unknownTitle  = "Unknown Title"
	unknownAuthor = "Unknown Author"
)

// Service runs checkout against a catalog and records the result in a
// ledger. Pass zerolog.Nop() when log output is not wanted.
type Service struct {
	catalog *catalog.Catalog
	ledger  *Ledger
	log     zerolog.Logger
}

func NewService(cat *catalog.Catalog, ledger *Ledger, log zerolog.Logger) *Service {
	return &Service{catalog: cat, ledger: ledger, log: log}
}

// Checkout validates the whole order against current stock, then commits
// the stock decrement and registers the order in the ledger. Validation is
// all-or-nothing: the first failing line aborts with no mutation. The two
// phases assume a single actor in between; there is no reservation.
func (s *Service) Checkout(o *Order) error {
	if _, ok := s.ledger.Get(o.ID); ok {
		return fmt.Errorf("order %d: %w", o.ID, ErrDuplicateOrder)
	}
	for id, qty := range o.Books {
		b, ok := s.catalog.Get(id)
		if !ok || b.Quantity < qty {
			return fmt.Errorf("checkout of order %d failed on book %d: %w", o.ID, id, catalog.ErrInsufficientStock)
		}
	}
	for id, qty := range o.Books {
		if err := s.catalog.DecreaseQuantity(id, qty); err != nil {
			// unreachable while the validate phase holds
			return fmt.Errorf("commit of order %d: %w", o.ID, err)
		}
	}
	s.ledger.Put(o.ID, &Record{
		Books:      maps.Clone(o.Books),
		TotalCents: o.TotalCents,
		Status:     o.Status,
	})
	s.log.Info().
		Int64("order_id", o.ID).
		Int64("total_cents", o.TotalCents).
		Int("lines", len(o.Books)).
		Msg("order placed")
	return nil
}

// UpdateStatus moves a ledger entry along the transition table. Moving to
// Cancelled restocks the catalog by each line's quantity; the current-status
// guard keeps a repeated cancel from restocking twice even though the table
// already makes Cancelled terminal.
func (s *Service) UpdateStatus(orderID int64, next Status) error {
	rec, ok := s.ledger.Get(orderID)
	if !ok {
		return fmt.Errorf("order %d: %w", orderID, ErrOrderNotFound)
	}
	if !next.Valid() {
		return fmt.Errorf("%q: %w", next, ErrUnknownStatus)
	}
	if !CanTransition(rec.Status, next) {
		return fmt.Errorf("order %d: %s to %s: %w", orderID, rec.Status, next, ErrInvalidTransition)
	}
	if next == StatusCancelled && rec.Status != StatusCancelled {
		for id, qty := range rec.Books {
			if err := s.catalog.IncreaseQuantity(id, qty); err != nil {
				// the book left the catalog after checkout; nothing to
				// restock onto, surface it and keep going
				s.log.Error().Err(err).
					Int64("order_id", orderID).
					Int64("book_id", id).
					Msg("cancellation restock failed")
			}
		}
	}
	s.log.Info().
		Int64("order_id", orderID).
		Str("from", rec.Status.String()).
		Str("to", next.String()).
		Msg("order status updated")
	rec.Status = next
	return nil
}

// Status looks up the current status of a ledger entry.
func (s *Service) Status(orderID int64) (Status, error) {
	rec, ok := s.ledger.Get(orderID)
	if !ok {
		return "", fmt.Errorf("order %d: %w", orderID, ErrOrderNotFound)
	}
	return rec.Status, nil
}

// View is a display projection of one ledger entry, joined against current
// catalog metadata.
type View struct {
	OrderID    int64
	Lines      []Line
	TotalCents int64
	Status     Status
}

type Line struct {
	BookID     int64
	Title      string
	Author     string
	PriceCents int64
	Qty        int32
}

// View projects a single order for display. Books that have since left the
// catalog render with placeholder metadata and price 0 rather than failing.
func (s *Service) View(orderID int64) (View, error) {
	rec, ok := s.ledger.Get(orderID)
	if !ok {
		return View{}, fmt.Errorf("order %d: %w", orderID, ErrOrderNotFound)
	}
	return s.project(orderID, rec), nil
}

// Views projects every ledger entry, sorted by order ID for display.
func (s *Service) Views() []View {
	out := make([]View, 0, s.ledger.Len())
	for id, rec := range s.ledger.records {
		out = append(out, s.project(id, rec))
	}
	slices.SortFunc(out, func(a, b View) int {
		return cmp.Compare(a.OrderID, b.OrderID)
	})
	return out
}

func (s *Service) project(orderID int64, rec *Record) View {
	v := View{
		OrderID:    orderID,
		TotalCents: rec.TotalCents,
		Status:     rec.Status,
	}
	for bookID, qty := range rec.Books {
		line := Line{
			BookID: bookID,
			Title:  unknownTitle,
			Author: unknownAuthor,
			Qty:    qty,
		}
		if b, ok := s.catalog.Get(bookID); ok {
			line.Title = b.Title
			line.Author = b.Author
			line.PriceCents = b.PriceCents
		}
		v.Lines = append(v.Lines, line)
	}
	slices.SortFunc(v.Lines, func(a, b Line) int {
		return cmp.Compare(a.BookID, b.BookID)
	})
	return v
}
