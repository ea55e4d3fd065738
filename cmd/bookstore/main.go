// bookstore walks the whole transaction flow once: seed the catalog, fill a
// cart, check out an order and push it through its status lifecycle.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/kani-ahmed/Simple-Online-Book-Store/internal/cart"
	"github.com/kani-ahmed/Simple-Online-Book-Store/internal/catalog"
	"github.com/kani-ahmed/Simple-Online-Book-Store/internal/order"
)

func main() {
	cfg, err := LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("config")
	}

	// Logger
	zerolog.TimeFieldFormat = time.RFC3339
	if cfg.LogPretty {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout})
	}
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	must(err)
	zerolog.SetGlobalLevel(level)

	cat := catalog.New()
	if cfg.SeedOnStart {
		must(seed(cat))
		log.Info().Int("books", cat.Len()).Msg("seeded catalog")
	}
	printInventory(cat)

	// Fill a cart against the catalog
	ct := cart.New(cat)
	must(ct.AddItem(1, 2))
	must(ct.AddItem(2, 1))
	log.Info().Str("cart_id", ct.ID.String()).Msg("cart ready")
	printCart(ct)

	// Checkout
	ledger := order.NewLedger()
	svc := order.NewService(cat, ledger, log.Logger)
	o := order.NewOrder(1, ct, cat)
	must(svc.Checkout(o))
	printOrders(svc)

	// Lifecycle: New -> Processed -> Shipped
	must(svc.UpdateStatus(o.ID, order.StatusProcessed))
	printOrders(svc)
	must(svc.UpdateStatus(o.ID, order.StatusShipped))
	printOrders(svc)

	// Shipped is terminal, a late cancel is rejected and stock stays put
	if err := svc.UpdateStatus(o.ID, order.StatusCancelled); err != nil {
		log.Warn().Err(err).Msg("cancel after shipping rejected")
	}
	printInventory(cat)
}

func seed(cat *catalog.Catalog) error {
	books := []catalog.Book{
		{ID: 1, Title: "first book", Author: "Ali", PriceCents: 10000, Quantity: 5},
		{ID: 2, Title: "second book", Author: "Abdikani", PriceCents: 10000, Quantity: 3},
	}
	for _, b := range books {
		if err := cat.Add(b); err != nil {
			return err
		}
	}
	return nil
}

func printInventory(cat *catalog.Catalog) {
	for _, b := range cat.List() {
		log.Info().
			Int64("id", b.ID).
			Str("title", b.Title).
			Str("author", b.Author).
			Str("price", dollars(b.Price())).
			Int32("qty", b.Quantity).
			Msg("inventory")
	}
}

func printCart(ct *cart.Cart) {
	for it := range ct.Items() {
		log.Info().
			Int64("book_id", it.Book.ID).
			Str("title", it.Book.Title).
			Str("price", dollars(it.Book.Price())).
			Int32("qty", it.Qty).
			Str("line_total", dollars(it.LineTotal())).
			Msg("cart item")
	}
	log.Info().Str("total", dollars(ct.Total())).Msg("cart total")
}

func printOrders(svc *order.Service) {
	for _, v := range svc.Views() {
		for _, line := range v.Lines {
			log.Info().
				Int64("order_id", v.OrderID).
				Int64("book_id", line.BookID).
				Str("title", line.Title).
				Str("author", line.Author).
				Str("price", dollars(catalog.Money{Cents: line.PriceCents})).
				Int32("qty", line.Qty).
				Msg("order line")
		}
		log.Info().
			Int64("order_id", v.OrderID).
			Str("total", dollars(catalog.Money{Cents: v.TotalCents})).
			Str("status", v.Status.String()).
			Msg("order")
	}
}

func dollars(m catalog.Money) string {
	return fmt.Sprintf("$%d.%02d", m.Cents/100, m.Cents%100)
}

func must(err error) {
	if err != nil {
		log.Fatal().Err(err).Msg("fatal")
	}
}
