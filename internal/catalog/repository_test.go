package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kani-ahmed/Simple-Online-Book-Store/internal/catalog"
)

func book(id int64, price int64, qty int32) catalog.Book {
	return catalog.Book{ID: id, Title: "title", Author: "author", PriceCents: price, Quantity: qty}
}

func TestCatalog_Add(t *testing.T) {
	t.Parallel()

	t.Run("inserts a valid book", func(t *testing.T) {
		t.Parallel()
		cat := catalog.New()

		require.NoError(t, cat.Add(book(1, 100, 5)))

		got, ok := cat.Get(1)
		require.True(t, ok)
		assert.Equal(t, int32(5), got.Quantity)
		assert.Equal(t, int64(100), got.PriceCents)
	})

	t.Run("rejects a duplicate ID without touching the entry", func(t *testing.T) {
		t.Parallel()
		cat := catalog.New()
		require.NoError(t, cat.Add(book(1, 100, 5)))

		err := cat.Add(book(1, 999, 1))
		require.ErrorIs(t, err, catalog.ErrAlreadyExists)

		got, ok := cat.Get(1)
		require.True(t, ok)
		assert.Equal(t, int64(100), got.PriceCents)
	})

	t.Run("rejects non-positive price", func(t *testing.T) {
		t.Parallel()
		cat := catalog.New()

		require.ErrorIs(t, cat.Add(book(1, 0, 5)), catalog.ErrInvalidBook)
		require.ErrorIs(t, cat.Add(book(1, -100, 5)), catalog.ErrInvalidBook)
		assert.Zero(t, cat.Len())
	})

	t.Run("rejects negative quantity, allows zero", func(t *testing.T) {
		t.Parallel()
		cat := catalog.New()

		require.ErrorIs(t, cat.Add(book(1, 100, -1)), catalog.ErrInvalidBook)
		require.NoError(t, cat.Add(book(1, 100, 0)))
	})
}

func TestCatalog_Remove(t *testing.T) {
	t.Parallel()

	t.Run("deletes an existing entry", func(t *testing.T) {
		t.Parallel()
		cat := catalog.New()
		require.NoError(t, cat.Add(book(1, 100, 5)))

		require.NoError(t, cat.Remove(1))
		_, ok := cat.Get(1)
		assert.False(t, ok)
	})

	t.Run("second remove reports not found and changes nothing", func(t *testing.T) {
		t.Parallel()
		cat := catalog.New()
		require.NoError(t, cat.Add(book(1, 100, 5)))
		require.NoError(t, cat.Add(book(2, 100, 3)))

		require.NoError(t, cat.Remove(1))
		require.ErrorIs(t, cat.Remove(1), catalog.ErrNotFound)
		assert.Equal(t, 1, cat.Len())
	})
}

func TestCatalog_DecreaseQuantity(t *testing.T) {
	t.Parallel()

	t.Run("subtracts in place", func(t *testing.T) {
		t.Parallel()
		cat := catalog.New()
		require.NoError(t, cat.Add(book(1, 100, 5)))

		require.NoError(t, cat.DecreaseQuantity(1, 3))

		got, _ := cat.Get(1)
		assert.Equal(t, int32(2), got.Quantity)
	})

	t.Run("can drain stock to exactly zero", func(t *testing.T) {
		t.Parallel()
		cat := catalog.New()
		require.NoError(t, cat.Add(book(1, 100, 5)))

		require.NoError(t, cat.DecreaseQuantity(1, 5))

		got, _ := cat.Get(1)
		assert.Equal(t, int32(0), got.Quantity)
	})

	t.Run("rejects more than in stock", func(t *testing.T) {
		t.Parallel()
		cat := catalog.New()
		require.NoError(t, cat.Add(book(1, 100, 5)))

		require.ErrorIs(t, cat.DecreaseQuantity(1, 6), catalog.ErrInsufficientStock)

		got, _ := cat.Get(1)
		assert.Equal(t, int32(5), got.Quantity)
	})

	t.Run("rejects unknown book", func(t *testing.T) {
		t.Parallel()
		cat := catalog.New()

		require.ErrorIs(t, cat.DecreaseQuantity(99, 1), catalog.ErrNotFound)
	})

	t.Run("rejects non-positive amount", func(t *testing.T) {
		t.Parallel()
		cat := catalog.New()
		require.NoError(t, cat.Add(book(1, 100, 5)))

		require.ErrorIs(t, cat.DecreaseQuantity(1, 0), catalog.ErrInvalidQuantity)
		require.ErrorIs(t, cat.DecreaseQuantity(1, -2), catalog.ErrInvalidQuantity)
	})
}

func TestCatalog_DecrementQuantity(t *testing.T) {
	t.Parallel()

	cat := catalog.New()
	require.NoError(t, cat.Add(book(1, 100, 2)))

	require.NoError(t, cat.DecrementQuantity(1))
	require.NoError(t, cat.DecrementQuantity(1))
	require.ErrorIs(t, cat.DecrementQuantity(1), catalog.ErrInsufficientStock)

	got, _ := cat.Get(1)
	assert.Equal(t, int32(0), got.Quantity)
}

func TestCatalog_IncreaseQuantity(t *testing.T) {
	t.Parallel()

	t.Run("adds to current stock", func(t *testing.T) {
		t.Parallel()
		cat := catalog.New()
		require.NoError(t, cat.Add(book(1, 100, 2)))

		require.NoError(t, cat.IncreaseQuantity(1, 3))

		got, _ := cat.Get(1)
		assert.Equal(t, int32(5), got.Quantity)
	})

	t.Run("absent book reports not found", func(t *testing.T) {
		t.Parallel()
		cat := catalog.New()

		require.ErrorIs(t, cat.IncreaseQuantity(99, 1), catalog.ErrNotFound)
	})
}

func TestCatalog_List(t *testing.T) {
	t.Parallel()

	cat := catalog.New()
	require.NoError(t, cat.Add(book(2, 100, 3)))
	require.NoError(t, cat.Add(book(1, 100, 5)))

	list := cat.List()
	require.Len(t, list, 2)
	assert.Equal(t, int64(1), list[0].ID)
	assert.Equal(t, int64(2), list[1].ID)

	// the view is a copy
	list[0].Quantity = 0
	got, _ := cat.Get(1)
	assert.Equal(t, int32(5), got.Quantity)
}

func TestMoney(t *testing.T) {
	t.Parallel()

	m := catalog.Money{Cents: 150}
	assert.Equal(t, catalog.Money{Cents: 450}, m.Mul(3))
	assert.Equal(t, catalog.Money{Cents: 600}, m.Mul(3).Add(m.Add(m)))
}
