package store_test

import (
	"testing"

	"bookstore/internal/core/domain/model/store"
	"bookstore/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const bookInfo = `{"title":"The Go Programming Language","price":100,"tags":["go"]}`

func newTestEntry(t *testing.T, stock int) *store.StockEntry {
	t.Helper()
	e, err := store.NewStockEntry("store_1", "book_a", bookInfo, stock)
	require.NoError(t, err)
	return e
}

func TestNewStockEntry(t *testing.T) {
	t.Run("price is read from the metadata blob", func(t *testing.T) {
		e := newTestEntry(t, 5)

		assert.Equal(t, int64(100), e.Price())
		assert.Equal(t, 5, e.StockLevel())
		assert.Equal(t, bookInfo, e.BookInfo())
	})

	t.Run("malformed blob is rejected", func(t *testing.T) {
		_, err := store.NewStockEntry("store_1", "book_a", "{not json", 5)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("negative stock is rejected", func(t *testing.T) {
		_, err := store.NewStockEntry("store_1", "book_a", bookInfo, -1)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var e store.StockEntry
		require.ErrorIs(t, e.Validate(), store.ErrStockEntryIsNotConstructed)
	})
}

func TestRestoreStockEntry(t *testing.T) {
	e, err := store.RestoreStockEntry("store_1", "book_a", bookInfo, 100, 7)

	require.NoError(t, err)
	assert.Equal(t, int64(100), e.Price())
	assert.Equal(t, 7, e.StockLevel())
	require.NoError(t, e.Validate())
}
