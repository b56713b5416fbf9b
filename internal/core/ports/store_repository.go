package ports

import (
	"context"

	"bookstore/internal/core/domain/model/store"
)

// StoreRepository is the persistence and inventory contract for stores and
// their stock entries. Stock movements are atomic per (store, book) key.
type StoreRepository interface {
	// Add persists a new store. Fails with a conflict error when the id is taken.
	Add(ctx context.Context, aggregate *store.Store) error

	// Get retrieves a store by its identifier. Settlement uses it to resolve
	// the seller account behind an order's store.
	Get(ctx context.Context, id string) (*store.Store, error)

	// Exists reports whether a store with the given id exists.
	Exists(ctx context.Context, id string) (bool, error)

	// AddStockEntry lists a book in a store. Fails with a conflict error when
	// the (store, book) pair is already listed.
	AddStockEntry(ctx context.Context, entry *store.StockEntry) error

	// GetStockEntry retrieves one (store, book) catalog row.
	GetStockEntry(ctx context.Context, storeID, bookID string) (*store.StockEntry, error)

	// ReserveStock atomically decrements a stock level. The decrement carries
	// a stock_level >= count guard in the same statement, so two concurrent
	// reservations can never jointly overdraw the entry below zero.
	ReserveStock(ctx context.Context, storeID, bookID string, count int) error

	// ReleaseStock atomically increments a stock level. Called by compensating
	// paths (cancellation) and by explicit seller restocks; always safe.
	ReleaseStock(ctx context.Context, storeID, bookID string, count int) error
}
