// Package store provides the store and inventory entities of the bookstore
// order core.
//
// The package includes:
//   - Store: one seller's shop, immutable after creation, owner resolved at
//     settlement time
//   - StockEntry: a (store, book) catalog row with metadata blob, unit price,
//     and a floor-zero stock level
//
// The stock-level floor is enforced twice: here for in-memory transitions, and
// by the inventory repository with a guarded conditional decrement so that
// concurrent reservations can never jointly overdraw a stock entry.
package store
