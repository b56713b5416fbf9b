// Package ports defines the contracts between the order core and its
// infrastructure: repositories, the unit of work, and the identity service.
// These interfaces enable dependency inversion and testability.
package ports

import (
	"context"

	"bookstore/internal/core/domain/model/user"
)

// UserRepository is the persistence and ledger contract for user accounts.
// Besides aggregate storage it exposes the two atomic balance movements of the
// order core: top-ups and buyer/seller settlement transfers.
type UserRepository interface {
	// Add persists a new account. Fails with a conflict error when the id is taken.
	Add(ctx context.Context, aggregate *user.User) error

	// Update persists changes to an existing account.
	Update(ctx context.Context, aggregate *user.User) error

	// Get retrieves an account by its identifier.
	Get(ctx context.Context, id string) (*user.User, error)

	// Exists reports whether an account with the given id is registered.
	Exists(ctx context.Context, id string) (bool, error)

	// Credit atomically adds a non-negative amount to an account's balance.
	Credit(ctx context.Context, id string, amount int64) error

	// Transfer atomically moves amount from one account to another. The debit
	// is guarded by a balance check in the same statement: when funds are
	// short nothing is mutated and an insufficient-funds error is returned.
	// Money is conserved: the debit and credit happen in the same transaction.
	Transfer(ctx context.Context, fromID, toID string, amount int64) error
}
