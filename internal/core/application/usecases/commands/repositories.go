// Package commands contains the write-side operations of the order core.
// Implements the Command pattern for state-changing operations in the CQRS
// architecture. All commands follow a consistent pattern: validation,
// transaction management, and persistence.
package commands

import (
	"context"

	"bookstore/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// UserRepoFactory provides access to the user repository within a transaction.
	UserRepoFactory interface {
		UserRepository() ports.UserRepository
	}

	// StoreRepoFactory provides access to the store repository within a transaction.
	StoreRepoFactory interface {
		StoreRepository() ports.StoreRepository
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// UserUoW manages transactions for account-only operations
	// (registration, top-ups).
	UserUoW interface {
		TxManager
		UserRepoFactory
	}

	// UserUoWFactory creates new account unit of work instances.
	UserUoWFactory interface {
		Create() UserUoW
	}

	// StoreUoW manages transactions for catalog operations. It carries the
	// user repository as well because store creation verifies the owner
	// account.
	StoreUoW interface {
		TxManager
		StoreRepoFactory
		UserRepoFactory
	}

	// StoreUoWFactory creates new catalog unit of work instances.
	StoreUoWFactory interface {
		Create() StoreUoW
	}

	// UoW manages transactions across the user, store, and order aggregates.
	// Every order lifecycle operation runs through it so stock movements,
	// balance movements, and the status change commit together or not at all.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   orderRepo := uow.OrderRepository()
	//   storeRepo := uow.StoreRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		UserRepoFactory
		StoreRepoFactory
		OrderRepoFactory
	}

	// UoWFactory creates new unit of work instances for lifecycle operations.
	UoWFactory interface {
		Create() UoW
	}
)
