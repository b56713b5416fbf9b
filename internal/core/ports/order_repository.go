package ports

import (
	"context"

	"bookstore/internal/core/domain/model/kernel"
	"bookstore/internal/core/domain/model/order"
)

// OrderRepository is the persistence contract for order aggregates and their
// lines.
type OrderRepository interface {
	// Add persists a new order together with all of its lines.
	// Fails with a conflict error when the order id is taken.
	Add(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order with its lines.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// Update persists an order's status and settled total, compare-and-set
	// guarded on expectedStatus: the row is only written when its stored
	// status still equals expectedStatus. A lost race surfaces as an
	// invalid-order-status error, which is the guard against concurrent
	// conflicting transitions (a Pay racing a Cancel, the sweep racing a Pay).
	Update(ctx context.Context, aggregate *order.Order, expectedStatus order.Status) error

	// DeleteLines removes all lines of an order. Called exactly once, when the
	// order terminally settles.
	DeleteLines(ctx context.Context, id kernel.UUID) error

	// GetAllByUser retrieves all orders a buyer has placed, newest first.
	GetAllByUser(ctx context.Context, userID string) ([]*order.Order, error)

	// GetAllInStatus retrieves all orders currently in the given status.
	// The overtime sweep uses it to find unpaid orders.
	GetAllInStatus(ctx context.Context, status order.Status) ([]*order.Order, error)
}
