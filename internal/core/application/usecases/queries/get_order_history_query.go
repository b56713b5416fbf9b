// Package queries contains the read-side operations of the order core.
// Query handlers bypass the domain model and read projection rows straight
// from the database (CQRS, raw SQL over gorm).
package queries

import (
	"errors"
	"time"

	"bookstore/internal/core/domain/model/kernel"
	"bookstore/internal/pkg/errs"
	"bookstore/internal/pkg/guard"
)

var ErrGetOrderHistoryQueryIsNotConstructed = errors.New(
	"GetOrderHistoryQuery must be created via NewGetOrderHistoryQuery constructor",
)

// GetOrderHistoryQuery retrieves all orders a buyer has placed, newest first,
// with the lines still attached to unsettled orders.
//
// Example:
//
//	query, _ := NewGetOrderHistoryQuery("alice")
//	handler := NewGetOrderHistoryQueryHandler(db)
//
//	history, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get order history: %w", err)
//	}
//	for _, order := range history {
//	    fmt.Printf("%s %s total=%d\n", order.ID, order.Status, order.TotalPrice)
//	}
type GetOrderHistoryQuery struct { //nolint:recvcheck //using for validation
	userID string

	guard guard.ConstructorGuard
}

// NewGetOrderHistoryQuery creates a query for one buyer's order history.
func NewGetOrderHistoryQuery(userID string) (GetOrderHistoryQuery, error) {
	query := GetOrderHistoryQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setUserID(userID); err != nil {
		return GetOrderHistoryQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderHistoryQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderHistoryQueryIsNotConstructed)
}

// UserID returns the buyer whose history is requested.
func (q GetOrderHistoryQuery) UserID() string {
	return q.userID
}

func (q *GetOrderHistoryQuery) setUserID(userID string) error {
	if userID == "" {
		return errs.NewValueIsRequiredError("userId")
	}

	q.userID = userID
	return nil
}

// OrderHistoryLineResponse is one line of a history entry.
type OrderHistoryLineResponse struct {
	BookID string
	Count  int
	Price  int64
}

// GetOrderHistoryQueryResponse is one order of the buyer's history. Lines are
// empty for terminally settled orders.
type GetOrderHistoryQueryResponse struct {
	ID         kernel.UUID
	StoreID    string
	Status     string
	TotalPrice int64
	CreatedAt  time.Time
	Lines      []OrderHistoryLineResponse
}
