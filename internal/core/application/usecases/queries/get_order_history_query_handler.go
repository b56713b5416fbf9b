package queries

import (
	"context"

	"bookstore/internal/core/domain/model/kernel"
	"bookstore/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderHistoryQueryHandler reads a buyer's orders and their lines straight
// from the database.
type GetOrderHistoryQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderHistoryQueryHandler creates a handler for order history queries.
// Requires a GORM database connection for query execution.
func NewGetOrderHistoryQueryHandler(db *gorm.DB) GetOrderHistoryQueryHandler {
	return GetOrderHistoryQueryHandler{db: db}
}

// Handle executes the history query. Orders come back newest first; lines of
// settled orders have been removed and come back empty.
func (h GetOrderHistoryQueryHandler) Handle(
	ctx context.Context,
	query GetOrderHistoryQuery,
) ([]GetOrderHistoryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	history := make([]GetOrderHistoryQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			store_id,
			status,
			total_price,
			created_at
		FROM orders
		WHERE buyer_id = ?
		ORDER BY created_at DESC
	`, query.UserID()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var entry GetOrderHistoryQueryResponse
		var id uuid.UUID
		var status int

		err = rows.Scan(
			&id,
			&entry.StoreID,
			&status,
			&entry.TotalPrice,
			&entry.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		entry.ID = orderID
		entry.Status = order.Status(status).String()

		history = append(history, entry)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	for i := range history {
		lines, linesErr := h.linesFor(ctx, history[i].ID)
		if linesErr != nil {
			return nil, linesErr
		}
		history[i].Lines = lines
	}

	return history, nil
}

func (h GetOrderHistoryQueryHandler) linesFor(ctx context.Context, orderID kernel.UUID) ([]OrderHistoryLineResponse, error) {
	lines := make([]OrderHistoryLineResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			book_id,
			count,
			price
		FROM order_lines
		WHERE order_id = ?
		ORDER BY book_id
	`, orderID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var line OrderHistoryLineResponse
		if err = rows.Scan(&line.BookID, &line.Count, &line.Price); err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return lines, nil
}
