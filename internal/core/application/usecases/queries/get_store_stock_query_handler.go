package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetStoreStockQueryHandler reads a store's catalog rows straight from the
// database.
type GetStoreStockQueryHandler struct {
	db *gorm.DB
}

// NewGetStoreStockQueryHandler creates a handler for store catalog queries.
func NewGetStoreStockQueryHandler(db *gorm.DB) GetStoreStockQueryHandler {
	return GetStoreStockQueryHandler{db: db}
}

// Handle executes the catalog query, sorted by book id for consistent output.
func (h GetStoreStockQueryHandler) Handle(
	ctx context.Context,
	query GetStoreStockQuery,
) ([]GetStoreStockQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	catalog := make([]GetStoreStockQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			book_id,
			book_info,
			price,
			stock_level
		FROM stock_entries
		WHERE store_id = ?
		ORDER BY book_id
	`, query.StoreID()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var row GetStoreStockQueryResponse
		if err = rows.Scan(&row.BookID, &row.BookInfo, &row.Price, &row.StockLevel); err != nil {
			return nil, err
		}
		catalog = append(catalog, row)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return catalog, nil
}
