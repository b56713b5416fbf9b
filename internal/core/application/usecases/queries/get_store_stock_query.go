package queries

import (
	"errors"

	"bookstore/internal/pkg/errs"
	"bookstore/internal/pkg/guard"
)

var ErrGetStoreStockQueryIsNotConstructed = errors.New(
	"GetStoreStockQuery must be created via NewGetStoreStockQuery constructor",
)

// GetStoreStockQuery retrieves the catalog of one store with current stock
// levels and prices.
type GetStoreStockQuery struct { //nolint:recvcheck //using for validation
	storeID string

	guard guard.ConstructorGuard
}

// NewGetStoreStockQuery creates a query for one store's catalog.
func NewGetStoreStockQuery(storeID string) (GetStoreStockQuery, error) {
	query := GetStoreStockQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setStoreID(storeID); err != nil {
		return GetStoreStockQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetStoreStockQuery) Validate() error {
	return q.guard.Validate(ErrGetStoreStockQueryIsNotConstructed)
}

// StoreID returns the store whose catalog is requested.
func (q GetStoreStockQuery) StoreID() string {
	return q.storeID
}

func (q *GetStoreStockQuery) setStoreID(storeID string) error {
	if storeID == "" {
		return errs.NewValueIsRequiredError("storeId")
	}

	q.storeID = storeID
	return nil
}

// GetStoreStockQueryResponse is one catalog row of the store.
type GetStoreStockQueryResponse struct {
	BookID     string
	BookInfo   string
	Price      int64
	StockLevel int
}
