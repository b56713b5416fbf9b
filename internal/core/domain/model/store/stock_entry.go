package store

import (
	"encoding/json"
	"errors"
	"fmt"

	"bookstore/internal/pkg/errs"
)

var (
	// ErrStockEntryIsNotConstructed is returned when a StockEntry instance was
	// not created through NewStockEntry or RestoreStockEntry.
	ErrStockEntryIsNotConstructed = errors.New("StockEntry must be created via NewStockEntry constructor")
)

// StockEntry is one (store, book) catalog row: the book metadata blob, the
// unit price lifted out of that blob at listing time, and the stock level.
// Stock movements happen as guarded single-statement updates in the
// repository, so the aggregate carries the level read-only.
//
// Invariants:
//   - stock level is never negative; reservations are guarded by an
//     availability check in the same statement
//   - price is non-negative and fixed until the book is re-listed
type StockEntry struct {
	storeID  string
	bookID   string
	bookInfo string
	price    int64
	stock    int

	isConstructed bool
}

// bookInfoPrice is the slice of the metadata blob the order core cares about.
// The rest of the blob (title, tags, intro) belongs to the catalog service.
type bookInfoPrice struct {
	Price int64 `json:"price"`
}

// NewStockEntry lists a book in a store. The unit price is read from the
// "price" field of the metadata JSON blob.
func NewStockEntry(storeID, bookID, bookInfo string, stock int) (*StockEntry, error) {
	var info bookInfoPrice
	if err := json.Unmarshal([]byte(bookInfo), &info); err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("bookInfo", err)
	}

	e := &StockEntry{
		bookInfo:      bookInfo,
		isConstructed: true,
	}

	if err := errors.Join(
		e.setStoreID(storeID),
		e.setBookID(bookID),
		e.setPrice(info.Price),
		e.setStock(stock),
	); err != nil {
		return nil, err
	}

	return e, nil
}

// RestoreStockEntry reconstructs a catalog row from persistence.
func RestoreStockEntry(storeID, bookID, bookInfo string, price int64, stock int) (*StockEntry, error) {
	e := &StockEntry{
		bookInfo:      bookInfo,
		isConstructed: true,
	}

	if err := errors.Join(
		e.setStoreID(storeID),
		e.setBookID(bookID),
		e.setPrice(price),
		e.setStock(stock),
	); err != nil {
		return nil, err
	}

	return e, nil
}

// Validate ensures the StockEntry instance was created through a constructor.
func (e *StockEntry) Validate() error {
	if e == nil || !e.isConstructed {
		return ErrStockEntryIsNotConstructed
	}
	return nil
}

// StoreID returns the store the entry belongs to.
func (e *StockEntry) StoreID() string {
	return e.storeID
}

// BookID returns the listed book.
func (e *StockEntry) BookID() string {
	return e.bookID
}

// BookInfo returns the raw metadata blob as listed by the seller.
func (e *StockEntry) BookInfo() string {
	return e.bookInfo
}

// Price returns the unit price in effect for new reservations.
func (e *StockEntry) Price() int64 {
	return e.price
}

// StockLevel returns the remaining purchasable units.
func (e *StockEntry) StockLevel() int {
	return e.stock
}

func (e *StockEntry) setStoreID(storeID string) error {
	if storeID == "" {
		return errs.NewValueIsRequiredError("storeID")
	}
	e.storeID = storeID
	return nil
}

func (e *StockEntry) setBookID(bookID string) error {
	if bookID == "" {
		return errs.NewValueIsRequiredError("bookID")
	}
	e.bookID = bookID
	return nil
}

func (e *StockEntry) setPrice(price int64) error {
	if price < 0 {
		return errs.NewValueIsInvalidErrorWithCause("price is invalid", fmt.Errorf("%d is negative", price))
	}
	e.price = price
	return nil
}

func (e *StockEntry) setStock(stock int) error {
	if stock < 0 {
		return errs.NewValueIsInvalidErrorWithCause("stock is invalid", fmt.Errorf("%d is negative", stock))
	}
	e.stock = stock
	return nil
}
