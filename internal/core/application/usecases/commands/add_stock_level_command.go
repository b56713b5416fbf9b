package commands

import (
	"errors"
	"math"

	"bookstore/internal/pkg/errs"
	"bookstore/internal/pkg/guard"
)

var ErrAddStockLevelCommandIsNotConstructed = errors.New(
	"AddStockLevelCommand must be created via NewAddStockLevelCommand constructor",
)

// AddStockLevelCommand represents a seller's request to restock a listed book.
type AddStockLevelCommand struct { //nolint:recvcheck //using for validation
	sellerID string
	storeID  string
	bookID   string
	count    int

	guard guard.ConstructorGuard
}

// NewAddStockLevelCommand creates a command to add count units of a book.
// Count must be positive.
func NewAddStockLevelCommand(sellerID, storeID, bookID string, count int) (AddStockLevelCommand, error) {
	cmd := AddStockLevelCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setSellerID(sellerID),
		cmd.setStoreID(storeID),
		cmd.setBookID(bookID),
		cmd.setCount(count),
	); err != nil {
		return AddStockLevelCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AddStockLevelCommand) Validate() error {
	return c.guard.Validate(ErrAddStockLevelCommandIsNotConstructed)
}

// SellerID returns the account restocking the book.
func (c AddStockLevelCommand) SellerID() string {
	return c.sellerID
}

// StoreID returns the store holding the entry.
func (c AddStockLevelCommand) StoreID() string {
	return c.storeID
}

// BookID returns the book being restocked.
func (c AddStockLevelCommand) BookID() string {
	return c.bookID
}

// Count returns the number of units to add.
func (c AddStockLevelCommand) Count() int {
	return c.count
}

func (c *AddStockLevelCommand) setSellerID(sellerID string) error {
	if sellerID == "" {
		return errs.NewValueIsRequiredError("sellerId")
	}

	c.sellerID = sellerID
	return nil
}

func (c *AddStockLevelCommand) setStoreID(storeID string) error {
	if storeID == "" {
		return errs.NewValueIsRequiredError("storeId")
	}

	c.storeID = storeID
	return nil
}

func (c *AddStockLevelCommand) setBookID(bookID string) error {
	if bookID == "" {
		return errs.NewValueIsRequiredError("bookId")
	}

	c.bookID = bookID
	return nil
}

func (c *AddStockLevelCommand) setCount(count int) error {
	if count <= 0 {
		return errs.NewValueIsOutOfRangeError("count", count, 1, math.MaxInt32)
	}

	c.count = count
	return nil
}
