package commands

import (
	"errors"
	"math"

	"bookstore/internal/pkg/errs"
	"bookstore/internal/pkg/guard"
)

var ErrAddBookCommandIsNotConstructed = errors.New(
	"AddBookCommand must be created via NewAddBookCommand constructor",
)

// AddBookCommand represents a seller's request to list a book in a store.
// The metadata blob carries the unit price; the rest of the blob is opaque to
// the order core.
type AddBookCommand struct { //nolint:recvcheck //using for validation
	sellerID string
	storeID  string
	bookID   string
	bookInfo string
	stock    int

	guard guard.ConstructorGuard
}

// NewAddBookCommand creates a command to list a book with an initial stock
// level. Stock may be zero; restocking happens through AddStockLevel.
func NewAddBookCommand(sellerID, storeID, bookID, bookInfo string, stock int) (AddBookCommand, error) {
	cmd := AddBookCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setSellerID(sellerID),
		cmd.setStoreID(storeID),
		cmd.setBookID(bookID),
		cmd.setBookInfo(bookInfo),
		cmd.setStock(stock),
	); err != nil {
		return AddBookCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AddBookCommand) Validate() error {
	return c.guard.Validate(ErrAddBookCommandIsNotConstructed)
}

// SellerID returns the account listing the book.
func (c AddBookCommand) SellerID() string {
	return c.sellerID
}

// StoreID returns the store the book is listed in.
func (c AddBookCommand) StoreID() string {
	return c.storeID
}

// BookID returns the book identifier.
func (c AddBookCommand) BookID() string {
	return c.bookID
}

// BookInfo returns the raw metadata blob.
func (c AddBookCommand) BookInfo() string {
	return c.bookInfo
}

// Stock returns the initial stock level.
func (c AddBookCommand) Stock() int {
	return c.stock
}

func (c *AddBookCommand) setSellerID(sellerID string) error {
	if sellerID == "" {
		return errs.NewValueIsRequiredError("sellerId")
	}

	c.sellerID = sellerID
	return nil
}

func (c *AddBookCommand) setStoreID(storeID string) error {
	if storeID == "" {
		return errs.NewValueIsRequiredError("storeId")
	}

	c.storeID = storeID
	return nil
}

func (c *AddBookCommand) setBookID(bookID string) error {
	if bookID == "" {
		return errs.NewValueIsRequiredError("bookId")
	}

	c.bookID = bookID
	return nil
}

func (c *AddBookCommand) setBookInfo(bookInfo string) error {
	if bookInfo == "" {
		return errs.NewValueIsRequiredError("bookInfo")
	}

	c.bookInfo = bookInfo
	return nil
}

func (c *AddBookCommand) setStock(stock int) error {
	if stock < 0 {
		return errs.NewValueIsOutOfRangeError("stock", stock, 0, math.MaxInt32)
	}

	c.stock = stock
	return nil
}
