package commands

import (
	"errors"
	"math"

	"bookstore/internal/core/domain/model/kernel"
	"bookstore/internal/pkg/errs"
	"bookstore/internal/pkg/guard"
)

var ErrPlaceOrderCommandIsNotConstructed = errors.New(
	"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
)

// OrderItem is one requested (book, count) pair of a placement. Prices are
// not part of the request; they are frozen from the catalog at reservation
// time.
type OrderItem struct {
	BookID string
	Count  int
}

// PlaceOrderCommand represents a buyer's request to place an order against
// one store.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	cmd, err := NewPlaceOrderCommand(orderID, "alice", "store-1", []OrderItem{
//	    {BookID: "book-1", Count: 2},
//	})
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewPlaceOrderCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to place order: %w", err)
//	}
type PlaceOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	buyerID string
	storeID string
	items   []OrderItem

	guard guard.ConstructorGuard
}

// NewPlaceOrderCommand creates a command to place an order. Requires a valid
// order id, a buyer, a store, and at least one item with a positive count.
func NewPlaceOrderCommand(orderID kernel.UUID, buyerID, storeID string, items []OrderItem) (PlaceOrderCommand, error) {
	cmd := PlaceOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setBuyerID(buyerID),
		cmd.setStoreID(storeID),
		cmd.setItems(items),
	); err != nil {
		return PlaceOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the order.
func (c PlaceOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// BuyerID returns the account placing the order.
func (c PlaceOrderCommand) BuyerID() string {
	return c.buyerID
}

// StoreID returns the store the order is placed against.
func (c PlaceOrderCommand) StoreID() string {
	return c.storeID
}

// Items returns the requested (book, count) pairs.
func (c PlaceOrderCommand) Items() []OrderItem {
	return c.items
}

func (c *PlaceOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *PlaceOrderCommand) setBuyerID(buyerID string) error {
	if buyerID == "" {
		return errs.NewValueIsRequiredError("buyerId")
	}

	c.buyerID = buyerID
	return nil
}

func (c *PlaceOrderCommand) setStoreID(storeID string) error {
	if storeID == "" {
		return errs.NewValueIsRequiredError("storeId")
	}

	c.storeID = storeID
	return nil
}

func (c *PlaceOrderCommand) setItems(items []OrderItem) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}

	for _, item := range items {
		if item.BookID == "" {
			return errs.NewValueIsRequiredError("bookId")
		}
		if item.Count <= 0 {
			return errs.NewValueIsOutOfRangeError("count", item.Count, 1, math.MaxInt32)
		}
	}

	c.items = items
	return nil
}
