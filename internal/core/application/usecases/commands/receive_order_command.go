package commands

import (
	"errors"

	"bookstore/internal/core/domain/model/kernel"
	"bookstore/internal/pkg/errs"
	"bookstore/internal/pkg/guard"
)

var ErrReceiveOrderCommandIsNotConstructed = errors.New(
	"ReceiveOrderCommand must be created via NewReceiveOrderCommand constructor",
)

// ReceiveOrderCommand represents a buyer's confirmation that a shipped order
// arrived.
type ReceiveOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	buyerID string

	guard guard.ConstructorGuard
}

// NewReceiveOrderCommand creates a command to confirm receipt of an order.
func NewReceiveOrderCommand(orderID kernel.UUID, buyerID string) (ReceiveOrderCommand, error) {
	cmd := ReceiveOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setBuyerID(buyerID),
	); err != nil {
		return ReceiveOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ReceiveOrderCommand) Validate() error {
	return c.guard.Validate(ErrReceiveOrderCommandIsNotConstructed)
}

// OrderID returns the order being confirmed.
func (c ReceiveOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// BuyerID returns the confirming account.
func (c ReceiveOrderCommand) BuyerID() string {
	return c.buyerID
}

func (c *ReceiveOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *ReceiveOrderCommand) setBuyerID(buyerID string) error {
	if buyerID == "" {
		return errs.NewValueIsRequiredError("buyerId")
	}

	c.buyerID = buyerID
	return nil
}
