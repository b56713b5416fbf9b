package commands

import (
	"errors"

	"bookstore/internal/core/domain/model/kernel"
	"bookstore/internal/pkg/errs"
	"bookstore/internal/pkg/guard"
)

var ErrShipOrderCommandIsNotConstructed = errors.New(
	"ShipOrderCommand must be created via NewShipOrderCommand constructor",
)

// ShipOrderCommand represents a seller's request to mark a paid order as
// shipped.
type ShipOrderCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	sellerID string

	guard guard.ConstructorGuard
}

// NewShipOrderCommand creates a command to ship an order.
func NewShipOrderCommand(orderID kernel.UUID, sellerID string) (ShipOrderCommand, error) {
	cmd := ShipOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setSellerID(sellerID),
	); err != nil {
		return ShipOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ShipOrderCommand) Validate() error {
	return c.guard.Validate(ErrShipOrderCommandIsNotConstructed)
}

// OrderID returns the order being shipped.
func (c ShipOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// SellerID returns the account requesting the shipment.
func (c ShipOrderCommand) SellerID() string {
	return c.sellerID
}

func (c *ShipOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *ShipOrderCommand) setSellerID(sellerID string) error {
	if sellerID == "" {
		return errs.NewValueIsRequiredError("sellerId")
	}

	c.sellerID = sellerID
	return nil
}
