package commands

import (
	"errors"

	"bookstore/internal/core/domain/model/kernel"
	"bookstore/internal/pkg/errs"
	"bookstore/internal/pkg/guard"
)

var ErrPayOrderCommandIsNotConstructed = errors.New(
	"PayOrderCommand must be created via NewPayOrderCommand constructor",
)

// PayOrderCommand represents a buyer's request to pay for a placed order.
// Payment re-verifies the credential.
type PayOrderCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	buyerID  string
	password string

	guard guard.ConstructorGuard
}

// NewPayOrderCommand creates a command to pay an order.
func NewPayOrderCommand(orderID kernel.UUID, buyerID, password string) (PayOrderCommand, error) {
	cmd := PayOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setBuyerID(buyerID),
		cmd.setPassword(password),
	); err != nil {
		return PayOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c PayOrderCommand) Validate() error {
	return c.guard.Validate(ErrPayOrderCommandIsNotConstructed)
}

// OrderID returns the order being paid.
func (c PayOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// BuyerID returns the paying account.
func (c PayOrderCommand) BuyerID() string {
	return c.buyerID
}

// Password returns the credential to verify before settling.
func (c PayOrderCommand) Password() string {
	return c.password
}

func (c *PayOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *PayOrderCommand) setBuyerID(buyerID string) error {
	if buyerID == "" {
		return errs.NewValueIsRequiredError("buyerId")
	}

	c.buyerID = buyerID
	return nil
}

func (c *PayOrderCommand) setPassword(password string) error {
	if password == "" {
		return errs.NewValueIsRequiredError("password")
	}

	c.password = password
	return nil
}
