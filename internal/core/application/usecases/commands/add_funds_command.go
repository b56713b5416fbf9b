package commands

import (
	"errors"
	"math"

	"bookstore/internal/pkg/errs"
	"bookstore/internal/pkg/guard"
)

var ErrAddFundsCommandIsNotConstructed = errors.New(
	"AddFundsCommand must be created via NewAddFundsCommand constructor",
)

// AddFundsCommand represents a request to top up an account's balance.
// The credential travels with the command because top-ups re-verify it.
type AddFundsCommand struct { //nolint:recvcheck //using for validation
	userID   string
	password string
	amount   int64

	guard guard.ConstructorGuard
}

// NewAddFundsCommand creates a command to credit an account.
// Amount must be positive.
func NewAddFundsCommand(userID, password string, amount int64) (AddFundsCommand, error) {
	cmd := AddFundsCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setUserID(userID),
		cmd.setPassword(password),
		cmd.setAmount(amount),
	); err != nil {
		return AddFundsCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AddFundsCommand) Validate() error {
	return c.guard.Validate(ErrAddFundsCommandIsNotConstructed)
}

// UserID returns the account being credited.
func (c AddFundsCommand) UserID() string {
	return c.userID
}

// Password returns the credential to verify before crediting.
func (c AddFundsCommand) Password() string {
	return c.password
}

// Amount returns the top-up amount.
func (c AddFundsCommand) Amount() int64 {
	return c.amount
}

func (c *AddFundsCommand) setUserID(userID string) error {
	if userID == "" {
		return errs.NewValueIsRequiredError("userId")
	}

	c.userID = userID
	return nil
}

func (c *AddFundsCommand) setPassword(password string) error {
	if password == "" {
		return errs.NewValueIsRequiredError("password")
	}

	c.password = password
	return nil
}

func (c *AddFundsCommand) setAmount(amount int64) error {
	if amount <= 0 {
		return errs.NewValueIsOutOfRangeError("amount", amount, 1, int64(math.MaxInt64))
	}

	c.amount = amount
	return nil
}
