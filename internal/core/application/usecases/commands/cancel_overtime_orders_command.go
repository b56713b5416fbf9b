package commands

import (
	"errors"
	"time"

	"bookstore/internal/pkg/errs"
	"bookstore/internal/pkg/guard"
)

var ErrCancelOvertimeOrdersCommandIsNotConstructed = errors.New(
	"CancelOvertimeOrdersCommand must be created via NewCancelOvertimeOrdersCommand constructor",
)

// CancelOvertimeOrdersCommand represents a sweep over unpaid orders older
// than the payment deadline.
type CancelOvertimeOrdersCommand struct { //nolint:recvcheck //using for validation
	timeout time.Duration

	guard guard.ConstructorGuard
}

// NewCancelOvertimeOrdersCommand creates a sweep command with the given
// payment deadline. Timeout must be positive.
func NewCancelOvertimeOrdersCommand(timeout time.Duration) (CancelOvertimeOrdersCommand, error) {
	cmd := CancelOvertimeOrdersCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setTimeout(timeout); err != nil {
		return CancelOvertimeOrdersCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelOvertimeOrdersCommand) Validate() error {
	return c.guard.Validate(ErrCancelOvertimeOrdersCommandIsNotConstructed)
}

// Timeout returns the payment deadline for unpaid orders.
func (c CancelOvertimeOrdersCommand) Timeout() time.Duration {
	return c.timeout
}

func (c *CancelOvertimeOrdersCommand) setTimeout(timeout time.Duration) error {
	if timeout <= 0 {
		return errs.NewValueIsInvalidError("timeout")
	}

	c.timeout = timeout
	return nil
}
