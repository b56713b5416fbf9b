package commands

import (
	"errors"

	"bookstore/internal/pkg/errs"
	"bookstore/internal/pkg/guard"
)

var ErrChangePasswordCommandIsNotConstructed = errors.New(
	"ChangePasswordCommand must be created via NewChangePasswordCommand constructor",
)

// ChangePasswordCommand represents a request to replace an account's
// credential. The old credential travels with the command and is re-verified
// against the stored account.
type ChangePasswordCommand struct { //nolint:recvcheck //using for validation
	userID      string
	oldPassword string
	newPassword string

	guard guard.ConstructorGuard
}

// NewChangePasswordCommand creates a command to replace a credential.
func NewChangePasswordCommand(userID, oldPassword, newPassword string) (ChangePasswordCommand, error) {
	cmd := ChangePasswordCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setUserID(userID),
		cmd.setOldPassword(oldPassword),
		cmd.setNewPassword(newPassword),
	); err != nil {
		return ChangePasswordCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangePasswordCommand) Validate() error {
	return c.guard.Validate(ErrChangePasswordCommandIsNotConstructed)
}

// UserID returns the account whose credential changes.
func (c ChangePasswordCommand) UserID() string {
	return c.userID
}

// OldPassword returns the credential to verify before the change.
func (c ChangePasswordCommand) OldPassword() string {
	return c.oldPassword
}

// NewPassword returns the replacement credential.
func (c ChangePasswordCommand) NewPassword() string {
	return c.newPassword
}

func (c *ChangePasswordCommand) setUserID(userID string) error {
	if userID == "" {
		return errs.NewValueIsRequiredError("userId")
	}

	c.userID = userID
	return nil
}

func (c *ChangePasswordCommand) setOldPassword(oldPassword string) error {
	if oldPassword == "" {
		return errs.NewValueIsRequiredError("oldPassword")
	}

	c.oldPassword = oldPassword
	return nil
}

func (c *ChangePasswordCommand) setNewPassword(newPassword string) error {
	if newPassword == "" {
		return errs.NewValueIsRequiredError("newPassword")
	}

	c.newPassword = newPassword
	return nil
}
