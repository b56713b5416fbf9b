package commands

import (
	"errors"

	"bookstore/internal/pkg/errs"
	"bookstore/internal/pkg/guard"
)

var ErrRegisterUserCommandIsNotConstructed = errors.New(
	"RegisterUserCommand must be created via NewRegisterUserCommand constructor",
)

// RegisterUserCommand represents a request to create a new account with a
// zero balance. The initial session token and terminal are issued by the
// identity adapter before the command is built.
type RegisterUserCommand struct { //nolint:recvcheck //using for validation
	userID   string
	password string
	token    string
	terminal string

	guard guard.ConstructorGuard
}

// NewRegisterUserCommand creates a command to register a new account.
// Returns an error if the user id or password is empty.
func NewRegisterUserCommand(userID, password, token, terminal string) (RegisterUserCommand, error) {
	cmd := RegisterUserCommand{
		token:    token,
		terminal: terminal,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setUserID(userID),
		cmd.setPassword(password),
	); err != nil {
		return RegisterUserCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterUserCommand) Validate() error {
	return c.guard.Validate(ErrRegisterUserCommandIsNotConstructed)
}

// UserID returns the account identifier being registered.
func (c RegisterUserCommand) UserID() string {
	return c.userID
}

// Password returns the credential for the new account.
func (c RegisterUserCommand) Password() string {
	return c.password
}

// Token returns the initial session token.
func (c RegisterUserCommand) Token() string {
	return c.token
}

// Terminal returns the terminal the initial token was issued to.
func (c RegisterUserCommand) Terminal() string {
	return c.terminal
}

func (c *RegisterUserCommand) setUserID(userID string) error {
	if userID == "" {
		return errs.NewValueIsRequiredError("userId")
	}

	c.userID = userID
	return nil
}

func (c *RegisterUserCommand) setPassword(password string) error {
	if password == "" {
		return errs.NewValueIsRequiredError("password")
	}

	c.password = password
	return nil
}
