package user

import (
	"errors"

	"bookstore/internal/pkg/errs"
)

var (
	// ErrUserIsNotConstructed is returned when a User instance was not created
	// through NewUser or RestoreUser.
	ErrUserIsNotConstructed = errors.New("User must be created via NewUser constructor")
)

// User is the account aggregate: credential, integer balance, and the current
// session token with the terminal it was issued to. Balance movements happen
// as guarded single-statement updates in the repository ledger, so the
// aggregate carries the balance read-only.
//
// Invariants:
//   - balance never goes negative; debits are guarded by a funds check in the
//     same statement
//   - balance is mutated only by settlement (payment, cancellation refund)
//     and explicit top-ups
type User struct {
	id       string
	password string
	balance  int64
	token    string
	terminal string

	isConstructed bool
}

// NewUser registers a new account with a zero balance.
func NewUser(id, password, token, terminal string) (*User, error) {
	u := &User{
		token:         token,
		terminal:      terminal,
		isConstructed: true,
	}

	if err := errors.Join(
		u.setID(id),
		u.setPassword(password),
	); err != nil {
		return nil, err
	}

	return u, nil
}

// RestoreUser reconstructs an account from persistence.
func RestoreUser(id, password string, balance int64, token, terminal string) (*User, error) {
	u, err := NewUser(id, password, token, terminal)
	if err != nil {
		return nil, err
	}
	if balance < 0 {
		return nil, errs.NewValueIsInvalidError("balance")
	}

	u.balance = balance
	return u, nil
}

// Validate ensures the User instance was created through a constructor.
func (u *User) Validate() error {
	if u == nil || !u.isConstructed {
		return ErrUserIsNotConstructed
	}
	return nil
}

// ID returns the account identifier.
func (u *User) ID() string {
	return u.id
}

// Password returns the stored credential. Only the identity adapter compares it.
func (u *User) Password() string {
	return u.password
}

// Balance returns the current balance.
func (u *User) Balance() int64 {
	return u.balance
}

// Token returns the current session token.
func (u *User) Token() string {
	return u.token
}

// Terminal returns the terminal the current token was issued to.
func (u *User) Terminal() string {
	return u.terminal
}

// VerifyPassword compares the given credential against the stored one.
func (u *User) VerifyPassword(password string) error {
	if password != u.password {
		return errs.NewAuthorizationFailedError("password mismatch for " + u.id)
	}
	return nil
}

// RefreshSession replaces the session token and terminal on login.
func (u *User) RefreshSession(token, terminal string) {
	u.token = token
	u.terminal = terminal
}

// ChangePassword replaces the credential after verifying the old one.
func (u *User) ChangePassword(oldPassword, newPassword string) error {
	if err := u.VerifyPassword(oldPassword); err != nil {
		return err
	}
	if err := u.setPassword(newPassword); err != nil {
		return err
	}
	return nil
}

func (u *User) setID(id string) error {
	if id == "" {
		return errs.NewValueIsRequiredError("userID")
	}
	u.id = id
	return nil
}

func (u *User) setPassword(password string) error {
	if password == "" {
		return errs.NewValueIsRequiredError("password")
	}
	u.password = password
	return nil
}
