package ports

import (
	"context"
)

// IdentityProvider is the narrow contract the order core consumes from the
// identity service. Token issuance and session management stay outside the
// core; the engine only verifies.
type IdentityProvider interface {
	// UserExists reports whether an account with the given id is registered.
	UserExists(ctx context.Context, userID string) (bool, error)

	// VerifyPassword checks a credential, returning an authorization-failed
	// error on mismatch or unknown account.
	VerifyPassword(ctx context.Context, userID, password string) error

	// VerifyToken checks that token is the account's current, unexpired
	// session token.
	VerifyToken(ctx context.Context, userID, token string) error
}
