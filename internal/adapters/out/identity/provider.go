// Package identity implements the IdentityProvider port. Session tokens are
// HS256 JWTs signed with a per-user key; the current token is also stored on
// the account so a login from a new terminal invalidates the previous session.
package identity

import (
	"context"
	"time"

	"bookstore/internal/core/ports"
	"bookstore/internal/pkg/errs"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultTokenLifetime is how long an issued session token stays valid.
const DefaultTokenLifetime = time.Hour

type sessionClaims struct {
	UserID   string `json:"user_id"`
	Terminal string `json:"terminal"`
	jwt.RegisteredClaims
}

// UserRepositoryFactory yields a fresh account repository for each identity
// operation. Repositories are bound to per-operation unit-of-work state, so
// concurrent requests must not share one instance.
type UserRepositoryFactory interface {
	Create() ports.UserRepository
}

// Provider verifies credentials and session tokens against stored accounts.
// It implements ports.IdentityProvider and additionally issues tokens for the
// registration and login flows.
type Provider struct {
	users         UserRepositoryFactory
	tokenLifetime time.Duration
}

// NewProvider creates an identity provider over the given account storage.
func NewProvider(users UserRepositoryFactory, tokenLifetime time.Duration) *Provider {
	if tokenLifetime <= 0 {
		tokenLifetime = DefaultTokenLifetime
	}

	return &Provider{
		users:         users,
		tokenLifetime: tokenLifetime,
	}
}

// UserExists reports whether an account with the given id is registered.
func (p *Provider) UserExists(ctx context.Context, userID string) (bool, error) {
	return p.users.Create().Exists(ctx, userID)
}

// VerifyPassword checks a credential against the stored account. Unknown
// accounts and mismatches both fail with an authorization error.
func (p *Provider) VerifyPassword(ctx context.Context, userID, password string) error {
	account, err := p.users.Create().Get(ctx, userID)
	if err != nil {
		return errs.NewAuthorizationFailedErrorWithCause("unknown account "+userID, err)
	}

	return account.VerifyPassword(password)
}

// VerifyToken checks that token is the account's current session token and
// that it has not expired. The signature is checked against the per-user key.
func (p *Provider) VerifyToken(ctx context.Context, userID, token string) error {
	account, err := p.users.Create().Get(ctx, userID)
	if err != nil {
		return errs.NewAuthorizationFailedErrorWithCause("unknown account "+userID, err)
	}

	if account.Token() != token {
		return errs.NewAuthorizationFailedError("stale session token for " + userID)
	}

	claims := &sessionClaims{}
	_, err = jwt.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return []byte(userID), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return errs.NewAuthorizationFailedErrorWithCause("invalid session token for "+userID, err)
	}

	if claims.UserID != userID {
		return errs.NewAuthorizationFailedError("session token subject mismatch for " + userID)
	}
	if claims.IssuedAt == nil || time.Since(claims.IssuedAt.Time) > p.tokenLifetime {
		return errs.NewAuthorizationFailedError("expired session token for " + userID)
	}

	return nil
}

// IssueToken mints a fresh session token for the given account and terminal.
// The caller stores it on the account.
func (p *Provider) IssueToken(userID, terminal string) (string, error) {
	claims := sessionClaims{
		UserID:   userID,
		Terminal: terminal,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt: jwt.NewNumericDate(time.Now().UTC()),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(userID))
	if err != nil {
		return "", errs.NewAuthorizationFailedErrorWithCause("cannot issue session token for "+userID, err)
	}

	return token, nil
}

// Login verifies a credential and rotates the account's session to a fresh
// token bound to the given terminal. Returns the new token.
func (p *Provider) Login(ctx context.Context, userID, password, terminal string) (string, error) {
	users := p.users.Create()
	account, err := users.Get(ctx, userID)
	if err != nil {
		return "", errs.NewAuthorizationFailedErrorWithCause("unknown account "+userID, err)
	}

	if err = account.VerifyPassword(password); err != nil {
		return "", err
	}

	token, err := p.IssueToken(userID, terminal)
	if err != nil {
		return "", err
	}

	account.RefreshSession(token, terminal)
	if err = users.Update(ctx, account); err != nil {
		return "", err
	}

	return token, nil
}

// Logout clears the account's session after verifying the current token.
func (p *Provider) Logout(ctx context.Context, userID, token string) error {
	if err := p.VerifyToken(ctx, userID, token); err != nil {
		return err
	}

	users := p.users.Create()
	account, err := users.Get(ctx, userID)
	if err != nil {
		return err
	}

	account.RefreshSession("", "")
	return users.Update(ctx, account)
}

var _ ports.IdentityProvider = (*Provider)(nil)
