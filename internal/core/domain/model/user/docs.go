// Package user provides the account aggregate of the bookstore order core.
// An account carries the credential checked at payment time, the integer
// balance moved by settlements and refunds, and the current session token.
// Atomicity of concurrent balance movements is enforced by the ledger
// repository with guarded updates; the aggregate enforces the same rules for
// in-memory transitions and validation.
package user
