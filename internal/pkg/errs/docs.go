// Package errs provides standardized error types for the bookstore order core.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package covers the error taxonomy of the order lifecycle engine:
//   - ObjectNotFoundError: user/store/book/order absent
//   - ConflictError: duplicate identifier on creation
//   - InsufficientStockError: reservation exceeds the stock level
//   - InsufficientFundsError: balance cannot cover a settlement
//   - AuthorizationFailedError: wrong credential or acting on another user's order
//   - InvalidOrderStatusError: operation disallowed by the order's current status
//   - ValueIsInvalidError / ValueIsRequiredError / ValueIsOutOfRangeError: parameter validation
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrObjectNotFound)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
//
// Callers classify failures with errors.Is against the sentinels; the HTTP edge
// maps each sentinel to a stable (code, message) pair. Storage and transaction
// failures are never wrapped into these kinds and surface as internal errors.
package errs
