package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for classification with errors.Is. Each user-visible failure
// of the order core unwraps to exactly one of these.
var (
	ErrObjectNotFound      = errors.New("object not found")
	ErrConflict            = errors.New("object already exists")
	ErrValueIsInvalid      = errors.New("value is invalid")
	ErrValueIsRequired     = errors.New("value is required")
	ErrValueIsOutOfRange   = errors.New("value is out of range")
	ErrInsufficientStock   = errors.New("insufficient stock")
	ErrInsufficientFunds   = errors.New("insufficient funds")
	ErrAuthorizationFailed = errors.New("authorization failed")
	ErrInvalidOrderStatus  = errors.New("invalid order status")
)

// sanitize strips newlines from values interpolated into error messages so a
// single error always renders as a single log line.
func sanitize(v any) string {
	return strings.ReplaceAll(fmt.Sprintf("%s", v), "\n", " ")
}

// ObjectNotFoundError is returned when a user, store, book or order cannot be
// located by its identifier.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

// NewObjectNotFoundError creates an ObjectNotFoundError without an underlying cause.
func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

// NewObjectNotFoundErrorWithCause creates an ObjectNotFoundError wrapping an underlying cause.
func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: param is: %s, ID is: %s (cause: %s)",
			ErrObjectNotFound, e.ParamName, sanitize(e.ID), e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrObjectNotFound, sanitize(e.ID))
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// ConflictError is returned when an object with the same identifier already
// exists (duplicate user, store, book or order id on creation).
type ConflictError struct {
	ParamName string
	ID        any
	Cause     error
}

// NewConflictError creates a ConflictError without an underlying cause.
func NewConflictError(paramName string, id any) *ConflictError {
	return &ConflictError{ParamName: paramName, ID: id}
}

// NewConflictErrorWithCause creates a ConflictError wrapping an underlying cause.
func NewConflictErrorWithCause(paramName string, id any, cause error) *ConflictError {
	return &ConflictError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ConflictError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: param is: %s, ID is: %s (cause: %s)",
			ErrConflict, e.ParamName, sanitize(e.ID), e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrConflict, sanitize(e.ID))
}

func (e *ConflictError) Unwrap() error {
	return ErrConflict
}

// ValueIsInvalidError is returned when a parameter fails validation.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

// NewValueIsInvalidError creates a ValueIsInvalidError without an underlying cause.
func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

// NewValueIsInvalidErrorWithCause creates a ValueIsInvalidError wrapping an underlying cause.
func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsInvalid, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName)
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ValueIsRequiredError is returned when a required parameter is missing or zero.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

// NewValueIsRequiredError creates a ValueIsRequiredError without an underlying cause.
func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

// NewValueIsRequiredErrorWithCause creates a ValueIsRequiredError wrapping an underlying cause.
func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsRequired, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName)
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// ValueIsOutOfRangeError is returned when a numeric parameter falls outside
// its allowed bounds (non-positive counts, negative amounts).
type ValueIsOutOfRangeError struct {
	ParamName string
	Value     any
	Min       any
	Max       any
	Cause     error
}

// NewValueIsOutOfRangeError creates a ValueIsOutOfRangeError without an underlying cause.
func NewValueIsOutOfRangeError(paramName string, value, minimum, maximum any) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minimum, Max: maximum}
}

// NewValueIsOutOfRangeErrorWithCause creates a ValueIsOutOfRangeError wrapping an underlying cause.
func NewValueIsOutOfRangeErrorWithCause(paramName string, value, minimum, maximum any, cause error) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minimum, Max: maximum, Cause: cause}
}

func (e *ValueIsOutOfRangeError) Error() string {
	msg := fmt.Sprintf("%s: %s is %s, min value is %v, max value is %v",
		ErrValueIsInvalid, sanitize(fmt.Sprintf("%v", e.Value)), e.ParamName, e.Min, e.Max)
	if e.Cause != nil {
		return fmt.Sprintf("%s (cause: %s)", msg, e.Cause)
	}
	return msg
}

func (e *ValueIsOutOfRangeError) Unwrap() error {
	return ErrValueIsOutOfRange
}

// InsufficientStockError is returned when a reservation asks for more units
// than a stock entry currently holds.
type InsufficientStockError struct {
	BookID string
	Cause  error
}

// NewInsufficientStockError creates an InsufficientStockError without an underlying cause.
func NewInsufficientStockError(bookID string) *InsufficientStockError {
	return &InsufficientStockError{BookID: bookID}
}

// NewInsufficientStockErrorWithCause creates an InsufficientStockError wrapping an underlying cause.
func NewInsufficientStockErrorWithCause(bookID string, cause error) *InsufficientStockError {
	return &InsufficientStockError{BookID: bookID, Cause: cause}
}

func (e *InsufficientStockError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: book is: %s (cause: %s)", ErrInsufficientStock, sanitize(e.BookID), e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrInsufficientStock, sanitize(e.BookID))
}

func (e *InsufficientStockError) Unwrap() error {
	return ErrInsufficientStock
}

// InsufficientFundsError is returned when a buyer's balance cannot cover a settlement.
type InsufficientFundsError struct {
	OrderID string
	Cause   error
}

// NewInsufficientFundsError creates an InsufficientFundsError without an underlying cause.
func NewInsufficientFundsError(orderID string) *InsufficientFundsError {
	return &InsufficientFundsError{OrderID: orderID}
}

// NewInsufficientFundsErrorWithCause creates an InsufficientFundsError wrapping an underlying cause.
func NewInsufficientFundsErrorWithCause(orderID string, cause error) *InsufficientFundsError {
	return &InsufficientFundsError{OrderID: orderID, Cause: cause}
}

func (e *InsufficientFundsError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: order is: %s (cause: %s)", ErrInsufficientFunds, sanitize(e.OrderID), e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrInsufficientFunds, sanitize(e.OrderID))
}

func (e *InsufficientFundsError) Unwrap() error {
	return ErrInsufficientFunds
}

// AuthorizationFailedError is returned for wrong credentials or for acting on
// another user's order or store.
type AuthorizationFailedError struct {
	Detail string
	Cause  error
}

// NewAuthorizationFailedError creates an AuthorizationFailedError without an underlying cause.
func NewAuthorizationFailedError(detail string) *AuthorizationFailedError {
	return &AuthorizationFailedError{Detail: detail}
}

// NewAuthorizationFailedErrorWithCause creates an AuthorizationFailedError wrapping an underlying cause.
func NewAuthorizationFailedErrorWithCause(detail string, cause error) *AuthorizationFailedError {
	return &AuthorizationFailedError{Detail: detail, Cause: cause}
}

func (e *AuthorizationFailedError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrAuthorizationFailed, sanitize(e.Detail), e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrAuthorizationFailed, sanitize(e.Detail))
}

func (e *AuthorizationFailedError) Unwrap() error {
	return ErrAuthorizationFailed
}

// InvalidOrderStatusError is returned when an operation is attempted against
// an order whose current status disallows it.
type InvalidOrderStatusError struct {
	OrderID string
	Status  string
	Cause   error
}

// NewInvalidOrderStatusError creates an InvalidOrderStatusError without an underlying cause.
func NewInvalidOrderStatusError(orderID, status string) *InvalidOrderStatusError {
	return &InvalidOrderStatusError{OrderID: orderID, Status: status}
}

// NewInvalidOrderStatusErrorWithCause creates an InvalidOrderStatusError wrapping an underlying cause.
func NewInvalidOrderStatusErrorWithCause(orderID, status string, cause error) *InvalidOrderStatusError {
	return &InvalidOrderStatusError{OrderID: orderID, Status: status, Cause: cause}
}

func (e *InvalidOrderStatusError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: order is: %s, status is: %s (cause: %s)",
			ErrInvalidOrderStatus, sanitize(e.OrderID), e.Status, e.Cause)
	}
	return fmt.Sprintf("%s: order is: %s, status is: %s", ErrInvalidOrderStatus, sanitize(e.OrderID), e.Status)
}

func (e *InvalidOrderStatusError) Unwrap() error {
	return ErrInvalidOrderStatus
}
