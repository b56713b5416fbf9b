package errs_test

import (
	"errors"
	"testing"

	"bookstore/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("userId", "123")

		assert.Equal(t, "userId", err.ParamName)
		assert.Equal(t, "123", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: 123", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("database connection failed")
		err := errs.NewObjectNotFoundErrorWithCause("userId", "123", cause)

		assert.Equal(t, "userId", err.ParamName)
		assert.Equal(t, "123", err.ID)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: userId, ID is: 123 (cause: database connection failed)",
			err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})
}

func TestConflictError(t *testing.T) {
	t.Run("NewConflictError", func(t *testing.T) {
		err := errs.NewConflictError("storeId", "s1")

		assert.Equal(t, "storeId", err.ParamName)
		assert.Equal(t, "s1", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object already exists: s1", err.Error())
		assert.Equal(t, errs.ErrConflict, err.Unwrap())
	})

	t.Run("NewConflictErrorWithCause", func(t *testing.T) {
		cause := errors.New("duplicate key value violates unique constraint")
		err := errs.NewConflictErrorWithCause("orderId", "o1", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object already exists: param is: orderId, ID is: o1 (cause: duplicate key value violates unique constraint)",
			err.Error())
		assert.Equal(t, errs.ErrConflict, err.Unwrap())
	})
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("NewValueIsInvalidError", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("count")

		assert.Equal(t, "count", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: count", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("NewValueIsInvalidErrorWithCause", func(t *testing.T) {
		cause := errors.New("invalid format")
		err := errs.NewValueIsInvalidErrorWithCause("count", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is invalid: count (cause: invalid format)", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})
}

func TestValueIsRequiredError(t *testing.T) {
	err := errs.NewValueIsRequiredError("userId")

	assert.Equal(t, "userId", err.ParamName)
	require.NoError(t, err.Cause)
	assert.Equal(t, "value is required: userId", err.Error())
	assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
}

func TestValueIsOutOfRangeError(t *testing.T) {
	t.Run("NewValueIsOutOfRangeError", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("count", -1, 1, 100)

		assert.Equal(t, "count", err.ParamName)
		assert.Equal(t, -1, err.Value)
		assert.Equal(t, 1, err.Min)
		assert.Equal(t, 100, err.Max)
		assert.Equal(t, "value is invalid: -1 is count, min value is 1, max value is 100", err.Error())
		assert.Equal(t, errs.ErrValueIsOutOfRange, err.Unwrap())
	})

	t.Run("sanitize function with newlines", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("text", "hello\nworld", 0, 10)
		assert.Contains(t, err.Error(), "hello world")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestDomainErrors(t *testing.T) {
	t.Run("InsufficientStock", func(t *testing.T) {
		err := errs.NewInsufficientStockError("book_42")

		assert.Equal(t, "book_42", err.BookID)
		assert.Equal(t, "insufficient stock: book_42", err.Error())
		assert.Equal(t, errs.ErrInsufficientStock, err.Unwrap())
	})

	t.Run("InsufficientFunds", func(t *testing.T) {
		err := errs.NewInsufficientFundsError("order_1")

		assert.Equal(t, "order_1", err.OrderID)
		assert.Equal(t, "insufficient funds: order_1", err.Error())
		assert.Equal(t, errs.ErrInsufficientFunds, err.Unwrap())
	})

	t.Run("AuthorizationFailed", func(t *testing.T) {
		err := errs.NewAuthorizationFailedError("wrong password")

		assert.Equal(t, "authorization failed: wrong password", err.Error())
		assert.Equal(t, errs.ErrAuthorizationFailed, err.Unwrap())
	})

	t.Run("InvalidOrderStatus", func(t *testing.T) {
		err := errs.NewInvalidOrderStatusError("order_1", "Cancelled")

		assert.Equal(t, "order_1", err.OrderID)
		assert.Equal(t, "Cancelled", err.Status)
		assert.Equal(t, "invalid order status: order is: order_1, status is: Cancelled", err.Error())
		assert.Equal(t, errs.ErrInvalidOrderStatus, err.Unwrap())
	})
}

func TestErrorsCanBeClassified(t *testing.T) {
	t.Run("errors.Is works with custom errors", func(t *testing.T) {
		require.ErrorIs(t, errs.NewObjectNotFoundError("userId", "123"), errs.ErrObjectNotFound)
		require.ErrorIs(t, errs.NewConflictError("storeId", "s1"), errs.ErrConflict)
		require.ErrorIs(t, errs.NewValueIsInvalidError("count"), errs.ErrValueIsInvalid)
		require.ErrorIs(t, errs.NewValueIsRequiredError("userId"), errs.ErrValueIsRequired)
		require.ErrorIs(t, errs.NewValueIsOutOfRangeError("count", -1, 1, 100), errs.ErrValueIsOutOfRange)
		require.ErrorIs(t, errs.NewInsufficientStockError("b1"), errs.ErrInsufficientStock)
		require.ErrorIs(t, errs.NewInsufficientFundsError("o1"), errs.ErrInsufficientFunds)
		require.ErrorIs(t, errs.NewAuthorizationFailedError("token mismatch"), errs.ErrAuthorizationFailed)
		require.ErrorIs(t, errs.NewInvalidOrderStatusError("o1", "Paid"), errs.ErrInvalidOrderStatus)
	})

	t.Run("sentinel messages are stable", func(t *testing.T) {
		assert.Equal(t, "object not found", errs.ErrObjectNotFound.Error())
		assert.Equal(t, "object already exists", errs.ErrConflict.Error())
		assert.Equal(t, "insufficient stock", errs.ErrInsufficientStock.Error())
		assert.Equal(t, "insufficient funds", errs.ErrInsufficientFunds.Error())
		assert.Equal(t, "authorization failed", errs.ErrAuthorizationFailed.Error())
		assert.Equal(t, "invalid order status", errs.ErrInvalidOrderStatus.Error())
	})
}
