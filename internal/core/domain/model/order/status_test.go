package order_test

import (
	"testing"

	"bookstore/internal/core/domain/model/order"
	"bookstore/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Validate(t *testing.T) {
	valid := []order.Status{order.Created, order.Paid, order.Cancelled, order.Shipped, order.Received}
	for _, s := range valid {
		require.NoError(t, s.Validate(), s.String())
	}

	require.Error(t, order.Unknown.Validate())
	require.Error(t, order.Status(42).Validate())
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "Created", order.Created.String())
	assert.Equal(t, "Paid", order.Paid.String())
	assert.Equal(t, "Cancelled", order.Cancelled.String())
	assert.Equal(t, "Shipped", order.Shipped.String())
	assert.Equal(t, "Received", order.Received.String())
	assert.Equal(t, "Unknown", order.Status(42).String())
}

func TestStatus_Pay(t *testing.T) {
	t.Run("created can be paid", func(t *testing.T) {
		next, err := order.Created.Pay()
		require.NoError(t, err)
		assert.Equal(t, order.Paid, next)
	})

	t.Run("double payment is rejected by the status guard", func(t *testing.T) {
		_, err := order.Paid.Pay()
		require.ErrorIs(t, err, errs.ErrInvalidOrderStatus)
	})

	t.Run("cancelled cannot be paid", func(t *testing.T) {
		_, err := order.Cancelled.Pay()
		require.ErrorIs(t, err, errs.ErrInvalidOrderStatus)
	})
}

func TestStatus_Cancel(t *testing.T) {
	for _, s := range []order.Status{order.Created, order.Paid} {
		next, err := s.Cancel()
		require.NoError(t, err, s.String())
		assert.Equal(t, order.Cancelled, next)
	}

	for _, s := range []order.Status{order.Cancelled, order.Shipped, order.Received} {
		_, err := s.Cancel()
		require.ErrorIs(t, err, errs.ErrInvalidOrderStatus, s.String())
	}
}

func TestStatus_Ship(t *testing.T) {
	next, err := order.Paid.Ship()
	require.NoError(t, err)
	assert.Equal(t, order.Shipped, next)

	for _, s := range []order.Status{order.Created, order.Cancelled, order.Shipped, order.Received} {
		_, err := s.Ship()
		require.ErrorIs(t, err, errs.ErrInvalidOrderStatus, s.String())
	}
}

func TestStatus_Receive(t *testing.T) {
	next, err := order.Shipped.Receive()
	require.NoError(t, err)
	assert.Equal(t, order.Received, next)

	for _, s := range []order.Status{order.Created, order.Paid, order.Cancelled, order.Received} {
		_, err := s.Receive()
		require.ErrorIs(t, err, errs.ErrInvalidOrderStatus, s.String())
	}
}

func TestStatus_IsTerminal(t *testing.T) {
	assert.True(t, order.Cancelled.IsTerminal())
	assert.True(t, order.Received.IsTerminal())
	assert.False(t, order.Created.IsTerminal())
	assert.False(t, order.Paid.IsTerminal())
	assert.False(t, order.Shipped.IsTerminal())
}
