package order_test

import (
	"testing"
	"time"

	"courierservice/internal/core/domain/model/kernel"
	"courierservice/internal/core/domain/model/order"
	"courierservice/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var placedAt = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func newSearchingOrder(t *testing.T) *order.Order {
	t.Helper()
	o, err := order.RestoreOrder(7, 1, 2, nil, order.Searching, placedAt, nil)
	require.NoError(t, err)
	return o
}

func TestNewOrder(t *testing.T) {
	t.Run("creates searching order without courier", func(t *testing.T) {
		// When
		o, err := order.NewOrder(1, 2, placedAt)

		// Then
		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.True(t, o.ID().IsZero())
		assert.Equal(t, kernel.ID(1), o.RestaurantID())
		assert.Equal(t, kernel.ID(2), o.UserID())
		assert.Equal(t, order.Searching, o.Status())
		assert.Equal(t, order.Unknown, o.PersistedStatus())
		assert.Nil(t, o.Courier())
		assert.Nil(t, o.EndTime())
		assert.Equal(t, placedAt, o.StartTime())
	})

	t.Run("rejects missing references and time", func(t *testing.T) {
		// When
		_, err := order.NewOrder(0, -1, time.Time{})

		// Then
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "restaurant id")
		assert.Contains(t, err.Error(), "user id")
	})
}

func TestRestoreOrder_Consistency(t *testing.T) {
	courierID := kernel.ID(3)
	end := placedAt.Add(30 * time.Minute)

	t.Run("delivered order with courier and end time", func(t *testing.T) {
		o, err := order.RestoreOrder(7, 1, 2, &courierID, order.Delivered, placedAt, &end)
		require.NoError(t, err)
		assert.Equal(t, order.Delivered, o.PersistedStatus())
		assert.Equal(t, 30*time.Minute, o.DeliveryDuration())
	})

	t.Run("searching order cannot have courier", func(t *testing.T) {
		_, err := order.RestoreOrder(7, 1, 2, &courierID, order.Searching, placedAt, nil)
		require.Error(t, err)
	})

	t.Run("in transit order cannot have end time", func(t *testing.T) {
		_, err := order.RestoreOrder(7, 1, 2, &courierID, order.InTransit, placedAt, &end)
		require.Error(t, err)
	})

	t.Run("persisted order needs an id", func(t *testing.T) {
		_, err := order.RestoreOrder(0, 1, 2, nil, order.Searching, placedAt, nil)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})
}

func TestOrder_Claim(t *testing.T) {
	t.Run("binds courier and moves to in transit", func(t *testing.T) {
		// Given
		o := newSearchingOrder(t)

		// When
		err := o.Claim(3)

		// Then
		require.NoError(t, err)
		assert.Equal(t, order.InTransit, o.Status())
		assert.Equal(t, order.Searching, o.PersistedStatus())
		require.NotNil(t, o.Courier())
		assert.Equal(t, kernel.ID(3), *o.Courier())
	})

	t.Run("second claim is rejected and keeps first courier", func(t *testing.T) {
		// Given
		o := newSearchingOrder(t)
		require.NoError(t, o.Claim(3))

		// When
		err := o.Claim(4)

		// Then
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Equal(t, kernel.ID(3), *o.Courier())
		assert.Equal(t, order.InTransit, o.Status())
	})

	t.Run("invalid courier id", func(t *testing.T) {
		o := newSearchingOrder(t)
		require.Error(t, o.Claim(0))
		assert.Nil(t, o.Courier())
	})
}

func TestOrder_Complete(t *testing.T) {
	deliveredAt := placedAt.Add(45 * time.Minute)

	t.Run("bound courier completes in transit order", func(t *testing.T) {
		// Given
		o := newSearchingOrder(t)
		require.NoError(t, o.Claim(3))

		// When
		err := o.Complete(3, deliveredAt)

		// Then
		require.NoError(t, err)
		assert.Equal(t, order.Delivered, o.Status())
		require.NotNil(t, o.EndTime())
		assert.Equal(t, deliveredAt, *o.EndTime())
		assert.Equal(t, 45*time.Minute, o.DeliveryDuration())
	})

	t.Run("other courier cannot complete", func(t *testing.T) {
		// Given
		o := newSearchingOrder(t)
		require.NoError(t, o.Claim(3))

		// When
		err := o.Complete(4, deliveredAt)

		// Then
		require.ErrorIs(t, err, order.ErrOrderIsNotOwnedByCourier)
		assert.Equal(t, order.InTransit, o.Status())
		assert.Nil(t, o.EndTime())
	})

	t.Run("searching order cannot be completed", func(t *testing.T) {
		o := newSearchingOrder(t)
		require.ErrorIs(t, o.Complete(3, deliveredAt), order.ErrOrderIsNotOwnedByCourier)
	})

	t.Run("delivered order cannot be completed twice", func(t *testing.T) {
		// Given
		o := newSearchingOrder(t)
		require.NoError(t, o.Claim(3))
		require.NoError(t, o.Complete(3, deliveredAt))

		// When
		err := o.Complete(3, deliveredAt.Add(time.Hour))

		// Then
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Equal(t, deliveredAt, *o.EndTime())
	})

	t.Run("end time before start is rejected", func(t *testing.T) {
		o := newSearchingOrder(t)
		require.NoError(t, o.Claim(3))
		require.ErrorIs(t, o.Complete(3, placedAt.Add(-time.Second)), errs.ErrValueIsInvalid)
	})
}

func TestOrder_ValidateZeroValue(t *testing.T) {
	var o *order.Order
	require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	require.ErrorIs(t, (&order.Order{}).Validate(), order.ErrOrderIsNotConstructed)
}
