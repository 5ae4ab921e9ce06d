package order_test

import (
	"testing"
	"time"

	"storefront/internal/core/domain/model/cart"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testItems(t *testing.T) []*cart.LineItem {
	t.Helper()

	price, err := kernel.MoneyFromCents(1299)
	require.NoError(t, err)

	line, err := cart.RestoreLineItem(
		kernel.NewUUID(), kernel.NewUUID(), "Margherita Pizza", price, 1, "")
	require.NoError(t, err)

	return []*cart.LineItem{line}
}

func testAddress(t *testing.T) kernel.Address {
	t.Helper()

	addr, err := kernel.NewAddress("Jane Doe", "123 Main St", "Springfield", "10001", "+1 555 0100", "")
	require.NoError(t, err)
	return addr
}

func placeOrder(t *testing.T, method order.PaymentMethod) *order.Order {
	t.Helper()

	total, err := kernel.MoneyFromCents(1299)
	require.NoError(t, err)

	o, err := order.NewOrder(
		kernel.NewUUID(), "ORD-1718822400000-4F7K2M9QA", kernel.NewUUID(),
		testItems(t), total, method, testAddress(t))
	require.NoError(t, err)
	return o
}

func TestNewOrder(t *testing.T) {
	t.Run("should create pending order with all valid parameters", func(t *testing.T) {
		id := kernel.NewUUID()
		customerID := kernel.NewUUID()
		total, _ := kernel.MoneyFromCents(1299)

		o, err := order.NewOrder(
			id, "ORD-1718822400000-4F7K2M9QA", customerID,
			testItems(t), total, order.PaymentMethodCash, testAddress(t))

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.True(t, o.ID().IsEqual(id))
		assert.Equal(t, "ORD-1718822400000-4F7K2M9QA", o.Number())
		assert.True(t, o.CustomerID().IsEqual(customerID))
		assert.Equal(t, order.StatusPending, o.Status())
		assert.Equal(t, int64(1299), o.Total().Cents())
		assert.WithinDuration(t, time.Now().UTC(), o.CreatedAt(), time.Minute)
	})

	t.Run("card orders start paid, cash orders start pending", func(t *testing.T) {
		cardOrder := placeOrder(t, order.PaymentMethodCard)
		cashOrder := placeOrder(t, order.PaymentMethodCash)

		assert.Equal(t, order.PaymentStatusPaid, cardOrder.PaymentStatus())
		assert.Equal(t, order.PaymentStatusPending, cashOrder.PaymentStatus())
	})

	t.Run("should fail without items", func(t *testing.T) {
		total, _ := kernel.MoneyFromCents(0)

		_, err := order.NewOrder(
			kernel.NewUUID(), "ORD-1", kernel.NewUUID(),
			nil, total, order.PaymentMethodCash, testAddress(t))

		require.ErrorIs(t, err, order.ErrOrderHasNoItems)
	})

	t.Run("should fail without payment method", func(t *testing.T) {
		total, _ := kernel.MoneyFromCents(1299)

		_, err := order.NewOrder(
			kernel.NewUUID(), "ORD-1", kernel.NewUUID(),
			testItems(t), total, order.PaymentMethodNone, testAddress(t))

		require.Error(t, err)
		assert.Contains(t, err.Error(), "paymentMethod")
	})

	t.Run("should fail with blank order number", func(t *testing.T) {
		total, _ := kernel.MoneyFromCents(1299)

		_, err := order.NewOrder(
			kernel.NewUUID(), "   ", kernel.NewUUID(),
			testItems(t), total, order.PaymentMethodCash, testAddress(t))

		require.Error(t, err)
		assert.Contains(t, err.Error(), "orderNumber")
	})

	t.Run("should fail with unconstructed address", func(t *testing.T) {
		total, _ := kernel.MoneyFromCents(1299)
		var addr kernel.Address

		_, err := order.NewOrder(
			kernel.NewUUID(), "ORD-1", kernel.NewUUID(),
			testItems(t), total, order.PaymentMethodCash, addr)

		require.Error(t, err)
	})

	t.Run("should handle multiple validation errors", func(t *testing.T) {
		var invalidID kernel.UUID
		var addr kernel.Address
		total, _ := kernel.MoneyFromCents(1299)

		_, err := order.NewOrder(
			invalidID, "", kernel.NewUUID(),
			nil, total, order.PaymentMethodNone, addr)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "UUID must be created")
		assert.Contains(t, err.Error(), "orderNumber")
		assert.Contains(t, err.Error(), "at least one item")
		assert.Contains(t, err.Error(), "paymentMethod")
	})

	t.Run("nil order fails validation", func(t *testing.T) {
		var o *order.Order

		err := o.Validate()

		require.Error(t, err)
		assert.Equal(t, order.ErrOrderIsNotConstructed, err)
	})
}

func TestOrder_ChangeStatus(t *testing.T) {
	t.Run("walks the full happy path to delivered", func(t *testing.T) {
		o := placeOrder(t, order.PaymentMethodCard)

		for _, next := range []order.Status{
			order.StatusConfirmed,
			order.StatusPreparing,
			order.StatusReady,
			order.StatusOutForDelivery,
			order.StatusDelivered,
		} {
			require.NoError(t, o.ChangeStatus(next))
			assert.Equal(t, next, o.Status())
		}
	})

	t.Run("skipping straight to delivered is rejected and leaves order unchanged", func(t *testing.T) {
		o := placeOrder(t, order.PaymentMethodCard)

		err := o.ChangeStatus(order.StatusDelivered)

		require.ErrorIs(t, err, order.ErrInvalidTransition)
		assert.Equal(t, order.StatusPending, o.Status())
		assert.Equal(t, order.PaymentStatusPaid, o.PaymentStatus())
	})

	t.Run("delivering a cash order collects payment", func(t *testing.T) {
		o := placeOrder(t, order.PaymentMethodCash)
		require.Equal(t, order.PaymentStatusPending, o.PaymentStatus())

		for _, next := range []order.Status{
			order.StatusConfirmed, order.StatusPreparing,
			order.StatusReady, order.StatusOutForDelivery,
		} {
			require.NoError(t, o.ChangeStatus(next))
			assert.Equal(t, order.PaymentStatusPending, o.PaymentStatus())
		}

		require.NoError(t, o.ChangeStatus(order.StatusDelivered))
		assert.Equal(t, order.PaymentStatusPaid, o.PaymentStatus())
	})

	t.Run("delivering a card order leaves payment untouched", func(t *testing.T) {
		o := placeOrder(t, order.PaymentMethodCard)

		for _, next := range []order.Status{
			order.StatusConfirmed, order.StatusPreparing,
			order.StatusReady, order.StatusOutForDelivery, order.StatusDelivered,
		} {
			require.NoError(t, o.ChangeStatus(next))
		}

		assert.Equal(t, order.PaymentStatusPaid, o.PaymentStatus())
	})

	t.Run("cancelling a paid order refunds it", func(t *testing.T) {
		o := placeOrder(t, order.PaymentMethodCard)

		require.NoError(t, o.ChangeStatus(order.StatusCancelled))

		assert.Equal(t, order.StatusCancelled, o.Status())
		assert.Equal(t, order.PaymentStatusRefunded, o.PaymentStatus())
	})

	t.Run("cancelling an unpaid cash order leaves payment pending", func(t *testing.T) {
		o := placeOrder(t, order.PaymentMethodCash)

		require.NoError(t, o.ChangeStatus(order.StatusCancelled))

		assert.Equal(t, order.PaymentStatusPending, o.PaymentStatus())
	})

	t.Run("cancelled order can be re-activated", func(t *testing.T) {
		o := placeOrder(t, order.PaymentMethodCash)
		require.NoError(t, o.ChangeStatus(order.StatusCancelled))

		require.NoError(t, o.ChangeStatus(order.StatusConfirmed))

		assert.Equal(t, order.StatusConfirmed, o.Status())
	})

	t.Run("delivered order cannot be cancelled", func(t *testing.T) {
		o := placeOrder(t, order.PaymentMethodCash)
		for _, next := range []order.Status{
			order.StatusConfirmed, order.StatusPreparing,
			order.StatusReady, order.StatusOutForDelivery, order.StatusDelivered,
		} {
			require.NoError(t, o.ChangeStatus(next))
		}

		err := o.ChangeStatus(order.StatusCancelled)

		require.ErrorIs(t, err, order.ErrInvalidTransition)
		assert.Equal(t, order.StatusDelivered, o.Status())
	})
}

func TestOrder_AllowedNextStatuses(t *testing.T) {
	o := placeOrder(t, order.PaymentMethodCash)

	assert.Equal(t,
		[]order.Status{order.StatusConfirmed, order.StatusCancelled},
		o.AllowedNextStatuses())

	require.NoError(t, o.ChangeStatus(order.StatusConfirmed))
	assert.Equal(t,
		[]order.Status{order.StatusPreparing, order.StatusCancelled},
		o.AllowedNextStatuses())
}

func TestRestoreOrder(t *testing.T) {
	t.Run("should restore order with stored state", func(t *testing.T) {
		id := kernel.NewUUID()
		createdAt := time.Date(2024, 1, 15, 14, 30, 0, 0, time.UTC)
		total, _ := kernel.MoneyFromCents(2297)

		o, err := order.RestoreOrder(
			id, "ORD-2024-001234", kernel.NewUUID(),
			testItems(t), total,
			order.StatusPreparing, order.PaymentMethodCash, order.PaymentStatusPending,
			testAddress(t), createdAt)

		require.NoError(t, err)
		assert.Equal(t, order.StatusPreparing, o.Status())
		assert.Equal(t, order.PaymentStatusPending, o.PaymentStatus())
		assert.Equal(t, createdAt, o.CreatedAt())
	})

	t.Run("should reject invalid stored status", func(t *testing.T) {
		total, _ := kernel.MoneyFromCents(2297)

		_, err := order.RestoreOrder(
			kernel.NewUUID(), "ORD-1", kernel.NewUUID(),
			testItems(t), total,
			order.Status(42), order.PaymentMethodCash, order.PaymentStatusPending,
			testAddress(t), time.Now())

		require.Error(t, err)
	})
}
