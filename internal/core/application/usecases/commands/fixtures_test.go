package commands_test

import (
	"testing"

	"storefront/internal/core/domain/model/cart"
	"storefront/internal/core/domain/model/checkout"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"

	"github.com/stretchr/testify/require"
)

func testMoney(t *testing.T, cents int64) kernel.Money {
	t.Helper()

	m, err := kernel.MoneyFromCents(cents)
	require.NoError(t, err)
	return m
}

func testMenuItem(t *testing.T) cart.MenuItem {
	t.Helper()

	item, err := cart.NewMenuItem(kernel.NewUUID(), "Margherita Pizza", testMoney(t, 1299), true)
	require.NoError(t, err)
	return item
}

// cartWithItem builds a cart holding two units of one menu item ($25.98 total).
func cartWithItem(t *testing.T, customerID kernel.UUID) *cart.Cart {
	t.Helper()

	c, err := cart.NewCart(customerID)
	require.NoError(t, err)
	_, err = c.AddItem(testMenuItem(t), 2, "")
	require.NoError(t, err)
	return c
}

func testCardDetails() checkout.CardDetails {
	return checkout.CardDetails{
		Number: "4111 1111 1111 1111",
		Expiry: "12/25",
		CVV:    "123",
		Name:   "Jane Doe",
	}
}

// sessionAtPayment builds a session on the payment step with the given method selected.
func sessionAtPayment(t *testing.T, customerID kernel.UUID, method order.PaymentMethod) *checkout.Session {
	t.Helper()

	s, err := checkout.NewSession(customerID)
	require.NoError(t, err)
	require.NoError(t, s.BeginCheckout(cartWithItem(t, customerID).Snapshot()))

	addr, err := kernel.NewAddress("Jane Doe", "123 Main St", "Springfield", "10001", "+1 555 0100", "")
	require.NoError(t, err)
	require.NoError(t, s.SubmitShippingDetails(addr))

	if method != order.PaymentMethodNone {
		require.NoError(t, s.SelectPayment(method, testCardDetails()))
	}
	return s
}

func testOrder(t *testing.T, customerID kernel.UUID, method order.PaymentMethod) *order.Order {
	t.Helper()

	addr, err := kernel.NewAddress("Jane Doe", "123 Main St", "Springfield", "10001", "+1 555 0100", "")
	require.NoError(t, err)

	o, err := order.NewOrder(
		kernel.NewUUID(), "ORD-1705340400000-ABCDEF123", customerID,
		cartWithItem(t, customerID).Items(), testMoney(t, 2598), method, addr)
	require.NoError(t, err)
	return o
}
