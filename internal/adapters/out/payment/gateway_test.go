package payment_test

import (
	"math/rand"
	"regexp"
	"testing"
	"time"

	"storefront/internal/adapters/out/payment"
	"storefront/internal/core/domain/model/checkout"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var orderNumberPattern = regexp.MustCompile(`^ORD-\d+-[A-Z0-9]{9}$`)

func testCharge(t *testing.T, gateway *payment.SimulatedGateway, method order.PaymentMethod) (ports.PaymentReceipt, error) {
	t.Helper()
	details := checkout.CardDetails{
		Number: "4111 1111 1111 1111",
		Expiry: "12/25",
		CVV:    "123",
		Name:   "Jane Doe",
	}
	amount, err := kernel.MoneyFromCents(2598)
	require.NoError(t, err)
	return gateway.Charge(t.Context(), method, details, amount)
}

func TestSimulatedGateway_ChargeCard_Succeeds(t *testing.T) {
	gateway, err := payment.NewSimulatedGateway(0, rand.New(rand.NewSource(1)))
	require.NoError(t, err)

	before := time.Now()
	receipt, err := testCharge(t, gateway, order.PaymentMethodCard)

	require.NoError(t, err)
	assert.Regexp(t, orderNumberPattern, receipt.OrderNumber)
	assert.Equal(t, "Payment successful! Your order has been placed.", receipt.Message)
	assert.True(t, receipt.EstimatedDelivery.After(before.Add(29*time.Minute)))
	assert.True(t, receipt.EstimatedDelivery.Before(before.Add(46*time.Minute)))
}

func TestSimulatedGateway_ChargeCard_Declined(t *testing.T) {
	gateway, err := payment.NewSimulatedGateway(1, rand.New(rand.NewSource(1)))
	require.NoError(t, err)

	_, err = testCharge(t, gateway, order.PaymentMethodCard)

	assert.ErrorIs(t, err, ports.ErrPaymentDeclined)
}

func TestSimulatedGateway_ChargeCash_NeverDeclined(t *testing.T) {
	gateway, err := payment.NewSimulatedGateway(1, rand.New(rand.NewSource(1)))
	require.NoError(t, err)

	receipt, err := testCharge(t, gateway, order.PaymentMethodCash)

	require.NoError(t, err)
	assert.Regexp(t, orderNumberPattern, receipt.OrderNumber)
	assert.Equal(t, "Order placed successfully! Please have cash ready for delivery.", receipt.Message)
}

func TestSimulatedGateway_OrderNumbersAreUnique(t *testing.T) {
	gateway, err := payment.NewSimulatedGateway(0, rand.New(rand.NewSource(42)))
	require.NoError(t, err)

	seen := make(map[string]bool)
	for range 50 {
		receipt, err := testCharge(t, gateway, order.PaymentMethodCash)
		require.NoError(t, err)
		assert.False(t, seen[receipt.OrderNumber])
		seen[receipt.OrderNumber] = true
	}
}

func TestNewSimulatedGateway_InvalidDeclineRate(t *testing.T) {
	_, err := payment.NewSimulatedGateway(1.5, rand.New(rand.NewSource(1)))
	assert.Error(t, err)

	_, err = payment.NewSimulatedGateway(-0.1, rand.New(rand.NewSource(1)))
	assert.Error(t, err)
}

func TestNewSimulatedGateway_NilRandSource(t *testing.T) {
	_, err := payment.NewSimulatedGateway(0, nil)
	assert.Error(t, err)
}
