// Package payment provides a simulated payment provider.
// It assigns order numbers and delivery estimates and declines a
// configurable fraction of card charges.
package payment

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"storefront/internal/core/domain/model/checkout"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/ports"
	"storefront/internal/pkg/errs"
)

const (
	cashConfirmationMessage = "Order placed successfully! Please have cash ready for delivery."
	cardConfirmationMessage = "Payment successful! Your order has been placed."

	orderNumberSuffixLength = 9
	orderNumberAlphabet     = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

	minDeliveryMinutes = 30
	maxDeliveryMinutes = 45
)

// SimulatedGateway implements ports.PaymentGateway without calling a real provider.
// Cash is always accepted. Card charges are declined with probability declineRate.
type SimulatedGateway struct {
	declineRate float64
	rng         *rand.Rand
	now         func() time.Time
}

// NewSimulatedGateway creates a SimulatedGateway.
// declineRate must be in [0, 1].
func NewSimulatedGateway(declineRate float64, rng *rand.Rand) (*SimulatedGateway, error) {
	if declineRate < 0 || declineRate > 1 {
		return nil, errs.NewValueIsOutOfRangeError("declineRate", declineRate, 0.0, 1.0)
	}
	if rng == nil {
		return nil, errs.NewValueIsRequiredError("rng")
	}
	return &SimulatedGateway{
		declineRate: declineRate,
		rng:         rng,
		now:         time.Now,
	}, nil
}

// Charge implements ports.PaymentGateway.
func (g *SimulatedGateway) Charge(
	_ context.Context, method order.PaymentMethod, _ checkout.CardDetails, _ kernel.Money,
) (ports.PaymentReceipt, error) {
	if method == order.PaymentMethodCard && g.rng.Float64() < g.declineRate {
		return ports.PaymentReceipt{}, ports.ErrPaymentDeclined
	}

	now := g.now()
	deliveryMinutes := minDeliveryMinutes + g.rng.Intn(maxDeliveryMinutes-minDeliveryMinutes+1)

	message := cardConfirmationMessage
	if method == order.PaymentMethodCash {
		message = cashConfirmationMessage
	}

	return ports.PaymentReceipt{
		OrderNumber:       g.newOrderNumber(now),
		Message:           message,
		EstimatedDelivery: now.Add(time.Duration(deliveryMinutes) * time.Minute),
	}, nil
}

func (g *SimulatedGateway) newOrderNumber(now time.Time) string {
	suffix := make([]byte, orderNumberSuffixLength)
	for i := range suffix {
		suffix[i] = orderNumberAlphabet[g.rng.Intn(len(orderNumberAlphabet))]
	}
	return fmt.Sprintf("ORD-%d-%s", now.UnixMilli(), suffix)
}
