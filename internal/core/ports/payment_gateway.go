package ports

import (
	"context"
	"errors"
	"time"

	"storefront/internal/core/domain/model/checkout"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
)

// ErrPaymentDeclined is returned when the payment provider rejects the charge.
// The checkout stays on the payment step so the customer can retry.
var ErrPaymentDeclined = errors.New("payment was declined")

// ErrSubmissionFailed is returned when the charge never reached the provider,
// for example a transport failure. Unlike ErrPaymentDeclined the provider made
// no decision; the checkout stays on the payment step so the customer can
// retry the same details.
var ErrSubmissionFailed = errors.New("payment submission failed")

// PaymentReceipt is the provider's confirmation of an accepted charge.
type PaymentReceipt struct {
	// OrderNumber is the human-facing reference assigned by the provider.
	OrderNumber string

	// Message is a customer-facing confirmation text.
	Message string

	// EstimatedDelivery is when the order is expected to arrive.
	EstimatedDelivery time.Time
}

// PaymentGateway defines the contract with the payment provider.
// Cash payments are always accepted; card payments may be declined.
type PaymentGateway interface {
	// Charge submits the payment for the given amount.
	// Card details are only consulted when method is card.
	// Returns ErrPaymentDeclined when the provider rejects the charge and
	// ErrSubmissionFailed when the charge could not be submitted at all.
	Charge(ctx context.Context, method order.PaymentMethod, details checkout.CardDetails, amount kernel.Money) (PaymentReceipt, error)
}
