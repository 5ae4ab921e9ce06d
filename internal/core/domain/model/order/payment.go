package order

import (
	"fmt"

	"storefront/internal/pkg/errs"
)

// PaymentMethod is the tagged variant of how the customer pays.
// Adding a new method means extending the constants, the string maps, and
// every switch the compiler then flags as non-exhaustive.
type PaymentMethod int

const (
	// PaymentMethodNone means no method has been selected yet.
	// It is only valid inside an unfinished checkout session.
	PaymentMethodNone PaymentMethod = iota

	// PaymentMethodCash is paid to the driver on delivery.
	PaymentMethodCash

	// PaymentMethodCard is charged through the payment gateway at placement.
	PaymentMethodCard
)

// getPaymentMethodStrings returns wire representations for selected methods.
func getPaymentMethodStrings() map[PaymentMethod]string {
	return map[PaymentMethod]string{
		PaymentMethodCash: "cash",
		PaymentMethodCard: "card",
	}
}

// PaymentMethodFromString parses the wire representation of a payment method.
func PaymentMethodFromString(s string) (PaymentMethod, error) {
	for method, str := range getPaymentMethodStrings() {
		if str == s {
			return method, nil
		}
	}
	return PaymentMethodNone, errs.NewValueIsInvalidErrorWithCause("paymentMethod",
		fmt.Errorf("%q is not a valid payment method", s))
}

// String returns the wire name of the method, or "none" when unselected.
func (m PaymentMethod) String() string {
	if str, ok := getPaymentMethodStrings()[m]; ok {
		return str
	}
	return "none"
}

// Validate checks that a method has been selected.
// PaymentMethodNone fails validation: an order cannot be placed without one.
func (m PaymentMethod) Validate() error {
	if _, ok := getPaymentMethodStrings()[m]; !ok {
		return errs.NewValueIsRequiredError("paymentMethod")
	}
	return nil
}

// PaymentStatus tracks whether the order's money has actually moved.
// It changes only through order placement and the two automatic effects in
// Order.ChangeStatus.
type PaymentStatus int

const (
	// PaymentStatusUnknown represents an invalid or undefined payment status.
	PaymentStatusUnknown PaymentStatus = iota

	// PaymentStatusPending means payment is owed, e.g. cash not yet collected.
	PaymentStatusPending

	// PaymentStatusPaid means payment has been received.
	PaymentStatusPaid

	// PaymentStatusFailed means the gateway rejected the charge.
	PaymentStatusFailed

	// PaymentStatusRefunded means a collected payment was returned after cancellation.
	PaymentStatusRefunded
)

func getPaymentStatusStrings() map[PaymentStatus]string {
	return map[PaymentStatus]string{
		PaymentStatusPending:  "pending",
		PaymentStatusPaid:     "paid",
		PaymentStatusFailed:   "failed",
		PaymentStatusRefunded: "refunded",
	}
}

// PaymentStatusFromString parses the wire representation of a payment status.
func PaymentStatusFromString(s string) (PaymentStatus, error) {
	for status, str := range getPaymentStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return PaymentStatusUnknown, errs.NewValueIsInvalidErrorWithCause("paymentStatus",
		fmt.Errorf("%q is not a valid payment status", s))
}

// String returns the wire name of the payment status.
func (s PaymentStatus) String() string {
	if str, ok := getPaymentStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// Validate checks if the PaymentStatus value is one of the defined states.
func (s PaymentStatus) Validate() error {
	if _, ok := getPaymentStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("paymentStatus",
			fmt.Errorf("%d is not a valid payment status", s))
	}
	return nil
}
