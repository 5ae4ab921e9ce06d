package commands

import (
	"errors"

	"storefront/internal/core/domain/model/checkout"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/guard"
)

var ErrSelectPaymentMethodCommandIsNotConstructed = errors.New(
	"SelectPaymentMethodCommand must be created via NewSelectPaymentMethodCommand constructor",
)

// SelectPaymentMethodCommand represents a customer choosing how to pay.
// Card details ride along unvalidated so the form can be re-shown pre-filled;
// they are only checked when the order is placed.
type SelectPaymentMethodCommand struct { //nolint:recvcheck //using for validation
	customerID  kernel.UUID
	method      order.PaymentMethod
	cardDetails checkout.CardDetails

	guard guard.ConstructorGuard
}

// NewSelectPaymentMethodCommand creates a command to record the payment choice.
// Validates the customer identifier and that a concrete method was picked.
func NewSelectPaymentMethodCommand(
	customerID kernel.UUID,
	method order.PaymentMethod,
	cardDetails checkout.CardDetails,
) (SelectPaymentMethodCommand, error) {
	cmd := SelectPaymentMethodCommand{
		cardDetails: cardDetails,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCustomerID(customerID),
		cmd.setMethod(method),
	); err != nil {
		return SelectPaymentMethodCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SelectPaymentMethodCommand) Validate() error {
	return c.guard.Validate(ErrSelectPaymentMethodCommandIsNotConstructed)
}

// CustomerID returns the customer making the choice.
func (c SelectPaymentMethodCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// Method returns the chosen payment method.
func (c SelectPaymentMethodCommand) Method() order.PaymentMethod {
	return c.method
}

// CardDetails returns the card form values as entered.
func (c SelectPaymentMethodCommand) CardDetails() checkout.CardDetails {
	return c.cardDetails
}

func (c *SelectPaymentMethodCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *SelectPaymentMethodCommand) setMethod(method order.PaymentMethod) error {
	if err := method.Validate(); err != nil {
		return err
	}

	c.method = method
	return nil
}
