package commands

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/guard"
)

var ErrBeginCheckoutCommandIsNotConstructed = errors.New(
	"BeginCheckoutCommand must be created via NewBeginCheckoutCommand constructor",
)

// BeginCheckoutCommand represents a request to start checkout from the cart.
// Checkout can only begin when the cart has at least one line.
type BeginCheckoutCommand struct { //nolint:recvcheck //using for validation
	customerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewBeginCheckoutCommand creates a command to start the checkout flow.
func NewBeginCheckoutCommand(customerID kernel.UUID) (BeginCheckoutCommand, error) {
	cmd := BeginCheckoutCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setCustomerID(customerID); err != nil {
		return BeginCheckoutCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c BeginCheckoutCommand) Validate() error {
	return c.guard.Validate(ErrBeginCheckoutCommandIsNotConstructed)
}

// CustomerID returns the customer starting checkout.
func (c BeginCheckoutCommand) CustomerID() kernel.UUID {
	return c.customerID
}

func (c *BeginCheckoutCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}
