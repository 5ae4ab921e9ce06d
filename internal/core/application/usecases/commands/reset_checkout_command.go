package commands

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/guard"
)

var ErrResetCheckoutCommandIsNotConstructed = errors.New(
	"ResetCheckoutCommand must be created via NewResetCheckoutCommand constructor",
)

// ResetCheckoutCommand represents a request to abandon the current checkout
// and return the session to the cart step, discarding everything entered.
// Issued after a completed order's confirmation has been seen, or when the
// customer bails out of the flow.
type ResetCheckoutCommand struct { //nolint:recvcheck //using for validation
	customerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewResetCheckoutCommand creates a command to reset the checkout session.
func NewResetCheckoutCommand(customerID kernel.UUID) (ResetCheckoutCommand, error) {
	cmd := ResetCheckoutCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setCustomerID(customerID); err != nil {
		return ResetCheckoutCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ResetCheckoutCommand) Validate() error {
	return c.guard.Validate(ErrResetCheckoutCommandIsNotConstructed)
}

// CustomerID returns the customer whose session resets.
func (c ResetCheckoutCommand) CustomerID() kernel.UUID {
	return c.customerID
}

func (c *ResetCheckoutCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}
