package commands

import (
	"errors"

	"storefront/internal/core/domain/model/checkout"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/guard"
)

var ErrNavigateBackCommandIsNotConstructed = errors.New(
	"NavigateBackCommand must be created via NewNavigateBackCommand constructor",
)

// NavigateBackCommand represents a customer stepping back to an earlier
// checkout step. Entered data is kept so the forms come back pre-filled.
type NavigateBackCommand struct { //nolint:recvcheck //using for validation
	customerID kernel.UUID
	target     checkout.Step

	guard guard.ConstructorGuard
}

// NewNavigateBackCommand creates a command to move back to the target step.
func NewNavigateBackCommand(customerID kernel.UUID, target checkout.Step) (NavigateBackCommand, error) {
	cmd := NavigateBackCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCustomerID(customerID),
		cmd.setTarget(target),
	); err != nil {
		return NavigateBackCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c NavigateBackCommand) Validate() error {
	return c.guard.Validate(ErrNavigateBackCommandIsNotConstructed)
}

// CustomerID returns the customer navigating.
func (c NavigateBackCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// Target returns the step to go back to.
func (c NavigateBackCommand) Target() checkout.Step {
	return c.target
}

func (c *NavigateBackCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *NavigateBackCommand) setTarget(target checkout.Step) error {
	if err := target.Validate(); err != nil {
		return err
	}

	c.target = target
	return nil
}
