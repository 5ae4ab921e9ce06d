package commands

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/guard"
)

var ErrChangeCartItemQuantityCommandIsNotConstructed = errors.New(
	"ChangeCartItemQuantityCommand must be created via NewChangeCartItemQuantityCommand constructor",
)

// ChangeCartItemQuantityCommand represents a request to set the quantity of a cart line.
// A quantity below one removes the line, mirroring the storefront's stepper control.
type ChangeCartItemQuantityCommand struct { //nolint:recvcheck //using for validation
	customerID kernel.UUID
	lineItemID kernel.UUID
	quantity   int

	guard guard.ConstructorGuard
}

// NewChangeCartItemQuantityCommand creates a command to change a line's quantity.
// The quantity itself is not range checked here: zero and negative values are a
// remove request handled by the cart aggregate.
func NewChangeCartItemQuantityCommand(
	customerID, lineItemID kernel.UUID,
	quantity int,
) (ChangeCartItemQuantityCommand, error) {
	cmd := ChangeCartItemQuantityCommand{
		quantity: quantity,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCustomerID(customerID),
		cmd.setLineItemID(lineItemID),
	); err != nil {
		return ChangeCartItemQuantityCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangeCartItemQuantityCommand) Validate() error {
	return c.guard.Validate(ErrChangeCartItemQuantityCommandIsNotConstructed)
}

// CustomerID returns the cart owner's identifier.
func (c ChangeCartItemQuantityCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// LineItemID returns the identifier of the cart line to change.
func (c ChangeCartItemQuantityCommand) LineItemID() kernel.UUID {
	return c.lineItemID
}

// Quantity returns the requested quantity.
func (c ChangeCartItemQuantityCommand) Quantity() int {
	return c.quantity
}

func (c *ChangeCartItemQuantityCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *ChangeCartItemQuantityCommand) setLineItemID(lineItemID kernel.UUID) error {
	if err := lineItemID.Validate(); err != nil {
		return err
	}

	c.lineItemID = lineItemID
	return nil
}
