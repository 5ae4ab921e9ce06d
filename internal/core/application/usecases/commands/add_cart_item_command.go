package commands

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/guard"
)

var (
	ErrAddCartItemCommandIsNotConstructed = errors.New(
		"AddCartItemCommand must be created via NewAddCartItemCommand constructor",
	)
	ErrMenuItemNameIsRequired = errors.New("menu item name is required")
	ErrQuantityIsInvalid      = errors.New("quantity must be greater than 0")
)

// AddCartItemCommand represents a request to put a menu item into a customer's cart.
// Carries the menu item details as presented to the customer at the moment of adding,
// so the cart line keeps the price the customer saw.
//
// Example:
//
//	cmd, err := NewAddCartItemCommand(customerID, menuItemID, "Margherita Pizza", price, true, 2, "extra basil")
//	if err != nil {
//	    return fmt.Errorf("invalid cart item data: %w", err)
//	}
//
//	handler := NewAddCartItemCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to add item: %w", err)
//	}
type AddCartItemCommand struct { //nolint:recvcheck //using for validation
	customerID          kernel.UUID
	menuItemID          kernel.UUID
	name                string
	unitPrice           kernel.Money
	available           bool
	quantity            int
	specialInstructions string

	guard guard.ConstructorGuard
}

// NewAddCartItemCommand creates a command to add a menu item to the cart.
// Validates that both identifiers are valid, the name is not empty and the
// quantity is positive. Returns an error if any validation fails.
func NewAddCartItemCommand(
	customerID kernel.UUID,
	menuItemID kernel.UUID,
	name string,
	unitPrice kernel.Money,
	available bool,
	quantity int,
	specialInstructions string,
) (AddCartItemCommand, error) {
	cmd := AddCartItemCommand{
		available:           available,
		specialInstructions: specialInstructions,
		guard:               guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCustomerID(customerID),
		cmd.setMenuItemID(menuItemID),
		cmd.setName(name),
		cmd.setUnitPrice(unitPrice),
		cmd.setQuantity(quantity),
	); err != nil {
		return AddCartItemCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAddCartItemCommandIsNotConstructed if validation fails.
func (c AddCartItemCommand) Validate() error {
	return c.guard.Validate(ErrAddCartItemCommandIsNotConstructed)
}

// CustomerID returns the cart owner's identifier.
func (c AddCartItemCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// MenuItemID returns the identifier of the menu item being added.
func (c AddCartItemCommand) MenuItemID() kernel.UUID {
	return c.menuItemID
}

// Name returns the menu item's display name.
func (c AddCartItemCommand) Name() string {
	return c.name
}

// UnitPrice returns the menu item's price at the moment of adding.
func (c AddCartItemCommand) UnitPrice() kernel.Money {
	return c.unitPrice
}

// Available reports whether the menu item is currently orderable.
func (c AddCartItemCommand) Available() bool {
	return c.available
}

// Quantity returns how many units to add.
func (c AddCartItemCommand) Quantity() int {
	return c.quantity
}

// SpecialInstructions returns the customer's free-text note for this item.
func (c AddCartItemCommand) SpecialInstructions() string {
	return c.specialInstructions
}

func (c *AddCartItemCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *AddCartItemCommand) setMenuItemID(menuItemID kernel.UUID) error {
	if err := menuItemID.Validate(); err != nil {
		return err
	}

	c.menuItemID = menuItemID
	return nil
}

func (c *AddCartItemCommand) setName(name string) error {
	if name == "" {
		return ErrMenuItemNameIsRequired
	}

	c.name = name
	return nil
}

func (c *AddCartItemCommand) setUnitPrice(unitPrice kernel.Money) error {
	c.unitPrice = unitPrice
	return nil
}

func (c *AddCartItemCommand) setQuantity(quantity int) error {
	if quantity <= 0 {
		return ErrQuantityIsInvalid
	}

	c.quantity = quantity
	return nil
}
