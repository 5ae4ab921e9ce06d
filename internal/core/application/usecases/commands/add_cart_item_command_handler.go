package commands

import (
	"context"
	"errors"

	"storefront/internal/core/domain/model/cart"
	"storefront/internal/pkg/errs"
)

// AddCartItemCommandHandler handles the business logic for adding menu items to carts.
// Creates the customer's cart on first use and merges repeat additions of the
// same item with the same special instructions into a single line.
//
// Example:
//
//	handler := NewAddCartItemCommandHandler(uowFactory)
//	cmd, _ := NewAddCartItemCommand(customerID, menuItemID, "Margherita Pizza", price, true, 2, "")
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("adding to cart failed: %w", err)
//	}
type AddCartItemCommandHandler struct {
	uowFactory CartUoWFactory
}

// NewAddCartItemCommandHandler creates a handler for cart addition operations.
// Requires a CartUoWFactory for transactional persistence.
func NewAddCartItemCommandHandler(uowFactory CartUoWFactory) AddCartItemCommandHandler {
	return AddCartItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the add cart item command.
// Loads the customer's cart, creating it when absent, and adds the item through
// the aggregate so merge and availability rules apply. Uses a transaction to
// ensure the cart is properly persisted or rolled back on error.
func (h AddCartItemCommandHandler) Handle(ctx context.Context, cmd AddCartItemCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	menuItem, err := cart.NewMenuItem(cmd.MenuItemID(), cmd.Name(), cmd.UnitPrice(), cmd.Available())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	cartRepo := uow.CartRepository()

	aggregate, err := cartRepo.GetByCustomer(ctx, cmd.CustomerID())
	isNewCart := errors.Is(err, errs.ErrObjectNotFound)
	if isNewCart {
		aggregate, err = cart.NewCart(cmd.CustomerID())
	}
	if err != nil {
		return err
	}

	if _, err = aggregate.AddItem(menuItem, cmd.Quantity(), cmd.SpecialInstructions()); err != nil {
		return err
	}

	if isNewCart {
		err = cartRepo.Add(ctx, aggregate)
	} else {
		err = cartRepo.Update(ctx, aggregate)
	}
	if err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
