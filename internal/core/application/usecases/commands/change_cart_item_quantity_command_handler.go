package commands

import (
	"context"
	"errors"

	"storefront/internal/pkg/errs"
)

// ChangeCartItemQuantityCommandHandler handles quantity changes on cart lines.
// Quantities below one remove the line; missing carts and lines are no-ops.
type ChangeCartItemQuantityCommandHandler struct {
	uowFactory CartUoWFactory
}

// NewChangeCartItemQuantityCommandHandler creates a handler for quantity changes.
func NewChangeCartItemQuantityCommandHandler(uowFactory CartUoWFactory) ChangeCartItemQuantityCommandHandler {
	return ChangeCartItemQuantityCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the change quantity command.
func (h ChangeCartItemQuantityCommandHandler) Handle(ctx context.Context, cmd ChangeCartItemQuantityCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	cartRepo := uow.CartRepository()

	aggregate, err := cartRepo.GetByCustomer(ctx, cmd.CustomerID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	aggregate.SetQuantity(cmd.LineItemID(), cmd.Quantity())

	if err = cartRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
