package commands

import (
	"context"
)

// RemoveAbandonedCartsCommandHandler empties carts left idle past the cutoff.
// Clearing touches the cart's modification time, so a swept cart is not picked
// up again on the next run.
type RemoveAbandonedCartsCommandHandler struct {
	uowFactory CartUoWFactory
}

// NewRemoveAbandonedCartsCommandHandler creates a handler for the cart sweep.
func NewRemoveAbandonedCartsCommandHandler(uowFactory CartUoWFactory) RemoveAbandonedCartsCommandHandler {
	return RemoveAbandonedCartsCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the sweep command. All stale carts clear in one transaction.
func (h RemoveAbandonedCartsCommandHandler) Handle(ctx context.Context, cmd RemoveAbandonedCartsCommand) error {
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

	carts, err := cartRepo.GetAllUpdatedBefore(ctx, cmd.Cutoff())
	if err != nil {
		return err
	}

	for _, aggregate := range carts {
		if aggregate.IsEmpty() {
			continue
		}

		aggregate.Clear()
		if err = cartRepo.Update(ctx, aggregate); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
