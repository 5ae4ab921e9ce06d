package commands

import (
	"context"

	"storefront/internal/pkg/errs"
)

// UpdateOrderStatusCommandHandler applies staff status changes to orders.
// Transition legality and the payment side effects (collecting cash on
// delivery, refunding cancelled paid orders) live on the order aggregate.
type UpdateOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewUpdateOrderStatusCommandHandler creates a handler for staff status updates.
func NewUpdateOrderStatusCommandHandler(uowFactory OrderUoWFactory) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the update order status command.
// Returns errs.ErrVersionIsInvalid when the order is no longer in the expected
// status, and order.ErrInvalidTransition when the move itself is not allowed.
func (h UpdateOrderStatusCommandHandler) Handle(ctx context.Context, cmd UpdateOrderStatusCommand) error {
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

	orderRepo := uow.OrderRepository()

	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if aggregate.Status() != cmd.Expected() {
		return errs.NewVersionIsInvalidError("status", cmd.Expected().String(), aggregate.Status().String())
	}

	if err = aggregate.ChangeStatus(cmd.Next()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
