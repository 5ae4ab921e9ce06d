package commands

import (
	"context"
)

// NavigateBackCommandHandler moves the checkout session back to an earlier step.
type NavigateBackCommandHandler struct {
	uowFactory SessionUoWFactory
}

// NewNavigateBackCommandHandler creates a handler for backward navigation.
func NewNavigateBackCommandHandler(uowFactory SessionUoWFactory) NavigateBackCommandHandler {
	return NavigateBackCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the navigate back command.
func (h NavigateBackCommandHandler) Handle(ctx context.Context, cmd NavigateBackCommand) error {
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

	sessionRepo := uow.CheckoutSessionRepository()

	session, err := sessionRepo.GetByCustomer(ctx, cmd.CustomerID())
	if err != nil {
		return err
	}

	if err = session.GoBack(cmd.Target()); err != nil {
		return err
	}

	if err = sessionRepo.Update(ctx, session); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
