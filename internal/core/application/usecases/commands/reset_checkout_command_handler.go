package commands

import (
	"context"
	"errors"

	"storefront/internal/pkg/errs"
)

// ResetCheckoutCommandHandler returns a checkout session to the cart step.
// Resetting when no session exists yet is a no-op.
type ResetCheckoutCommandHandler struct {
	uowFactory SessionUoWFactory
}

// NewResetCheckoutCommandHandler creates a handler for checkout resets.
func NewResetCheckoutCommandHandler(uowFactory SessionUoWFactory) ResetCheckoutCommandHandler {
	return ResetCheckoutCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the reset checkout command.
func (h ResetCheckoutCommandHandler) Handle(ctx context.Context, cmd ResetCheckoutCommand) error {
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
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	session.Reset()

	if err = sessionRepo.Update(ctx, session); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
