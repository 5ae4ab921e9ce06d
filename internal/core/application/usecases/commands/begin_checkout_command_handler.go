package commands

import (
	"context"
	"errors"

	"storefront/internal/core/domain/model/checkout"
	"storefront/internal/pkg/errs"
)

// BeginCheckoutCommandHandler moves a customer from the cart onto the details step.
// Creates the checkout session on first use. A missing or empty cart rejects the
// transition with checkout.ErrCartIsEmpty.
//
// Example:
//
//	handler := NewBeginCheckoutCommandHandler(uowFactory)
//	cmd, _ := NewBeginCheckoutCommand(customerID)
//	err := handler.Handle(ctx, cmd)
//	if errors.Is(err, checkout.ErrCartIsEmpty) {
//	    // Customer has nothing to check out
//	}
type BeginCheckoutCommandHandler struct {
	uowFactory CheckoutUoWFactory
}

// NewBeginCheckoutCommandHandler creates a handler for starting checkout.
// Requires a CheckoutUoWFactory because the cart is read in the same transaction
// that advances the session.
func NewBeginCheckoutCommandHandler(uowFactory CheckoutUoWFactory) BeginCheckoutCommandHandler {
	return BeginCheckoutCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the begin checkout command.
func (h BeginCheckoutCommandHandler) Handle(ctx context.Context, cmd BeginCheckoutCommand) error {
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
		return checkout.ErrCartIsEmpty
	}
	if err != nil {
		return err
	}

	sessionRepo := uow.CheckoutSessionRepository()

	session, err := sessionRepo.GetByCustomer(ctx, cmd.CustomerID())
	isNewSession := errors.Is(err, errs.ErrObjectNotFound)
	if isNewSession {
		session, err = checkout.NewSession(cmd.CustomerID())
	}
	if err != nil {
		return err
	}

	if err = session.BeginCheckout(aggregate.Snapshot()); err != nil {
		return err
	}

	if isNewSession {
		err = sessionRepo.Add(ctx, session)
	} else {
		err = sessionRepo.Update(ctx, session)
	}
	if err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
