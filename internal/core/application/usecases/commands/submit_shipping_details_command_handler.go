package commands

import (
	"context"

	"storefront/internal/core/domain/model/kernel"
)

// SubmitShippingDetailsCommandHandler stores the delivery address and advances
// the checkout session from details to payment.
type SubmitShippingDetailsCommandHandler struct {
	uowFactory SessionUoWFactory
}

// NewSubmitShippingDetailsCommandHandler creates a handler for the details step.
func NewSubmitShippingDetailsCommandHandler(uowFactory SessionUoWFactory) SubmitShippingDetailsCommandHandler {
	return SubmitShippingDetailsCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the submit shipping details command.
// Builds the address value object, which enforces the required-field rules,
// then advances the session.
func (h SubmitShippingDetailsCommandHandler) Handle(ctx context.Context, cmd SubmitShippingDetailsCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	address, err := kernel.NewAddress(
		cmd.FullName(), cmd.Street(), cmd.City(), cmd.PostalCode(), cmd.Phone(), cmd.Instructions())
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

	sessionRepo := uow.CheckoutSessionRepository()

	session, err := sessionRepo.GetByCustomer(ctx, cmd.CustomerID())
	if err != nil {
		return err
	}

	if err = session.SubmitShippingDetails(address); err != nil {
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
