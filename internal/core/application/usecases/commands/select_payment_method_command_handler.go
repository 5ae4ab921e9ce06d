package commands

import (
	"context"
)

// SelectPaymentMethodCommandHandler records the customer's payment choice on the
// checkout session. The session stays on the payment step until the order is placed.
type SelectPaymentMethodCommandHandler struct {
	uowFactory SessionUoWFactory
}

// NewSelectPaymentMethodCommandHandler creates a handler for the payment choice.
func NewSelectPaymentMethodCommandHandler(uowFactory SessionUoWFactory) SelectPaymentMethodCommandHandler {
	return SelectPaymentMethodCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the select payment method command.
func (h SelectPaymentMethodCommandHandler) Handle(ctx context.Context, cmd SelectPaymentMethodCommand) error {
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

	if err = session.SelectPayment(cmd.Method(), cmd.CardDetails()); err != nil {
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
