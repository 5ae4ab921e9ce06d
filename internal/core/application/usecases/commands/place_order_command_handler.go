package commands

import (
	"context"
	"errors"
	"time"

	"storefront/internal/core/domain/model/checkout"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/domain/services"
	"storefront/internal/core/ports"
)

// ErrInvalidCardDetails is returned when the card form fails validation.
// Wrapped by InvalidCardDetailsError, which carries the customer-facing reason.
var ErrInvalidCardDetails = errors.New("invalid card details")

// InvalidCardDetailsError reports which card rule was violated.
type InvalidCardDetailsError struct {
	Reason string
}

// NewInvalidCardDetailsError creates an error for a failed card check.
func NewInvalidCardDetailsError(reason string) *InvalidCardDetailsError {
	return &InvalidCardDetailsError{Reason: reason}
}

func (e *InvalidCardDetailsError) Error() string {
	return ErrInvalidCardDetails.Error() + ": " + e.Reason
}

func (e *InvalidCardDetailsError) Unwrap() error {
	return ErrInvalidCardDetails
}

// PlaceOrderResult carries the confirmation details for a placed order.
type PlaceOrderResult struct {
	OrderID           kernel.UUID
	OrderNumber       string
	Total             kernel.Money
	Message           string
	EstimatedDelivery time.Time
}

// PlaceOrderCommandHandler turns the cart into an order at the end of checkout.
//
// The total is captured from the cart snapshot before the cart is cleared, so
// the confirmation never shows a zero amount. Order creation, cart clearing and
// the session's move to confirmation commit in one transaction: a declined
// payment or any persistence failure rolls everything back and leaves the
// customer on the payment step with the cart intact.
type PlaceOrderCommandHandler struct {
	uowFactory    UoWFactory
	gateway       ports.PaymentGateway
	cardValidator services.CardValidator
}

// NewPlaceOrderCommandHandler creates a handler for order placement.
// Requires a UoWFactory spanning cart, session and order repositories,
// plus the payment gateway.
func NewPlaceOrderCommandHandler(uowFactory UoWFactory, gateway ports.PaymentGateway) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{
		uowFactory:    uowFactory,
		gateway:       gateway,
		cardValidator: services.NewCardValidator(),
	}
}

// Handle processes the place order command.
// Returns ErrInvalidCardDetails when the card form fails validation,
// ports.ErrPaymentDeclined when the provider rejects the charge, and
// checkout step errors when the session is not ready to place an order.
func (h PlaceOrderCommandHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) (PlaceOrderResult, error) {
	if err := cmd.Validate(); err != nil {
		return PlaceOrderResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return PlaceOrderResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	sessionRepo := uow.CheckoutSessionRepository()

	session, err := sessionRepo.GetByCustomer(ctx, cmd.CustomerID())
	if err != nil {
		return PlaceOrderResult{}, err
	}

	if session.Step() != checkout.StepPayment {
		return PlaceOrderResult{}, checkout.NewInvalidStepTransitionError(session.Step(), checkout.StepConfirmation)
	}
	if session.Address() == nil {
		return PlaceOrderResult{}, checkout.ErrShippingAddressIsMissing
	}
	if session.PaymentMethod().Validate() != nil {
		return PlaceOrderResult{}, checkout.ErrPaymentMethodIsMissing
	}

	cartRepo := uow.CartRepository()

	aggregate, err := cartRepo.GetByCustomer(ctx, cmd.CustomerID())
	if err != nil {
		return PlaceOrderResult{}, err
	}

	snapshot := aggregate.Snapshot()
	if snapshot.IsEmpty() {
		return PlaceOrderResult{}, checkout.ErrCartIsEmpty
	}

	if session.PaymentMethod() == order.PaymentMethodCard {
		if result := h.cardValidator.Validate(session.CardDetails()); !result.Valid {
			return PlaceOrderResult{}, NewInvalidCardDetailsError(result.Reason)
		}
	}

	receipt, err := h.gateway.Charge(ctx, session.PaymentMethod(), session.CardDetails(), snapshot.Total)
	if err != nil {
		return PlaceOrderResult{}, err
	}

	// The snapshot total is the order total from here on; the cart is about
	// to be emptied.
	total := snapshot.Total

	newOrder, err := order.NewOrder(
		cmd.OrderID(), receipt.OrderNumber, cmd.CustomerID(),
		snapshot.Items, total, session.PaymentMethod(), *session.Address())
	if err != nil {
		return PlaceOrderResult{}, err
	}

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return PlaceOrderResult{}, err
	}

	aggregate.Clear()
	if err = cartRepo.Update(ctx, aggregate); err != nil {
		return PlaceOrderResult{}, err
	}

	if err = session.CompleteOrder(cmd.OrderID(), total); err != nil {
		return PlaceOrderResult{}, err
	}

	if err = sessionRepo.Update(ctx, session); err != nil {
		return PlaceOrderResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return PlaceOrderResult{}, err
	}

	return PlaceOrderResult{
		OrderID:           cmd.OrderID(),
		OrderNumber:       receipt.OrderNumber,
		Total:             total,
		Message:           receipt.Message,
		EstimatedDelivery: receipt.EstimatedDelivery,
	}, nil
}
