package checkout

import (
	"errors"
	"time"

	"storefront/internal/core/domain/model/cart"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
)

var (
	// ErrSessionIsNotConstructed is returned when a Session instance was not
	// created through the NewSession or RestoreSession factory methods.
	ErrSessionIsNotConstructed = errors.New("Session must be created via NewSession or RestoreSession constructor")

	// ErrCartIsEmpty is returned when beginning checkout with an empty cart.
	// The caller should redirect the customer back to menu browsing.
	ErrCartIsEmpty = errors.New("cannot begin checkout with an empty cart")

	// ErrShippingAddressIsMissing is returned when advancing to payment
	// without a submitted shipping address.
	ErrShippingAddressIsMissing = errors.New("shipping address has not been submitted")

	// ErrPaymentMethodIsMissing is returned when completing checkout without
	// a selected payment method.
	ErrPaymentMethodIsMissing = errors.New("payment method has not been selected")
)

// Session is the aggregate root for one customer's checkout cycle.
//
// Session follows these invariants:
//   - Steps advance strictly forward one at a time, each move guarded
//   - Backward navigation never discards entered data
//   - Confirmation is terminal; only Reset leaves it
//   - OrderTotal is set exactly when the order is submitted and survives
//     the cart being cleared afterwards
//
// Guard failures are local and recoverable: they return an error and leave
// the session exactly as it was, so the UI re-renders the current step with
// an error annotation.
type Session struct {
	customerID    kernel.UUID
	step          Step
	address       *kernel.Address
	paymentMethod order.PaymentMethod
	cardDetails   CardDetails
	orderID       *kernel.UUID
	orderTotal    kernel.Money
	updatedAt     time.Time

	isConstructed bool
}

// NewSession creates a fresh checkout session at the cart step.
func NewSession(customerID kernel.UUID) (*Session, error) {
	if err := customerID.Validate(); err != nil {
		return nil, err
	}

	return &Session{
		customerID:    customerID,
		step:          StepCart,
		updatedAt:     time.Now().UTC(),
		isConstructed: true,
	}, nil
}

// RestoreSession reconstructs a session from persistence.
func RestoreSession(
	customerID kernel.UUID,
	step Step,
	address *kernel.Address,
	paymentMethod order.PaymentMethod,
	cardDetails CardDetails,
	orderID *kernel.UUID,
	orderTotal kernel.Money,
	updatedAt time.Time,
) (*Session, error) {
	if err := errors.Join(customerID.Validate(), step.Validate()); err != nil {
		return nil, err
	}
	if address != nil {
		if err := address.Validate(); err != nil {
			return nil, err
		}
	}
	if orderID != nil {
		if err := orderID.Validate(); err != nil {
			return nil, err
		}
	}

	return &Session{
		customerID:    customerID,
		step:          step,
		address:       address,
		paymentMethod: paymentMethod,
		cardDetails:   cardDetails,
		orderID:       orderID,
		orderTotal:    orderTotal,
		updatedAt:     updatedAt,
		isConstructed: true,
	}, nil
}

// Validate ensures the Session instance was properly constructed.
func (s *Session) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrSessionIsNotConstructed
	}
	return nil
}

// CustomerID returns the owning customer's identifier.
func (s *Session) CustomerID() kernel.UUID {
	return s.customerID
}

// Step returns the active checkout step.
func (s *Session) Step() Step {
	return s.step
}

// Address returns the submitted shipping address, or nil before details
// are submitted. Used to pre-fill the form on backward navigation.
func (s *Session) Address() *kernel.Address {
	return s.address
}

// PaymentMethod returns the selected payment method, PaymentMethodNone
// before selection.
func (s *Session) PaymentMethod() order.PaymentMethod {
	return s.paymentMethod
}

// CardDetails returns the entered card details for form pre-fill.
func (s *Session) CardDetails() CardDetails {
	return s.cardDetails
}

// OrderID returns the placed order's identifier, or nil before placement.
func (s *Session) OrderID() *kernel.UUID {
	return s.orderID
}

// OrderTotal returns the amount captured when the order was submitted.
// Zero until placement.
func (s *Session) OrderTotal() kernel.Money {
	return s.orderTotal
}

// UpdatedAt returns the time of the last mutating call.
func (s *Session) UpdatedAt() time.Time {
	return s.updatedAt
}

// BeginCheckout advances cart -> details.
// Guarded by the cart holding at least one line; an empty cart fails with
// ErrCartIsEmpty and the session stays at the cart step.
func (s *Session) BeginCheckout(snapshot cart.Snapshot) error {
	if s.step != StepCart {
		return NewInvalidStepTransitionError(s.step, StepDetails)
	}
	if snapshot.IsEmpty() {
		return ErrCartIsEmpty
	}

	s.step = StepDetails
	s.touch()
	return nil
}

// SubmitShippingDetails stores the address and advances details -> payment.
// The address must come from kernel.NewAddress; an unconstructed one is rejected.
func (s *Session) SubmitShippingDetails(address kernel.Address) error {
	if s.step != StepDetails {
		return NewInvalidStepTransitionError(s.step, StepPayment)
	}
	if err := address.Validate(); err != nil {
		return err
	}

	s.address = &address
	s.step = StepPayment
	s.touch()
	return nil
}

// SelectPayment records the payment method and, for card payments, the card
// form contents. Only legal on the payment step. Card details are retained
// so the form is pre-filled when the customer navigates back and returns.
func (s *Session) SelectPayment(method order.PaymentMethod, cardDetails CardDetails) error {
	if s.step != StepPayment {
		return NewInvalidStepTransitionError(s.step, StepPayment)
	}
	if err := method.Validate(); err != nil {
		return err
	}

	s.paymentMethod = method
	if method == order.PaymentMethodCard {
		s.cardDetails = cardDetails
	}
	s.touch()
	return nil
}

// CompleteOrder records the submitted order and advances payment -> confirmation.
//
// orderTotal must be the cart total captured before the cart is cleared;
// after this call the session is the only record of the charged amount.
// A failed submission must NOT reach this method: the session stays on the
// payment step, fully retryable.
func (s *Session) CompleteOrder(orderID kernel.UUID, orderTotal kernel.Money) error {
	if s.step != StepPayment {
		return NewInvalidStepTransitionError(s.step, StepConfirmation)
	}
	if err := s.paymentMethod.Validate(); err != nil {
		return ErrPaymentMethodIsMissing
	}
	if s.address == nil {
		return ErrShippingAddressIsMissing
	}
	if err := orderID.Validate(); err != nil {
		return err
	}

	s.orderID = &orderID
	s.orderTotal = orderTotal
	s.step = StepConfirmation
	s.touch()
	return nil
}

// GoBack navigates to a prior step without touching entered data.
// Any earlier step is reachable except out of confirmation.
func (s *Session) GoBack(target Step) error {
	if !s.step.CanGoBackTo(target) {
		return NewInvalidStepTransitionError(s.step, target)
	}

	s.step = target
	s.touch()
	return nil
}

// Reset returns the session to the cart step and clears address, payment,
// and order fields. Invoked when the customer starts a new order cycle.
func (s *Session) Reset() {
	s.step = StepCart
	s.address = nil
	s.paymentMethod = order.PaymentMethodNone
	s.cardDetails = CardDetails{}
	s.orderID = nil
	s.orderTotal = kernel.Money{}
	s.touch()
}

func (s *Session) touch() {
	s.updatedAt = time.Now().UTC()
}
