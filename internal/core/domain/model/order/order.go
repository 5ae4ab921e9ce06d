package order

import (
	"errors"
	"strings"
	"time"

	"storefront/internal/core/domain/model/cart"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through the NewOrder or RestoreOrder factory methods.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")

	// ErrOrderHasNoItems is returned when creating an order from an empty item list.
	ErrOrderHasNoItems = errors.New("order must contain at least one item")
)

// Order represents a placed customer order. It is the aggregate root the staff
// side works with: everything except status and paymentStatus is frozen at
// placement time.
//
// Order follows these invariants:
//   - Must have a valid unique identifier, order number, and customer
//   - Must contain at least one line item
//   - Total is the snapshot total captured at placement, not recomputed
//   - Status transitions follow the legal table in Status
//   - Payment status changes only through the two automatic effects
//   - Can only be created through NewOrder or RestoreOrder
type Order struct {
	id            kernel.UUID
	number        string
	customerID    kernel.UUID
	items         []*cart.LineItem
	total         kernel.Money
	status        Status
	paymentMethod PaymentMethod
	paymentStatus PaymentStatus
	address       kernel.Address
	createdAt     time.Time

	isConstructed bool
}

// NewOrder creates a new Order in pending status from the checkout results.
//
// The item list and total come from the cart snapshot taken at submission
// time. Card orders start with payment already collected by the gateway;
// cash orders owe payment until delivery.
func NewOrder(
	id kernel.UUID,
	number string,
	customerID kernel.UUID,
	items []*cart.LineItem,
	total kernel.Money,
	paymentMethod PaymentMethod,
	address kernel.Address,
) (*Order, error) {
	o := &Order{
		total:         total,
		status:        StatusPending,
		createdAt:     time.Now().UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setNumber(number),
		o.setCustomerID(customerID),
		o.setItems(items),
		o.setPaymentMethod(paymentMethod),
		o.setAddress(address),
	); err != nil {
		return nil, err
	}

	switch paymentMethod {
	case PaymentMethodCard:
		o.paymentStatus = PaymentStatusPaid
	case PaymentMethodCash:
		o.paymentStatus = PaymentStatusPending
	case PaymentMethodNone:
		// unreachable, setPaymentMethod rejected it
	}

	return o, nil
}

// RestoreOrder reconstructs an order from persistence with its stored
// status, payment status, and creation time.
func RestoreOrder(
	id kernel.UUID,
	number string,
	customerID kernel.UUID,
	items []*cart.LineItem,
	total kernel.Money,
	status Status,
	paymentMethod PaymentMethod,
	paymentStatus PaymentStatus,
	address kernel.Address,
	createdAt time.Time,
) (*Order, error) {
	o, err := NewOrder(id, number, customerID, items, total, paymentMethod, address)
	if err != nil {
		return nil, err
	}

	if err := errors.Join(status.Validate(), paymentStatus.Validate()); err != nil {
		return nil, err
	}

	o.status = status
	o.paymentStatus = paymentStatus
	o.createdAt = createdAt
	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Number returns the human-readable order number, e.g. "ORD-1718822400000-4F7K2M9QA".
func (o *Order) Number() string {
	return o.number
}

// CustomerID returns the identifier of the ordering customer.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// Items returns the line items captured at placement.
// The returned slice is a copy.
func (o *Order) Items() []*cart.LineItem {
	items := make([]*cart.LineItem, len(o.items))
	copy(items, o.items)
	return items
}

// Total returns the amount charged, captured from the cart at placement.
func (o *Order) Total() kernel.Money {
	return o.total
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// PaymentMethod returns how the customer pays.
func (o *Order) PaymentMethod() PaymentMethod {
	return o.paymentMethod
}

// PaymentStatus returns whether payment has been collected.
func (o *Order) PaymentStatus() PaymentStatus {
	return o.paymentStatus
}

// Address returns the delivery address captured at placement.
func (o *Order) Address() kernel.Address {
	return o.address
}

// CreatedAt returns the placement time.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// AllowedNextStatuses returns the statuses staff may legally move this order
// to, for rendering the status-update control.
func (o *Order) AllowedNextStatuses() []Status {
	return o.status.AllowedTransitions()
}

// ChangeStatus advances the order along the transition graph.
//
// Two automatic cross-field effects apply:
//   - moving into delivered while the order is cash-on-delivery and payment
//     is still pending marks the payment paid (cash collected at the door)
//   - moving into cancelled while payment is paid marks it refunded
//
// An attempted transition outside the legal table fails with
// *InvalidTransitionError and leaves the order unchanged.
func (o *Order) ChangeStatus(next Status) error {
	newStatus, err := o.status.TransitionTo(next)
	if err != nil {
		return err
	}

	o.status = newStatus

	switch newStatus {
	case StatusDelivered:
		if o.paymentMethod == PaymentMethodCash && o.paymentStatus == PaymentStatusPending {
			o.paymentStatus = PaymentStatusPaid
		}
	case StatusCancelled:
		if o.paymentStatus == PaymentStatusPaid {
			o.paymentStatus = PaymentStatusRefunded
		}
	case StatusUnknown, StatusPending, StatusConfirmed, StatusPreparing, StatusReady, StatusOutForDelivery:
		// no cross-field effect
	}

	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setNumber(number string) error {
	number = strings.TrimSpace(number)
	if number == "" {
		return errs.NewValueIsRequiredError("orderNumber")
	}
	o.number = number
	return nil
}

func (o *Order) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("customerId", err)
	}
	o.customerID = customerID
	return nil
}

func (o *Order) setItems(items []*cart.LineItem) error {
	if len(items) == 0 {
		return ErrOrderHasNoItems
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	o.items = make([]*cart.LineItem, len(items))
	copy(o.items, items)
	return nil
}

func (o *Order) setPaymentMethod(method PaymentMethod) error {
	if err := method.Validate(); err != nil {
		return err
	}
	o.paymentMethod = method
	return nil
}

func (o *Order) setAddress(address kernel.Address) error {
	if err := address.Validate(); err != nil {
		return err
	}
	o.address = address
	return nil
}
