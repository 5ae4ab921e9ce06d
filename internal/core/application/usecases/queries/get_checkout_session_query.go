package queries

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/guard"
)

var ErrGetCheckoutSessionQueryIsNotConstructed = errors.New(
	"GetCheckoutSessionQuery must be created via NewGetCheckoutSessionQuery constructor",
)

// GetCheckoutSessionQuery retrieves a customer's checkout flow state, used to
// re-render the right step with previously entered values after a reload.
type GetCheckoutSessionQuery struct {
	customerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetCheckoutSessionQuery creates a query for the given customer's session.
func NewGetCheckoutSessionQuery(customerID kernel.UUID) (GetCheckoutSessionQuery, error) {
	if err := customerID.Validate(); err != nil {
		return GetCheckoutSessionQuery{}, err
	}

	return GetCheckoutSessionQuery{
		customerID: customerID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCheckoutSessionQuery) Validate() error {
	return q.guard.Validate(ErrGetCheckoutSessionQueryIsNotConstructed)
}

// CustomerID returns the session owner's identifier.
func (q GetCheckoutSessionQuery) CustomerID() kernel.UUID {
	return q.customerID
}

// CheckoutAddressResponse carries the delivery details as entered.
type CheckoutAddressResponse struct {
	FullName     string
	Street       string
	City         string
	PostalCode   string
	Phone        string
	Instructions string
}

// GetCheckoutSessionQueryResponse represents the checkout flow read model.
// Card security fields are never exposed: only the cardholder name comes back
// for pre-filling the form.
type GetCheckoutSessionQueryResponse struct {
	Step            string
	Address         *CheckoutAddressResponse
	PaymentMethod   string
	CardholderName  string
	OrderID         *kernel.UUID
	OrderTotalCents int64
}
