package queries

import (
	"errors"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/guard"
)

var ErrGetOrderByIDQueryIsNotConstructed = errors.New(
	"GetOrderByIDQuery must be created via NewGetOrderByIDQuery constructor",
)

// GetOrderByIDQuery retrieves a single order with its lines, delivery details
// and the statuses it may legally move to next.
type GetOrderByIDQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderByIDQuery creates a query for one order.
func NewGetOrderByIDQuery(orderID kernel.UUID) (GetOrderByIDQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderByIDQuery{}, err
	}

	return GetOrderByIDQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderByIDQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderByIDQueryIsNotConstructed)
}

// OrderID returns the identifier of the order to fetch.
func (q GetOrderByIDQuery) OrderID() kernel.UUID {
	return q.orderID
}

// OrderLineResponse represents one purchased line of an order.
type OrderLineResponse struct {
	MenuItemID          kernel.UUID
	Name                string
	UnitPriceCents      int64
	Quantity            int
	SpecialInstructions string
	SubtotalCents       int64
}

// GetOrderByIDQueryResponse represents the full order read model.
// AllowedNextStatuses drives the staff dashboard's action buttons.
type GetOrderByIDQueryResponse struct {
	ID                  kernel.UUID
	Number              string
	CustomerID          kernel.UUID
	Items               []OrderLineResponse
	TotalCents          int64
	Status              string
	PaymentMethod       string
	PaymentStatus       string
	Address             CheckoutAddressResponse
	CreatedAt           time.Time
	AllowedNextStatuses []string
}
