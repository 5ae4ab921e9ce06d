// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/guard"
)

var ErrGetCartQueryIsNotConstructed = errors.New(
	"GetCartQuery must be created via NewGetCartQuery constructor",
)

// GetCartQuery retrieves a customer's cart with computed totals.
// A customer who has never added anything gets an empty cart view,
// not an error.
//
// Example:
//
//	query, _ := NewGetCartQuery(customerID)
//	handler := NewGetCartQueryHandler(db)
//
//	cart, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to retrieve cart: %w", err)
//	}
//	fmt.Printf("%d items, total %d cents\n", cart.ItemCount, cart.TotalCents)
type GetCartQuery struct {
	customerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetCartQuery creates a query for the given customer's cart.
func NewGetCartQuery(customerID kernel.UUID) (GetCartQuery, error) {
	if err := customerID.Validate(); err != nil {
		return GetCartQuery{}, err
	}

	return GetCartQuery{
		customerID: customerID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCartQuery) Validate() error {
	return q.guard.Validate(ErrGetCartQueryIsNotConstructed)
}

// CustomerID returns the cart owner's identifier.
func (q GetCartQuery) CustomerID() kernel.UUID {
	return q.customerID
}

// CartLineResponse represents one cart line in the read model.
type CartLineResponse struct {
	ID                  kernel.UUID
	MenuItemID          kernel.UUID
	Name                string
	UnitPriceCents      int64
	Quantity            int
	SpecialInstructions string
	SubtotalCents       int64
}

// GetCartQueryResponse represents the cart read model with derived totals.
type GetCartQueryResponse struct {
	Items      []CartLineResponse
	TotalCents int64
	ItemCount  int
}
