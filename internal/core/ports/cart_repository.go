// Package ports defines repository and gateway interfaces for the storefront domain.
// These interfaces establish contracts between the domain layer and infrastructure,
// enabling dependency inversion and testability.
package ports

import (
	"context"
	"time"

	"storefront/internal/core/domain/model/cart"
	"storefront/internal/core/domain/model/kernel"
)

// CartRepository defines the persistence contract for cart aggregates.
// Carts are keyed by customer: each customer has at most one active cart.
type CartRepository interface {
	// Add persists a new cart aggregate to storage.
	// The cart must be valid and the customer must not already have one.
	Add(ctx context.Context, aggregate *cart.Cart) error

	// Update persists changes to an existing cart aggregate,
	// replacing its full line item set.
	Update(ctx context.Context, aggregate *cart.Cart) error

	// GetByCustomer retrieves the cart for the given customer.
	// Returns errs.ObjectNotFoundError when the customer has no cart yet.
	GetByCustomer(ctx context.Context, customerID kernel.UUID) (*cart.Cart, error)

	// GetAllUpdatedBefore retrieves carts whose last modification is older
	// than the cutoff. Used by the abandoned cart sweep.
	GetAllUpdatedBefore(ctx context.Context, cutoff time.Time) ([]*cart.Cart, error)
}
