package ports

import (
	"context"

	"storefront/internal/core/domain/model/checkout"
	"storefront/internal/core/domain/model/kernel"
)

// CheckoutSessionRepository defines the persistence contract for checkout sessions.
// Sessions are keyed by customer: each customer has at most one session,
// tracking their position in the checkout flow.
type CheckoutSessionRepository interface {
	// Add persists a new checkout session.
	Add(ctx context.Context, aggregate *checkout.Session) error

	// Update persists changes to an existing checkout session.
	Update(ctx context.Context, aggregate *checkout.Session) error

	// GetByCustomer retrieves the checkout session for the given customer.
	// Returns errs.ObjectNotFoundError when the customer has no session yet.
	GetByCustomer(ctx context.Context, customerID kernel.UUID) (*checkout.Session, error)
}
