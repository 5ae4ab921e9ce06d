package queries

import (
	"errors"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/guard"
)

var ErrGetOrdersQueryIsNotConstructed = errors.New(
	"GetOrdersQuery must be created via NewGetOrdersQuery constructor",
)

// GetOrdersQuery retrieves orders for the staff dashboard, newest first.
// All filters are optional and combine with AND:
//   - status narrows to one lifecycle status
//   - day narrows to orders created on that calendar day (UTC)
//   - search matches the order number or the recipient name, case-insensitively
//
// Example:
//
//	query, _ := NewGetOrdersQuery(order.StatusPending, time.Time{}, "jane")
//	orders, err := handler.Handle(ctx, query)
type GetOrdersQuery struct {
	status order.Status
	day    time.Time
	search string

	guard guard.ConstructorGuard
}

// NewGetOrdersQuery creates an order listing query.
// Pass order.StatusUnknown, a zero time or an empty string to skip a filter.
func NewGetOrdersQuery(status order.Status, day time.Time, search string) (GetOrdersQuery, error) {
	if status != order.StatusUnknown {
		if err := status.Validate(); err != nil {
			return GetOrdersQuery{}, err
		}
	}

	return GetOrdersQuery{
		status: status,
		day:    day,
		search: search,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersQueryIsNotConstructed)
}

// Status returns the status filter, order.StatusUnknown when unset.
func (q GetOrdersQuery) Status() order.Status {
	return q.status
}

// Day returns the calendar day filter, zero when unset.
func (q GetOrdersQuery) Day() time.Time {
	return q.day
}

// Search returns the free-text filter, empty when unset.
func (q GetOrdersQuery) Search() string {
	return q.search
}

// OrderSummaryResponse represents one order row in the staff listing.
type OrderSummaryResponse struct {
	ID            kernel.UUID
	Number        string
	CustomerName  string
	TotalCents    int64
	ItemCount     int
	Status        string
	PaymentMethod string
	PaymentStatus string
	CreatedAt     time.Time
}
