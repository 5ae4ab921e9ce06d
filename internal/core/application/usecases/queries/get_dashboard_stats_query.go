package queries

import (
	"errors"

	"storefront/internal/pkg/guard"
)

var ErrGetDashboardStatsQueryIsNotConstructed = errors.New(
	"GetDashboardStatsQuery must be created via NewGetDashboardStatsQuery constructor",
)

// GetDashboardStatsQuery retrieves the staff dashboard headline numbers.
type GetDashboardStatsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetDashboardStatsQuery creates a parameterless dashboard stats query.
func NewGetDashboardStatsQuery() GetDashboardStatsQuery {
	return GetDashboardStatsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetDashboardStatsQuery) Validate() error {
	return q.guard.Validate(ErrGetDashboardStatsQueryIsNotConstructed)
}

// GetDashboardStatsQueryResponse represents the dashboard read model.
// Revenue counts paid orders only; active means not yet delivered or cancelled.
type GetDashboardStatsQueryResponse struct {
	OrdersToday       int64
	RevenueTodayCents int64
	ActiveOrders      int64
	CountsByStatus    map[string]int64
}
