package queries

import (
	"context"
	"time"

	"gorm.io/gorm"
)

// GetDashboardStatsQueryHandler computes the staff dashboard headline numbers.
// "Today" is the current UTC calendar day.
type GetDashboardStatsQueryHandler struct {
	db *gorm.DB
}

// NewGetDashboardStatsQueryHandler creates a handler for dashboard stats queries.
func NewGetDashboardStatsQueryHandler(db *gorm.DB) GetDashboardStatsQueryHandler {
	return GetDashboardStatsQueryHandler{db: db}
}

// Handle executes the stats query.
func (h GetDashboardStatsQueryHandler) Handle(
	ctx context.Context,
	query GetDashboardStatsQuery,
) (GetDashboardStatsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetDashboardStatsQueryResponse{}, err
	}

	response := GetDashboardStatsQueryResponse{
		CountsByStatus: make(map[string]int64),
	}

	dayStart := time.Now().UTC().Truncate(24 * time.Hour)

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			COUNT(*) FILTER (WHERE created_at >= ?),
			COALESCE(SUM(total_cents) FILTER (WHERE created_at >= ? AND payment_status = 'paid'), 0),
			COUNT(*) FILTER (WHERE status NOT IN ('delivered', 'cancelled'))
		FROM orders
	`, dayStart, dayStart).Row()

	err := row.Scan(&response.OrdersToday, &response.RevenueTodayCents, &response.ActiveOrders)
	if err != nil {
		return GetDashboardStatsQueryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT status, COUNT(*)
		FROM orders
		GROUP BY status
	`).Rows()
	if err != nil {
		return GetDashboardStatsQueryResponse{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var status string
		var count int64

		if err = rows.Scan(&status, &count); err != nil {
			return GetDashboardStatsQueryResponse{}, err
		}
		response.CountsByStatus[status] = count
	}

	if err = rows.Err(); err != nil {
		return GetDashboardStatsQueryResponse{}, err
	}

	return response, nil
}
