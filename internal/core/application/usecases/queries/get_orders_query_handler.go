package queries

import (
	"context"
	"time"

	"storefront/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrdersQueryHandler retrieves order listings for the staff dashboard.
// Uses direct SQL with an aggregated item count per order.
type GetOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersQueryHandler creates a handler for order listing queries.
func NewGetOrdersQueryHandler(db *gorm.DB) GetOrdersQueryHandler {
	return GetOrdersQueryHandler{db: db}
}

// Handle executes the listing query with the configured filters, newest first.
func (h GetOrdersQueryHandler) Handle(ctx context.Context, query GetOrdersQuery) ([]OrderSummaryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT
			o.id,
			o.number,
			o.full_name,
			o.total_cents,
			COALESCE(SUM(i.quantity), 0),
			o.status,
			o.payment_method,
			o.payment_status,
			o.created_at
		FROM orders o
		LEFT JOIN order_items i ON i.order_id = o.id
		WHERE 1=1
	`
	args := make([]any, 0, 4)

	if query.Status().String() != "unknown" {
		sql += " AND o.status = ?"
		args = append(args, query.Status().String())
	}
	if !query.Day().IsZero() {
		day := query.Day().UTC().Truncate(24 * time.Hour)
		sql += " AND o.created_at >= ? AND o.created_at < ?"
		args = append(args, day, day.AddDate(0, 0, 1))
	}
	if query.Search() != "" {
		sql += " AND (o.number ILIKE ? OR o.full_name ILIKE ?)"
		pattern := "%" + query.Search() + "%"
		args = append(args, pattern, pattern)
	}

	sql += `
		GROUP BY o.id
		ORDER BY o.created_at DESC
	`

	orders := make([]OrderSummaryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var summary OrderSummaryResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&summary.Number,
			&summary.CustomerName,
			&summary.TotalCents,
			&summary.ItemCount,
			&summary.Status,
			&summary.PaymentMethod,
			&summary.PaymentStatus,
			&summary.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		summary.ID = orderID

		orders = append(orders, summary)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
