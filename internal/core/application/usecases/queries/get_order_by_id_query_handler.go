package queries

import (
	"context"
	"database/sql"
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderByIDQueryHandler retrieves a single order from the database.
// The allowed next statuses are derived from the domain transition table,
// so the read model can never offer a move the write side would reject.
type GetOrderByIDQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderByIDQueryHandler creates a handler for single order queries.
func NewGetOrderByIDQueryHandler(db *gorm.DB) GetOrderByIDQueryHandler {
	return GetOrderByIDQueryHandler{db: db}
}

// Handle executes the query. Returns errs.ObjectNotFoundError when no order
// exists under the given identifier.
func (h GetOrderByIDQueryHandler) Handle(
	ctx context.Context,
	query GetOrderByIDQuery,
) (GetOrderByIDQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderByIDQueryResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			number,
			customer_id,
			total_cents,
			status,
			payment_method,
			payment_status,
			full_name,
			street,
			city,
			postal_code,
			phone,
			instructions,
			created_at
		FROM orders
		WHERE id = ?
	`, query.OrderID().String()).Row()

	var response GetOrderByIDQueryResponse
	var id, customerID uuid.UUID

	err := row.Scan(
		&id,
		&response.Number,
		&customerID,
		&response.TotalCents,
		&response.Status,
		&response.PaymentMethod,
		&response.PaymentStatus,
		&response.Address.FullName,
		&response.Address.Street,
		&response.Address.City,
		&response.Address.PostalCode,
		&response.Address.Phone,
		&response.Address.Instructions,
		&response.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return GetOrderByIDQueryResponse{}, errs.NewObjectNotFoundError("orderID", query.OrderID())
	}
	if err != nil {
		return GetOrderByIDQueryResponse{}, err
	}

	if response.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return GetOrderByIDQueryResponse{}, err
	}
	if response.CustomerID, err = kernel.UUIDFromBytes(customerID[:]); err != nil {
		return GetOrderByIDQueryResponse{}, err
	}

	status, err := order.StatusFromString(response.Status)
	if err != nil {
		return GetOrderByIDQueryResponse{}, err
	}
	response.AllowedNextStatuses = make([]string, 0)
	for _, next := range status.AllowedTransitions() {
		response.AllowedNextStatuses = append(response.AllowedNextStatuses, next.String())
	}

	if response.Items, err = h.loadItems(ctx, query.OrderID()); err != nil {
		return GetOrderByIDQueryResponse{}, err
	}

	return response, nil
}

func (h GetOrderByIDQueryHandler) loadItems(ctx context.Context, orderID kernel.UUID) ([]OrderLineResponse, error) {
	items := make([]OrderLineResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			menu_item_id,
			name,
			unit_price_cents,
			quantity,
			special_instructions
		FROM order_items
		WHERE order_id = ?
		ORDER BY position
	`, orderID.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var line OrderLineResponse
		var menuItemID uuid.UUID

		err = rows.Scan(
			&menuItemID,
			&line.Name,
			&line.UnitPriceCents,
			&line.Quantity,
			&line.SpecialInstructions,
		)
		if err != nil {
			return nil, err
		}

		if line.MenuItemID, err = kernel.UUIDFromBytes(menuItemID[:]); err != nil {
			return nil, err
		}

		line.SubtotalCents = line.UnitPriceCents * int64(line.Quantity)
		items = append(items, line)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}
