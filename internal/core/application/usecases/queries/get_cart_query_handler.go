package queries

import (
	"context"

	"storefront/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetCartQueryHandler retrieves cart contents from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type GetCartQueryHandler struct {
	db *gorm.DB
}

// NewGetCartQueryHandler creates a handler for cart retrieval queries.
// Requires a GORM database connection for query execution.
func NewGetCartQueryHandler(db *gorm.DB) GetCartQueryHandler {
	return GetCartQueryHandler{db: db}
}

// Handle executes the query to retrieve the customer's cart.
// Lines come back in insertion order; totals are computed while scanning.
func (h GetCartQueryHandler) Handle(ctx context.Context, query GetCartQuery) (GetCartQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetCartQueryResponse{}, err
	}

	response := GetCartQueryResponse{Items: make([]CartLineResponse, 0)}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			menu_item_id,
			name,
			unit_price_cents,
			quantity,
			special_instructions
		FROM cart_items
		WHERE cart_customer_id = ?
		ORDER BY position
	`, query.CustomerID().String()).Rows()
	if err != nil {
		return GetCartQueryResponse{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var line CartLineResponse
		var id, menuItemID uuid.UUID

		err = rows.Scan(
			&id,
			&menuItemID,
			&line.Name,
			&line.UnitPriceCents,
			&line.Quantity,
			&line.SpecialInstructions,
		)
		if err != nil {
			return GetCartQueryResponse{}, err
		}

		lineID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return GetCartQueryResponse{}, idErr
		}
		line.ID = lineID

		itemID, idErr := kernel.UUIDFromBytes(menuItemID[:])
		if idErr != nil {
			return GetCartQueryResponse{}, idErr
		}
		line.MenuItemID = itemID

		line.SubtotalCents = line.UnitPriceCents * int64(line.Quantity)
		response.TotalCents += line.SubtotalCents
		response.ItemCount += line.Quantity
		response.Items = append(response.Items, line)
	}

	if err = rows.Err(); err != nil {
		return GetCartQueryResponse{}, err
	}

	return response, nil
}
