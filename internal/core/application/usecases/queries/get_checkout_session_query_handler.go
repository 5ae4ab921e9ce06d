package queries

import (
	"context"
	"database/sql"
	"errors"

	"storefront/internal/core/domain/model/checkout"
	"storefront/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetCheckoutSessionQueryHandler retrieves checkout flow state from the database.
// A customer without a stored session gets a fresh view on the cart step.
type GetCheckoutSessionQueryHandler struct {
	db *gorm.DB
}

// NewGetCheckoutSessionQueryHandler creates a handler for session retrieval queries.
func NewGetCheckoutSessionQueryHandler(db *gorm.DB) GetCheckoutSessionQueryHandler {
	return GetCheckoutSessionQueryHandler{db: db}
}

// Handle executes the query to retrieve the customer's checkout state.
func (h GetCheckoutSessionQueryHandler) Handle(
	ctx context.Context,
	query GetCheckoutSessionQuery,
) (GetCheckoutSessionQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetCheckoutSessionQueryResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			step,
			full_name,
			street,
			city,
			postal_code,
			phone,
			instructions,
			payment_method,
			card_name,
			order_id,
			order_total_cents
		FROM checkout_sessions
		WHERE customer_id = ?
	`, query.CustomerID().String()).Row()

	var response GetCheckoutSessionQueryResponse
	var address CheckoutAddressResponse
	var orderID uuid.NullUUID

	err := row.Scan(
		&response.Step,
		&address.FullName,
		&address.Street,
		&address.City,
		&address.PostalCode,
		&address.Phone,
		&address.Instructions,
		&response.PaymentMethod,
		&response.CardholderName,
		&orderID,
		&response.OrderTotalCents,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return GetCheckoutSessionQueryResponse{Step: checkout.StepCart.String()}, nil
	}
	if err != nil {
		return GetCheckoutSessionQueryResponse{}, err
	}

	if address.FullName != "" {
		response.Address = &address
	}

	if orderID.Valid {
		id, idErr := kernel.UUIDFromBytes(orderID.UUID[:])
		if idErr != nil {
			return GetCheckoutSessionQueryResponse{}, idErr
		}
		response.OrderID = &id
	}

	return response, nil
}
