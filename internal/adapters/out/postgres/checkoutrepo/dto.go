// Package checkoutrepo provides data transfer objects and mapping functions for
// checkout session persistence. Sessions are stored one row per customer with the
// flow step and everything entered so far.
package checkoutrepo

import (
	"time"

	"storefront/internal/core/domain/model/checkout"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// SessionDTO represents the database structure for persisting checkout sessions.
// Address and card fields are flattened; empty full_name means no address was
// submitted yet.
type SessionDTO struct {
	CustomerID      uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Step            string     `gorm:"type:varchar(32);not null"`
	FullName        string     `gorm:"type:varchar(255)"`
	Street          string     `gorm:"type:varchar(255)"`
	City            string     `gorm:"type:varchar(255)"`
	PostalCode      string     `gorm:"type:varchar(32)"`
	Phone           string     `gorm:"type:varchar(32)"`
	Instructions    string     `gorm:"type:text"`
	PaymentMethod   string     `gorm:"type:varchar(16);not null"`
	CardNumber      string     `gorm:"type:varchar(32)"`
	CardExpiry      string     `gorm:"type:varchar(8)"`
	CardCVV         string     `gorm:"type:varchar(8)"`
	CardName        string     `gorm:"type:varchar(255)"`
	OrderID         *uuid.UUID `gorm:"type:uuid"`
	OrderTotalCents int64      `gorm:"type:bigint;not null"`
	UpdatedAt       time.Time  `gorm:"not null"`
}

// TableName specifies the database table name for checkout session entities.
func (SessionDTO) TableName() string {
	return "checkout_sessions"
}

// fromDomain converts a checkout session aggregate to its database representation.
func fromDomain(session *checkout.Session) SessionDTO {
	dto := SessionDTO{
		CustomerID:      session.CustomerID().Bytes(),
		Step:            session.Step().String(),
		PaymentMethod:   session.PaymentMethod().String(),
		CardNumber:      session.CardDetails().Number,
		CardExpiry:      session.CardDetails().Expiry,
		CardCVV:         session.CardDetails().CVV,
		CardName:        session.CardDetails().Name,
		OrderTotalCents: session.OrderTotal().Cents(),
		UpdatedAt:       session.UpdatedAt(),
	}

	if address := session.Address(); address != nil {
		dto.FullName = address.FullName()
		dto.Street = address.Street()
		dto.City = address.City()
		dto.PostalCode = address.PostalCode()
		dto.Phone = address.Phone()
		dto.Instructions = address.Instructions()
	}

	if orderID := session.OrderID(); orderID != nil {
		raw := orderID.Bytes()
		dto.OrderID = &raw
	}

	return dto
}

// toDomain converts a database DTO to a checkout session aggregate.
func toDomain(dto SessionDTO) (*checkout.Session, error) {
	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	step, err := checkout.StepFromString(dto.Step)
	if err != nil {
		return nil, err
	}

	method := order.PaymentMethodNone
	if dto.PaymentMethod != order.PaymentMethodNone.String() {
		if method, err = order.PaymentMethodFromString(dto.PaymentMethod); err != nil {
			return nil, err
		}
	}

	var address *kernel.Address
	if dto.FullName != "" {
		restored, addrErr := kernel.NewAddress(
			dto.FullName, dto.Street, dto.City, dto.PostalCode, dto.Phone, dto.Instructions)
		if addrErr != nil {
			return nil, addrErr
		}
		address = &restored
	}

	var orderID *kernel.UUID
	if dto.OrderID != nil {
		restored, idErr := kernel.UUIDFromBytes((*dto.OrderID)[:])
		if idErr != nil {
			return nil, idErr
		}
		orderID = &restored
	}

	orderTotal, err := kernel.MoneyFromCents(dto.OrderTotalCents)
	if err != nil {
		return nil, err
	}

	cardDetails := checkout.CardDetails{
		Number: dto.CardNumber,
		Expiry: dto.CardExpiry,
		CVV:    dto.CardCVV,
		Name:   dto.CardName,
	}

	return checkout.RestoreSession(customerID, step, address, method, cardDetails, orderID, orderTotal, dto.UpdatedAt)
}
