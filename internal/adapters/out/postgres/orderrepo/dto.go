// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"storefront/internal/core/domain/model/cart"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Statuses are stored as their snake_case strings so the read side and the
// dashboard SQL stay human readable.
type OrderDTO struct {
	ID            uuid.UUID      `gorm:"type:uuid;primaryKey"`
	Number        string         `gorm:"type:varchar(64);not null;uniqueIndex"`
	CustomerID    uuid.UUID      `gorm:"type:uuid;not null;index"`
	TotalCents    int64          `gorm:"type:bigint;not null"`
	Status        string         `gorm:"type:varchar(32);not null;index"`
	PaymentMethod string         `gorm:"type:varchar(16);not null"`
	PaymentStatus string         `gorm:"type:varchar(16);not null"`
	FullName      string         `gorm:"type:varchar(255);not null"`
	Street        string         `gorm:"type:varchar(255);not null"`
	City          string         `gorm:"type:varchar(255);not null"`
	PostalCode    string         `gorm:"type:varchar(32);not null"`
	Phone         string         `gorm:"type:varchar(32);not null"`
	Instructions  string         `gorm:"type:text"`
	CreatedAt     time.Time      `gorm:"not null;index"`
	Items         []OrderItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO represents the database structure for persisting purchased lines.
// Lines are immutable once the order exists.
type OrderItemDTO struct {
	ID                  uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID             uuid.UUID `gorm:"type:uuid;not null;index"`
	MenuItemID          uuid.UUID `gorm:"type:uuid;not null"`
	Name                string    `gorm:"type:varchar(255);not null"`
	UnitPriceCents      int64     `gorm:"type:bigint;not null"`
	Quantity            int       `gorm:"type:int;not null"`
	SpecialInstructions string    `gorm:"type:text"`
	Position            int       `gorm:"type:int;not null"`
}

// TableName specifies the database table name for order line entities.
func (OrderItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	orderID := aggregate.ID().Bytes()
	items := aggregate.Items()
	lines := make([]OrderItemDTO, 0, len(items))

	for i, item := range items {
		lines = append(lines, OrderItemDTO{
			ID:                  item.ID().Bytes(),
			OrderID:             orderID,
			MenuItemID:          item.MenuItemID().Bytes(),
			Name:                item.Name(),
			UnitPriceCents:      item.UnitPrice().Cents(),
			Quantity:            item.Quantity(),
			SpecialInstructions: item.SpecialInstructions(),
			Position:            i,
		})
	}

	address := aggregate.Address()

	return OrderDTO{
		ID:            orderID,
		Number:        aggregate.Number(),
		CustomerID:    aggregate.CustomerID().Bytes(),
		TotalCents:    aggregate.Total().Cents(),
		Status:        aggregate.Status().String(),
		PaymentMethod: aggregate.PaymentMethod().String(),
		PaymentStatus: aggregate.PaymentStatus().String(),
		FullName:      address.FullName(),
		Street:        address.Street(),
		City:          address.City(),
		PostalCode:    address.PostalCode(),
		Phone:         address.Phone(),
		Instructions:  address.Instructions(),
		CreatedAt:     aggregate.CreatedAt(),
		Items:         lines,
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including all lines using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	total, err := kernel.MoneyFromCents(dto.TotalCents)
	if err != nil {
		return nil, err
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	method, err := order.PaymentMethodFromString(dto.PaymentMethod)
	if err != nil {
		return nil, err
	}

	paymentStatus, err := order.PaymentStatusFromString(dto.PaymentStatus)
	if err != nil {
		return nil, err
	}

	address, err := kernel.NewAddress(
		dto.FullName, dto.Street, dto.City, dto.PostalCode, dto.Phone, dto.Instructions)
	if err != nil {
		return nil, err
	}

	items := make([]*cart.LineItem, 0, len(dto.Items))
	for _, lineDto := range dto.Items {
		item, lineErr := lineToDomain(lineDto)
		if lineErr != nil {
			return nil, lineErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(id, dto.Number, customerID, items, total, status, method, paymentStatus, address, dto.CreatedAt)
}

func lineToDomain(dto OrderItemDTO) (*cart.LineItem, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	menuItemID, err := kernel.UUIDFromBytes(dto.MenuItemID[:])
	if err != nil {
		return nil, err
	}

	unitPrice, err := kernel.MoneyFromCents(dto.UnitPriceCents)
	if err != nil {
		return nil, err
	}

	return cart.RestoreLineItem(id, menuItemID, dto.Name, unitPrice, dto.Quantity, dto.SpecialInstructions)
}
