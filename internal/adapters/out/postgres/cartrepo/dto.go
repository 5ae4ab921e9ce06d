// Package cartrepo provides data transfer objects and mapping functions for cart persistence.
// This package implements the repository pattern for the cart domain aggregate, handling
// the conversion between domain entities and database representations.
package cartrepo

import (
	"time"

	"storefront/internal/core/domain/model/cart"
	"storefront/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// CartDTO represents the database structure for persisting cart aggregates.
// Carts are keyed by customer, one row per customer with their lines as child rows.
type CartDTO struct {
	CustomerID uuid.UUID     `gorm:"type:uuid;primaryKey"`
	UpdatedAt  time.Time     `gorm:"not null;index"`
	Items      []LineItemDTO `gorm:"foreignKey:CartCustomerID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for cart entities.
func (CartDTO) TableName() string {
	return "carts"
}

// LineItemDTO represents the database structure for persisting cart lines.
// Position preserves the order the customer added things in.
type LineItemDTO struct {
	ID                  uuid.UUID `gorm:"type:uuid;primaryKey"`
	CartCustomerID      uuid.UUID `gorm:"type:uuid;not null;index"`
	MenuItemID          uuid.UUID `gorm:"type:uuid;not null"`
	Name                string    `gorm:"type:varchar(255);not null"`
	UnitPriceCents      int64     `gorm:"type:bigint;not null"`
	Quantity            int       `gorm:"type:int;not null"`
	SpecialInstructions string    `gorm:"type:text"`
	Position            int       `gorm:"type:int;not null"`
}

// TableName specifies the database table name for cart line entities.
func (LineItemDTO) TableName() string {
	return "cart_items"
}

// fromDomain converts a cart domain aggregate to its database representation.
func fromDomain(aggregate *cart.Cart) CartDTO {
	customerID := aggregate.CustomerID().Bytes()
	items := aggregate.Items()
	lines := make([]LineItemDTO, 0, len(items))

	for i, item := range items {
		lines = append(lines, LineItemDTO{
			ID:                  item.ID().Bytes(),
			CartCustomerID:      customerID,
			MenuItemID:          item.MenuItemID().Bytes(),
			Name:                item.Name(),
			UnitPriceCents:      item.UnitPrice().Cents(),
			Quantity:            item.Quantity(),
			SpecialInstructions: item.SpecialInstructions(),
			Position:            i,
		})
	}

	return CartDTO{
		CustomerID: customerID,
		UpdatedAt:  aggregate.UpdatedAt(),
		Items:      lines,
	}
}

// toDomain converts a database DTO to a cart domain aggregate.
// Reconstructs the complete aggregate including all lines using RestoreCart.
func toDomain(dto CartDTO) (*cart.Cart, error) {
	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
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

	return cart.RestoreCart(customerID, items, dto.UpdatedAt)
}

func lineToDomain(dto LineItemDTO) (*cart.LineItem, error) {
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
