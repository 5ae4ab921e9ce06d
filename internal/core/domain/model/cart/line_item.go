package cart

import (
	"errors"
	"fmt"
	"strings"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
)

// ErrLineItemIsNotConstructed is returned when a LineItem was not created
// through NewLineItem or RestoreLineItem.
var ErrLineItemIsNotConstructed = errors.New(
	"LineItem must be created via NewLineItem or RestoreLineItem constructor")

// LineItem is a single line in the cart ledger: a menu item, the quantity
// wanted, and any special instructions. Its merge identity within a cart is
// the pair (menuItemID, specialInstructions); the line id exists so the UI
// can address a line for removal or quantity changes.
//
// LineItem is owned exclusively by its Cart and is destroyed on removal or
// cart clear. Orders keep their own copies taken at placement time.
type LineItem struct {
	id                  kernel.UUID
	menuItemID          kernel.UUID
	name                string
	unitPrice           kernel.Money
	quantity            int
	specialInstructions string

	isConstructed bool
}

// NewLineItem creates a line for a menu item with a freshly generated line id.
func NewLineItem(menuItem MenuItem, quantity int, specialInstructions string) (*LineItem, error) {
	if err := menuItem.Validate(); err != nil {
		return nil, err
	}
	if err := validateQuantity(quantity); err != nil {
		return nil, err
	}

	return &LineItem{
		id:                  kernel.NewUUID(),
		menuItemID:          menuItem.ID(),
		name:                menuItem.Name(),
		unitPrice:           menuItem.Price(),
		quantity:            quantity,
		specialInstructions: strings.TrimSpace(specialInstructions),
		isConstructed:       true,
	}, nil
}

// RestoreLineItem reconstructs a line from persistence.
func RestoreLineItem(
	id kernel.UUID,
	menuItemID kernel.UUID,
	name string,
	unitPrice kernel.Money,
	quantity int,
	specialInstructions string,
) (*LineItem, error) {
	if err := errors.Join(id.Validate(), menuItemID.Validate()); err != nil {
		return nil, err
	}
	if strings.TrimSpace(name) == "" {
		return nil, errs.NewValueIsRequiredError("name")
	}
	if err := validateQuantity(quantity); err != nil {
		return nil, err
	}

	return &LineItem{
		id:                  id,
		menuItemID:          menuItemID,
		name:                name,
		unitPrice:           unitPrice,
		quantity:            quantity,
		specialInstructions: strings.TrimSpace(specialInstructions),
		isConstructed:       true,
	}, nil
}

// Validate ensures the line was created through a constructor.
func (li *LineItem) Validate() error {
	if li == nil || !li.isConstructed {
		return ErrLineItemIsNotConstructed
	}
	return nil
}

// ID returns the line identifier.
func (li *LineItem) ID() kernel.UUID {
	return li.id
}

// MenuItemID returns the catalog identifier of the ordered item.
func (li *LineItem) MenuItemID() kernel.UUID {
	return li.menuItemID
}

// Name returns the display name captured when the line was created.
func (li *LineItem) Name() string {
	return li.name
}

// UnitPrice returns the per-unit price captured when the line was created.
func (li *LineItem) UnitPrice() kernel.Money {
	return li.unitPrice
}

// Quantity returns how many units of the item the line holds.
func (li *LineItem) Quantity() int {
	return li.quantity
}

// SpecialInstructions returns the preparation notes for this line.
func (li *LineItem) SpecialInstructions() string {
	return li.specialInstructions
}

// Subtotal returns unit price multiplied by quantity.
func (li *LineItem) Subtotal() kernel.Money {
	subtotal, _ := li.unitPrice.MulQuantity(li.quantity)
	return subtotal
}

// matches reports whether another addition merges into this line.
func (li *LineItem) matches(menuItemID kernel.UUID, specialInstructions string) bool {
	return li.menuItemID.IsEqual(menuItemID) && li.specialInstructions == specialInstructions
}

func validateQuantity(quantity int) error {
	if quantity < 1 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not a positive integer", quantity))
	}
	return nil
}
