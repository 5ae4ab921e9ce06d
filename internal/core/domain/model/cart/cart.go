package cart

import (
	"errors"
	"strings"
	"time"

	"storefront/internal/core/domain/model/kernel"
)

// ErrCartIsNotConstructed is returned when a Cart instance was not created
// through the NewCart or RestoreCart factory methods.
var ErrCartIsNotConstructed = errors.New("Cart must be created via NewCart or RestoreCart constructor")

// Cart is the aggregate root for a customer's shopping cart.
//
// Cart follows these invariants:
//   - Scoped to exactly one customer
//   - At most one line per (menuItemID, specialInstructions) pair
//   - Every line has a positive quantity; a quantity change to zero or below
//     removes the line instead of erroring
//   - Totals are derived, never stored: Snapshot() recomputes them from
//     the lines on every call
type Cart struct {
	customerID kernel.UUID
	items      []*LineItem
	updatedAt  time.Time

	isConstructed bool
}

// Snapshot is the derived read model of a cart, exposed to the UI layer for
// rendering cart contents and totals. Total and ItemCount are computed from
// Items and are equal for any two snapshots taken without a mutation between.
type Snapshot struct {
	Items     []*LineItem
	Total     kernel.Money
	ItemCount int
}

// IsEmpty reports whether the snapshot holds no lines.
func (s Snapshot) IsEmpty() bool {
	return len(s.Items) == 0
}

// NewCart creates an empty cart for a customer.
func NewCart(customerID kernel.UUID) (*Cart, error) {
	if err := customerID.Validate(); err != nil {
		return nil, err
	}

	return &Cart{
		customerID:    customerID,
		updatedAt:     time.Now().UTC(),
		isConstructed: true,
	}, nil
}

// RestoreCart reconstructs a cart from persistence.
// Every restored line must be valid, and line identities must not collide.
func RestoreCart(customerID kernel.UUID, items []*LineItem, updatedAt time.Time) (*Cart, error) {
	if err := customerID.Validate(); err != nil {
		return nil, err
	}

	for _, item := range items {
		if err := item.Validate(); err != nil {
			return nil, err
		}
	}

	return &Cart{
		customerID:    customerID,
		items:         items,
		updatedAt:     updatedAt,
		isConstructed: true,
	}, nil
}

// Validate ensures the Cart instance was properly constructed.
func (c *Cart) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCartIsNotConstructed
	}
	return nil
}

// CustomerID returns the owning customer's identifier.
func (c *Cart) CustomerID() kernel.UUID {
	return c.customerID
}

// UpdatedAt returns the time of the last mutating call.
func (c *Cart) UpdatedAt() time.Time {
	return c.updatedAt
}

// IsEmpty reports whether the cart holds no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.items) == 0
}

// Items returns the cart's lines in insertion order.
// The returned slice is a copy; the lines themselves are owned by the cart.
func (c *Cart) Items() []*LineItem {
	items := make([]*LineItem, len(c.items))
	copy(items, c.items)
	return items
}

// AddItem puts a menu item in the cart. If a line with the same menu item and
// special instructions already exists, its quantity is incremented; otherwise
// a new line is appended. Returns the id of the affected line.
//
// Quantity must be a positive integer and the menu item must be available;
// both rules are defended here even though the UI is expected to enforce them.
func (c *Cart) AddItem(menuItem MenuItem, quantity int, specialInstructions string) (kernel.UUID, error) {
	if err := menuItem.Validate(); err != nil {
		return kernel.UUID{}, err
	}
	if !menuItem.IsAvailable() {
		return kernel.UUID{}, ErrMenuItemIsNotAvailable
	}
	if err := validateQuantity(quantity); err != nil {
		return kernel.UUID{}, err
	}

	specialInstructions = strings.TrimSpace(specialInstructions)

	for _, item := range c.items {
		if item.matches(menuItem.ID(), specialInstructions) {
			item.quantity += quantity
			c.touch()
			return item.id, nil
		}
	}

	line, err := NewLineItem(menuItem, quantity, specialInstructions)
	if err != nil {
		return kernel.UUID{}, err
	}

	c.items = append(c.items, line)
	c.touch()
	return line.id, nil
}

// RemoveItem deletes the line with the given id.
// Removing an absent line is a no-op, not an error.
func (c *Cart) RemoveItem(lineID kernel.UUID) {
	for i, item := range c.items {
		if item.id.IsEqual(lineID) {
			c.items = append(c.items[:i], c.items[i+1:]...)
			c.touch()
			return
		}
	}
}

// SetQuantity changes the quantity of the line with the given id.
// A quantity of zero or below removes the line; decrementing to zero is how
// the UI empties a line without a separate remove control. Changing an
// absent line is a no-op.
func (c *Cart) SetQuantity(lineID kernel.UUID, quantity int) {
	if quantity < 1 {
		c.RemoveItem(lineID)
		return
	}

	for _, item := range c.items {
		if item.id.IsEqual(lineID) {
			item.quantity = quantity
			c.touch()
			return
		}
	}
}

// Clear empties all lines. Called after a successful order submission.
func (c *Cart) Clear() {
	c.items = nil
	c.touch()
}

// Snapshot returns the current derived view of the cart. It is a pure
// function of the cart's lines and is recomputed on every call, so any
// sequence of mutations leaves Total and ItemCount consistent with Items.
func (c *Cart) Snapshot() Snapshot {
	var total kernel.Money
	itemCount := 0

	items := make([]*LineItem, len(c.items))
	for i, item := range c.items {
		items[i] = item
		total = total.Add(item.Subtotal())
		itemCount += item.quantity
	}

	return Snapshot{
		Items:     items,
		Total:     total,
		ItemCount: itemCount,
	}
}

func (c *Cart) touch() {
	c.updatedAt = time.Now().UTC()
}
