package cart

import (
	"errors"
	"strings"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

// ErrMenuItemIsNotConstructed is returned when a MenuItem was not created via NewMenuItem.
var ErrMenuItemIsNotConstructed = errors.New("MenuItem must be created via NewMenuItem constructor")

// ErrMenuItemIsNotAvailable is returned when adding a menu item the catalog has
// marked unavailable.
var ErrMenuItemIsNotAvailable = errors.New("menu item is not available")

// MenuItem is the read-only catalog input consumed by Cart.AddItem.
// The menu catalog itself is an external collaborator; the cart only needs the
// identity, display name, price, and availability of an item.
type MenuItem struct { //nolint:recvcheck //using for validation
	id        kernel.UUID
	name      string
	price     kernel.Money
	available bool

	guard guard.ConstructorGuard
}

// NewMenuItem creates a validated MenuItem reference.
func NewMenuItem(id kernel.UUID, name string, price kernel.Money, available bool) (MenuItem, error) {
	item := MenuItem{
		price:     price,
		available: available,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setID(id),
		item.setName(name),
	); err != nil {
		return MenuItem{}, err
	}

	return item, nil
}

// Validate ensures the MenuItem was created via NewMenuItem.
func (m MenuItem) Validate() error {
	return m.guard.Validate(ErrMenuItemIsNotConstructed)
}

// ID returns the catalog identifier of the menu item.
func (m MenuItem) ID() kernel.UUID {
	return m.id
}

// Name returns the display name of the menu item.
func (m MenuItem) Name() string {
	return m.name
}

// Price returns the unit price of the menu item.
func (m MenuItem) Price() kernel.Money {
	return m.price
}

// IsAvailable reports whether the catalog currently offers the item.
func (m MenuItem) IsAvailable() bool {
	return m.available
}

func (m *MenuItem) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	m.id = id
	return nil
}

func (m *MenuItem) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	m.name = name
	return nil
}
