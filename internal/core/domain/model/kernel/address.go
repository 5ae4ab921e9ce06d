package kernel

import (
	"errors"
	"strings"

	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

// ErrAddressIsNotConstructed is returned when attempting to use an improperly
// initialized Address. Addresses must be created via NewAddress.
var ErrAddressIsNotConstructed = errs.NewValueIsRequiredError(
	"address must be created via NewAddress constructor")

// Address represents the delivery address collected during checkout.
// Address is an immutable value object; all fields except Instructions are
// required and validated per field, so a caller can surface one error message
// per missing field.
//
// Example:
//
//	addr, err := kernel.NewAddress("Jane Doe", "123 Main St", "Springfield", "10001", "+1 555 0100", "")
//	if err != nil {
//	    // err joins one ValueIsRequiredError per empty field
//	}
type Address struct { //nolint:recvcheck //using for validation
	fullName     string
	street       string
	city         string
	postalCode   string
	phone        string
	instructions string

	guard guard.ConstructorGuard
}

// NewAddress creates a validated Address.
// Each of fullName, street, city, postalCode, and phone must be non-blank;
// instructions is optional. All field errors are joined into a single error.
func NewAddress(fullName, street, city, postalCode, phone, instructions string) (Address, error) {
	addr := Address{
		instructions: strings.TrimSpace(instructions),
		guard:        guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		addr.setFullName(fullName),
		addr.setStreet(street),
		addr.setCity(city),
		addr.setPostalCode(postalCode),
		addr.setPhone(phone),
	); err != nil {
		return Address{}, err
	}

	return addr, nil
}

// Validate ensures the Address was created via NewAddress.
func (a Address) Validate() error {
	return a.guard.Validate(ErrAddressIsNotConstructed)
}

// FullName returns the recipient's full name.
func (a Address) FullName() string {
	return a.fullName
}

// Street returns the street address line.
func (a Address) Street() string {
	return a.street
}

// City returns the city.
func (a Address) City() string {
	return a.city
}

// PostalCode returns the postal code.
func (a Address) PostalCode() string {
	return a.postalCode
}

// Phone returns the contact phone number.
func (a Address) Phone() string {
	return a.phone
}

// Instructions returns the optional delivery instructions.
func (a Address) Instructions() string {
	return a.instructions
}

// IsEqual compares two addresses field by field. Instructions are included
// since they affect how the courier handles delivery.
func (a Address) IsEqual(other Address) bool {
	return a.fullName == other.fullName &&
		a.street == other.street &&
		a.city == other.city &&
		a.postalCode == other.postalCode &&
		a.phone == other.phone &&
		a.instructions == other.instructions
}

func (a *Address) setFullName(fullName string) error {
	fullName = strings.TrimSpace(fullName)
	if fullName == "" {
		return errs.NewValueIsRequiredError("fullName")
	}
	a.fullName = fullName
	return nil
}

func (a *Address) setStreet(street string) error {
	street = strings.TrimSpace(street)
	if street == "" {
		return errs.NewValueIsRequiredError("address")
	}
	a.street = street
	return nil
}

func (a *Address) setCity(city string) error {
	city = strings.TrimSpace(city)
	if city == "" {
		return errs.NewValueIsRequiredError("city")
	}
	a.city = city
	return nil
}

func (a *Address) setPostalCode(postalCode string) error {
	postalCode = strings.TrimSpace(postalCode)
	if postalCode == "" {
		return errs.NewValueIsRequiredError("postalCode")
	}
	a.postalCode = postalCode
	return nil
}

func (a *Address) setPhone(phone string) error {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return errs.NewValueIsRequiredError("phone")
	}
	a.phone = phone
	return nil
}
