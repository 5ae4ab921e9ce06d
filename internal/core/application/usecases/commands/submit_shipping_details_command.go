package commands

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/guard"
)

var ErrSubmitShippingDetailsCommandIsNotConstructed = errors.New(
	"SubmitShippingDetailsCommand must be created via NewSubmitShippingDetailsCommand constructor",
)

// SubmitShippingDetailsCommand represents a customer submitting the delivery
// details form. The raw field values are carried as entered; the address value
// object applies the required-field rules when the handler builds it.
type SubmitShippingDetailsCommand struct { //nolint:recvcheck //using for validation
	customerID   kernel.UUID
	fullName     string
	street       string
	city         string
	postalCode   string
	phone        string
	instructions string

	guard guard.ConstructorGuard
}

// NewSubmitShippingDetailsCommand creates a command carrying the delivery details form.
func NewSubmitShippingDetailsCommand(
	customerID kernel.UUID,
	fullName, street, city, postalCode, phone, instructions string,
) (SubmitShippingDetailsCommand, error) {
	cmd := SubmitShippingDetailsCommand{
		fullName:     fullName,
		street:       street,
		city:         city,
		postalCode:   postalCode,
		phone:        phone,
		instructions: instructions,
		guard:        guard.NewConstructorGuard(),
	}

	if err := cmd.setCustomerID(customerID); err != nil {
		return SubmitShippingDetailsCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SubmitShippingDetailsCommand) Validate() error {
	return c.guard.Validate(ErrSubmitShippingDetailsCommandIsNotConstructed)
}

// CustomerID returns the customer submitting the form.
func (c SubmitShippingDetailsCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// FullName returns the recipient's name as entered.
func (c SubmitShippingDetailsCommand) FullName() string {
	return c.fullName
}

// Street returns the street address as entered.
func (c SubmitShippingDetailsCommand) Street() string {
	return c.street
}

// City returns the city as entered.
func (c SubmitShippingDetailsCommand) City() string {
	return c.city
}

// PostalCode returns the postal code as entered.
func (c SubmitShippingDetailsCommand) PostalCode() string {
	return c.postalCode
}

// Phone returns the contact phone number as entered.
func (c SubmitShippingDetailsCommand) Phone() string {
	return c.phone
}

// Instructions returns the optional delivery note.
func (c SubmitShippingDetailsCommand) Instructions() string {
	return c.instructions
}

func (c *SubmitShippingDetailsCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}
