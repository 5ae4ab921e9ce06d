package kernel

import (
	"fmt"

	"storefront/internal/pkg/errs"
)

// Money is a value object representing a non-negative monetary amount in cents.
// Holding integer cents avoids the rounding drift of floating-point arithmetic
// when line totals are summed.
//
// The zero value is a valid amount of zero, so Money can be used directly in
// derived totals.
//
// Example:
//
//	price, err := kernel.MoneyFromCents(1299)
//	if err != nil {
//	    // Handle validation error
//	}
//	fmt.Println(price) // Output: $12.99
type Money struct {
	cents int64
}

// MoneyFromCents creates a Money value from an amount in cents.
// The amount must not be negative.
func MoneyFromCents(cents int64) (Money, error) {
	if cents < 0 {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount",
			fmt.Errorf("%d cents is negative", cents))
	}
	return Money{cents: cents}, nil
}

// Cents returns the amount in cents.
func (m Money) Cents() int64 {
	return m.cents
}

// Add returns the sum of two amounts.
func (m Money) Add(other Money) Money {
	return Money{cents: m.cents + other.cents}
}

// MulQuantity returns the amount multiplied by a line quantity.
// Quantity must not be negative.
func (m Money) MulQuantity(quantity int) (Money, error) {
	if quantity < 0 {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is negative", quantity))
	}
	return Money{cents: m.cents * int64(quantity)}, nil
}

// IsZero reports whether the amount is zero.
func (m Money) IsZero() bool {
	return m.cents == 0
}

// IsEqual compares two amounts for equality.
func (m Money) IsEqual(other Money) bool {
	return m.cents == other.cents
}

// String formats the amount as a dollar string, e.g. "$12.99".
// Implements the fmt.Stringer interface.
func (m Money) String() string {
	return fmt.Sprintf("$%d.%02d", m.cents/100, m.cents%100)
}
