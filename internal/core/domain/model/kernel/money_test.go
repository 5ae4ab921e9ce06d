package kernel_test

import (
	"testing"

	"storefront/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoneyFromCents(t *testing.T) {
	t.Run("should create money from positive cents", func(t *testing.T) {
		m, err := kernel.MoneyFromCents(1299)

		require.NoError(t, err)
		assert.Equal(t, int64(1299), m.Cents())
	})

	t.Run("should allow zero", func(t *testing.T) {
		m, err := kernel.MoneyFromCents(0)

		require.NoError(t, err)
		assert.True(t, m.IsZero())
	})

	t.Run("should reject negative amounts", func(t *testing.T) {
		_, err := kernel.MoneyFromCents(-1)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "amount")
		assert.Contains(t, err.Error(), "-1 cents is negative")
	})
}

func TestMoney_Arithmetic(t *testing.T) {
	t.Run("Add sums amounts", func(t *testing.T) {
		a, _ := kernel.MoneyFromCents(1299)
		b, _ := kernel.MoneyFromCents(499)

		assert.Equal(t, int64(1798), a.Add(b).Cents())
	})

	t.Run("MulQuantity multiplies by quantity", func(t *testing.T) {
		price, _ := kernel.MoneyFromCents(499)

		total, err := price.MulQuantity(3)

		require.NoError(t, err)
		assert.Equal(t, int64(1497), total.Cents())
	})

	t.Run("MulQuantity rejects negative quantity", func(t *testing.T) {
		price, _ := kernel.MoneyFromCents(499)

		_, err := price.MulQuantity(-2)

		require.Error(t, err)
	})

	t.Run("MulQuantity by zero yields zero", func(t *testing.T) {
		price, _ := kernel.MoneyFromCents(499)

		total, err := price.MulQuantity(0)

		require.NoError(t, err)
		assert.True(t, total.IsZero())
	})
}

func TestMoney_String(t *testing.T) {
	testCases := []struct {
		cents    int64
		expected string
	}{
		{1299, "$12.99"},
		{2297, "$22.97"},
		{100, "$1.00"},
		{5, "$0.05"},
		{0, "$0.00"},
	}

	for _, tc := range testCases {
		t.Run(tc.expected, func(t *testing.T) {
			m, err := kernel.MoneyFromCents(tc.cents)

			require.NoError(t, err)
			assert.Equal(t, tc.expected, m.String())
		})
	}
}

func TestMoney_IsEqual(t *testing.T) {
	a, _ := kernel.MoneyFromCents(100)
	b, _ := kernel.MoneyFromCents(100)
	c, _ := kernel.MoneyFromCents(101)

	assert.True(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(c))
}
