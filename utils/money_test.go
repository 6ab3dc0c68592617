package utils

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ecom-ledger/models"
)

func d(s string) decimal.Decimal {
	v, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return v
}

func TestCalculateTotals(t *testing.T) {
	// 2 x 100, discount 10, shipping 15, 5% + 8% tax on the
	// post-discount base of 190.
	totals, err := CalculateTotals(
		[]LineItem{{UnitPrice: d("100"), Quantity: 2}},
		d("10"), d("15"), d("5"), d("8"),
	)
	require.NoError(t, err)

	assert.True(t, totals.Subtotal.Equal(d("200")), "subtotal = %s", totals.Subtotal)
	assert.True(t, totals.Tax.Equal(d("24.70")), "tax = %s", totals.Tax)
	assert.True(t, totals.Total.Equal(d("229.70")), "total = %s", totals.Total)
}

func TestCalculateTotalsInvariant(t *testing.T) {
	totals, err := CalculateTotals(
		[]LineItem{
			{UnitPrice: d("19.99"), Quantity: 3},
			{UnitPrice: d("4.25"), Quantity: 1},
		},
		d("5"), d("9.99"), d("5"), d("8"),
	)
	require.NoError(t, err)

	// total == subtotal - discount + tax + shipping
	expected := totals.Subtotal.Sub(totals.Discount).Add(totals.Tax).Add(totals.Shipping)
	assert.True(t, totals.Total.Equal(expected))
}

func TestCalculateTotalsShippingNotTaxed(t *testing.T) {
	withShipping, err := CalculateTotals(
		[]LineItem{{UnitPrice: d("100"), Quantity: 1}},
		decimal.Zero, d("50"), d("5"), d("8"),
	)
	require.NoError(t, err)

	withoutShipping, err := CalculateTotals(
		[]LineItem{{UnitPrice: d("100"), Quantity: 1}},
		decimal.Zero, decimal.Zero, d("5"), d("8"),
	)
	require.NoError(t, err)

	assert.True(t, withShipping.Tax.Equal(withoutShipping.Tax))
}

func TestCalculateTotalsRoundsHalfUp(t *testing.T) {
	// 3 x 0.335 = 1.005 -> 1.01
	totals, err := CalculateTotals(
		[]LineItem{{UnitPrice: d("0.335"), Quantity: 3}},
		decimal.Zero, decimal.Zero, decimal.Zero, decimal.Zero,
	)
	require.NoError(t, err)
	assert.True(t, totals.Subtotal.Equal(d("1.01")), "subtotal = %s", totals.Subtotal)
}

func TestCalculateTotalsRejectsBadInput(t *testing.T) {
	items := []LineItem{{UnitPrice: d("10"), Quantity: 1}}

	cases := []struct {
		name     string
		items    []LineItem
		discount decimal.Decimal
		shipping decimal.Decimal
	}{
		{"negative discount", items, d("-1"), decimal.Zero},
		{"negative shipping", items, decimal.Zero, d("-1")},
		{"discount over subtotal", items, d("11"), decimal.Zero},
		{"negative price", []LineItem{{UnitPrice: d("-5"), Quantity: 1}}, decimal.Zero, decimal.Zero},
		{"zero quantity", []LineItem{{UnitPrice: d("5"), Quantity: 0}}, decimal.Zero, decimal.Zero},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := CalculateTotals(tc.items, tc.discount, tc.shipping, d("5"), d("8"))
			assert.ErrorIs(t, err, models.ErrInvalidAmount)
		})
	}
}

func TestCalculateTotalsDeterministic(t *testing.T) {
	items := []LineItem{{UnitPrice: d("33.33"), Quantity: 7}}

	first, err := CalculateTotals(items, d("12.50"), d("8"), d("5"), d("8"))
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		again, err := CalculateTotals(items, d("12.50"), d("8"), d("5"), d("8"))
		require.NoError(t, err)
		assert.True(t, first.Total.Equal(again.Total))
		assert.True(t, first.Tax.Equal(again.Tax))
	}
}
