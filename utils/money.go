package utils

import (
	"github.com/shopspring/decimal"

	"ecom-ledger/models"
)

// LineItem is one priced order line as seen by the calculator.
type LineItem struct {
	UnitPrice decimal.Decimal
	Quantity  int
}

// Totals is the computed money breakdown of an order.
type Totals struct {
	Subtotal decimal.Decimal
	Tax      decimal.Decimal
	Shipping decimal.Decimal
	Discount decimal.Decimal
	Total    decimal.Decimal
}

// round2 rounds half-up to currency precision (2 decimal places).
func round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// CalculateTotals turns priced line items plus discount, shipping and tax
// rates (percentages) into the order money breakdown. Tax applies to the
// post-discount amount; shipping is not taxed. Pure function: identical
// inputs always produce identical outputs, so invoice regeneration with
// historical rates reproduces historical totals.
func CalculateTotals(items []LineItem, discount, shipping, federalRate, provincialRate decimal.Decimal) (Totals, error) {
	if discount.IsNegative() || shipping.IsNegative() ||
		federalRate.IsNegative() || provincialRate.IsNegative() {
		return Totals{}, models.ErrInvalidAmount
	}

	subtotal := decimal.Zero
	for _, item := range items {
		if item.Quantity <= 0 || item.UnitPrice.IsNegative() {
			return Totals{}, models.ErrInvalidAmount
		}
		subtotal = subtotal.Add(item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	subtotal = round2(subtotal)

	if discount.GreaterThan(subtotal) {
		return Totals{}, models.ErrInvalidAmount
	}

	taxable := subtotal.Sub(discount)
	rate := federalRate.Add(provincialRate)
	tax := round2(taxable.Mul(rate).Div(decimal.NewFromInt(100)))

	total := subtotal.Sub(discount).Add(tax).Add(shipping)

	return Totals{
		Subtotal: subtotal,
		Tax:      tax,
		Shipping: round2(shipping),
		Discount: round2(discount),
		Total:    round2(total),
	}, nil
}
