// Package pricing derives all monetary figures of the invoice from current
// line state. It is pure: nothing here mutates lines or caches results, so
// evaluating twice on unchanged state always yields the same numbers.
package pricing

import (
	"github.com/shopspring/decimal"

	"go-invoice-pos/internal/models"
)

var hundred = decimal.NewFromInt(100)

// EffectiveUnitPrice returns the per-unit price actually used for a line:
// the custom override if set, else the product's list price.
func EffectiveUnitPrice(line *models.InvoiceLine) decimal.Decimal {
	if line.CustomPrice != nil {
		return *line.CustomPrice
	}
	return line.Product.UnitPrice
}

// LineTotal computes effective price × quantity, applies the line discount,
// and clamps at zero so an oversized fixed discount never produces a
// negative line.
func LineTotal(line *models.InvoiceLine) decimal.Decimal {
	total := EffectiveUnitPrice(line).Mul(decimal.NewFromInt(int64(line.Quantity)))

	if d := line.Discount; d != nil && d.Amount.IsPositive() {
		switch d.Kind {
		case models.DiscountPercentage:
			total = total.Sub(total.Mul(d.Amount).Div(hundred))
		case models.DiscountFixed:
			total = total.Sub(d.Amount)
		}
	}

	if total.IsNegative() {
		return decimal.Zero
	}
	return total
}

// Subtotal sums the per-line totals. Each line is already clamped.
func Subtotal(lines []*models.InvoiceLine) decimal.Decimal {
	sum := decimal.Zero
	for _, line := range lines {
		sum = sum.Add(LineTotal(line))
	}
	return sum
}

// DiscountValue computes the invoice-level discount against a subtotal.
// A fixed amount is returned as-is even when it exceeds the subtotal;
// the clamp happens in GrandTotal, not here.
func DiscountValue(d *models.InvoiceDiscount, subtotal decimal.Decimal) decimal.Decimal {
	if d == nil || d.Amount.IsZero() {
		return decimal.Zero
	}
	if d.Kind == models.DiscountPercentage {
		return subtotal.Mul(d.Amount).Div(hundred)
	}
	return d.Amount
}

// GrandTotal returns subtotal, invoice discount value, and the final total,
// clamped so the visible total is never negative.
func GrandTotal(lines []*models.InvoiceLine, d *models.InvoiceDiscount) (subtotal, discountValue, total decimal.Decimal) {
	subtotal = Subtotal(lines)
	discountValue = DiscountValue(d, subtotal)
	total = subtotal.Sub(discountValue)
	if total.IsNegative() {
		total = decimal.Zero
	}
	return subtotal, discountValue, total
}
