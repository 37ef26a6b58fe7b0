package domain

import "github.com/shopspring/decimal"

// Totals holds the aggregate amounts computed from a document's line items.
type Totals struct {
	Subtotal      decimal.Decimal `json:"subtotal"`
	TotalDiscount decimal.Decimal `json:"totalDiscount"`
	TotalTax      decimal.Decimal `json:"totalTax"`
	GrandTotal    decimal.Decimal `json:"grandTotal"`
}

// ComputeTotals computes subtotal, discount, tax and grand total for a
// sequence of line items. The per-item discount is applied before tax.
// Percentages are divided by 100 as an exact base-10 shift, so no rounding
// happens at the line level; display rounding belongs to the caller.
// A nil or empty sequence yields an all-zero result.
func ComputeTotals(items []LineItem) Totals {
	var t Totals
	for _, item := range items {
		itemSubtotal := item.Quantity.Mul(item.UnitPrice)
		t.Subtotal = t.Subtotal.Add(itemSubtotal)

		itemDiscount := decimal.Zero
		if item.Discount != nil {
			itemDiscount = itemSubtotal.Mul(item.Discount.Shift(-2))
		}
		t.TotalDiscount = t.TotalDiscount.Add(itemDiscount)

		if item.TaxRate != nil {
			afterDiscount := itemSubtotal.Sub(itemDiscount)
			t.TotalTax = t.TotalTax.Add(afterDiscount.Mul(item.TaxRate.Shift(-2)))
		}
	}
	t.GrandTotal = t.Subtotal.Sub(t.TotalDiscount).Add(t.TotalTax)
	return t
}

// Totals computes the document's aggregate amounts.
func (d DocumentCore) Totals() Totals {
	return ComputeTotals(d.LineItems)
}

// GrandTotal returns only the final amount, for call sites such as list
// views that need a single figure.
func (d DocumentCore) GrandTotal() decimal.Decimal {
	return d.Totals().GrandTotal
}
