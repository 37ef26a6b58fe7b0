package domain_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swiftbill/invoicing_app/internal/core/domain"
)

func pct(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func TestComputeTotals_EmptyItems(t *testing.T) {
	for _, items := range [][]domain.LineItem{nil, {}} {
		totals := domain.ComputeTotals(items)

		assert.True(t, totals.Subtotal.IsZero())
		assert.True(t, totals.TotalDiscount.IsZero())
		assert.True(t, totals.TotalTax.IsZero())
		assert.True(t, totals.GrandTotal.IsZero())
	}
}

func TestComputeTotals_NoTaxNoDiscount(t *testing.T) {
	items := []domain.LineItem{
		{Description: "Design work", Quantity: decimal.NewFromInt(1), UnitPrice: decimal.NewFromInt(2500)},
		{Description: "Hosting", Quantity: decimal.NewFromInt(1), UnitPrice: decimal.NewFromInt(300)},
	}

	totals := domain.ComputeTotals(items)

	assert.True(t, totals.Subtotal.Equal(decimal.NewFromInt(2800)), "subtotal was %s", totals.Subtotal)
	assert.True(t, totals.TotalDiscount.IsZero())
	assert.True(t, totals.TotalTax.IsZero())
	assert.True(t, totals.GrandTotal.Equal(decimal.NewFromInt(2800)), "grand total was %s", totals.GrandTotal)
}

func TestComputeTotals_DiscountBeforeTax(t *testing.T) {
	// 10 x 10000 = 100000; 10% discount = 10000; 5% tax on 90000 = 4500.
	// Taxing the undiscounted subtotal would give 5000 instead.
	items := []domain.LineItem{
		{
			Description: "Consulting",
			Quantity:    decimal.NewFromInt(10),
			UnitPrice:   decimal.NewFromInt(10000),
			TaxRate:     pct("5"),
			Discount:    pct("10"),
		},
	}

	totals := domain.ComputeTotals(items)

	assert.True(t, totals.Subtotal.Equal(decimal.NewFromInt(100000)), "subtotal was %s", totals.Subtotal)
	assert.True(t, totals.TotalDiscount.Equal(decimal.NewFromInt(10000)), "discount was %s", totals.TotalDiscount)
	assert.True(t, totals.TotalTax.Equal(decimal.NewFromInt(4500)), "tax was %s", totals.TotalTax)
	assert.True(t, totals.GrandTotal.Equal(decimal.NewFromInt(94500)), "grand total was %s", totals.GrandTotal)
}

func TestComputeTotals_PerItemRates(t *testing.T) {
	// Rates apply per item, not across the document.
	items := []domain.LineItem{
		{Quantity: decimal.NewFromInt(2), UnitPrice: decimal.NewFromInt(100), TaxRate: pct("20")},
		{Quantity: decimal.NewFromInt(1), UnitPrice: decimal.NewFromInt(50), Discount: pct("50")},
	}

	totals := domain.ComputeTotals(items)

	assert.True(t, totals.Subtotal.Equal(decimal.NewFromInt(250)), "subtotal was %s", totals.Subtotal)
	assert.True(t, totals.TotalDiscount.Equal(decimal.NewFromInt(25)), "discount was %s", totals.TotalDiscount)
	assert.True(t, totals.TotalTax.Equal(decimal.NewFromInt(40)), "tax was %s", totals.TotalTax)
	assert.True(t, totals.GrandTotal.Equal(decimal.NewFromInt(265)), "grand total was %s", totals.GrandTotal)
}

func TestComputeTotals_FractionalQuantities(t *testing.T) {
	items := []domain.LineItem{
		{Quantity: decimal.RequireFromString("1.5"), UnitPrice: decimal.RequireFromString("19.99")},
	}

	totals := domain.ComputeTotals(items)

	expected := decimal.RequireFromString("29.985")
	assert.True(t, totals.Subtotal.Equal(expected), "subtotal was %s", totals.Subtotal)
	assert.True(t, totals.GrandTotal.Equal(expected), "grand total was %s", totals.GrandTotal)
}

func TestComputeTotals_FractionalRateNoRounding(t *testing.T) {
	// 7.25% of 33.33 must stay exact: 2.416425
	items := []domain.LineItem{
		{Quantity: decimal.NewFromInt(1), UnitPrice: decimal.RequireFromString("33.33"), TaxRate: pct("7.25")},
	}

	totals := domain.ComputeTotals(items)

	require.True(t, totals.TotalTax.Equal(decimal.RequireFromString("2.416425")), "tax was %s", totals.TotalTax)
	assert.True(t, totals.GrandTotal.Equal(decimal.RequireFromString("35.746425")), "grand total was %s", totals.GrandTotal)
}

func TestComputeTotals_GrandTotalIdentity(t *testing.T) {
	items := []domain.LineItem{
		{Quantity: decimal.NewFromInt(3), UnitPrice: decimal.RequireFromString("12.50"), TaxRate: pct("18"), Discount: pct("5")},
		{Quantity: decimal.NewFromInt(1), UnitPrice: decimal.NewFromInt(200), Discount: pct("25")},
		{Quantity: decimal.RequireFromString("0.5"), UnitPrice: decimal.NewFromInt(80), TaxRate: pct("10")},
	}

	totals := domain.ComputeTotals(items)

	expected := totals.Subtotal.Sub(totals.TotalDiscount).Add(totals.TotalTax)
	assert.True(t, totals.GrandTotal.Equal(expected), "grand total was %s, expected %s", totals.GrandTotal, expected)
}

func TestDocumentCore_Totals(t *testing.T) {
	doc := domain.DocumentCore{
		LineItems: []domain.LineItem{
			{Quantity: decimal.NewFromInt(2), UnitPrice: decimal.NewFromInt(150)},
		},
	}

	assert.True(t, doc.Totals().Subtotal.Equal(decimal.NewFromInt(300)))
	assert.True(t, doc.GrandTotal().Equal(decimal.NewFromInt(300)))
}
