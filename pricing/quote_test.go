package pricing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func rate(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func TestLineTax(t *testing.T) {
	t.Run("standard rate", func(t *testing.T) {
		line := Line{UnitAmount: 2490, Quantity: 2}
		// 4980 * 0.21 = 1045.8, rounds to 1046
		assert.Equal(t, int64(1046), LineTax(line, rate("0.21")))
	})

	t.Run("zero rate", func(t *testing.T) {
		line := Line{UnitAmount: 2490, Quantity: 1}
		assert.Equal(t, int64(0), LineTax(line, decimal.Zero))
	})

	t.Run("flat override replaces the computed figure", func(t *testing.T) {
		line := Line{
			UnitAmount: 2490,
			Quantity:   2,
			Tax:        Override{Kind: OverrideFlatRate, Amount: 100},
		}
		// Per-unit flat amount, not stacked on the regional rate.
		assert.Equal(t, int64(200), LineTax(line, rate("0.21")))
	})

	t.Run("zero-amount override means tax exempt", func(t *testing.T) {
		line := Line{
			UnitAmount: 2490,
			Quantity:   3,
			Tax:        Override{Kind: OverrideFlatRate, Amount: 0},
		}
		assert.Equal(t, int64(0), LineTax(line, rate("0.21")))
	})
}

func TestResolveShipping(t *testing.T) {
	t.Run("standard rate when no overrides", func(t *testing.T) {
		lines := []Line{{UnitAmount: 2490, Quantity: 1}}
		assert.Equal(t, int64(700), ResolveShipping(lines, 2490, 700))
	})

	t.Run("flat override replaces standard", func(t *testing.T) {
		lines := []Line{{Shipping: Override{Kind: OverrideFlatRate, Amount: 1200}}}
		assert.Equal(t, int64(1200), ResolveShipping(lines, 2490, 700))

		// A cheaper flat override also replaces, not just raises.
		lines = []Line{{Shipping: Override{Kind: OverrideFlatRate, Amount: 300}}}
		assert.Equal(t, int64(300), ResolveShipping(lines, 2490, 700))
	})

	t.Run("highest flat override wins across products", func(t *testing.T) {
		lines := []Line{
			{Shipping: Override{Kind: OverrideFlatRate, Amount: 300}},
			{Shipping: Override{Kind: OverrideFlatRate, Amount: 1500}},
		}
		assert.Equal(t, int64(1500), ResolveShipping(lines, 5000, 700))
	})

	t.Run("met threshold zeroes shipping and beats flat overrides", func(t *testing.T) {
		lines := []Line{
			{Shipping: Override{Kind: OverrideFlatRate, Amount: 1500}},
			{Shipping: Override{Kind: OverrideFreeAboveThreshold, Threshold: 5000}},
		}
		assert.Equal(t, int64(0), ResolveShipping(lines, 5000, 700))
	})

	t.Run("unmet threshold falls back", func(t *testing.T) {
		lines := []Line{
			{Shipping: Override{Kind: OverrideFreeAboveThreshold, Threshold: 5000}},
		}
		assert.Equal(t, int64(700), ResolveShipping(lines, 4999, 700))
	})
}

func TestQuoteOrder(t *testing.T) {
	lines := []Line{
		{ProductID: 1, UnitAmount: 2490, Quantity: 2},
		{ProductID: 2, UnitAmount: 1990, Quantity: 1,
			Tax: Override{Kind: OverrideFlatRate, Amount: 0}},
	}
	quote := QuoteOrder(lines, Rates{TaxRate: rate("0.21"), ShippingAmount: 700})

	assert.Equal(t, int64(6970), quote.Subtotal)
	// Only the first line is taxed: 4980 * 0.21 = 1045.8 -> 1046
	assert.Equal(t, int64(1046), quote.TaxAmount)
	assert.Equal(t, int64(700), quote.ShippingAmount)
	assert.Equal(t, quote.Subtotal+quote.TaxAmount+quote.ShippingAmount, quote.Total)
}

func TestQuoteOrderEmpty(t *testing.T) {
	quote := QuoteOrder(nil, Rates{TaxRate: rate("0.21"), ShippingAmount: 700})
	assert.Equal(t, int64(0), quote.Subtotal)
	assert.Equal(t, int64(0), quote.TaxAmount)
	assert.Equal(t, int64(700), quote.ShippingAmount)
}
