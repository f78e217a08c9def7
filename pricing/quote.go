package pricing

import "github.com/shopspring/decimal"

// Line is one order line with its price resolved server-side and the
// product's overrides already extracted from metadata.
type Line struct {
	ProductID  uint
	UnitAmount int64
	Quantity   int
	Tax        Override
	Shipping   Override
}

// Rates carries the standard regional figures used when a product has no
// override: a fractional tax rate (e.g. 0.21) and a flat shipping amount
// in minor units.
type Rates struct {
	TaxRate        decimal.Decimal
	ShippingAmount int64
}

// Quote is the priced order: all amounts in minor units.
type Quote struct {
	Subtotal       int64 `json:"subtotal"`
	TaxAmount      int64 `json:"tax_amount"`
	ShippingAmount int64 `json:"shipping_amount"`
	Total          int64 `json:"total"`
}

// LineTax resolves tax for one line. An enabled flat override replaces the
// regional computation entirely; it does not stack with it. Without an
// override the line is taxed at the standard rate, rounded half-up to the
// nearest minor unit.
func LineTax(line Line, rate decimal.Decimal) int64 {
	if line.Tax.Kind == OverrideFlatRate {
		return line.Tax.Amount * int64(line.Quantity)
	}
	subtotal := decimal.NewFromInt(line.UnitAmount * int64(line.Quantity))
	return subtotal.Mul(rate).Round(0).IntPart()
}

// ResolveShipping resolves the order-level shipping amount. A product flat
// override replaces the standard rate (the highest flat override wins when
// several products carry one); a met free-above threshold zeroes shipping
// and wins over any flat amount.
func ResolveShipping(lines []Line, subtotal int64, standard int64) int64 {
	amount := standard
	flatSeen := false
	for _, line := range lines {
		switch line.Shipping.Kind {
		case OverrideFreeAboveThreshold:
			if subtotal >= line.Shipping.Threshold {
				return 0
			}
		case OverrideFlatRate:
			if !flatSeen || line.Shipping.Amount > amount {
				amount = line.Shipping.Amount
			}
			flatSeen = true
		}
	}
	return amount
}

// QuoteOrder prices a full order: unit price times quantity per line, tax
// and shipping resolved through the override rules above.
func QuoteOrder(lines []Line, rates Rates) Quote {
	var subtotal, tax int64
	for _, line := range lines {
		subtotal += line.UnitAmount * int64(line.Quantity)
		tax += LineTax(line, rates.TaxRate)
	}
	shipping := ResolveShipping(lines, subtotal, rates.ShippingAmount)
	return Quote{
		Subtotal:       subtotal,
		TaxAmount:      tax,
		ShippingAmount: shipping,
		Total:          subtotal + tax + shipping,
	}
}
