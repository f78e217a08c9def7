package pricing

// Per-product tax/shipping exceptions live in the product's metadata map.
// This package is the only reader of those keys; the rest of the code deals
// in the typed Override below, never in raw map probing.

const (
	metaTaxOverrideEnabled      = "tax_override_enabled"
	metaTaxOverrideAmount       = "tax_override_amount"
	metaShippingOverrideEnabled = "shipping_override_enabled"
	metaShippingFlatAmount      = "shipping_flat_amount"
	metaShippingFreeAbove       = "shipping_free_above"
)

type OverrideKind int

const (
	OverrideNone OverrideKind = iota
	OverrideFlatRate
	OverrideFreeAboveThreshold
)

// Override is the typed form of a per-product tax or shipping exception.
// Amount and Threshold are in minor units.
type Override struct {
	Kind      OverrideKind
	Amount    int64
	Threshold int64
}

// TaxOverride extracts the tax exception from a product metadata map.
// The override must be explicitly enabled and carry a non-negative amount,
// otherwise it is treated as absent.
func TaxOverride(meta map[string]interface{}) Override {
	if !metaBool(meta, metaTaxOverrideEnabled) {
		return Override{Kind: OverrideNone}
	}
	amount, ok := metaAmount(meta, metaTaxOverrideAmount)
	if !ok || amount < 0 {
		return Override{Kind: OverrideNone}
	}
	return Override{Kind: OverrideFlatRate, Amount: amount}
}

// ShippingOverride extracts the shipping exception from a product metadata
// map. A free-above threshold takes precedence over a flat amount when both
// are present.
func ShippingOverride(meta map[string]interface{}) Override {
	if !metaBool(meta, metaShippingOverrideEnabled) {
		return Override{Kind: OverrideNone}
	}
	if threshold, ok := metaAmount(meta, metaShippingFreeAbove); ok && threshold >= 0 {
		return Override{Kind: OverrideFreeAboveThreshold, Threshold: threshold}
	}
	if amount, ok := metaAmount(meta, metaShippingFlatAmount); ok && amount >= 0 {
		return Override{Kind: OverrideFlatRate, Amount: amount}
	}
	return Override{Kind: OverrideNone}
}

// metaBool reads a boolean metadata value. JSON round-trips may store it as
// bool or as the strings "true"/"false".
func metaBool(meta map[string]interface{}, key string) bool {
	switch v := meta[key].(type) {
	case bool:
		return v
	case string:
		return v == "true"
	default:
		return false
	}
}

// metaAmount reads a minor-unit amount. JSON numbers decode as float64.
func metaAmount(meta map[string]interface{}, key string) (int64, bool) {
	switch v := meta[key].(type) {
	case float64:
		return int64(v), true
	case int64:
		return v, true
	case int:
		return int64(v), true
	default:
		return 0, false
	}
}
