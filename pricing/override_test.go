package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTaxOverride(t *testing.T) {
	t.Run("absent", func(t *testing.T) {
		assert.Equal(t, OverrideNone, TaxOverride(nil).Kind)
		assert.Equal(t, OverrideNone, TaxOverride(map[string]interface{}{}).Kind)
	})

	t.Run("enabled flat rate", func(t *testing.T) {
		// JSON round-trip stores numbers as float64.
		o := TaxOverride(map[string]interface{}{
			"tax_override_enabled": true,
			"tax_override_amount":  float64(250),
		})
		assert.Equal(t, OverrideFlatRate, o.Kind)
		assert.Equal(t, int64(250), o.Amount)
	})

	t.Run("enabled as string", func(t *testing.T) {
		o := TaxOverride(map[string]interface{}{
			"tax_override_enabled": "true",
			"tax_override_amount":  float64(100),
		})
		assert.Equal(t, OverrideFlatRate, o.Kind)
	})

	t.Run("enabled without amount is ignored", func(t *testing.T) {
		o := TaxOverride(map[string]interface{}{"tax_override_enabled": true})
		assert.Equal(t, OverrideNone, o.Kind)
	})

	t.Run("negative amount is ignored", func(t *testing.T) {
		o := TaxOverride(map[string]interface{}{
			"tax_override_enabled": true,
			"tax_override_amount":  float64(-1),
		})
		assert.Equal(t, OverrideNone, o.Kind)
	})

	t.Run("amount without enable flag is ignored", func(t *testing.T) {
		o := TaxOverride(map[string]interface{}{"tax_override_amount": float64(250)})
		assert.Equal(t, OverrideNone, o.Kind)
	})
}

func TestShippingOverride(t *testing.T) {
	t.Run("flat amount", func(t *testing.T) {
		o := ShippingOverride(map[string]interface{}{
			"shipping_override_enabled": true,
			"shipping_flat_amount":      float64(500),
		})
		assert.Equal(t, OverrideFlatRate, o.Kind)
		assert.Equal(t, int64(500), o.Amount)
	})

	t.Run("free above threshold", func(t *testing.T) {
		o := ShippingOverride(map[string]interface{}{
			"shipping_override_enabled": true,
			"shipping_free_above":       float64(5000),
		})
		assert.Equal(t, OverrideFreeAboveThreshold, o.Kind)
		assert.Equal(t, int64(5000), o.Threshold)
	})

	t.Run("threshold wins over flat when both present", func(t *testing.T) {
		o := ShippingOverride(map[string]interface{}{
			"shipping_override_enabled": true,
			"shipping_flat_amount":      float64(500),
			"shipping_free_above":       float64(5000),
		})
		assert.Equal(t, OverrideFreeAboveThreshold, o.Kind)
	})

	t.Run("disabled", func(t *testing.T) {
		o := ShippingOverride(map[string]interface{}{
			"shipping_override_enabled": false,
			"shipping_flat_amount":      float64(500),
		})
		assert.Equal(t, OverrideNone, o.Kind)
	})
}
