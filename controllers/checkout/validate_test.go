package checkoutControllers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateItems(t *testing.T) {
	t.Run("distinct products pass", func(t *testing.T) {
		err := validateItems([]CheckoutItemInput{
			{ProductID: 1, Quantity: 2},
			{ProductID: 2, Quantity: 1},
		})
		assert.NoError(t, err)
	})

	t.Run("duplicate product rejected", func(t *testing.T) {
		err := validateItems([]CheckoutItemInput{
			{ProductID: 1, Quantity: 2},
			{ProductID: 1, Quantity: 1},
		})
		assert.ErrorIs(t, err, ErrDuplicateProduct)
	})

	t.Run("empty list passes here, binding rejects it upstream", func(t *testing.T) {
		assert.NoError(t, validateItems(nil))
	})
}
