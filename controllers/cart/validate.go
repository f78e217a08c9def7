package cartControllers

import (
	"errors"

	"github.com/capitanmelao/avanticlassic-api/models"
)

var (
	ErrNegativeQuantity      = errors.New("quantity must not be negative")
	ErrProductNotPurchasable = errors.New("product is not available for purchase")
	ErrInsufficientInventory = errors.New("insufficient inventory")
)

// ValidateQuantity checks a requested cart quantity against the product's
// current inventory state. The check is advisory only: nothing is reserved,
// so a concurrent checkout can still consume the stock afterwards. Checkout
// repeats the check under a row lock.
func ValidateQuantity(product *models.Product, quantity int) error {
	if quantity < 0 {
		return ErrNegativeQuantity
	}
	if product.InventoryTracking && quantity > product.InventoryQuantity {
		return ErrInsufficientInventory
	}
	return nil
}

// ValidateAddition additionally requires the product to be purchasable at
// all; used when an item first enters a cart.
func ValidateAddition(product *models.Product, quantity int) error {
	if !product.Available() {
		return ErrProductNotPurchasable
	}
	return ValidateQuantity(product, quantity)
}
