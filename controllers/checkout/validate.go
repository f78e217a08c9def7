package checkoutControllers

import (
	"errors"
	"fmt"

	validatorv10 "github.com/go-playground/validator/v10"
)

var ErrDuplicateProduct = errors.New("duplicate product in checkout items")

// RegisterValidations adds the checkout struct-level check to gin's binding
// validator. Called once from main.
func RegisterValidations(v *validatorv10.Validate) {
	v.RegisterStructValidation(checkoutStructValidation, CheckoutRequest{})
}

// checkoutStructValidation rejects payloads listing the same product twice;
// duplicates would double-lock the same row inside the checkout transaction.
func checkoutStructValidation(sl validatorv10.StructLevel) {
	req := sl.Current().Interface().(CheckoutRequest)
	if err := validateItems(req.Items); err != nil {
		sl.ReportError(req.Items, "items", "Items", "unique_products", err.Error())
	}
}

// validateItems is the duplicate check itself. Binding tags already enforce
// presence and positive quantities.
func validateItems(items []CheckoutItemInput) error {
	seen := make(map[uint]struct{}, len(items))
	for _, item := range items {
		if _, dup := seen[item.ProductID]; dup {
			return fmt.Errorf("%w: product %d", ErrDuplicateProduct, item.ProductID)
		}
		seen[item.ProductID] = struct{}{}
	}
	return nil
}
