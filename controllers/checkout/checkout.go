package checkoutControllers

import (
	"errors"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/capitanmelao/avanticlassic-api/controllers/order"
	"github.com/capitanmelao/avanticlassic-api/controllers/payments"
	"github.com/capitanmelao/avanticlassic-api/models"
	"github.com/capitanmelao/avanticlassic-api/pricing"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CheckoutItemInput struct {
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  int  `json:"quantity" binding:"required,min=1"`
}

type CheckoutRequest struct {
	Email    string              `json:"email" binding:"required,email"`
	Name     string              `json:"name" binding:"required"`
	UserID   string              `json:"-"`
	Items    []CheckoutItemInput `json:"items" binding:"required,min=1,dive"`
	Shipping models.Address      `json:"shipping"`
}

// checkoutFailure carries the HTTP status a validation outcome maps to, so
// the transaction body can stay free of gin.
type checkoutFailure struct {
	status int
	msg    string
}

func (e *checkoutFailure) Error() string { return e.msg }

// generateOrderRef builds a unique human-sortable reference,
// e.g. 20260829153000-8d0f…
func generateOrderRef() string {
	return time.Now().Format("20060102150405") + "-" + uuid.NewString()
}

// loadRates reads the standard regional tax rate and flat shipping amount
// from the environment. Missing values mean zero tax / free shipping, which
// matches a provider-side tax configuration.
func loadRates() pricing.Rates {
	rates := pricing.Rates{TaxRate: decimal.Zero}
	if raw := os.Getenv("TAX_RATE"); raw != "" {
		if rate, err := decimal.NewFromString(raw); err == nil {
			rates.TaxRate = rate
		}
	}
	if raw := os.Getenv("SHIPPING_FLAT_AMOUNT"); raw != "" {
		if amount, err := decimal.NewFromString(raw); err == nil {
			rates.ShippingAmount = amount.IntPart()
		}
	}
	return rates
}

// Checkout converts a cart snapshot into a persisted order and opens a
// payment intent. Pricing and availability are re-resolved from the store
// inside one transaction; the client payload contributes only product ids,
// quantities and contact details. Tracked inventory is decremented under a
// row lock, so concurrent checkouts cannot oversell.
// POST /api/checkout
func Checkout(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CheckoutRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		if err := validateItems(req.Items); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if userIDVal, ok := c.Get("user_id"); ok {
			if userID, ok := userIDVal.(string); ok {
				req.UserID = userID
			}
		}

		rates := loadRates()
		var created models.Order

		err := db.Transaction(func(tx *gorm.DB) error {
			var lines []pricing.Line
			var orderItems []models.OrderItem
			currency := ""

			for _, item := range req.Items {
				var product models.Product
				if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
					Preload("Prices").
					First(&product, "id = ?", item.ProductID).Error; err != nil {
					if errors.Is(err, gorm.ErrRecordNotFound) {
						return &checkoutFailure{http.StatusBadRequest, "product does not exist"}
					}
					return err
				}

				if !product.Available() {
					return &checkoutFailure{http.StatusConflict, "product is not available: " + product.Name}
				}
				if product.InventoryTracking {
					if item.Quantity > product.InventoryQuantity {
						return &checkoutFailure{http.StatusConflict, "insufficient inventory for " + product.Name}
					}
					product.InventoryQuantity -= item.Quantity
					if err := tx.Save(&product).Error; err != nil {
						return err
					}
				}

				price, ok := product.ActivePrice()
				if !ok {
					return &checkoutFailure{http.StatusConflict, "product has no active price: " + product.Name}
				}
				if currency == "" {
					currency = price.Currency
				} else if currency != price.Currency {
					return &checkoutFailure{http.StatusBadRequest, "cart mixes currencies"}
				}

				lines = append(lines, pricing.Line{
					ProductID:  product.ID,
					UnitAmount: price.Amount,
					Quantity:   item.Quantity,
					Tax:        pricing.TaxOverride(product.Metadata),
					Shipping:   pricing.ShippingOverride(product.Metadata),
				})
				orderItems = append(orderItems, models.OrderItem{
					ProductID:   product.ID,
					ProductName: product.Name,
					Format:      product.Format,
					UnitAmount:  price.Amount,
					Currency:    price.Currency,
					Quantity:    item.Quantity,
				})
			}

			quote := pricing.QuoteOrder(lines, rates)

			created = models.Order{
				OrderRef:          generateOrderRef(),
				UserID:            req.UserID,
				CustomerEmail:     req.Email,
				CustomerName:      req.Name,
				Shipping:          req.Shipping,
				Items:             orderItems,
				Currency:          currency,
				Subtotal:          quote.Subtotal,
				TaxAmount:         quote.TaxAmount,
				ShippingAmount:    quote.ShippingAmount,
				TotalAmount:       quote.Total,
				Status:            models.OrderStatusPending,
				PaymentStatus:     models.PaymentStatusPending,
				FulfillmentStatus: models.FulfillmentUnfulfilled,
			}
			return tx.Create(&created).Error
		})
		if err != nil {
			var failure *checkoutFailure
			if errors.As(err, &failure) {
				c.JSON(failure.status, gin.H{"error": failure.msg})
				return
			}
			log.Printf("❌ Checkout failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create order"})
			return
		}

		orderControllers.BroadcastNewOrder(created)

		// The order is committed; a provider failure leaves it pending and
		// the client retries the whole checkout.
		intent, err := paymentControllers.CreatePaymentIntent(
			created.TotalAmount, created.Currency, created.OrderRef, created.CustomerEmail)
		if err != nil {
			log.Printf("❌ Payment intent creation failed for order %s: %v", created.OrderRef, err)
			if uerr := db.Model(&created).
				Update("payment_status", models.PaymentStatusFailed).Error; uerr != nil {
				log.Printf("❌ Failed to record payment failure on order %s: %v", created.OrderRef, uerr)
			}
			c.JSON(http.StatusBadGateway, gin.H{
				"error":     "Payment session creation failed",
				"order_id":  created.ID,
				"order_ref": created.OrderRef,
			})
			return
		}

		if err := db.Model(&created).
			Update("payment_intent_id", intent.ID).Error; err != nil {
			log.Printf("❌ Failed to store payment intent on order %s: %v", created.OrderRef, err)
		}

		c.JSON(http.StatusCreated, gin.H{
			"order_id":        created.ID,
			"order_ref":       created.OrderRef,
			"subtotal":        created.Subtotal,
			"tax_amount":      created.TaxAmount,
			"shipping_amount": created.ShippingAmount,
			"total_amount":    created.TotalAmount,
			"currency":        created.Currency,
			"client_secret":   intent.ClientSecret,
			"publishable_key": os.Getenv("STRIPE_PUBLISHABLE_KEY"),
		})
	}
}
