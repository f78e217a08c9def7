package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/capitanmelao/avanticlassic-api/models"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type PriceInput struct {
	Currency string `json:"currency" binding:"required,len=3"`
	Amount   int64  `json:"amount" binding:"required,min=0"`
}

type CreateProductInput struct {
	ReleaseID         uint                   `json:"release_id"`
	Name              string                 `json:"name" binding:"required"`
	Category          string                 `json:"category" binding:"required"`
	Format            string                 `json:"format" binding:"required"`
	Status            string                 `json:"status" binding:"omitempty,oneof=draft active archived"`
	InventoryQuantity int                    `json:"inventory_quantity" binding:"min=0"`
	InventoryTracking bool                   `json:"inventory_tracking"`
	Featured          bool                   `json:"featured"`
	Metadata          map[string]interface{} `json:"metadata"`
	Prices            []PriceInput           `json:"prices" binding:"dive"`
}

// CreateProduct creates a product with its prices in one transaction.
// POST /api/products
func CreateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input CreateProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		status := models.ProductStatusDraft
		if input.Status != "" {
			status = models.ProductStatus(input.Status)
		}

		product := models.Product{
			ReleaseID:         input.ReleaseID,
			Name:              input.Name,
			Category:          input.Category,
			Format:            input.Format,
			Status:            status,
			InventoryQuantity: input.InventoryQuantity,
			InventoryTracking: input.InventoryTracking,
			Featured:          input.Featured,
			Metadata:          datatypes.JSONMap(input.Metadata),
		}
		for _, p := range input.Prices {
			product.Prices = append(product.Prices, models.Price{
				Currency: p.Currency,
				Amount:   p.Amount,
				Type:     models.PriceTypeOneTime,
				Active:   true,
			})
		}

		if err := db.Create(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
			return
		}

		c.JSON(http.StatusCreated, product)
	}
}
