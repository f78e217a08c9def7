package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/capitanmelao/avanticlassic-api/models"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type UpdateProductInput struct {
	ReleaseID         *uint                  `json:"release_id"`
	Name              *string                `json:"name"`
	Category          *string                `json:"category"`
	Format            *string                `json:"format"`
	Status            *string                `json:"status" binding:"omitempty,oneof=draft active archived"`
	InventoryQuantity *int                   `json:"inventory_quantity" binding:"omitempty,min=0"`
	InventoryTracking *bool                  `json:"inventory_tracking"`
	Featured          *bool                  `json:"featured"`
	Metadata          map[string]interface{} `json:"metadata"`
}

// UpdateProduct applies a partial update to a product.
// PUT /api/products/:id
func UpdateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var product models.Product
		if err := db.First(&product, "id = ?", id).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch product"})
			}
			return
		}

		var input UpdateProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		updates := map[string]interface{}{}
		if input.ReleaseID != nil {
			updates["release_id"] = *input.ReleaseID
		}
		if input.Name != nil {
			updates["name"] = *input.Name
		}
		if input.Category != nil {
			updates["category"] = *input.Category
		}
		if input.Format != nil {
			updates["format"] = *input.Format
		}
		if input.Status != nil {
			updates["status"] = models.ProductStatus(*input.Status)
		}
		if input.InventoryQuantity != nil {
			updates["inventory_quantity"] = *input.InventoryQuantity
		}
		if input.InventoryTracking != nil {
			updates["inventory_tracking"] = *input.InventoryTracking
		}
		if input.Featured != nil {
			updates["featured"] = *input.Featured
		}
		if input.Metadata != nil {
			updates["metadata"] = datatypes.JSONMap(input.Metadata)
		}
		if len(updates) == 0 {
			c.JSON(http.StatusOK, product)
			return
		}

		if err := db.Model(&product).Updates(updates).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
			return
		}

		c.JSON(http.StatusOK, product)
	}
}
