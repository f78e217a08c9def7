package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/capitanmelao/avanticlassic-api/models"
	"gorm.io/gorm"
)

// DeleteProduct archives a product that is referenced by order items and
// hard-deletes one that is not. Archiving instead of deleting preserves
// historical order integrity.
// DELETE /api/products/:id
func DeleteProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		if id == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Product ID is required"})
			return
		}

		var product models.Product
		if err := db.First(&product, "id = ?", id).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch product"})
			}
			return
		}

		var refCount int64
		if err := db.Model(&models.OrderItem{}).
			Where("product_id = ?", product.ID).
			Count(&refCount).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check order references"})
			return
		}

		if refCount > 0 {
			if err := db.Model(&product).
				Update("status", models.ProductStatusArchived).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to archive product"})
				return
			}
			c.JSON(http.StatusOK, gin.H{
				"message": "Product is referenced by orders and was archived",
				"status":  models.ProductStatusArchived,
			})
			return
		}

		err := db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Where("product_id = ?", product.ID).Delete(&models.Price{}).Error; err != nil {
				return err
			}
			return tx.Delete(&product).Error
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete product"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Product deleted"})
	}
}
