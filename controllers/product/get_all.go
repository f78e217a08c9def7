package productcontroller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/capitanmelao/avanticlassic-api/models"
	"gorm.io/gorm"
)

// GetProducts lists products with filtering and pagination.
// GET /api/products?category&status&page&limit&search&format&featured
func GetProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
		if err != nil || page < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid page"})
			return
		}
		limit, err := strconv.Atoi(c.DefaultQuery("limit", "20"))
		if err != nil || limit < 1 || limit > 100 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid limit"})
			return
		}

		query := db.Model(&models.Product{}).Preload("Prices")

		if category := c.Query("category"); category != "" {
			query = query.Where("category = ?", category)
		}
		if status := c.Query("status"); status != "" {
			query = query.Where("status = ?", status)
		}
		if format := c.Query("format"); format != "" {
			query = query.Where("format = ?", format)
		}
		if featured := c.Query("featured"); featured != "" {
			query = query.Where("featured = ?", featured == "true")
		}
		if search := c.Query("search"); search != "" {
			likePattern := "%" + search + "%"
			query = query.Where("name ILIKE ?", likePattern)
		}

		var total int64
		if err := query.Count(&total).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count products"})
			return
		}

		var products []models.Product
		if err := query.
			Order("created_at DESC").
			Limit(limit).
			Offset((page - 1) * limit).
			Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"products": products,
			"page":     page,
			"limit":    limit,
			"total":    total,
		})
	}
}
