package productcontroller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/capitanmelao/avanticlassic-api/models"
	"gorm.io/gorm"
)

// GetProductByID returns a single product with its prices.
// URL param: /api/products/:id
func GetProductByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		idParam := c.Param("id")
		id, err := strconv.Atoi(idParam)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
			return
		}

		var product models.Product
		if err := db.Preload("Prices").First(&product, id).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve product"})
			}
			return
		}
		c.JSON(http.StatusOK, product)
	}
}

// FormatEntry is one purchasable variant of a release as shown in the shop.
type FormatEntry struct {
	ID                uint   `json:"id"`
	Format            string `json:"format"`
	Label             string `json:"label"`
	Price             int64  `json:"price"`
	Currency          string `json:"currency"`
	PriceID           uint   `json:"price_id"`
	InventoryQuantity int    `json:"inventory_quantity"`
	Available         bool   `json:"available"`
}

// GetProductsByRelease returns the purchasable formats of a release with
// display labels, current price and availability. No caching; every call
// re-reads the store.
// GET /api/products/by-release/:releaseId
func GetProductsByRelease(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		releaseID, err := strconv.Atoi(c.Param("releaseId"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid release ID"})
			return
		}

		var products []models.Product
		if err := db.Preload("Prices").
			Where("release_id = ?", releaseID).
			Order("format ASC").
			Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}

		formats := make([]FormatEntry, 0, len(products))
		for i := range products {
			p := &products[i]
			entry := FormatEntry{
				ID:                p.ID,
				Format:            p.Format,
				Label:             models.FormatLabel(p.Format),
				InventoryQuantity: p.InventoryQuantity,
				Available:         p.Available(),
			}
			if price, ok := p.ActivePrice(); ok {
				entry.Price = price.Amount
				entry.Currency = price.Currency
				entry.PriceID = price.ID
			}
			formats = append(formats, entry)
		}

		c.JSON(http.StatusOK, gin.H{"formats": formats})
	}
}
