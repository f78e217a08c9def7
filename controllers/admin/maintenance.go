package adminControllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/capitanmelao/avanticlassic-api/controllers/payments"
	"github.com/capitanmelao/avanticlassic-api/models"
	"gorm.io/gorm"
)

// legacyFormatCodes maps codes left behind by the old CMS to the current
// storage codes. The migration is idempotent: rerunning it finds nothing
// left to rewrite.
var legacyFormatCodes = map[string]string{
	"SACD Hybrid":  "hybrid_sacd",
	"Hybrid SACD":  "hybrid_sacd",
	"CD Audio":     "cd",
	"LP":           "vinyl",
	"2LP":          "double_vinyl",
	"Blu-Ray":      "blu_ray_audio",
}

// MigrateFormatLabels normalizes legacy product format codes in place.
// POST /api/admin/migrate/format-labels
func MigrateFormatLabels(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var patched int64
		err := db.Transaction(func(tx *gorm.DB) error {
			for legacy, current := range legacyFormatCodes {
				result := tx.Model(&models.Product{}).
					Where("format = ?", legacy).
					Update("format", current)
				if result.Error != nil {
					return result.Error
				}
				patched += result.RowsAffected
			}
			return nil
		})
		if err != nil {
			log.Printf("❌ Format-label migration failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Migration failed"})
			return
		}

		log.Printf("✅ Format-label migration patched %d products", patched)
		c.JSON(http.StatusOK, gin.H{"patched": patched})
	}
}

type RegisterDomainInput struct {
	Domain string `json:"domain" binding:"required,fqdn"`
}

// RegisterPaymentDomain registers the storefront domain with the payment
// provider so wallet payment methods work at checkout.
// POST /api/admin/payment-domain
func RegisterPaymentDomain() gin.HandlerFunc {
	return func(c *gin.Context) {
		var input RegisterDomainInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		if err := paymentControllers.RegisterPaymentDomain(input.Domain); err != nil {
			log.Printf("❌ Payment domain registration failed: %v", err)
			c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Domain registered", "domain": input.Domain})
	}
}
