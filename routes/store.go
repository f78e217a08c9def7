package routes

import (
	"github.com/gin-gonic/gin"
	catalogControllers "github.com/capitanmelao/avanticlassic-api/controllers/catalog"
	paymentControllers "github.com/capitanmelao/avanticlassic-api/controllers/payments"
	productControllers "github.com/capitanmelao/avanticlassic-api/controllers/product"
	"gorm.io/gorm"
)

// SetupStoreRoutes registers the public "/api" storefront endpoints.
func SetupStoreRoutes(r *gin.Engine, db *gorm.DB) {
	api := r.Group("/api")
	{
		// ──────────────── Catalog ────────────────
		api.GET("/artists", catalogControllers.GetArtists(db))
		api.GET("/artists/:id", catalogControllers.GetArtistBySlug(db))
		api.GET("/releases", catalogControllers.GetReleases(db))
		api.GET("/releases/:id", catalogControllers.GetReleaseBySlug(db))
		api.GET("/videos", catalogControllers.GetVideos(db))
		api.GET("/playlists", catalogControllers.GetPlaylists(db))
		api.GET("/reviews", catalogControllers.GetReviews(db))

		// ──────────────── Products ────────────────
		api.GET("/products", productControllers.GetProducts(db))
		api.GET("/products/:id", productControllers.GetProductByID(db))
		api.GET("/products/by-release/:releaseId", productControllers.GetProductsByRelease(db))

		// ──────────────── Payments webhook ────────────────
		api.POST("/payments/webhook", paymentControllers.HandleWebhook(db))
	}
}
