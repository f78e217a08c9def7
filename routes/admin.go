package routes

import (
	"github.com/gin-gonic/gin"
	adminControllers "github.com/capitanmelao/avanticlassic-api/controllers/admin"
	catalogControllers "github.com/capitanmelao/avanticlassic-api/controllers/catalog"
	orderControllers "github.com/capitanmelao/avanticlassic-api/controllers/order"
	productControllers "github.com/capitanmelao/avanticlassic-api/controllers/product"
	"github.com/capitanmelao/avanticlassic-api/middleware"
	"gorm.io/gorm"
)

// SetupAdminRoutes registers the content-editing surface (JWT + allow-list)
// and the operational maintenance endpoints (additionally API-key gated).
func SetupAdminRoutes(r *gin.Engine, db *gorm.DB) {
	api := r.Group("/api")
	api.Use(middleware.ValidateToken, middleware.RequireAdminEmail)
	{
		// ──────────────── Products ────────────────
		api.POST("/products", productControllers.CreateProduct(db))
		api.PUT("/products/:id", productControllers.UpdateProduct(db))
		api.DELETE("/products/:id", productControllers.DeleteProduct(db))

		// ──────────────── Catalog content ────────────────
		api.POST("/artists", catalogControllers.CreateArtist(db))
		api.PUT("/artists/:id", catalogControllers.UpdateArtist(db))
		api.DELETE("/artists/:id", catalogControllers.DeleteArtist(db))

		api.POST("/releases", catalogControllers.CreateRelease(db))
		api.PUT("/releases/:id", catalogControllers.UpdateRelease(db))
		api.DELETE("/releases/:id", catalogControllers.DeleteRelease(db))

		api.POST("/videos", catalogControllers.CreateVideo(db))
		api.PUT("/videos/:id", catalogControllers.UpdateVideo(db))
		api.DELETE("/videos/:id", catalogControllers.DeleteVideo(db))

		api.POST("/playlists", catalogControllers.CreatePlaylist(db))
		api.DELETE("/playlists/:id", catalogControllers.DeletePlaylist(db))

		api.POST("/reviews", catalogControllers.CreateReview(db))
		api.PUT("/reviews/:id", catalogControllers.UpdateReview(db))
		api.DELETE("/reviews/:id", catalogControllers.DeleteReview(db))
	}

	// One-shot operational tooling, not part of the runtime request path.
	maintenance := r.Group("/api/admin")
	maintenance.Use(middleware.ValidateAPIKey)
	{
		maintenance.POST("/migrate/format-labels", adminControllers.MigrateFormatLabels(db))
		maintenance.POST("/payment-domain", adminControllers.RegisterPaymentDomain())
		maintenance.GET("/export/products", productControllers.ExportProductsToExcel(db))
		maintenance.GET("/export/orders", orderControllers.ExportOrdersToExcel(db))
	}
}
