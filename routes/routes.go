package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRoutes is the single entry point that wires up the public store,
// cart/checkout, order, and admin route groups.
func SetupRoutes(r *gin.Engine, db *gorm.DB) {
	// Public storefront routes (no middleware)
	SetupStoreRoutes(r, db)

	// Cart and checkout routes (cookie cart public, persisted cart JWT)
	SetupCartRoutes(r, db)

	// Order routes (admin + user's own)
	SetupOrderRoutes(r, db)

	// Admin routes (JWT + allow-list, maintenance behind API key)
	SetupAdminRoutes(r, db)
}
