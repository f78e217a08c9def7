package routes

import (
	"github.com/gin-gonic/gin"
	cartControllers "github.com/capitanmelao/avanticlassic-api/controllers/cart"
	checkoutControllers "github.com/capitanmelao/avanticlassic-api/controllers/checkout"
	"github.com/capitanmelao/avanticlassic-api/middleware"
	"gorm.io/gorm"
)

// SetupCartRoutes registers the cart and checkout endpoints. The anonymous
// cookie cart is public; the persisted cart requires a token.
func SetupCartRoutes(r *gin.Engine, db *gorm.DB) {
	cart := r.Group("/api/cart")
	{
		cart.POST("/add", cartControllers.AddToCookieCart(db))
		cart.GET("", cartControllers.GetCookieCart(db))
		cart.DELETE("", cartControllers.ClearCookieCart())

		items := cart.Group("/items")
		items.Use(middleware.ValidateToken)
		{
			items.GET("", cartControllers.GetUserCart(db))
			items.POST("", cartControllers.AddCartItem(db))
			items.PUT("", cartControllers.UpdateCartItemQuantity(db))
			items.DELETE("", cartControllers.RemoveCartItem(db))
		}
	}

	// Guest checkout is allowed; a valid token only attaches the user id,
	// which links the order to the account for "my orders".
	r.POST("/api/checkout", middleware.OptionalToken, checkoutControllers.Checkout(db))
}
