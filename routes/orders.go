package routes

import (
	"github.com/gin-gonic/gin"
	orderControllers "github.com/capitanmelao/avanticlassic-api/controllers/order"
	"github.com/capitanmelao/avanticlassic-api/middleware"
	"gorm.io/gorm"
)

// SetupOrderRoutes registers order listing and status management. Listing
// and mutation are admin surfaces; "mine" serves the signed-in customer.
func SetupOrderRoutes(r *gin.Engine, db *gorm.DB) {
	orders := r.Group("/api/orders")
	orders.Use(middleware.ValidateToken)
	{
		orders.GET("/mine", orderControllers.GetUserOrders(db))

		admin := orders.Group("")
		admin.Use(middleware.RequireAdminEmail)
		{
			admin.GET("", orderControllers.GetAllOrders(db))
			admin.GET("/live", orderControllers.LiveOrders)
			admin.GET("/:id", orderControllers.GetOrderByID(db))
			admin.PUT("/:id", orderControllers.UpdateOrder(db))
		}
	}
}
