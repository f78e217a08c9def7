package orderControllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/capitanmelao/avanticlassic-api/models"
	"gorm.io/gorm"
)

type UpdateOrderRequest struct {
	Status            *string    `json:"status" binding:"omitempty,oneof=pending paid shipped delivered cancelled archived"`
	FulfillmentStatus *string    `json:"fulfillment_status" binding:"omitempty,oneof=unfulfilled fulfilled"`
	TrackingNumber    *string    `json:"tracking_number"`
	TrackingURL       *string    `json:"tracking_url"`
	Notes             *string    `json:"notes"`
	ShippedAt         *time.Time `json:"shipped_at"`
	DeliveredAt       *time.Time `json:"delivered_at"`
}

var ErrInvalidTransition = errors.New("invalid order status transition")

// applyOrderUpdate turns an update request into the column set to persist.
// Only the enumerated mutable fields are touched; financial fields never
// appear here. Moving into shipped/delivered stamps the matching timestamp
// if it is not already set, and an update that does not target a timestamp
// never clears it.
func applyOrderUpdate(order *models.Order, req UpdateOrderRequest, now time.Time) (map[string]interface{}, error) {
	updates := map[string]interface{}{}

	if req.Status != nil {
		next := models.OrderStatus(*req.Status)
		if !order.Status.CanTransition(next) {
			return nil, ErrInvalidTransition
		}
		if next != order.Status {
			updates["status"] = next
			if next == models.OrderStatusShipped && order.ShippedAt == nil && req.ShippedAt == nil {
				updates["shipped_at"] = now
			}
			if next == models.OrderStatusDelivered && order.DeliveredAt == nil && req.DeliveredAt == nil {
				updates["delivered_at"] = now
			}
		}
	}
	if req.FulfillmentStatus != nil {
		updates["fulfillment_status"] = models.FulfillmentStatus(*req.FulfillmentStatus)
	}
	if req.TrackingNumber != nil {
		updates["tracking_number"] = *req.TrackingNumber
	}
	if req.TrackingURL != nil {
		updates["tracking_url"] = *req.TrackingURL
	}
	if req.Notes != nil {
		updates["notes"] = *req.Notes
	}
	if req.ShippedAt != nil {
		updates["shipped_at"] = *req.ShippedAt
	}
	if req.DeliveredAt != nil {
		updates["delivered_at"] = *req.DeliveredAt
	}

	return updates, nil
}

// GetAllOrders lists orders newest first.
// GET /api/orders
func GetAllOrders(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := db.Preload("Items").Order("created_at DESC")
		if status := c.Query("status"); status != "" {
			query = query.Where("status = ?", status)
		}

		var orders []models.Order
		if err := query.Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

// GetOrderByID returns one order by numeric id or order_ref.
// GET /api/orders/:id
func GetOrderByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		if id == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "order id is required"})
			return
		}

		var order models.Order
		if err := db.Preload("Items").
			Where("id::text = ? OR order_ref = ?", id, id).
			First(&order).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch order"})
			return
		}

		c.JSON(http.StatusOK, order)
	}
}

// UpdateOrder mutates the enumerated status-transition fields of an order.
// PUT /api/orders/:id
func UpdateOrder(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var order models.Order
		if err := db.First(&order, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch order"})
			return
		}

		var req UpdateOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		updates, err := applyOrderUpdate(&order, req, time.Now())
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if len(updates) == 0 {
			c.JSON(http.StatusOK, order)
			return
		}

		if err := db.Model(&order).Updates(updates).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update order"})
			return
		}

		c.JSON(http.StatusOK, order)
	}
}

// GetUserOrders lists the signed-in user's own orders.
// GET /api/orders/mine
func GetUserOrders(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var orders []models.Order
		if err := db.Preload("Items").
			Where("user_id = ?", userIDVal).
			Order("created_at DESC").
			Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}
