package cartControllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/capitanmelao/avanticlassic-api/models"
	"gorm.io/gorm"
)

type AddToCartInput struct {
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  int  `json:"quantity" binding:"required,min=1"`
}

// AddToCookieCart appends to the anonymous cookie cart after validating the
// product against the store.
// POST /api/cart/add
func AddToCookieCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input AddToCartInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		var product models.Product
		if err := db.First(&product, "id = ?", input.ProductID).Error; err != nil {
			status := http.StatusInternalServerError
			errMsg := "Failed to validate product"
			if err == gorm.ErrRecordNotFound {
				status = http.StatusBadRequest
				errMsg = "Product does not exist"
			}
			c.JSON(status, gin.H{"error": errMsg})
			return
		}

		items := readCartCookie(c)
		requested := input.Quantity
		for _, item := range items {
			if item.ProductID == product.ID {
				requested += item.Quantity
			}
		}
		if err := ValidateAddition(&product, requested); err != nil {
			status := http.StatusBadRequest
			if err == ErrInsufficientInventory {
				status = http.StatusConflict
			}
			c.JSON(status, gin.H{"error": err.Error()})
			return
		}

		items = MergeCookieItem(items, product.ID, input.Quantity, time.Now())
		if err := writeCartCookie(c, items); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"items": items})
	}
}

// CookieCartLine is a cookie cart item joined with live product data. The
// cookie only stores product id and quantity; price and availability are
// resolved here, never taken from the client.
type CookieCartLine struct {
	ProductID uint   `json:"product_id"`
	Name      string `json:"name"`
	Format    string `json:"format"`
	Label     string `json:"label"`
	Quantity  int    `json:"quantity"`
	Price     int64  `json:"price"`
	Currency  string `json:"currency"`
	Available bool   `json:"available"`
}

// GetCookieCart resolves the cookie cart against current catalog state.
// Lines whose product has disappeared are dropped silently.
// GET /api/cart
func GetCookieCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		items := readCartCookie(c)
		if len(items) == 0 {
			c.JSON(http.StatusOK, gin.H{"items": []CookieCartLine{}})
			return
		}

		ids := make([]uint, 0, len(items))
		for _, item := range items {
			ids = append(ids, item.ProductID)
		}

		var products []models.Product
		if err := db.Preload("Prices").Where("id IN ?", ids).Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart products"})
			return
		}
		byID := make(map[uint]*models.Product, len(products))
		for i := range products {
			byID[products[i].ID] = &products[i]
		}

		lines := make([]CookieCartLine, 0, len(items))
		for _, item := range items {
			p, ok := byID[item.ProductID]
			if !ok {
				continue
			}
			line := CookieCartLine{
				ProductID: p.ID,
				Name:      p.Name,
				Format:    p.Format,
				Label:     models.FormatLabel(p.Format),
				Quantity:  item.Quantity,
				Available: p.Available(),
			}
			if price, ok := p.ActivePrice(); ok {
				line.Price = price.Amount
				line.Currency = price.Currency
			}
			lines = append(lines, line)
		}

		c.JSON(http.StatusOK, gin.H{"items": lines})
	}
}

// ClearCookieCart drops the anonymous cart.
// DELETE /api/cart
func ClearCookieCart() gin.HandlerFunc {
	return func(c *gin.Context) {
		http.SetCookie(c.Writer, &http.Cookie{
			Name:     cartCookieName,
			Value:    "",
			Path:     "/",
			MaxAge:   -1,
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
		c.JSON(http.StatusOK, gin.H{"message": "Cart cleared"})
	}
}
