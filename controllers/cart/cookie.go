package cartControllers

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

const (
	cartCookieName   = "cart"
	cartCookieMaxAge = 7 * 24 * 60 * 60 // 7 days, in seconds
)

// CookieCartItem is one line of the anonymous cart held client-side.
type CookieCartItem struct {
	ProductID uint      `json:"product_id"`
	Quantity  int       `json:"quantity"`
	AddedAt   time.Time `json:"added_at"`
}

// EncodeCartCookie serializes cart lines for the cookie value:
// base64(JSON array). Cookie values cannot carry raw JSON punctuation.
func EncodeCartCookie(items []CookieCartItem) (string, error) {
	data, err := json.Marshal(items)
	if err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(data), nil
}

// DecodeCartCookie parses a cookie value back into cart lines. A missing or
// malformed cookie yields an empty cart rather than an error; the client
// cookie is untrusted input and never worth failing a request over.
func DecodeCartCookie(value string) []CookieCartItem {
	if value == "" {
		return nil
	}
	data, err := base64.RawURLEncoding.DecodeString(value)
	if err != nil {
		return nil
	}
	var items []CookieCartItem
	if err := json.Unmarshal(data, &items); err != nil {
		return nil
	}
	return items
}

// MergeCookieItem adds quantity to an existing line or appends a new one.
// A zero resulting quantity drops the line.
func MergeCookieItem(items []CookieCartItem, productID uint, quantity int, now time.Time) []CookieCartItem {
	for i := range items {
		if items[i].ProductID == productID {
			items[i].Quantity += quantity
			if items[i].Quantity <= 0 {
				return append(items[:i], items[i+1:]...)
			}
			return items
		}
	}
	if quantity <= 0 {
		return items
	}
	return append(items, CookieCartItem{ProductID: productID, Quantity: quantity, AddedAt: now})
}

func readCartCookie(c *gin.Context) []CookieCartItem {
	value, err := c.Cookie(cartCookieName)
	if err != nil {
		return nil
	}
	return DecodeCartCookie(value)
}

func writeCartCookie(c *gin.Context, items []CookieCartItem) error {
	value, err := EncodeCartCookie(items)
	if err != nil {
		return err
	}
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     cartCookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   cartCookieMaxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}
