package paymentControllers

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/capitanmelao/avanticlassic-api/models"
	"gorm.io/gorm"
)

type webhookEvent struct {
	Type string `json:"type"`
	Data struct {
		Object struct {
			ID       string `json:"id"`
			Metadata struct {
				OrderRef string `json:"order_ref"`
			} `json:"metadata"`
		} `json:"object"`
	} `json:"data"`
}

// webhookTolerance bounds how old (or how far in the future) a signed
// event timestamp may be; older events are treated as replays.
const webhookTolerance = 5 * time.Minute

// verifySignature checks the provider's Stripe-Signature header: HMAC-SHA256
// of "<timestamp>.<payload>" with the webhook secret, header format
// "t=<timestamp>,v1=<hex>". The timestamp must fall within
// webhookTolerance of now.
func verifySignature(payload []byte, header, secret string, now time.Time) error {
	var timestamp, signature string
	for _, part := range strings.Split(header, ",") {
		kv := strings.SplitN(strings.TrimSpace(part), "=", 2)
		if len(kv) != 2 {
			continue
		}
		switch kv[0] {
		case "t":
			timestamp = kv[1]
		case "v1":
			signature = kv[1]
		}
	}
	if timestamp == "" || signature == "" {
		return fmt.Errorf("malformed signature header")
	}

	ts, err := strconv.ParseInt(timestamp, 10, 64)
	if err != nil {
		return fmt.Errorf("malformed signature timestamp")
	}
	age := now.Sub(time.Unix(ts, 0))
	if age > webhookTolerance || age < -webhookTolerance {
		return fmt.Errorf("signature timestamp outside tolerance")
	}

	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(timestamp))
	mac.Write([]byte("."))
	mac.Write(payload)
	expected := hex.EncodeToString(mac.Sum(nil))

	if !hmac.Equal([]byte(expected), []byte(signature)) {
		return fmt.Errorf("signature mismatch")
	}
	return nil
}

// HandleWebhook receives payment events and moves the matching order's
// payment status. Unknown event types are acknowledged and ignored.
// POST /api/payments/webhook
func HandleWebhook(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		secret := os.Getenv("STRIPE_WEBHOOK_SECRET")
		if secret == "" {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Webhook not configured"})
			return
		}

		payload, err := io.ReadAll(c.Request.Body)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read payload"})
			return
		}
		if err := verifySignature(payload, c.GetHeader("Stripe-Signature"), secret, time.Now()); err != nil {
			c.JSON(http.StatusForbidden, gin.H{"error": "Invalid webhook signature"})
			return
		}

		var event webhookEvent
		if err := json.Unmarshal(payload, &event); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid event payload"})
			return
		}

		switch event.Type {
		case "payment_intent.succeeded":
			if err := markOrderPaid(db, event.Data.Object.ID); err != nil {
				log.Printf("❌ Webhook: failed to mark order paid for intent %s: %v", event.Data.Object.ID, err)
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update order"})
				return
			}
		case "payment_intent.payment_failed":
			if err := db.Model(&models.Order{}).
				Where("payment_intent_id = ?", event.Data.Object.ID).
				Update("payment_status", models.PaymentStatusFailed).Error; err != nil {
				log.Printf("❌ Webhook: failed to mark payment failed for intent %s: %v", event.Data.Object.ID, err)
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update order"})
				return
			}
		}

		c.JSON(http.StatusOK, gin.H{"received": true})
	}
}

func markOrderPaid(db *gorm.DB, intentID string) error {
	var order models.Order
	if err := db.Where("payment_intent_id = ?", intentID).First(&order).Error; err != nil {
		return err
	}
	if !order.Status.CanTransition(models.OrderStatusPaid) {
		// Late or replayed event against an already-progressed order.
		return nil
	}
	return db.Model(&order).Updates(map[string]interface{}{
		"status":         models.OrderStatusPaid,
		"payment_status": models.PaymentStatusPaid,
	}).Error
}
