package orderControllers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/capitanmelao/avanticlassic-api/models"
)

func strPtr(s string) *string { return &s }

func TestApplyOrderUpdateTransitions(t *testing.T) {
	now := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)

	t.Run("paid to shipped stamps shipped_at", func(t *testing.T) {
		order := &models.Order{Status: models.OrderStatusPaid}
		updates, err := applyOrderUpdate(order, UpdateOrderRequest{Status: strPtr("shipped")}, now)
		require.NoError(t, err)
		assert.Equal(t, models.OrderStatusShipped, updates["status"])
		assert.Equal(t, now, updates["shipped_at"])
	})

	t.Run("existing shipped_at is not restamped", func(t *testing.T) {
		earlier := now.Add(-24 * time.Hour)
		order := &models.Order{Status: models.OrderStatusPaid, ShippedAt: &earlier}
		updates, err := applyOrderUpdate(order, UpdateOrderRequest{Status: strPtr("shipped")}, now)
		require.NoError(t, err)
		_, stamped := updates["shipped_at"]
		assert.False(t, stamped)
	})

	t.Run("explicit timestamp wins over auto-stamp", func(t *testing.T) {
		explicit := now.Add(-2 * time.Hour)
		order := &models.Order{Status: models.OrderStatusPaid}
		updates, err := applyOrderUpdate(order, UpdateOrderRequest{
			Status:    strPtr("shipped"),
			ShippedAt: &explicit,
		}, now)
		require.NoError(t, err)
		assert.Equal(t, explicit, updates["shipped_at"])
	})

	t.Run("backward transition rejected", func(t *testing.T) {
		order := &models.Order{Status: models.OrderStatusShipped}
		_, err := applyOrderUpdate(order, UpdateOrderRequest{Status: strPtr("paid")}, now)
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})

	t.Run("skipping paid rejected", func(t *testing.T) {
		order := &models.Order{Status: models.OrderStatusPending}
		_, err := applyOrderUpdate(order, UpdateOrderRequest{Status: strPtr("shipped")}, now)
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})

	t.Run("repeating current status is a no-op", func(t *testing.T) {
		order := &models.Order{Status: models.OrderStatusPaid}
		updates, err := applyOrderUpdate(order, UpdateOrderRequest{Status: strPtr("paid")}, now)
		require.NoError(t, err)
		assert.Empty(t, updates)
	})
}

func TestApplyOrderUpdateMonotonicTimestamps(t *testing.T) {
	now := time.Now()
	shipped := now.Add(-48 * time.Hour)
	order := &models.Order{Status: models.OrderStatusShipped, ShippedAt: &shipped}

	// An update that does not target shipped_at must not touch it.
	updates, err := applyOrderUpdate(order, UpdateOrderRequest{
		TrackingNumber: strPtr("1Z999AA10123456784"),
		Notes:          strPtr("left with neighbour"),
	}, now)
	require.NoError(t, err)

	_, touched := updates["shipped_at"]
	assert.False(t, touched)
	assert.Equal(t, "1Z999AA10123456784", updates["tracking_number"])
	assert.Equal(t, "left with neighbour", updates["notes"])
}

func TestApplyOrderUpdateAllowedFieldsOnly(t *testing.T) {
	now := time.Now()
	order := &models.Order{Status: models.OrderStatusPaid}

	updates, err := applyOrderUpdate(order, UpdateOrderRequest{
		Status:            strPtr("shipped"),
		FulfillmentStatus: strPtr("fulfilled"),
		TrackingNumber:    strPtr("T123"),
		TrackingURL:       strPtr("https://track.example/T123"),
		Notes:             strPtr("fragile"),
	}, now)
	require.NoError(t, err)

	// Financial columns never appear in the update set.
	for column := range updates {
		assert.NotContains(t, []string{
			"subtotal", "tax_amount", "shipping_amount", "total_amount", "currency",
		}, column)
	}
}
