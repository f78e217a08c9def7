package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderStatusTransitions(t *testing.T) {
	allowed := []struct {
		from, to OrderStatus
	}{
		{OrderStatusPending, OrderStatusPaid},
		{OrderStatusPending, OrderStatusCancelled},
		{OrderStatusPending, OrderStatusArchived},
		{OrderStatusPaid, OrderStatusShipped},
		{OrderStatusShipped, OrderStatusDelivered},
	}
	for _, tc := range allowed {
		assert.True(t, tc.from.CanTransition(tc.to), "%s -> %s should be allowed", tc.from, tc.to)
	}

	forbidden := []struct {
		from, to OrderStatus
	}{
		{OrderStatusPending, OrderStatusShipped},
		{OrderStatusPending, OrderStatusDelivered},
		{OrderStatusPaid, OrderStatusPending},
		{OrderStatusPaid, OrderStatusCancelled}, // no cancellation after payment
		{OrderStatusShipped, OrderStatusPaid},
		{OrderStatusShipped, OrderStatusCancelled}, // no cancellation after shipping
		{OrderStatusDelivered, OrderStatusShipped},
		{OrderStatusCancelled, OrderStatusPaid},
		{OrderStatusArchived, OrderStatusPending},
	}
	for _, tc := range forbidden {
		assert.False(t, tc.from.CanTransition(tc.to), "%s -> %s should be rejected", tc.from, tc.to)
	}
}

func TestOrderStatusSelfTransition(t *testing.T) {
	for _, s := range []OrderStatus{
		OrderStatusPending, OrderStatusPaid, OrderStatusShipped,
		OrderStatusDelivered, OrderStatusCancelled, OrderStatusArchived,
	} {
		assert.True(t, s.CanTransition(s))
	}
}
