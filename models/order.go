package models

import "time"

type OrderStatus string
type PaymentStatus string
type FulfillmentStatus string

const (
	// Order statuses (forward-only)
	OrderStatusPending   OrderStatus = "pending"   // Created at checkout, awaiting payment
	OrderStatusPaid      OrderStatus = "paid"      // Payment confirmed by provider webhook
	OrderStatusShipped   OrderStatus = "shipped"   // Out for delivery
	OrderStatusDelivered OrderStatus = "delivered" // Customer received the parcel
	OrderStatusCancelled OrderStatus = "cancelled" // Abandoned before payment
	OrderStatusArchived  OrderStatus = "archived"  // Closed without payment, kept for records

	// Payment statuses
	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusPaid    PaymentStatus = "paid"
	PaymentStatusFailed  PaymentStatus = "failed"

	// Fulfillment statuses
	FulfillmentUnfulfilled FulfillmentStatus = "unfulfilled"
	FulfillmentFulfilled   FulfillmentStatus = "fulfilled"
)

// orderTransitions enumerates the allowed forward moves. cancelled and
// archived are terminal and only reachable from pending; there is no
// backward path and no cancellation after shipping.
var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusPending: {OrderStatusPaid, OrderStatusCancelled, OrderStatusArchived},
	OrderStatusPaid:    {OrderStatusShipped},
	OrderStatusShipped: {OrderStatusDelivered},
}

// CanTransition reports whether an order may move from s to next.
// Repeating the current status is allowed and is a no-op for callers.
func (s OrderStatus) CanTransition(next OrderStatus) bool {
	if s == next {
		return true
	}
	for _, allowed := range orderTransitions[s] {
		if next == allowed {
			return true
		}
	}
	return false
}

// Order snapshots the cart at checkout time. Financial fields are immutable
// after creation; only status-transition fields are mutated afterwards.
type Order struct {
	ID                uint              `gorm:"primaryKey" json:"id"`
	OrderRef          string            `gorm:"uniqueIndex;not null" json:"order_ref"`
	UserID            string            `gorm:"index" json:"user_id"` // empty for guest checkouts
	CustomerEmail     string            `gorm:"not null" json:"customer_email"`
	CustomerName      string            `json:"customer_name"`
	Shipping          Address           `gorm:"embedded;embeddedPrefix:shipping_" json:"shipping"`
	Items             []OrderItem       `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	Currency          string            `gorm:"type:VARCHAR(3);not null" json:"currency"`
	Subtotal          int64             `json:"subtotal"`
	TaxAmount         int64             `json:"tax_amount"`
	ShippingAmount    int64             `json:"shipping_amount"`
	TotalAmount       int64             `json:"total_amount"`
	Status            OrderStatus       `gorm:"type:VARCHAR(20);default:'pending'" json:"status"`
	PaymentStatus     PaymentStatus     `gorm:"type:VARCHAR(20);default:'pending'" json:"payment_status"`
	FulfillmentStatus FulfillmentStatus `gorm:"type:VARCHAR(20);default:'unfulfilled'" json:"fulfillment_status"`
	PaymentIntentID   string            `gorm:"index" json:"payment_intent_id"`
	TrackingNumber    string            `json:"tracking_number"`
	TrackingURL       string            `json:"tracking_url"`
	Notes             string            `json:"notes"`
	ShippedAt         *time.Time        `json:"shipped_at"`
	DeliveredAt       *time.Time        `json:"delivered_at"`
	CreatedAt         time.Time         `json:"created_at"`
	UpdatedAt         time.Time         `json:"updated_at"`
}

// OrderItem records the product at the price it had when the order was
// placed, decoupled from the live Price row.
type OrderItem struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	OrderID     uint   `gorm:"index" json:"order_id"`
	ProductID   uint   `gorm:"index" json:"product_id"`
	ProductName string `json:"product_name"`
	Format      string `json:"format"`
	UnitAmount  int64  `json:"unit_amount"`
	Currency    string `gorm:"type:VARCHAR(3)" json:"currency"`
	Quantity    int    `json:"quantity"`
}

// Address is embedded in orders as the shipping destination.
type Address struct {
	Line1      string `json:"line1"`
	Line2      string `json:"line2"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postal_code"`
	Country    string `json:"country"`
}
