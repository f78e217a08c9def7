package models

import "time"

type PriceType string

const (
	PriceTypeOneTime PriceType = "one_time"
)

// Price is a currency/amount pair attached to a product. Amounts are in
// minor units (cents), the payment provider's native representation.
type Price struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	ProductID uint      `gorm:"index" json:"product_id"`
	Currency  string    `gorm:"type:VARCHAR(3);not null" json:"currency"`
	Amount    int64     `gorm:"not null" json:"amount"`
	Type      PriceType `gorm:"type:VARCHAR(20);default:'one_time'" json:"type"`
	Active    bool      `gorm:"default:true" json:"active"`
	CreatedAt time.Time `json:"created_at"`
}
