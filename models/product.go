package models

import (
	"strings"
	"time"

	"gorm.io/datatypes"
)

type ProductStatus string

const (
	ProductStatusDraft    ProductStatus = "draft"    // Not yet visible in the shop
	ProductStatusActive   ProductStatus = "active"   // Purchasable
	ProductStatusArchived ProductStatus = "archived" // Kept for order history, no longer sold
)

type Product struct {
	ID                uint              `gorm:"primaryKey;autoIncrement" json:"id"`
	ReleaseID         uint              `gorm:"index" json:"release_id"`
	Name              string            `gorm:"not null" json:"name"`
	Category          string            `gorm:"not null" json:"category"` // e.g. "recording", "boxset"
	Format            string            `gorm:"not null" json:"format"`   // storage code, e.g. "hybrid_sacd"
	Status            ProductStatus     `gorm:"type:VARCHAR(20);default:'draft'" json:"status"`
	InventoryQuantity int               `json:"inventory_quantity"`
	InventoryTracking bool              `json:"inventory_tracking"`
	Featured          bool              `json:"featured"`
	Metadata          datatypes.JSONMap `json:"metadata"` // ad hoc extension point: tax/shipping overrides
	Prices            []Price           `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"prices"`
	CreatedAt         time.Time         `json:"created_at"`
	UpdatedAt         time.Time         `json:"updated_at"`
}

// formatLabels maps storage codes to shop display labels.
var formatLabels = map[string]string{
	"cd":            "CD",
	"sacd":          "SACD",
	"hybrid_sacd":   "Hybrid SACD",
	"vinyl":         "Vinyl LP",
	"double_vinyl":  "Double Vinyl LP",
	"digital":       "Digital Download",
	"blu_ray_audio": "Blu-ray Audio",
	"dvd":           "DVD",
	"boxset":        "Box Set",
}

// FormatLabel returns the display label for a stored format code.
// Codes without a mapping fall back to the upper-cased raw code.
func FormatLabel(code string) string {
	if label, ok := formatLabels[code]; ok {
		return label
	}
	return strings.ToUpper(code)
}

// Available reports whether the product can be bought right now:
// it must be active, and if inventory tracking is on there must be stock.
func (p *Product) Available() bool {
	return p.Status == ProductStatusActive && (!p.InventoryTracking || p.InventoryQuantity > 0)
}

// ActivePrice returns the product's first active price, if any.
func (p *Product) ActivePrice() (Price, bool) {
	for _, price := range p.Prices {
		if price.Active {
			return price, true
		}
	}
	return Price{}, false
}
