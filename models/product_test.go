package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAvailable(t *testing.T) {
	cases := []struct {
		name     string
		status   ProductStatus
		tracking bool
		quantity int
		want     bool
	}{
		{"active untracked zero stock", ProductStatusActive, false, 0, true},
		{"active untracked negative stock", ProductStatusActive, false, -5, true},
		{"active tracked in stock", ProductStatusActive, true, 3, true},
		{"active tracked zero stock", ProductStatusActive, true, 0, false},
		{"active tracked negative stock", ProductStatusActive, true, -1, false},
		{"draft untracked", ProductStatusDraft, false, 10, false},
		{"draft tracked in stock", ProductStatusDraft, true, 10, false},
		{"archived tracked in stock", ProductStatusArchived, true, 10, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := Product{
				Status:            tc.status,
				InventoryTracking: tc.tracking,
				InventoryQuantity: tc.quantity,
			}
			assert.Equal(t, tc.want, p.Available())
		})
	}
}

func TestFormatLabel(t *testing.T) {
	assert.Equal(t, "Hybrid SACD", FormatLabel("hybrid_sacd"))
	assert.Equal(t, "CD", FormatLabel("cd"))
	assert.Equal(t, "Vinyl LP", FormatLabel("vinyl"))

	// Unmapped codes fall back to the upper-cased raw value.
	assert.Equal(t, "MINIDISC", FormatLabel("minidisc"))
	assert.Equal(t, "8-TRACK", FormatLabel("8-track"))
}

func TestActivePrice(t *testing.T) {
	p := Product{Prices: []Price{
		{ID: 1, Currency: "EUR", Amount: 1990, Active: false},
		{ID: 2, Currency: "EUR", Amount: 2490, Active: true},
	}}

	price, ok := p.ActivePrice()
	assert.True(t, ok)
	assert.Equal(t, uint(2), price.ID)
	assert.Equal(t, int64(2490), price.Amount)

	none := Product{Prices: []Price{{Active: false}}}
	_, ok = none.ActivePrice()
	assert.False(t, ok)
}
