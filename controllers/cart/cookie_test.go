package cartControllers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCartCookieRoundTrip(t *testing.T) {
	now := time.Now().Truncate(time.Second)
	items := []CookieCartItem{
		{ProductID: 7, Quantity: 2, AddedAt: now},
		{ProductID: 12, Quantity: 1, AddedAt: now},
	}

	value, err := EncodeCartCookie(items)
	require.NoError(t, err)
	assert.NotContains(t, value, "{", "cookie value must not carry raw JSON")

	decoded := DecodeCartCookie(value)
	require.Len(t, decoded, 2)
	assert.Equal(t, uint(7), decoded[0].ProductID)
	assert.Equal(t, 2, decoded[0].Quantity)
}

func TestDecodeCartCookieUntrustedInput(t *testing.T) {
	// Malformed cookies yield an empty cart, never an error.
	assert.Nil(t, DecodeCartCookie(""))
	assert.Nil(t, DecodeCartCookie("not-base64!!!"))
	assert.Nil(t, DecodeCartCookie("bm90LWpzb24")) // base64("not-json")
}

func TestMergeCookieItem(t *testing.T) {
	now := time.Now()

	t.Run("append new line", func(t *testing.T) {
		items := MergeCookieItem(nil, 5, 1, now)
		require.Len(t, items, 1)
		assert.Equal(t, uint(5), items[0].ProductID)
	})

	t.Run("bump existing line", func(t *testing.T) {
		items := []CookieCartItem{{ProductID: 5, Quantity: 1, AddedAt: now}}
		items = MergeCookieItem(items, 5, 2, now)
		require.Len(t, items, 1)
		assert.Equal(t, 3, items[0].Quantity)
	})

	t.Run("negative delta drops line at zero", func(t *testing.T) {
		items := []CookieCartItem{{ProductID: 5, Quantity: 2, AddedAt: now}}
		items = MergeCookieItem(items, 5, -2, now)
		assert.Empty(t, items)
	})

	t.Run("non-positive quantity never appends", func(t *testing.T) {
		assert.Empty(t, MergeCookieItem(nil, 5, 0, now))
		assert.Empty(t, MergeCookieItem(nil, 5, -1, now))
	})
}
