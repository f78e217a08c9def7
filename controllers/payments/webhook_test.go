package paymentControllers

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func signPayload(t *testing.T, payload []byte, timestamp, secret string) string {
	t.Helper()
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(timestamp))
	mac.Write([]byte("."))
	mac.Write(payload)
	return "t=" + timestamp + ",v1=" + hex.EncodeToString(mac.Sum(nil))
}

func TestVerifySignature(t *testing.T) {
	payload := []byte(`{"type":"payment_intent.succeeded"}`)
	secret := "whsec_test"
	now := time.Unix(1756400000, 0)
	ts := strconv.FormatInt(now.Unix(), 10)

	t.Run("valid signature", func(t *testing.T) {
		header := signPayload(t, payload, ts, secret)
		assert.NoError(t, verifySignature(payload, header, secret, now))
	})

	t.Run("wrong secret", func(t *testing.T) {
		header := signPayload(t, payload, ts, "whsec_other")
		assert.Error(t, verifySignature(payload, header, secret, now))
	})

	t.Run("tampered payload", func(t *testing.T) {
		header := signPayload(t, payload, ts, secret)
		assert.Error(t, verifySignature([]byte(`{"type":"payment_intent.payment_failed"}`), header, secret, now))
	})

	t.Run("malformed header", func(t *testing.T) {
		assert.Error(t, verifySignature(payload, "", secret, now))
		assert.Error(t, verifySignature(payload, "v1=deadbeef", secret, now))
		assert.Error(t, verifySignature(payload, "t="+ts, secret, now))
	})

	t.Run("non-numeric timestamp", func(t *testing.T) {
		header := signPayload(t, payload, "yesterday", secret)
		assert.Error(t, verifySignature(payload, header, secret, now))
	})

	// A correctly signed but stale event is a replay and must be refused.
	t.Run("replayed event outside tolerance", func(t *testing.T) {
		old := now.Add(-webhookTolerance - time.Second)
		header := signPayload(t, payload, strconv.FormatInt(old.Unix(), 10), secret)
		assert.Error(t, verifySignature(payload, header, secret, now))
	})

	t.Run("future timestamp outside tolerance", func(t *testing.T) {
		future := now.Add(webhookTolerance + time.Second)
		header := signPayload(t, payload, strconv.FormatInt(future.Unix(), 10), secret)
		assert.Error(t, verifySignature(payload, header, secret, now))
	})

	t.Run("timestamp just inside tolerance", func(t *testing.T) {
		recent := now.Add(-webhookTolerance + time.Second)
		header := signPayload(t, payload, strconv.FormatInt(recent.Unix(), 10), secret)
		assert.NoError(t, verifySignature(payload, header, secret, now))
	})
}
