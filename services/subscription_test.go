package services

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/linguify/linguify_api/shared"
)

func signStripePayload(secret string, ts time.Time, payload []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	fmt.Fprintf(mac, "%d.", ts.Unix())
	mac.Write(payload)
	return fmt.Sprintf("t=%d,v1=%s", ts.Unix(), hex.EncodeToString(mac.Sum(nil)))
}

func TestVerifyStripeWebhookSignature(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	svc := &SubscriptionService{
		webhookSecret: "whsec_test",
		clock:         fixedClock{now: now},
	}
	payload := []byte(`{"id":"evt_1","type":"checkout.session.completed"}`)

	t.Run("accepts a valid signature", func(t *testing.T) {
		header := signStripePayload("whsec_test", now, payload)
		assert.NoError(t, svc.VerifyWebhookSignature(payload, header))
	})

	t.Run("accepts extra v1 candidates when one matches", func(t *testing.T) {
		header := signStripePayload("whsec_test", now, payload) + ",v1=deadbeef"
		assert.NoError(t, svc.VerifyWebhookSignature(payload, header))
	})

	t.Run("rejects a tampered payload", func(t *testing.T) {
		header := signStripePayload("whsec_test", now, payload)
		err := svc.VerifyWebhookSignature([]byte(`{"id":"evt_2"}`), header)
		appErr, ok := shared.GetAppError(err)
		require.True(t, ok)
		assert.Equal(t, 401, appErr.StatusCode)
	})

	t.Run("rejects the wrong secret", func(t *testing.T) {
		header := signStripePayload("whsec_other", now, payload)
		assert.Error(t, svc.VerifyWebhookSignature(payload, header))
	})

	t.Run("rejects a stale timestamp", func(t *testing.T) {
		header := signStripePayload("whsec_test", now.Add(-10*time.Minute), payload)
		err := svc.VerifyWebhookSignature(payload, header)
		appErr, ok := shared.GetAppError(err)
		require.True(t, ok)
		assert.Equal(t, 401, appErr.StatusCode)
	})

	t.Run("rejects a missing header", func(t *testing.T) {
		assert.Error(t, svc.VerifyWebhookSignature(payload, ""))
	})

	t.Run("rejects a malformed header", func(t *testing.T) {
		assert.Error(t, svc.VerifyWebhookSignature(payload, "not-a-signature"))
	})
}
