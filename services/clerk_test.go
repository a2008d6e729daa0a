package services

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/linguify/linguify_api/shared"
)

func signSvixPayload(secret []byte, id string, ts time.Time, payload []byte) (string, string) {
	timestamp := fmt.Sprintf("%d", ts.Unix())
	mac := hmac.New(sha256.New, secret)
	fmt.Fprintf(mac, "%s.%s.", id, timestamp)
	mac.Write(payload)
	return timestamp, "v1," + base64.StdEncoding.EncodeToString(mac.Sum(nil))
}

func TestVerifyClerkWebhookSignature(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	secret := []byte("0123456789abcdef0123456789abcdef")
	svc := &ClerkService{
		webhookSecret: secret,
		clock:         fixedClock{now: now},
	}
	payload := []byte(`{"type":"user.created","data":{"id":"user_1"}}`)

	t.Run("accepts a valid signature", func(t *testing.T) {
		ts, sig := signSvixPayload(secret, "msg_1", now, payload)
		assert.NoError(t, svc.VerifyWebhookSignature(payload, "msg_1", ts, sig))
	})

	t.Run("accepts multiple candidates when one matches", func(t *testing.T) {
		ts, sig := signSvixPayload(secret, "msg_1", now, payload)
		combined := "v1,bm90LXRoZS1zaWc= " + sig
		assert.NoError(t, svc.VerifyWebhookSignature(payload, "msg_1", ts, combined))
	})

	t.Run("rejects a signature bound to another delivery id", func(t *testing.T) {
		ts, sig := signSvixPayload(secret, "msg_1", now, payload)
		err := svc.VerifyWebhookSignature(payload, "msg_2", ts, sig)
		appErr, ok := shared.GetAppError(err)
		require.True(t, ok)
		assert.Equal(t, 401, appErr.StatusCode)
	})

	t.Run("rejects a tampered payload", func(t *testing.T) {
		ts, sig := signSvixPayload(secret, "msg_1", now, payload)
		assert.Error(t, svc.VerifyWebhookSignature([]byte(`{}`), "msg_1", ts, sig))
	})

	t.Run("rejects a stale timestamp", func(t *testing.T) {
		ts, sig := signSvixPayload(secret, "msg_1", now.Add(-time.Hour), payload)
		assert.Error(t, svc.VerifyWebhookSignature(payload, "msg_1", ts, sig))
	})

	t.Run("rejects missing headers", func(t *testing.T) {
		assert.Error(t, svc.VerifyWebhookSignature(payload, "", "", ""))
	})
}
