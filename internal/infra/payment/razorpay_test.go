//go:build unit

package payment_test

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"boxarena/internal/infra/payment"

	"github.com/stretchr/testify/assert"
)

func sign(secret, orderID, paymentID string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

func TestVerifySignature(t *testing.T) {
	const secret = "test_secret"
	gateway := payment.NewRazorpayGateway("rzp_test_key", secret, "INR")

	orderID := "order_N8VZ2qkD1abc"
	paymentID := "pay_N8Vb3LmE2def"

	t.Run("accepts a correctly signed pair", func(t *testing.T) {
		assert.True(t, gateway.VerifySignature(orderID, paymentID, sign(secret, orderID, paymentID)))
	})

	t.Run("rejects a signature over different IDs", func(t *testing.T) {
		assert.False(t, gateway.VerifySignature(orderID, paymentID, sign(secret, orderID, "pay_other")))
	})

	t.Run("rejects a signature made with the wrong secret", func(t *testing.T) {
		assert.False(t, gateway.VerifySignature(orderID, paymentID, sign("wrong_secret", orderID, paymentID)))
	})

	t.Run("rejects garbage", func(t *testing.T) {
		assert.False(t, gateway.VerifySignature(orderID, paymentID, "not-a-signature"))
		assert.False(t, gateway.VerifySignature(orderID, paymentID, ""))
	})
}
