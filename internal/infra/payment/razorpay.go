package payment

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"

	"boxarena/internal/pkg/errs"

	razorpay "github.com/razorpay/razorpay-go"
)

// RazorpayGateway creates payment orders and verifies capture signatures.
// The signature scheme is the gateway's documented one: HMAC-SHA256 over
// "<order_id>|<payment_id>" with the key secret.
type RazorpayGateway struct {
	client    *razorpay.Client
	keySecret string
	currency  string
}

func NewRazorpayGateway(keyID, keySecret, currency string) *RazorpayGateway {
	return &RazorpayGateway{
		client:    razorpay.NewClient(keyID, keySecret),
		keySecret: keySecret,
		currency:  currency,
	}
}

func (g *RazorpayGateway) Currency() string { return g.currency }

// CreateOrder registers an order for the given amount (smallest currency
// unit) and returns the gateway order id.
func (g *RazorpayGateway) CreateOrder(amountPaise int64, receipt string, notes map[string]any) (string, error) {
	data := map[string]any{
		"amount":   amountPaise,
		"currency": g.currency,
		"receipt":  receipt,
		"notes":    notes,
	}

	order, err := g.client.Order.Create(data, nil)
	if err != nil {
		return "", errs.Wrap(err, "razorpay order creation failed")
	}

	orderID, ok := order["id"].(string)
	if !ok || orderID == "" {
		return "", errs.New("razorpay order response missing id")
	}
	return orderID, nil
}

// VerifySignature checks the proof a client hands back after capture.
func (g *RazorpayGateway) VerifySignature(orderID, paymentID, signature string) bool {
	mac := hmac.New(sha256.New, []byte(g.keySecret))
	mac.Write([]byte(orderID + "|" + paymentID))
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}

// Refund refunds a captured payment in full.
func (g *RazorpayGateway) Refund(paymentID string, amountPaise int64) error {
	_, err := g.client.Payment.Refund(paymentID, int(amountPaise), nil, nil)
	if err != nil {
		return errs.Wrap(err, "razorpay refund failed")
	}
	return nil
}
