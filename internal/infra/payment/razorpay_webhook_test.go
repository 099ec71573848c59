package payment

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"testing"
)

func sign(secret string, body []byte) string {
	h := hmac.New(sha256.New, []byte(secret))
	h.Write(body)
	return hex.EncodeToString(h.Sum(nil))
}

func TestVerifyRazorpayWebhookSignature(t *testing.T) {
	t.Parallel()

	secret := "razorpay_webhook_secret"
	body := []byte(`{"event":"payment.captured","payload":{"payment":{"entity":{"id":"pay_123","amount":259900}}}}`)

	if !VerifyRazorpayWebhookSignature(secret, body, sign(secret, body)) {
		t.Fatal("valid signature rejected")
	}

	// tampered body
	tampered := append([]byte(nil), body...)
	tampered[len(tampered)-2] = '0'
	if VerifyRazorpayWebhookSignature(secret, tampered, sign(secret, body)) {
		t.Fatal("tampered body accepted")
	}

	// wrong secret
	if VerifyRazorpayWebhookSignature("other_secret", body, sign(secret, body)) {
		t.Fatal("wrong secret accepted")
	}

	// empty signature
	if VerifyRazorpayWebhookSignature(secret, body, "") {
		t.Fatal("empty signature accepted")
	}
}
