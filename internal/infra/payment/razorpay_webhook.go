package payment

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// VerifyRazorpayWebhookSignature reports whether signature matches the
// HMAC-SHA256 hex digest of the raw request body under the shared secret.
// Razorpay sends the digest in the X-Razorpay-Signature header.
func VerifyRazorpayWebhookSignature(secret string, body []byte, signature string) bool {
	h := hmac.New(sha256.New, []byte(secret))
	h.Write(body)
	expected := hex.EncodeToString(h.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}
