package crypto

import (
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
)

// SignWebhook computes the HMAC-SHA512 hex digest of a raw webhook body.
func SignWebhook(body []byte, secret string) string {
	mac := hmac.New(sha512.New, []byte(secret))
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}

// VerifyWebhook reports whether the inbound signature header matches the
// digest of the raw body. The comparison is exact: there is no tolerance
// window and no timestamp replay protection.
func VerifyWebhook(body []byte, signature, secret string) bool {
	expected := SignWebhook(body, secret)
	return hmac.Equal([]byte(expected), []byte(signature))
}
