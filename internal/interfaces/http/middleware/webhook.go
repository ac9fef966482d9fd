package middleware

import (
	"bytes"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"petty-shelter.backend/pkg/crypto"
	"petty-shelter.backend/pkg/logger"
)

const (
	// WebhookSignatureHeader carries the gateway's HMAC of the raw body.
	WebhookSignatureHeader = "x-paystack-signature"
	// WebhookBodyKey is the context key the raw verified body is stored under.
	WebhookBodyKey = "webhookBody"
)

// VerifyWebhookSignature checks the gateway signature over the raw request
// body before any parsing happens. The verified body is stashed on the
// context so the handler reads the exact signed bytes.
func VerifyWebhookSignature(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		signature := c.GetHeader(WebhookSignatureHeader)
		if signature == "" {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
				"message": "missing signature",
			})
			return
		}

		body, err := io.ReadAll(io.LimitReader(c.Request.Body, 1<<20))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
				"message": "unreadable body",
			})
			return
		}
		c.Request.Body = io.NopCloser(bytes.NewReader(body))

		if !crypto.VerifyWebhook(body, signature, secret) {
			logger.Warn(c.Request.Context(), "webhook signature mismatch",
				zap.String("client_ip", c.ClientIP()))
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
				"message": "invalid signature",
			})
			return
		}

		c.Set(WebhookBodyKey, body)
		c.Next()
	}
}

// GetWebhookBody returns the signature-verified raw body.
func GetWebhookBody(c *gin.Context) ([]byte, bool) {
	v, exists := c.Get(WebhookBodyKey)
	if !exists {
		return nil, false
	}
	body, ok := v.([]byte)
	return body, ok
}
