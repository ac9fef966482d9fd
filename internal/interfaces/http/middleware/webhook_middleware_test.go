package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"petty-shelter.backend/pkg/crypto"
)

func newWebhookTestRouter(t *testing.T, secret string) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/webhook", VerifyWebhookSignature(secret), func(c *gin.Context) {
		body, ok := GetWebhookBody(c)
		require.True(t, ok)
		c.Data(http.StatusOK, "application/json", body)
	})
	return r
}

func TestVerifyWebhookSignature_MissingSignature(t *testing.T) {
	r := newWebhookTestRouter(t, "sk_test")

	req := httptest.NewRequest(http.MethodPost, "/webhook", bytes.NewBufferString(`{}`))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "missing signature")
}

func TestVerifyWebhookSignature_BadSignature(t *testing.T) {
	r := newWebhookTestRouter(t, "sk_test")

	body := []byte(`{"event":"charge.success"}`)
	req := httptest.NewRequest(http.MethodPost, "/webhook", bytes.NewReader(body))
	req.Header.Set(WebhookSignatureHeader, crypto.SignWebhook(body, "sk_wrong"))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid signature")
}

func TestVerifyWebhookSignature_ValidSignature(t *testing.T) {
	r := newWebhookTestRouter(t, "sk_test")

	body := []byte(`{"event":"charge.success","data":{"reference":"don_1"}}`)
	req := httptest.NewRequest(http.MethodPost, "/webhook", bytes.NewReader(body))
	req.Header.Set(WebhookSignatureHeader, crypto.SignWebhook(body, "sk_test"))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	// The handler sees the exact signed bytes.
	assert.Equal(t, body, w.Body.Bytes())
}
