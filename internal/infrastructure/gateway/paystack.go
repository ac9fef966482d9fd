package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	domainerrors "petty-shelter.backend/internal/domain/errors"
)

// PaystackClient talks to the Paystack transaction API. Amounts are
// converted to the subunit (kobo) representation the API expects.
type PaystackClient struct {
	baseURL     string
	secretKey   string
	callbackURL string
	httpClient  *http.Client
}

// InitializeResult is the subset of the initialize response the API returns
// to callers.
type InitializeResult struct {
	AuthorizationURL string `json:"authorization_url"`
	AccessCode       string `json:"access_code"`
	Reference        string `json:"reference"`
}

// VerifyResult is the transaction state reported by the gateway.
type VerifyResult struct {
	Status    string          `json:"status"`
	Reference string          `json:"reference"`
	Amount    float64         `json:"amount"`
	Channel   string          `json:"channel"`
	PaidAt    string          `json:"paid_at"`
	Raw       json.RawMessage `json:"-"`
}

func NewPaystackClient(baseURL, secretKey, callbackURL string) *PaystackClient {
	return &PaystackClient{
		baseURL:     baseURL,
		secretKey:   secretKey,
		callbackURL: callbackURL,
		httpClient:  &http.Client{Timeout: 10 * time.Second},
	}
}

type initializeRequest struct {
	Amount      int64          `json:"amount"`
	Email       string         `json:"email"`
	CallbackURL string         `json:"callback_url,omitempty"`
	Metadata    map[string]any `json:"metadata,omitempty"`
}

type apiEnvelope struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// Initialize starts a transaction and returns the checkout handle.
func (c *PaystackClient) Initialize(ctx context.Context, amount float64, email string, metadata map[string]any) (*InitializeResult, error) {
	payload := initializeRequest{
		Amount:      int64(amount * 100),
		Email:       email,
		CallbackURL: c.callbackURL,
		Metadata:    metadata,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	data, err := c.do(ctx, http.MethodPost, "/transaction/initialize", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}

	var result InitializeResult
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("decode initialize response: %w", err)
	}
	return &result, nil
}

// Verify fetches the state of a transaction by reference.
func (c *PaystackClient) Verify(ctx context.Context, reference string) (*VerifyResult, error) {
	data, err := c.do(ctx, http.MethodGet, "/transaction/verify/"+reference, nil)
	if err != nil {
		return nil, err
	}

	var result VerifyResult
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("decode verify response: %w", err)
	}
	// Amounts come back in the subunit.
	result.Amount /= 100
	result.Raw = data
	return &result, nil
}

func (c *PaystackClient) do(ctx context.Context, method, path string, body io.Reader) (json.RawMessage, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.secretKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domainerrors.ErrUpstreamFailure, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("%w: read response: %v", domainerrors.ErrUpstreamFailure, err)
	}

	var envelope apiEnvelope
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil, fmt.Errorf("%w: decode response: %v", domainerrors.ErrUpstreamFailure, err)
	}
	if resp.StatusCode >= 400 || !envelope.Status {
		return nil, fmt.Errorf("%w: gateway said %q (http %d)", domainerrors.ErrUpstreamFailure, envelope.Message, resp.StatusCode)
	}
	return envelope.Data, nil
}
