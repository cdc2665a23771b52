package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"
)

const (
	defaultBaseURL = "https://api.chapa.co/v1"
	defaultTimeout = 10 * time.Second

	// maxResponseBytes bounds how much of a gateway response is read.
	maxResponseBytes = 1 << 20
)

// ChapaClient calls the Chapa REST API. Configuration is fixed at
// construction; the client keeps no per-transaction state.
type ChapaClient struct {
	baseURL    string
	secretKey  string
	httpClient *http.Client
}

// NewChapaClient creates a Chapa client. An empty baseURL selects the
// production API; a non-positive timeout selects the default. The timeout
// bounds every call so verification can never hang on the gateway.
func NewChapaClient(baseURL, secretKey string, timeout time.Duration) *ChapaClient {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &ChapaClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		secretKey:  secretKey,
		httpClient: &http.Client{Timeout: timeout},
	}
}

var _ Client = (*ChapaClient)(nil)

// chapaEnvelope is the outer response shape shared by all Chapa endpoints.
type chapaEnvelope struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// initializePayload mirrors Chapa's transaction initialize request.
type initializePayload struct {
	Amount      string `json:"amount"`
	Currency    string `json:"currency"`
	Email       string `json:"email"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	TxRef       string `json:"tx_ref"`
	CallbackURL string `json:"callback_url"`
	ReturnURL   string `json:"return_url"`
	Title       string `json:"customization[title],omitempty"`
	Description string `json:"customization[description],omitempty"`
}

// InitializeTransaction registers a transaction with Chapa and returns the
// checkout URL.
func (c *ChapaClient) InitializeTransaction(ctx context.Context, req InitializeRequest) (*InitializeResponse, error) {
	payload := initializePayload{
		Amount:      req.Amount.String(),
		Currency:    req.Currency,
		Email:       req.Email,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		TxRef:       req.TransactionRef,
		CallbackURL: req.CallbackURL,
		ReturnURL:   req.ReturnURL,
		Title:       req.Title,
		Description: req.Description,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, &Error{Operation: "initialize", Err: err}
	}

	envelope, respBody, statusCode, err := c.do(ctx, http.MethodPost, "/transaction/initialize", bytes.NewReader(body))
	if err != nil {
		return nil, &Error{Operation: "initialize", Err: err}
	}

	if statusCode != http.StatusOK || envelope.Status != "success" {
		return nil, &Error{Operation: "initialize", StatusCode: statusCode, Detail: respBody}
	}

	var data struct {
		CheckoutURL string `json:"checkout_url"`
	}
	if err := json.Unmarshal(envelope.Data, &data); err != nil || data.CheckoutURL == "" {
		return nil, &Error{Operation: "initialize", StatusCode: statusCode, Detail: respBody, Err: err}
	}

	return &InitializeResponse{CheckoutURL: data.CheckoutURL}, nil
}

// QueryStatus asks Chapa for the current status of a transaction.
func (c *ChapaClient) QueryStatus(ctx context.Context, txRef string) (Status, error) {
	envelope, respBody, statusCode, err := c.do(ctx, http.MethodGet, "/transaction/verify/"+txRef, nil)
	if err != nil {
		return StatusUnknown, &Error{Operation: "verify", Err: err}
	}

	if statusCode != http.StatusOK || envelope.Status != "success" {
		return StatusUnknown, &Error{Operation: "verify", StatusCode: statusCode, Detail: respBody}
	}

	var data struct {
		Status string `json:"status"`
	}
	if err := json.Unmarshal(envelope.Data, &data); err != nil {
		return StatusUnknown, &Error{Operation: "verify", StatusCode: statusCode, Detail: respBody, Err: err}
	}

	switch data.Status {
	case "success":
		return StatusSuccess, nil
	case "failed", "cancelled":
		return StatusFailed, nil
	default:
		// Pending or anything Chapa adds later: not terminal yet.
		return StatusUnknown, nil
	}
}

// do performs one authenticated round trip and decodes the envelope.
func (c *ChapaClient) do(ctx context.Context, method, path string, body io.Reader) (*chapaEnvelope, []byte, int, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, nil, 0, err
	}

	req.Header.Set("Authorization", "Bearer "+c.secretKey)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, nil, 0, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, nil, resp.StatusCode, err
	}

	var envelope chapaEnvelope
	if err := json.Unmarshal(respBody, &envelope); err != nil {
		// A body we cannot parse is never treated as success.
		envelope = chapaEnvelope{}
	}

	return &envelope, respBody, resp.StatusCode, nil
}
