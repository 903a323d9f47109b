// Package http provides the HTTP client used for service-to-service calls.
package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	nethttp "net/http"
	"time"

	"github.com/mealbridge/mealbridge/internal/pkg/apperrors"
	"github.com/mealbridge/mealbridge/internal/pkg/logger"
	"github.com/sirupsen/logrus"
)

const (
	// DefaultTimeout for HTTP requests
	DefaultTimeout = 10 * time.Second
	// APIKeyHeader is the header name for API key
	APIKeyHeader = "X-API-Key"
)

// UpstreamError carries the owning service's status code and message so the
// gateway can propagate a primary-call failure verbatim instead of masking
// it behind a generic 500.
type UpstreamError struct {
	StatusCode int
	Message    string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream returned %d: %s", e.StatusCode, e.Message)
}

// AsUpstreamError extracts an UpstreamError if err carries one
func AsUpstreamError(err error) (*UpstreamError, bool) {
	var ue *UpstreamError
	if errors.As(err, &ue) {
		return ue, true
	}
	return nil, false
}

// envelope mirrors the response shape shared by all services
type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message,omitempty"`
	Data    json.RawMessage `json:"data,omitempty"`
	Error   string          `json:"error,omitempty"`
}

// APIKeyClient is an HTTP client with API key authentication
type APIKeyClient struct {
	client      *nethttp.Client
	apiKey      string
	baseURL     string
	serviceName string
	log         *logger.AppLogger
}

// NewAPIKeyClient creates a new HTTP client with API key authentication
func NewAPIKeyClient(apiKey, baseURL, serviceName string, log *logger.AppLogger) *APIKeyClient {
	return &APIKeyClient{
		client: &nethttp.Client{
			Timeout: DefaultTimeout,
		},
		apiKey:      apiKey,
		baseURL:     baseURL,
		serviceName: serviceName,
		log:         log,
	}
}

// SetTimeout sets the HTTP client timeout
func (c *APIKeyClient) SetTimeout(timeout time.Duration) {
	c.client.Timeout = timeout
}

// GetJSON performs a GET request and decodes the response envelope's data
// field into result.
func (c *APIKeyClient) GetJSON(ctx context.Context, endpoint string, result interface{}) error {
	return c.doJSON(ctx, nethttp.MethodGet, endpoint, nil, result)
}

// PostJSON performs a POST request with a JSON body and decodes the response
// envelope's data field into result.
func (c *APIKeyClient) PostJSON(ctx context.Context, endpoint string, body, result interface{}) error {
	return c.doJSON(ctx, nethttp.MethodPost, endpoint, body, result)
}

// PutJSON performs a PUT request with a JSON body and decodes the response
// envelope's data field into result.
func (c *APIKeyClient) PutJSON(ctx context.Context, endpoint string, body, result interface{}) error {
	return c.doJSON(ctx, nethttp.MethodPut, endpoint, body, result)
}

// DeleteJSON performs a DELETE request
func (c *APIKeyClient) DeleteJSON(ctx context.Context, endpoint string) error {
	return c.doJSON(ctx, nethttp.MethodDelete, endpoint, nil, nil)
}

func (c *APIKeyClient) doJSON(ctx context.Context, method, endpoint string, body, result interface{}) error {
	resp, err := c.doRequest(ctx, method, endpoint, body)
	if err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: reading response: %v", apperrors.ErrUpstreamUnavailable, err)
	}

	var env envelope
	if len(raw) > 0 {
		// A non-envelope body is tolerated; the message falls back below.
		_ = json.Unmarshal(raw, &env)
	}

	if resp.StatusCode >= 400 {
		message := env.Error
		if message == "" {
			message = env.Message
		}
		if message == "" {
			message = resp.Status
		}
		return &UpstreamError{StatusCode: resp.StatusCode, Message: message}
	}

	if result != nil {
		if len(env.Data) > 0 {
			return json.Unmarshal(env.Data, result)
		}
		return json.Unmarshal(raw, result)
	}

	return nil
}

// doRequest performs the actual HTTP request with API key authentication
func (c *APIKeyClient) doRequest(ctx context.Context, method, endpoint string, body interface{}) (*nethttp.Response, error) {
	url := c.baseURL + endpoint

	var reqBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		reqBody = bytes.NewBuffer(jsonBody)
	}

	req, err := nethttp.NewRequestWithContext(ctx, method, url, reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	// Set headers
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	// Add API key header if available
	if c.apiKey != "" {
		req.Header.Set(APIKeyHeader, c.apiKey)
	}

	// Propagate request ID and caller identity if present in context
	if requestID := ctx.Value("request_id"); requestID != nil {
		req.Header.Set("X-Request-ID", fmt.Sprintf("%v", requestID))
	}
	if authToken := ctx.Value("auth_token"); authToken != nil {
		req.Header.Set("Authorization", fmt.Sprintf("Bearer %v", authToken))
	}

	resp, err := c.client.Do(req)
	if err != nil {
		if c.log != nil {
			c.log.WithFields(logrus.Fields{
				"method":  method,
				"url":     url,
				"target":  c.serviceName,
				"failure": err.Error(),
			}).Error("HTTP request failed")
		}
		return nil, fmt.Errorf("request failed: %w", err)
	}

	if c.log != nil {
		c.log.WithFields(logrus.Fields{
			"method":      method,
			"url":         url,
			"target":      c.serviceName,
			"status_code": resp.StatusCode,
		}).Debug("HTTP request completed")
	}

	return resp, nil
}
