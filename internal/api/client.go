// Package api is the HTTP client for the dummyjson storefront gateway.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/alexisbeaulieu97/storefront/internal/logger"
	apperrors "github.com/alexisbeaulieu97/storefront/pkg/errors"
)

const (
	// DefaultBaseURL is the public gateway.
	DefaultBaseURL = "https://dummyjson.com"
	// DefaultTimeout bounds every request.
	DefaultTimeout = 10 * time.Second
	// RequestIDHeader carries a per-request correlation id.
	RequestIDHeader = "X-Request-ID"
)

// Client talks to the gateway. It is safe for concurrent use.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	log        *logger.Logger
	newID      func() string
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the gateway address.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		if baseURL != "" {
			c.baseURL = strings.TrimSuffix(baseURL, "/")
		}
	}
}

// WithTimeout overrides the request timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.httpClient.Timeout = timeout
		}
	}
}

// WithHTTPClient swaps the underlying transport client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithLogger logs each request at debug level.
func WithLogger(log *logger.Logger) Option {
	return func(c *Client) {
		c.log = log
	}
}

// NewClient builds a client with the default base URL and timeout.
func NewClient(opts ...Option) *Client {
	c := &Client{
		baseURL:    DefaultBaseURL,
		httpClient: &http.Client{Timeout: DefaultTimeout},
		newID:      uuid.NewString,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the gateway address in use.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// WithToken returns a copy of the client that sends token as a bearer
// credential.
func (c *Client) WithToken(token string) *Client {
	clone := *c
	clone.token = token
	return &clone
}

func (c *Client) do(ctx context.Context, method, path string, body any, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	requestID := c.newID()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(RequestIDHeader, requestID)
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	log := c.log.WithFields(map[string]any{
		"method":     method,
		"path":       path,
		"request_id": requestID,
	})

	started := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Error(err, "request failed")
		return apperrors.NewNetworkError(method+" "+path, err)
	}
	defer resp.Body.Close()

	log.WithFields(map[string]any{
		"status":      resp.StatusCode,
		"duration_ms": time.Since(started).Milliseconds(),
	}).Debug("request completed")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var payload errorBody
		raw, _ := io.ReadAll(resp.Body)
		_ = json.Unmarshal(raw, &payload)
		return apperrors.NewAPIError(resp.StatusCode, payload.Message)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
