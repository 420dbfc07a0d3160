// Package gateway is the single point of contact with the alumni-tracking
// backend. One method per backend operation; every failure is logged and
// returned, never swallowed. The gateway performs no retries, no caching and
// no request deduplication — callers own all user-facing decisions.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/sreeram/alumnet/pkg/apperrors"
)

// Client wraps a configured HTTP client pointed at a fixed backend origin.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     zerolog.Logger
}

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithLogger sets the logger the gateway reports failures through.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithTimeout bounds every request. The default is no timeout, deferring to
// the transport, which is how the original client behaved.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// New creates a Client for the given backend origin.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
		logger:     zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// do performs one HTTP exchange and returns the response body. Any transport
// failure or non-2xx status is logged and returned as an error.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body io.Reader, contentType string) ([]byte, int, error) {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + encodeQuery(query)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return nil, 0, fmt.Errorf("build request %s %s: %w", method, path, err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("X-Request-ID", uuid.New().String())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error().Err(err).Str("method", method).Str("path", path).Msg("API call failed")
		return nil, 0, fmt.Errorf("%w: %s %s: %v", apperrors.ErrRequestFailed, method, path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		c.logger.Error().Err(err).Str("method", method).Str("path", path).Msg("API call failed")
		return nil, resp.StatusCode, fmt.Errorf("read response %s %s: %w", method, path, err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		statusErr := apperrors.NewStatusError(resp.StatusCode, strings.TrimSpace(string(data)))
		c.logger.Error().
			Err(statusErr).
			Str("method", method).
			Str("path", path).
			Int("status", resp.StatusCode).
			Msg("API call failed")
		return nil, resp.StatusCode, statusErr
	}

	return data, resp.StatusCode, nil
}

// getJSON issues a GET and decodes the JSON response into out.
func (c *Client) getJSON(ctx context.Context, path string, query url.Values, out any) error {
	data, _, err := c.do(ctx, http.MethodGet, path, query, nil, "")
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, out); err != nil {
		c.logger.Error().Err(err).Str("path", path).Msg("failed to decode response")
		return fmt.Errorf("decode response from %s: %w", path, err)
	}
	return nil
}

// postJSON issues a POST with a JSON body and returns the raw response.
func (c *Client) postJSON(ctx context.Context, path string, payload any) ([]byte, int, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, 0, fmt.Errorf("encode request for %s: %w", path, err)
	}
	return c.do(ctx, http.MethodPost, path, nil, bytes.NewReader(body), "application/json")
}

// encodeQuery encodes query parameters with %20 for spaces, matching the
// encoding the backend was built against. url.Values.Encode uses "+", which
// decodes the same but differs on the wire; literal plus signs are already
// percent-escaped before the replacement.
func encodeQuery(query url.Values) string {
	return strings.ReplaceAll(query.Encode(), "+", "%20")
}

// text issues a bodyless request and returns the response body as a string.
// Used for approve/deny, delete and other message-only endpoints.
func (c *Client) text(ctx context.Context, method, path string, query url.Values) (string, error) {
	data, _, err := c.do(ctx, method, path, query, nil, "")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}
