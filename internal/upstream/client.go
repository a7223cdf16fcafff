package upstream

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

	"github.com/rs/zerolog"

	"github.com/kaan/campora/internal/metrics"
	"github.com/kaan/campora/internal/pkg/apperrors"
)

// Client talks to the fixed platform REST API. All entity data is owned by
// the upstream; the gateway only holds read-through copies in workspaces.
type Client struct {
	baseURL *url.URL
	http    *http.Client
	logger  zerolog.Logger
}

// NewClient creates an upstream API client.
func NewClient(baseURL string, timeout time.Duration, logger zerolog.Logger) (*Client, error) {
	parsed, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("invalid upstream base url: %w", err)
	}
	if parsed.Scheme == "" || parsed.Host == "" {
		return nil, fmt.Errorf("upstream base url must be absolute: %q", baseURL)
	}
	return &Client{
		baseURL: parsed,
		http:    &http.Client{Timeout: timeout},
		logger:  logger,
	}, nil
}

// ListParams carries the optional query parameters every upstream list
// endpoint accepts.
type ListParams struct {
	Offset int
	Limit  int
	Filter string
}

// Values renders the params as a query string.
func (p ListParams) Values() url.Values {
	q := url.Values{}
	if p.Offset > 0 {
		q.Set("offset", fmt.Sprintf("%d", p.Offset))
	}
	if p.Limit > 0 {
		q.Set("limit", fmt.Sprintf("%d", p.Limit))
	}
	if p.Filter != "" {
		q.Set("filter", p.Filter)
	}
	return q
}

// errorBody is the shape upstream error responses come in. Either field
// may carry the human-readable message.
type errorBody struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

// do executes one request against the upstream and decodes the JSON
// response into out (when out is non-nil). The bearer token is attached
// when non-empty.
func (c *Client) do(ctx context.Context, token, method, path string, query url.Values, body, out interface{}) error {
	u := *c.baseURL
	u.Path = strings.TrimRight(u.Path, "/") + path
	if query != nil {
		u.RawQuery = query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), reqBody)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	metrics.ObserveUpstream(method, path, time.Since(start))
	if err != nil {
		metrics.UpstreamErrors.Inc()
		c.logger.Error().Err(err).Str("method", method).Str("path", path).Msg("Upstream request failed")
		return fmt.Errorf("%w: %v", apperrors.ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		if out == nil {
			return nil
		}
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode upstream response: %w", err)
		}
		return nil
	}

	return c.statusError(resp, method, path)
}

// statusError maps non-2xx upstream responses onto the sentinel taxonomy,
// carrying along whatever message the body offers.
func (c *Client) statusError(resp *http.Response, method, path string) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	msg := extractMessage(raw)

	c.logger.Warn().
		Int("status", resp.StatusCode).
		Str("method", method).
		Str("path", path).
		Str("upstreamMessage", msg).
		Msg("Upstream returned error status")

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return wrap(apperrors.ErrUpstreamNotFound, msg)
	case resp.StatusCode == http.StatusUnauthorized:
		return wrap(apperrors.ErrInvalidCredentials, msg)
	case resp.StatusCode == http.StatusForbidden:
		return wrap(apperrors.ErrPermissionDenied, msg)
	case resp.StatusCode == http.StatusConflict:
		return wrap(apperrors.ErrResourceAlreadyExists, msg)
	case resp.StatusCode >= 400 && resp.StatusCode < 500:
		return wrap(apperrors.ErrUpstreamRejected, msg)
	default:
		metrics.UpstreamErrors.Inc()
		return wrap(apperrors.ErrUpstreamUnavailable, msg)
	}
}

func wrap(sentinel error, msg string) error {
	if msg == "" {
		return sentinel
	}
	return fmt.Errorf("%w: %s", sentinel, msg)
}

// extractMessage pulls a human-readable message out of an error body,
// falling back to empty when the body is not JSON or carries none.
func extractMessage(raw []byte) string {
	var eb errorBody
	if err := json.Unmarshal(raw, &eb); err != nil {
		return ""
	}
	if eb.Message != "" {
		return eb.Message
	}
	return eb.Error
}
