// Package api is the HTTP gateway to the six-cities server.
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
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const (
	DefaultTimeout = 5 * time.Second

	maxBodySize = 4 * 1024 * 1024

	headerToken     = "X-Token"
	headerRequestID = "X-Request-Id"
)

// Gateway performs JSON requests against the server.
// out may be nil when the response body is not needed.
type Gateway interface {
	Get(ctx context.Context, path string, out any) error
	Post(ctx context.Context, path string, body, out any) error
}

// Doer sends an HTTP request
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// TokenSource returns the current auth token, or "" when anonymous
type TokenSource func() string

// Options configures a Client
type Options struct {
	BaseURL        string
	Timeout        time.Duration
	Doer           Doer
	Token          TokenSource
	OnUnauthorized func(*APIError)

	// RateLimit is requests per second; zero disables limiting
	RateLimit float64
	RateBurst int

	Logger *zap.Logger
}

// Client implements Gateway
type Client struct {
	baseURL        string
	doer           Doer
	token          TokenSource
	onUnauthorized func(*APIError)
	limiter        *rate.Limiter
	logger         *zap.Logger
}

var _ Gateway = (*Client)(nil)

// NewClient creates a new gateway client
func NewClient(opts Options) (*Client, error) {
	baseURL := strings.TrimRight(strings.TrimSpace(opts.BaseURL), "/")
	if baseURL == "" {
		return nil, fmt.Errorf("base url is empty")
	}

	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	if opts.Doer == nil {
		opts.Doer = &http.Client{Timeout: opts.Timeout}
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}

	c := &Client{
		baseURL:        baseURL,
		doer:           opts.Doer,
		token:          opts.Token,
		onUnauthorized: opts.OnUnauthorized,
		logger:         opts.Logger,
	}

	if opts.RateLimit > 0 {
		burst := opts.RateBurst
		if burst <= 0 {
			burst = 1
		}
		c.limiter = rate.NewLimiter(rate.Limit(opts.RateLimit), burst)
	}

	return c, nil
}

// Get performs GET path and decodes the JSON response into out
func (c *Client) Get(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

// Post performs POST path with a JSON body and decodes the response into out
func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, body, out)
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return transportError(err)
		}
	}

	req, err := c.newRequest(ctx, method, path, body)
	if err != nil {
		return transportError(err)
	}

	start := time.Now()
	resp, err := c.doer.Do(req)
	if err != nil {
		c.logger.Warn("Request failed",
			zap.String("method", method),
			zap.String("path", path),
			zap.String("request_id", req.Header.Get(headerRequestID)),
			zap.Error(err),
		)
		return transportError(err)
	}
	defer resp.Body.Close()

	b, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return transportError(fmt.Errorf("read response body: %w", err))
	}

	c.logger.Debug("Request completed",
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", resp.StatusCode),
		zap.Duration("duration", time.Since(start)),
		zap.String("request_id", req.Header.Get(headerRequestID)),
	)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := ParseAPIError(resp.StatusCode, b)
		if apiErr.IsUnauthorized() && c.onUnauthorized != nil {
			c.onUnauthorized(apiErr)
		}
		return apiErr
	}

	if out == nil || len(bytes.TrimSpace(b)) == 0 {
		return nil
	}

	if err := json.Unmarshal(b, out); err != nil {
		return &APIError{
			Status:  resp.StatusCode,
			Message: "malformed response body",
			Body:    string(b[:min(len(b), 1024)]),
			Err:     err,
		}
	}

	return nil
}

func (c *Client) newRequest(ctx context.Context, method, path string, body any) (*http.Request, error) {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshal request body: %w", err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set(headerRequestID, uuid.NewString())

	if c.token != nil {
		if token := c.token(); token != "" {
			req.Header.Set(headerToken, token)
		}
	}

	return req, nil
}
