// Package request is the single HTTP adapter used to talk to the
// console backend. Every response is wrapped in an Envelope; callers
// receive the unwrapped data payload or a classified *domain.Error.
package request

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"nathanbeddoewebdev/svrmgr/internal/domain"
	"nathanbeddoewebdev/svrmgr/internal/retry"
	"nathanbeddoewebdev/svrmgr/internal/services/auth"

	"go.uber.org/zap"
)

const (
	// DefaultTimeout bounds every request unless overridden.
	DefaultTimeout = 60 * time.Second

	// APIPrefix is prepended to every request path.
	APIPrefix = "/api"

	unknownErrorMessage = "Unknown error"
	authRequiredMessage = "Authentication required"

	maxResponseBytes = 10 << 20
)

// Envelope is the wire wrapper around every backend response. Code 0
// means success regardless of the HTTP status.
type Envelope struct {
	Code    int             `json:"code"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
}

// Client sends requests to the backend and unwraps the envelope.
type Client struct {
	baseURL        string
	profile        string
	httpClient     *http.Client
	tokens         auth.Store
	timeout        time.Duration
	retry          retry.Config
	headers        http.Header
	onAuthRequired func()
	logger         *zap.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithTokenStore sets where bearer tokens are read from. Without a store
// requests are sent unauthenticated.
func WithTokenStore(s auth.Store) Option {
	return func(c *Client) { c.tokens = s }
}

// WithTimeout overrides DefaultTimeout for every request.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// WithRetry sets the retry policy for idempotent reads.
func WithRetry(cfg retry.Config) Option {
	return func(c *Client) { c.retry = cfg }
}

// WithHeader adds a header sent with every request.
func WithHeader(key, value string) Option {
	return func(c *Client) { c.headers.Set(key, value) }
}

// WithLoginHandler registers the hook invoked after the backend answers
// 401. The stored token has already been removed when it runs.
func WithLoginHandler(fn func()) Option {
	return func(c *Client) { c.onAuthRequired = fn }
}

// WithLogger sets the logger used for request tracing.
func WithLogger(l *zap.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.logger = l
		}
	}
}

// New creates a Client for the backend rooted at baseURL
// (for example http://localhost:8080).
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		profile:    auth.ProfileFor(baseURL),
		httpClient: &http.Client{},
		timeout:    DefaultTimeout,
		retry:      retry.DefaultConfig(),
		headers:    make(http.Header),
		logger:     zap.NewNop(),
	}
	c.headers.Set("Content-Type", "application/json")
	c.headers.Set("Accept", "application/json")

	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the backend root the client talks to.
func (c *Client) BaseURL() string { return c.baseURL }

// Profile returns the credential key used for this backend.
func (c *Client) Profile() string { return c.profile }

// Do sends a request and decodes the envelope's data into out, which
// may be nil. GET requests are retried on transient failures. The
// timeout bounds the whole call, retries and backoff included.
func (c *Client) Do(ctx context.Context, method, path string, body, out any, opts ...CallOption) error {
	cfg := callConfig{timeout: c.timeout}
	for _, opt := range opts {
		opt(&cfg)
	}

	ctx, cancel := context.WithTimeout(ctx, cfg.timeout)
	defer cancel()

	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			return &domain.Error{
				Kind:    domain.ErrRequest,
				Message: fmt.Sprintf("failed to encode request body: %v", err),
				Err:     err,
			}
		}
	}

	send := func() error {
		return c.roundTrip(ctx, method, path, payload, out, &cfg)
	}

	var err error
	if method == http.MethodGet {
		policy := c.retry
		policy.OnRetry = func(attempt int, err error, delay time.Duration) {
			c.logger.Debug("retrying request",
				zap.String("method", method),
				zap.String("path", path),
				zap.Int("attempt", attempt),
				zap.Duration("delay", delay),
				zap.Error(err),
			)
		}
		err = retry.Do(ctx, policy, retry.IsRetryable, send)
	} else {
		err = send()
	}
	return classify(err)
}

func (c *Client) roundTrip(ctx context.Context, method, path string, payload []byte, out any, cfg *callConfig) error {
	target := c.baseURL + APIPrefix + path
	if len(cfg.params) > 0 {
		target += "?" + cfg.params.Encode()
	}

	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return &domain.Error{Kind: domain.ErrRequest, Message: err.Error(), Err: err}
	}
	for k, vs := range c.headers {
		req.Header[k] = append([]string(nil), vs...)
	}
	for k, vs := range cfg.headers {
		req.Header[k] = append([]string(nil), vs...)
	}
	if !cfg.skipAuth {
		c.authorize(req)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Debug("request failed",
			zap.String("method", method),
			zap.String("path", path),
			zap.Duration("duration", time.Since(start)),
			zap.Error(err),
		)
		return &domain.Error{Kind: domain.ErrRequest, Message: err.Error(), Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return &domain.Error{
			Kind:    domain.ErrRequest,
			Message: fmt.Sprintf("failed to read response: %v", err),
			Status:  resp.StatusCode,
			Err:     err,
		}
	}

	c.logger.Debug("request completed",
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", resp.StatusCode),
		zap.Duration("duration", time.Since(start)),
	)

	if resp.StatusCode == http.StatusUnauthorized {
		c.handleUnauthorized()
		return &domain.Error{
			Kind:    domain.ErrUnauthorized,
			Message: authRequiredMessage,
			Status:  resp.StatusCode,
		}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return httpError(resp.StatusCode, raw)
	}

	var env Envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return &domain.Error{
			Kind:    domain.ErrRequest,
			Message: fmt.Sprintf("invalid response from server: %v", err),
			Status:  resp.StatusCode,
			Err:     err,
		}
	}

	if env.Code != 0 {
		return envelopeError(env)
	}

	if out == nil || len(env.Data) == 0 || bytes.Equal(env.Data, []byte("null")) {
		return nil
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return &domain.Error{
			Kind:    domain.ErrRequest,
			Message: fmt.Sprintf("failed to decode response data: %v", err),
			Status:  resp.StatusCode,
			Err:     err,
		}
	}
	return nil
}

// authorize attaches the stored bearer token, if any.
func (c *Client) authorize(req *http.Request) {
	if c.tokens == nil {
		return
	}
	token, err := c.tokens.GetToken(c.profile)
	if err != nil {
		if !errors.Is(err, auth.ErrTokenNotFound) {
			c.logger.Warn("failed to read auth token", zap.String("profile", c.profile), zap.Error(err))
		}
		return
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
}

func (c *Client) handleUnauthorized() {
	if c.tokens != nil {
		if err := c.tokens.DeleteToken(c.profile); err != nil && !errors.Is(err, auth.ErrTokenNotFound) {
			c.logger.Warn("failed to clear auth token", zap.String("profile", c.profile), zap.Error(err))
		}
	}
	if c.onAuthRequired != nil {
		c.onAuthRequired()
	}
}

// envelopeError converts a non-zero envelope code into a domain error.
func envelopeError(env Envelope) error {
	kind := domain.ErrRequest
	if env.Code == http.StatusNotFound {
		kind = domain.ErrNotFound
	}
	message := env.Message
	if message == "" {
		message = unknownErrorMessage
	}
	return &domain.Error{Kind: kind, Message: message, Code: env.Code}
}

// httpError converts a non-2xx status into a domain error, preferring
// the message the server put in the envelope body.
func httpError(status int, raw []byte) error {
	var env Envelope
	message := ""
	if err := json.Unmarshal(raw, &env); err == nil {
		message = env.Message
	}
	if message == "" {
		message = fmt.Sprintf("Request failed with status code %d", status)
	}

	kind := domain.ErrRequest
	if status == http.StatusTooManyRequests {
		kind = domain.ErrRateLimited
	}

	err := &domain.Error{Kind: kind, Message: message, Code: env.Code, Status: status}
	switch status {
	case http.StatusTooManyRequests, http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		return retry.Transient(err)
	}
	return err
}

// classify strips retry markers so callers always see a *domain.Error.
func classify(err error) error {
	if err == nil {
		return nil
	}
	var de *domain.Error
	if errors.As(err, &de) {
		return de
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return &domain.Error{Kind: domain.ErrRequest, Message: err.Error(), Err: err}
	}
	return err
}
