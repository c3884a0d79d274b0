package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"

	"github.com/vietddude/touradmin/internal/infra/storage"
	"github.com/vietddude/touradmin/internal/metrics"
)

const defaultRefreshPath = "/admin/auth/refresh-token"

// Config holds backend connection settings.
type Config struct {
	BaseURL     string        `yaml:"base_url"`
	Timeout     time.Duration `yaml:"timeout"`
	RefreshPath string        `yaml:"refresh_path"`
	UserAgent   string        `yaml:"user_agent"`
}

// Client is safe for concurrent use.
type Client struct {
	baseURL     string
	refreshPath string
	userAgent   string
	httpClient  *http.Client
	tokens      storage.TokenStore
	log         *slog.Logger

	onSessionExpired func()
	refreshGroup     singleflight.Group
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithLogger sets the logger used for request tracing.
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) { c.log = l }
}

// WithSessionExpiredHandler registers the hook called after a failed refresh
// has cleared the session. It runs once per failed refresh.
func WithSessionExpiredHandler(fn func()) Option {
	return func(c *Client) { c.onSessionExpired = fn }
}

type quietExpiryKey struct{}

// WithoutSessionExpiredHook marks ctx so a failed refresh during its requests
// still clears the session but skips the session-expired hook. Logout uses it.
func WithoutSessionExpiredHook(ctx context.Context) context.Context {
	return context.WithValue(ctx, quietExpiryKey{}, true)
}

func quietExpiry(ctx context.Context) bool {
	quiet, _ := ctx.Value(quietExpiryKey{}).(bool)
	return quiet
}

// NewClient creates a client for the backend at cfg.BaseURL.
func NewClient(cfg Config, tokens storage.TokenStore, opts ...Option) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	refreshPath := cfg.RefreshPath
	if refreshPath == "" {
		refreshPath = defaultRefreshPath
	}

	c := &Client{
		baseURL:     strings.TrimRight(cfg.BaseURL, "/"),
		refreshPath: refreshPath,
		userAgent:   cfg.UserAgent,
		httpClient: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		tokens: tokens,
		log:    slog.Default(),
	}

	for _, opt := range opts {
		opt(c)
	}
	c.log = c.log.With("component", "api")

	return c
}

// Response is a successful (2xx) backend response.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// Decode unmarshals the body into v.
func (r *Response) Decode(v any) error {
	if err := json.Unmarshal(r.Body, v); err != nil {
		return &Error{
			StatusCode: r.StatusCode,
			Message:    requestFailedPrefix + "invalid response body",
			Err:        fmt.Errorf("parse response: %w", err),
		}
	}
	return nil
}

// pending tracks one logical request through send, refresh and replay.
type pending struct {
	req     *Request
	attempt int    // replays already made
	token   string // access token sent with the latest attempt
}

// Do sends req, refreshing the session and replaying once on a 401.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	payload, contentType, err := req.encode()
	if err != nil {
		return nil, normalize(0, nil, err)
	}

	p := &pending{req: req}
	for {
		resp, err := c.send(ctx, p, payload, contentType)
		if err == nil {
			return resp, nil
		}

		if ClassifyError(err, p.attempt) != ActionRefresh {
			return nil, err
		}

		if _, refreshErr := c.refreshAccessToken(ctx, p.token); refreshErr != nil {
			if errors.Is(refreshErr, errNoRefreshToken) {
				return nil, err
			}
			return nil, refreshErr
		}
		p.attempt++

		c.log.Debug("Replaying request after refresh",
			"method", req.Method,
			"path", req.Path,
			"attempt", p.attempt,
		)
	}
}

// Get sends a GET with optional query parameters.
func (c *Client) Get(ctx context.Context, path string, query url.Values) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodGet, Path: path, Query: query})
}

// Post sends body as JSON, or as multipart when body is a *Form.
func (c *Client) Post(ctx context.Context, path string, body any) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPost, Path: path, Body: body})
}

func (c *Client) Put(ctx context.Context, path string, body any) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPut, Path: path, Body: body})
}

func (c *Client) Patch(ctx context.Context, path string, body any) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPatch, Path: path, Body: body})
}

func (c *Client) Delete(ctx context.Context, path string) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodDelete, Path: path})
}

// send performs a single attempt with the current access token.
func (c *Client) send(
	ctx context.Context,
	p *pending,
	payload []byte,
	contentType string,
) (*Response, error) {
	start := time.Now()

	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}

	httpReq, err := http.NewRequestWithContext(ctx, p.req.Method, c.url(p.req.Path, p.req.Query), body)
	if err != nil {
		return nil, normalize(0, nil, fmt.Errorf("create request: %w", err))
	}

	for key, values := range p.req.Header {
		for _, v := range values {
			httpReq.Header.Add(key, v)
		}
	}
	httpReq.Header.Set("Content-Type", contentType)
	httpReq.Header.Set("Accept", contentTypeJSON)
	httpReq.Header.Set("X-Request-ID", uuid.NewString())
	if c.userAgent != "" {
		httpReq.Header.Set("User-Agent", c.userAgent)
	}

	token, err := c.tokens.AccessToken(ctx)
	if err != nil {
		return nil, normalize(0, nil, fmt.Errorf("read access token: %w", err))
	}
	p.token = token
	if token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		metrics.APIRequestsTotal.WithLabelValues(p.req.Method, "error").Inc()
		return nil, normalize(0, nil, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	latency := time.Since(start)

	metrics.APIRequestsTotal.WithLabelValues(p.req.Method, strconv.Itoa(resp.StatusCode)).Inc()
	metrics.APIRequestLatency.WithLabelValues(p.req.Method).Observe(latency.Seconds())

	c.log.Debug("API request",
		"method", p.req.Method,
		"path", p.req.Path,
		"status", resp.StatusCode,
		"latency", latency,
		"attempt", p.attempt,
	)

	if err != nil {
		return nil, normalize(resp.StatusCode, nil, fmt.Errorf("read response: %w", err))
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, normalize(resp.StatusCode, data, nil)
	}

	return &Response{
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Body:       data,
	}, nil
}

func (c *Client) url(path string, query url.Values) string {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	return u
}
