package tmdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	defaultBaseURL  = "https://api.themoviedb.org"
	defaultLanguage = "en-US"

	// DefaultTimeout bounds every outbound call. There are no retries.
	DefaultTimeout = 5 * time.Second
)

// Config holds the connection settings for a Client.
type Config struct {
	Token    string // v4 read access token, sent as a bearer token
	BaseURL  string
	Language string
}

// Client is a TMDB API client.
type Client struct {
	token      string
	baseURL    string
	language   string
	httpClient *http.Client
	log        *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client. The client is copied, and
// DefaultTimeout applies when it has no timeout of its own.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		cp := *hc
		if cp.Timeout == 0 {
			cp.Timeout = DefaultTimeout
		}
		c.httpClient = &cp
	}
}

// WithTimeout overrides DefaultTimeout (for testing).
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = d
	}
}

// WithLogger sets the logger used to report failed calls.
func WithLogger(log *slog.Logger) Option {
	return func(c *Client) {
		c.log = log
	}
}

// NewClient creates a new TMDB client.
func NewClient(cfg Config, opts ...Option) *Client {
	c := &Client{
		token:    cfg.Token,
		baseURL:  strings.TrimRight(cfg.BaseURL, "/"),
		language: cfg.Language,
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
		log: slog.Default(),
	}
	if c.baseURL == "" {
		c.baseURL = defaultBaseURL
	}
	if c.language == "" {
		c.language = defaultLanguage
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Request performs a call against the TMDB API and decodes the JSON body into out.
// action describes the call for logs and errors, e.g. "searching actors for 'x'".
// Every failure is logged and returned as a *RemoteServiceError.
func (c *Client) Request(ctx context.Context, method, path string, params url.Values, action string, out any) error {
	u := c.baseURL + path
	if len(params) > 0 {
		u += "?" + params.Encode()
	}

	c.log.Debug("tmdb request", "method", method, "path", path, "action", action)

	req, err := http.NewRequestWithContext(ctx, method, u, nil)
	if err != nil {
		return c.fail(&RemoteServiceError{Reason: ReasonUnexpected, Action: action, Err: fmt.Errorf("create request: %w", err)}, path)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return c.fail(&RemoteServiceError{Reason: classify(err), Action: action, Err: err}, path)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Drain so the connection can be reused
		_, _ = io.Copy(io.Discard, resp.Body)
		return c.fail(&RemoteServiceError{Reason: ReasonHTTP, Status: resp.StatusCode, Action: action}, path)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		reason := ReasonInvalidResponse
		if r := classify(err); r == ReasonTimeout {
			reason = r
		}
		return c.fail(&RemoteServiceError{Reason: reason, Action: action, Err: fmt.Errorf("decode response: %w", err)}, path)
	}

	return nil
}

func (c *Client) fail(err *RemoteServiceError, path string) error {
	c.log.Error("tmdb request failed",
		"action", err.Action,
		"path", path,
		"reason", err.Reason.String(),
		"status", err.Status,
		"error", err.Err,
	)
	return err
}

// classify maps a transport error to a failure reason.
func classify(err error) Reason {
	if errors.Is(err, context.DeadlineExceeded) {
		return ReasonTimeout
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return ReasonTimeout
	}
	var urlErr *url.Error
	var opErr *net.OpError
	if errors.As(err, &urlErr) || errors.As(err, &opErr) || errors.Is(err, context.Canceled) {
		return ReasonNetwork
	}
	return ReasonUnexpected
}
