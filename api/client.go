package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
)

const defaultTimeout = 15 * time.Second

// TokenSource supplies the bearer credential attached to authenticated
// requests. Returning ok=false sends the request without an Authorization
// header; the Client never caches what the source returns.
type TokenSource interface {
	AccessToken(ctx context.Context) (token string, ok bool)
}

// Config carries the transport settings for [Client].
type Config struct {
	// BaseURL is the scheme://host[:port] of the marketplace API, without
	// the /api/v1 prefix. Required.
	BaseURL string
	// Timeout applies when no http.Client is supplied. Defaults to 15s.
	Timeout time.Duration
	// UserAgent overrides the default User-Agent header when non-empty.
	UserAgent string
}

// Client is the REST boundary consumer. It is safe for concurrent use once
// constructed.
type Client struct {
	baseURL   string
	userAgent string
	http      *http.Client
	tokens    TokenSource
}

// NewClient builds a Client. hc may be nil, in which case a client with
// Config.Timeout is created. tokens may be nil for an anonymous client.
func NewClient(cfg Config, hc *http.Client, tokens TokenSource) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, errors.New("api: base URL required")
	}
	if hc == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = defaultTimeout
		}
		hc = &http.Client{Timeout: timeout}
	}
	return &Client{
		baseURL:   strings.TrimRight(cfg.BaseURL, "/"),
		userAgent: cfg.UserAgent,
		http:      hc,
		tokens:    tokens,
	}, nil
}

type envelope struct {
	Status string            `json:"status"`
	Data   json.RawMessage   `json:"data"`
	Errors []json.RawMessage `json:"errors"`
}

// do issues one request and decodes the envelope into out. Business
// rejections come back as [*Error]; transport and decode failures as plain
// errors. out may be nil when the caller only cares about success.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var payload *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("api: encode request: %w", err)
		}
		payload = bytes.NewReader(data)
	} else {
		payload = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, payload)
	if err != nil {
		return fmt.Errorf("api: build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}
	if c.tokens != nil {
		if token, ok := c.tokens.AccessToken(ctx); ok && token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("api: %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return fmt.Errorf("api: decode response: %w", err)
	}
	if env.Status != "success" {
		return &Error{
			HTTPStatus: resp.StatusCode,
			Status:     env.Status,
			Messages:   flattenErrors(env.Errors),
		}
	}
	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("api: decode data: %w", err)
		}
	}
	return nil
}
