// Package api implements the HTTP client for the MessMate REST API.
//
// The client owns bearer-token injection and the mapping from transport
// failures and HTTP status codes to the shared error taxonomy: 401/403
// become common.ErrUnauthorized, network failures and 408/429/5xx become
// common.ErrUnavailable, remaining 4xx surface as *StatusError. Callers
// classify failures with errors.Is and never inspect status codes directly.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/messmate/internal/common"
	"github.com/dmitrijs2005/messmate/internal/logging"
)

// Client talks to one MessMate API endpoint. It is safe for concurrent use.
type Client struct {
	baseURL string
	httpc   *http.Client
	log     logging.Logger

	mu    sync.Mutex
	token string
}

// New constructs a Client for the given base URL. timeout bounds every
// request; a timed-out request surfaces as common.ErrUnavailable.
func New(baseURL string, timeout time.Duration, log logging.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   &http.Client{Timeout: timeout},
		log:     log,
	}
}

// SetToken installs the bearer token attached to subsequent requests.
// Only the session manager calls this.
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = token
}

// ClearToken removes the bearer token.
func (c *Client) ClearToken() {
	c.SetToken("")
}

func (c *Client) currentToken() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.token
}

// errorBody is the JSON shape of non-2xx responses.
type errorBody struct {
	Message string `json:"message"`
}

// do performs one JSON request/response round trip. body and out may be nil.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reqBody = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reqBody)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-Id", uuid.NewString())
	if token := c.currentToken(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		// No status code at all: connectivity problem or timeout.
		return fmt.Errorf("%w: %v", common.ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.mapStatus(ctx, resp)
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// mapStatus converts a non-2xx response into the shared error taxonomy.
func (c *Client) mapStatus(ctx context.Context, resp *http.Response) error {
	var eb errorBody
	_ = json.NewDecoder(resp.Body).Decode(&eb)
	msg := eb.Message
	if msg == "" {
		msg = resp.Status
	}

	c.log.Debug(ctx, "api error response", "status", resp.StatusCode, "message", msg)

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return fmt.Errorf("%w: %s", common.ErrUnauthorized, msg)
	case resp.StatusCode == http.StatusNotFound:
		return fmt.Errorf("%w: %s", common.ErrNotFound, msg)
	case resp.StatusCode == http.StatusRequestTimeout ||
		resp.StatusCode == http.StatusTooManyRequests ||
		resp.StatusCode >= 500:
		return fmt.Errorf("%w: %s", common.ErrUnavailable, msg)
	default:
		return &StatusError{Code: resp.StatusCode, Message: msg}
	}
}
