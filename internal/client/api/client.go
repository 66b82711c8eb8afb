// Package api is the HTTP boundary to the Anuncia backend. It attaches the
// bearer token to every request, maps transport and status errors to typed
// values, retries idempotent reads, and escalates authentication failures
// to the session layer exactly once per incident.
package api

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

	"github.com/anunciabr/anuncia/internal/common"
	"github.com/google/uuid"
	"github.com/sethvargo/go-retry"
)

const (
	defaultTimeout   = 10 * time.Second
	getRetryAttempts = 2
	getRetryBase     = 200 * time.Millisecond
)

// envelope is the backend's uniform response shape.
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
}

// Client talks to the backend REST API.
//
// TokenFunc supplies the current bearer token ("" when logged out).
// OnAuthFailure is invoked on 401/403 unless SuppressAuthFailure reports
// true (the presentation layer sets it while an auth view is active, to
// avoid redirect loops). Both hooks are optional.
type Client struct {
	baseURL    string
	httpClient *http.Client

	TokenFunc           func() string
	OnAuthFailure       func()
	SuppressAuthFailure func() bool
}

// New builds a Client for the given base URL, e.g.
// "http://localhost:3003/api". A zero timeout falls back to 10s.
func New(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// get performs a GET with bounded retries on transport failures. Auth and
// API errors are never retried.
func (c *Client) get(ctx context.Context, path string, out any) error {
	backoff := retry.WithMaxRetries(getRetryAttempts, retry.NewFibonacci(getRetryBase))
	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		err := c.do(ctx, http.MethodGet, path, nil, out, false)
		if errors.Is(err, ErrUnavailable) {
			return retry.RetryableError(err)
		}
		return err
	})
}

func (c *Client) post(ctx context.Context, path string, body, out any, idempotent bool) error {
	return c.do(ctx, http.MethodPost, path, body, out, idempotent)
}

func (c *Client) put(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPut, path, body, out, false)
}

func (c *Client) delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil, false)
}

// do executes a single request/response cycle. out, when non-nil, receives
// the decoded "data" member of the response envelope. idempotent adds an
// idempotency key header so the backend can dedupe client retries.
func (c *Client) do(ctx context.Context, method, path string, body, out any, idempotent bool) error {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	if c.TokenFunc != nil {
		if token := c.TokenFunc(); token != "" {
			req.Header.Set(common.AuthorizationHeaderName, common.BearerPrefix+token)
		}
	}
	if idempotent {
		req.Header.Set(common.IdempotencyKeyHeaderName, uuid.NewString())
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	return c.decode(resp, out)
}

func (c *Client) decode(resp *http.Response, out any) error {
	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		c.reportAuthFailure()
		return ErrUnauthorized

	case resp.StatusCode >= http.StatusInternalServerError:
		return fmt.Errorf("%w: status %d", ErrUnavailable, resp.StatusCode)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	var env envelope
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &env); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}

	if resp.StatusCode >= http.StatusBadRequest || (len(raw) > 0 && !env.Success) {
		return &APIError{Status: resp.StatusCode, Message: env.Message}
	}

	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("decode response data: %w", err)
		}
	}
	return nil
}

// reportAuthFailure escalates an expired or revoked token to the session
// layer. Suppressed while an auth view is active so a failed login does
// not trigger a redirect back onto itself.
func (c *Client) reportAuthFailure() {
	if c.SuppressAuthFailure != nil && c.SuppressAuthFailure() {
		return
	}
	if c.OnAuthFailure != nil {
		c.OnAuthFailure()
	}
}
