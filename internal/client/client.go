// Package client is the typed, read-only client for the investment engine API.
package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/bobmcallan/invest-portal/internal/common"
)

// DefaultTimeout bounds a single backend request when none is configured.
const DefaultTimeout = 10 * time.Second

// maxBodyBytes caps how much of a response body is read.
const maxBodyBytes = 4 << 20

// Client issues GET requests against the backend base URL.
type Client struct {
	baseURL    string
	httpClient *http.Client
	timeout    time.Duration
	logger     *common.Logger
}

// NewClient creates a client for the backend at baseURL.
// A non-positive timeout falls back to DefaultTimeout.
func NewClient(baseURL string, timeout time.Duration, logger *common.Logger) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
		timeout:    timeout,
		logger:     logger.OrSilent(),
	}
}

// BaseURL returns the backend base URL without a trailing slash.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Request performs a GET of path (relative to the base URL) and decodes the JSON body into T.
// Every call bypasses HTTP caches. Failures are never converted into zero values:
// the caller receives a *FetchError or *TimeoutError.
func Request[T any](ctx context.Context, c *Client, path string, query url.Values) (T, error) {
	var out T

	body, status, err := c.get(ctx, path, query)
	if err != nil {
		return out, err
	}
	if err := json.Unmarshal(body, &out); err != nil {
		var zero T
		return zero, c.fail(ctx, &FetchError{Path: path, Status: status, Err: fmt.Errorf("failed to parse response: %w", err)})
	}
	return out, nil
}

func (c *Client) get(parent context.Context, path string, query url.Values) ([]byte, int, error) {
	ctx, cancel := context.WithTimeout(parent, c.timeout)
	defer cancel()

	target := c.baseURL + "/" + strings.TrimLeft(path, "/")
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, 0, c.fail(parent, &FetchError{Path: path, Err: err})
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Cache-Control", "no-cache, no-store")
	req.Header.Set("Pragma", "no-cache")
	if id := common.CorrelationID(parent); id != "" {
		req.Header.Set(common.CorrelationHeader, id)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, c.fail(parent, c.interrupted(parent, ctx, path, 0, "failed to reach backend", err))
	}
	defer resp.Body.Close()

	// One byte past the cap tells an oversized body apart from one that fits exactly.
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes+1))
	if err != nil {
		return nil, resp.StatusCode, c.fail(parent, c.interrupted(parent, ctx, path, resp.StatusCode, "failed to read response", err))
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := http.StatusText(resp.StatusCode)
		return nil, resp.StatusCode, c.fail(parent, &FetchError{Path: path, Status: resp.StatusCode, Message: msg})
	}
	if len(body) > maxBodyBytes {
		return nil, resp.StatusCode, c.fail(parent, &FetchError{Path: path, Status: resp.StatusCode, Err: errBodyTooLarge})
	}

	return body, resp.StatusCode, nil
}

// interrupted classifies a failed round trip. Only expiry of the client's own timeout is a
// *TimeoutError; a cancelled or expired caller context is reported as a *FetchError.
func (c *Client) interrupted(parent, ctx context.Context, path string, status int, what string, err error) error {
	if parent.Err() == nil && errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return &TimeoutError{Path: path, After: c.timeout, Err: err}
	}
	return &FetchError{Path: path, Status: status, Err: fmt.Errorf("%s: %w", what, err)}
}

func (c *Client) fail(ctx context.Context, err error) error {
	evt := c.logger.WithContext(ctx).Warn().Err(err)
	var fe *FetchError
	if errors.As(err, &fe) {
		evt = evt.Str("path", fe.Path).Int("status", fe.Status)
	}
	var te *TimeoutError
	if errors.As(err, &te) {
		evt = evt.Str("path", te.Path).Str("after", te.After.String())
	}
	evt.Msg("Backend request failed")
	return err
}
