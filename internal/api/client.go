package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/thrive-platform/admin-console/internal/reconcile"
)

// SecretHeader is the shared-admin-secret header sent on every request.
const SecretHeader = "X-Admin-Secret"

// DefaultTimeout guards list and detail fetches. A slow backend degrades
// to a retry prompt rather than a hung view.
const DefaultTimeout = 6 * time.Second

// Client issues requests against the resource backend. Safe for concurrent
// use; it holds no per-request state.
type Client struct {
	baseURL string
	secret  string
	httpc   *http.Client
	timeout time.Duration
}

// NewClient creates a client bound to a base URL and admin secret.
// A zero timeout selects DefaultTimeout; a nil httpc selects a fresh
// http.Client.
func NewClient(baseURL, secret string, timeout time.Duration, httpc *http.Client) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if httpc == nil {
		httpc = &http.Client{}
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		secret:  secret,
		httpc:   httpc,
		timeout: timeout,
	}
}

// ListPage fetches one page of a collection and returns the raw records
// plus the backend's total count. When the envelope omits pagination the
// total falls back to the page length.
func (c *Client) ListPage(ctx context.Context, path string, page, limit int) ([]reconcile.RawRecord, int, error) {
	q := url.Values{}
	if page > 0 {
		q.Set("page", strconv.Itoa(page))
	}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}
	target := path
	if enc := q.Encode(); enc != "" {
		target += "?" + enc
	}

	env, err := c.do(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, 0, err
	}
	recs, err := env.records()
	if err != nil {
		return nil, 0, &HTTPError{StatusCode: http.StatusOK, Message: fmt.Sprintf("malformed list payload: %v", err)}
	}
	return recs, env.total(len(recs)), nil
}

// Get fetches a single record.
func (c *Client) Get(ctx context.Context, path string) (reconcile.RawRecord, error) {
	env, err := c.do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}
	rec, err := env.record()
	if err != nil {
		return nil, &HTTPError{StatusCode: http.StatusOK, Message: fmt.Sprintf("malformed record payload: %v", err)}
	}
	return rec, nil
}

// Create posts a new record and returns the backend's view of it.
func (c *Client) Create(ctx context.Context, path string, payload reconcile.RawRecord) (reconcile.RawRecord, error) {
	env, err := c.do(ctx, http.MethodPost, path, payload)
	if err != nil {
		return nil, err
	}
	return env.record()
}

// Update writes a record and returns the backend's view of it.
func (c *Client) Update(ctx context.Context, path string, payload reconcile.RawRecord) (reconcile.RawRecord, error) {
	env, err := c.do(ctx, http.MethodPut, path, payload)
	if err != nil {
		return nil, err
	}
	return env.record()
}

// Delete removes a record. Backends that soft-delete report success here
// and keep returning the record with a deleted flag set; callers reload
// after deleting rather than trusting the local removal.
func (c *Client) Delete(ctx context.Context, path string) error {
	_, err := c.do(ctx, http.MethodDelete, path, nil)
	return err
}

// do runs one request/response cycle: marshal, send with the client
// timeout, decode the envelope, and map failures onto the error taxonomy.
func (c *Client) do(ctx context.Context, method, path string, payload any) (*Envelope, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var body io.Reader
	if payload != nil {
		buf, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("encode %s %s: %w", method, path, err)
		}
		body = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("build %s %s: %w", method, path, err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.secret != "" {
		req.Header.Set(SecretHeader, c.secret)
	}

	started := time.Now()
	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, &NetworkError{Op: method + " " + path, Err: err}
	}
	defer resp.Body.Close()

	slog.Debug("backend call",
		"method", method,
		"path", path,
		"status", resp.StatusCode,
		"duration", time.Since(started),
	)

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 10<<20))
	if err != nil {
		return nil, &NetworkError{Op: method + " " + path, Err: err}
	}

	var env Envelope
	if len(raw) > 0 {
		// Tolerate non-JSON error bodies; the envelope stays zero and the
		// status code drives the error below.
		_ = json.Unmarshal(raw, &env)
	}

	if resp.StatusCode == http.StatusNotFound {
		return nil, &NotReadyError{Path: path}
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &HTTPError{StatusCode: resp.StatusCode, Message: env.errorMessage()}
	}
	if !env.Success && env.errorMessage() != "" {
		return nil, &HTTPError{StatusCode: resp.StatusCode, Message: env.errorMessage()}
	}
	return &env, nil
}
