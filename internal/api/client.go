// Package api is the thin HTTP client every domain service goes through.
// It attaches the bearer token, decodes JSON bodies and normalizes
// transport failures into user-presentable errors. It never retries.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"eventos/internal/storage"
)

// BasePath is the backend's versioned prefix. NormalizeBaseURL guarantees
// every client ends up pointing at it.
const BasePath = "/api/v1"

// Client calls the events backend. The zero value is not usable; use New.
type Client struct {
	baseURL string
	store   storage.Store
	http    *http.Client
}

// New returns a client rooted at baseURL. The store supplies the bearer
// token and is cleared whenever the backend answers 401.
func New(baseURL string, store storage.Store) *Client {
	return &Client{
		baseURL: NormalizeBaseURL(baseURL),
		store:   store,
		http:    http.DefaultClient,
	}
}

// NormalizeBaseURL strips a trailing slash and appends the versioned API
// prefix unless it is already there.
func NormalizeBaseURL(raw string) string {
	raw = strings.TrimSuffix(raw, "/")
	if !strings.HasSuffix(raw, BasePath) {
		raw += BasePath
	}
	return raw
}

func (c *Client) Get(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, body, out)
}

func (c *Client) Put(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPut, path, body, out)
}

func (c *Client) Delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if token, ok := c.store.Get(storage.KeyToken); ok && token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return &NetworkError{CORS: looksLikeCORS(err), Cause: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		// The token is stale. Drop the cached session so the next
		// protected action forces re-authentication; redirecting is
		// the page's responsibility.
		storage.ClearSession(c.store)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeError(resp)
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// looksLikeCORS distinguishes a blocked cross-origin request from a plain
// "server unreachable" failure. In the browser a CORS rejection surfaces as
// a generic failed fetch, which is what the js runtime reports here.
func looksLikeCORS(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "Failed to fetch") || strings.Contains(msg, "CORS")
}

func decodeError(resp *http.Response) error {
	httpErr := &HTTPError{Status: resp.StatusCode}
	var body struct {
		Detail string `json:"detail"`
		Error  string `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err == nil {
		if body.Detail != "" {
			httpErr.Detail = body.Detail
		} else {
			httpErr.Detail = body.Error
		}
	}
	return httpErr
}
