// Package rest implements the notification API repository over HTTP.
package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"voltfeed/config"

	"github.com/pkg/errors"
)

// client is a thin HTTP helper shared by the repository methods. It speaks
// the backend's unified response envelope.
type client struct {
	baseURL    string
	httpClient *http.Client
}

func newClient(cfg *config.Config) *client {
	return &client{
		baseURL: strings.TrimRight(cfg.API.BaseURL, "/"),
		httpClient: &http.Client{
			Timeout: cfg.API.Timeout,
		},
	}
}

// apiError is a non-2xx response from the notification API.
type apiError struct {
	StatusCode int
	Body       string
}

func (e *apiError) Error() string {
	return "notification API returned status " + strconv.Itoa(e.StatusCode)
}

// statusOf extracts the HTTP status from an apiError, or 0.
func statusOf(err error) int {
	var apiErr *apiError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}

	return 0
}

func (c *client) do(ctx context.Context, method, path string, query url.Values, payload, out any) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return errors.WithStack(err)
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return errors.WithStack(err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.WithStack(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))

		return errors.WithStack(&apiError{StatusCode: resp.StatusCode, Body: string(raw)})
	}

	if out == nil {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.Wrap(err, "decode response body")
	}

	return nil
}

func (c *client) get(ctx context.Context, path string, query url.Values, out any) error {
	return c.do(ctx, http.MethodGet, path, query, nil, out)
}

func (c *client) patch(ctx context.Context, path string, query url.Values, payload any) error {
	return c.do(ctx, http.MethodPatch, path, query, payload, nil)
}

func (c *client) post(ctx context.Context, path string, query url.Values, payload any) error {
	return c.do(ctx, http.MethodPost, path, query, payload, nil)
}

func (c *client) delete(ctx context.Context, path string, query url.Values, payload any) error {
	return c.do(ctx, http.MethodDelete, path, query, payload, nil)
}
