// Package backend is the JSON client for the upstream HR REST API.
package backend

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
	"strings"
	"time"

	"github.com/cmlabs-hris/hris-console-go/internal/pkg/metrics"
)

// ErrUnavailable wraps transport failures: the backend could not be reached
// or its response could not be read.
var ErrUnavailable = errors.New("backend unavailable")

// APIError is a non-2xx response. Message is the backend's own text when it
// sent one and is shown to the operator verbatim.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("backend responded %d: %s", e.Status, e.Message)
}

type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient builds a client for baseURL. A zero timeout leaves requests bounded
// only by their context.
func NewClient(baseURL string, timeout time.Duration, logger *slog.Logger) (*Client, error) {
	u, err := url.Parse(strings.TrimSpace(baseURL))
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid backend base url %q", baseURL)
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		baseURL:    u,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}, nil
}

// Do sends one JSON request and returns the raw 2xx body.
func (c *Client) Do(ctx context.Context, method, path string, query url.Values, reqBody any) ([]byte, error) {
	u := *c.baseURL
	u.Path = strings.TrimRight(u.Path, "/") + path
	if query != nil {
		u.RawQuery = query.Encode()
	}

	var body io.Reader
	if reqBody != nil {
		b, err := json.Marshal(reqBody)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), body)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if reqBody != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resource := resourceOf(path)
	start := time.Now()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		metrics.BackendRequest(method, resource, "error", time.Since(start))
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		c.logger.Error("Backend request failed", "method", method, "path", path, "error", err)
		return nil, fmt.Errorf("%w: %s %s: %v", ErrUnavailable, method, path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	metrics.BackendRequest(method, resource, statusClass(resp.StatusCode), time.Since(start))
	if err != nil {
		return nil, fmt.Errorf("%w: reading %s %s: %v", ErrUnavailable, method, path, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &APIError{Status: resp.StatusCode, Message: errorMessage(respBody, resp.StatusCode)}
		c.logger.Warn("Backend rejected request",
			"method", method,
			"path", path,
			"status", resp.StatusCode,
			"message", apiErr.Message)
		return nil, apiErr
	}

	return respBody, nil
}

// List fetches a collection and decodes it with DecodeList.
func (c *Client) List(ctx context.Context, path string, query url.Values, out any, keys ...string) error {
	body, err := c.Do(ctx, http.MethodGet, path, query, nil)
	if err != nil {
		return err
	}
	return DecodeList(body, out, keys...)
}

func (c *Client) Post(ctx context.Context, path string, body any) error {
	_, err := c.Do(ctx, http.MethodPost, path, nil, body)
	return err
}

func (c *Client) Put(ctx context.Context, path string, body any) error {
	_, err := c.Do(ctx, http.MethodPut, path, nil, body)
	return err
}

func (c *Client) Delete(ctx context.Context, path string) error {
	_, err := c.Do(ctx, http.MethodDelete, path, nil, nil)
	return err
}

func errorMessage(body []byte, status int) string {
	var payload struct {
		Message string `json:"message"`
		Error   any    `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		if msg := strings.TrimSpace(payload.Message); msg != "" {
			return msg
		}
		switch e := payload.Error.(type) {
		case string:
			if strings.TrimSpace(e) != "" {
				return e
			}
		case map[string]any:
			if msg, ok := e["message"].(string); ok && strings.TrimSpace(msg) != "" {
				return msg
			}
		}
	}
	if text := http.StatusText(status); text != "" {
		return text
	}
	return fmt.Sprintf("request failed with status %d", status)
}

// resourceOf returns "employee" for "/api/employee/42/disable".
func resourceOf(path string) string {
	parts := strings.Split(strings.Trim(path, "/"), "/")
	if len(parts) >= 2 && parts[0] == "api" {
		return parts[1]
	}
	if len(parts) > 0 && parts[0] != "" {
		return parts[0]
	}
	return "root"
}

func statusClass(status int) string {
	switch {
	case status >= 200 && status < 300:
		return "ok"
	case status >= 400 && status < 500:
		return "4xx"
	case status >= 500:
		return "5xx"
	default:
		return "other"
	}
}
