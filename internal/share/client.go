package share

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Client implements Exchange against a remote share server.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

var _ Exchange = (*Client)(nil)

// NewClient creates a Client targeting baseURL.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

// Publish uploads w and returns its code.
func (c *Client) Publish(ctx context.Context, w Workout) (string, error) {
	payload, err := json.Marshal(w)
	if err != nil {
		return "", fmt.Errorf("share client: encode: %w", err)
	}
	body, status, err := c.do(ctx, http.MethodPost, "/api/v1/shares", bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	if status != http.StatusCreated {
		return "", fmt.Errorf("share client: publish returned %d: %s", status, errorMessage(body))
	}

	var resp publishResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", fmt.Errorf("share client: decode publish: %w", err)
	}
	return resp.Code, nil
}

// Resolve fetches the workout stored under code.
func (c *Client) Resolve(ctx context.Context, code string) (Workout, error) {
	normalized, err := NormalizeCode(code)
	if err != nil {
		return Workout{}, err
	}
	body, status, err := c.do(ctx, http.MethodGet, "/api/v1/shares/"+url.PathEscape(normalized), nil)
	if err != nil {
		return Workout{}, err
	}
	switch status {
	case http.StatusOK:
	case http.StatusNotFound:
		return Workout{}, ErrNotFound
	case http.StatusBadRequest:
		return Workout{}, ErrInvalidCode
	default:
		return Workout{}, fmt.Errorf("share client: resolve returned %d: %s", status, errorMessage(body))
	}

	var w Workout
	if err := json.Unmarshal(body, &w); err != nil {
		return Workout{}, fmt.Errorf("share client: decode workout: %w", err)
	}
	return w, nil
}

func (c *Client) do(ctx context.Context, method, path string, payload io.Reader) ([]byte, int, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, payload)
	if err != nil {
		return nil, 0, fmt.Errorf("share client: create request: %w", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("share client: %s: %w", path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, 0, fmt.Errorf("share client: read body: %w", err)
	}
	return body, resp.StatusCode, nil
}

func errorMessage(body []byte) string {
	var e struct {
		Error string `json:"error"`
	}
	if json.Unmarshal(body, &e) == nil && e.Error != "" {
		return e.Error
	}
	return strings.TrimSpace(string(body))
}
