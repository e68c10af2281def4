package batch

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/docpatch/docpatch/pkg/docops"
)

const (
	// DefaultTimeout bounds one remote call, not the whole batch.
	DefaultTimeout = 60 * time.Second

	// maxErrorBody limits how much of a remote error body is echoed back.
	maxErrorBody = 2048
)

// ClientConfig configures the HTTP executor.
type ClientConfig struct {
	// BaseURL is the API root, e.g. "https://docs.example.com".
	BaseURL string

	// Token is the bearer token sent with every call. Empty means no
	// Authorization header.
	Token string

	// Timeout bounds a single call; zero means DefaultTimeout.
	Timeout time.Duration
}

// Client is the HTTP Executor for the remote batch-update endpoint.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

// NewClient creates an HTTP executor.
func NewClient(cfg ClientConfig) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("remote endpoint not configured")
	}
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL: cfg.BaseURL,
		token:   cfg.Token,
		http:    &http.Client{Timeout: timeout},
	}, nil
}

// Execute posts one chunk to {base}/v1/documents/{id}:batchUpdate.
// Failures surface as-is; retrying a partially applied batch would
// double-apply insertions, so no retry happens at this layer.
func (c *Client) Execute(ctx context.Context, documentID string, reqs []docops.Request) (*docops.BatchUpdateResponse, error) {
	if documentID == "" {
		return nil, fmt.Errorf("missing document id")
	}

	body, err := json.Marshal(docops.BatchUpdateRequest{Requests: reqs})
	if err != nil {
		return nil, fmt.Errorf("encode batch request: %w", err)
	}

	url := fmt.Sprintf("%s/v1/documents/%s:batchUpdate", c.baseURL, documentID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build batch request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("batch update call: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, fmt.Errorf("batch update failed: %s: %s", resp.Status, bytes.TrimSpace(snippet))
	}

	var out docops.BatchUpdateResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode batch response: %w", err)
	}
	return &out, nil
}
