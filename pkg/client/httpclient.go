package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"mocms/pkg/middleware"
)

const (
	IdempotencyKeyHeader = "Idempotency-Key"
	readinessPath        = "/ready"
	readinessPoll        = 500 * time.Millisecond
)

// HttpClient is a small JSON client for the CMS API. When SigningSecret is
// set, write requests carry the body signature the server checks.
type HttpClient struct {
	BaseURL       string
	HTTPClient    *http.Client
	Headers       map[string]string
	SigningSecret string
}

func NewHttpClient(baseURL string) *HttpClient {
	return &HttpClient{
		BaseURL: baseURL,
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		Headers: map[string]string{},
	}
}

type Response struct {
	*http.Response
	Body []byte
}

func (r *Response) DecodeJSON(target any) error {
	return json.Unmarshal(r.Body, target)
}

func (c *HttpClient) GET(path string) (*Response, error) {
	return c.Do(context.Background(), http.MethodGet, path, nil, nil)
}

func (c *HttpClient) POST(path string, body any) (*Response, error) {
	return c.Do(context.Background(), http.MethodPost, path, body, nil)
}

func (c *HttpClient) PUT(path string, body any) (*Response, error) {
	return c.Do(context.Background(), http.MethodPut, path, body, nil)
}

func (c *HttpClient) PATCH(path string, body any) (*Response, error) {
	return c.Do(context.Background(), http.MethodPatch, path, body, nil)
}

func (c *HttpClient) DELETE(path string) (*Response, error) {
	return c.Do(context.Background(), http.MethodDelete, path, nil, nil)
}

// POSTIdempotent sends a create that the server replays for a repeated key.
func (c *HttpClient) POSTIdempotent(path string, body any, key string) (*Response, error) {
	return c.Do(context.Background(), http.MethodPost, path, body, map[string]string{IdempotencyKeyHeader: key})
}

// Do marshals body to JSON when it is non-nil and sends the request with
// the client headers, then the per-call headers.
func (c *HttpClient) Do(ctx context.Context, method, path string, body any, headers map[string]string) (*Response, error) {
	var payload []byte
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		payload = data
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.SigningSecret != "" && method != http.MethodGet {
		req.Header.Set(middleware.SignatureHeader, "sha256="+middleware.Sign(payload, c.SigningSecret))
	}
	for key, value := range c.Headers {
		req.Header.Set(key, value)
	}
	for key, value := range headers {
		req.Header.Set(key, value)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	return &Response{
		Response: resp,
		Body:     respBody,
	}, nil
}

// WaitForReady polls /ready, which only succeeds once MongoDB answers.
func (c *HttpClient) WaitForReady(ctx context.Context, maxWait time.Duration) error {
	ctx, cancel := context.WithTimeout(ctx, maxWait)
	defer cancel()

	ticker := time.NewTicker(readinessPoll)
	defer ticker.Stop()

	for {
		resp, err := c.Do(ctx, http.MethodGet, readinessPath, nil, nil)
		if err == nil && resp.StatusCode == http.StatusOK {
			return nil
		}

		select {
		case <-ctx.Done():
			return fmt.Errorf("service not ready within %v", maxWait)
		case <-ticker.C:
		}
	}
}

// GetErrorMessage returns the "error" field of an error response, falling
// back to its code.
func GetErrorMessage(resp *Response) string {
	var errResp struct {
		Error string `json:"error"`
		Code  string `json:"code"`
	}
	if err := resp.DecodeJSON(&errResp); err != nil {
		return fmt.Sprintf("failed to unmarshal error: %v", err)
	}

	if errResp.Error != "" {
		return errResp.Error
	}
	return errResp.Code
}
