package httpclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/hashicorp/go-cleanhttp"

	"github.com/rios0rios0/cdnpurge/internal/domain/entities"
)

// maxBodySnippet bounds how much of a response body ends up in error messages.
const maxBodySnippet = 512

// Client issues JSON requests. Every request gets its own connection, nothing is
// pooled or retried.
type Client struct {
	httpClient *http.Client
	userAgent  string
}

// NewClient creates a new Client with the given per-request timeout.
func NewClient(timeout time.Duration, userAgent string) *Client {
	httpClient := cleanhttp.DefaultClient()
	httpClient.Timeout = timeout

	return &Client{
		httpClient: httpClient,
		userAgent:  userAgent,
	}
}

// PostJSON sends body as JSON to url and decodes the JSON response into out.
func (c *Client) PostJSON(ctx context.Context, url string, body, out interface{}) error {
	jsonBody, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to marshal request body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(jsonBody))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	return c.do(req, out)
}

// GetJSON fetches url and decodes the JSON response into out.
func (c *Client) GetJSON(ctx context.Context, url string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out interface{}) error {
	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %s %s: %w", entities.ErrNetwork, req.Method, req.URL, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: failed to read response: %w", entities.ErrNetwork, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("%w: %s %s returned status %d: %s",
			entities.ErrNetwork, req.Method, req.URL, resp.StatusCode, snippet(respBody))
	}

	if err = json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("%w: %s", entities.ErrResponseParse, snippet(respBody))
	}

	return nil
}

func snippet(body []byte) string {
	if len(body) > maxBodySnippet {
		return string(body[:maxBodySnippet]) + "..."
	}
	return string(body)
}
