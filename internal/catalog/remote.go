package catalog

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// DefaultTimeout is the conservative per-request timeout for directory
// calls. A timeout fails the whole discovery request.
const DefaultTimeout = 15 * time.Second

// ClientConfig configures the remote directory client.
type ClientConfig struct {
	BaseURL string
	Token   string
	Timeout time.Duration
}

// Client talks to the external collections API. It implements both
// Directory and ItemFetcher.
type Client struct {
	baseURL string
	token   string
	client  *http.Client
}

// NewClient creates a Client.
func NewClient(cfg ClientConfig) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL: cfg.BaseURL,
		token:   cfg.Token,
		client:  &http.Client{Timeout: timeout},
	}
}

// ListCollections fetches all reachable collections with their schemas.
func (c *Client) ListCollections(ctx context.Context) ([]Collection, error) {
	body, err := c.get(ctx, "/v1/collections")
	if err != nil {
		return nil, err
	}
	return ParseCollections(body)
}

// FetchItems fetches the full, unpaginated item set for a collection.
func (c *Client) FetchItems(ctx context.Context, collectionID string) ([]Item, error) {
	body, err := c.get(ctx, "/v1/collections/"+collectionID+"/items")
	if err != nil {
		return nil, err
	}
	return ParseItems(body, collectionID)
}

func (c *Client) get(ctx context.Context, path string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, err
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d for %s", resp.StatusCode, path)
	}
	return io.ReadAll(resp.Body)
}
