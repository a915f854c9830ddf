// Package client provides a cached accessor for the content document, for
// Go frontends and tools that render the itinerary without talking to the
// repository directly.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/khaoyai-getaway/content-service/internal/content"
	"github.com/khaoyai-getaway/content-service/pkg/logger"
)

// Client fetches the content document over HTTP and memoizes the result.
// A fetch failure falls back to the built-in defaults without poisoning
// the cache, so the next Get retries the server.
type Client struct {
	baseURL string
	http    *http.Client

	mu     sync.Mutex
	cached *content.ContentDocument
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient swaps the underlying HTTP client, mainly for tests.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// New builds a Client against the service at baseURL.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type dataEnvelope struct {
	Success bool                     `json:"success"`
	Data    *content.ContentDocument `json:"data"`
	Source  string                   `json:"source"`
}

// Get returns the content document. The second return value reports where
// it came from: the in-process cache, the server, or the built-in defaults
// when the server is unreachable. The mutex is held across the fetch, so
// concurrent first calls are serialized and only one of them hits the
// server; the rest are served from the freshly filled cache.
func (c *Client) Get(ctx context.Context) (*content.ContentDocument, content.Source) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.cached != nil {
		return c.cached, content.SourceCache
	}

	doc, err := c.fetch(ctx)
	if err != nil {
		logger.Warnf("content fetch failed, serving defaults: %v", err)
		return content.DefaultDocument(), content.SourceDefault
	}

	c.cached = doc
	return doc, content.SourceStored
}

// ClearCache drops the memoized document so the next Get hits the server.
func (c *Client) ClearCache() {
	c.mu.Lock()
	c.cached = nil
	c.mu.Unlock()
}

func (c *Client) fetch(ctx context.Context) (*content.ContentDocument, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/data", nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d from %s", resp.StatusCode, c.baseURL)
	}

	var env dataEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, fmt.Errorf("decoding content response: %w", err)
	}
	if env.Data == nil {
		return nil, fmt.Errorf("content response had no data")
	}
	return env.Data, nil
}
