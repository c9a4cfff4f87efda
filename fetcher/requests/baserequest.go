package requests

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/TheyCallMeKWAM/International-Fantasy-2025/pkg/config"
	"github.com/TheyCallMeKWAM/International-Fantasy-2025/pkg/messages"
	"github.com/TheyCallMeKWAM/International-Fantasy-2025/pkg/metrics"
)

// ErrNotFound is returned when the provider doesn't know the requested resource.
var ErrNotFound = errors.New("resource not found on provider")

// Client of the match statistics provider.
type Client struct {
	http    *http.Client
	baseURL string
	apiKey  string
	limiter *RateLimiter
	metrics *metrics.Metrics
}

// Create the provider client from the configuration.
func NewClient(cfg *config.Config, limiter *RateLimiter, appMetrics *metrics.Metrics) *Client {
	return &Client{
		http:    &http.Client{Timeout: cfg.Provider.Timeout},
		baseURL: cfg.Provider.BaseURL,
		apiKey:  cfg.Provider.ApiKey,
		limiter: limiter,
		metrics: appMetrics,
	}
}

// Do a authenticated request to the provider.
// Return the respose.
func (c *Client) AuthRequest(ctx context.Context, path string, method string, params map[string]string) (*http.Response, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	// Create the request for the given url.
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("error creating request: %w", err)
	}

	query := url.Values{}
	for key, value := range params {
		query.Set(key, value)
	}

	// The key is optional, anonymous calls only get a lower quota.
	if c.apiKey != "" {
		query.Set("api_key", c.apiKey)
	}
	req.URL.RawQuery = query.Encode()

	return c.http.Do(req)
}

// GetJSON requests a path and decodes the body into out.
// The endpoint label only feeds the metrics.
func (c *Client) GetJSON(ctx context.Context, endpoint string, path string, out any) error {
	resp, err := c.AuthRequest(ctx, path, http.MethodGet, nil)
	if err != nil {
		c.count(endpoint, "error")
		return fmt.Errorf(messages.RequestFailedMsg+": %w", path, err)
	}
	defer resp.Body.Close()

	// Check the status code.
	switch {
	case resp.StatusCode == http.StatusNotFound:
		c.count(endpoint, "not_found")
		return fmt.Errorf("%w: %s", ErrNotFound, path)
	case resp.StatusCode != http.StatusOK:
		c.count(endpoint, "bad_status")
		return fmt.Errorf(messages.BadStatusCodeMsg, resp.StatusCode, path)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		c.count(endpoint, "bad_payload")
		return fmt.Errorf("%s: %w", messages.FailedToParseMsg, err)
	}

	c.count(endpoint, "ok")
	return nil
}

func (c *Client) count(endpoint string, outcome string) {
	if c.metrics == nil {
		return
	}
	c.metrics.ProviderRequests.WithLabelValues(endpoint, outcome).Inc()
}
