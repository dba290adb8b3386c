package spinque

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"

	"github.com/r-huijts/oorlogsbronnen-mcp/internal/types"
)

const schemaOrgPrefix = "http://schema.org/"

// Client talks to the Spinque integrated_search endpoint of the
// Oorlogsbronnen network API.
type Client struct {
	httpClient  *http.Client
	rateLimiter *rate.Limiter
	config      *Config
}

// Config holds the Spinque client settings
type Config struct {
	BaseURL         string
	APIConfig       string
	RateLimit       float64
	RateBurst       int
	RequestTimeout  time.Duration
	MaxIdleConns    int
	IdleConnTimeout time.Duration
}

// NewConfigFromTypes builds a client config from the application configuration.
func NewConfigFromTypes(cfg *types.Config) (*Config, error) {
	if cfg == nil {
		return nil, fmt.Errorf("application config cannot be nil")
	}

	return &Config{
		BaseURL:         cfg.SpinqueBaseURL,
		APIConfig:       cfg.SpinqueConfig,
		RateLimit:       cfg.SpinqueRateLimit,
		RateBurst:       cfg.SpinqueRateBurst,
		RequestTimeout:  cfg.SpinqueRequestTimeout,
		MaxIdleConns:    cfg.SpinqueMaxIdleConns,
		IdleConnTimeout: cfg.SpinqueIdleConnTimeout,
	}, nil
}

// NewClient creates a Spinque API client, applying defaults for unset values
func NewClient(cfg *Config) (*Client, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}

	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("base URL is required")
	}

	if cfg.APIConfig == "" {
		cfg.APIConfig = "production"
	}
	if cfg.RateLimit <= 0 {
		cfg.RateLimit = 10.0
	}
	if cfg.RateBurst <= 0 {
		cfg.RateBurst = 20
	}
	if cfg.RequestTimeout == 0 {
		cfg.RequestTimeout = 30 * time.Second
	}
	if cfg.MaxIdleConns <= 0 {
		cfg.MaxIdleConns = 10
	}
	if cfg.IdleConnTimeout == 0 {
		cfg.IdleConnTimeout = 90 * time.Second
	}

	transport := &http.Transport{
		MaxIdleConns:          cfg.MaxIdleConns,
		MaxIdleConnsPerHost:   cfg.MaxIdleConns,
		IdleConnTimeout:       cfg.IdleConnTimeout,
		TLSHandshakeTimeout:   10 * time.Second,
		ResponseHeaderTimeout: cfg.RequestTimeout,
	}

	return &Client{
		httpClient: &http.Client{
			Transport: transport,
			Timeout:   cfg.RequestTimeout,
		},
		rateLimiter: rate.NewLimiter(rate.Limit(cfg.RateLimit), cfg.RateBurst),
		config:      cfg,
	}, nil
}

// buildSearchURL constructs the path-segment query URL for integrated_search.
// The category is expanded to its schema.org class URI and only added when set.
func (c *Client) buildSearchURL(query, category string, count, offset int) string {
	searchURL := c.config.BaseURL + "/e/integrated_search/p/topic/" + url.PathEscape(query)

	if category != "" {
		classURI := schemaOrgPrefix + category
		searchURL += "/q/class:FILTER/p/value/1.0(" + url.QueryEscape(classURI) + ")"
	}

	return fmt.Sprintf("%s/results,count?count=%d&offset=%d&config=%s",
		searchURL, count, offset, c.config.APIConfig)
}

// Search executes one search against the archive backend. The category is
// optional; an empty string searches across all content categories. The
// response is the API's two-element tuple of result page and stats block.
func (c *Client) Search(ctx context.Context, query, category string, count, offset int) (*ResultPage, *SearchStats, error) {
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return nil, nil, fmt.Errorf("rate limiter wait failed: %w", err)
	}

	searchURL := c.buildSearchURL(query, category, count, offset)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, searchURL, nil)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, nil, ClassifyConnectionError(err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, ClassifyConnectionError(err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, nil, ClassifyHTTPError(resp.StatusCode, string(body))
	}

	return decodeSearchResponse(body)
}

// decodeSearchResponse parses the [resultPage, statsBlock] tuple
func decodeSearchResponse(body []byte) (*ResultPage, *SearchStats, error) {
	var elements []json.RawMessage
	if err := json.Unmarshal(body, &elements); err != nil {
		return nil, nil, NewMalformedResponseError(fmt.Sprintf("response is not a JSON array: %v", err))
	}
	if len(elements) < 2 {
		return nil, nil, NewMalformedResponseError(fmt.Sprintf("expected 2 response elements, got %d", len(elements)))
	}

	var page ResultPage
	if err := json.Unmarshal(elements[0], &page); err != nil {
		return nil, nil, NewMalformedResponseError(fmt.Sprintf("cannot parse result page: %v", err))
	}
	if page.Items == nil {
		return nil, nil, NewMalformedResponseError("result page has no items field")
	}

	var stats SearchStats
	if err := json.Unmarshal(elements[1], &stats); err != nil {
		return nil, nil, NewMalformedResponseError(fmt.Sprintf("cannot parse stats block: %v", err))
	}
	if stats.Total < 0 {
		return nil, nil, NewMalformedResponseError("stats block has negative total")
	}

	return &page, &stats, nil
}
