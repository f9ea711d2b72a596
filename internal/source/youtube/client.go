package youtube

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"
)

const (
	SourceID       = "youtube"
	DefaultBaseURL = "https://www.googleapis.com/youtube/v3"

	maxErrorBody = 64 << 10
)

var endpointPattern = regexp.MustCompile(`^[A-Za-z]+$`)

// ValidEndpoint reports whether endpoint names a single Data API resource.
func ValidEndpoint(endpoint string) bool {
	return endpointPattern.MatchString(endpoint)
}

// Config holds YouTube Data API client configuration.
type Config struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
	// HTTPClient overrides the client built from Timeout.
	HTTPClient *http.Client
}

// Client issues GET requests against the Data API. It keeps no state between
// calls and never retries.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	logger     *slog.Logger
}

// New creates a new YouTube client.
func New(cfg Config, logger *slog.Logger) *Client {
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout: cfg.Timeout,
		}
	}
	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	return &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
		apiKey:     cfg.APIKey,
		logger:     logger.With("source", SourceID),
	}
}

// Get performs one GET to {base}/{endpoint} with params and the API key attached
// and returns the JSON body as is.
func (c *Client) Get(ctx context.Context, endpoint string, params url.Values) (json.RawMessage, error) {
	endpoint = strings.Trim(endpoint, "/")
	if !ValidEndpoint(endpoint) {
		return nil, fmt.Errorf("get %q: %w", endpoint, ErrInvalidEndpoint)
	}

	query := url.Values{}
	for k, v := range params {
		query[k] = append([]string(nil), v...)
	}
	query.Set("key", c.apiKey)

	reqURL := c.baseURL + "/" + endpoint + "?" + query.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "TubeAnalytics/1.0")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &RequestFailure{Endpoint: endpoint, Err: fmt.Errorf("execute request: %w", err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		c.logger.Warn("upstream request failed",
			"endpoint", endpoint,
			"status", resp.StatusCode,
			"duration", time.Since(start),
		)
		return nil, &RequestFailure{Endpoint: endpoint, StatusCode: resp.StatusCode, Body: body}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &RequestFailure{Endpoint: endpoint, StatusCode: resp.StatusCode, Err: fmt.Errorf("read response: %w", err)}
	}
	if !json.Valid(body) {
		return nil, fmt.Errorf("decode %s response: %w", endpoint, ErrMalformedResponse)
	}

	c.logger.Debug("upstream request",
		"endpoint", endpoint,
		"status", resp.StatusCode,
		"bytes", len(body),
		"duration", time.Since(start),
	)

	return json.RawMessage(body), nil
}

// list calls Get and splits the items envelope. A missing or empty items array
// yields an empty slice.
func (c *Client) list(ctx context.Context, endpoint string, params url.Values) ([]json.RawMessage, error) {
	body, err := c.Get(ctx, endpoint, params)
	if err != nil {
		return nil, err
	}

	var resp listResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("decode %s envelope: %w", endpoint, ErrMalformedResponse)
	}
	return resp.Items, nil
}
