// Package client implements the Salesforce REST API client: request
// building, object CRUD, schema describe and lazily paginated queries.
//
// Every operation takes the session token explicitly; the client itself
// holds no session state and is safe to share across calls with distinct
// tokens.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Prometheus metrics for API client operations.
var (
	sfRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "sforce_requests_total",
		Help: "Total API requests by endpoint and status",
	}, []string{"endpoint", "status"})

	sfRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "sforce_request_duration_seconds",
		Help:    "API request duration in seconds by endpoint",
		Buckets: []float64{0.1, 0.5, 1, 2, 5, 10},
	}, []string{"endpoint"})

	sfQueryPagesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "sforce_query_pages_total",
		Help: "Total query result pages fetched",
	})
)

// Record is a single API record with canonical (kebab-case) keys.
type Record map[string]any

// Client executes request descriptors against a Salesforce instance.
type Client struct {
	httpClient *http.Client
	config     Config
	logger     zerolog.Logger
}

// Config holds the client configuration.
type Config struct {
	// APIVersion selects the REST API version path segment, e.g. "v59.0".
	APIVersion string

	// Timeout bounds each individual round trip.
	Timeout time.Duration
}

// DefaultConfig returns a safe default configuration.
func DefaultConfig() Config {
	return Config{
		APIVersion: "v59.0",
		Timeout:    30 * time.Second,
	}
}

// New creates a new API client.
func New(cfg Config) (*Client, error) {
	if cfg.APIVersion == "" {
		return nil, fmt.Errorf("api version is required")
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}

	logger := log.With().Str("component", "sforce-client").Logger()

	return &Client{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		config: cfg,
		logger: logger,
	}, nil
}

// basePath returns the versioned REST API prefix.
func (c *Client) basePath() string {
	return "/services/data/" + c.config.APIVersion
}

// Do dispatches a request descriptor and returns the raw response body.
// Non-2xx responses are returned as *APIError without retry or
// interpretation.
func (c *Client) Do(ctx context.Context, req *Request) ([]byte, error) {
	callID := uuid.NewString()

	u, err := url.Parse(req.URL)
	if err != nil {
		return nil, fmt.Errorf("parse request url: %w", err)
	}
	if len(req.Query) > 0 {
		q := u.Query()
		for k, vs := range req.Query {
			for _, v := range vs {
				q.Add(k, v)
			}
		}
		u.RawQuery = q.Encode()
	}
	endpoint := u.Path

	startTime := time.Now()
	defer func() {
		sfRequestDuration.WithLabelValues(endpoint).Observe(time.Since(startTime).Seconds())
	}()

	var bodyReader io.Reader
	if req.Body != nil {
		switch b := req.Body.(type) {
		case []byte:
			bodyReader = bytes.NewReader(b)
		case string:
			bodyReader = strings.NewReader(b)
		default:
			data, err := json.Marshal(req.Body)
			if err != nil {
				return nil, fmt.Errorf("marshal request body: %w", err)
			}
			bodyReader = bytes.NewReader(data)
		}
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, u.String(), bodyReader)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	httpReq.Header = req.Header.Clone()
	if httpReq.Header == nil {
		httpReq.Header = make(http.Header)
	}
	if req.Body != nil && httpReq.Header.Get("Content-Type") == "" {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	httpReq.Header.Set("Sforce-Call-Id", callID)

	c.logger.Debug().
		Str("endpoint", endpoint).
		Str("method", req.Method).
		Str("call_id", callID).
		Msg("Executing API request")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		c.logger.Error().Err(err).Str("endpoint", endpoint).Msg("HTTP request failed")
		sfRequestsTotal.WithLabelValues(endpoint, "network_error").Inc()
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}

	sfRequestsTotal.WithLabelValues(endpoint, strconv.Itoa(resp.StatusCode)).Inc()

	if resp.StatusCode >= 400 {
		c.logger.Warn().
			Str("endpoint", endpoint).
			Int("status", resp.StatusCode).
			Str("call_id", callID).
			Msg("API request error")
		return nil, &APIError{
			StatusCode: resp.StatusCode,
			Endpoint:   endpoint,
			Body:       body,
		}
	}

	c.logger.Debug().
		Str("endpoint", endpoint).
		Int("status", resp.StatusCode).
		Dur("duration", time.Since(startTime)).
		Msg("API request complete")

	return body, nil
}

// doJSON dispatches a request and decodes the response body into a generic
// map. Empty bodies (e.g. 204 responses) yield a nil map.
func (c *Client) doJSON(ctx context.Context, req *Request) (map[string]any, error) {
	body, err := c.Do(ctx, req)
	if err != nil {
		return nil, err
	}
	if len(body) == 0 {
		return nil, nil
	}
	var m map[string]any
	if err := json.Unmarshal(body, &m); err != nil {
		return nil, fmt.Errorf("decode response body: %w", err)
	}
	return m, nil
}

// SetHTTPClient sets a custom HTTP client (for testing).
func (c *Client) SetHTTPClient(client *http.Client) {
	c.httpClient = client
}
