package ratesapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/easyfx/fx_backend/internal/core/ports/providers"
	"github.com/shopspring/decimal"
)

// ErrMissingAPIKey is returned when no provider credential is configured.
var ErrMissingAPIKey = errors.New("exchange rates API key is not configured")

const maxErrorBodyBytes = 500

// Client talks to an exchangeratesapi-style provider: a GET endpoint taking
// access_key, base and symbols query parameters and answering
// {"success": bool, "rates": {code: number}, "error": {...}}.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

var _ providers.RatesProvider = (*Client)(nil)

// NewClient creates a provider client. The timeout bounds every fetch.
func NewClient(baseURL, apiKey string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: timeout},
	}
}

type apiError struct {
	Code int    `json:"code"`
	Type string `json:"type"`
	Info string `json:"info"`
}

type ratesResponse struct {
	Success bool                       `json:"success"`
	Rates   map[string]decimal.Decimal `json:"rates"`
	Error   *apiError                  `json:"error"`
}

// FetchRates requests rates from base against all symbols in one call.
func (c *Client) FetchRates(ctx context.Context, base string, symbols []string) (map[string]decimal.Decimal, error) {
	if c.apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build provider request: %w", err)
	}

	q := req.URL.Query()
	q.Set("access_key", c.apiKey)
	q.Set("base", base)
	q.Set("symbols", strings.Join(symbols, ","))
	req.URL.RawQuery = q.Encode()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("provider request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
		return nil, fmt.Errorf("provider returned status %d: %s", resp.StatusCode, string(body))
	}

	var parsed ratesResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("malformed provider response: %w", err)
	}

	if !parsed.Success {
		if parsed.Error != nil {
			return nil, fmt.Errorf("provider reported failure: %s (%s)", parsed.Error.Type, parsed.Error.Info)
		}
		return nil, errors.New("provider reported failure")
	}

	return parsed.Rates, nil
}

// Ping verifies the provider endpoint is reachable with the configured key.
// Used by the readiness check only; the response body is not inspected.
func (c *Client) Ping(ctx context.Context) error {
	if c.apiKey == "" {
		return ErrMissingAPIKey
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL, nil)
	if err != nil {
		return fmt.Errorf("failed to build provider request: %w", err)
	}

	q := req.URL.Query()
	q.Set("access_key", c.apiKey)
	req.URL.RawQuery = q.Encode()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("provider unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("provider returned status %d", resp.StatusCode)
	}
	return nil
}
