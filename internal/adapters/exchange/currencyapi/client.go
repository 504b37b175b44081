// Package currencyapi implements the exchange rate port against a
// currencyapi.com style provider.
package currencyapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/curexo/orders_backend/internal/apperrors"
	"github.com/curexo/orders_backend/internal/core/domain"
	portssvc "github.com/curexo/orders_backend/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

// Client fetches live exchange rates over HTTP. One outbound request per
// lookup; no retries, no caching.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a rate client for the given provider endpoint. The timeout
// bounds the whole round trip since the provider contract defines none.
func NewClient(baseURL, apiKey string, timeout time.Duration, logger *slog.Logger) portssvc.ExchangeRateSvcFacade {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

// rateQuote is a single quoted value in the provider payload.
type rateQuote struct {
	Value decimal.Decimal `json:"value"`
}

// latestResponse is the provider payload shape:
//
//	{ "data": { "<CODE>": { "value": <number> } }, "success"?: bool, "error"?: { "info": string } }
//
// Success is a pointer because the field is optional and absence means success.
type latestResponse struct {
	Data    map[string]rateQuote `json:"data"`
	Success *bool                `json:"success,omitempty"`
	Error   struct {
		Info string `json:"info"`
	} `json:"error"`
}

// GetRate returns the multiplicative rate from one currency to another.
// Matching codes short-circuit to 1 without touching the network.
func (c *Client) GetRate(ctx context.Context, from, to domain.CurrencyCode) (decimal.Decimal, error) {
	if from == to {
		return decimal.NewFromInt(1), nil
	}

	params := url.Values{}
	params.Set("apikey", c.apiKey)
	params.Set("base_currency", from.String())
	params.Set("currencies", to.String())
	requestURL := c.baseURL + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: building rate request: %v", apperrors.ErrConversion, err)
	}

	c.logger.Info("Fetching exchange rate",
		slog.String("from", from.String()),
		slog.String("to", to.String()),
	)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// Transport-level failure: the provider never answered.
		return decimal.Zero, fmt.Errorf("%w: %v", apperrors.ErrServiceUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: reading rate response: %v", apperrors.ErrConversion, err)
	}

	if resp.StatusCode != http.StatusOK {
		return decimal.Zero, &apperrors.UpstreamError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	var payload latestResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return decimal.Zero, fmt.Errorf("%w: decoding rate response: %v", apperrors.ErrConversion, err)
	}

	if payload.Success != nil && !*payload.Success {
		info := payload.Error.Info
		if info == "" {
			info = "Currency API error"
		}
		return decimal.Zero, &apperrors.UpstreamError{StatusCode: http.StatusBadRequest, Body: info}
	}

	quote, ok := payload.Data[to.String()]
	if !ok {
		return decimal.Zero, apperrors.ErrRateNotFound
	}

	return quote.Value, nil
}
