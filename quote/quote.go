// Package quote implements the price-lookup collaborator: a small HTTP
// client for a market-data quote service. Lookups are idempotent, time
// bounded, and every failure surfaces as a price-unavailable outcome rather
// than a panic or an uncaught error.
package quote

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/PaesslerAG/jsonpath"
	"github.com/etnz/stocktrack"
	"github.com/go-resty/resty/v2"
)

// pricePath extracts the current price from the quote payload:
//
//	{"quoteResponse": {"result": [{"symbol": "AAPL", "regularMarketPrice": 189.91, ...}]}}
const pricePath = "$.quoteResponse.result[0].regularMarketPrice"

type Client struct {
	client *resty.Client
}

// New creates a quote client from the configuration.
func New(cfg Config) *Client {
	client := resty.New().
		SetDebug(cfg.Debug).
		SetTimeout(cfg.Timeout).
		SetBaseURL(cfg.URL)
	if cfg.Token != "" {
		client.SetQueryParam("token", cfg.Token)
	}
	return &Client{client: client}
}

// Price returns the current price for a ticker, rounded to 2 decimal places.
// Transport errors, bad statuses and unreadable payloads all wrap
// stocktrack.ErrPriceUnavailable.
func (c *Client) Price(ctx context.Context, ticker string) (stocktrack.Money, error) {
	resp, err := c.client.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json").
		SetQueryParam("symbols", ticker).
		Get("/v7/finance/quote")
	if err != nil {
		return stocktrack.Money{}, fmt.Errorf("%w for %s: %v", stocktrack.ErrPriceUnavailable, ticker, err)
	}
	if resp.StatusCode() != 200 {
		return stocktrack.Money{}, fmt.Errorf("%w for %s: quote service replied %s", stocktrack.ErrPriceUnavailable, ticker, resp.Status())
	}

	var jobj any
	if err := json.Unmarshal(resp.Body(), &jobj); err != nil {
		return stocktrack.Money{}, fmt.Errorf("%w for %s: unreadable payload: %v", stocktrack.ErrPriceUnavailable, ticker, err)
	}

	jval, err := jsonpath.Get(pricePath, jobj)
	if err != nil {
		return stocktrack.Money{}, fmt.Errorf("%w for %s: no quote in payload: %v", stocktrack.ErrPriceUnavailable, ticker, err)
	}
	// jsonpath may yield a single value or a list of one.
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}
	val, ok := jval.(float64)
	if !ok {
		return stocktrack.Money{}, fmt.Errorf("%w for %s: quote is not a number: %v", stocktrack.ErrPriceUnavailable, ticker, jval)
	}
	if val < 0 {
		return stocktrack.Money{}, fmt.Errorf("%w for %s: negative quote %v", stocktrack.ErrPriceUnavailable, ticker, val)
	}

	return stocktrack.M(val).Round2(), nil
}

// LookupFunc adapts the client to the valuation engine's PriceLookup
// capability.
func (c *Client) LookupFunc(ctx context.Context) stocktrack.PriceLookup {
	return func(ticker string) (stocktrack.Money, error) {
		return c.Price(ctx, ticker)
	}
}
