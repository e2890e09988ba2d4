// Package coinmarketcal is a minimal client for the CoinMarketCal
// events API. It only reports what the provider said; normalization
// and fallback policy live with the calendar gateway.
package coinmarketcal

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	xhttp "CoinPulse/pkg/http"
)

// ErrNoAPIKey signals that no credential is configured. This is the
// documented way to run in fallback-only mode, not a failure.
var ErrNoAPIKey = errors.New("coinmarketcal: api key not configured")

// ProviderEvent is one raw event from the provider envelope.
type ProviderEvent struct {
	ID    json.Number `json:"id"`
	Title struct {
		En string `json:"en"`
	} `json:"title"`
	Description struct {
		En string `json:"en"`
	} `json:"description"`
	DateEvent   string   `json:"date_event"`
	Categories  []string `json:"categories"`
	Coins       []coin   `json:"coins"`
	Proof       string   `json:"proof"`
	CreatedDate string   `json:"created_date"`
}

type coin struct {
	Slug string `json:"slug"`
}

// CoinSlugs returns the related asset identifiers.
func (e ProviderEvent) CoinSlugs() []string {
	out := make([]string, 0, len(e.Coins))
	for _, c := range e.Coins {
		out = append(out, c.Slug)
	}
	return out
}

type envelope struct {
	Body []ProviderEvent `json:"body"`
}

// Client calls the CoinMarketCal HTTP API.
type Client struct {
	baseURL string
	apiKey  string
	client  *xhttp.Client
}

// New creates a CoinMarketCal client. An empty apiKey is allowed; every
// fetch then returns ErrNoAPIKey.
func New(baseURL, apiKey string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		client:  xhttp.NewClient(xhttp.WithTimeout(timeout)),
	}
}

// Events fetches the raw provider events.
func (c *Client) Events(ctx context.Context) ([]ProviderEvent, error) {
	if c.apiKey == "" {
		return nil, ErrNoAPIKey
	}

	var env envelope
	err := c.client.SendAndParse(ctx, &xhttp.RequestOptions{
		Method: "GET",
		URL:    c.baseURL + "/events",
		Headers: map[string]string{
			"x-api-key": c.apiKey,
			"Accept":    "application/json",
		},
	}, &env)
	if err != nil {
		return nil, fmt.Errorf("fetch events: %w", err)
	}

	return env.Body, nil
}
