package market

import (
	"context"
	"errors"
	"fmt"
	"hash/fnv"
	"math/rand"
	"time"

	"CoinPulse/internal/domain/models"
)

// ErrNotFound signals that a requested asset id is absent from the
// catalog. Callers surface it as an explicit not-found state, never an
// empty render.
var ErrNotFound = errors.New("market: asset not found")

const detailDescription = "This is a mock description for the cryptocurrency. " +
	"In a real deployment this would contain detailed information about the " +
	"project, its technology, team, and goals."

// Fetcher serves listings, detail pages and synthesized chart series
// from the in-memory catalog, converting monetary fields into the
// requested display currency.
type Fetcher struct {
	catalog []models.Asset
	byID    map[string]models.Asset
	now     func() time.Time
}

// FetcherOption configures a Fetcher.
type FetcherOption func(*Fetcher)

// WithCatalog replaces the built-in catalog.
func WithCatalog(assets []models.Asset) FetcherOption {
	return func(f *Fetcher) {
		f.catalog = assets
	}
}

// WithClock overrides the time source; tests use this.
func WithClock(now func() time.Time) FetcherOption {
	return func(f *Fetcher) {
		f.now = now
	}
}

// NewFetcher creates a market data fetcher over the built-in catalog.
func NewFetcher(opts ...FetcherOption) *Fetcher {
	f := &Fetcher{
		catalog: defaultCatalog,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(f)
	}
	f.byID = make(map[string]models.Asset, len(f.catalog))
	for _, a := range f.catalog {
		f.byID[a.ID] = a
	}
	return f
}

// Catalog returns the raw base-currency catalog in rank order.
func (f *Fetcher) Catalog() []models.Asset {
	return f.catalog
}

// List returns one page of assets in the display currency and the
// total catalog size.
func (f *Fetcher) List(_ context.Context, currency models.Currency, page, perPage int) ([]models.Asset, int, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = len(f.catalog)
	}

	start := (page - 1) * perPage
	if start >= len(f.catalog) {
		return []models.Asset{}, len(f.catalog), nil
	}
	end := start + perPage
	if end > len(f.catalog) {
		end = len(f.catalog)
	}

	out := make([]models.Asset, 0, end-start)
	for _, a := range f.catalog[start:end] {
		out = append(out, a.Converted(currency))
	}
	return out, len(f.catalog), nil
}

// Detail returns a single asset with its description block, or
// ErrNotFound.
func (f *Fetcher) Detail(_ context.Context, id string, currency models.Currency) (*models.AssetDetail, error) {
	a, ok := f.byID[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return &models.AssetDetail{
		Asset:          a.Converted(currency),
		Description:    detailDescription,
		PriceChange30d: a.PriceChange24h * 0.8,
	}, nil
}

// Chart synthesizes a series of exactly days+1 daily points spanning
// from days ago to now, both endpoints included, strictly ascending.
// The walk is seeded per asset and window so repeated calls agree.
func (f *Fetcher) Chart(_ context.Context, id string, days int, currency models.Currency) (*models.MarketChart, error) {
	a, ok := f.byID[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if days <= 0 {
		return &models.MarketChart{AssetID: id, Days: days}, nil
	}

	rng := rand.New(rand.NewSource(chartSeed(id, days)))
	now := f.now().UnixMilli()
	dayMs := int64(24 * time.Hour / time.Millisecond)

	chart := &models.MarketChart{
		AssetID:    id,
		Days:       days,
		Prices:     make([]models.ChartPoint, 0, days+1),
		MarketCaps: make([]models.ChartPoint, 0, days+1),
		Volumes:    make([]models.ChartPoint, 0, days+1),
	}

	const volatility = 0.05
	price := a.CurrentPrice

	for i := days; i >= 0; i-- {
		ts := now - int64(i)*dayMs

		change := (rng.Float64() - 0.5) * 2 * volatility
		price = price * (1 + change)

		chart.Prices = append(chart.Prices, models.ChartPoint{
			Timestamp: ts,
			Value:     currency.Convert(price),
		})
		chart.MarketCaps = append(chart.MarketCaps, models.ChartPoint{
			Timestamp: ts,
			Value:     currency.Convert(a.MarketCap * (0.9 + rng.Float64()*0.2)),
		})
		chart.Volumes = append(chart.Volumes, models.ChartPoint{
			Timestamp: ts,
			Value:     currency.Convert(a.TotalVolume * (0.8 + rng.Float64()*0.4)),
		})
	}

	return chart, nil
}

func chartSeed(id string, days int) int64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(id))
	return int64(h.Sum64()) + int64(days)
}
