package repository

import (
	"context"

	"CoinPulse/internal/domain/models"
)

// MarketSource provides the normalized asset catalog, detail pages and
// chart series, already converted to the requested display currency.
type MarketSource interface {
	List(ctx context.Context, currency models.Currency, page, perPage int) ([]models.Asset, int, error)
	Detail(ctx context.Context, id string, currency models.Currency) (*models.AssetDetail, error)
	Chart(ctx context.Context, id string, days int, currency models.Currency) (*models.MarketChart, error)
}

// EventSource provides normalized calendar events.
type EventSource interface {
	Events(ctx context.Context) ([]models.CalendarEvent, error)
}

// Metrics records operational counters for the data layer.
type Metrics interface {
	RecordCacheHit(scope string)
	RecordCacheMiss(scope string)
	RecordUpstream(source, outcome string)
	RecordFallback()
	RecordLatency(op string, seconds float64)
}
