// Package calendar serves provider calendar events through a time-boxed
// cache with a static fallback dataset.
package calendar

import (
	"context"
	"sync"
	"time"

	"CoinPulse/internal/domain/models"
	"CoinPulse/internal/domain/repository"
	"CoinPulse/internal/service/coinmarketcal"
	"CoinPulse/pkg/cache"
	"CoinPulse/pkg/logger"
)

const snapshotKey = "events:snapshot"

// Fetcher is the upstream the gateway pulls raw events from.
type Fetcher interface {
	Events(ctx context.Context) ([]coinmarketcal.ProviderEvent, error)
}

// snapshot is the cached event set. It is replaced wholesale, never
// partially updated.
type snapshot struct {
	Events    []models.CalendarEvent `json:"events"`
	FetchedAt time.Time              `json:"fetched_at"`
}

// Gateway is the calendar event source. The cache is shared process
// state; the mutex keeps concurrent callers from issuing redundant
// upstream fetches when the cache goes stale.
type Gateway struct {
	fetcher Fetcher
	cache   cache.Service
	ttl     time.Duration
	metrics repository.Metrics
	logger  *logger.Logger

	mu  sync.Mutex
	now func() time.Time
}

// GatewayOption configures a Gateway.
type GatewayOption func(*Gateway)

// WithClock overrides the time source; tests use this.
func WithClock(now func() time.Time) GatewayOption {
	return func(g *Gateway) {
		g.now = now
	}
}

// WithMetrics attaches a metrics recorder.
func WithMetrics(m repository.Metrics) GatewayOption {
	return func(g *Gateway) {
		g.metrics = m
	}
}

// NewGateway creates an event gateway over the given upstream fetcher
// and cache. ttl is how long a fetched (or fallen-back) event set is
// served without a new upstream attempt.
func NewGateway(fetcher Fetcher, store cache.Service, ttl time.Duration, l *logger.Logger, opts ...GatewayOption) *Gateway {
	g := &Gateway{
		fetcher: fetcher,
		cache:   store,
		ttl:     ttl,
		logger:  l,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Events returns the current event set. Within the cache TTL no
// upstream call happens; on upstream failure (including a missing API
// key) the static dataset is served and cached for the full TTL so a
// failing endpoint is not hammered. Upstream failure is never surfaced
// to the caller.
func (g *Gateway) Events(ctx context.Context) ([]models.CalendarEvent, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	var snap snapshot
	if err := g.cache.Get(ctx, snapshotKey, &snap); err == nil {
		g.recordCacheHit()
		return snap.Events, nil
	}
	g.recordCacheMiss()

	now := g.now()
	events, err := g.fetch(ctx, now)
	if err != nil {
		// Explicit fallback branch: the failed fetch result is cached
		// too, so the provider gets one attempt per TTL window.
		g.logger.Warn("calendar fetch failed, serving static dataset", logger.Error(err))
		if g.metrics != nil {
			g.metrics.RecordUpstream("coinmarketcal", "error")
			g.metrics.RecordFallback()
		}
		events = Fallback(now)
	} else if g.metrics != nil {
		g.metrics.RecordUpstream("coinmarketcal", "ok")
	}

	if err := g.cache.Set(ctx, snapshotKey, snapshot{Events: events, FetchedAt: now}, g.ttl); err != nil {
		g.logger.Warn("calendar cache store failed", logger.Error(err))
	}

	return events, nil
}

// fetch is the explicit upstream step: it either returns normalized
// events or an error, and makes no fallback decision itself.
func (g *Gateway) fetch(ctx context.Context, now time.Time) ([]models.CalendarEvent, error) {
	raw, err := g.fetcher.Events(ctx)
	if err != nil {
		return nil, err
	}
	return Normalize(raw, now), nil
}

func (g *Gateway) recordCacheHit() {
	if g.metrics != nil {
		g.metrics.RecordCacheHit("events")
	}
}

func (g *Gateway) recordCacheMiss() {
	if g.metrics != nil {
		g.metrics.RecordCacheMiss("events")
	}
}
