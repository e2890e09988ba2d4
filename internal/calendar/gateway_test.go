package calendar

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"CoinPulse/internal/service/coinmarketcal"
	"CoinPulse/pkg/cache"
	"CoinPulse/pkg/logger"
)

type stubFetcher struct {
	calls  int
	events []coinmarketcal.ProviderEvent
	err    error
}

func (s *stubFetcher) Events(context.Context) ([]coinmarketcal.ProviderEvent, error) {
	s.calls++
	return s.events, s.err
}

func providerEvent(id, title, date string, categories ...string) coinmarketcal.ProviderEvent {
	var e coinmarketcal.ProviderEvent
	e.ID = json.Number(id)
	e.Title.En = title
	e.DateEvent = date
	e.Categories = categories
	return e
}

func TestEventsFallbackOnMissingKey(t *testing.T) {
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	fetcher := &stubFetcher{err: coinmarketcal.ErrNoAPIKey}
	g := NewGateway(fetcher, cache.NewMemoryCache(), time.Hour, logger.Nop(),
		WithClock(func() time.Time { return now }))

	events, err := g.Events(context.Background())
	if err != nil {
		t.Fatalf("Events: %v", err)
	}
	if len(events) != 10 {
		t.Fatalf("fallback events = %d, want 10", len(events))
	}

	// IsUpcoming is relative to the fixed clock, not the dataset.
	var upcoming int
	for _, e := range events {
		if e.IsUpcoming != e.Date.After(now) {
			t.Fatalf("event %s IsUpcoming = %v, date %v", e.ID, e.IsUpcoming, e.Date)
		}
		if e.IsUpcoming {
			upcoming++
		}
	}
	if upcoming == 0 || upcoming == len(events) {
		t.Fatalf("upcoming split = %d of %d, want a mix for mid-2024 clock", upcoming, len(events))
	}
}

func TestEventsCachedWithinTTL(t *testing.T) {
	fetcher := &stubFetcher{events: []coinmarketcal.ProviderEvent{
		providerEvent("1", "Mainnet Launch", "2026-09-01T00:00:00Z", "Release"),
	}}
	g := NewGateway(fetcher, cache.NewMemoryCache(), time.Hour, logger.Nop())
	ctx := context.Background()

	first, err := g.Events(ctx)
	if err != nil {
		t.Fatalf("Events: %v", err)
	}
	second, err := g.Events(ctx)
	if err != nil {
		t.Fatalf("Events: %v", err)
	}

	if fetcher.calls != 1 {
		t.Fatalf("upstream calls = %d, want 1 within TTL", fetcher.calls)
	}
	if len(first) != 1 || len(second) != 1 || first[0].Title != second[0].Title {
		t.Fatalf("cached result diverged: %+v vs %+v", first, second)
	}
}

func TestEventsRefetchAfterTTL(t *testing.T) {
	fetcher := &stubFetcher{events: []coinmarketcal.ProviderEvent{
		providerEvent("1", "Token Listing", "2026-09-01T00:00:00Z", "Exchange Listing"),
	}}
	g := NewGateway(fetcher, cache.NewMemoryCache(), time.Nanosecond, logger.Nop())
	ctx := context.Background()

	if _, err := g.Events(ctx); err != nil {
		t.Fatalf("Events: %v", err)
	}
	time.Sleep(time.Millisecond)
	if _, err := g.Events(ctx); err != nil {
		t.Fatalf("Events: %v", err)
	}

	if fetcher.calls != 2 {
		t.Fatalf("upstream calls = %d, want 2 across TTL expiry", fetcher.calls)
	}
}

func TestEventsFailureCachedForFullTTL(t *testing.T) {
	fetcher := &stubFetcher{err: errors.New("upstream down")}
	g := NewGateway(fetcher, cache.NewMemoryCache(), time.Hour, logger.Nop())
	ctx := context.Background()

	if _, err := g.Events(ctx); err != nil {
		t.Fatalf("Events must not surface upstream failure: %v", err)
	}
	if _, err := g.Events(ctx); err != nil {
		t.Fatalf("Events: %v", err)
	}

	if fetcher.calls != 1 {
		t.Fatalf("upstream calls = %d, want one attempt per TTL window", fetcher.calls)
	}
}
