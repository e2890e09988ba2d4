package di

import (
	"fmt"

	"CoinPulse/internal/calendar"
	"CoinPulse/internal/domain/repository"
	"CoinPulse/internal/handler/api"
	"CoinPulse/internal/market"
	"CoinPulse/internal/service/coinmarketcal"
	"CoinPulse/internal/usecase"
	"CoinPulse/pkg/cache"
	"CoinPulse/pkg/config"
	xhttp "CoinPulse/pkg/http"
	"CoinPulse/pkg/logger"
	"CoinPulse/pkg/metrics"
	"CoinPulse/pkg/server"
)

// ProvideLogger creates the application logger from config.
func ProvideLogger(cfg *config.Config) (*logger.Logger, error) {
	l, err := logger.New(&logger.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Output: cfg.Logging.Output,
	})
	if err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}
	return l, nil
}

// ProvideMetrics creates the Prometheus metrics recorder.
func ProvideMetrics() repository.Metrics {
	return metrics.New()
}

// ProvideCache selects the cache backend from config.
func ProvideCache(cfg *config.Config) (cache.Service, error) {
	switch cfg.Cache.Backend {
	case "redis":
		return newRedisCache(cfg)
	case "layered":
		rc, err := newRedisCache(cfg)
		if err != nil {
			return nil, err
		}
		return cache.NewLayeredCache(rc, cache.WithMemoryMaxSize(cfg.Cache.MemoryMaxSize)), nil
	default:
		return cache.NewMemoryCache(cache.WithMemoryMaxSize(cfg.Cache.MemoryMaxSize)), nil
	}
}

func newRedisCache(cfg *config.Config) (*cache.RedisCache, error) {
	rc, err := cache.NewRedisCache(
		cache.WithRedisHost(cfg.Cache.Redis.Host),
		cache.WithRedisPort(cfg.Cache.Redis.Port),
		cache.WithRedisPassword(cfg.Cache.Redis.Password),
		cache.WithRedisDB(cfg.Cache.Redis.DB),
		cache.WithRedisPrefix(cfg.Cache.Redis.Prefix),
	)
	if err != nil {
		return nil, fmt.Errorf("redis cache: %w", err)
	}
	return rc, nil
}

// ProvideMarketSource creates the catalog-backed market data fetcher.
func ProvideMarketSource() repository.MarketSource {
	return market.NewFetcher()
}

// ProvideSearchIndex builds the search index over the default catalog.
func ProvideSearchIndex() *market.Index {
	return market.NewIndex(market.NewFetcher().Catalog())
}

// ProvideEventSource creates the calendar gateway over the CoinMarketCal
// client. An empty API key leaves the gateway in fallback mode.
func ProvideEventSource(
	cfg *config.Config,
	store cache.Service,
	m repository.Metrics,
	l *logger.Logger,
) repository.EventSource {
	client := coinmarketcal.New(cfg.Calendar.BaseURL, cfg.Calendar.APIKey, cfg.Calendar.Timeout)
	return calendar.NewGateway(client, store, cfg.Calendar.CacheTTL, l, calendar.WithMetrics(m))
}

// ProvideMarketService creates the aggregation service.
func ProvideMarketService(
	source repository.MarketSource,
	index *market.Index,
	store cache.Service,
	cfg *config.Config,
	m repository.Metrics,
	l *logger.Logger,
) *usecase.MarketService {
	return usecase.NewMarketService(source, index, store, cfg.Cache.MarketTTL, m, l)
}

// ProvideHandler composes the HTTP handlers.
func ProvideHandler(
	l *logger.Logger,
	service *usecase.MarketService,
	events repository.EventSource,
) xhttp.Handler {
	return xhttp.Handlers{
		api.NewMarketsHandler(l, service),
		api.NewEventsHandler(l, events),
	}
}

// ProvideApp creates the application server.
func ProvideApp(
	cfg *config.Config,
	l *logger.Logger,
	handler xhttp.Handler,
	store cache.Service,
) *server.App {
	return server.New(cfg, l, handler, store)
}
