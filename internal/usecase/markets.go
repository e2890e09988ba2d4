package usecase

import (
	"context"
	"fmt"
	"time"

	"CoinPulse/internal/domain/models"
	"CoinPulse/internal/domain/repository"
	"CoinPulse/internal/format"
	"CoinPulse/internal/market"
	"CoinPulse/internal/risk"
	"CoinPulse/pkg/cache"
	"CoinPulse/pkg/logger"
)

// AssetView is a listed asset annotated with its risk assessment and
// display strings in the selected currency.
type AssetView struct {
	models.Asset
	RiskScore        int    `json:"risk_score"`
	RiskBand         string `json:"risk_band"`
	PriceDisplay     string `json:"price_display"`
	MarketCapDisplay string `json:"market_cap_display"`
	VolumeDisplay    string `json:"volume_display"`
}

// MarketPage is one page of the asset listing.
type MarketPage struct {
	Rows           []AssetView `json:"rows"`
	Total          int         `json:"total"`
	Page           int         `json:"page"`
	PerPage        int         `json:"per_page"`
	Currency       string      `json:"currency"`
	CurrencySymbol string      `json:"currency_symbol"`
}

// DetailView is the single-asset payload with risk attached.
type DetailView struct {
	models.AssetDetail
	Risk           models.RiskAssessment `json:"risk"`
	CurrencySymbol string                `json:"currency_symbol"`
}

// ComparisonResult is the compare payload: per-asset summary rows plus
// the aligned percent-change overlay.
type ComparisonResult struct {
	Days     int                   `json:"days"`
	Currency string                `json:"currency"`
	Assets   []AssetView           `json:"assets"`
	Series   []models.AlignedPoint `json:"series"`
}

// MarketService aggregates the market data fetcher, risk scorer,
// search index and series aligner behind cacheable operations.
type MarketService struct {
	source  repository.MarketSource
	index   *market.Index
	cache   cache.Service
	ttl     time.Duration
	metrics repository.Metrics
	logger  *logger.Logger
}

// NewMarketService creates the aggregation service. ttl bounds how
// long list/chart responses are memoized.
func NewMarketService(
	source repository.MarketSource,
	index *market.Index,
	store cache.Service,
	ttl time.Duration,
	metrics repository.Metrics,
	l *logger.Logger,
) *MarketService {
	return &MarketService{
		source:  source,
		index:   index,
		cache:   store,
		ttl:     ttl,
		metrics: metrics,
		logger:  l,
	}
}

// Overview returns one annotated page of the listing.
func (s *MarketService) Overview(ctx context.Context, currency models.Currency, page, perPage int) (*MarketPage, error) {
	defer s.observe("list_markets", time.Now())

	key := cache.KeyWithParams("markets:list", currency, page, perPage)
	var cached MarketPage
	if err := s.cache.Get(ctx, key, &cached); err == nil {
		s.recordCache("markets", true)
		return &cached, nil
	}
	s.recordCache("markets", false)

	rows, total, err := s.source.List(ctx, currency, page, perPage)
	if err != nil {
		return nil, fmt.Errorf("list markets: %w", err)
	}
	// Risk depends on market-cap magnitude, so it is always scored on
	// base-currency values, not the converted display rows.
	base, _, err := s.source.List(ctx, models.USD, page, perPage)
	if err != nil {
		return nil, fmt.Errorf("list markets base: %w", err)
	}

	views := make([]AssetView, 0, len(rows))
	for i, a := range rows {
		views = append(views, newAssetView(a, base[i]))
	}

	result := &MarketPage{
		Rows:           views,
		Total:          total,
		Page:           page,
		PerPage:        perPage,
		Currency:       string(currency),
		CurrencySymbol: currency.Symbol(),
	}

	if err := s.cache.Set(ctx, key, result, s.ttl); err != nil {
		s.logger.Warn("market page cache store failed", logger.Error(err))
	}
	return result, nil
}

// Detail returns a single asset with description and risk, or
// market.ErrNotFound.
func (s *MarketService) Detail(ctx context.Context, id string, currency models.Currency) (*DetailView, error) {
	defer s.observe("asset_detail", time.Now())

	detail, err := s.source.Detail(ctx, id, currency)
	if err != nil {
		return nil, err
	}
	base, err := s.source.Detail(ctx, id, models.USD)
	if err != nil {
		return nil, err
	}

	return &DetailView{
		AssetDetail:    *detail,
		Risk:           risk.Assess(base.Asset),
		CurrencySymbol: currency.Symbol(),
	}, nil
}

// Risk assesses one asset on base-currency values.
func (s *MarketService) Risk(ctx context.Context, id string) (*models.RiskAssessment, error) {
	base, err := s.source.Detail(ctx, id, models.USD)
	if err != nil {
		return nil, err
	}
	assessment := risk.Assess(base.Asset)
	return &assessment, nil
}

// Chart returns the synthesized series for one asset and window,
// memoized for the service TTL.
func (s *MarketService) Chart(ctx context.Context, id string, days int, currency models.Currency) (*models.MarketChart, error) {
	defer s.observe("asset_chart", time.Now())

	key := cache.KeyWithParams("markets:chart", id, days, currency)
	var cached models.MarketChart
	if err := s.cache.Get(ctx, key, &cached); err == nil {
		s.recordCache("markets", true)
		return &cached, nil
	}
	s.recordCache("markets", false)

	chart, err := s.source.Chart(ctx, id, days, currency)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, key, chart, s.ttl); err != nil {
		s.logger.Warn("chart cache store failed", logger.Error(err))
	}
	return chart, nil
}

// Search matches the catalog. Queries below the index minimum come
// back empty; that is handled input, not an error.
func (s *MarketService) Search(_ context.Context, query string, limit int) []models.SearchResult {
	defer s.observe("search", time.Now())
	return s.index.Search(query, limit)
}

// Compare fetches each asset's price series for the window, aligns
// them to percent change from first point, and returns summary rows
// alongside. Works for any number of ids; the comparison UI enforces
// its own cap.
func (s *MarketService) Compare(ctx context.Context, ids []string, days int, currency models.Currency) (*ComparisonResult, error) {
	defer s.observe("compare", time.Now())

	series := make([]market.Series, 0, len(ids))
	assets := make([]AssetView, 0, len(ids))

	for _, id := range ids {
		chart, err := s.Chart(ctx, id, days, currency)
		if err != nil {
			return nil, err
		}
		series = append(series, market.Series{AssetID: id, Points: chart.Prices})

		detail, err := s.source.Detail(ctx, id, currency)
		if err != nil {
			return nil, err
		}
		base, err := s.source.Detail(ctx, id, models.USD)
		if err != nil {
			return nil, err
		}
		assets = append(assets, newAssetView(detail.Asset, base.Asset))
	}

	return &ComparisonResult{
		Days:     days,
		Currency: string(currency),
		Assets:   assets,
		Series:   market.Align(series),
	}, nil
}

func newAssetView(display, base models.Asset) AssetView {
	assessment := risk.Assess(base)
	price := display.CurrentPrice
	marketCap := display.MarketCap
	volume := display.TotalVolume
	return AssetView{
		Asset:            display,
		RiskScore:        assessment.Score,
		RiskBand:         assessment.Band,
		PriceDisplay:     format.Amount(&price, false),
		MarketCapDisplay: format.Amount(&marketCap, true),
		VolumeDisplay:    format.Amount(&volume, true),
	}
}

func (s *MarketService) observe(op string, start time.Time) {
	if s.metrics != nil {
		s.metrics.RecordLatency(op, time.Since(start).Seconds())
	}
}

func (s *MarketService) recordCache(scope string, hit bool) {
	if s.metrics == nil {
		return
	}
	if hit {
		s.metrics.RecordCacheHit(scope)
	} else {
		s.metrics.RecordCacheMiss(scope)
	}
}
