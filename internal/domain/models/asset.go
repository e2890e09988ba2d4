package models

// Asset is one catalog entry. All monetary fields are stored in the
// base currency; MaxSupply is nil for unbounded tokens.
type Asset struct {
	ID                string   `json:"id"`
	Name              string   `json:"name"`
	Symbol            string   `json:"symbol"`
	Image             string   `json:"image"`
	CurrentPrice      float64  `json:"current_price"`
	MarketCap         float64  `json:"market_cap"`
	MarketCapRank     int      `json:"market_cap_rank"`
	TotalVolume       float64  `json:"total_volume"`
	CirculatingSupply float64  `json:"circulating_supply"`
	TotalSupply       float64  `json:"total_supply"`
	MaxSupply         *float64 `json:"max_supply,omitempty"`
	PriceChange24h    float64  `json:"price_change_percentage_24h"`
	PriceChange7d     float64  `json:"price_change_percentage_7d"`
}

// Converted returns a copy with monetary fields in the display currency.
// Ranks, percentages and supply counts pass through unconverted.
func (a Asset) Converted(c Currency) Asset {
	out := a
	out.CurrentPrice = c.Convert(a.CurrentPrice)
	out.MarketCap = c.Convert(a.MarketCap)
	out.TotalVolume = c.Convert(a.TotalVolume)
	return out
}

// AssetDetail is the single-asset detail payload.
type AssetDetail struct {
	Asset
	Description    string  `json:"description"`
	PriceChange30d float64 `json:"price_change_percentage_30d"`
}

// SearchResult is a catalog match for autocomplete and full search.
type SearchResult struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Symbol        string `json:"symbol"`
	MarketCapRank int    `json:"market_cap_rank"`
	Thumb         string `json:"thumb"`
}

// ChartPoint is one (timestamp, value) sample; timestamps are unix
// milliseconds.
type ChartPoint struct {
	Timestamp int64   `json:"t"`
	Value     float64 `json:"v"`
}

// MarketChart holds the synthesized series for one asset and window.
type MarketChart struct {
	AssetID    string       `json:"asset_id"`
	Days       int          `json:"days"`
	Prices     []ChartPoint `json:"prices"`
	MarketCaps []ChartPoint `json:"market_caps"`
	Volumes    []ChartPoint `json:"volumes"`
}

// AlignedPoint is one combined comparison record: the timestamp comes
// from the first series, values are percent change from each series's
// own first point.
type AlignedPoint struct {
	Timestamp int64              `json:"t"`
	Changes   map[string]float64 `json:"changes"`
}
