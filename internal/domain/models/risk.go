package models

// RiskFactors are the derived, non-persistent signals feeding the
// composite score.
type RiskFactors struct {
	Volatility float64 `json:"volatility"`
	MarketCap  float64 `json:"market_cap"`
	Volume     float64 `json:"volume"`
}

// RiskAssessment is the scored result for one asset.
type RiskAssessment struct {
	AssetID string      `json:"asset_id"`
	Score   int         `json:"score"`
	Band    string      `json:"band"`
	Factors RiskFactors `json:"factors"`
}
