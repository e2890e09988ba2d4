// Package risk derives a bounded composite risk score from volatility,
// market-cap magnitude and liquidity signals.
package risk

import (
	"math"

	"CoinPulse/internal/domain/models"
)

// Band labels for display. Boundaries are half-open: 30 and 70 belong
// to the higher band.
const (
	BandLow    = "low"
	BandMedium = "medium"
	BandHigh   = "high"
)

const (
	volatilityWeight = 0.4
	marketCapWeight  = 0.4
	volumeWeight     = 0.2
)

// Factors computes the raw signals feeding the score. A non-positive
// market cap would make the log-scaled factor non-finite, so it is
// pinned to 1 (maximum risk contribution) for both the market-cap and
// volume factors instead of letting NaN propagate.
func Factors(a models.Asset) models.RiskFactors {
	f := models.RiskFactors{
		Volatility: math.Abs(a.PriceChange24h) / 10,
	}

	if a.MarketCap <= 0 {
		f.MarketCap = 1
		f.Volume = 1
		return f
	}

	f.MarketCap = 1 - (math.Log10(a.MarketCap)-7)/5

	volumeRatio := a.TotalVolume / a.MarketCap
	f.Volume = 1 - math.Min(volumeRatio*5, 1)

	return f
}

// Score combines the weighted factors into an integer in [0,100].
func Score(a models.Asset) int {
	f := Factors(a)
	score := (f.Volatility*volatilityWeight + f.MarketCap*marketCapWeight + f.Volume*volumeWeight) * 100

	rounded := int(math.Round(score))
	if rounded < 0 {
		return 0
	}
	if rounded > 100 {
		return 100
	}
	return rounded
}

// Band maps a score to its display band.
func Band(score int) string {
	switch {
	case score < 30:
		return BandLow
	case score < 70:
		return BandMedium
	default:
		return BandHigh
	}
}

// Assess scores one asset and packages the result for display.
func Assess(a models.Asset) models.RiskAssessment {
	score := Score(a)
	return models.RiskAssessment{
		AssetID: a.ID,
		Score:   score,
		Band:    Band(score),
		Factors: Factors(a),
	}
}
