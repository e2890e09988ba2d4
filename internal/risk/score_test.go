package risk

import (
	"testing"

	"CoinPulse/internal/domain/models"
)

func TestScoreLargeCapLowVolatility(t *testing.T) {
	a := models.Asset{
		ID:             "bitcoin",
		PriceChange24h: 2,
		MarketCap:      5e11,
		TotalVolume:    2e10,
	}

	got := Score(a)

	// volatility 0.2, market cap 1-(log10(5e11)-7)/5 = 0.060, volume 0.8
	if got != 26 {
		t.Fatalf("Score = %d, want 26", got)
	}
	if got >= 30 {
		t.Fatalf("large-cap low-volatility asset scored %d, want < 30", got)
	}
	if band := Band(got); band != BandLow {
		t.Fatalf("Band(%d) = %q, want %q", got, band, BandLow)
	}
}

func TestScoreBounds(t *testing.T) {
	hot := models.Asset{PriceChange24h: 95, MarketCap: 1e5, TotalVolume: 0}
	if got := Score(hot); got != 100 {
		t.Fatalf("extreme asset Score = %d, want clamp at 100", got)
	}

	calm := models.Asset{PriceChange24h: 0, MarketCap: 1e12, TotalVolume: 1e12}
	got := Score(calm)
	if got < 0 || got > 100 {
		t.Fatalf("Score = %d, want within [0,100]", got)
	}
}

func TestFactorsZeroMarketCap(t *testing.T) {
	a := models.Asset{PriceChange24h: 3, MarketCap: 0, TotalVolume: 1e6}

	f := Factors(a)
	if f.MarketCap != 1 || f.Volume != 1 {
		t.Fatalf("zero market cap factors = %+v, want MarketCap=1 Volume=1", f)
	}

	// volatility 0.3*0.4 + 1*0.4 + 1*0.2 = 0.72
	if got := Score(a); got != 72 {
		t.Fatalf("Score = %d, want 72", got)
	}
}

func TestFactorsNegativeChangeUsesMagnitude(t *testing.T) {
	up := Factors(models.Asset{PriceChange24h: 5, MarketCap: 1e9, TotalVolume: 1e8})
	down := Factors(models.Asset{PriceChange24h: -5, MarketCap: 1e9, TotalVolume: 1e8})
	if up.Volatility != down.Volatility {
		t.Fatalf("volatility differs by sign: up=%v down=%v", up.Volatility, down.Volatility)
	}
}

func TestBandBoundaries(t *testing.T) {
	cases := []struct {
		score int
		want  string
	}{
		{0, BandLow},
		{29, BandLow},
		{30, BandMedium},
		{69, BandMedium},
		{70, BandHigh},
		{100, BandHigh},
	}
	for _, tc := range cases {
		if got := Band(tc.score); got != tc.want {
			t.Fatalf("Band(%d) = %q, want %q", tc.score, got, tc.want)
		}
	}
}

func TestAssessPackaging(t *testing.T) {
	a := models.Asset{ID: "solana", PriceChange24h: 8, MarketCap: 8e10, TotalVolume: 3e9}

	got := Assess(a)
	if got.AssetID != "solana" {
		t.Fatalf("AssetID = %q, want solana", got.AssetID)
	}
	if got.Score != Score(a) {
		t.Fatalf("Score = %d, want %d", got.Score, Score(a))
	}
	if got.Band != Band(got.Score) {
		t.Fatalf("Band = %q, want %q", got.Band, Band(got.Score))
	}
}
