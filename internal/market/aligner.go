package market

import "CoinPulse/internal/domain/models"

// Series is one asset's chart series handed to Align.
type Series struct {
	AssetID string
	Points  []models.ChartPoint
}

// Align truncates the given series to their common length and rebases
// each one to percent change from its own first point, so assets with
// very different absolute prices overlay comparably. Timestamps are
// taken from the first series. A series whose first value is zero or
// negative reports 0% at every index instead of being excluded, so the
// overlay keeps one line per requested asset.
func Align(series []Series) []models.AlignedPoint {
	if len(series) == 0 {
		return []models.AlignedPoint{}
	}

	minLength := len(series[0].Points)
	for _, s := range series[1:] {
		if len(s.Points) < minLength {
			minLength = len(s.Points)
		}
	}
	if minLength == 0 {
		return []models.AlignedPoint{}
	}

	out := make([]models.AlignedPoint, 0, minLength)
	for i := 0; i < minLength; i++ {
		point := models.AlignedPoint{
			Timestamp: series[0].Points[i].Timestamp,
			Changes:   make(map[string]float64, len(series)),
		}
		for _, s := range series {
			first := s.Points[0].Value
			if first <= 0 {
				point.Changes[s.AssetID] = 0
				continue
			}
			point.Changes[s.AssetID] = (s.Points[i].Value - first) / first * 100
		}
		out = append(out, point)
	}
	return out
}
