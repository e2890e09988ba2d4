package market

import (
	"strings"

	"CoinPulse/internal/domain/models"
)

// MinQueryLength is the shortest query the index will match. Shorter
// input returns an empty result rather than an error; callers are
// expected to debounce keystrokes before asking.
const MinQueryLength = 2

// Index matches queries against asset names and symbols.
type Index struct {
	assets []models.Asset
}

// NewIndex builds a search index over the catalog, in catalog order.
func NewIndex(assets []models.Asset) *Index {
	return &Index{assets: assets}
}

// Search returns catalog-order matches whose name or symbol contains
// the query, case-insensitively. Limit <= 0 means unlimited.
func (ix *Index) Search(query string, limit int) []models.SearchResult {
	query = strings.ToLower(strings.TrimSpace(query))
	if len(query) < MinQueryLength {
		return []models.SearchResult{}
	}

	out := make([]models.SearchResult, 0, 8)
	for _, a := range ix.assets {
		if !strings.Contains(strings.ToLower(a.Name), query) &&
			!strings.Contains(strings.ToLower(a.Symbol), query) {
			continue
		}
		out = append(out, models.SearchResult{
			ID:            a.ID,
			Name:          a.Name,
			Symbol:        a.Symbol,
			MarketCapRank: a.MarketCapRank,
			Thumb:         a.Image,
		})
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out
}
