package calendar

import (
	"strings"
	"time"

	"CoinPulse/internal/domain/models"
	"CoinPulse/internal/service/coinmarketcal"
	"CoinPulse/pkg/util"
)

const placeholderImage = "/placeholder.svg?height=300&width=300"

// categoryKeywords maps provider category substrings to the internal
// taxonomy. Matching is ordered so the result is deterministic; the
// first keyword contained in any provider category wins.
var categoryKeywords = []struct {
	keyword  string
	category models.EventCategory
}{
	{"hard fork", models.CategoryFork},
	{"soft fork", models.CategoryFork},
	{"conference", models.CategoryConference},
	{"meetup", models.CategoryConference},
	{"listing", models.CategoryListing},
	{"exchange", models.CategoryListing},
	{"partnership", models.CategoryPartnership},
	{"collaboration", models.CategoryPartnership},
	{"airdrop", models.CategoryAirdrop},
	{"distribution", models.CategoryAirdrop},
	{"halving", models.CategoryHalving},
	{"release", models.CategoryRelease},
	{"update", models.CategoryRelease},
	{"mainnet", models.CategoryRelease},
}

// MapCategory normalizes provider categories. No match, or an empty
// list, defaults to release.
func MapCategory(categories []string) models.EventCategory {
	for _, kw := range categoryKeywords {
		for _, c := range categories {
			if strings.Contains(strings.ToLower(c), kw.keyword) {
				return kw.category
			}
		}
	}
	return models.CategoryRelease
}

// Normalize converts raw provider events into the internal shape.
// IsUpcoming is snapshotted against now and never re-evaluated.
func Normalize(raw []coinmarketcal.ProviderEvent, now time.Time) []models.CalendarEvent {
	out := make([]models.CalendarEvent, 0, len(raw))
	for _, e := range raw {
		date := util.ParseTimeDefault(e.DateEvent, now)

		description := e.Description.En
		if description == "" {
			description = "No description available"
		}

		image := e.Proof
		if image == "" {
			image = placeholderImage
		}

		out = append(out, models.CalendarEvent{
			ID:          e.ID.String(),
			Title:       e.Title.En,
			Description: description,
			Date:        date,
			Category:    MapCategory(e.Categories),
			Coins:       e.CoinSlugs(),
			Image:       image,
			IsUpcoming:  date.After(now),
			CreatedAt:   util.ParseTimeDefault(e.CreatedDate, now),
		})
	}
	return out
}
