package calendar

import (
	"testing"
	"time"

	"CoinPulse/internal/domain/models"
	"CoinPulse/internal/service/coinmarketcal"
)

func TestMapCategory(t *testing.T) {
	cases := []struct {
		in   []string
		want models.EventCategory
	}{
		{[]string{"Hard Fork"}, models.CategoryFork},
		{[]string{"Community Meetup"}, models.CategoryConference},
		{[]string{"Exchange Listing"}, models.CategoryListing},
		{[]string{"Strategic Partnership"}, models.CategoryPartnership},
		{[]string{"Token Distribution"}, models.CategoryAirdrop},
		{[]string{"Halving"}, models.CategoryHalving},
		{[]string{"Mainnet Launch"}, models.CategoryRelease},
		{[]string{"Something Else"}, models.CategoryRelease},
		{nil, models.CategoryRelease},
		// Keyword order decides when several match: fork wins over the
		// generic update bucket.
		{[]string{"Protocol Update", "Hard Fork"}, models.CategoryFork},
	}
	for _, tc := range cases {
		if got := MapCategory(tc.in); got != tc.want {
			t.Fatalf("MapCategory(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestNormalize(t *testing.T) {
	now := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)

	raw := []coinmarketcal.ProviderEvent{
		providerEvent("1", "Future Conference", "2026-12-01T00:00:00Z", "Conference"),
		providerEvent("2", "Past Airdrop", "2026-01-15T00:00:00Z", "Airdrop"),
	}

	got := Normalize(raw, now)
	if len(got) != 2 {
		t.Fatalf("Normalize = %d events, want 2", len(got))
	}

	if got[0].ID != "1" || got[0].Title != "Future Conference" {
		t.Fatalf("identity fields = %q %q", got[0].ID, got[0].Title)
	}
	if !got[0].IsUpcoming {
		t.Fatalf("future event not marked upcoming")
	}
	if got[1].IsUpcoming {
		t.Fatalf("past event marked upcoming")
	}
	if got[0].Category != models.CategoryConference || got[1].Category != models.CategoryAirdrop {
		t.Fatalf("categories = %q, %q", got[0].Category, got[1].Category)
	}
	if got[0].Description != "No description available" {
		t.Fatalf("empty description not defaulted: %q", got[0].Description)
	}
	if got[0].Image != placeholderImage {
		t.Fatalf("empty image not defaulted: %q", got[0].Image)
	}
}

func TestNormalizeBadDateDefaultsToNow(t *testing.T) {
	now := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)

	got := Normalize([]coinmarketcal.ProviderEvent{
		providerEvent("1", "Unscheduled", "not-a-date"),
	}, now)

	if !got[0].Date.Equal(now) {
		t.Fatalf("unparseable date = %v, want clock default %v", got[0].Date, now)
	}
	if got[0].IsUpcoming {
		t.Fatalf("defaulted date must not count as upcoming")
	}
}
