package format

import (
	"testing"
	"time"
)

func fp(v float64) *float64 { return &v }

func TestAmountNil(t *testing.T) {
	if got := Amount(nil, false); got != NotAvailable {
		t.Fatalf("Amount(nil, full) = %q, want %q", got, NotAvailable)
	}
	if got := Amount(nil, true); got != NotAvailable {
		t.Fatalf("Amount(nil, compact) = %q, want %q", got, NotAvailable)
	}
}

func TestAmountCompact(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{1234567890, "1.23B"},
		{1200000000, "1.2B"},
		{45500000, "45.5M"},
		{45500, "45.5K"},
		{999, "999"},
		{0.5, "0.5"},
	}
	for _, tc := range cases {
		if got := Amount(fp(tc.in), true); got != tc.want {
			t.Fatalf("Amount(%v, compact) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestAmountFullTiers(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0.00012345, "0.000123"},
		{0.5, "0.5000"},
		{5.126, "5.12"},
		{9.99, "9.99"},
		{45123.789, "45,123"},
		{67421, "67,421"},
	}
	for _, tc := range cases {
		if got := Amount(fp(tc.in), false); got != tc.want {
			t.Fatalf("Amount(%v, full) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestTimeAgoBuckets(t *testing.T) {
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		ago  time.Duration
		want string
	}{
		{30 * time.Second, "just now"},
		{90 * time.Second, "1 minute ago"},
		{5 * time.Minute, "5 minutes ago"},
		{time.Hour + 10*time.Minute, "1 hour ago"},
		{50 * time.Hour, "2 days ago"},
		{40 * 24 * time.Hour, "1 month ago"},
		{800 * 24 * time.Hour, "2 years ago"},
	}
	for _, tc := range cases {
		if got := TimeAgoAt(now.Add(-tc.ago), now); got != tc.want {
			t.Fatalf("TimeAgoAt(-%v) = %q, want %q", tc.ago, got, tc.want)
		}
	}
}

func TestTimeAgoSingleBucket(t *testing.T) {
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	// 2 days and 3 hours still renders days only.
	got := TimeAgoAt(now.Add(-(51 * time.Hour)), now)
	if got != "2 days ago" {
		t.Fatalf("TimeAgoAt = %q, want %q", got, "2 days ago")
	}
}
