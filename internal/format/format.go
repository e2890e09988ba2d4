// Package format renders amounts and relative times for display.
package format

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
)

// NotAvailable is the sentinel rendered for absent values.
const NotAvailable = "N/A"

// Amount renders a monetary value. nil yields the NotAvailable
// sentinel in both modes. Compact mode uses suffix notation (1.2B,
// 45.5K) with at most two fraction digits; full mode picks decimals by
// magnitude so sub-cent assets never render as "0" while large round
// numbers stay uncluttered.
func Amount(value *float64, compact bool) string {
	if value == nil {
		return NotAvailable
	}
	v := *value

	if compact {
		return compactAmount(v)
	}

	av := math.Abs(v)
	switch {
	case av < 1:
		return padFraction(humanize.CommafWithDigits(v, 6), 4)
	case av < 10:
		return humanize.CommafWithDigits(v, 2)
	default:
		return humanize.CommafWithDigits(v, 0)
	}
}

func compactAmount(v float64) string {
	av := math.Abs(v)
	switch {
	case av >= 1e9:
		return round2(v/1e9) + "B"
	case av >= 1e6:
		return round2(v/1e6) + "M"
	case av >= 1e3:
		return round2(v/1e3) + "K"
	default:
		return round2(v)
	}
}

func round2(x float64) string {
	return strconv.FormatFloat(math.Round(x*100)/100, 'f', -1, 64)
}

// padFraction pads the fractional part with zeros up to min digits.
func padFraction(s string, min int) string {
	dot := strings.IndexByte(s, '.')
	if dot < 0 {
		return s + "." + strings.Repeat("0", min)
	}
	if frac := len(s) - dot - 1; frac < min {
		return s + strings.Repeat("0", min-frac)
	}
	return s
}

const (
	secondsPerYear   = 31536000
	secondsPerMonth  = 2592000
	secondsPerDay    = 86400
	secondsPerHour   = 3600
	secondsPerMinute = 60
)

// TimeAgo renders the elapsed time since t as the largest applicable
// bucket only ("2 days ago", never "2 days, 3 hours ago").
func TimeAgo(t time.Time) string {
	return TimeAgoAt(t, time.Now())
}

// TimeAgoAt is TimeAgo against an explicit reference time.
func TimeAgoAt(t, now time.Time) string {
	seconds := int(now.Sub(t).Seconds())

	if n := seconds / secondsPerYear; n >= 1 {
		return plural(n, "year")
	}
	if n := seconds / secondsPerMonth; n >= 1 {
		return plural(n, "month")
	}
	if n := seconds / secondsPerDay; n >= 1 {
		return plural(n, "day")
	}
	if n := seconds / secondsPerHour; n >= 1 {
		return plural(n, "hour")
	}
	if n := seconds / secondsPerMinute; n >= 1 {
		return plural(n, "minute")
	}
	return "just now"
}

func plural(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s ago", unit)
	}
	return fmt.Sprintf("%d %ss ago", n, unit)
}
