package models

import (
	"math"
	"testing"
)

func TestParseCurrencyFallback(t *testing.T) {
	cases := []struct {
		in   string
		want Currency
	}{
		{"USD", USD},
		{"EUR", EUR},
		{"BTC", BTC},
		{"JPY", USD},
		{"", USD},
		{"usd", USD},
	}
	for _, tc := range cases {
		if got := ParseCurrency(tc.in); got != tc.want {
			t.Fatalf("ParseCurrency(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestConvertLinearity(t *testing.T) {
	for _, c := range []Currency{USD, EUR, GBP, BTC, ETH} {
		if got := c.Convert(0); got != 0 {
			t.Fatalf("%s.Convert(0) = %v, want 0", c, got)
		}
		if got, want := c.Convert(200), 2*c.Convert(100); got != want {
			t.Fatalf("%s.Convert not linear: %v != %v", c, got, want)
		}
	}
}

func TestConvertRoundTripMagnitude(t *testing.T) {
	// EUR at 0.93 per USD: 100 USD is 93 EUR.
	if got := EUR.Convert(100); math.Abs(got-93) > 1e-9 {
		t.Fatalf("EUR.Convert(100) = %v, want 93", got)
	}
	// BTC display divides by the fixed 50k rate.
	if got := BTC.Convert(50000); math.Abs(got-1) > 1e-9 {
		t.Fatalf("BTC.Convert(50000) = %v, want 1", got)
	}
}

func TestUSDIdentity(t *testing.T) {
	if USD.Rate() != 1 {
		t.Fatalf("USD rate = %v, want 1", USD.Rate())
	}
	if got := USD.Convert(123.45); got != 123.45 {
		t.Fatalf("USD.Convert changed value: %v", got)
	}
}

func TestCurrencySymbols(t *testing.T) {
	if USD.Symbol() != "$" || EUR.Symbol() != "€" || GBP.Symbol() != "£" {
		t.Fatalf("unexpected fiat symbols: %q %q %q", USD.Symbol(), EUR.Symbol(), GBP.Symbol())
	}
	if Currency("XYZ").Symbol() != "$" {
		t.Fatalf("unknown currency symbol = %q, want $", Currency("XYZ").Symbol())
	}
}
