package models

// Currency is a display currency code. Asset values are stored in the
// base currency (USD); conversion happens only at presentation time.
type Currency string

const (
	USD Currency = "USD"
	EUR Currency = "EUR"
	GBP Currency = "GBP"
	BTC Currency = "BTC"
	ETH Currency = "ETH"
)

// Fixed approximate conversion rates relative to the base currency.
var currencyRates = map[Currency]float64{
	USD: 1,
	EUR: 0.93,
	GBP: 0.79,
	BTC: 1.0 / 50000,
	ETH: 1.0 / 3000,
}

var currencySymbols = map[Currency]string{
	USD: "$",
	EUR: "€",
	GBP: "£",
	BTC: "₿",
	ETH: "Ξ",
}

// ParseCurrency maps a code to a Currency. Unknown codes fall back to
// USD identity rather than failing: display must stay robust to
// unexpected input, so this is a deliberate choice, not an oversight.
func ParseCurrency(code string) Currency {
	switch Currency(code) {
	case USD, EUR, GBP, BTC, ETH:
		return Currency(code)
	default:
		return USD
	}
}

// Rate returns the conversion multiplier from base currency.
func (c Currency) Rate() float64 {
	if r, ok := currencyRates[c]; ok {
		return r
	}
	return 1
}

// Symbol returns the display symbol.
func (c Currency) Symbol() string {
	if s, ok := currencySymbols[c]; ok {
		return s
	}
	return "$"
}

// Convert converts a base-currency value into this display currency.
func (c Currency) Convert(value float64) float64 {
	return value * c.Rate()
}
