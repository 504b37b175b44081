package domain

// CurrencyCode is a 3-letter ISO 4217 currency code from the supported set.
// Prices are always expressed in the unit implied by the order's currency code,
// so the two are only ever updated together.
type CurrencyCode string

const (
	USD CurrencyCode = "USD"
	EUR CurrencyCode = "EUR"
	GBP CurrencyCode = "GBP"
	JPY CurrencyCode = "JPY"
	AUD CurrencyCode = "AUD"
	CAD CurrencyCode = "CAD"
	CHF CurrencyCode = "CHF"
	CNY CurrencyCode = "CNY"
	INR CurrencyCode = "INR"
	SEK CurrencyCode = "SEK"
)

// supportedCurrencies is the closed set of codes accepted at all boundaries.
var supportedCurrencies = map[CurrencyCode]struct{}{
	USD: {}, EUR: {}, GBP: {}, JPY: {}, AUD: {},
	CAD: {}, CHF: {}, CNY: {}, INR: {}, SEK: {},
}

// IsValid reports whether the code belongs to the supported set.
func (c CurrencyCode) IsValid() bool {
	_, ok := supportedCurrencies[c]
	return ok
}

// String returns the plain 3-letter code.
func (c CurrencyCode) String() string {
	return string(c)
}
