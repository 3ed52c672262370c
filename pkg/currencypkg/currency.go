// Package currencypkg provides common currency related functionality for apps.
package currencypkg

import "github.com/go-playground/validator/v10"

// Currency is an ISO 4217 currency code.
type Currency string

// Constants for all supported currencies.
const (
	USD Currency = "USD"
	RUB Currency = "RUB"
	EUR Currency = "EUR"
)

// SupportedCurrencies holds all the supported currencies.
var SupportedCurrencies = []Currency{
	USD,
	RUB,
	EUR,
}

// IsSupported returns true if the currency is supported.
func (c Currency) IsSupported() bool {
	switch c {
	case USD, RUB, EUR:
		return true
	default:
		return false
	}
}

// IsSupportedCurrency returns true if the currency code is supported.
func IsSupportedCurrency(currency string) bool {
	return Currency(currency).IsSupported()
}

// ValidCurrency validates whether the currency is supported.
var ValidCurrency validator.Func = func(fl validator.FieldLevel) bool {
	if c, ok := fl.Field().Interface().(Currency); ok {
		return c.IsSupported()
	}

	if c, ok := fl.Field().Interface().(string); ok {
		return IsSupportedCurrency(c)
	}

	return false
}
