package utils

import (
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

// defaultScale is used for codes the ISO table does not know.
const defaultScale = 2

// CurrencyScale returns the number of minor-unit digits for an ISO 4217 code.
// Example: USD returns 2, JPY returns 0, KWD returns 3
func CurrencyScale(code string) int {
	unit, err := currency.ParseISO(strings.ToUpper(code))
	if err != nil {
		return defaultScale
	}
	scale, _ := currency.Standard.Rounding(unit)
	return scale
}

// IsValidCurrencyCode reports whether code is a recognised ISO 4217 code.
func IsValidCurrencyCode(code string) bool {
	if len(code) != 3 {
		return false
	}
	_, err := currency.ParseISO(code)
	return err == nil
}

// FormatWithCurrencyPrecision formats an amount with the correct precision for a given currency
// Example: amount 12.3456 with USD returns "12.35"
// Example: amount 12.3456 with JPY returns "12"
func FormatWithCurrencyPrecision(amount decimal.Decimal, currencyCode string) string {
	return amount.StringFixed(int32(CurrencyScale(currencyCode)))
}

// FormatWithPrecision formats an amount with the given precision
// This is a convenience function when you only have the precision value
func FormatWithPrecision(amount decimal.Decimal, precision int) string {
	return amount.Round(int32(precision)).String()
}

// HasValidScale reports whether amount has no more fractional digits than the currency allows.
func HasValidScale(amount decimal.Decimal, currencyCode string) bool {
	scale := int32(CurrencyScale(currencyCode))
	return amount.Equal(amount.Truncate(scale))
}
