package utils

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatWithCurrencyPrecision(t *testing.T) {
	amount := decimal.RequireFromString("12.3456")

	assert.Equal(t, "12.35", FormatWithCurrencyPrecision(amount, "USD"))
	assert.Equal(t, "12", FormatWithCurrencyPrecision(amount, "JPY"))
	assert.Equal(t, "12.346", FormatWithCurrencyPrecision(amount, "KWD"))
	assert.Equal(t, "12.35", FormatWithCurrencyPrecision(amount, "usd"))
}

func TestIsValidCurrencyCode(t *testing.T) {
	assert.True(t, IsValidCurrencyCode("USD"))
	assert.True(t, IsValidCurrencyCode("ETB"))
	assert.False(t, IsValidCurrencyCode("US"))
	assert.False(t, IsValidCurrencyCode("XYZ"))
}

func TestHasValidScale(t *testing.T) {
	assert.True(t, HasValidScale(decimal.RequireFromString("10.25"), "USD"))
	assert.False(t, HasValidScale(decimal.RequireFromString("10.255"), "USD"))
	assert.False(t, HasValidScale(decimal.RequireFromString("10.5"), "JPY"))
}
