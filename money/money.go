// Package money formats rupee amounts for display.
package money

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Symbol is the only currency the calculator shows.
const Symbol = "₹"

// StandardDeductionDisplay is the fixed line shown in every breakdown.
var StandardDeductionDisplay = Symbol + FormatGrouped(50000)

// Round2 rounds half away from zero to two decimal places.
func Round2(amount float64) decimal.Decimal {
	return decimal.NewFromFloat(amount).Round(2)
}

// FormatCurrency gives the symbol followed by exactly two decimals, no grouping.
func FormatCurrency(amount float64) string {
	return Symbol + decimal.NewFromFloat(amount).StringFixed(2)
}

// FormatPercent gives a rate with two decimals and a trailing percent sign.
func FormatPercent(rate float64) string {
	return decimal.NewFromFloat(rate).StringFixed(2) + "%"
}

// FormatGrouped writes n with comma thousands separators.
func FormatGrouped(n int64) string {
	return message.NewPrinter(language.English).Sprintf("%d", n)
}
