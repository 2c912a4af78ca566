package models

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// MaxPrice is the highest unit price the catalog accepts. It keeps every
// price and cart total well inside int64 pence.
var MaxPrice = decimal.NewFromInt(1_000_000)

// StoreCurrency is the only currency the shop trades in.
var StoreCurrency = currency.GBP

var displayPrinter = message.NewPrinter(language.BritishEnglish)

// PenceToDecimal converts a stored minor-unit amount to pounds.
func PenceToDecimal(pence int64) decimal.Decimal {
	return decimal.New(pence, -2)
}

// DecimalToPence rounds half away from zero to the nearest penny.
func DecimalToPence(d decimal.Decimal) int64 {
	return d.Shift(2).Round(0).IntPart()
}

// FormatPrice renders an amount for display, e.g. £1,234.50. Rounding is
// done in decimal; only the whole-pound part goes through the grouping
// printer, as an integer.
func FormatPrice(d decimal.Decimal) string {
	r := d.Round(2)
	sign := ""
	if r.IsNegative() {
		sign = "-"
		r = r.Neg()
	}
	fixed := r.StringFixed(2)
	return sign + "£" + displayPrinter.Sprintf("%d", r.IntPart()) + fixed[len(fixed)-3:]
}
