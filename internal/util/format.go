package util

import (
	"strings"

	"github.com/shopspring/decimal"
)

const (
	minDecimalPlaces = 2
	thousandDigits   = 3
)

// FormatMoney groups the integer part with thousand and shows every
// significant decimal place, never fewer than two, so no value is rounded.
func FormatMoney(value decimal.Decimal, thousand, decimalSeparator string) string {
	var isNegative bool

	if value.IsNegative() {
		value = value.Neg()
		isNegative = true
	}

	// String drops trailing zeros, so equal values format the same whatever
	// their exponent.
	_, significant, _ := strings.Cut(value.String(), ".")
	places := max(minDecimalPlaces, len(significant))

	integer, fraction, _ := strings.Cut(value.StringFixed(int32(places)), ".")

	var result strings.Builder
	result.Grow(len(integer) + len(integer)/thousandDigits*len(thousand) + len(decimalSeparator) + len(fraction) + 1)

	if isNegative {
		result.WriteString("-")
	}

	// for each 3 digits put the thousand separator
	head := len(integer) % thousandDigits
	if head == 0 {
		head = thousandDigits
	}
	result.WriteString(integer[:head])
	for i := head; i < len(integer); i += thousandDigits {
		result.WriteString(thousand)
		result.WriteString(integer[i : i+thousandDigits])
	}

	result.WriteString(decimalSeparator)
	result.WriteString(fraction)

	return result.String()
}
