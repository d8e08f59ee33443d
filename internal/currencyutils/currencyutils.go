// Package currencyutils provides tolerant amount parsing and display
// formatting for cost values.
package currencyutils

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

var symbolRe = regexp.MustCompile(`[€$£¥\s]`)

// ParseAmount parses a cost cell into a decimal value. It tolerates
// currency symbols, thousands separators and European decimal commas,
// e.g. "$1,250.50", "1'234.56", "1.234,56".
func ParseAmount(amountStr string) (decimal.Decimal, error) {
	if strings.TrimSpace(amountStr) == "" {
		return decimal.Zero, nil
	}

	standardized := StandardizeAmount(amountStr)
	amount, err := decimal.NewFromString(standardized)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to parse amount '%s': %w", amountStr, err)
	}
	return amount, nil
}

// StandardizeAmount strips currency decoration and normalizes separator
// conventions so decimal.NewFromString can handle the result.
func StandardizeAmount(amountStr string) string {
	amountStr = symbolRe.ReplaceAllString(amountStr, "")

	hasComma := strings.Contains(amountStr, ",")
	hasDot := strings.Contains(amountStr, ".")

	switch {
	case hasComma && hasDot:
		if strings.LastIndex(amountStr, ".") < strings.LastIndex(amountStr, ",") {
			// European format 1.234,56
			amountStr = strings.ReplaceAll(amountStr, ".", "")
			amountStr = strings.ReplaceAll(amountStr, ",", ".")
		} else {
			// US format 1,234.56
			amountStr = strings.ReplaceAll(amountStr, ",", "")
		}
	case hasComma:
		parts := strings.Split(amountStr, ",")
		if len(parts[len(parts)-1]) <= 2 {
			// Comma as decimal separator 1234,56
			amountStr = strings.ReplaceAll(amountStr, ",", ".")
		} else {
			// Comma as thousands separator 1,234
			amountStr = strings.ReplaceAll(amountStr, ",", "")
		}
	}

	// Apostrophes as thousands separators 1'234.56
	return strings.ReplaceAll(amountStr, "'", "")
}

// FormatUSD formats a decimal as a dollar string with thousands separators
// and two decimal places, e.g. "$1,250.50".
func FormatUSD(amount decimal.Decimal) string {
	negative := amount.IsNegative()
	fixed := amount.Abs().StringFixed(2)

	intPart := fixed[:len(fixed)-3]
	fracPart := fixed[len(fixed)-2:]

	var b strings.Builder
	for i, digit := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(digit)
	}

	out := "$" + b.String() + "." + fracPart
	if negative {
		return "-" + out
	}
	return out
}

// FormatUSDFloat is FormatUSD for values that only exist as float64, such
// as statistics derived from bucket means.
func FormatUSDFloat(amount float64) string {
	return FormatUSD(decimal.NewFromFloat(amount))
}
