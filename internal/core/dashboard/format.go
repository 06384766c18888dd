package dashboard

import (
	"math"
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// FormatMoney renders an amount with a dollar sign and thousands
// separators. Whole amounts drop the cents.
func FormatMoney(v float64) string {
	if v == math.Trunc(v) && math.Abs(v) < 1e15 {
		return printer.Sprintf("$%d", int64(v))
	}
	return printer.Sprintf("$%.2f", v)
}

// FormatCount renders an integer with thousands separators.
func FormatCount(n int64) string {
	return printer.Sprintf("%d", n)
}

// FormatPercent renders a percentage value without trailing zeros.
func FormatPercent(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// FormatAverageCTR renders the summary CTR, or "N/A" when there was nothing
// to average.
func FormatAverageCTR(avg float64, campaigns int) string {
	if campaigns == 0 {
		return "N/A"
	}
	return FormatPercent(avg)
}
