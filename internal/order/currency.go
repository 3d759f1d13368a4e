package order

import (
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

// FormatCurrency renders d in dollars, rounded half away from zero to cents
// and grouped by thousands, e.g. "$1,234.50" or "-$2.00".
func FormatCurrency(d decimal.Decimal) string {
	rounded := d.Round(2)
	sign := ""
	if rounded.IsNegative() {
		sign = "-"
		rounded = rounded.Neg()
	}

	whole := rounded.Truncate(0).IntPart()
	cents := rounded.StringFixed(2)
	cents = cents[strings.IndexByte(cents, '.'):]

	return sign + "$" + humanize.Comma(whole) + cents
}
