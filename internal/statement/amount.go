package statement

import (
	"strings"

	"github.com/shopspring/decimal"
)

// maxReasonableAmount bounds single-transaction amounts where a strategy has
// to guess which cell holds the amount. Larger values are almost always
// running balances.
const maxReasonableAmount = 1_000_000

// ParseAmount interprets a statement cell as a currency value. It strips
// thousands separators and rupee symbols before parsing. The boolean result
// makes "this cell is not an amount" a first-class outcome rather than an
// error: extraction strategies probe many cells and move on.
func ParseAmount(cell string) (float64, bool) {
	s := strings.TrimSpace(cell)
	s = strings.ReplaceAll(s, ",", "")
	s = strings.ReplaceAll(s, "₹", "")
	if len(s) >= 2 && strings.EqualFold(s[:2], "rs") {
		s = strings.TrimPrefix(s[2:], ".")
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, false
	}
	return d.InexactFloat64(), true
}

// parseBoundedAmount accepts only amounts inside the open interval
// (0, maxReasonableAmount).
func parseBoundedAmount(cell string) (float64, bool) {
	amount, ok := ParseAmount(cell)
	if !ok || amount <= 0 || amount >= maxReasonableAmount {
		return 0, false
	}
	return amount, true
}
