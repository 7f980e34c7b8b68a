package booking

import (
	"time"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Nights returns the number of nights between two normalized days.
func Nights(checkIn, checkOut time.Time) int {
	return int(NormalizeDay(checkOut).Sub(NormalizeDay(checkIn)).Hours() / 24)
}

// PriceForStay computes nightly price x nights, reduced by the room's
// discount percentage, rounded to cents.
func PriceForStay(nightly decimal.Decimal, discountPct int, nights int) decimal.Decimal {
	total := nightly.Mul(decimal.NewFromInt(int64(nights)))

	if discountPct > 0 {
		factor := hundred.Sub(decimal.NewFromInt(int64(discountPct))).Div(hundred)
		total = total.Mul(factor)
	}

	return total.Round(2)
}
