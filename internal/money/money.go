// Package money renders GYD and USD amounts the way statements and API
// summaries display them.
package money

import (
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// Round rounds amount to places decimals, half away from zero. NaN and
// infinities round to zero.
func Round(amount float64, places int32) float64 {
	if !finite(amount) {
		return 0
	}
	return decimal.NewFromFloat(amount).Round(places).InexactFloat64()
}

// GYD formats a Guyana dollar amount rounded to whole dollars: GY$1,234.
func GYD(amount float64) string {
	return prefixed("GY$", amount, 0)
}

// USD formats a US dollar amount with cents: US$1,234.56.
func USD(amount float64) string {
	return prefixed("US$", amount, 2)
}

// Whole formats amount rounded to whole units with thousands separators.
func Whole(amount float64) string {
	return group(amount, 0)
}

// Dollars formats a payroll amount with cents: $1,234.56.
func Dollars(amount float64) string {
	return prefixed("$", amount, 2)
}

// Percent formats a rate such as 0.35 as "35%". Fractional percentages keep
// up to two decimals.
func Percent(rate float64) string {
	if !finite(rate) {
		return "0%"
	}
	return decimal.NewFromFloat(rate).Shift(2).Round(2).String() + "%"
}

// prefixed puts the sign ahead of the currency symbol: -GY$1,500.
func prefixed(symbol string, amount float64, places int32) string {
	out := group(amount, places)
	if rest, ok := strings.CutPrefix(out, "-"); ok {
		return "-" + symbol + rest
	}
	return symbol + out
}

func group(amount float64, places int32) string {
	if !finite(amount) {
		amount = 0
	}
	d := decimal.NewFromFloat(amount).Round(places)
	sign := ""
	if d.IsNegative() {
		sign = "-"
		d = d.Neg()
	}

	fixed := d.StringFixed(places)
	whole, frac, hasFrac := strings.Cut(fixed, ".")

	var b strings.Builder
	b.WriteString(sign)
	for i, r := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	if hasFrac {
		b.WriteByte('.')
		b.WriteString(frac)
	}
	return b.String()
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
