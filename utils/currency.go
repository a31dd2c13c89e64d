package utils

import (
	"strconv"
)

// FormatDollars renders an amount the way the orders table shows it: a
// dollar sign followed by the shortest exact decimal form.
// Example: 15 -> "$15", 99.5 -> "$99.5"
func FormatDollars(amount float64) string {
	return "$" + strconv.FormatFloat(amount, 'f', -1, 64)
}
