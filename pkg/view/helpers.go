package view

import "strconv"

// Yen formats a tax-inclusive integer yen amount for the screen.
// E.g. 450 -> "¥450". Yen has no minor unit, so no decimals.
func Yen(amount int) string {
	return "¥" + strconv.Itoa(amount)
}
