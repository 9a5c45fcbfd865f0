package cart

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FormatPrice renders an amount in rupees with Indian digit grouping,
// e.g. 1234567.5 -> "₹12,34,567.50".
func FormatPrice(amount decimal.Decimal) string {
	amount = amount.Round(2)
	sign := ""
	if amount.IsNegative() {
		sign = "-"
		amount = amount.Neg()
	}

	fixed := amount.StringFixed(2)
	whole, frac, _ := strings.Cut(fixed, ".")
	return sign + "₹" + groupIndian(whole) + "." + frac
}

// groupIndian puts a comma before the last three digits, then every two
func groupIndian(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	head, tail := digits[:len(digits)-3], digits[len(digits)-3:]

	var parts []string
	for len(head) > 2 {
		parts = append([]string{head[len(head)-2:]}, parts...)
		head = head[:len(head)-2]
	}
	if head != "" {
		parts = append([]string{head}, parts...)
	}
	return strings.Join(parts, ",") + "," + tail
}
