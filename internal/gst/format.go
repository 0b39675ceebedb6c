package gst

import (
	"math"
	"strconv"
	"strings"
)

// FormatCurrency renders amount as rupee display text with two decimals and
// Indian digit grouping: the last three integer digits form one group and
// every group above it has two digits, e.g. ₹1,50,000.00. Non-finite
// amounts render as zero so the function never fails.
func FormatCurrency(amount float64) string {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		amount = 0
	}

	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}

	s := strconv.FormatFloat(amount, 'f', 2, 64)
	intPart, fracPart, _ := strings.Cut(s, ".")

	return "₹" + sign + groupIndian(intPart) + "." + fracPart
}

// groupIndian inserts commas into a digit string using the Indian
// numbering convention.
func groupIndian(digits string) string {
	if len(digits) <= 3 {
		return digits
	}

	head := digits[:len(digits)-3]
	tail := digits[len(digits)-3:]

	var groups []string
	for len(head) > 2 {
		groups = append([]string{head[len(head)-2:]}, groups...)
		head = head[:len(head)-2]
	}
	groups = append([]string{head}, groups...)

	return strings.Join(groups, ",") + "," + tail
}
