package gst

import (
	"math"
	"strings"
)

var (
	wordUnits = []string{"", "One", "Two", "Three", "Four", "Five", "Six", "Seven", "Eight", "Nine"}
	wordTeens = []string{"Ten", "Eleven", "Twelve", "Thirteen", "Fourteen", "Fifteen", "Sixteen", "Seventeen", "Eighteen", "Nineteen"}
	wordTens  = []string{"", "", "Twenty", "Thirty", "Forty", "Fifty", "Sixty", "Seventy", "Eighty", "Ninety"}
)

// convertUnderThousand renders 0-999 as English words.
func convertUnderThousand(n int64) string {
	var b strings.Builder
	if n >= 100 {
		b.WriteString(wordUnits[n/100])
		b.WriteString(" Hundred ")
		n %= 100
	}
	if n >= 20 {
		b.WriteString(wordTens[n/10])
		b.WriteString(" ")
		n %= 10
	}
	if n >= 10 {
		b.WriteString(wordTeens[n-10])
		b.WriteString(" ")
		n = 0
	}
	if n > 0 {
		b.WriteString(wordUnits[n])
		b.WriteString(" ")
	}
	return strings.TrimSpace(b.String())
}

// convertIndian renders a positive integer using Indian grouping
// (crore / lakh / thousand / remainder). The crore group recurses, so
// thousand-crore magnitudes and beyond decompose again instead of
// overflowing the 0-999 sub-converter.
func convertIndian(n int64) string {
	var b strings.Builder
	if n >= 10_000_000 {
		b.WriteString(convertIndian(n / 10_000_000))
		b.WriteString(" Crore ")
		n %= 10_000_000
	}
	if n >= 100_000 {
		b.WriteString(convertUnderThousand(n / 100_000))
		b.WriteString(" Lakh ")
		n %= 100_000
	}
	if n >= 1_000 {
		b.WriteString(convertUnderThousand(n / 1_000))
		b.WriteString(" Thousand ")
		n %= 1_000
	}
	if n > 0 {
		b.WriteString(convertUnderThousand(n))
	}
	return strings.TrimSpace(b.String())
}

// NumberToIndianWords converts the rounded rupee value of amount into
// English words using Indian grouping (crore / lakh / thousand / remainder),
// appended with a trailing "only". Paise are dropped. Zero is the literal
// "Zero only". This is legal display text, never arithmetic input.
func NumberToIndianWords(amount float64) string {
	n := int64(math.Round(amount))
	if n == 0 {
		return "Zero only"
	}
	return convertIndian(n) + " only"
}
