package gst

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNumberToIndianWords(t *testing.T) {
	cases := []struct {
		amount   float64
		expected string
	}{
		{0, "Zero only"},
		{1, "One only"},
		{9, "Nine only"},
		{10, "Ten only"},
		{19, "Nineteen only"},
		{20, "Twenty only"},
		{45, "Forty Five only"},
		{100, "One Hundred only"},
		{118, "One Hundred Eighteen only"},
		{999, "Nine Hundred Ninety Nine only"},
		{1000, "One Thousand only"},
		{1180, "One Thousand One Hundred Eighty only"},
		{99999, "Ninety Nine Thousand Nine Hundred Ninety Nine only"},
		{100000, "One Lakh only"},
		{150000, "One Lakh Fifty Thousand only"},
		{1234567, "Twelve Lakh Thirty Four Thousand Five Hundred Sixty Seven only"},
		{10000000, "One Crore only"},
		{12345678, "One Crore Twenty Three Lakh Forty Five Thousand Six Hundred Seventy Eight only"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.expected, NumberToIndianWords(tc.amount), "amount %v", tc.amount)
	}
}

func TestNumberToIndianWords_DropsPaise(t *testing.T) {
	// Fractional rupees round to the nearest integer; only whole rupees
	// are spoken on the invoice.
	assert.Equal(t, "One Thousand only", NumberToIndianWords(1000.20))
	assert.Equal(t, "One Thousand One only", NumberToIndianWords(1000.50))
}

func TestNumberToIndianWords_SkipsZeroGroups(t *testing.T) {
	assert.Equal(t, "One Crore Five only", NumberToIndianWords(10000005))
	assert.Equal(t, "Two Lakh Thirty only", NumberToIndianWords(200030))
}

func TestNumberToIndianWords_ThousandCroreAndBeyond(t *testing.T) {
	// The crore group itself reaches four or more digits here; it must
	// decompose again rather than overflow the 0-999 sub-converter.
	cases := []struct {
		amount   float64
		expected string
	}{
		{9_999_000_000, "Nine Hundred Ninety Nine Crore Ninety Lakh only"},
		{10_000_000_000, "One Thousand Crore only"},
		{12_345_678_901, "One Thousand Two Hundred Thirty Four Crore Fifty Six Lakh Seventy Eight Thousand Nine Hundred One only"},
		{100_000_000_000_000, "One Crore Crore only"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.expected, NumberToIndianWords(tc.amount), "amount %v", tc.amount)
	}
}
