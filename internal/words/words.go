// Package words converts whole-rupee amounts to words using the Indian
// numbering system (crore, lakh, thousand).
package words

import (
	"strings"

	"github.com/shopspring/decimal"
)

var (
	ones  = []string{"", "One", "Two", "Three", "Four", "Five", "Six", "Seven", "Eight", "Nine"}
	tens  = []string{"", "", "Twenty", "Thirty", "Forty", "Fifty", "Sixty", "Seventy", "Eighty", "Ninety"}
	teens = []string{"Ten", "Eleven", "Twelve", "Thirteen", "Fourteen", "Fifteen",
		"Sixteen", "Seventeen", "Eighteen", "Nineteen"}
)

// ToWords converts a non-negative integer to words.
//
//	ToWords(29972) == "Twenty Nine Thousand Nine Hundred Seventy Two"
//	ToWords(1000000) == "Ten Lakh"
//
// Above a crore the groupings repeat, so a thousand crore reads
// "One Thousand Crore". Callers are expected to floor fractional totals
// before calling; n <= 0 yields "Zero".
func ToWords(n int64) string {
	if n <= 0 {
		return "Zero"
	}

	crore := n / 10_000_000
	n %= 10_000_000
	lakh := n / 100_000
	n %= 100_000
	thousand := n / 1_000
	n %= 1_000

	var groups []string
	if crore > 0 {
		groups = append(groups, ToWords(crore)+" Crore")
	}
	if lakh > 0 {
		groups = append(groups, belowThousand(lakh)+" Lakh")
	}
	if thousand > 0 {
		groups = append(groups, belowThousand(thousand)+" Thousand")
	}
	if n > 0 {
		groups = append(groups, belowThousand(n))
	}

	return strings.Join(groups, " ")
}

// belowThousand converts 0 <= n < 1000; returns "" for 0 so zero groups
// drop out of the joined result.
func belowThousand(n int64) string {
	switch {
	case n == 0:
		return ""
	case n < 10:
		return ones[n]
	case n < 20:
		return teens[n-10]
	case n < 100:
		if n%10 == 0 {
			return tens[n/10]
		}
		return tens[n/10] + " " + ones[n%10]
	default:
		hundreds := ones[n/100] + " Hundred"
		if rest := belowThousand(n % 100); rest != "" {
			return hundreds + " " + rest
		}
		return hundreds
	}
}

// AmountInWords renders an invoice total the way the document prints it:
// the whole-rupee part in words with the customary "only." suffix.
// Paise are truncated, not rounded.
func AmountInWords(total decimal.Decimal) string {
	return ToWords(total.IntPart()) + " only."
}
