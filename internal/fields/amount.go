package fields

import (
	"regexp"
	"strconv"
)

// Amount anchors vary with the voucher template, like the voucher-number
// label does. First anchored digit run wins.
var amountRe = regexp.MustCompile(`(Total of above Rs|DV Total:|Total Amount)\s*(\d+)`)

// Amount extracts the stated voucher total. Absent or unparseable resolves
// to zero, never an error.
func Amount(text string) float64 {
	m := amountRe.FindStringSubmatch(text)
	if m == nil {
		return 0
	}
	v, err := strconv.ParseFloat(m[2], 64)
	if err != nil {
		return 0
	}
	return v
}
