package fields

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/voucherdesk/voucherdesk/constants"
)

var (
	costHeadRe  = regexp.MustCompile(`\d{2}/\d{3}/\d{2}`)
	sectionRe   = regexp.MustCompile(`Section:\s*(\d+)`)
	allDigitsRe = regexp.MustCompile(`^\d+$`)
)

// CostHead extracts the canonical budget classification code: the first
// DD/DDD/DD occurrence in document order, falling back to the numeric
// Section code, then to the literal fallback label.
func CostHead(text, fallback string) string {
	if code := costHeadRe.FindString(text); code != "" {
		return code
	}
	if m := sectionRe.FindStringSubmatch(text); m != nil {
		return m[1]
	}
	if fallback == "" {
		return constants.GeneralCostHead
	}
	return fallback
}

// HeadAmount is one cost-head line item discovered in multi-head mode.
type HeadAmount struct {
	Code   string
	Amount float64
}

// MultiCostHeads splits a voucher carrying several cost-head line items.
// Every DD/DDD/DD occurrence becomes an item, paired with the first token
// later on the same text line that is all digits once thousands separators
// are stripped, is not the code itself, and is strictly positive. Items with
// no such token keep amount zero; the caller decides whether to retain them.
func MultiCostHeads(text string) []HeadAmount {
	var items []HeadAmount
	for _, line := range strings.Split(text, "\n") {
		for _, loc := range costHeadRe.FindAllStringIndex(line, -1) {
			code := line[loc[0]:loc[1]]
			item := HeadAmount{Code: code}
			for _, tok := range strings.Fields(line[loc[1]:]) {
				cleaned := strings.ReplaceAll(tok, ",", "")
				if cleaned == code || !allDigitsRe.MatchString(cleaned) {
					continue
				}
				v, err := strconv.ParseFloat(cleaned, 64)
				if err != nil || v <= 0 {
					continue
				}
				item.Amount = v
				break
			}
			items = append(items, item)
		}
	}
	return items
}
