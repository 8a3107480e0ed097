package fields

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/voucherdesk/voucherdesk/constants"
	"github.com/voucherdesk/voucherdesk/internal/entity"
)

var costHeadTokenRe = regexp.MustCompile(`^\d{2}/\d{3}/\d{2}$`)

// PositionalEntry is one receipt/charge line item discovered from word
// geometry.
type PositionalEntry struct {
	Code   string
	Amount float64
	Side   constants.EntrySide
}

// PositionalEntries classifies each cost-head-shaped word token by its
// horizontal start against the page midpoint: left of midpoint is a receipt,
// right of (or on) the midpoint a charge. The entry amount is the next word
// in reading order when it parses as a positive integer after thousands
// separators are stripped; otherwise the amount stays zero and the caller's
// zero-amount policy applies.
func PositionalEntries(words []entity.Word, pageWidth float64) []PositionalEntry {
	if pageWidth <= 0 {
		return nil
	}
	mid := pageWidth / 2

	var entries []PositionalEntry
	for i, w := range words {
		if !costHeadTokenRe.MatchString(w.Text) {
			continue
		}
		side := constants.SideCharge
		if w.X < mid {
			side = constants.SideReceipt
		}
		entry := PositionalEntry{Code: w.Text, Side: side}
		if i+1 < len(words) {
			cleaned := strings.ReplaceAll(words[i+1].Text, ",", "")
			if allDigitsRe.MatchString(cleaned) {
				if v, err := strconv.ParseFloat(cleaned, 64); err == nil && v > 0 {
					entry.Amount = v
				}
			}
		}
		entries = append(entries, entry)
	}
	return entries
}
