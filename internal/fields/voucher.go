// Package fields holds the voucher field extractors. Each extractor is a
// pure function of the document text (or word list): it returns a value or a
// typed sentinel, never an error, so a missing field cannot stall a batch.
package fields

import (
	"regexp"

	"github.com/voucherdesk/voucherdesk/constants"
)

// The anchor label differs across voucher template generations ("VR No." on
// the older forms, "DV No.:" on disbursement vouchers) but names the same
// field. The first anchored digit run wins.
var voucherRe = regexp.MustCompile(`(VR No\.|DV No\.:|VR No)\s*(\d+)`)

// VoucherNo extracts the VR/DV number digits, or constants.Unknown.
func VoucherNo(text string) string {
	m := voucherRe.FindStringSubmatch(text)
	if m == nil {
		return constants.Unknown
	}
	return m[2]
}
