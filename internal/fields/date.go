package fields

import (
	"regexp"
	"time"

	"github.com/voucherdesk/voucherdesk/constants"
)

// Shape only: 99-99-9999 passes here and degrades at MonthPeriod instead.
var dateRe = regexp.MustCompile(`Date:[-]?\s*(\d{2}-\d{2}-\d{4})`)

// Date extracts the DD-MM-YYYY token after the Date anchor, or
// constants.Unknown.
func Date(text string) string {
	m := dateRe.FindStringSubmatch(text)
	if m == nil {
		return constants.Unknown
	}
	return m[1]
}

// MonthPeriod derives the "January 2006" filter label from an extracted
// date. A date that does not parse as a real calendar day downgrades
// silently to constants.Unknown.
func MonthPeriod(date string) string {
	if date == constants.Unknown {
		return constants.Unknown
	}
	t, err := time.Parse("02-01-2006", date)
	if err != nil {
		return constants.Unknown
	}
	return t.Format("January 2006")
}
