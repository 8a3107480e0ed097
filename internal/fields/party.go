package fields

import (
	"regexp"
	"strings"

	"github.com/voucherdesk/voucherdesk/constants"
)

// Interbank routing-code shape: 4 letters, literal zero, 6 alphanumerics.
// Used as a proxy for "this is a bank account line", not validated against
// any registry.
var routingCodeRe = regexp.MustCompile(`[A-Z]{4}0[A-Z0-9]{6}`)

// PartyResult is the outcome of payee disambiguation for one voucher.
type PartyResult struct {
	Name string
	Type constants.PaymentType
}

// PartyStrategy disambiguates vendor payments from salary/group
// disbursements and locates the payee name. The source prototypes carry
// three mutually exclusive rules for this; exactly one strategy is active
// per run, selected by configuration. They must never be composed.
type PartyStrategy interface {
	ClassifyParty(text string) PartyResult
}

// RoutingCountStrategy classifies by the number of DISTINCT routing-code
// tokens in the document: more than one means a multi-payee disbursement.
// This is the default rule. The count is a set cardinality, so permuting the
// document's lines cannot change the classification.
type RoutingCountStrategy struct{}

func (RoutingCountStrategy) ClassifyParty(text string) PartyResult {
	codes := routingCodeRe.FindAllString(text, -1)
	distinct := make(map[string]struct{}, len(codes))
	for _, c := range codes {
		distinct[c] = struct{}{}
	}
	if len(distinct) > 1 {
		return PartyResult{Name: constants.SalaryGroupPayment, Type: constants.PaymentSalary}
	}
	return PartyResult{Name: locateSingleParty(text, codes), Type: constants.PaymentVendor}
}

// BankKeywordStrategy is the alternate rule: it counts literal bank keyword
// occurrences and treats a count above the threshold as multi-payee.
type BankKeywordStrategy struct {
	// Threshold defaults to 2 when zero; a count strictly above it triggers
	// the multi-payee classification.
	Threshold int
}

var bankKeywords = []string{"State Bank", "Axis Bank", "IFSC"}

func (s BankKeywordStrategy) ClassifyParty(text string) PartyResult {
	threshold := s.Threshold
	if threshold == 0 {
		threshold = 2
	}
	count := 0
	for _, kw := range bankKeywords {
		count += strings.Count(text, kw)
	}
	if count > threshold {
		return PartyResult{Name: constants.SalaryGroupPayment, Type: constants.PaymentSalary}
	}
	codes := routingCodeRe.FindAllString(text, -1)
	return PartyResult{Name: locateSingleParty(text, codes), Type: constants.PaymentVendor}
}

// AnchorOffsetStrategy is the positional rule: the payee name sits exactly
// two lines above the "DV No.:" anchor on the disbursement voucher layout,
// three lines above when the two-above line is too short to be a name.
type AnchorOffsetStrategy struct{}

func (AnchorOffsetStrategy) ClassifyParty(text string) PartyResult {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if !strings.Contains(line, "DV No.:") {
			continue
		}
		name := ""
		if i >= 2 {
			name = strings.TrimSpace(lines[i-2])
		}
		if len(name) <= 3 && i >= 3 {
			name = strings.TrimSpace(lines[i-3])
		}
		if name == "" {
			name = constants.Unknown
		}
		return PartyResult{Name: name, Type: constants.PaymentVendor}
	}
	return PartyResult{Name: constants.Unknown, Type: constants.PaymentVendor}
}

// locateSingleParty scans line by line for a bank account line (one carrying
// a found routing token, or the bare "SBIN" prefix when no full token
// matched) and accepts the following line as the payee name when it is
// non-numeric and longer than two characters. A voucher with a Remarks block
// but no qualifying line gets the softer manual-check sentinel.
func locateSingleParty(text string, codes []string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		hit := strings.Contains(line, "SBIN")
		if !hit {
			for _, c := range codes {
				if strings.Contains(line, c) {
					hit = true
					break
				}
			}
		}
		if !hit || i+1 >= len(lines) {
			continue
		}
		name := strings.TrimSpace(lines[i+1])
		if len(name) > 2 && !isDigits(name) {
			return name
		}
	}
	if strings.Contains(text, "Remarks") {
		return constants.VendorNameCheck
	}
	return constants.Unknown
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
