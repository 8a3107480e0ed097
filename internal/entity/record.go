package entity

import "github.com/voucherdesk/voucherdesk/constants"

// Record is one structured register row derived from a Document. A document
// with several cost-head line items yields several records.
type Record struct {
	// Date in DD-MM-YYYY textual form, or constants.Unknown.
	Date string `json:"date"`

	// MonthPeriod is the "January 2006" label derived from Date;
	// constants.Unknown when Date is unset or unparseable.
	MonthPeriod string `json:"month_period"`

	// VoucherNo holds the digits of the VR/DV number, or constants.Unknown.
	VoucherNo string `json:"voucher_no"`

	// CostHead is a DD/DDD/DD code, a numeric Section fallback, or
	// constants.GeneralCostHead.
	CostHead string `json:"cost_head"`

	// PartyName is the payee name, constants.SalaryGroupPayment for
	// multi-payee disbursements, or a manual-check sentinel.
	PartyName string `json:"party_name"`

	// Amount is non-negative; zero when unparseable.
	Amount float64 `json:"amount"`

	// EntrySide is set only by the positional path.
	EntrySide constants.EntrySide `json:"entry_side,omitempty"`

	// PaymentType distinguishes vendor payments from salary/group runs.
	PaymentType constants.PaymentType `json:"payment_type,omitempty"`

	// Paid defaults to false; the only field meant for end-user mutation.
	Paid bool `json:"paid"`

	// SourceFile references the originating document.
	SourceFile string `json:"source_file"`
}
