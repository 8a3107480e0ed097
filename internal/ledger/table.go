// Package ledger models the in-session billing register: an ordered,
// append-only sequence of records threaded explicitly through callers.
// Nothing here mutates prior rows; a merge is pure concatenation.
package ledger

import (
	"github.com/voucherdesk/voucherdesk/constants"
	"github.com/voucherdesk/voucherdesk/internal/entity"
)

// Table is the register of record. The zero value is an empty table.
type Table struct {
	Records []entity.Record
}

// Merge unions a prior table with a freshly processed batch: prior rows
// first, verbatim, then the batch rows. No key matching and no duplicate
// suppression; reprocessing a document yields a duplicate row.
func Merge(prior Table, batch []entity.Record) Table {
	merged := make([]entity.Record, 0, len(prior.Records)+len(batch))
	merged = append(merged, prior.Records...)
	merged = append(merged, batch...)
	return Table{Records: merged}
}

// Totals are the aggregate sums the dashboard displays. Receipts and
// Charges stay zero unless positional records are present.
type Totals struct {
	Total    float64
	Paid     float64
	Pending  float64
	Receipts float64
	Charges  float64
}

func (t Table) Totals() Totals {
	var sums Totals
	for _, r := range t.Records {
		sums.Total += r.Amount
		if r.Paid {
			sums.Paid += r.Amount
		}
		switch r.EntrySide {
		case constants.SideReceipt:
			sums.Receipts += r.Amount
		case constants.SideCharge:
			sums.Charges += r.Amount
		}
	}
	sums.Pending = sums.Total - sums.Paid
	return sums
}

// HasEntrySides reports whether any record carries a positional
// receipt/charge classification.
func (t Table) HasEntrySides() bool {
	for _, r := range t.Records {
		if r.EntrySide != "" {
			return true
		}
	}
	return false
}

// Filter is a set of read-only view predicates. Empty fields match
// everything; list fields match any of their values.
type Filter struct {
	Months     []string
	Parties    []string
	VoucherNos []string
	CostHeads  []string
	Paid       *bool
	Side       constants.EntrySide
}

// Filter returns the view of the table matching f. The underlying records
// are copied by value; filtering never mutates the table of record.
func (t Table) Filter(f Filter) Table {
	var out Table
	for _, r := range t.Records {
		if !matchAny(f.Months, r.MonthPeriod) ||
			!matchAny(f.Parties, r.PartyName) ||
			!matchAny(f.VoucherNos, r.VoucherNo) ||
			!matchAny(f.CostHeads, r.CostHead) {
			continue
		}
		if f.Paid != nil && r.Paid != *f.Paid {
			continue
		}
		if f.Side != "" && r.EntrySide != f.Side {
			continue
		}
		out.Records = append(out.Records, r)
	}
	return out
}

// MarkPaid returns a new table with the paid flag set on every row whose
// voucher number appears in voucherNos. This is the manual-correction path;
// all other fields pass through untouched.
func (t Table) MarkPaid(voucherNos []string) Table {
	wanted := make(map[string]struct{}, len(voucherNos))
	for _, v := range voucherNos {
		wanted[v] = struct{}{}
	}
	out := Table{Records: make([]entity.Record, len(t.Records))}
	copy(out.Records, t.Records)
	for i := range out.Records {
		if _, ok := wanted[out.Records[i].VoucherNo]; ok {
			out.Records[i].Paid = true
		}
	}
	return out
}

func matchAny(values []string, v string) bool {
	if len(values) == 0 {
		return true
	}
	for _, candidate := range values {
		if candidate == v {
			return true
		}
	}
	return false
}
