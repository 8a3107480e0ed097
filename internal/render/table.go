// Package render draws the register and its summary on a terminal.
package render

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"

	"github.com/voucherdesk/voucherdesk/constants"
	"github.com/voucherdesk/voucherdesk/internal/ledger"
	"github.com/voucherdesk/voucherdesk/internal/pipeline"
)

// Register writes the table rows followed by a totals block. Amounts are
// shown as whole rupees, matching the exported workbook.
func Register(w io.Writer, table ledger.Table) {
	tw := tablewriter.NewWriter(w)
	tw.SetHeader(constants.LedgerHeaders)
	tw.SetAutoWrapText(false)

	for _, r := range table.Records {
		tw.Append([]string{
			r.Date,
			r.MonthPeriod,
			r.VoucherNo,
			r.CostHead,
			r.PartyName,
			fmt.Sprintf("%.0f", r.Amount),
			string(r.EntrySide),
			paidMark(r.Paid),
			r.SourceFile,
		})
	}
	tw.Render()

	Summary(w, table)
}

// Summary writes the aggregate block alone. Receipt and charge subtotals
// appear only when the table carries positional records.
func Summary(w io.Writer, table ledger.Table) {
	totals := table.Totals()
	fmt.Fprintf(w, "Entries: %d\n", len(table.Records))
	fmt.Fprintf(w, "Total:   %.0f\n", totals.Total)
	fmt.Fprintf(w, "Paid:    %.0f\n", totals.Paid)
	fmt.Fprintf(w, "Pending: %.0f\n", totals.Pending)
	if table.HasEntrySides() {
		fmt.Fprintf(w, "Receipts: %.0f  Charges: %.0f\n", totals.Receipts, totals.Charges)
	}
}

// Failures lists documents that could not be processed.
func Failures(w io.Writer, failures []pipeline.Failure) {
	for _, f := range failures {
		fmt.Fprintf(w, "failed: %s (%s): %s\n", f.File, f.Stage, f.Err)
	}
}

func paidMark(paid bool) string {
	if paid {
		return "yes"
	}
	return "no"
}
