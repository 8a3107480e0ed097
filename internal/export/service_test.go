package export

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/voucherdesk/voucherdesk/constants"
	"github.com/voucherdesk/voucherdesk/internal/common"
	"github.com/voucherdesk/voucherdesk/internal/entity"
	"github.com/voucherdesk/voucherdesk/internal/ledger"
)

func testService() *Service {
	return NewService(slog.New(slog.DiscardHandler))
}

func sampleTable() ledger.Table {
	return ledger.Table{Records: []entity.Record{
		{
			Date:        "05-12-2025",
			MonthPeriod: "December 2025",
			VoucherNo:   "0058",
			CostHead:    "93/020/91",
			PartyName:   "ABC Traders",
			Amount:      138357.4,
			Paid:        true,
			SourceFile:  "bill_0058.pdf",
		},
		{
			Date:        "02-06-2025",
			MonthPeriod: "June 2025",
			VoucherNo:   "4471",
			CostHead:    "11/222/33",
			PartyName:   constants.SalaryGroupPayment,
			Amount:      4000,
			EntrySide:   constants.SideReceipt,
			SourceFile:  "dv_4471.pdf",
		},
	}}
}

func TestWriteLoadRoundTrip(t *testing.T) {
	svc := testService()

	b, err := svc.WriteXLSX(sampleTable())
	if err != nil {
		t.Fatalf("WriteXLSX() error: %v", err)
	}

	got, err := svc.Load(bytes.NewReader(b))
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if len(got.Records) != 2 {
		t.Fatalf("got %d records, want 2", len(got.Records))
	}

	r := got.Records[0]
	if r.VoucherNo != "0058" || r.PartyName != "ABC Traders" || !r.Paid {
		t.Errorf("record 0 = %+v", r)
	}
	// Amounts are exported as whole rupees.
	if r.Amount != 138357 {
		t.Errorf("Amount = %v, want 138357 (rounded on export)", r.Amount)
	}
	if got.Records[1].EntrySide != constants.SideReceipt {
		t.Errorf("EntrySide = %q, want %q", got.Records[1].EntrySide, constants.SideReceipt)
	}
	if got.Records[1].Paid {
		t.Errorf("record 1 paid flag = true, want false")
	}
}

func TestLoadRejectsColumnMismatch(t *testing.T) {
	f := excelize.NewFile()
	sheet := f.GetSheetName(f.GetActiveSheetIndex())
	_ = f.SetCellValue(sheet, "A1", "Date")
	_ = f.SetCellValue(sheet, "B1", "Total") // not a register column
	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	_, err = testService().Load(bytes.NewReader(buf.Bytes()))
	if !errors.Is(err, common.ErrColumnMismatch) {
		t.Fatalf("Load() error = %v, want ErrColumnMismatch", err)
	}
	if !strings.Contains(err.Error(), "VR_No") {
		t.Errorf("error does not name the missing columns: %v", err)
	}
}

func TestLoadEmptyTableHasHeaderOnly(t *testing.T) {
	svc := testService()
	b, err := svc.WriteXLSX(ledger.Table{})
	if err != nil {
		t.Fatalf("WriteXLSX() error: %v", err)
	}

	got, err := svc.Load(bytes.NewReader(b))
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if len(got.Records) != 0 {
		t.Errorf("got %d records from empty export, want 0", len(got.Records))
	}
}

func TestLoadUnparsableAmountBecomesZero(t *testing.T) {
	f := excelize.NewFile()
	sheet := f.GetSheetName(f.GetActiveSheetIndex())
	for i, h := range constants.LedgerHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}
	_ = f.SetCellValue(sheet, "C2", "9")
	_ = f.SetCellValue(sheet, "F2", "not a number")
	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	got, err := testService().Load(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if len(got.Records) != 1 || got.Records[0].Amount != 0 {
		t.Errorf("records = %+v, want one row with zero amount", got.Records)
	}
}

func TestFileName(t *testing.T) {
	at := time.Date(2025, time.December, 5, 14, 15, 3, 0, time.UTC)
	if got := FileName(at); got != "Billing_Register_05122025_141503.xlsx" {
		t.Errorf("FileName() = %q", got)
	}
}
