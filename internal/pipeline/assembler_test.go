package pipeline

import (
	"reflect"
	"testing"

	"github.com/voucherdesk/voucherdesk/constants"
	"github.com/voucherdesk/voucherdesk/internal/entity"
)

const vendorVoucherText = "Office of the Executive Engineer\n" +
	"VR No. 0058\n" +
	"Date:- 05-12-2025\n" +
	"93/020/91\n" +
	"A/C 39210042 SBIN0004088\n" +
	"ABC Traders\n" +
	"Total of above Rs 138357\n" +
	"Remarks: passed for payment\n"

func TestAssembleVendorVoucher(t *testing.T) {
	a := NewAssembler()
	recs := a.Assemble(entity.Document{Name: "bill_0058.pdf", Text: vendorVoucherText})

	if len(recs) != 1 {
		t.Fatalf("got %d records, want 1", len(recs))
	}
	want := entity.Record{
		Date:        "05-12-2025",
		MonthPeriod: "December 2025",
		VoucherNo:   "0058",
		CostHead:    "93/020/91",
		PartyName:   "ABC Traders",
		Amount:      138357,
		PaymentType: constants.PaymentVendor,
		Paid:        false,
		SourceFile:  "bill_0058.pdf",
	}
	if !reflect.DeepEqual(recs[0], want) {
		t.Errorf("Assemble() = %+v, want %+v", recs[0], want)
	}
}

func TestAssembleAllFieldsAbsent(t *testing.T) {
	a := NewAssembler()
	recs := a.Assemble(entity.Document{Name: "blank.pdf", Text: "nothing recognizable"})

	if len(recs) != 1 {
		t.Fatalf("got %d records, want 1", len(recs))
	}
	r := recs[0]
	if r.VoucherNo != constants.Unknown {
		t.Errorf("VoucherNo = %q, want sentinel", r.VoucherNo)
	}
	if r.Date != constants.Unknown || r.MonthPeriod != constants.Unknown {
		t.Errorf("Date/MonthPeriod = %q/%q, want sentinels", r.Date, r.MonthPeriod)
	}
	if r.CostHead != constants.GeneralCostHead {
		t.Errorf("CostHead = %q, want %q", r.CostHead, constants.GeneralCostHead)
	}
	if r.Amount != 0 {
		t.Errorf("Amount = %v, want 0", r.Amount)
	}
	if r.PartyName != constants.Unknown {
		t.Errorf("PartyName = %q, want sentinel", r.PartyName)
	}
}

func TestAssembleMultiHead(t *testing.T) {
	text := "VR No. 0060\nDate:- 01-11-2025\n" +
		"93/020/91 Maintenance 1,38,357\n" +
		"11/222/33 Stores 0\n" +
		"44/555/66 Advances 4500\n" +
		"SBIN0004088\nABC Traders\n"

	tests := []struct {
		name      string
		keepZero  bool
		wantHeads []string
		wantAmts  []float64
	}{
		{
			name:      "zero rows kept by default policy",
			keepZero:  true,
			wantHeads: []string{"93/020/91", "11/222/33", "44/555/66"},
			wantAmts:  []float64{138357, 0, 4500},
		},
		{
			name:      "zero rows dropped when configured",
			keepZero:  false,
			wantHeads: []string{"93/020/91", "44/555/66"},
			wantAmts:  []float64{138357, 4500},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := NewAssembler()
			a.MultiHead = true
			a.KeepZeroAmounts = tt.keepZero

			recs := a.Assemble(entity.Document{Name: "multi.pdf", Text: text})
			if len(recs) != len(tt.wantHeads) {
				t.Fatalf("got %d records, want %d", len(recs), len(tt.wantHeads))
			}
			for i, r := range recs {
				if r.CostHead != tt.wantHeads[i] || r.Amount != tt.wantAmts[i] {
					t.Errorf("record %d = {%s %v}, want {%s %v}", i, r.CostHead, r.Amount, tt.wantHeads[i], tt.wantAmts[i])
				}
				if r.VoucherNo != "0060" {
					t.Errorf("record %d lost shared fields: voucher %q", i, r.VoucherNo)
				}
			}
		})
	}
}

func TestAssembleMultiHeadFallsBackWithoutLineItems(t *testing.T) {
	a := NewAssembler()
	a.MultiHead = true

	recs := a.Assemble(entity.Document{Name: "plain.pdf", Text: "VR No. 9\nSection: 260900\nTotal Amount 500"})
	if len(recs) != 1 {
		t.Fatalf("got %d records, want 1", len(recs))
	}
	if recs[0].CostHead != "260900" || recs[0].Amount != 500 {
		t.Errorf("fallback record = {%s %v}, want {260900 500}", recs[0].CostHead, recs[0].Amount)
	}
}

func TestAssemblePositional(t *testing.T) {
	doc := entity.Document{
		Name: "pos.pdf",
		Text: "DV No.: 4471 Date: 02-06-2025\nDV Total: 9000",
		Words: []entity.Word{
			{Text: "93/020/91", X: 40, Y: 700},
			{Text: "4,000", X: 120, Y: 700},
			{Text: "11/222/33", X: 400, Y: 650},
			{Text: "5000", X: 470, Y: 650},
		},
		PageWidth: 595,
	}

	a := NewAssembler()
	a.Positional = true

	recs := a.Assemble(doc)
	if len(recs) != 2 {
		t.Fatalf("got %d records, want 2", len(recs))
	}
	if recs[0].EntrySide != constants.SideReceipt || recs[0].Amount != 4000 {
		t.Errorf("record 0 = {%s %v}, want receipt 4000", recs[0].EntrySide, recs[0].Amount)
	}
	if recs[1].EntrySide != constants.SideCharge || recs[1].Amount != 5000 {
		t.Errorf("record 1 = {%s %v}, want charge 5000", recs[1].EntrySide, recs[1].Amount)
	}
	for i, r := range recs {
		if r.VoucherNo != "4471" || r.MonthPeriod != "June 2025" {
			t.Errorf("record %d lost shared fields: %+v", i, r)
		}
	}
}

func TestAssemblePositionalWithoutWordsFallsBack(t *testing.T) {
	a := NewAssembler()
	a.Positional = true

	recs := a.Assemble(entity.Document{Name: "x.pdf", Text: "DV No.: 5 DV Total: 80"})
	if len(recs) != 1 {
		t.Fatalf("got %d records, want 1", len(recs))
	}
	if recs[0].EntrySide != "" || recs[0].Amount != 80 {
		t.Errorf("fallback record = %+v", recs[0])
	}
}
