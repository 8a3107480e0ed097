package pipeline

import (
	"github.com/voucherdesk/voucherdesk/internal/entity"
	"github.com/voucherdesk/voucherdesk/internal/fields"
)

// Assembler combines the field extractors' outputs for one document into
// register records. It performs no cross-field validation: a stated total
// that disagrees with the line items is exported as extracted.
type Assembler struct {
	// Party is the active payee-disambiguation strategy. Exactly one rule
	// runs per batch.
	Party fields.PartyStrategy

	// MultiHead emits one record per cost-head/amount line item instead of a
	// single record with the document total.
	MultiHead bool

	// Positional emits one record per receipt/charge entry derived from word
	// geometry. Takes precedence over MultiHead when the document carries
	// layout tokens.
	Positional bool

	// KeepZeroAmounts retains zero-amount line items as explicit zero rows.
	// Applies uniformly to the multi-head and positional paths.
	KeepZeroAmounts bool

	// FallbackCostHead overrides the "General" label when set.
	FallbackCostHead string
}

// NewAssembler returns an assembler with the default heuristics: routing-code
// distinct count for party disambiguation, single record per document,
// zero-amount rows kept.
func NewAssembler() *Assembler {
	return &Assembler{
		Party:           fields.RoutingCountStrategy{},
		KeepZeroAmounts: true,
	}
}

// Assemble produces the record(s) for one document. The plain path always
// yields exactly one record; the multi-head and positional paths yield one
// per discovered line item, falling back to the plain record when the
// document has none.
func (a *Assembler) Assemble(doc entity.Document) []entity.Record {
	party := a.Party.ClassifyParty(doc.Text)
	base := entity.Record{
		Date:        fields.Date(doc.Text),
		VoucherNo:   fields.VoucherNo(doc.Text),
		PartyName:   party.Name,
		PaymentType: party.Type,
		SourceFile:  doc.Name,
	}
	base.MonthPeriod = fields.MonthPeriod(base.Date)

	if a.Positional && len(doc.Words) > 0 {
		if recs := a.positionalRecords(doc, base); recs != nil {
			return recs
		}
	}
	if a.MultiHead {
		if recs := a.multiHeadRecords(doc, base); recs != nil {
			return recs
		}
	}

	base.CostHead = fields.CostHead(doc.Text, a.FallbackCostHead)
	base.Amount = fields.Amount(doc.Text)
	return []entity.Record{base}
}

func (a *Assembler) multiHeadRecords(doc entity.Document, base entity.Record) []entity.Record {
	var recs []entity.Record
	for _, item := range fields.MultiCostHeads(doc.Text) {
		if item.Amount == 0 && !a.KeepZeroAmounts {
			continue
		}
		rec := base
		rec.CostHead = item.Code
		rec.Amount = item.Amount
		recs = append(recs, rec)
	}
	return recs
}

func (a *Assembler) positionalRecords(doc entity.Document, base entity.Record) []entity.Record {
	var recs []entity.Record
	for _, e := range fields.PositionalEntries(doc.Words, doc.PageWidth) {
		if e.Amount == 0 && !a.KeepZeroAmounts {
			continue
		}
		rec := base
		rec.CostHead = e.Code
		rec.Amount = e.Amount
		rec.EntrySide = e.Side
		recs = append(recs, rec)
	}
	return recs
}
