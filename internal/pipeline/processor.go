package pipeline

import (
	"context"
	"log/slog"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/voucherdesk/voucherdesk/internal/entity"
	"github.com/voucherdesk/voucherdesk/internal/extract"
)

// Assembly is total over any document text, so text acquisition is the only
// stage that can fail.
const stageExtract = "extract"

// ProgressFunc receives the running completion count after every document,
// success or failure, so the presentation layer can advance a progress bar.
type ProgressFunc func(done, total int)

// Failure is the per-document notice emitted when a pipeline stage fails.
// The document contributes zero records; the batch continues.
type Failure struct {
	File  string
	Stage string
	Err   string
}

// BatchResult holds a processed batch: records in submission order plus the
// structured failure report.
type BatchResult struct {
	BatchID  uuid.UUID
	Records  []entity.Record
	Failures []Failure
}

// Processor runs a batch of voucher documents through text acquisition and
// record assembly. Processing is strictly sequential in submission order;
// per-document error isolation and progress reporting both rely on that.
type Processor struct {
	logger    *slog.Logger
	extractor extract.TextExtractor
	layout    extract.LayoutExtractor
	assembler *Assembler
}

// NewProcessor wires a processor. layout may be nil when the assembler is
// not positional.
func NewProcessor(logger *slog.Logger, extractor extract.TextExtractor, layout extract.LayoutExtractor, assembler *Assembler) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	if assembler == nil {
		assembler = NewAssembler()
	}
	return &Processor{
		logger:    logger,
		extractor: extractor,
		layout:    layout,
		assembler: assembler,
	}
}

// ProcessBatch processes each path independently. A failure on one document
// is captured as a Failure and the remaining documents still run; nothing a
// single bad input does can abort the batch.
func (p *Processor) ProcessBatch(ctx context.Context, paths []string, progress ProgressFunc) BatchResult {
	result := BatchResult{BatchID: uuid.New()}
	total := len(paths)

	for i, path := range paths {
		doc, err := p.acquire(ctx, path)
		if err != nil {
			p.logger.Error("batch.document.failed",
				"batch_id", result.BatchID.String(),
				"file", filepath.Base(path),
				"stage", stageExtract,
				"err", err,
			)
			result.Failures = append(result.Failures, Failure{
				File:  filepath.Base(path),
				Stage: stageExtract,
				Err:   err.Error(),
			})
		} else {
			recs := p.assembler.Assemble(doc)
			result.Records = append(result.Records, recs...)
			p.logger.Debug("batch.document.ok",
				"batch_id", result.BatchID.String(),
				"file", doc.Name,
				"records", len(recs),
			)
		}
		if progress != nil {
			progress(i+1, total)
		}
	}

	p.logger.Info("batch.complete",
		"batch_id", result.BatchID.String(),
		"documents", total,
		"records", len(result.Records),
		"failures", len(result.Failures),
	)
	return result
}

func (p *Processor) acquire(ctx context.Context, path string) (entity.Document, error) {
	if p.assembler.Positional && p.layout != nil {
		return p.layout.ExtractLayout(ctx, path)
	}
	return p.extractor.Extract(ctx, path)
}
