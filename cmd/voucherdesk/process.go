package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/voucherdesk/voucherdesk/internal/common"
	"github.com/voucherdesk/voucherdesk/internal/export"
	"github.com/voucherdesk/voucherdesk/internal/extract"
	"github.com/voucherdesk/voucherdesk/internal/ledger"
	"github.com/voucherdesk/voucherdesk/internal/pipeline"
	"github.com/voucherdesk/voucherdesk/internal/render"
)

var (
	processDir        string
	processPrior      string
	processOut        string
	processMonths     []string
	ignorePriorErrors bool
)

var processCmd = &cobra.Command{
	Use:   "process [files...]",
	Short: "Process a batch of voucher PDFs and export the register",
	Long: `Process extracts billing fields from every voucher in --dir (or the
files given as arguments), appends the records to the prior register when
--prior is set, prints the merged table and writes it as an XLSX workbook.

A document that cannot be read is reported and skipped; it never aborts
the batch.`,
	RunE: runProcess,
}

func init() {
	processCmd.Flags().StringVar(&processDir, "dir", "", "directory of voucher PDFs to process")
	processCmd.Flags().StringVar(&processPrior, "prior", "", "previously exported register to merge into")
	processCmd.Flags().StringVar(&processOut, "out", "", "output XLSX path (default: timestamped name in the output dir)")
	processCmd.Flags().StringSliceVar(&processMonths, "month", nil,
		`limit the printed table to month periods like "December 2025" (export is unaffected)`)
	processCmd.Flags().BoolVar(&ignorePriorErrors, "ignore-prior-errors", false,
		"start from an empty register when the prior file is unreadable")
	rootCmd.AddCommand(processCmd)
}

func runProcess(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger := newLogger(cfg)

	paths := append([]string(nil), args...)
	dir := processDir
	if dir == "" && len(paths) == 0 {
		dir = cfg.InputDir
	}
	if dir != "" {
		listed, err := pipeline.ListDocuments(dir)
		if err != nil {
			return err
		}
		paths = append(paths, listed...)
	}
	if len(paths) == 0 {
		return fmt.Errorf("nothing to process: pass --dir or voucher files")
	}

	strategy, err := cfg.Heuristics.Strategy()
	if err != nil {
		return err
	}
	assembler := pipeline.NewAssembler()
	assembler.Party = strategy
	assembler.MultiHead = cfg.Heuristics.MultiHead
	assembler.Positional = cfg.Heuristics.Positional
	assembler.KeepZeroAmounts = cfg.Heuristics.KeepZeroAmounts
	assembler.FallbackCostHead = cfg.Heuristics.FallbackCostHead

	svc := export.NewService(logger)
	prior, err := loadPrior(logger, svc, processPrior)
	if err != nil {
		return err
	}

	extractor := extract.NewPDFExtractor(logger)
	processor := pipeline.NewProcessor(logger, extractor, extractor, assembler)

	result := processor.ProcessBatch(context.Background(), paths, func(done, total int) {
		fmt.Fprintf(os.Stderr, "\rprocessing %d/%d", done, total)
		if done == total {
			fmt.Fprintln(os.Stderr)
		}
	})

	merged := ledger.Merge(prior, result.Records)
	view := merged
	if len(processMonths) > 0 {
		view = merged.Filter(ledger.Filter{Months: processMonths})
	}
	render.Register(os.Stdout, view)
	render.Failures(os.Stderr, result.Failures)

	out := processOut
	if out == "" {
		out = filepath.Join(cfg.OutputDir, export.FileName(time.Now()))
	}
	b, err := svc.WriteXLSX(merged)
	if err != nil {
		return err
	}
	if err := os.WriteFile(out, b, 0o644); err != nil {
		return fmt.Errorf("write register %s: %w", out, err)
	}
	fmt.Fprintf(os.Stderr, "register written to %s\n", out)

	if len(result.Records) == 0 && len(result.Failures) > 0 {
		return fmt.Errorf("all %d documents failed", len(result.Failures))
	}
	return nil
}

// loadPrior loads the prior register. An unreadable file can be degraded to
// an empty register with --ignore-prior-errors; a column mismatch cannot,
// since merging onto a differently shaped table would corrupt it silently.
func loadPrior(logger *slog.Logger, svc *export.Service, path string) (ledger.Table, error) {
	if path == "" {
		return ledger.Table{}, nil
	}
	table, err := svc.LoadFile(path)
	if err == nil {
		return table, nil
	}
	if ignorePriorErrors && !errors.Is(err, common.ErrColumnMismatch) {
		logger.Warn("register.prior.skipped", "file", path, "err", err)
		return ledger.Table{}, nil
	}
	return ledger.Table{}, err
}
