package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/voucherdesk/voucherdesk/internal/export"
	"github.com/voucherdesk/voucherdesk/internal/ledger"
	"github.com/voucherdesk/voucherdesk/internal/render"
)

var (
	mergePrior    string
	mergeWith     []string
	mergeMarkPaid []string
	mergeOut      string
)

var mergeCmd = &cobra.Command{
	Use:   "merge",
	Short: "Merge exported registers and apply manual corrections",
	Long: `Merge concatenates one or more exported registers onto --prior in the
order given and writes the result back out. --mark-paid flips the paid flag
on every row with a matching voucher number; no other field is touched.`,
	RunE: runMerge,
}

func init() {
	mergeCmd.Flags().StringVar(&mergePrior, "prior", "", "register to merge onto (required)")
	mergeCmd.Flags().StringSliceVar(&mergeWith, "with", nil, "registers to append, in order")
	mergeCmd.Flags().StringSliceVar(&mergeMarkPaid, "mark-paid", nil, "voucher numbers to mark as paid")
	mergeCmd.Flags().StringVar(&mergeOut, "out", "", "output XLSX path (default: overwrite --prior)")
	_ = mergeCmd.MarkFlagRequired("prior")
	rootCmd.AddCommand(mergeCmd)
}

func runMerge(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger := newLogger(cfg)
	svc := export.NewService(logger)

	table, err := svc.LoadFile(mergePrior)
	if err != nil {
		return err
	}
	for _, path := range mergeWith {
		next, err := svc.LoadFile(path)
		if err != nil {
			return err
		}
		table = ledger.Merge(table, next.Records)
	}
	if len(mergeMarkPaid) > 0 {
		table = table.MarkPaid(mergeMarkPaid)
	}

	out := mergeOut
	if out == "" {
		out = mergePrior
	}
	b, err := svc.WriteXLSX(table)
	if err != nil {
		return err
	}
	if err := os.WriteFile(out, b, 0o644); err != nil {
		return fmt.Errorf("write register %s: %w", out, err)
	}

	render.Summary(os.Stdout, table)
	fmt.Fprintf(os.Stderr, "register written to %s\n", out)
	return nil
}
