package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/voucherdesk/voucherdesk/internal/common"
)

var (
	cfgFile  string
	logLevel string
)

var rootCmd = &cobra.Command{
	Use:   "voucherdesk",
	Short: "Extract billing fields from PDF vouchers into a register",
	Long: `voucherdesk reads government billing vouchers (PDF), extracts the
voucher number, date, cost head, amount and party name with configurable
heuristics, and maintains an append-only billing register exported as XLSX.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	Run: func(cmd *cobra.Command, args []string) {
		_ = cmd.Help()
	},
}

// Execute runs the root command. Called by main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "path to a YAML heuristics file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error")
}

// newLogger builds the process-wide JSON logger. Logs go to stderr so stdout
// stays clean for the rendered register.
func newLogger(cfg *common.Config) *slog.Logger {
	level := cfg.LogLevel
	if logLevel != "" {
		level = logLevel
	}

	var lv slog.Level
	if err := lv.UnmarshalText([]byte(level)); err != nil {
		lv = slog.LevelInfo
	}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: lv}))
	slog.SetDefault(logger)
	return logger
}

// loadConfig resolves env configuration plus the optional heuristics file
// (--config flag winning over VOUCHERDESK_HEURISTICS).
func loadConfig() (*common.Config, error) {
	cfg := common.LoadConfig()
	path := cfg.HeuristicsPath
	if cfgFile != "" {
		path = cfgFile
	}
	if path != "" {
		if err := cfg.LoadHeuristics(path); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}
