package common

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/voucherdesk/voucherdesk/constants"
	"github.com/voucherdesk/voucherdesk/internal/fields"
)

// Party strategy names accepted in configuration. Exactly one strategy is
// active per run; the rules are mutually exclusive.
const (
	StrategyRoutingCount = "routing-count"
	StrategyBankKeyword  = "bank-keyword"
	StrategyAnchorOffset = "anchor-offset"
)

// Config holds all application configuration
type Config struct {
	LogLevel       string
	InputDir       string
	OutputDir      string
	HeuristicsPath string
	Heuristics     HeuristicsConfig
}

// HeuristicsConfig selects the extraction rules for a run. It is loaded from
// an optional YAML file; absent keys keep their defaults.
type HeuristicsConfig struct {
	PartyStrategy    string `yaml:"party_strategy"`
	KeepZeroAmounts  bool   `yaml:"keep_zero_amounts"`
	MultiHead        bool   `yaml:"multi_head"`
	Positional       bool   `yaml:"positional"`
	FallbackCostHead string `yaml:"fallback_cost_head"`
}

// DefaultHeuristics returns the stock ruleset: routing-code counting for the
// party, single cost head per voucher, zero-amount rows kept.
func DefaultHeuristics() HeuristicsConfig {
	return HeuristicsConfig{
		PartyStrategy:    StrategyRoutingCount,
		KeepZeroAmounts:  true,
		FallbackCostHead: constants.GeneralCostHead,
	}
}

// LoadConfig loads configuration from environment variables. Heuristics keys
// can be set per-environment too; the YAML file, when given, overlays them.
func LoadConfig() *Config {
	h := DefaultHeuristics()
	h.PartyStrategy = getEnv("VOUCHERDESK_PARTY_STRATEGY", h.PartyStrategy)
	h.KeepZeroAmounts = getEnvAsBool("VOUCHERDESK_KEEP_ZERO_AMOUNTS", h.KeepZeroAmounts)
	h.MultiHead = getEnvAsBool("VOUCHERDESK_MULTI_HEAD", h.MultiHead)
	h.Positional = getEnvAsBool("VOUCHERDESK_POSITIONAL", h.Positional)
	h.FallbackCostHead = getEnv("VOUCHERDESK_FALLBACK_COST_HEAD", h.FallbackCostHead)

	return &Config{
		LogLevel:       getEnv("VOUCHERDESK_LOG_LEVEL", "info"),
		InputDir:       getEnv("VOUCHERDESK_INPUT_DIR", ""),
		OutputDir:      getEnv("VOUCHERDESK_OUTPUT_DIR", "."),
		HeuristicsPath: getEnv("VOUCHERDESK_HEURISTICS", ""),
		Heuristics:     h,
	}
}

// LoadHeuristics reads and validates the YAML heuristics file at path and
// applies it over the current ruleset. The document is checked against the
// embedded schema before any field is taken, so a typoed key or a wrong type
// fails the whole load instead of silently running with defaults.
func (c *Config) LoadHeuristics(path string) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read heuristics %s: %w", path, err)
	}

	var raw map[string]any
	if err := yaml.Unmarshal(b, &raw); err != nil {
		return NewAppError("CONFIG_PARSE", fmt.Sprintf("heuristics %s is not valid YAML", path), err)
	}
	data, err := json.Marshal(raw)
	if err != nil {
		return fmt.Errorf("encode heuristics %s: %w", path, err)
	}
	if err := ValidateJSONAgainstSchema(heuristicsSchema, data); err != nil {
		return NewAppError("CONFIG_SCHEMA", fmt.Sprintf("heuristics %s rejected", path), err)
	}

	// Pointer fields so keys absent from the YAML keep their prior values,
	// including booleans that default to true.
	var overlay struct {
		PartyStrategy    *string `yaml:"party_strategy"`
		KeepZeroAmounts  *bool   `yaml:"keep_zero_amounts"`
		MultiHead        *bool   `yaml:"multi_head"`
		Positional       *bool   `yaml:"positional"`
		FallbackCostHead *string `yaml:"fallback_cost_head"`
	}
	if err := yaml.Unmarshal(b, &overlay); err != nil {
		return NewAppError("CONFIG_PARSE", fmt.Sprintf("heuristics %s rejected", path), err)
	}
	if overlay.PartyStrategy != nil {
		c.Heuristics.PartyStrategy = *overlay.PartyStrategy
	}
	if overlay.KeepZeroAmounts != nil {
		c.Heuristics.KeepZeroAmounts = *overlay.KeepZeroAmounts
	}
	if overlay.MultiHead != nil {
		c.Heuristics.MultiHead = *overlay.MultiHead
	}
	if overlay.Positional != nil {
		c.Heuristics.Positional = *overlay.Positional
	}
	if overlay.FallbackCostHead != nil {
		c.Heuristics.FallbackCostHead = *overlay.FallbackCostHead
	}
	return nil
}

// Strategy resolves the configured party strategy name to its implementation.
func (h HeuristicsConfig) Strategy() (fields.PartyStrategy, error) {
	switch h.PartyStrategy {
	case "", StrategyRoutingCount:
		return fields.RoutingCountStrategy{}, nil
	case StrategyBankKeyword:
		return fields.BankKeywordStrategy{}, nil
	case StrategyAnchorOffset:
		return fields.AnchorOffsetStrategy{}, nil
	default:
		return nil, NewAppError("CONFIG_ERROR",
			fmt.Sprintf("unknown party strategy %q", h.PartyStrategy), ErrInvalidInput)
	}
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}
