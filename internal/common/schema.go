package common

// heuristicsSchema is the shape of the YAML heuristics file. Unknown keys are
// rejected so a misspelled rule name cannot pass as "use the default".
var heuristicsSchema = map[string]any{
	"type":                 "object",
	"additionalProperties": false,
	"properties": map[string]any{
		"party_strategy": map[string]any{
			"type": "string",
			"enum": []any{StrategyRoutingCount, StrategyBankKeyword, StrategyAnchorOffset},
		},
		"keep_zero_amounts":  map[string]any{"type": "boolean"},
		"multi_head":         map[string]any{"type": "boolean"},
		"positional":         map[string]any{"type": "boolean"},
		"fallback_cost_head": map[string]any{"type": "string", "minLength": 1},
	},
}
