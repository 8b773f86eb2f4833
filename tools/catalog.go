package tools

import (
	"math"
	"strings"

	"github.com/eliciahq/elicia/tool"
)

// NewRegistry builds the full built-in catalog in stable order. The registry
// is assembled once at startup and read-only afterwards.
func NewRegistry() *tool.Registry {
	r := tool.NewRegistry()
	r.MustRegister(
		newBMITool(),
		newTDEETool(),
		newMacrosTool(),
		newOneRepMaxTool(),
		newBodyFatNavyTool(),
		newHeartRateZonesTool(),
		newHydrationTool(),
		newGenerateWorkoutTool(),
		newExerciseRecommendationsTool(),
		newProgressiveOverloadTool(),
		newMealPlanTool(),
		newNutritionInfoTool(),
		newMealMacrosTool(),
		newHealthyAlternativesTool(),
	)
	return r
}

// Argument accessors. Schema validation has already established presence and
// type for required fields; these helpers only normalize JSON's float64
// numbers into the shapes the formulas want.

func argFloat(args map[string]any, key string) float64 {
	switch v := args[key].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	default:
		return 0
	}
}

func argInt(args map[string]any, key string) int {
	return int(argFloat(args, key))
}

func argString(args map[string]any, key string) string {
	s, _ := args[key].(string)
	return s
}

func argStringOr(args map[string]any, key, fallback string) string {
	if s, ok := args[key].(string); ok && s != "" {
		return s
	}
	return fallback
}

func argIntOr(args map[string]any, key string, fallback int) int {
	if _, ok := args[key]; !ok {
		return fallback
	}
	return argInt(args, key)
}

func argStrings(args map[string]any, key string) []string {
	raw, _ := args[key].([]any)
	out := make([]string, 0, len(raw))
	for _, v := range raw {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

// round1 rounds to one decimal place; round0 to a whole number.
func round1(x float64) float64 { return math.Round(x*10) / 10 }

func round0(x float64) float64 { return math.Round(x) }

// titleCase capitalizes each space-separated word, mirroring how food names
// are displayed.
func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
