package tools

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var catalogOrder = []string{
	"calculate_bmi",
	"calculate_tdee",
	"calculate_macros",
	"calculate_one_rep_max",
	"calculate_body_fat_navy",
	"calculate_heart_rate_zones",
	"calculate_hydration",
	"generate_workout",
	"get_exercise_recommendations",
	"calculate_progressive_overload",
	"generate_meal_plan",
	"get_nutrition_info",
	"calculate_meal_macros",
	"get_healthy_alternatives",
}

func TestNewRegistry_CatalogContents(t *testing.T) {
	r := NewRegistry()
	require.Equal(t, len(catalogOrder), r.Len())

	defs := r.Definitions()
	require.Len(t, defs, len(catalogOrder))
	for i, name := range catalogOrder {
		assert.Equal(t, name, defs[i].Function.Name)
	}
}

func TestNewRegistry_DefinitionsAreComplete(t *testing.T) {
	for _, def := range NewRegistry().Definitions() {
		assert.Equal(t, "function", def.Type)
		assert.NotEmpty(t, def.Function.Description, def.Function.Name)

		params := def.Function.Parameters
		require.NotNil(t, params, def.Function.Name)
		assert.Equal(t, "object", params["type"], def.Function.Name)
		_, hasProps := params["properties"].(map[string]any)
		assert.True(t, hasProps, def.Function.Name)
	}
}
