package tools

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateMealPlan(t *testing.T) {
	result, err := callTool(t, "generate_meal_plan", map[string]any{
		"calories":  2400.0,
		"protein_g": 180.0,
		"carbs_g":   240.0,
		"fat_g":     80.0,
	})
	require.NoError(t, err)

	// Defaults to 3 meals
	assert.Equal(t, 3, result["meals_per_day"])
	meals, ok := result["meals"].([]map[string]any)
	require.True(t, ok)
	require.Len(t, meals, 3)

	breakfast := meals[0]
	assert.Equal(t, "Breakfast", breakfast["meal"])
	assert.Equal(t, 800.0, breakfast["target_calories"])
	macros := breakfast["target_macros"].(map[string]any)
	assert.Equal(t, 60.0, macros["protein"])

	suggestions, ok := breakfast["suggestions"].([]string)
	require.True(t, ok)
	assert.Len(t, suggestions, 3)
}

func TestGenerateMealPlan_SixMeals(t *testing.T) {
	result, err := callTool(t, "generate_meal_plan", map[string]any{
		"calories":      3000.0,
		"protein_g":     200.0,
		"carbs_g":       350.0,
		"fat_g":         90.0,
		"meals_per_day": float64(6),
	})
	require.NoError(t, err)

	meals := result["meals"].([]map[string]any)
	require.Len(t, meals, 6)
	assert.Equal(t, "Evening Snack", meals[5]["meal"])
	assert.Equal(t, 500.0, meals[0]["target_calories"])
}

func TestGenerateMealPlan_RejectsMealCountOutOfRange(t *testing.T) {
	_, err := callTool(t, "generate_meal_plan", map[string]any{
		"calories":      2000.0,
		"protein_g":     150.0,
		"carbs_g":       200.0,
		"fat_g":         70.0,
		"meals_per_day": float64(8),
	})
	assert.Error(t, err)
}

func TestGetNutritionInfo_Found(t *testing.T) {
	result, err := callTool(t, "get_nutrition_info", map[string]any{
		"food_item": "chicken breast",
	})
	require.NoError(t, err)

	assert.Equal(t, true, result["found"])
	assert.Equal(t, "Chicken Breast", result["food"])
	assert.Equal(t, "100g", result["serving_size"])

	nutrition, ok := result["nutrition"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, 165.0, nutrition["calories"])
	assert.Equal(t, 31.0, nutrition["protein"])
}

func TestGetNutritionInfo_LookupNormalizesCase(t *testing.T) {
	result, err := callTool(t, "get_nutrition_info", map[string]any{
		"food_item": "  Greek Yogurt ",
	})
	require.NoError(t, err)
	assert.Equal(t, true, result["found"])
}

func TestGetNutritionInfo_NotFound(t *testing.T) {
	result, err := callTool(t, "get_nutrition_info", map[string]any{
		"food_item": "unicorn steak",
	})
	require.NoError(t, err)

	assert.Equal(t, false, result["found"])
	assert.Contains(t, result["message"], "not found")
}

func TestCalculateMealMacros(t *testing.T) {
	result, err := callTool(t, "calculate_meal_macros", map[string]any{
		"ingredients": []any{
			map[string]any{"food": "chicken breast", "grams": 200.0},
			map[string]any{"food": "brown rice", "grams": 100.0},
		},
	})
	require.NoError(t, err)

	breakdown, ok := result["ingredients"].([]map[string]any)
	require.True(t, ok)
	require.Len(t, breakdown, 2)
	// 200g chicken breast: 2x the per-100g values
	assert.Equal(t, 330.0, breakdown[0]["calories"])
	assert.Equal(t, 62.0, breakdown[0]["protein"])

	total, ok := result["total"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, 700.0, total["calories"])
	assert.Equal(t, 69.5, total["protein_g"])
}

func TestCalculateMealMacros_SkipsUnknownFoods(t *testing.T) {
	result, err := callTool(t, "calculate_meal_macros", map[string]any{
		"ingredients": []any{
			map[string]any{"food": "unicorn steak", "grams": 500.0},
			map[string]any{"food": "apple", "grams": 100.0},
		},
	})
	require.NoError(t, err)

	breakdown := result["ingredients"].([]map[string]any)
	require.Len(t, breakdown, 1)
	assert.Equal(t, "apple", breakdown[0]["food"])

	total := result["total"].(map[string]any)
	assert.Equal(t, 52.0, total["calories"])
}

func TestGetHealthyAlternatives_Found(t *testing.T) {
	result, err := callTool(t, "get_healthy_alternatives", map[string]any{
		"food_item": "white rice",
	})
	require.NoError(t, err)

	assert.Equal(t, true, result["found"])
	alternatives, ok := result["alternatives"].([]string)
	require.True(t, ok)
	assert.Contains(t, alternatives, "Quinoa")
	assert.NotEmpty(t, result["reason"])
}

func TestGetHealthyAlternatives_NotFound(t *testing.T) {
	result, err := callTool(t, "get_healthy_alternatives", map[string]any{
		"food_item": "broccoli",
	})
	require.NoError(t, err)

	assert.Equal(t, false, result["found"])
	assert.Contains(t, result["message"], "General tip")
}
