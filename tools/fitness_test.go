package tools

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// callTool resolves a catalog tool by name and invokes it directly.
func callTool(t *testing.T, name string, args map[string]any) (map[string]any, error) {
	t.Helper()
	impl, ok := NewRegistry().Get(name)
	require.True(t, ok, "tool %s not in catalog", name)

	value, err := impl.Call(args)
	if err != nil {
		return nil, err
	}
	result, ok := value.(map[string]any)
	require.True(t, ok, "tool %s returned %T, want map", name, value)
	return result, nil
}

func TestCalculateBMI(t *testing.T) {
	result, err := callTool(t, "calculate_bmi", map[string]any{
		"weight_kg": 80.0, "height_cm": 180.0,
	})
	require.NoError(t, err)

	assert.Equal(t, 24.7, result["bmi"])
	assert.Equal(t, "Normal weight", result["category"])
	assert.Equal(t, "Healthy weight range", result["health_status"])
}

func TestCalculateBMI_Categories(t *testing.T) {
	tests := []struct {
		name     string
		weightKg float64
		category string
	}{
		{"underweight", 55, "Underweight"},
		{"normal", 75, "Normal weight"},
		{"overweight", 90, "Overweight"},
		{"obese", 110, "Obese"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := callTool(t, "calculate_bmi", map[string]any{
				"weight_kg": tt.weightKg, "height_cm": 180.0,
			})
			require.NoError(t, err)
			assert.Equal(t, tt.category, result["category"])
		})
	}
}

func TestCalculateBMI_RejectsMissingHeight(t *testing.T) {
	_, err := callTool(t, "calculate_bmi", map[string]any{"weight_kg": 80.0})
	assert.Error(t, err)
}

func TestCalculateTDEE(t *testing.T) {
	result, err := callTool(t, "calculate_tdee", map[string]any{
		"weight_kg":      80.0,
		"height_cm":      180.0,
		"age":            30.0,
		"gender":         "male",
		"activity_level": "moderate",
	})
	require.NoError(t, err)

	// Mifflin-St Jeor: 10*80 + 6.25*180 - 5*30 + 5 = 1780
	assert.Equal(t, 1780.0, result["bmr"])
	// 1780 * 1.55 = 2759
	assert.Equal(t, 2759.0, result["tdee"])
	assert.Equal(t, 2759.0, result["maintenance_calories"])

	loss, ok := result["weight_loss"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, 2259.0, loss["moderate"])

	gain, ok := result["weight_gain"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, 3259.0, gain["bulk"])
}

func TestCalculateTDEE_FemaleOffset(t *testing.T) {
	result, err := callTool(t, "calculate_tdee", map[string]any{
		"weight_kg":      60.0,
		"height_cm":      165.0,
		"age":            25.0,
		"gender":         "female",
		"activity_level": "sedentary",
	})
	require.NoError(t, err)

	// 10*60 + 6.25*165 - 5*25 - 161 = 1345.25 -> 1345
	assert.Equal(t, 1345.0, result["bmr"])
}

func TestCalculateTDEE_RejectsUnknownActivityLevel(t *testing.T) {
	_, err := callTool(t, "calculate_tdee", map[string]any{
		"weight_kg":      80.0,
		"height_cm":      180.0,
		"age":            30.0,
		"gender":         "male",
		"activity_level": "couch",
	})
	assert.Error(t, err)
}

func TestCalculateMacros(t *testing.T) {
	result, err := callTool(t, "calculate_macros", map[string]any{
		"calories": 2500.0, "goal": "muscle_gain", "weight_kg": 80.0,
	})
	require.NoError(t, err)

	protein, ok := result["protein"].(map[string]any)
	require.True(t, ok)
	// 80kg * 2.2 g/kg = 176g, within the calorie cap
	assert.Equal(t, 176.0, protein["grams"])

	carbs := result["carbs"].(map[string]any)
	fat := result["fat"].(map[string]any)
	totalCals := protein["calories"].(float64) + carbs["calories"].(float64) + fat["calories"].(float64)
	assert.InDelta(t, 2500.0, totalCals, 1.0)
}

func TestCalculateMacros_ProteinCappedOnLowBudget(t *testing.T) {
	result, err := callTool(t, "calculate_macros", map[string]any{
		"calories": 1200.0, "goal": "fat_loss", "weight_kg": 100.0,
	})
	require.NoError(t, err)

	// 100kg * 2.4 = 240g protein would be 960 kcal; capped at 40% of budget
	protein := result["protein"].(map[string]any)
	assert.Equal(t, 120.0, protein["grams"])
}

func TestCalculateOneRepMax(t *testing.T) {
	result, err := callTool(t, "calculate_one_rep_max", map[string]any{
		"weight": 100.0, "reps": 5.0,
	})
	require.NoError(t, err)

	// Epley: 100 * (1 + 5/30) = 116.7
	assert.Equal(t, 116.7, result["one_rep_max"])

	zones, ok := result["training_zones"].(map[string]any)
	require.True(t, ok)
	strength := zones["strength"].(map[string]any)
	assert.Equal(t, "80-95%", strength["percentage"])
	assert.Equal(t, "93.3-110.8", strength["weight_range"])
}

func TestCalculateOneRepMax_SingleRepIsWeight(t *testing.T) {
	result, err := callTool(t, "calculate_one_rep_max", map[string]any{
		"weight": 140.0, "reps": 1.0,
	})
	require.NoError(t, err)
	assert.Equal(t, 140.0, result["one_rep_max"])
}

func TestCalculateBodyFatNavy_Male(t *testing.T) {
	result, err := callTool(t, "calculate_body_fat_navy", map[string]any{
		"gender": "male", "waist_cm": 85.0, "neck_cm": 38.0, "height_cm": 180.0,
	})
	require.NoError(t, err)

	assert.Contains(t, result, "body_fat_percentage")
	assert.Equal(t, "male", result["gender"])
	assert.Contains(t,
		[]string{"Essential fat", "Athletes", "Fitness", "Average", "Obese"},
		result["category"],
	)
}

func TestCalculateBodyFatNavy_FemaleRequiresHip(t *testing.T) {
	_, err := callTool(t, "calculate_body_fat_navy", map[string]any{
		"gender": "female", "waist_cm": 70.0, "neck_cm": 32.0, "height_cm": 165.0,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "hip measurement required")

	result, err := callTool(t, "calculate_body_fat_navy", map[string]any{
		"gender": "female", "waist_cm": 70.0, "neck_cm": 32.0, "height_cm": 165.0, "hip_cm": 95.0,
	})
	require.NoError(t, err)
	assert.Contains(t, result, "body_fat_percentage")
}

func TestCalculateHeartRateZones(t *testing.T) {
	result, err := callTool(t, "calculate_heart_rate_zones", map[string]any{"age": 30.0})
	require.NoError(t, err)

	assert.Equal(t, 190.0, result["max_heart_rate"])

	zones, ok := result["training_zones"].(map[string]any)
	require.True(t, ok)
	require.Len(t, zones, 5)
	recovery := zones["zone_1_recovery"].(map[string]any)
	assert.Equal(t, "95-114 bpm", recovery["heart_rate"])
}

func TestCalculateHydration(t *testing.T) {
	result, err := callTool(t, "calculate_hydration", map[string]any{
		"weight_kg": 80.0, "activity_level": "moderate",
	})
	require.NoError(t, err)

	intake, ok := result["daily_intake"].(map[string]any)
	require.True(t, ok)
	// 80 * 33 * 1.2 = 3168 ml
	assert.Equal(t, 3168.0, intake["ml"])
	assert.Equal(t, 3.2, intake["liters"])
}

func TestCalculateHydration_DefaultsToModerate(t *testing.T) {
	explicit, err := callTool(t, "calculate_hydration", map[string]any{
		"weight_kg": 70.0, "activity_level": "moderate",
	})
	require.NoError(t, err)
	defaulted, err := callTool(t, "calculate_hydration", map[string]any{"weight_kg": 70.0})
	require.NoError(t, err)

	assert.Equal(t, explicit["daily_intake"], defaulted["daily_intake"])
}
