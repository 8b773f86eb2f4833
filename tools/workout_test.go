package tools

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateWorkout_Splits(t *testing.T) {
	tests := []struct {
		days  int
		split string
		slots int
	}{
		{3, "Full Body (3x/week)", 3},
		{4, "Upper/Lower Split", 4},
		{5, "Push/Pull/Legs", 5},
		{6, "Push/Pull/Legs (2x/week)", 6},
	}
	for _, tt := range tests {
		result, err := callTool(t, "generate_workout", map[string]any{
			"goal":          "muscle_gain",
			"level":         "intermediate",
			"days_per_week": float64(tt.days),
			"equipment":     []any{"dumbbells", "barbell"},
		})
		require.NoError(t, err)
		assert.Equal(t, tt.split, result["split"])
		routine, ok := result["routine"].([]string)
		require.True(t, ok)
		assert.Len(t, routine, tt.slots)
	}
}

func TestGenerateWorkout_GoalGuidelines(t *testing.T) {
	result, err := callTool(t, "generate_workout", map[string]any{
		"goal":          "strength",
		"level":         "advanced",
		"days_per_week": float64(4),
		"equipment":     []any{"barbell"},
	})
	require.NoError(t, err)

	assert.Equal(t, "4-5 sets of 3-6 reps", result["sets_reps_guideline"])
	assert.Equal(t, "3-5 minutes", result["rest_periods"])
}

func TestGenerateWorkout_DurationStructure(t *testing.T) {
	result, err := callTool(t, "generate_workout", map[string]any{
		"goal":             "fat_loss",
		"level":            "beginner",
		"days_per_week":    float64(3),
		"equipment":        []any{"bodyweight"},
		"duration_minutes": float64(45),
	})
	require.NoError(t, err)

	structure, ok := result["workout_structure"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "30 minutes", structure["main_workout"])
}

func TestGenerateWorkout_RejectsBadDays(t *testing.T) {
	_, err := callTool(t, "generate_workout", map[string]any{
		"goal":          "muscle_gain",
		"level":         "beginner",
		"days_per_week": float64(7),
		"equipment":     []any{"dumbbells"},
	})
	assert.Error(t, err)
}

func TestExerciseRecommendations(t *testing.T) {
	result, err := callTool(t, "get_exercise_recommendations", map[string]any{
		"muscle_group": "chest",
		"equipment":    []any{"all"},
		"level":        "beginner",
	})
	require.NoError(t, err)

	exercises, ok := result["exercises"].([]exercise)
	require.True(t, ok)
	require.Len(t, exercises, 4)
	assert.Equal(t, "Push-ups", exercises[0].Name)
}

func TestExerciseRecommendations_EquipmentFilter(t *testing.T) {
	result, err := callTool(t, "get_exercise_recommendations", map[string]any{
		"muscle_group": "chest",
		"equipment":    []any{"dumbbells"},
		"level":        "beginner",
	})
	require.NoError(t, err)

	exercises := result["exercises"].([]exercise)
	require.NotEmpty(t, exercises)
	for _, ex := range exercises {
		// Bodyweight is implicitly available
		assert.Contains(t, []string{"dumbbells", "bodyweight"}, ex.Equipment)
	}
}

func TestExerciseRecommendations_AllMuscleGroupsCovered(t *testing.T) {
	for _, group := range []string{"chest", "back", "legs", "shoulders", "arms", "core"} {
		for _, level := range []string{"beginner", "intermediate", "advanced"} {
			result, err := callTool(t, "get_exercise_recommendations", map[string]any{
				"muscle_group": group,
				"equipment":    []any{"all"},
				"level":        level,
			})
			require.NoError(t, err)
			assert.Len(t, result["exercises"], 4, "%s/%s", group, level)
		}
	}
}

func TestProgressiveOverload_WeightIncrease(t *testing.T) {
	result, err := callTool(t, "calculate_progressive_overload", map[string]any{
		"current_weight":   100.0,
		"current_reps":     float64(12),
		"target_reps":      float64(12),
		"progression_type": "weight",
	})
	require.NoError(t, err)

	recommended, ok := result["recommended"].(map[string]any)
	require.True(t, ok)
	// 100 * 1.025 = 102.5
	assert.Equal(t, 102.5, recommended["weight"])
	assert.Contains(t, result["recommendation"], "Increase weight")
}

func TestProgressiveOverload_HoldWeightBelowTarget(t *testing.T) {
	result, err := callTool(t, "calculate_progressive_overload", map[string]any{
		"current_weight":   100.0,
		"current_reps":     float64(8),
		"target_reps":      float64(12),
		"progression_type": "weight",
	})
	require.NoError(t, err)

	recommended := result["recommended"].(map[string]any)
	assert.Equal(t, 100.0, recommended["weight"])
	assert.Contains(t, result["recommendation"], "Keep current weight")
}

func TestProgressiveOverload_DefaultsToWeightStrategy(t *testing.T) {
	result, err := callTool(t, "calculate_progressive_overload", map[string]any{
		"current_weight": 60.0,
		"current_reps":   float64(10),
		"target_reps":    float64(10),
	})
	require.NoError(t, err)
	assert.Equal(t, "weight", result["progression_strategy"])
}
