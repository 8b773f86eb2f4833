package tools

import (
	"fmt"
	"strings"

	"github.com/eliciahq/elicia/tool"
)

// exercise is one row of the embedded exercise table.
type exercise struct {
	Name      string `json:"name"`
	Equipment string `json:"equipment"`
	Sets      string `json:"sets"`
	Reps      string `json:"reps"`
}

// exerciseTable is keyed by muscle group, then experience level.
var exerciseTable = map[string]map[string][]exercise{
	"chest": {
		"beginner": {
			{"Push-ups", "bodyweight", "3", "8-12"},
			{"Incline Push-ups", "bodyweight", "3", "10-15"},
			{"Dumbbell Bench Press", "dumbbells", "3", "8-12"},
			{"Dumbbell Flyes", "dumbbells", "3", "10-12"},
		},
		"intermediate": {
			{"Barbell Bench Press", "barbell", "4", "8-10"},
			{"Incline Dumbbell Press", "dumbbells", "3", "8-12"},
			{"Cable Flyes", "cables", "3", "12-15"},
			{"Dips", "bodyweight", "3", "8-12"},
		},
		"advanced": {
			{"Barbell Bench Press", "barbell", "5", "5-8"},
			{"Incline Barbell Press", "barbell", "4", "8-10"},
			{"Weighted Dips", "bodyweight", "4", "6-10"},
			{"Cable Crossovers", "cables", "3", "12-15"},
		},
	},
	"back": {
		"beginner": {
			{"Dumbbell Rows", "dumbbells", "3", "10-12"},
			{"Lat Pulldowns", "cables", "3", "10-12"},
			{"Seated Cable Rows", "cables", "3", "10-12"},
			{"Back Extensions", "bodyweight", "3", "12-15"},
		},
		"intermediate": {
			{"Pull-ups", "bodyweight", "4", "6-10"},
			{"Barbell Rows", "barbell", "4", "8-10"},
			{"T-Bar Rows", "barbell", "3", "10-12"},
			{"Face Pulls", "cables", "3", "15-20"},
		},
		"advanced": {
			{"Weighted Pull-ups", "bodyweight", "4", "6-8"},
			{"Deadlifts", "barbell", "4", "5-8"},
			{"Pendlay Rows", "barbell", "4", "6-8"},
			{"Chest Supported Rows", "dumbbells", "3", "10-12"},
		},
	},
	"legs": {
		"beginner": {
			{"Bodyweight Squats", "bodyweight", "3", "12-15"},
			{"Lunges", "bodyweight", "3", "10-12 each leg"},
			{"Leg Press", "machine", "3", "12-15"},
			{"Leg Curls", "machine", "3", "12-15"},
		},
		"intermediate": {
			{"Barbell Squats", "barbell", "4", "8-10"},
			{"Romanian Deadlifts", "barbell", "3", "10-12"},
			{"Bulgarian Split Squats", "dumbbells", "3", "10-12 each"},
			{"Leg Extensions", "machine", "3", "12-15"},
		},
		"advanced": {
			{"Back Squats", "barbell", "5", "5-8"},
			{"Front Squats", "barbell", "4", "6-8"},
			{"Deadlifts", "barbell", "4", "5-8"},
			{"Walking Lunges", "dumbbells", "4", "12 each leg"},
		},
	},
	"shoulders": {
		"beginner": {
			{"Dumbbell Shoulder Press", "dumbbells", "3", "10-12"},
			{"Lateral Raises", "dumbbells", "3", "12-15"},
			{"Front Raises", "dumbbells", "3", "12-15"},
			{"Face Pulls", "cables", "3", "15-20"},
		},
		"intermediate": {
			{"Overhead Press", "barbell", "4", "8-10"},
			{"Arnold Press", "dumbbells", "3", "10-12"},
			{"Lateral Raises", "dumbbells", "4", "12-15"},
			{"Reverse Flyes", "dumbbells", "3", "12-15"},
		},
		"advanced": {
			{"Push Press", "barbell", "4", "6-8"},
			{"Seated Dumbbell Press", "dumbbells", "4", "8-10"},
			{"Cable Lateral Raises", "cables", "4", "15-20"},
			{"Upright Rows", "barbell", "3", "10-12"},
		},
	},
	"arms": {
		"beginner": {
			{"Dumbbell Bicep Curls", "dumbbells", "3", "10-12"},
			{"Tricep Dips", "bodyweight", "3", "8-12"},
			{"Hammer Curls", "dumbbells", "3", "10-12"},
			{"Tricep Extensions", "dumbbells", "3", "10-12"},
		},
		"intermediate": {
			{"Barbell Curls", "barbell", "4", "8-10"},
			{"Close-Grip Bench Press", "barbell", "4", "8-10"},
			{"Preacher Curls", "dumbbells", "3", "10-12"},
			{"Skull Crushers", "barbell", "3", "10-12"},
		},
		"advanced": {
			{"Weighted Chin-ups", "bodyweight", "4", "6-8"},
			{"Close-Grip Bench Press", "barbell", "5", "6-8"},
			{"Cable Curls", "cables", "4", "12-15"},
			{"Overhead Tricep Extension", "dumbbells", "4", "10-12"},
		},
	},
	"core": {
		"beginner": {
			{"Plank", "bodyweight", "3", "30-60 seconds"},
			{"Crunches", "bodyweight", "3", "15-20"},
			{"Bicycle Crunches", "bodyweight", "3", "15-20"},
			{"Dead Bug", "bodyweight", "3", "10-12 each side"},
		},
		"intermediate": {
			{"Hanging Knee Raises", "bodyweight", "3", "12-15"},
			{"Russian Twists", "bodyweight", "3", "20-30"},
			{"Mountain Climbers", "bodyweight", "3", "20-30"},
			{"Cable Crunches", "cables", "3", "15-20"},
		},
		"advanced": {
			{"Hanging Leg Raises", "bodyweight", "4", "12-15"},
			{"Ab Wheel Rollouts", "ab_wheel", "4", "10-12"},
			{"Dragon Flags", "bodyweight", "3", "6-10"},
			{"Pallof Press", "cables", "3", "12-15 each side"},
		},
	},
}

func newGenerateWorkoutTool() *tool.FunctionTool {
	return tool.NewFunctionTool(
		"generate_workout",
		"Generate a personalized workout plan based on goals, experience level, and available equipment",
		map[string]any{
			"type": "object",
			"properties": map[string]any{
				"goal": map[string]any{
					"type":        "string",
					"enum":        []string{"muscle_gain", "strength", "fat_loss", "endurance", "general_fitness"},
					"description": "Primary fitness goal",
				},
				"level": map[string]any{
					"type":        "string",
					"enum":        []string{"beginner", "intermediate", "advanced"},
					"description": "Experience level",
				},
				"days_per_week": map[string]any{
					"type":        "integer",
					"description": "Number of workout days per week (3-6)",
					"minimum":     3,
					"maximum":     6,
				},
				"equipment": map[string]any{
					"type":        "array",
					"items":       map[string]any{"type": "string"},
					"description": "Available equipment (e.g., dumbbells, barbell, bodyweight, cables, machine)",
				},
				"duration_minutes": map[string]any{
					"type":        "integer",
					"description": "Target workout duration in minutes",
				},
			},
			"required": []string{"goal", "level", "days_per_week", "equipment"},
		},
		func(args map[string]any) (any, error) {
			goal := argString(args, "goal")
			level := argString(args, "level")
			daysPerWeek := argInt(args, "days_per_week")
			equipment := argStrings(args, "equipment")
			durationMinutes := argIntOr(args, "duration_minutes", 60)

			var split string
			var routine []string
			switch daysPerWeek {
			case 3:
				split = "Full Body (3x/week)"
				routine = []string{"Full Body A", "Full Body B", "Full Body C"}
			case 4:
				split = "Upper/Lower Split"
				routine = []string{"Upper Body A", "Lower Body A", "Upper Body B", "Lower Body B"}
			case 5:
				split = "Push/Pull/Legs"
				routine = []string{"Push Day", "Pull Day", "Legs", "Push Day", "Pull Day"}
			default: // 6 days
				split = "Push/Pull/Legs (2x/week)"
				routine = []string{"Push", "Pull", "Legs", "Push", "Pull", "Legs"}
			}

			var setsReps, rest string
			switch goal {
			case "strength":
				setsReps, rest = "4-5 sets of 3-6 reps", "3-5 minutes"
			case "muscle_gain":
				setsReps, rest = "3-4 sets of 8-12 reps", "60-90 seconds"
			case "endurance":
				setsReps, rest = "2-3 sets of 15-20 reps", "30-45 seconds"
			case "fat_loss":
				setsReps, rest = "3 sets of 12-15 reps", "45-60 seconds"
			default: // general_fitness
				setsReps, rest = "3 sets of 10-12 reps", "60 seconds"
			}

			return map[string]any{
				"split":               split,
				"days_per_week":       daysPerWeek,
				"routine":             routine,
				"goal":                goal,
				"level":               level,
				"sets_reps_guideline": setsReps,
				"rest_periods":        rest,
				"duration_minutes":    durationMinutes,
				"equipment":           equipment,
				"workout_structure": map[string]any{
					"warm_up":      "5-10 minutes of light cardio and dynamic stretching",
					"main_workout": fmt.Sprintf("%d minutes", durationMinutes-15),
					"cool_down":    "5 minutes of stretching",
				},
				"tips": []string{
					"Progressive overload: Gradually increase weight or reps each week",
					"Maintain proper form over heavy weight",
					"Stay hydrated throughout your workout",
					fmt.Sprintf("Rest %s between sets", rest),
					"Track your progress in a workout journal",
				},
			}, nil
		},
	)
}

func newExerciseRecommendationsTool() *tool.FunctionTool {
	return tool.NewFunctionTool(
		"get_exercise_recommendations",
		"Get exercise recommendations for specific muscle groups with equipment and experience level",
		map[string]any{
			"type": "object",
			"properties": map[string]any{
				"muscle_group": map[string]any{
					"type":        "string",
					"enum":        []string{"chest", "back", "legs", "shoulders", "arms", "core"},
					"description": "Target muscle group",
				},
				"equipment": map[string]any{
					"type":        "array",
					"items":       map[string]any{"type": "string"},
					"description": "Available equipment",
				},
				"level": map[string]any{
					"type":        "string",
					"enum":        []string{"beginner", "intermediate", "advanced"},
					"description": "Experience level",
				},
			},
			"required": []string{"muscle_group", "equipment", "level"},
		},
		func(args map[string]any) (any, error) {
			muscleGroup := strings.ToLower(argString(args, "muscle_group"))
			equipment := argStrings(args, "equipment")
			level := argString(args, "level")

			exercises := exerciseTable[muscleGroup][level]
			exercises = filterByEquipment(exercises, equipment)

			return map[string]any{
				"muscle_group":        muscleGroup,
				"level":               level,
				"exercises":           exercises,
				"equipment_available": equipment,
			}, nil
		},
	)
}

// filterByEquipment keeps exercises whose equipment is available. Bodyweight
// work is always considered available; ["all"] disables filtering.
func filterByEquipment(exercises []exercise, equipment []string) []exercise {
	if len(equipment) == 0 || (len(equipment) == 1 && strings.EqualFold(equipment[0], "all")) {
		return exercises
	}
	available := map[string]bool{"bodyweight": true}
	for _, e := range equipment {
		available[strings.ToLower(e)] = true
	}
	filtered := make([]exercise, 0, len(exercises))
	for _, ex := range exercises {
		if available[strings.ToLower(ex.Equipment)] {
			filtered = append(filtered, ex)
		}
	}
	return filtered
}

func newProgressiveOverloadTool() *tool.FunctionTool {
	return tool.NewFunctionTool(
		"calculate_progressive_overload",
		"Calculate how to progress in strength training with progressive overload",
		map[string]any{
			"type": "object",
			"properties": map[string]any{
				"current_weight": map[string]any{"type": "number", "description": "Current working weight"},
				"current_reps":   map[string]any{"type": "integer", "description": "Current reps performed"},
				"target_reps":    map[string]any{"type": "integer", "description": "Target rep range (upper limit)"},
				"progression_type": map[string]any{
					"type":        "string",
					"enum":        []string{"weight", "reps", "both"},
					"description": "Type of progression",
				},
			},
			"required": []string{"current_weight", "current_reps", "target_reps"},
		},
		func(args map[string]any) (any, error) {
			currentWeight := argFloat(args, "current_weight")
			currentReps := argInt(args, "current_reps")
			targetReps := argInt(args, "target_reps")
			progressionType := argStringOr(args, "progression_type", "weight")

			newWeight := currentWeight
			var recommendation string
			switch progressionType {
			case "weight":
				// Increase by a conservative 2.5% once the upper rep range is hit.
				if currentReps >= targetReps {
					newWeight = currentWeight * 1.025
					recommendation = fmt.Sprintf("Increase weight to %.1f and drop reps to lower range", round1(newWeight))
				} else {
					recommendation = fmt.Sprintf("Keep current weight %v, aim for %d reps", currentWeight, targetReps)
				}
			case "reps":
				recommendation = fmt.Sprintf("Keep weight at %v, add 1-2 reps per session", currentWeight)
			default: // both
				newWeight = currentWeight * 1.025
				recommendation = fmt.Sprintf("Increase weight to %.1f OR add 1-2 reps", round1(newWeight))
			}

			return map[string]any{
				"current": map[string]any{
					"weight": currentWeight,
					"reps":   currentReps,
				},
				"recommended": map[string]any{
					"weight":      round1(newWeight),
					"target_reps": targetReps,
				},
				"progression_strategy": progressionType,
				"recommendation":       recommendation,
				"notes": []string{
					"Only progress when you can complete all sets with good form",
					"Small increases are better than large jumps",
					"Aim to progress every 1-2 weeks",
					"Deload every 4-6 weeks to prevent overtraining",
				},
			}, nil
		},
	)
}
