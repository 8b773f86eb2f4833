package tools

import (
	"fmt"
	"strings"

	"github.com/eliciahq/elicia/tool"
)

// Body metric calculators. All formulas are closed-form; constants follow the
// standard references (Mifflin-St Jeor, Epley, US Navy circumference method).

func newBMITool() *tool.FunctionTool {
	return tool.NewFunctionTool(
		"calculate_bmi",
		"Calculate Body Mass Index (BMI) and provide health assessment with recommendations",
		map[string]any{
			"type": "object",
			"properties": map[string]any{
				"weight_kg": map[string]any{"type": "number", "description": "Weight in kilograms"},
				"height_cm": map[string]any{"type": "number", "description": "Height in centimeters"},
			},
			"required": []string{"weight_kg", "height_cm"},
		},
		func(args map[string]any) (any, error) {
			weightKg := argFloat(args, "weight_kg")
			heightCm := argFloat(args, "height_cm")
			if heightCm <= 0 {
				return nil, fmt.Errorf("height must be positive")
			}

			heightM := heightCm / 100
			bmi := weightKg / (heightM * heightM)

			var category, healthStatus, recommendation string
			switch {
			case bmi < 18.5:
				category = "Underweight"
				healthStatus = "Below healthy weight range"
				recommendation = "Consider consulting a nutritionist to develop a healthy weight gain plan with nutrient-dense foods."
			case bmi < 25:
				category = "Normal weight"
				healthStatus = "Healthy weight range"
				recommendation = "Maintain your current weight through balanced nutrition and regular physical activity."
			case bmi < 30:
				category = "Overweight"
				healthStatus = "Above healthy weight range"
				recommendation = "Consider a balanced diet and regular exercise. Aim for 150+ minutes of moderate activity per week."
			default:
				category = "Obese"
				healthStatus = "Significantly above healthy weight range"
				recommendation = "Consult with healthcare professionals for a comprehensive weight management plan."
			}

			return map[string]any{
				"bmi":            round1(bmi),
				"category":       category,
				"health_status":  healthStatus,
				"recommendation": recommendation,
				"weight_kg":      weightKg,
				"height_cm":      heightCm,
			}, nil
		},
	)
}

var activityMultipliers = map[string]float64{
	"sedentary":   1.2,   // Little or no exercise
	"light":       1.375, // Light exercise 1-3 days/week
	"moderate":    1.55,  // Moderate exercise 3-5 days/week
	"active":      1.725, // Heavy exercise 6-7 days/week
	"very_active": 1.9,   // Very heavy exercise, physical job
}

func newTDEETool() *tool.FunctionTool {
	return tool.NewFunctionTool(
		"calculate_tdee",
		"Calculate Total Daily Energy Expenditure (TDEE) and daily calorie needs based on activity level",
		map[string]any{
			"type": "object",
			"properties": map[string]any{
				"weight_kg": map[string]any{"type": "number", "description": "Weight in kilograms"},
				"height_cm": map[string]any{"type": "number", "description": "Height in centimeters"},
				"age":       map[string]any{"type": "integer", "description": "Age in years"},
				"gender":    map[string]any{"type": "string", "enum": []string{"male", "female"}, "description": "Gender"},
				"activity_level": map[string]any{
					"type":        "string",
					"enum":        []string{"sedentary", "light", "moderate", "active", "very_active"},
					"description": "Physical activity level",
				},
			},
			"required": []string{"weight_kg", "height_cm", "age", "gender", "activity_level"},
		},
		func(args map[string]any) (any, error) {
			weightKg := argFloat(args, "weight_kg")
			heightCm := argFloat(args, "height_cm")
			age := argFloat(args, "age")
			gender := strings.ToLower(argString(args, "gender"))
			activityLevel := argString(args, "activity_level")

			// Mifflin-St Jeor equation
			bmr := 10*weightKg + 6.25*heightCm - 5*age + 5
			if gender != "male" {
				bmr = 10*weightKg + 6.25*heightCm - 5*age - 161
			}

			multiplier, ok := activityMultipliers[strings.ToLower(activityLevel)]
			if !ok {
				multiplier = 1.2
			}
			tdee := bmr * multiplier

			return map[string]any{
				"bmr":                  round0(bmr),
				"tdee":                 round0(tdee),
				"maintenance_calories": round0(tdee),
				"weight_loss": map[string]any{
					"mild":       round0(tdee - 250), // 0.25kg per week
					"moderate":   round0(tdee - 500), // 0.5kg per week
					"aggressive": round0(tdee - 750), // 0.75kg per week
				},
				"weight_gain": map[string]any{
					"lean":     round0(tdee + 200), // Lean muscle gain
					"moderate": round0(tdee + 350), // Balanced gain
					"bulk":     round0(tdee + 500), // Faster muscle gain
				},
				"activity_level": activityLevel,
			}, nil
		},
	)
}

func newMacrosTool() *tool.FunctionTool {
	return tool.NewFunctionTool(
		"calculate_macros",
		"Calculate macronutrient distribution (protein, carbs, fat) based on calorie goal and fitness objective",
		map[string]any{
			"type": "object",
			"properties": map[string]any{
				"calories": map[string]any{"type": "number", "description": "Daily calorie target"},
				"goal": map[string]any{
					"type":        "string",
					"enum":        []string{"muscle_gain", "fat_loss", "maintenance"},
					"description": "Fitness goal",
				},
				"weight_kg": map[string]any{"type": "number", "description": "Body weight in kg"},
			},
			"required": []string{"calories", "goal", "weight_kg"},
		},
		func(args map[string]any) (any, error) {
			calories := argFloat(args, "calories")
			goal := argString(args, "goal")
			weightKg := argFloat(args, "weight_kg")
			if calories <= 0 {
				return nil, fmt.Errorf("calories must be positive")
			}

			var proteinRatio, carbRatio, fatRatio, proteinPerKg float64
			switch goal {
			case "muscle_gain":
				proteinRatio, carbRatio, fatRatio = 0.30, 0.45, 0.25
				proteinPerKg = 2.2
			case "fat_loss":
				proteinRatio, carbRatio, fatRatio = 0.40, 0.30, 0.30
				proteinPerKg = 2.4 // Higher protein for muscle preservation
			default: // maintenance
				proteinRatio, carbRatio, fatRatio = 0.30, 0.40, 0.30
				proteinPerKg = 1.8
			}

			// Protein is anchored on bodyweight, capped against the calorie budget.
			proteinG := weightKg * proteinPerKg
			proteinCalories := proteinG * 4
			if proteinCalories > calories*(proteinRatio+0.1) {
				proteinG = (calories * proteinRatio) / 4
				proteinCalories = proteinG * 4
			}

			remainingCalories := calories - proteinCalories
			carbCalories := remainingCalories * (carbRatio / (carbRatio + fatRatio))
			fatCalories := remainingCalories - carbCalories

			carbsG := carbCalories / 4
			fatG := fatCalories / 9

			return map[string]any{
				"calories": round0(calories),
				"protein": map[string]any{
					"grams":      round1(proteinG),
					"calories":   round0(proteinCalories),
					"percentage": round1(proteinCalories / calories * 100),
				},
				"carbs": map[string]any{
					"grams":      round1(carbsG),
					"calories":   round0(carbCalories),
					"percentage": round1(carbCalories / calories * 100),
				},
				"fat": map[string]any{
					"grams":      round1(fatG),
					"calories":   round0(fatCalories),
					"percentage": round1(fatCalories / calories * 100),
				},
				"goal": goal,
			}, nil
		},
	)
}

func newOneRepMaxTool() *tool.FunctionTool {
	return tool.NewFunctionTool(
		"calculate_one_rep_max",
		"Calculate one rep max (1RM) and training zone recommendations for strength training",
		map[string]any{
			"type": "object",
			"properties": map[string]any{
				"weight": map[string]any{"type": "number", "description": "Weight lifted"},
				"reps":   map[string]any{"type": "integer", "description": "Number of repetitions performed"},
			},
			"required": []string{"weight", "reps"},
		},
		func(args map[string]any) (any, error) {
			weight := argFloat(args, "weight")
			reps := argFloat(args, "reps")
			if reps < 1 {
				return nil, fmt.Errorf("reps must be at least 1")
			}

			// Epley formula
			oneRM := weight
			if reps > 1 {
				oneRM = weight * (1 + reps/30)
			}

			zone := func(lo, hi float64, pct, reps, purpose string) map[string]any {
				return map[string]any{
					"percentage":   pct,
					"weight_range": fmt.Sprintf("%.1f-%.1f", round1(oneRM*lo), round1(oneRM*hi)),
					"reps":         reps,
					"purpose":      purpose,
				}
			}

			return map[string]any{
				"one_rep_max": round1(oneRM),
				"training_zones": map[string]any{
					"strength":    zone(0.80, 0.95, "80-95%", "1-5", "Maximum strength development"),
					"hypertrophy": zone(0.65, 0.85, "65-85%", "6-12", "Muscle growth"),
					"endurance":   zone(0.50, 0.70, "50-70%", "12-20+", "Muscular endurance"),
				},
			}, nil
		},
	)
}

func newBodyFatNavyTool() *tool.FunctionTool {
	return tool.NewFunctionTool(
		"calculate_body_fat_navy",
		"Estimate body fat percentage using US Navy method based on body measurements",
		map[string]any{
			"type": "object",
			"properties": map[string]any{
				"gender":    map[string]any{"type": "string", "enum": []string{"male", "female"}},
				"waist_cm":  map[string]any{"type": "number", "description": "Waist circumference in cm"},
				"neck_cm":   map[string]any{"type": "number", "description": "Neck circumference in cm"},
				"height_cm": map[string]any{"type": "number", "description": "Height in cm"},
				"hip_cm":    map[string]any{"type": "number", "description": "Hip circumference in cm (required for females)"},
			},
			"required": []string{"gender", "waist_cm", "neck_cm", "height_cm"},
		},
		func(args map[string]any) (any, error) {
			gender := strings.ToLower(argString(args, "gender"))
			waistCm := argFloat(args, "waist_cm")
			neckCm := argFloat(args, "neck_cm")
			heightCm := argFloat(args, "height_cm")

			var bodyFat float64
			if gender == "male" {
				bodyFat = 495/(1.0324-0.19077*(waistCm-neckCm)/2.54+0.15456*heightCm/2.54) - 450
			} else {
				if _, ok := args["hip_cm"]; !ok {
					return nil, fmt.Errorf("hip measurement required for females")
				}
				hipCm := argFloat(args, "hip_cm")
				bodyFat = 495/(1.29579-0.35004*(waistCm+hipCm-neckCm)/2.54+0.22100*heightCm/2.54) - 450
			}

			return map[string]any{
				"body_fat_percentage": round1(bodyFat),
				"category":            bodyFatCategory(gender, bodyFat),
				"gender":              gender,
			}, nil
		},
	)
}

func bodyFatCategory(gender string, bodyFat float64) string {
	if gender == "male" {
		switch {
		case bodyFat < 6:
			return "Essential fat"
		case bodyFat < 14:
			return "Athletes"
		case bodyFat < 18:
			return "Fitness"
		case bodyFat < 25:
			return "Average"
		default:
			return "Obese"
		}
	}
	switch {
	case bodyFat < 14:
		return "Essential fat"
	case bodyFat < 21:
		return "Athletes"
	case bodyFat < 25:
		return "Fitness"
	case bodyFat < 32:
		return "Average"
	default:
		return "Obese"
	}
}

func newHeartRateZonesTool() *tool.FunctionTool {
	return tool.NewFunctionTool(
		"calculate_heart_rate_zones",
		"Calculate heart rate training zones for cardio workouts",
		map[string]any{
			"type": "object",
			"properties": map[string]any{
				"age": map[string]any{"type": "integer", "description": "Age in years"},
			},
			"required": []string{"age"},
		},
		func(args map[string]any) (any, error) {
			age := argFloat(args, "age")
			maxHR := 220 - age

			zone := func(lo, hi float64, pct, purpose, intensity string) map[string]any {
				return map[string]any{
					"percentage": pct,
					"heart_rate": fmt.Sprintf("%.0f-%.0f bpm", round0(maxHR*lo), round0(maxHR*hi)),
					"purpose":    purpose,
					"intensity":  intensity,
				}
			}

			return map[string]any{
				"max_heart_rate":         maxHR,
				"resting_recommendation": "60-100 bpm for adults",
				"training_zones": map[string]any{
					"zone_1_recovery":  zone(0.50, 0.60, "50-60%", "Warm-up, cool-down, recovery", "Very light"),
					"zone_2_fat_burn":  zone(0.60, 0.70, "60-70%", "Fat burning, base fitness", "Light"),
					"zone_3_aerobic":   zone(0.70, 0.80, "70-80%", "Aerobic fitness, endurance", "Moderate"),
					"zone_4_anaerobic": zone(0.80, 0.90, "80-90%", "Performance, speed, power", "Hard"),
					"zone_5_max":       zone(0.90, 1.00, "90-100%", "Maximum effort, sprints", "Maximum"),
				},
			}, nil
		},
	)
}

func newHydrationTool() *tool.FunctionTool {
	return tool.NewFunctionTool(
		"calculate_hydration",
		"Calculate daily water intake recommendations based on weight and activity",
		map[string]any{
			"type": "object",
			"properties": map[string]any{
				"weight_kg": map[string]any{"type": "number", "description": "Body weight in kg"},
				"activity_level": map[string]any{
					"type":        "string",
					"enum":        []string{"sedentary", "moderate", "active"},
					"description": "Activity level",
				},
			},
			"required": []string{"weight_kg"},
		},
		func(args map[string]any) (any, error) {
			weightKg := argFloat(args, "weight_kg")
			activityLevel := argStringOr(args, "activity_level", "moderate")

			// Base recommendation of 33 ml per kg bodyweight.
			totalML := weightKg * 33
			switch strings.ToLower(activityLevel) {
			case "moderate":
				totalML *= 1.2
			case "active":
				totalML *= 1.5
			}

			oz := totalML / 29.5735 // fluid ounces

			return map[string]any{
				"daily_intake": map[string]any{
					"liters": round1(totalML / 1000),
					"ml":     round0(totalML),
					"oz":     round0(oz),
					"cups":   round1(oz / 8),
				},
				"tips": []string{
					"Drink a glass of water upon waking",
					"Have water before each meal",
					"Carry a reusable water bottle",
					"Increase intake during exercise and hot weather",
					"Monitor urine color (pale yellow is ideal)",
				},
			}, nil
		},
	)
}
