package tools

import (
	"strings"

	"github.com/eliciahq/elicia/tool"
)

// nutritionFacts holds per-100g macros for one food.
type nutritionFacts struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

// nutritionDB lists common foods, per 100g serving.
var nutritionDB = map[string]nutritionFacts{
	"chicken breast": {165, 31, 0, 3.6},
	"salmon":         {208, 20, 0, 13},
	"egg":            {143, 13, 1, 10},
	"greek yogurt":   {59, 10, 3.6, 0.4},
	"oatmeal":        {389, 17, 66, 7},
	"brown rice":     {370, 7.5, 77, 2.9},
	"broccoli":       {34, 2.8, 7, 0.4},
	"sweet potato":   {86, 1.6, 20, 0.1},
	"banana":         {89, 1.1, 23, 0.3},
	"almonds":        {579, 21, 22, 50},
	"avocado":        {160, 2, 9, 15},
	"quinoa":         {368, 14, 64, 6},
	"tuna":           {130, 28, 0, 1},
	"beef":           {250, 26, 0, 15},
	"turkey":         {135, 30, 0, 0.7},
	"cottage cheese": {98, 11, 3.4, 4.3},
	"milk":           {42, 3.4, 5, 1},
	"apple":          {52, 0.3, 14, 0.2},
	"peanut butter":  {588, 25, 20, 50},
	"spinach":        {23, 2.9, 3.6, 0.4},
	"pasta":          {371, 13, 75, 1.5},
	"bread":          {265, 9, 49, 3.2},
	"cheese":         {402, 25, 1.3, 33},
}

var mealNames = map[int][]string{
	3: {"Breakfast", "Lunch", "Dinner"},
	4: {"Breakfast", "Lunch", "Snack", "Dinner"},
	5: {"Breakfast", "Morning Snack", "Lunch", "Afternoon Snack", "Dinner"},
	6: {"Breakfast", "Morning Snack", "Lunch", "Afternoon Snack", "Dinner", "Evening Snack"},
}

var mealSuggestions = map[string][]string{
	"Breakfast": {
		"Egg whites with oatmeal and berries",
		"Greek yogurt with granola and banana",
		"Whole grain toast with avocado and eggs",
		"Protein smoothie with oats and fruit",
		"Cottage cheese with nuts and honey",
	},
	"Lunch": {
		"Grilled chicken breast with brown rice and vegetables",
		"Salmon with quinoa and asparagus",
		"Turkey wrap with whole wheat tortilla and salad",
		"Lean beef stir-fry with mixed vegetables",
		"Tuna salad with whole grain crackers",
	},
	"Dinner": {
		"Baked chicken with sweet potato and broccoli",
		"Lean steak with quinoa and green beans",
		"Grilled fish with wild rice and roasted vegetables",
		"Turkey meatballs with pasta and marinara",
		"Shrimp with brown rice and stir-fried vegetables",
	},
	"Snack": {
		"Protein shake",
		"Apple with almond butter",
		"Greek yogurt with berries",
		"Rice cakes with peanut butter",
		"Protein bar",
		"Mixed nuts and dried fruit",
	},
	"Morning Snack": {
		"Protein shake",
		"Banana with peanut butter",
		"Hard-boiled eggs",
		"Greek yogurt",
	},
	"Afternoon Snack": {
		"Protein bar",
		"Apple with almond butter",
		"Cottage cheese with fruit",
		"Hummus with vegetables",
	},
	"Evening Snack": {
		"Casein protein shake",
		"Cottage cheese",
		"Greek yogurt",
		"Small portion of nuts",
	},
}

// suggestionsFor returns the top three suggestions for a meal slot.
func suggestionsFor(mealName string) []string {
	s, ok := mealSuggestions[mealName]
	if !ok {
		s = mealSuggestions["Snack"]
	}
	if len(s) > 3 {
		s = s[:3]
	}
	out := make([]string, len(s))
	copy(out, s)
	return out
}

func newMealPlanTool() *tool.FunctionTool {
	return tool.NewFunctionTool(
		"generate_meal_plan",
		"Generate a daily meal plan based on macronutrient targets and dietary preferences",
		map[string]any{
			"type": "object",
			"properties": map[string]any{
				"calories":  map[string]any{"type": "number", "description": "Daily calorie target"},
				"protein_g": map[string]any{"type": "number", "description": "Daily protein target in grams"},
				"carbs_g":   map[string]any{"type": "number", "description": "Daily carbs target in grams"},
				"fat_g":     map[string]any{"type": "number", "description": "Daily fat target in grams"},
				"meals_per_day": map[string]any{
					"type":        "integer",
					"description": "Number of meals per day (3-6)",
					"minimum":     3,
					"maximum":     6,
				},
				"dietary_preference": map[string]any{
					"type":        "string",
					"enum":        []string{"balanced", "high_protein", "low_carb", "vegetarian"},
					"description": "Dietary preference",
				},
			},
			"required": []string{"calories", "protein_g", "carbs_g", "fat_g"},
		},
		func(args map[string]any) (any, error) {
			calories := argFloat(args, "calories")
			proteinG := argFloat(args, "protein_g")
			carbsG := argFloat(args, "carbs_g")
			fatG := argFloat(args, "fat_g")
			mealsPerDay := argIntOr(args, "meals_per_day", 3)
			preference := argStringOr(args, "dietary_preference", "balanced")

			names, ok := mealNames[mealsPerDay]
			if !ok {
				names = mealNames[3]
			}

			perMeal := float64(mealsPerDay)
			meals := make([]map[string]any, 0, len(names))
			for _, name := range names {
				meals = append(meals, map[string]any{
					"meal":            name,
					"target_calories": round0(calories / perMeal),
					"target_macros": map[string]any{
						"protein": round1(proteinG / perMeal),
						"carbs":   round1(carbsG / perMeal),
						"fat":     round1(fatG / perMeal),
					},
					"suggestions": suggestionsFor(name),
				})
			}

			return map[string]any{
				"total_daily_targets": map[string]any{
					"calories":  calories,
					"protein_g": proteinG,
					"carbs_g":   carbsG,
					"fat_g":     fatG,
				},
				"meals_per_day":      mealsPerDay,
				"dietary_preference": preference,
				"meals":              meals,
				"hydration_reminder": "Drink 8-10 glasses of water throughout the day",
				"tips": []string{
					"Prep meals in advance for consistency",
					"Adjust portion sizes to hit your macros",
					"Include vegetables with every meal",
					"Choose whole food sources when possible",
				},
			}, nil
		},
	)
}

func newNutritionInfoTool() *tool.FunctionTool {
	return tool.NewFunctionTool(
		"get_nutrition_info",
		"Get detailed nutrition information for common foods",
		map[string]any{
			"type": "object",
			"properties": map[string]any{
				"food_item": map[string]any{"type": "string", "description": "Name of the food item"},
			},
			"required": []string{"food_item"},
		},
		func(args map[string]any) (any, error) {
			foodItem := argString(args, "food_item")
			facts, ok := nutritionDB[strings.ToLower(strings.TrimSpace(foodItem))]
			if !ok {
				return map[string]any{
					"food":    foodItem,
					"found":   false,
					"message": "Food not found in database. Try a more common food item or check spelling.",
				}, nil
			}
			return map[string]any{
				"food":         titleCase(foodItem),
				"serving_size": "100g",
				"nutrition": map[string]any{
					"calories": facts.Calories,
					"protein":  facts.Protein,
					"carbs":    facts.Carbs,
					"fat":      facts.Fat,
				},
				"found": true,
			}, nil
		},
	)
}

func newMealMacrosTool() *tool.FunctionTool {
	return tool.NewFunctionTool(
		"calculate_meal_macros",
		"Calculate total calories and macros for a meal made of multiple ingredients",
		map[string]any{
			"type": "object",
			"properties": map[string]any{
				"ingredients": map[string]any{
					"type":        "array",
					"description": "Ingredients of the meal",
					"items": map[string]any{
						"type": "object",
						"properties": map[string]any{
							"food":  map[string]any{"type": "string", "description": "Food name"},
							"grams": map[string]any{"type": "number", "description": "Amount in grams"},
						},
						"required": []string{"food", "grams"},
					},
				},
			},
			"required": []string{"ingredients"},
		},
		func(args map[string]any) (any, error) {
			raw, _ := args["ingredients"].([]any)

			var totalCalories, totalProtein, totalCarbs, totalFat float64
			breakdown := make([]map[string]any, 0, len(raw))

			for _, item := range raw {
				ingredient, ok := item.(map[string]any)
				if !ok {
					continue
				}
				foodName := argString(ingredient, "food")
				grams := argFloat(ingredient, "grams")

				facts, ok := nutritionDB[strings.ToLower(strings.TrimSpace(foodName))]
				if !ok {
					continue
				}
				multiplier := grams / 100

				cals := facts.Calories * multiplier
				protein := facts.Protein * multiplier
				carbs := facts.Carbs * multiplier
				fat := facts.Fat * multiplier

				totalCalories += cals
				totalProtein += protein
				totalCarbs += carbs
				totalFat += fat

				breakdown = append(breakdown, map[string]any{
					"food":     foodName,
					"grams":    grams,
					"calories": round1(cals),
					"protein":  round1(protein),
					"carbs":    round1(carbs),
					"fat":      round1(fat),
				})
			}

			return map[string]any{
				"ingredients": breakdown,
				"total": map[string]any{
					"calories":  round1(totalCalories),
					"protein_g": round1(totalProtein),
					"carbs_g":   round1(totalCarbs),
					"fat_g":     round1(totalFat),
				},
			}, nil
		},
	)
}

// alternativesDB maps a food to healthier substitutions and the rationale.
var alternativesDB = map[string]struct {
	Alternatives []string
	Reason       string
}{
	"white rice": {
		[]string{"Brown rice", "Quinoa", "Cauliflower rice"},
		"Higher fiber, more nutrients, better for blood sugar",
	},
	"white bread": {
		[]string{"Whole grain bread", "Ezekiel bread", "Oat bread"},
		"More fiber, slower digestion, more vitamins",
	},
	"pasta": {
		[]string{"Whole wheat pasta", "Lentil pasta", "Zucchini noodles"},
		"Higher protein/fiber, lower calories",
	},
	"soda": {
		[]string{"Sparkling water", "Green tea", "Water with lemon"},
		"Zero calories, no sugar, better hydration",
	},
	"chips": {
		[]string{"Air-popped popcorn", "Veggie chips", "Rice cakes"},
		"Lower calories, less fat, more filling",
	},
	"ice cream": {
		[]string{"Greek yogurt with fruit", "Protein ice cream", "Frozen banana"},
		"Higher protein, lower sugar, fewer calories",
	},
	"candy": {
		[]string{"Dark chocolate", "Fruit", "Dates"},
		"Natural sugars, antioxidants, fiber",
	},
	"fried chicken": {
		[]string{"Grilled chicken", "Baked chicken", "Air-fried chicken"},
		"Less fat, fewer calories, same protein",
	},
}

func newHealthyAlternativesTool() *tool.FunctionTool {
	return tool.NewFunctionTool(
		"get_healthy_alternatives",
		"Get healthier alternatives to common foods with explanations",
		map[string]any{
			"type": "object",
			"properties": map[string]any{
				"food_item": map[string]any{"type": "string", "description": "Food to find alternatives for"},
			},
			"required": []string{"food_item"},
		},
		func(args map[string]any) (any, error) {
			foodItem := argString(args, "food_item")
			alt, ok := alternativesDB[strings.ToLower(strings.TrimSpace(foodItem))]
			if !ok {
				return map[string]any{
					"original_food": foodItem,
					"found":         false,
					"message":       "No specific alternatives in database. General tip: Choose whole foods over processed, grilled over fried.",
				}, nil
			}
			return map[string]any{
				"original_food": foodItem,
				"alternatives":  alt.Alternatives,
				"reason":        alt.Reason,
				"found":         true,
			}, nil
		},
	)
}
