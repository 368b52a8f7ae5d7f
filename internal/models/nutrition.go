package models

import "time"

var MealTypes = []string{
	"breakfast", "lunch", "dinner", "snack", "pre_workout", "post_workout",
}

type NutritionLog struct {
	ID            int64     `json:"id"`
	UserID        int64     `json:"user_id"`
	Date          time.Time `json:"date"`
	Meals         []Meal    `json:"meals"`
	TotalCalories float64   `json:"total_calories"`
	TotalProtein  float64   `json:"total_protein"`
	TotalCarbs    float64   `json:"total_carbs"`
	TotalFats     float64   `json:"total_fats"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type Meal struct {
	MealType string    `json:"meal_type"`
	MealName string    `json:"meal_name"`
	Calories float64   `json:"calories"`
	Protein  float64   `json:"protein"`
	Carbs    float64   `json:"carbs"`
	Fats     float64   `json:"fats"`
	Timing   time.Time `json:"timing"`
	Notes    *string   `json:"notes,omitempty"`
}

// RecalculateTotals rederives the stored totals from the meal list. Totals
// are never settable on their own; every code path that mutates Meals must
// call this before saving.
func (n *NutritionLog) RecalculateTotals() {
	n.TotalCalories = 0
	n.TotalProtein = 0
	n.TotalCarbs = 0
	n.TotalFats = 0
	for _, meal := range n.Meals {
		n.TotalCalories += meal.Calories
		n.TotalProtein += meal.Protein
		n.TotalCarbs += meal.Carbs
		n.TotalFats += meal.Fats
	}
}

func IsValidMealType(mealType string) bool {
	for _, t := range MealTypes {
		if t == mealType {
			return true
		}
	}
	return false
}
