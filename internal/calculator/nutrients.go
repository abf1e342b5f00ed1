package calculator

import (
	"time"

	"github.com/mmynk/nutrilog/internal/models"
)

// FoodLookup resolves a food name to its nutrient profile.
type FoodLookup interface {
	Lookup(name string) (models.Nutrients, bool)
}

// MealsOn returns the meals logged on the calendar date of day, preserving order.
func MealsOn(meals []models.Meal, day time.Time) []models.Meal {
	var out []models.Meal
	for i := range meals {
		if meals[i].LoggedOn(day) {
			out = append(out, meals[i])
		}
	}
	return out
}

// SumNutrients adds up the nutrients of every food item across meals.
// Items missing from foods contribute zero.
func SumNutrients(meals []models.Meal, foods FoodLookup) models.Nutrients {
	var total models.Nutrients
	for _, meal := range meals {
		for _, name := range meal.FoodItems {
			n, ok := foods.Lookup(name)
			if !ok {
				continue
			}
			total = total.Add(n)
		}
	}
	return total
}
