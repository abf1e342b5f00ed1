package models

import (
	"fmt"
	"time"
)

// MealType is the slot of the day a meal belongs to.
type MealType string

const (
	Breakfast MealType = "breakfast"
	Lunch     MealType = "lunch"
	Dinner    MealType = "dinner"
)

// MealTypes lists the accepted meal types in display order.
var MealTypes = []MealType{Breakfast, Lunch, Dinner}

// Valid reports whether t is breakfast, lunch or dinner.
func (t MealType) Valid() bool {
	for _, mt := range MealTypes {
		if t == mt {
			return true
		}
	}
	return false
}

// MealSource records which entry point created a meal.
type MealSource string

const (
	SourceAPI     MealSource = "api"
	SourceWebhook MealSource = "webhook"
)

// Meal represents one logged meal.
type Meal struct {
	// ID is the unique identifier for the meal (UUID format), assigned by the store.
	ID string `json:"id"`

	// UserName references the owning User by name.
	UserName string `json:"userName"`

	MealType MealType `json:"mealType"`

	// FoodItems are food table keys in the order they were logged.
	// Duplicates are allowed.
	FoodItems []string `json:"foodItems"`

	// LoggedAt is the time the meal was recorded.
	LoggedAt time.Time `json:"loggedAt"`

	Source MealSource `json:"source"`
}

// Validate checks the request-shaped fields of a meal.
// It does not check that the user or the food items exist.
func (m *Meal) Validate() error {
	if m.UserName == "" {
		return fmt.Errorf("%w: userName is required", ErrValidation)
	}
	if !m.MealType.Valid() {
		return fmt.Errorf("%w: mealType must be one of breakfast, lunch, dinner, got '%s'", ErrValidation, m.MealType)
	}
	if m.FoodItems == nil {
		return fmt.Errorf("%w: foodItems is required", ErrValidation)
	}
	return nil
}

// LoggedOn reports whether the meal was logged on the calendar date of day,
// evaluated in day's location.
func (m *Meal) LoggedOn(day time.Time) bool {
	y1, m1, d1 := m.LoggedAt.In(day.Location()).Date()
	y2, m2, d2 := day.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
