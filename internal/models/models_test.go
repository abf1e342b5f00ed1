package models

import (
	"errors"
	"testing"
	"time"
)

func TestUserValidate(t *testing.T) {
	valid := func() User {
		return User{Name: "Rahul", Age: 28, Weight: 70.5, Height: 175, Gender: GenderMale}
	}

	tests := []struct {
		name    string
		mutate  func(u *User)
		wantErr bool
	}{
		{"valid without goal", func(u *User) {}, false},
		{"valid with free-text goal", func(u *User) { g := "anything goes"; u.Goal = &g }, false},
		{"missing name", func(u *User) { u.Name = "" }, true},
		{"zero age", func(u *User) { u.Age = 0 }, true},
		{"negative weight", func(u *User) { u.Weight = -1 }, true},
		{"zero height", func(u *User) { u.Height = 0 }, true},
		{"unknown gender", func(u *User) { u.Gender = "other" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := valid()
			tt.mutate(&u)
			err := u.Validate()
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if !errors.Is(err, ErrValidation) {
					t.Errorf("expected ErrValidation, got %v", err)
				}
				return
			}
			if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestMealValidate(t *testing.T) {
	m := Meal{UserName: "Rahul", MealType: Lunch, FoodItems: []string{"Dal"}}
	if err := m.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	m.MealType = "snack"
	if err := m.Validate(); !errors.Is(err, ErrValidation) {
		t.Errorf("expected ErrValidation for snack, got %v", err)
	}

	m = Meal{UserName: "Rahul", MealType: Dinner}
	if err := m.Validate(); !errors.Is(err, ErrValidation) {
		t.Errorf("expected ErrValidation for missing foodItems, got %v", err)
	}
}

func TestMealLoggedOn(t *testing.T) {
	loc := time.FixedZone("IST", 5*3600+1800)
	meal := Meal{LoggedAt: time.Date(2025, 8, 6, 23, 30, 0, 0, loc)}

	if !meal.LoggedOn(time.Date(2025, 8, 6, 0, 0, 0, 0, loc)) {
		t.Error("expected meal to be logged on 2025-08-06 regardless of time of day")
	}
	if meal.LoggedOn(time.Date(2025, 8, 7, 0, 0, 0, 0, loc)) {
		t.Error("did not expect meal on 2025-08-07")
	}
	// 23:30 IST is 18:00 UTC on the same day.
	if !meal.LoggedOn(time.Date(2025, 8, 6, 12, 0, 0, 0, time.UTC)) {
		t.Error("expected date comparison in the location of the reference day")
	}
}

func TestNutrientsAdd(t *testing.T) {
	got := Nutrients{Calories: 250, Protein: 5, Carbs: 45, Fiber: 2}.Add(Nutrients{Calories: 180, Protein: 12, Carbs: 20, Fiber: 5})
	want := Nutrients{Calories: 430, Protein: 17, Carbs: 65, Fiber: 7}
	if got != want {
		t.Errorf("Add = %+v, want %+v", got, want)
	}
}
