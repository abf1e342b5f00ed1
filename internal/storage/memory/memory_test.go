package memory

import (
	"context"
	"testing"

	"github.com/mmynk/nutrilog/internal/models"
	"github.com/mmynk/nutrilog/internal/storage"
	"github.com/mmynk/nutrilog/internal/storage/storagetest"
)

func TestMemoryStore(t *testing.T) {
	storagetest.Run(t, func(t *testing.T) storage.Store {
		return New()
	})
}

func TestMemoryStoreReturnsCopies(t *testing.T) {
	store := New()
	ctx := context.Background()

	goal := "maintain"
	if err := store.CreateUser(ctx, &models.User{Name: "Rahul", Age: 28, Weight: 70.5, Height: 175, Gender: models.GenderMale, Goal: &goal}); err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}
	goal = "changed"

	meal := &models.Meal{UserName: "Rahul", MealType: models.Lunch, FoodItems: []string{"Dal"}}
	if err := store.CreateMeal(ctx, meal); err != nil {
		t.Fatalf("CreateMeal failed: %v", err)
	}
	meal.FoodItems[0] = "Candy"

	user, err := store.GetUser(ctx, "Rahul")
	if err != nil {
		t.Fatalf("GetUser failed: %v", err)
	}
	if *user.Goal != "maintain" {
		t.Errorf("stored goal was mutated through caller pointer: %q", *user.Goal)
	}

	meals, err := store.ListMealsByUser(ctx, "Rahul")
	if err != nil {
		t.Fatalf("ListMealsByUser failed: %v", err)
	}
	if meals[0].FoodItems[0] != "Dal" {
		t.Errorf("stored items were mutated through caller slice: %v", meals[0].FoodItems)
	}
}

func TestMemoryStoreHonorsCanceledContext(t *testing.T) {
	store := New()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := store.CreateUser(ctx, &models.User{Name: "Rahul"}); err == nil {
		t.Error("expected error for canceled context")
	}
	if _, err := store.ListUsers(ctx); err == nil {
		t.Error("expected error for canceled context")
	}
}
