// Package storagetest holds a behaviour suite shared by every storage.Store implementation.
package storagetest

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/mmynk/nutrilog/internal/models"
	"github.com/mmynk/nutrilog/internal/storage"
)

// Factory returns a fresh, empty store. The suite closes it.
type Factory func(t *testing.T) storage.Store

// Run exercises the storage.Store contract against stores built by newStore.
func Run(t *testing.T, newStore Factory) {
	ctx := context.Background()

	t.Run("CreateUser sets CreatedAt and rejects duplicates", func(t *testing.T) {
		store := newStore(t)
		defer store.Close()

		user := &models.User{Name: "Rahul", Age: 28, Weight: 70.5, Height: 175, Gender: models.GenderMale}
		if err := store.CreateUser(ctx, user); err != nil {
			t.Fatalf("CreateUser failed: %v", err)
		}
		if user.CreatedAt.IsZero() {
			t.Error("Expected CreatedAt to be set")
		}

		dup := &models.User{Name: "Rahul", Age: 40, Weight: 80, Height: 180, Gender: models.GenderMale}
		err := store.CreateUser(ctx, dup)
		if !errors.Is(err, storage.ErrAlreadyExists) {
			t.Fatalf("Expected ErrAlreadyExists, got %v", err)
		}

		// Names are case-sensitive.
		other := &models.User{Name: "rahul", Age: 40, Weight: 80, Height: 180, Gender: models.GenderMale}
		if err := store.CreateUser(ctx, other); err != nil {
			t.Errorf("Expected differently cased name to register, got %v", err)
		}
	})

	t.Run("GetUser round-trips optional goal", func(t *testing.T) {
		store := newStore(t)
		defer store.Close()

		goal := "weight_loss"
		withGoal := &models.User{Name: "Anita", Age: 32, Weight: 60, Height: 162, Gender: models.GenderFemale, Goal: &goal}
		withoutGoal := &models.User{Name: "Rahul", Age: 28, Weight: 70.5, Height: 175, Gender: models.GenderMale}
		for _, u := range []*models.User{withGoal, withoutGoal} {
			if err := store.CreateUser(ctx, u); err != nil {
				t.Fatalf("CreateUser failed: %v", err)
			}
		}

		got, err := store.GetUser(ctx, "Anita")
		if err != nil {
			t.Fatalf("GetUser failed: %v", err)
		}
		if got.Goal == nil || *got.Goal != "weight_loss" {
			t.Errorf("Goal mismatch: got %v, want weight_loss", got.Goal)
		}
		if got.Age != 32 || got.Weight != 60 || got.Height != 162 || got.Gender != models.GenderFemale {
			t.Errorf("Unexpected user: %+v", got)
		}

		got, err = store.GetUser(ctx, "Rahul")
		if err != nil {
			t.Fatalf("GetUser failed: %v", err)
		}
		if got.Goal != nil {
			t.Errorf("Expected nil goal, got %q", *got.Goal)
		}
	})

	t.Run("GetUser returns ErrNotFound", func(t *testing.T) {
		store := newStore(t)
		defer store.Close()

		_, err := store.GetUser(ctx, "nobody")
		if !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("Expected ErrNotFound, got %v", err)
		}
	})

	t.Run("ListUsers keeps insertion order", func(t *testing.T) {
		store := newStore(t)
		defer store.Close()

		users, err := store.ListUsers(ctx)
		if err != nil {
			t.Fatalf("ListUsers failed: %v", err)
		}
		if len(users) != 0 {
			t.Fatalf("Expected empty store, got %d users", len(users))
		}

		names := []string{"Zed", "Anita", "Rahul"}
		for _, name := range names {
			u := &models.User{Name: name, Age: 30, Weight: 60, Height: 170, Gender: models.GenderFemale}
			if err := store.CreateUser(ctx, u); err != nil {
				t.Fatalf("CreateUser(%s) failed: %v", name, err)
			}
		}

		users, err = store.ListUsers(ctx)
		if err != nil {
			t.Fatalf("ListUsers failed: %v", err)
		}
		if len(users) != len(names) {
			t.Fatalf("Expected %d users, got %d", len(names), len(users))
		}
		for i, name := range names {
			if users[i].Name != name {
				t.Errorf("users[%d] = %s, want %s", i, users[i].Name, name)
			}
		}
	})

	t.Run("CreateMeal assigns ID and keeps item order", func(t *testing.T) {
		store := newStore(t)
		defer store.Close()
		mustCreateUser(t, store, "Rahul")

		meal := &models.Meal{
			UserName:  "Rahul",
			MealType:  models.Lunch,
			FoodItems: []string{"Jeera Rice", "Dal", "Jeera Rice"},
			Source:    models.SourceAPI,
		}
		if err := store.CreateMeal(ctx, meal); err != nil {
			t.Fatalf("CreateMeal failed: %v", err)
		}
		if meal.ID == "" {
			t.Error("Expected meal ID to be generated")
		}
		if meal.LoggedAt.IsZero() {
			t.Error("Expected LoggedAt to be set")
		}

		meals, err := store.ListMealsByUser(ctx, "Rahul")
		if err != nil {
			t.Fatalf("ListMealsByUser failed: %v", err)
		}
		if len(meals) != 1 {
			t.Fatalf("Expected 1 meal, got %d", len(meals))
		}
		got := meals[0]
		if got.ID != meal.ID || got.MealType != models.Lunch || got.Source != models.SourceAPI {
			t.Errorf("Unexpected meal: %+v", got)
		}
		if !got.LoggedAt.Equal(meal.LoggedAt) {
			t.Errorf("LoggedAt mismatch: got %v, want %v", got.LoggedAt, meal.LoggedAt)
		}
		want := []string{"Jeera Rice", "Dal", "Jeera Rice"}
		if len(got.FoodItems) != len(want) {
			t.Fatalf("FoodItems = %v, want %v", got.FoodItems, want)
		}
		for i := range want {
			if got.FoodItems[i] != want[i] {
				t.Errorf("FoodItems[%d] = %s, want %s", i, got.FoodItems[i], want[i])
			}
		}
	})

	t.Run("ListMealsByUser filters by owner in insertion order", func(t *testing.T) {
		store := newStore(t)
		defer store.Close()
		mustCreateUser(t, store, "Rahul")
		mustCreateUser(t, store, "Anita")

		base := time.Date(2025, 8, 6, 12, 0, 0, 0, time.UTC)
		// Out of chronological order on purpose.
		logs := []struct {
			user string
			at   time.Time
			kind models.MealType
		}{
			{"Rahul", base.Add(2 * time.Hour), models.Dinner},
			{"Anita", base, models.Lunch},
			{"Rahul", base.Add(-4 * time.Hour), models.Breakfast},
			{"Rahul", base, models.Lunch},
		}
		for _, l := range logs {
			meal := &models.Meal{UserName: l.user, MealType: l.kind, FoodItems: []string{"Dal"}, LoggedAt: l.at, Source: models.SourceAPI}
			if err := store.CreateMeal(ctx, meal); err != nil {
				t.Fatalf("CreateMeal failed: %v", err)
			}
		}

		meals, err := store.ListMealsByUser(ctx, "Rahul")
		if err != nil {
			t.Fatalf("ListMealsByUser failed: %v", err)
		}
		wantTypes := []models.MealType{models.Dinner, models.Breakfast, models.Lunch}
		if len(meals) != len(wantTypes) {
			t.Fatalf("Expected %d meals, got %d", len(wantTypes), len(meals))
		}
		for i, mt := range wantTypes {
			if meals[i].MealType != mt {
				t.Errorf("meals[%d].MealType = %s, want %s", i, meals[i].MealType, mt)
			}
			if meals[i].UserName != "Rahul" {
				t.Errorf("meals[%d] belongs to %s", i, meals[i].UserName)
			}
		}

		none, err := store.ListMealsByUser(ctx, "Nobody")
		if err != nil {
			t.Fatalf("ListMealsByUser failed: %v", err)
		}
		if len(none) != 0 {
			t.Errorf("Expected no meals, got %d", len(none))
		}
	})

	t.Run("CreateMeal accepts an empty item list", func(t *testing.T) {
		store := newStore(t)
		defer store.Close()
		mustCreateUser(t, store, "Rahul")

		meal := &models.Meal{UserName: "Rahul", MealType: models.Lunch, FoodItems: []string{}, Source: models.SourceWebhook}
		if err := store.CreateMeal(ctx, meal); err != nil {
			t.Fatalf("CreateMeal failed: %v", err)
		}

		meals, err := store.ListMealsByUser(ctx, "Rahul")
		if err != nil {
			t.Fatalf("ListMealsByUser failed: %v", err)
		}
		if len(meals) != 1 || len(meals[0].FoodItems) != 0 {
			t.Errorf("Expected one meal with no items, got %+v", meals)
		}
	})

	t.Run("concurrent registration of one name succeeds once", func(t *testing.T) {
		store := newStore(t)
		defer store.Close()

		const workers = 16
		var (
			wg        sync.WaitGroup
			successes atomic.Int32
			conflicts atomic.Int32
		)
		for i := 0; i < workers; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				u := &models.User{Name: "Rahul", Age: 20 + i, Weight: 70, Height: 175, Gender: models.GenderMale}
				err := store.CreateUser(ctx, u)
				switch {
				case err == nil:
					successes.Add(1)
				case errors.Is(err, storage.ErrAlreadyExists):
					conflicts.Add(1)
				default:
					t.Errorf("unexpected error: %v", err)
				}
			}(i)
		}
		wg.Wait()

		if successes.Load() != 1 {
			t.Errorf("Expected exactly 1 success, got %d", successes.Load())
		}
		if conflicts.Load() != workers-1 {
			t.Errorf("Expected %d conflicts, got %d", workers-1, conflicts.Load())
		}
	})

	t.Run("concurrent meal logging loses no writes", func(t *testing.T) {
		store := newStore(t)
		defer store.Close()
		mustCreateUser(t, store, "Rahul")

		const workers = 20
		var wg sync.WaitGroup
		for i := 0; i < workers; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				meal := &models.Meal{UserName: "Rahul", MealType: models.Lunch, FoodItems: []string{"Dal"}, Source: models.SourceAPI}
				if err := store.CreateMeal(ctx, meal); err != nil {
					t.Errorf("CreateMeal failed: %v", err)
				}
			}()
		}
		wg.Wait()

		meals, err := store.ListMealsByUser(ctx, "Rahul")
		if err != nil {
			t.Fatalf("ListMealsByUser failed: %v", err)
		}
		if len(meals) != workers {
			t.Errorf("Expected %d meals, got %d", workers, len(meals))
		}
	})
}

func mustCreateUser(t *testing.T, store storage.Store, name string) {
	t.Helper()
	u := &models.User{Name: name, Age: 30, Weight: 65, Height: 170, Gender: models.GenderFemale}
	if err := store.CreateUser(context.Background(), u); err != nil {
		t.Fatalf("CreateUser(%s) failed: %v", name, err)
	}
}
