// Package memory provides an in-process implementation of the storage.Store interface.
package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/mmynk/nutrilog/internal/models"
	"github.com/mmynk/nutrilog/internal/storage"
)

// Ensure MemoryStore implements storage.Store
var _ storage.Store = (*MemoryStore)(nil)

// MemoryStore keeps users and meals in slices guarded by a single RWMutex.
// Lookups are linear scans; the data set is expected to stay small.
type MemoryStore struct {
	mu    sync.RWMutex
	users []models.User
	meals []models.Meal
}

// New creates an empty MemoryStore.
func New() *MemoryStore {
	return &MemoryStore{}
}

// Close is a no-op. Contents are dropped with the store.
func (s *MemoryStore) Close() error {
	return nil
}

// CreateUser appends a user if the name is not taken.
func (s *MemoryStore) CreateUser(ctx context.Context, user *models.User) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Name == user.Name {
			return fmt.Errorf("user %q: %w", user.Name, storage.ErrAlreadyExists)
		}
	}

	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now()
	}
	s.users = append(s.users, copyUser(*user))
	return nil
}

// GetUser finds a user by exact name.
func (s *MemoryStore) GetUser(ctx context.Context, name string) (*models.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.Name == name {
			found := copyUser(u)
			return &found, nil
		}
	}
	return nil, fmt.Errorf("user %q: %w", name, storage.ErrNotFound)
}

// ListUsers returns a snapshot of all users.
func (s *MemoryStore) ListUsers(ctx context.Context) ([]models.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	users := make([]models.User, len(s.users))
	for i, u := range s.users {
		users[i] = copyUser(u)
	}
	return users, nil
}

// CreateMeal appends a meal.
func (s *MemoryStore) CreateMeal(ctx context.Context, meal *models.Meal) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if meal.ID == "" {
		meal.ID = uuid.New().String()
	}
	if meal.LoggedAt.IsZero() {
		meal.LoggedAt = time.Now()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.meals = append(s.meals, copyMeal(*meal))
	return nil
}

// ListMealsByUser returns the meals of userName in insertion order.
func (s *MemoryStore) ListMealsByUser(ctx context.Context, userName string) ([]models.Meal, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	meals := []models.Meal{}
	for _, m := range s.meals {
		if m.UserName == userName {
			meals = append(meals, copyMeal(m))
		}
	}
	return meals, nil
}

// copyUser detaches the Goal pointer so callers cannot mutate stored state.
func copyUser(u models.User) models.User {
	if u.Goal != nil {
		goal := *u.Goal
		u.Goal = &goal
	}
	return u
}

// copyMeal detaches the FoodItems backing array.
func copyMeal(m models.Meal) models.Meal {
	items := make([]string, len(m.FoodItems))
	copy(items, m.FoodItems)
	m.FoodItems = items
	return m
}
