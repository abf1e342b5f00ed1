// Package storage provides abstractions for user and meal storage.
package storage

import (
	"context"
	"errors"

	"github.com/mmynk/nutrilog/internal/models"
)

var (
	// ErrNotFound is returned when a referenced record does not exist.
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists is returned when a unique key is already taken.
	ErrAlreadyExists = errors.New("already exists")
)

// Store defines the interface for user and meal storage operations.
// This abstraction allows swapping storage backends (memory, SQLite)
// without changing the service layer.
//
// Implementations must be safe for concurrent use. Collections are append-only
// and every list is returned in insertion order.
type Store interface {
	// CreateUser inserts a user. The name uniqueness check and the insert are atomic.
	// Returns ErrAlreadyExists if the name is taken.
	// The user.CreatedAt field is populated by the store when zero.
	CreateUser(ctx context.Context, user *models.User) error

	// GetUser retrieves a user by exact name.
	// Returns ErrNotFound if no such user exists.
	GetUser(ctx context.Context, name string) (*models.User, error)

	// ListUsers returns all users.
	ListUsers(ctx context.Context) ([]models.User, error)

	// CreateMeal appends a meal.
	// The meal.ID and meal.LoggedAt fields are populated by the store when empty.
	CreateMeal(ctx context.Context, meal *models.Meal) error

	// ListMealsByUser returns every meal owned by userName.
	ListMealsByUser(ctx context.Context, userName string) ([]models.Meal, error)

	// Close releases any resources held by the store.
	Close() error
}
