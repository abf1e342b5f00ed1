package service

import (
	"context"
	"errors"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/mmynk/nutrilog/internal/calculator"
	"github.com/mmynk/nutrilog/internal/models"
	"github.com/mmynk/nutrilog/internal/storage"
)

// ErrUserExists is the detail of a duplicate registration.
var ErrUserExists = errors.New("User already exists!")

// Profile is a user together with derived figures.
type Profile struct {
	User models.User `json:"user"`

	// BMR is the estimated basal metabolic rate in kcal/day.
	BMR float64 `json:"bmr"`
}

// Register validates and stores a new user.
func (s *NutritionService) Register(ctx context.Context, user *models.User) error {
	slog.Info("Register request received", "user_name", user.Name)

	if err := user.Validate(); err != nil {
		slog.Warn("Register validation failed", "user_name", user.Name, "error", err)
		return connect.NewError(connect.CodeInvalidArgument, err)
	}

	// Uniqueness check and insert are atomic in the store.
	if err := s.store.CreateUser(ctx, user); err != nil {
		if errors.Is(err, storage.ErrAlreadyExists) {
			slog.Warn("Register rejected, name taken", "user_name", user.Name)
			return connect.NewError(connect.CodeAlreadyExists, ErrUserExists)
		}
		slog.Error("Register failed", "user_name", user.Name, "error", err)
		return connect.NewError(connect.CodeInternal, err)
	}

	s.recorder.UserRegistered()
	slog.Info("User registered", "user_name", user.Name)
	return nil
}

// ListUsers returns every user in registration order.
func (s *NutritionService) ListUsers(ctx context.Context) ([]models.User, error) {
	users, err := s.store.ListUsers(ctx)
	if err != nil {
		slog.Error("ListUsers failed", "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	slog.Debug("ListUsers successful", "count", len(users))
	return users, nil
}

// GetProfile returns a user with their BMR.
func (s *NutritionService) GetProfile(ctx context.Context, name string) (*Profile, error) {
	user, err := s.store.GetUser(ctx, name)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, connect.NewError(connect.CodeNotFound, errors.New(userNotFound(name)))
	}
	if err != nil {
		slog.Error("GetProfile failed", "user_name", name, "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	bmr, err := calculator.BMR(user.Gender, user.Weight, user.Height, user.Age)
	if err != nil {
		// Only reachable for rows written around validation.
		slog.Error("BMR calculation failed", "user_name", name, "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	return &Profile{User: *user, BMR: bmr}, nil
}
