// Package service implements nutrilog's operations on top of a storage.Store.
//
// Errors returned by the service are *connect.Error values whose code places them
// in the error taxonomy (AlreadyExists, NotFound, InvalidArgument, Internal) and
// whose message is the human-readable detail shown to clients.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"connectrpc.com/connect"

	"github.com/mmynk/nutrilog/internal/fooddb"
	"github.com/mmynk/nutrilog/internal/storage"
)

// Recorder receives business events, typically backed by Prometheus counters.
type Recorder interface {
	MealLogged(mealType, source string)
	UserRegistered()
}

type nopRecorder struct{}

func (nopRecorder) MealLogged(string, string) {}
func (nopRecorder) UserRegistered()           {}

// NutritionService implements registration, meal logging, queries and webhook ingestion.
type NutritionService struct {
	store    storage.Store
	foods    *fooddb.Table
	now      func() time.Time
	recorder Recorder
}

// Option configures a NutritionService.
type Option func(*NutritionService)

// WithClock replaces time.Now. The clock's location defines calendar dates.
func WithClock(now func() time.Time) Option {
	return func(s *NutritionService) {
		s.now = now
	}
}

// WithRecorder sets the event recorder.
func WithRecorder(r Recorder) Option {
	return func(s *NutritionService) {
		s.recorder = r
	}
}

// NewNutritionService creates a NutritionService with the given storage backend and food table.
func NewNutritionService(store storage.Store, foods *fooddb.Table, opts ...Option) *NutritionService {
	s := &NutritionService{
		store:    store,
		foods:    foods,
		now:      time.Now,
		recorder: nopRecorder{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// requireUser maps a missing user to CodeNotFound with the given detail.
func (s *NutritionService) requireUser(ctx context.Context, name, notFoundDetail string) error {
	_, err := s.store.GetUser(ctx, name)
	if errors.Is(err, storage.ErrNotFound) {
		return connect.NewError(connect.CodeNotFound, errors.New(notFoundDetail))
	}
	if err != nil {
		slog.Error("User lookup failed", "user_name", name, "error", err)
		return connect.NewError(connect.CodeInternal, fmt.Errorf("user lookup failed: %w", err))
	}
	return nil
}

func userNotFound(name string) string {
	return fmt.Sprintf("User, '%s' not found!", name)
}
