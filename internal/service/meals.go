package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"connectrpc.com/connect"

	"github.com/mmynk/nutrilog/internal/calculator"
	"github.com/mmynk/nutrilog/internal/models"
	"github.com/mmynk/nutrilog/internal/webhook"
)

// DateLayout is the format of the date filter.
const DateLayout = "2006-01-02"

// MealLogs is the answer to a meal log query.
type MealLogs struct {
	Message string        `json:"message"`
	Meals   []models.Meal `json:"meals"`
}

// Status is the answer to a daily status query.
// Nutrients is nil when nothing was logged today.
type Status struct {
	Message   string            `json:"message"`
	Nutrients *models.Nutrients `json:"nutrients,omitempty"`
}

// LogMeal validates and stores a meal for an existing user.
//
// The user is checked first, then every food item; nothing is stored unless both pass.
// LoggedAt is always the current time.
func (s *NutritionService) LogMeal(ctx context.Context, meal *models.Meal) error {
	slog.Info("LogMeal request received",
		"user_name", meal.UserName,
		"meal_type", meal.MealType,
		"items_count", len(meal.FoodItems),
	)

	if err := meal.Validate(); err != nil {
		return connect.NewError(connect.CodeInvalidArgument, err)
	}

	if err := s.requireUser(ctx, meal.UserName, userNotFound(meal.UserName)); err != nil {
		return err
	}

	if missing := s.foods.Missing(meal.FoodItems); len(missing) > 0 {
		slog.Warn("LogMeal rejected, unknown food items", "user_name", meal.UserName, "items", missing)
		return connect.NewError(connect.CodeNotFound,
			fmt.Errorf("Food items, %s not in food_db!", webhook.FormatList(missing)))
	}

	if meal.Source == "" {
		meal.Source = models.SourceAPI
	}
	return s.storeMeal(ctx, meal)
}

// storeMeal stamps and persists an already validated meal.
func (s *NutritionService) storeMeal(ctx context.Context, meal *models.Meal) error {
	meal.ID = ""
	meal.LoggedAt = s.now()

	if err := s.store.CreateMeal(ctx, meal); err != nil {
		slog.Error("CreateMeal failed", "user_name", meal.UserName, "error", err)
		return connect.NewError(connect.CodeInternal, err)
	}

	s.recorder.MealLogged(string(meal.MealType), string(meal.Source))
	slog.Info("Meal logged",
		"meal_id", meal.ID,
		"user_name", meal.UserName,
		"meal_type", meal.MealType,
		"source", meal.Source,
	)
	return nil
}

// MealLogs lists a user's meals in insertion order. A non-empty date (YYYY-MM-DD)
// keeps only meals logged on that calendar date.
func (s *NutritionService) MealLogs(ctx context.Context, userName, date string) (*MealLogs, error) {
	var day time.Time
	if date != "" {
		var err error
		day, err = time.ParseInLocation(DateLayout, date, s.now().Location())
		if err != nil {
			return nil, connect.NewError(connect.CodeInvalidArgument,
				fmt.Errorf("%w: date must be in YYYY-MM-DD format, got '%s'", models.ErrValidation, date))
		}
	}

	if err := s.requireUser(ctx, userName, userNotFound(userName)); err != nil {
		return nil, err
	}

	meals, err := s.store.ListMealsByUser(ctx, userName)
	if err != nil {
		slog.Error("ListMealsByUser failed", "user_name", userName, "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	msg := fmt.Sprintf("All meals of user '%s'", userName)
	if date != "" {
		meals = calculator.MealsOn(meals, day)
		msg += fmt.Sprintf(" on date '%s'", day.Format(DateLayout))
	}
	if meals == nil {
		meals = []models.Meal{}
	}

	slog.Debug("MealLogs successful", "user_name", userName, "date", date, "count", len(meals))
	return &MealLogs{Message: msg, Meals: meals}, nil
}

// DailyStatus sums the nutrients of everything the user logged today.
func (s *NutritionService) DailyStatus(ctx context.Context, userName string) (*Status, error) {
	if err := s.requireUser(ctx, userName, userNotFound(userName)); err != nil {
		return nil, err
	}

	meals, err := s.store.ListMealsByUser(ctx, userName)
	if err != nil {
		slog.Error("ListMealsByUser failed", "user_name", userName, "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	today := calculator.MealsOn(meals, s.now())
	if len(today) == 0 {
		return &Status{Message: fmt.Sprintf("No meal logs found for user '%s' today.", userName)}, nil
	}

	total := calculator.SumNutrients(today, s.foods)
	slog.Debug("DailyStatus computed", "user_name", userName, "meals", len(today), "calories", total.Calories)

	return &Status{
		Message:   fmt.Sprintf("User, '%s' consumed nutrients today", userName),
		Nutrients: &total,
	}, nil
}

// ListFoods returns the food reference table.
func (s *NutritionService) ListFoods() []models.FoodItem {
	return s.foods.Items()
}
