package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mmynk/nutrilog/internal/models"
)

// CreateMeal persists a meal and its ordered food items in one transaction.
func (s *SQLiteStore) CreateMeal(ctx context.Context, meal *models.Meal) error {
	if meal.ID == "" {
		meal.ID = uuid.New().String()
	}
	if meal.LoggedAt.IsZero() {
		meal.LoggedAt = time.Now()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		"INSERT INTO meals (id, user_name, meal_type, logged_at, source) VALUES (?, ?, ?, ?, ?)",
		meal.ID, meal.UserName, string(meal.MealType), meal.LoggedAt.UnixNano(), string(meal.Source),
	)
	if err != nil {
		return fmt.Errorf("failed to insert meal: %w", err)
	}

	for i, food := range meal.FoodItems {
		_, err = tx.ExecContext(ctx,
			"INSERT INTO meal_items (meal_id, position, food_name) VALUES (?, ?, ?)",
			meal.ID, i, food,
		)
		if err != nil {
			return fmt.Errorf("failed to insert meal item: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// ListMealsByUser returns the meals of userName in insertion order.
// Meals and items come back in one joined query so no second statement runs
// while the rows are open.
func (s *SQLiteStore) ListMealsByUser(ctx context.Context, userName string) ([]models.Meal, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT m.id, m.user_name, m.meal_type, m.logged_at, m.source, i.food_name
		FROM meals m
		LEFT JOIN meal_items i ON i.meal_id = m.id
		WHERE m.user_name = ?
		ORDER BY m.rowid, i.position`,
		userName,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get meals: %w", err)
	}
	defer rows.Close()

	meals := []models.Meal{}
	for rows.Next() {
		var (
			id, user, mealType, source string
			loggedAt                   int64
			food                       sql.NullString
		)
		if err := rows.Scan(&id, &user, &mealType, &loggedAt, &source, &food); err != nil {
			return nil, fmt.Errorf("failed to scan meal: %w", err)
		}

		if len(meals) == 0 || meals[len(meals)-1].ID != id {
			meals = append(meals, models.Meal{
				ID:        id,
				UserName:  user,
				MealType:  models.MealType(mealType),
				FoodItems: []string{},
				LoggedAt:  time.Unix(0, loggedAt),
				Source:    models.MealSource(source),
			})
		}
		if food.Valid {
			last := &meals[len(meals)-1]
			last.FoodItems = append(last.FoodItems, food.String)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate meals: %w", err)
	}

	return meals, nil
}
