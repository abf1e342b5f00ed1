package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/mmynk/nutrilog/internal/models"
	"github.com/mmynk/nutrilog/internal/storage"
)

// CreateUser inserts a new user into the database.
// ON CONFLICT keeps the uniqueness check and the insert in one statement.
func (s *SQLiteStore) CreateUser(ctx context.Context, user *models.User) error {
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now()
	}

	query := `
		INSERT INTO users (name, age, weight, height, gender, goal, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(name) DO NOTHING
	`

	var goal sql.NullString
	if user.Goal != nil {
		goal = sql.NullString{String: *user.Goal, Valid: true}
	}

	res, err := s.db.ExecContext(ctx, query,
		user.Name,
		user.Age,
		user.Weight,
		user.Height,
		string(user.Gender),
		goal,
		user.CreatedAt.UnixNano(),
	)
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("user %q: %w", user.Name, storage.ErrAlreadyExists)
	}

	return nil
}

// GetUser retrieves a user by exact name.
func (s *SQLiteStore) GetUser(ctx context.Context, name string) (*models.User, error) {
	query := `
		SELECT name, age, weight, height, gender, goal, created_at
		FROM users
		WHERE name = ?
	`

	user, err := scanUser(s.db.QueryRowContext(ctx, query, name))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("user %q: %w", name, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return user, nil
}

// ListUsers returns all users in insertion order.
func (s *SQLiteStore) ListUsers(ctx context.Context) ([]models.User, error) {
	query := `
		SELECT name, age, weight, height, gender, goal, created_at
		FROM users
		ORDER BY rowid
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	users := []models.User{}
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, *user)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating users: %w", err)
	}

	return users, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanUser(row scanner) (*models.User, error) {
	var (
		user      models.User
		gender    string
		goal      sql.NullString
		createdAt int64
	)
	if err := row.Scan(
		&user.Name,
		&user.Age,
		&user.Weight,
		&user.Height,
		&gender,
		&goal,
		&createdAt,
	); err != nil {
		return nil, err
	}

	user.Gender = models.Gender(gender)
	if goal.Valid {
		g := goal.String
		user.Goal = &g
	}
	user.CreatedAt = time.Unix(0, createdAt)
	return &user, nil
}
