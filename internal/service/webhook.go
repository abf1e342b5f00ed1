package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"connectrpc.com/connect"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/mmynk/nutrilog/internal/models"
	"github.com/mmynk/nutrilog/internal/webhook"
)

// ErrMissingWebhookFields is the detail for an empty user name or message.
var ErrMissingWebhookFields = errors.New("Missing 'user' or 'message'")

// WebhookResult is the answer to an accepted webhook message.
type WebhookResult struct {
	Message string       `json:"message"`
	Meal    *models.Meal `json:"meal"`
}

// Webhook parses a free-text message and logs the meal it describes.
func (s *NutritionService) Webhook(ctx context.Context, userName, message string) (*WebhookResult, error) {
	slog.Info("Webhook request received", "user_name", userName)

	if userName == "" || message == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, ErrMissingWebhookFields)
	}

	if err := s.requireUser(ctx, userName, fmt.Sprintf("User '%s' not found", userName)); err != nil {
		return nil, err
	}

	cmd, err := webhook.Parse(message, s.foods)
	if err != nil {
		var perr *webhook.ParseError
		if errors.As(err, &perr) {
			slog.Warn("Webhook message rejected", "user_name", userName, "kind", perr.Kind, "error", perr.Message)
		}
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}

	meal := &models.Meal{
		UserName:  userName,
		MealType:  cmd.MealType,
		FoodItems: cmd.FoodItems,
		Source:    models.SourceWebhook,
	}
	if err := s.storeMeal(ctx, meal); err != nil {
		return nil, err
	}

	return &WebhookResult{
		Message: fmt.Sprintf("%s logged for %s", cases.Title(language.Und).String(string(meal.MealType)), userName),
		Meal:    meal,
	}, nil
}
