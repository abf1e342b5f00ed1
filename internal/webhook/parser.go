// Package webhook parses free-text meal messages such as
//
//	log lunch: Jeera Rice, Dal
//
// into a meal type and an ordered list of food names.
package webhook

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/mmynk/nutrilog/internal/models"
)

// Prefix every message must start with.
const Prefix = "log "

// FormatHint is the message of a generic format error.
const FormatHint = "Invalid message format. Expected: 'log <meal>: item1, item2, ...'"

// Kind classifies a parse failure.
type Kind string

const (
	KindFormat      Kind = "format"
	KindMealType    Kind = "meal_type"
	KindUnknownFood Kind = "unknown_food"
)

// ParseError is returned by Parse for every rejected message.
type ParseError struct {
	Kind    Kind
	Message string

	// Unknown lists unmatched food names when Kind is KindUnknownFood.
	Unknown []string
}

func (e *ParseError) Error() string {
	return e.Message
}

// FoodChecker reports whether a food name is in the reference table.
type FoodChecker interface {
	Contains(name string) bool
}

// Command is a successfully parsed message.
type Command struct {
	MealType  models.MealType
	FoodItems []string
}

// Parse turns message into a Command. On failure the error is always a *ParseError.
//
// Checks run in this order: prefix, ':' separator, meal type, food items.
func Parse(message string, foods FoodChecker) (Command, error) {
	message = strings.TrimSpace(message)
	if !strings.HasPrefix(message, Prefix) {
		return Command{}, formatError()
	}

	head, tail, ok := strings.Cut(message, ":")
	if !ok {
		return Command{}, formatError()
	}

	fields := strings.Fields(head)
	if len(fields) == 0 {
		return Command{}, formatError()
	}
	mealType := models.MealType(fields[len(fields)-1])

	items := splitItems(tail)

	if !mealType.Valid() {
		return Command{}, &ParseError{
			Kind:    KindMealType,
			Message: fmt.Sprintf("Invalid meal type: %s", mealType),
		}
	}

	var unknown []string
	for _, item := range items {
		if !foods.Contains(item) {
			unknown = append(unknown, item)
		}
	}
	if len(unknown) > 0 {
		return Command{}, &ParseError{
			Kind:    KindUnknownFood,
			Message: fmt.Sprintf("Unknown food items: %s", FormatList(unknown)),
			Unknown: unknown,
		}
	}

	return Command{MealType: mealType, FoodItems: items}, nil
}

// splitItems splits on ',' and title-cases each trimmed fragment, dropping empty ones.
func splitItems(tail string) []string {
	// Casers are stateful, so one is built per call.
	title := cases.Title(language.Und)

	items := []string{}
	for _, fragment := range strings.Split(tail, ",") {
		fragment = strings.TrimSpace(fragment)
		if fragment == "" {
			continue
		}
		items = append(items, title.String(fragment))
	}
	return items
}

func formatError() *ParseError {
	return &ParseError{Kind: KindFormat, Message: FormatHint}
}

// FormatList renders names as a bracketed, quoted list: ['Candy', 'Pizza'].
func FormatList(names []string) string {
	quoted := make([]string, len(names))
	for i, n := range names {
		quoted[i] = "'" + n + "'"
	}
	return "[" + strings.Join(quoted, ", ") + "]"
}
