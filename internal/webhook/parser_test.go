package webhook

import (
	"errors"
	"reflect"
	"testing"

	"github.com/mmynk/nutrilog/internal/fooddb"
	"github.com/mmynk/nutrilog/internal/models"
)

func TestParse(t *testing.T) {
	foods := fooddb.Default()

	tests := []struct {
		name        string
		message     string
		wantType    models.MealType
		wantItems   []string
		wantKind    Kind
		wantMessage string
		wantUnknown []string
	}{
		{
			name:      "canonical message",
			message:   "log lunch: Jeera Rice, Dal",
			wantType:  models.Lunch,
			wantItems: []string{"Jeera Rice", "Dal"},
		},
		{
			name:      "surrounding whitespace and lower case items",
			message:   "  log dinner:   jeera rice ,cucumber  ",
			wantType:  models.Dinner,
			wantItems: []string{"Jeera Rice", "Cucumber"},
		},
		{
			name:      "mixed case items are normalized",
			message:   "log breakfast: dAL, JEERA RICE",
			wantType:  models.Breakfast,
			wantItems: []string{"Dal", "Jeera Rice"},
		},
		{
			name:      "empty fragments are dropped",
			message:   "log lunch: Dal,, ,Cucumber,",
			wantType:  models.Lunch,
			wantItems: []string{"Dal", "Cucumber"},
		},
		{
			name:      "duplicates are kept",
			message:   "log lunch: Dal, Dal",
			wantType:  models.Lunch,
			wantItems: []string{"Dal", "Dal"},
		},
		{
			name:      "meal type is the last token of the head",
			message:   "log my lunch: Dal",
			wantType:  models.Lunch,
			wantItems: []string{"Dal"},
		},
		{
			name:      "no items yields an empty meal",
			message:   "log lunch:",
			wantType:  models.Lunch,
			wantItems: []string{},
		},
		{
			name:        "missing prefix",
			message:     "lunch: Dal",
			wantKind:    KindFormat,
			wantMessage: FormatHint,
		},
		{
			name:        "prefix is case-sensitive",
			message:     "Log lunch: Dal",
			wantKind:    KindFormat,
			wantMessage: FormatHint,
		},
		{
			name:        "missing separator",
			message:     "log lunch Dal",
			wantKind:    KindFormat,
			wantMessage: FormatHint,
		},
		{
			name:        "invalid meal type",
			message:     "log snack: Jeera Rice",
			wantKind:    KindMealType,
			wantMessage: "Invalid meal type: snack",
		},
		{
			name:        "meal type checked before items",
			message:     "log snack: Candy",
			wantKind:    KindMealType,
			wantMessage: "Invalid meal type: snack",
		},
		{
			name:        "meal type is case-sensitive",
			message:     "log Lunch: Dal",
			wantKind:    KindMealType,
			wantMessage: "Invalid meal type: Lunch",
		},
		{
			name:        "unknown item",
			message:     "log lunch: Candy",
			wantKind:    KindUnknownFood,
			wantMessage: "Unknown food items: ['Candy']",
			wantUnknown: []string{"Candy"},
		},
		{
			name:        "every unknown item is listed",
			message:     "log dinner: pizza, Dal, candy",
			wantKind:    KindUnknownFood,
			wantMessage: "Unknown food items: ['Pizza', 'Candy']",
			wantUnknown: []string{"Pizza", "Candy"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, err := Parse(tt.message, foods)

			if tt.wantKind != "" {
				var perr *ParseError
				if !errors.As(err, &perr) {
					t.Fatalf("expected *ParseError, got %v", err)
				}
				if perr.Kind != tt.wantKind {
					t.Errorf("Kind = %s, want %s", perr.Kind, tt.wantKind)
				}
				if perr.Error() != tt.wantMessage {
					t.Errorf("message = %q, want %q", perr.Error(), tt.wantMessage)
				}
				if !reflect.DeepEqual(perr.Unknown, tt.wantUnknown) {
					t.Errorf("Unknown = %v, want %v", perr.Unknown, tt.wantUnknown)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if cmd.MealType != tt.wantType {
				t.Errorf("MealType = %s, want %s", cmd.MealType, tt.wantType)
			}
			if !reflect.DeepEqual(cmd.FoodItems, tt.wantItems) {
				t.Errorf("FoodItems = %v, want %v", cmd.FoodItems, tt.wantItems)
			}
		})
	}
}

func TestFormatList(t *testing.T) {
	if got := FormatList([]string{"Candy"}); got != "['Candy']" {
		t.Errorf("FormatList = %s", got)
	}
	if got := FormatList([]string{"Pizza", "Candy"}); got != "['Pizza', 'Candy']" {
		t.Errorf("FormatList = %s", got)
	}
}
