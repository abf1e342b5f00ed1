// Package fooddb holds the static food reference table.
package fooddb

import (
	"sort"

	"github.com/mmynk/nutrilog/internal/models"
)

// Table is an immutable name -> nutrients lookup.
// It is safe for concurrent use because it is never written after construction.
type Table struct {
	foods map[string]models.Nutrients
}

// New builds a table from the given items. Later items win on duplicate names.
func New(items ...models.FoodItem) *Table {
	foods := make(map[string]models.Nutrients, len(items))
	for _, item := range items {
		foods[item.Name] = item.Nutrients
	}
	return &Table{foods: foods}
}

// Default returns the table compiled into the service.
func Default() *Table {
	return New(
		models.FoodItem{Name: "Jeera Rice", Nutrients: models.Nutrients{Calories: 250, Protein: 5, Carbs: 45, Fiber: 2}},
		models.FoodItem{Name: "Dal", Nutrients: models.Nutrients{Calories: 180, Protein: 12, Carbs: 20, Fiber: 5}},
		models.FoodItem{Name: "Cucumber", Nutrients: models.Nutrients{Calories: 16, Protein: 1, Carbs: 4, Fiber: 1}},
	)
}

// Lookup returns the nutrients of the named food. Matching is exact.
func (t *Table) Lookup(name string) (models.Nutrients, bool) {
	n, ok := t.foods[name]
	return n, ok
}

// Contains reports whether name is a key of the table.
func (t *Table) Contains(name string) bool {
	_, ok := t.foods[name]
	return ok
}

// Missing returns every name not present in the table, in input order.
// Duplicates are kept. Returns nil when all names are known.
func (t *Table) Missing(names []string) []string {
	var missing []string
	for _, name := range names {
		if !t.Contains(name) {
			missing = append(missing, name)
		}
	}
	return missing
}

// Items returns all foods sorted by name.
func (t *Table) Items() []models.FoodItem {
	items := make([]models.FoodItem, 0, len(t.foods))
	for name, n := range t.foods {
		items = append(items, models.FoodItem{Name: name, Nutrients: n})
	}
	sort.Slice(items, func(i, j int) bool { return items[i].Name < items[j].Name })
	return items
}
