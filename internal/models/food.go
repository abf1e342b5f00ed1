package models

// Nutrients holds the four tracked nutrient values.
// Calories are in kcal, the rest in grams.
type Nutrients struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fiber    float64 `json:"fiber"`
}

// Add returns the field-wise sum of n and o.
func (n Nutrients) Add(o Nutrients) Nutrients {
	return Nutrients{
		Calories: n.Calories + o.Calories,
		Protein:  n.Protein + o.Protein,
		Carbs:    n.Carbs + o.Carbs,
		Fiber:    n.Fiber + o.Fiber,
	}
}

// FoodItem is an entry of the static food reference table.
type FoodItem struct {
	Name      string    `json:"name"`
	Nutrients Nutrients `json:"nutrients"`
}
