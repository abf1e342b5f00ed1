package calculator

import (
	"fmt"

	"github.com/mmynk/nutrilog/internal/models"
)

// BMR estimates basal metabolic rate in kcal/day with the revised
// Harris-Benedict equation.
// weight is in kg, height in cm, age in years.
func BMR(gender models.Gender, weight, height float64, age int) (float64, error) {
	a := float64(age)
	switch gender {
	case models.GenderMale:
		return 88.362 + 13.397*weight + 4.799*height - 5.677*a, nil
	case models.GenderFemale:
		return 447.593 + 9.247*weight + 3.098*height - 4.33*a, nil
	default:
		return 0, fmt.Errorf("unsupported gender %q", gender)
	}
}
