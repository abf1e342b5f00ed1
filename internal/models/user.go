package models

import (
	"errors"
	"fmt"
	"time"
)

// ErrValidation marks values that violate the request schema.
// Callers match it with errors.Is.
var ErrValidation = errors.New("validation error")

// Gender is the biological sex used for BMR estimation.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

// Valid reports whether g is one of the supported values.
func (g Gender) Valid() bool {
	return g == GenderMale || g == GenderFemale
}

// User represents a registered user.
//
// Users are created by registration and are never mutated or deleted.
type User struct {
	// Name is the unique identifier of the user (case-sensitive).
	Name string `json:"name"`

	// Age in years.
	Age int `json:"age"`

	// Weight in kilograms.
	Weight float64 `json:"weight"`

	// Height in centimeters.
	Height float64 `json:"height"`

	Gender Gender `json:"gender"`

	// Goal is free text such as "maintain" or "weight_loss".
	// Nil when the user did not provide one. It is never validated.
	Goal *string `json:"goal"`

	// CreatedAt is set by the store on insert.
	CreatedAt time.Time `json:"createdAt"`
}

// Validate checks the field constraints of a registration request.
func (u *User) Validate() error {
	if u.Name == "" {
		return fmt.Errorf("%w: name is required", ErrValidation)
	}
	if u.Age <= 0 {
		return fmt.Errorf("%w: age must be a positive integer", ErrValidation)
	}
	if u.Weight <= 0 {
		return fmt.Errorf("%w: weight must be positive", ErrValidation)
	}
	if u.Height <= 0 {
		return fmt.Errorf("%w: height must be positive", ErrValidation)
	}
	if !u.Gender.Valid() {
		return fmt.Errorf("%w: gender must be 'male' or 'female', got '%s'", ErrValidation, u.Gender)
	}
	return nil
}
