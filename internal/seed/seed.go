// Package seed loads sample users and meals into a running nutrilog server
// through its public HTTP API.
package seed

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
)

// User is the registration payload.
type User struct {
	Name   string  `json:"name"`
	Age    int     `json:"age"`
	Weight float64 `json:"weight"`
	Height float64 `json:"height"`
	Gender string  `json:"gender"`
	Goal   string  `json:"goal,omitempty"`
}

// Meal is the meal logging payload.
type Meal struct {
	UserName  string   `json:"userName"`
	MealType  string   `json:"mealType"`
	FoodItems []string `json:"foodItems"`
}

var SampleUsers = []User{
	{Name: "Rahul", Age: 28, Weight: 70.5, Height: 175, Gender: "male", Goal: "maintain"},
	{Name: "Anita", Age: 32, Weight: 60.0, Height: 162, Gender: "female", Goal: "weight_loss"},
}

var SampleMeals = []Meal{
	{UserName: "Rahul", MealType: "lunch", FoodItems: []string{"Jeera Rice", "Dal"}},
	{UserName: "Rahul", MealType: "breakfast", FoodItems: []string{"Jeera Rice"}},
	{UserName: "Anita", MealType: "dinner", FoodItems: []string{"Dal", "Cucumber"}},
}

// Report counts the outcome of a run.
type Report struct {
	Registered  int
	Existing    int
	UsersFailed int
	MealsLogged int
	MealsFailed int
}

// Seeder posts sample data to BaseURL.
type Seeder struct {
	BaseURL string
	Client  *http.Client
	Users   []User
	Meals   []Meal
}

// New returns a Seeder for the sample data set.
func New(baseURL string, client *http.Client) *Seeder {
	if client == nil {
		client = http.DefaultClient
	}
	return &Seeder{
		BaseURL: strings.TrimRight(baseURL, "/"),
		Client:  client,
		Users:   SampleUsers,
		Meals:   SampleMeals,
	}
}

// Run registers the users, then logs the meals.
// A 400 on registration means the user already exists and is not a failure.
// Only transport errors abort the run.
func (s *Seeder) Run(ctx context.Context) (Report, error) {
	var report Report

	for _, u := range s.Users {
		status, body, err := s.post(ctx, "/register", u)
		if err != nil {
			return report, fmt.Errorf("register %s: %w", u.Name, err)
		}
		switch status {
		case http.StatusCreated:
			report.Registered++
			slog.Info("Registered user", "name", u.Name)
		case http.StatusBadRequest:
			report.Existing++
			slog.Warn("User already exists", "name", u.Name)
		default:
			report.UsersFailed++
			slog.Error("Failed to register user", "name", u.Name, "status", status, "body", body)
		}
	}

	for _, m := range s.Meals {
		status, body, err := s.post(ctx, "/log_meals", m)
		if err != nil {
			return report, fmt.Errorf("log meal for %s: %w", m.UserName, err)
		}
		if status == http.StatusOK {
			report.MealsLogged++
			slog.Info("Logged meal", "user_name", m.UserName, "meal_type", m.MealType)
			continue
		}
		report.MealsFailed++
		slog.Error("Failed to log meal", "user_name", m.UserName, "status", status, "body", body)
	}

	return report, nil
}

func (s *Seeder) post(ctx context.Context, path string, payload any) (int, string, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return 0, "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.BaseURL+path, bytes.NewReader(data))
	if err != nil {
		return 0, "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.Client.Do(req)
	if err != nil {
		return 0, "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 4096))
	if err != nil {
		return resp.StatusCode, "", err
	}
	return resp.StatusCode, string(body), nil
}
