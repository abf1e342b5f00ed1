// Package models defines the core domain models for nutrilog.
//
// # Models
//
//   - User: a registered person, identified by a unique name
//   - Meal: one logged meal, referencing its owner by name
//   - FoodItem: a reference food with its nutrient profile
//   - Nutrients: the four tracked nutrient totals
//
// # Design Principles
//
// 1. **Append-only**: users and meals are never updated or deleted
// 2. **Name as key**: meals reference users by name string, not by pointer or ID,
// so the HTTP interface can stay name based
// 3. **Validation at the edge**: Validate methods check request-shaped values
// before anything reaches storage
package models
