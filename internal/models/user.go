package models

import "time"

type User struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	Profile      Profile   `json:"profile"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Profile carries the self-declared attributes the recommendation engine
// reads: body weight drives the protein target and fitness goals select
// which nutrition rules apply.
type Profile struct {
	HeightCM       *float64 `json:"height_cm"`
	WeightKG       *float64 `json:"weight_kg"`
	Age            *int     `json:"age"`
	ActivityLevel  *string  `json:"activity_level"`
	DietPreference *string  `json:"diet_preference"`
	FitnessGoals   []string `json:"fitness_goals"`
}

type PaginationMeta struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"total_pages"`
}
