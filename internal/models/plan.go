package models

import "time"

// WorkoutPlan is an admin-authored program: a named multi-week schedule of
// per-day workouts, kept as a template until assigned to a user.
type WorkoutPlan struct {
	ID            int64     `json:"id"`
	CreatedBy     int64     `json:"created_by"`
	AssignedTo    *int64    `json:"assigned_to,omitempty"`
	Name          string    `json:"name"`
	Description   *string   `json:"description,omitempty"`
	DurationWeeks int       `json:"duration_weeks"`
	Days          []PlanDay `json:"days"`
	IsTemplate    bool      `json:"is_template"`
	IsActive      bool      `json:"is_active"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// PlanDay is one scheduled day within a plan, numbered from 1.
type PlanDay struct {
	Day         int        `json:"day"`
	WorkoutType string     `json:"workout_type"`
	Exercises   []Exercise `json:"exercises"`
}
