package models

import "time"

var WorkoutTypes = []string{
	"Chest", "Back", "Legs", "Shoulders", "Arms",
	"Cardio", "Full Body", "Core", "Other",
}

type Workout struct {
	ID             int64      `json:"id"`
	UserID         int64      `json:"user_id"`
	Date           time.Time  `json:"date"`
	WorkoutType    string     `json:"workout_type"`
	Exercises      []Exercise `json:"exercises"`
	TotalDuration  int        `json:"total_duration"`
	CaloriesBurned float64    `json:"calories_burned"`
	Notes          *string    `json:"notes"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

type Exercise struct {
	ExerciseName string        `json:"exercise_name"`
	Sets         []ExerciseSet `json:"sets"`
	Notes        *string       `json:"notes,omitempty"`
}

type ExerciseSet struct {
	Reps     *int     `json:"reps,omitempty"`
	Weight   *float64 `json:"weight,omitempty"`
	Duration *int     `json:"duration,omitempty"`
	RestTime *int     `json:"rest_time,omitempty"`
}

func IsValidWorkoutType(workoutType string) bool {
	for _, t := range WorkoutTypes {
		if t == workoutType {
			return true
		}
	}
	return false
}

// WeeklySummary aggregates the current calendar week's workouts.
type WeeklySummary struct {
	TotalWorkouts       int            `json:"total_workouts"`
	TotalDuration       int            `json:"total_duration"`
	TotalCaloriesBurned float64        `json:"total_calories_burned"`
	WorkoutsByType      map[string]int `json:"workouts_by_type"`
}
