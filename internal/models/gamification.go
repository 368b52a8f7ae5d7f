package models

import "time"

// GamificationState is the single per-user record advanced on every logged
// workout. Two invariants hold after every update: the level matches the
// experience points (one level per 1000 XP, starting at 1) and the longest
// streak is never below the current one.
type GamificationState struct {
	ID                  int64         `json:"id"`
	UserID              int64         `json:"user_id"`
	CurrentStreak       int           `json:"current_streak"`
	LongestStreak       int           `json:"longest_streak"`
	TotalWorkouts       int           `json:"total_workouts"`
	TotalCaloriesBurned float64       `json:"total_calories_burned"`
	Level               int           `json:"level"`
	ExperiencePoints    int           `json:"experience_points"`
	Badges              []Badge       `json:"badges"`
	Achievements        []Achievement `json:"achievements"`
	CreatedAt           time.Time     `json:"created_at"`
	UpdatedAt           time.Time     `json:"updated_at"`
}

type Badge struct {
	BadgeName   string    `json:"badge_name"`
	EarnedDate  time.Time `json:"earned_date"`
	Description string    `json:"description"`
}

type Achievement struct {
	AchievementName string    `json:"achievement_name"`
	EarnedDate      time.Time `json:"earned_date"`
	Description     string    `json:"description"`
}

// NewGamificationState returns the defaults applied on lazy creation.
func NewGamificationState(userID int64) *GamificationState {
	return &GamificationState{
		UserID:       userID,
		Level:        1,
		Badges:       []Badge{},
		Achievements: []Achievement{},
	}
}

type LeaderboardEntry struct {
	UserID              int64   `json:"user_id"`
	Name                string  `json:"name"`
	Email               string  `json:"email"`
	CurrentStreak       int     `json:"current_streak"`
	LongestStreak       int     `json:"longest_streak"`
	TotalWorkouts       int     `json:"total_workouts"`
	TotalCaloriesBurned float64 `json:"total_calories_burned"`
	Level               int     `json:"level"`
	ExperiencePoints    int     `json:"experience_points"`
}
