package models

import "time"

var Moods = []string{"excellent", "good", "okay", "poor", "terrible"}

// WellnessLog holds at most one check-in per user per calendar day.
type WellnessLog struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"user_id"`
	Date        time.Time `json:"date"`
	SleepHours  *float64  `json:"sleep_hours"`
	WaterIntake float64   `json:"water_intake"`
	StressLevel int       `json:"stress_level"`
	IsRestDay   bool      `json:"is_rest_day"`
	Mood        string    `json:"mood"`
	Notes       *string   `json:"notes"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func IsValidMood(mood string) bool {
	for _, m := range Moods {
		if m == mood {
			return true
		}
	}
	return false
}
