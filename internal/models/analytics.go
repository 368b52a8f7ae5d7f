package models

// DashboardAnalytics is the derived summary over a trailing window of logs.
// Every field is computed on request; nothing here is persisted.
type DashboardAnalytics struct {
	Workouts  WorkoutStats   `json:"workouts"`
	Nutrition NutritionStats `json:"nutrition"`
	Wellness  WellnessStats  `json:"wellness"`
	Progress  ProgressStats  `json:"progress"`
	Metrics   MetricStats    `json:"metrics"`
}

type WorkoutStats struct {
	Total               int     `json:"total"`
	TotalCaloriesBurned float64 `json:"total_calories_burned"`
	TotalDuration       int     `json:"total_duration"`
	AvgPerWeek          float64 `json:"avg_per_week"`
	CurrentStreak       int     `json:"current_streak"`
}

type NutritionStats struct {
	AvgDailyCalories int `json:"avg_daily_calories"`
}

type WellnessStats struct {
	AvgSleepHours  float64 `json:"avg_sleep_hours"`
	AvgWaterIntake float64 `json:"avg_water_intake"`
}

type ProgressStats struct {
	WeightChange float64 `json:"weight_change"`
}

type MetricStats struct {
	ConsistencyScore int    `json:"consistency_score"`
	FatigueLevel     string `json:"fatigue_level"`
}

type Alert struct {
	Type     string `json:"type"`
	Message  string `json:"message"`
	Severity string `json:"severity"`
}

type AlertReport struct {
	Alerts    []Alert `json:"alerts"`
	HasAlerts bool    `json:"has_alerts"`
}

type RecommendationItem struct {
	Type     string `json:"type"`
	Priority string `json:"priority"`
	Message  string `json:"message"`
	Action   string `json:"action"`
}

type AdminAnalytics struct {
	TotalUsers          int     `json:"total_users"`
	ActiveUsers         int     `json:"active_users"`
	InactiveUsers       int     `json:"inactive_users"`
	TotalWorkouts       int     `json:"total_workouts"`
	TotalCaloriesBurned float64 `json:"total_calories_burned"`
	AvgWorkoutsPerUser  float64 `json:"avg_workouts_per_user"`
}

type UserPerformance struct {
	Workouts            int           `json:"workouts"`
	TotalCaloriesBurned float64       `json:"total_calories_burned"`
	AvgDailyCalories    int           `json:"avg_daily_calories"`
	WeightProgress      []WeightPoint `json:"weight_progress"`
}
