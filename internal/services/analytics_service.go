package services

import (
	"context"
	"errors"
	"math"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/Pradeep-Goud2004/Physical-fittness-and-wellness-tracking-system/internal/models"
)

// Policy constants. The cadence baseline (one workout every 2 days) and the
// window sizes are product choices carried over as-is, not derived.
const (
	dashboardWindowDays     = 30
	heatmapDefaultDays      = 90
	fatigueWindowDays       = 7
	workoutCadenceDays      = 2
	overtrainingCountLimit  = 7
	overtrainingMinuteLimit = 600
)

type workoutWindowReader interface {
	ListSince(ctx context.Context, userID int64, cutoff time.Time) ([]models.Workout, error)
	ListBetween(ctx context.Context, userID int64, start, end time.Time) ([]models.Workout, error)
}

type nutritionWindowReader interface {
	ListSince(ctx context.Context, userID int64, cutoff time.Time) ([]models.NutritionLog, error)
}

type wellnessWindowReader interface {
	ListSince(ctx context.Context, userID int64, cutoff time.Time) ([]models.WellnessLog, error)
}

type progressWindowReader interface {
	ListSince(ctx context.Context, userID int64, cutoff time.Time) ([]models.ProgressLog, error)
}

type gamificationStateReader interface {
	GetByUserID(ctx context.Context, userID int64) (*models.GamificationState, error)
}

type AnalyticsService struct {
	workoutRepo      workoutWindowReader
	nutritionRepo    nutritionWindowReader
	wellnessRepo     wellnessWindowReader
	progressRepo     progressWindowReader
	gamificationRepo gamificationStateReader
}

func NewAnalyticsService(
	workoutRepo workoutWindowReader,
	nutritionRepo nutritionWindowReader,
	wellnessRepo wellnessWindowReader,
	progressRepo progressWindowReader,
	gamificationRepo gamificationStateReader,
) *AnalyticsService {
	return &AnalyticsService{
		workoutRepo:      workoutRepo,
		nutritionRepo:    nutritionRepo,
		wellnessRepo:     wellnessRepo,
		progressRepo:     progressRepo,
		gamificationRepo: gamificationRepo,
	}
}

// Dashboard reduces the trailing 30 days of logs into the summary the
// dashboard renders. Empty windows produce zero values, never errors.
func (s *AnalyticsService) Dashboard(ctx context.Context, userID int64, now time.Time) (*models.DashboardAnalytics, error) {
	windowStart := now.AddDate(0, 0, -dashboardWindowDays)

	workouts, err := s.workoutRepo.ListSince(ctx, userID, windowStart)
	if err != nil {
		return nil, err
	}

	totalWorkouts := len(workouts)
	totalCalories := 0.0
	totalDuration := 0
	for _, workout := range workouts {
		totalCalories += workout.CaloriesBurned
		totalDuration += workout.TotalDuration
	}
	avgPerWeek := float64(totalWorkouts) / (float64(dashboardWindowDays) / 7)

	// The streak is owned by the gamification state; it is read here, never
	// recomputed from the workout list.
	currentStreak := 0
	state, err := s.gamificationRepo.GetByUserID(ctx, userID)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}
	if state != nil {
		currentStreak = state.CurrentStreak
	}

	nutritionLogs, err := s.nutritionRepo.ListSince(ctx, userID, windowStart)
	if err != nil {
		return nil, err
	}
	avgDailyCalories := 0.0
	if len(nutritionLogs) > 0 {
		for _, nutritionLog := range nutritionLogs {
			avgDailyCalories += nutritionLog.TotalCalories
		}
		avgDailyCalories /= float64(len(nutritionLogs))
	}

	wellnessLogs, err := s.wellnessRepo.ListSince(ctx, userID, windowStart)
	if err != nil {
		return nil, err
	}
	avgSleepHours := 0.0
	avgWaterIntake := 0.0
	if len(wellnessLogs) > 0 {
		for _, wellnessLog := range wellnessLogs {
			if wellnessLog.SleepHours != nil {
				avgSleepHours += *wellnessLog.SleepHours
			}
			avgWaterIntake += wellnessLog.WaterIntake
		}
		avgSleepHours /= float64(len(wellnessLogs))
		avgWaterIntake /= float64(len(wellnessLogs))
	}

	progressLogs, err := s.progressRepo.ListSince(ctx, userID, windowStart)
	if err != nil {
		return nil, err
	}
	weightChange := 0.0
	if len(progressLogs) >= 2 {
		first := progressLogs[0].Weight
		last := progressLogs[len(progressLogs)-1].Weight
		if first != nil && last != nil {
			weightChange = *last - *first
		}
	}

	consistencyScore := 0
	if expected := dashboardWindowDays / workoutCadenceDays; expected > 0 {
		score := int(math.Round(float64(totalWorkouts) / float64(expected) * 100))
		consistencyScore = min(100, score)
	}

	fatigueLevel := fatigueLevelFor(countSince(workouts, now.AddDate(0, 0, -fatigueWindowDays)))

	return &models.DashboardAnalytics{
		Workouts: models.WorkoutStats{
			Total:               totalWorkouts,
			TotalCaloriesBurned: totalCalories,
			TotalDuration:       totalDuration,
			AvgPerWeek:          round1(avgPerWeek),
			CurrentStreak:       currentStreak,
		},
		Nutrition: models.NutritionStats{
			AvgDailyCalories: int(math.Round(avgDailyCalories)),
		},
		Wellness: models.WellnessStats{
			AvgSleepHours:  round1(avgSleepHours),
			AvgWaterIntake: round1(avgWaterIntake),
		},
		Progress: models.ProgressStats{
			WeightChange: round1(weightChange),
		},
		Metrics: models.MetricStats{
			ConsistencyScore: consistencyScore,
			FatigueLevel:     fatigueLevel,
		},
	}, nil
}

// WorkoutHeatmap maps each calendar day (server-local) with at least one
// workout to its count. Days without workouts are absent, not zero.
func (s *AnalyticsService) WorkoutHeatmap(ctx context.Context, userID int64, days int, now time.Time) (map[string]int, error) {
	if days <= 0 {
		days = heatmapDefaultDays
	}
	workouts, err := s.workoutRepo.ListSince(ctx, userID, now.AddDate(0, 0, -days))
	if err != nil {
		return nil, err
	}

	heatmap := map[string]int{}
	for _, workout := range workouts {
		key := workout.Date.Local().Format("2006-01-02")
		heatmap[key]++
	}
	return heatmap, nil
}

// OvertrainingAlerts evaluates the trailing 7 days. The two rules are
// independent; both can fire in one report.
func (s *AnalyticsService) OvertrainingAlerts(ctx context.Context, userID int64, now time.Time) (*models.AlertReport, error) {
	workouts, err := s.workoutRepo.ListSince(ctx, userID, now.AddDate(0, 0, -fatigueWindowDays))
	if err != nil {
		return nil, err
	}

	totalDuration := 0
	for _, workout := range workouts {
		totalDuration += workout.TotalDuration
	}

	alerts := []models.Alert{}
	if len(workouts) > overtrainingCountLimit {
		alerts = append(alerts, models.Alert{
			Type:     "overtraining",
			Message:  "You've worked out more than 7 times this week. Consider taking a rest day.",
			Severity: "high",
		})
	}
	if totalDuration > overtrainingMinuteLimit {
		alerts = append(alerts, models.Alert{
			Type:     "excessive_duration",
			Message:  "You've logged over 10 hours of workouts this week. Make sure to rest!",
			Severity: "medium",
		})
	}

	return &models.AlertReport{Alerts: alerts, HasAlerts: len(alerts) > 0}, nil
}

// WeeklySummary aggregates the current calendar week (Sunday start, local).
func (s *AnalyticsService) WeeklySummary(ctx context.Context, userID int64, now time.Time) (*models.WeeklySummary, error) {
	local := now.Local()
	dayStart := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, local.Location())
	weekStart := dayStart.AddDate(0, 0, -int(dayStart.Weekday()))
	weekEnd := weekStart.AddDate(0, 0, 7).Add(-time.Nanosecond)

	workouts, err := s.workoutRepo.ListBetween(ctx, userID, weekStart, weekEnd)
	if err != nil {
		return nil, err
	}

	summary := &models.WeeklySummary{WorkoutsByType: map[string]int{}}
	for _, workout := range workouts {
		summary.TotalWorkouts++
		summary.TotalDuration += workout.TotalDuration
		summary.TotalCaloriesBurned += workout.CaloriesBurned
		summary.WorkoutsByType[workout.WorkoutType]++
	}
	return summary, nil
}

func countSince(workouts []models.Workout, cutoff time.Time) int {
	count := 0
	for _, workout := range workouts {
		if workout.Date.After(cutoff) {
			count++
		}
	}
	return count
}

func fatigueLevelFor(lastWeekWorkouts int) string {
	switch {
	case lastWeekWorkouts > 6:
		return "high"
	case lastWeekWorkouts > 4:
		return "medium"
	default:
		return "low"
	}
}

func round1(value float64) float64 {
	return math.Round(value*10) / 10
}
