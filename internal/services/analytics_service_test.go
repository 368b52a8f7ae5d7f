package services

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/Pradeep-Goud2004/Physical-fittness-and-wellness-tracking-system/internal/models"
)

type stubLogStore struct {
	workouts []models.Workout
}

func (s *stubLogStore) ListSince(_ context.Context, _ int64, cutoff time.Time) ([]models.Workout, error) {
	filtered := []models.Workout{}
	for _, workout := range s.workouts {
		if !workout.Date.Before(cutoff) {
			filtered = append(filtered, workout)
		}
	}
	return filtered, nil
}

func (s *stubLogStore) ListBetween(_ context.Context, _ int64, start, end time.Time) ([]models.Workout, error) {
	filtered := []models.Workout{}
	for _, workout := range s.workouts {
		if !workout.Date.Before(start) && !workout.Date.After(end) {
			filtered = append(filtered, workout)
		}
	}
	return filtered, nil
}

type stubNutritionStore struct{ logs []models.NutritionLog }

func (s *stubNutritionStore) ListSince(_ context.Context, _ int64, _ time.Time) ([]models.NutritionLog, error) {
	return s.logs, nil
}

type stubWellnessStore struct{ logs []models.WellnessLog }

func (s *stubWellnessStore) ListSince(_ context.Context, _ int64, _ time.Time) ([]models.WellnessLog, error) {
	return s.logs, nil
}

type stubProgressStore struct{ logs []models.ProgressLog }

func (s *stubProgressStore) ListSince(_ context.Context, _ int64, _ time.Time) ([]models.ProgressLog, error) {
	return s.logs, nil
}

type stubGamificationStore struct{ state *models.GamificationState }

func (s *stubGamificationStore) GetByUserID(_ context.Context, _ int64) (*models.GamificationState, error) {
	if s.state == nil {
		return nil, pgx.ErrNoRows
	}
	return s.state, nil
}

func newAnalyticsService(
	workouts []models.Workout,
	nutritionLogs []models.NutritionLog,
	wellnessLogs []models.WellnessLog,
	progressLogs []models.ProgressLog,
	state *models.GamificationState,
) *AnalyticsService {
	return NewAnalyticsService(
		&stubLogStore{workouts: workouts},
		&stubNutritionStore{logs: nutritionLogs},
		&stubWellnessStore{logs: wellnessLogs},
		&stubProgressStore{logs: progressLogs},
		&stubGamificationStore{state: state},
	)
}

func floatPtr(v float64) *float64 { return &v }

func TestDashboardEmptyWindowIsAllZeros(t *testing.T) {
	service := newAnalyticsService(nil, nil, nil, nil, nil)

	dashboard, err := service.Dashboard(context.Background(), 1, time.Now())
	if err != nil {
		t.Fatalf("Dashboard: %v", err)
	}

	if dashboard.Workouts.Total != 0 || dashboard.Workouts.AvgPerWeek != 0 {
		t.Errorf("expected zero workout stats, got %+v", dashboard.Workouts)
	}
	if dashboard.Nutrition.AvgDailyCalories != 0 {
		t.Errorf("expected zero avg calories, got %d", dashboard.Nutrition.AvgDailyCalories)
	}
	if dashboard.Wellness.AvgSleepHours != 0 || dashboard.Wellness.AvgWaterIntake != 0 {
		t.Errorf("expected zero wellness stats, got %+v", dashboard.Wellness)
	}
	if dashboard.Progress.WeightChange != 0 {
		t.Errorf("expected zero weight change, got %v", dashboard.Progress.WeightChange)
	}
	if dashboard.Metrics.ConsistencyScore != 0 {
		t.Errorf("expected zero consistency, got %d", dashboard.Metrics.ConsistencyScore)
	}
	if dashboard.Metrics.FatigueLevel != "low" {
		t.Errorf("expected low fatigue, got %s", dashboard.Metrics.FatigueLevel)
	}
}

func TestDashboardConsistencyScoreIsClamped(t *testing.T) {
	now := time.Now()
	workouts := make([]models.Workout, 60)
	for i := range workouts {
		workouts[i] = models.Workout{Date: now.AddDate(0, 0, -(i % 25)), TotalDuration: 30}
	}
	service := newAnalyticsService(workouts, nil, nil, nil, nil)

	dashboard, err := service.Dashboard(context.Background(), 1, now)
	if err != nil {
		t.Fatalf("Dashboard: %v", err)
	}
	if dashboard.Metrics.ConsistencyScore != 100 {
		t.Fatalf("expected consistency clamped to 100, got %d", dashboard.Metrics.ConsistencyScore)
	}
}

func TestDashboardWeightChangeFromWindowEndpoints(t *testing.T) {
	now := time.Now()
	progressLogs := []models.ProgressLog{
		{Date: now.AddDate(0, 0, -20), Weight: floatPtr(80.0)},
		{Date: now.AddDate(0, 0, -2), Weight: floatPtr(78.5)},
	}
	service := newAnalyticsService(nil, nil, nil, progressLogs, nil)

	dashboard, err := service.Dashboard(context.Background(), 1, now)
	if err != nil {
		t.Fatalf("Dashboard: %v", err)
	}
	if dashboard.Progress.WeightChange != -1.5 {
		t.Fatalf("expected weight change -1.5, got %v", dashboard.Progress.WeightChange)
	}
}

func TestDashboardWeightChangeZeroWhenEndpointMissing(t *testing.T) {
	now := time.Now()
	progressLogs := []models.ProgressLog{
		{Date: now.AddDate(0, 0, -20), Weight: nil},
		{Date: now.AddDate(0, 0, -2), Weight: floatPtr(78.5)},
	}
	service := newAnalyticsService(nil, nil, nil, progressLogs, nil)

	dashboard, err := service.Dashboard(context.Background(), 1, now)
	if err != nil {
		t.Fatalf("Dashboard: %v", err)
	}
	if dashboard.Progress.WeightChange != 0 {
		t.Fatalf("expected weight change 0, got %v", dashboard.Progress.WeightChange)
	}
}

func TestDashboardReadsStreakFromGamificationState(t *testing.T) {
	state := &models.GamificationState{CurrentStreak: 12}
	service := newAnalyticsService(nil, nil, nil, nil, state)

	dashboard, err := service.Dashboard(context.Background(), 1, time.Now())
	if err != nil {
		t.Fatalf("Dashboard: %v", err)
	}
	if dashboard.Workouts.CurrentStreak != 12 {
		t.Fatalf("expected streak 12, got %d", dashboard.Workouts.CurrentStreak)
	}
}

func TestDashboardFatigueLevels(t *testing.T) {
	now := time.Now()
	cases := []struct {
		name     string
		lastWeek int
		expected string
	}{
		{"low at 4", 4, "low"},
		{"medium at 5", 5, "medium"},
		{"medium at 6", 6, "medium"},
		{"high at 7", 7, "high"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			workouts := make([]models.Workout, tc.lastWeek)
			for i := range workouts {
				workouts[i] = models.Workout{Date: now.AddDate(0, 0, -1)}
			}
			service := newAnalyticsService(workouts, nil, nil, nil, nil)
			dashboard, err := service.Dashboard(context.Background(), 1, now)
			if err != nil {
				t.Fatalf("Dashboard: %v", err)
			}
			if dashboard.Metrics.FatigueLevel != tc.expected {
				t.Fatalf("expected %s fatigue, got %s", tc.expected, dashboard.Metrics.FatigueLevel)
			}
		})
	}
}

func TestDashboardWellnessAverages(t *testing.T) {
	now := time.Now()
	wellnessLogs := []models.WellnessLog{
		{Date: now.AddDate(0, 0, -3), SleepHours: floatPtr(8), WaterIntake: 2.5},
		{Date: now.AddDate(0, 0, -2), SleepHours: floatPtr(6), WaterIntake: 1.5},
	}
	service := newAnalyticsService(nil, nil, wellnessLogs, nil, nil)

	dashboard, err := service.Dashboard(context.Background(), 1, now)
	if err != nil {
		t.Fatalf("Dashboard: %v", err)
	}
	if dashboard.Wellness.AvgSleepHours != 7.0 {
		t.Errorf("expected avg sleep 7.0, got %v", dashboard.Wellness.AvgSleepHours)
	}
	if dashboard.Wellness.AvgWaterIntake != 2.0 {
		t.Errorf("expected avg water 2.0, got %v", dashboard.Wellness.AvgWaterIntake)
	}
}

func TestWorkoutHeatmapOmitsEmptyDays(t *testing.T) {
	now := time.Now()
	day := now.AddDate(0, 0, -5)
	workouts := []models.Workout{
		{Date: day},
		{Date: day.Add(2 * time.Hour)},
		{Date: now.AddDate(0, 0, -10)},
	}
	service := newAnalyticsService(workouts, nil, nil, nil, nil)

	heatmap, err := service.WorkoutHeatmap(context.Background(), 1, 0, now)
	if err != nil {
		t.Fatalf("WorkoutHeatmap: %v", err)
	}

	if len(heatmap) != 2 {
		t.Fatalf("expected 2 heatmap entries, got %d", len(heatmap))
	}
	if got := heatmap[day.Local().Format("2006-01-02")]; got != 2 {
		t.Errorf("expected 2 workouts on %s, got %d", day.Format("2006-01-02"), got)
	}
	for key, count := range heatmap {
		if count == 0 {
			t.Errorf("heatmap must not carry zero-count entry for %s", key)
		}
	}
}

func TestOvertrainingAlertFiresOnEighthWorkout(t *testing.T) {
	now := time.Now()
	workouts := make([]models.Workout, 8)
	for i := range workouts {
		workouts[i] = models.Workout{Date: now.AddDate(0, 0, -1), TotalDuration: 30}
	}
	service := newAnalyticsService(workouts, nil, nil, nil, nil)

	report, err := service.OvertrainingAlerts(context.Background(), 1, now)
	if err != nil {
		t.Fatalf("OvertrainingAlerts: %v", err)
	}
	if !report.HasAlerts {
		t.Fatal("expected alerts")
	}
	overtraining := 0
	for _, alert := range report.Alerts {
		if alert.Type == "overtraining" {
			overtraining++
			if alert.Severity != "high" {
				t.Errorf("expected high severity, got %s", alert.Severity)
			}
		}
	}
	if overtraining != 1 {
		t.Fatalf("expected exactly one overtraining alert, got %d", overtraining)
	}
}

func TestOvertrainingAlertsBothRulesFireIndependently(t *testing.T) {
	now := time.Now()
	workouts := make([]models.Workout, 8)
	for i := range workouts {
		workouts[i] = models.Workout{Date: now.AddDate(0, 0, -1), TotalDuration: 90}
	}
	service := newAnalyticsService(workouts, nil, nil, nil, nil)

	report, err := service.OvertrainingAlerts(context.Background(), 1, now)
	if err != nil {
		t.Fatalf("OvertrainingAlerts: %v", err)
	}
	if len(report.Alerts) != 2 {
		t.Fatalf("expected both alerts, got %d", len(report.Alerts))
	}
	if report.Alerts[0].Type != "overtraining" || report.Alerts[1].Type != "excessive_duration" {
		t.Fatalf("unexpected alert order: %+v", report.Alerts)
	}
}

func TestOvertrainingAlertsQuietWeek(t *testing.T) {
	now := time.Now()
	workouts := []models.Workout{
		{Date: now.AddDate(0, 0, -2), TotalDuration: 45},
		{Date: now.AddDate(0, 0, -4), TotalDuration: 60},
	}
	service := newAnalyticsService(workouts, nil, nil, nil, nil)

	report, err := service.OvertrainingAlerts(context.Background(), 1, now)
	if err != nil {
		t.Fatalf("OvertrainingAlerts: %v", err)
	}
	if report.HasAlerts || len(report.Alerts) != 0 {
		t.Fatalf("expected no alerts, got %+v", report.Alerts)
	}
}

func TestWeeklySummaryGroupsByType(t *testing.T) {
	now := time.Now()
	local := now.Local()
	dayStart := time.Date(local.Year(), local.Month(), local.Day(), 12, 0, 0, 0, local.Location())
	workouts := []models.Workout{
		{Date: dayStart, WorkoutType: "Chest", TotalDuration: 45, CaloriesBurned: 300},
		{Date: dayStart, WorkoutType: "Chest", TotalDuration: 30, CaloriesBurned: 200},
		{Date: dayStart, WorkoutType: "Legs", TotalDuration: 60, CaloriesBurned: 400},
	}
	service := newAnalyticsService(workouts, nil, nil, nil, nil)

	summary, err := service.WeeklySummary(context.Background(), 1, now)
	if err != nil {
		t.Fatalf("WeeklySummary: %v", err)
	}
	if summary.TotalWorkouts != 3 || summary.TotalDuration != 135 {
		t.Fatalf("unexpected totals: %+v", summary)
	}
	if summary.WorkoutsByType["Chest"] != 2 || summary.WorkoutsByType["Legs"] != 1 {
		t.Fatalf("unexpected type grouping: %+v", summary.WorkoutsByType)
	}
}
