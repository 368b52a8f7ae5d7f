package services

import (
	"context"
	"testing"
	"time"

	"github.com/Pradeep-Goud2004/Physical-fittness-and-wellness-tracking-system/internal/models"
)

type stubUserDirectory struct {
	users        []models.User
	total        int
	inactive     []models.User
	lastInactive time.Time
}

func (s *stubUserDirectory) GetByID(_ context.Context, id int64) (*models.User, error) {
	for i := range s.users {
		if s.users[i].ID == id {
			return &s.users[i], nil
		}
	}
	return nil, context.Canceled
}

func (s *stubUserDirectory) ListByRole(_ context.Context, _ string) ([]models.User, error) {
	return s.users, nil
}

func (s *stubUserDirectory) CountByRole(_ context.Context, _ string) (int, error) {
	return s.total, nil
}

func (s *stubUserDirectory) ListInactiveSince(_ context.Context, cutoff time.Time) ([]models.User, error) {
	s.lastInactive = cutoff
	return s.inactive, nil
}

type stubPopulationWorkouts struct {
	workouts      []models.Workout
	distinct30d   int
	distinct7d    int
	totalWorkouts int
	totalCalories float64
	now           time.Time
}

func (s *stubPopulationWorkouts) ListSince(_ context.Context, _ int64, _ time.Time) ([]models.Workout, error) {
	return s.workouts, nil
}

func (s *stubPopulationWorkouts) CountDistinctUsersSince(_ context.Context, cutoff time.Time) (int, error) {
	// The 7-day cutoff is later than the 30-day one.
	if cutoff.After(s.now.AddDate(0, 0, -15)) {
		return s.distinct7d, nil
	}
	return s.distinct30d, nil
}

func (s *stubPopulationWorkouts) TotalsSince(_ context.Context, _ time.Time) (int, float64, error) {
	return s.totalWorkouts, s.totalCalories, nil
}

func TestAdminAnalyticsUsesIndependentWindows(t *testing.T) {
	now := time.Now()
	userRepo := &stubUserDirectory{total: 10}
	workoutRepo := &stubPopulationWorkouts{
		distinct30d:   6,
		distinct7d:    4,
		totalWorkouts: 42,
		totalCalories: 9000,
		now:           now,
	}
	service := NewAdminService(userRepo, workoutRepo, &stubNutritionStore{}, &stubProgressStore{})

	analytics, err := service.Analytics(context.Background(), now)
	if err != nil {
		t.Fatalf("Analytics: %v", err)
	}

	if analytics.TotalUsers != 10 {
		t.Errorf("expected 10 users, got %d", analytics.TotalUsers)
	}
	if analytics.ActiveUsers != 6 {
		t.Errorf("active users use the 30-day window; got %d", analytics.ActiveUsers)
	}
	if analytics.InactiveUsers != 6 {
		t.Errorf("inactive users use the 7-day window (10-4); got %d", analytics.InactiveUsers)
	}
	if analytics.TotalWorkouts != 42 || analytics.TotalCaloriesBurned != 9000 {
		t.Errorf("unexpected totals: %+v", analytics)
	}
	if analytics.AvgWorkoutsPerUser != 7.0 {
		t.Errorf("expected avg 7.0, got %v", analytics.AvgWorkoutsPerUser)
	}
}

func TestAdminAnalyticsZeroActiveUsers(t *testing.T) {
	now := time.Now()
	service := NewAdminService(
		&stubUserDirectory{total: 3},
		&stubPopulationWorkouts{now: now},
		&stubNutritionStore{},
		&stubProgressStore{},
	)

	analytics, err := service.Analytics(context.Background(), now)
	if err != nil {
		t.Fatalf("Analytics: %v", err)
	}
	if analytics.AvgWorkoutsPerUser != 0 {
		t.Fatalf("expected 0 avg with no active users, got %v", analytics.AvgWorkoutsPerUser)
	}
	if analytics.InactiveUsers != 3 {
		t.Fatalf("expected all users inactive, got %d", analytics.InactiveUsers)
	}
}

func TestUserPerformanceAggregates(t *testing.T) {
	now := time.Now()
	workoutRepo := &stubPopulationWorkouts{
		workouts: []models.Workout{
			{CaloriesBurned: 300},
			{CaloriesBurned: 450},
		},
		now: now,
	}
	nutritionRepo := &stubNutritionStore{logs: []models.NutritionLog{
		{TotalCalories: 1800},
		{TotalCalories: 2200},
	}}
	progressRepo := &stubProgressStore{logs: []models.ProgressLog{
		{Date: now.AddDate(0, 0, -10), Weight: floatPtr(82)},
		{Date: now.AddDate(0, 0, -1), Weight: floatPtr(81)},
	}}
	service := NewAdminService(&stubUserDirectory{}, workoutRepo, nutritionRepo, progressRepo)

	performance, err := service.UserPerformance(context.Background(), 5, now)
	if err != nil {
		t.Fatalf("UserPerformance: %v", err)
	}

	if performance.Workouts != 2 || performance.TotalCaloriesBurned != 750 {
		t.Errorf("unexpected workout totals: %+v", performance)
	}
	if performance.AvgDailyCalories != 2000 {
		t.Errorf("expected 2000 avg calories, got %d", performance.AvgDailyCalories)
	}
	if len(performance.WeightProgress) != 2 || *performance.WeightProgress[0].Weight != 82 {
		t.Errorf("unexpected weight progress: %+v", performance.WeightProgress)
	}
}

func TestInactiveUsersDefaultWindow(t *testing.T) {
	now := time.Now()
	userRepo := &stubUserDirectory{inactive: []models.User{{ID: 2}}}
	service := NewAdminService(userRepo, &stubPopulationWorkouts{now: now}, &stubNutritionStore{}, &stubProgressStore{})

	users, err := service.InactiveUsers(context.Background(), 0, now)
	if err != nil {
		t.Fatalf("InactiveUsers: %v", err)
	}
	if len(users) != 1 {
		t.Fatalf("expected 1 inactive user, got %d", len(users))
	}
	expected := now.AddDate(0, 0, -7)
	if !userRepo.lastInactive.Equal(expected) {
		t.Fatalf("expected 7-day cutoff %v, got %v", expected, userRepo.lastInactive)
	}
}
