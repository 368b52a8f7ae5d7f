package services

import (
	"context"
	"math"
	"time"

	"github.com/Pradeep-Goud2004/Physical-fittness-and-wellness-tracking-system/internal/models"
)

const (
	adminWindowDays = 30

	// The inactivity window is deliberately narrower than the 30-day active
	// definition above; the two answer different questions.
	inactiveDefaultDays = 7
)

type populationWorkoutReader interface {
	ListSince(ctx context.Context, userID int64, cutoff time.Time) ([]models.Workout, error)
	CountDistinctUsersSince(ctx context.Context, cutoff time.Time) (int, error)
	TotalsSince(ctx context.Context, cutoff time.Time) (int, float64, error)
}

type userDirectory interface {
	GetByID(ctx context.Context, id int64) (*models.User, error)
	ListByRole(ctx context.Context, role string) ([]models.User, error)
	CountByRole(ctx context.Context, role string) (int, error)
	ListInactiveSince(ctx context.Context, cutoff time.Time) ([]models.User, error)
}

type AdminService struct {
	userRepo      userDirectory
	workoutRepo   populationWorkoutReader
	nutritionRepo nutritionWindowReader
	progressRepo  progressWindowReader
}

func NewAdminService(
	userRepo userDirectory,
	workoutRepo populationWorkoutReader,
	nutritionRepo nutritionWindowReader,
	progressRepo progressWindowReader,
) *AdminService {
	return &AdminService{
		userRepo:      userRepo,
		workoutRepo:   workoutRepo,
		nutritionRepo: nutritionRepo,
		progressRepo:  progressRepo,
	}
}

func (s *AdminService) ListUsers(ctx context.Context) ([]models.User, error) {
	return s.userRepo.ListByRole(ctx, "user")
}

func (s *AdminService) GetUser(ctx context.Context, userID int64) (*models.User, error) {
	return s.userRepo.GetByID(ctx, userID)
}

// Analytics rolls the same window reductions up to population scope.
func (s *AdminService) Analytics(ctx context.Context, now time.Time) (*models.AdminAnalytics, error) {
	activeCutoff := now.AddDate(0, 0, -adminWindowDays)
	inactiveCutoff := now.AddDate(0, 0, -inactiveDefaultDays)

	totalUsers, err := s.userRepo.CountByRole(ctx, "user")
	if err != nil {
		return nil, err
	}

	activeUsers, err := s.workoutRepo.CountDistinctUsersSince(ctx, activeCutoff)
	if err != nil {
		return nil, err
	}

	recentlyActive, err := s.workoutRepo.CountDistinctUsersSince(ctx, inactiveCutoff)
	if err != nil {
		return nil, err
	}
	inactiveUsers := totalUsers - recentlyActive
	if inactiveUsers < 0 {
		inactiveUsers = 0
	}

	totalWorkouts, totalCalories, err := s.workoutRepo.TotalsSince(ctx, activeCutoff)
	if err != nil {
		return nil, err
	}

	avgWorkoutsPerUser := 0.0
	if activeUsers > 0 {
		avgWorkoutsPerUser = float64(totalWorkouts) / float64(activeUsers)
	}

	return &models.AdminAnalytics{
		TotalUsers:          totalUsers,
		ActiveUsers:         activeUsers,
		InactiveUsers:       inactiveUsers,
		TotalWorkouts:       totalWorkouts,
		TotalCaloriesBurned: totalCalories,
		AvgWorkoutsPerUser:  round1(avgWorkoutsPerUser),
	}, nil
}

// UserPerformance is the per-user 30-day drill-down. Unlike the dashboard it
// carries no streak; that field belongs to the gamification state.
func (s *AdminService) UserPerformance(ctx context.Context, userID int64, now time.Time) (*models.UserPerformance, error) {
	cutoff := now.AddDate(0, 0, -adminWindowDays)

	workouts, err := s.workoutRepo.ListSince(ctx, userID, cutoff)
	if err != nil {
		return nil, err
	}
	totalCalories := 0.0
	for _, workout := range workouts {
		totalCalories += workout.CaloriesBurned
	}

	nutritionLogs, err := s.nutritionRepo.ListSince(ctx, userID, cutoff)
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

	progressLogs, err := s.progressRepo.ListSince(ctx, userID, cutoff)
	if err != nil {
		return nil, err
	}
	weightProgress := make([]models.WeightPoint, 0, len(progressLogs))
	for _, progressLog := range progressLogs {
		weightProgress = append(weightProgress, models.WeightPoint{
			Date:   progressLog.Date,
			Weight: progressLog.Weight,
		})
	}

	return &models.UserPerformance{
		Workouts:            len(workouts),
		TotalCaloriesBurned: totalCalories,
		AvgDailyCalories:    int(math.Round(avgDailyCalories)),
		WeightProgress:      weightProgress,
	}, nil
}

func (s *AdminService) InactiveUsers(ctx context.Context, days int, now time.Time) ([]models.User, error) {
	if days <= 0 {
		days = inactiveDefaultDays
	}
	return s.userRepo.ListInactiveSince(ctx, now.AddDate(0, 0, -days))
}
