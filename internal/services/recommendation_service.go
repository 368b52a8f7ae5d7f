package services

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/Pradeep-Goud2004/Physical-fittness-and-wellness-tracking-system/internal/models"
)

const (
	// daysSinceNever stands in for "never worked out" so the comeback rule
	// always fires for new users.
	daysSinceNever = 999

	hydrationFloorLiters  = 2.0
	proteinGramsPerKG     = 2.0
	proteinShortfallRatio = 0.8
	defaultBodyWeightKG   = 70.0
	sleepFloorHours       = 7.0
)

// suggestionOrder is an observable contract: the suggestion is always the
// first entry that differs from the last workout's type.
var suggestionOrder = []string{"Chest", "Back", "Legs", "Shoulders", "Arms"}

type profileReader interface {
	GetByID(ctx context.Context, id int64) (*models.User, error)
}

type lastWorkoutReader interface {
	GetLatest(ctx context.Context, userID int64) (*models.Workout, error)
}

type wellnessDayReader interface {
	GetByDay(ctx context.Context, userID int64, day time.Time) (*models.WellnessLog, error)
}

type nutritionDayReader interface {
	GetByDay(ctx context.Context, userID int64, day time.Time) (*models.NutritionLog, error)
}

type RecommendationService struct {
	userRepo      profileReader
	workoutRepo   lastWorkoutReader
	wellnessRepo  wellnessDayReader
	nutritionRepo nutritionDayReader
}

func NewRecommendationService(
	userRepo profileReader,
	workoutRepo lastWorkoutReader,
	wellnessRepo wellnessDayReader,
	nutritionRepo nutritionDayReader,
) *RecommendationService {
	return &RecommendationService{
		userRepo:      userRepo,
		workoutRepo:   workoutRepo,
		wellnessRepo:  wellnessRepo,
		nutritionRepo: nutritionRepo,
	}
}

// Recommendations runs the rule list in a fixed order and returns the items
// in emission order. The order is part of the contract; items are never
// re-sorted by priority.
func (s *RecommendationService) Recommendations(ctx context.Context, userID int64, now time.Time) ([]models.RecommendationItem, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	lastWorkout, err := s.workoutRepo.GetLatest(ctx, userID)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}

	daysSinceLastWorkout := daysSinceNever
	if lastWorkout != nil {
		daysSinceLastWorkout = int(math.Floor(now.Sub(lastWorkout.Date).Hours() / 24))
	}

	todayWellness, err := s.wellnessRepo.GetByDay(ctx, userID, now)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}

	recommendations := []models.RecommendationItem{}

	if daysSinceLastWorkout > 3 {
		recommendations = append(recommendations, models.RecommendationItem{
			Type:     "workout_reminder",
			Priority: "high",
			Message:  fmt.Sprintf("It's been %d days since your last workout. Time to get back in the gym!", daysSinceLastWorkout),
			Action:   "Start a workout",
		})
	} else if daysSinceLastWorkout == 0 {
		recommendations = append(recommendations, models.RecommendationItem{
			Type:     "rest_day",
			Priority: "medium",
			Message:  "You worked out today. Make sure to get adequate rest and recovery!",
			Action:   "Log rest day",
		})
	}

	if todayWellness == nil || todayWellness.WaterIntake < hydrationFloorLiters {
		recommendations = append(recommendations, models.RecommendationItem{
			Type:     "hydration",
			Priority: "medium",
			Message:  "Remember to stay hydrated! Aim for 2-3 liters of water per day.",
			Action:   "Log water intake",
		})
	}

	goals := user.Profile.FitnessGoals
	if containsGoal(goals, "muscle_gain") {
		todayNutrition, err := s.nutritionRepo.GetByDay(ctx, userID, now)
		if err != nil && !errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		proteinIntake := 0.0
		if todayNutrition != nil {
			proteinIntake = todayNutrition.TotalProtein
		}
		bodyWeight := defaultBodyWeightKG
		if user.Profile.WeightKG != nil && *user.Profile.WeightKG > 0 {
			bodyWeight = *user.Profile.WeightKG
		}
		targetProtein := bodyWeight * proteinGramsPerKG
		if proteinIntake < targetProtein*proteinShortfallRatio {
			recommendations = append(recommendations, models.RecommendationItem{
				Type:     "nutrition",
				Priority: "high",
				Message: fmt.Sprintf("You need more protein! Target: %dg. Current: %dg",
					int(math.Round(targetProtein)), int(math.Round(proteinIntake))),
				Action: "Log protein meal",
			})
		}
	}

	if containsGoal(goals, "weight_loss") {
		recommendations = append(recommendations, models.RecommendationItem{
			Type:     "nutrition",
			Priority: "medium",
			Message:  "Focus on a calorie deficit while maintaining protein intake for muscle preservation.",
			Action:   "Track calories",
		})
	}

	if lastWorkout != nil {
		if suggested, ok := nextWorkoutType(lastWorkout.WorkoutType); ok {
			recommendations = append(recommendations, models.RecommendationItem{
				Type:     "workout_suggestion",
				Priority: "low",
				Message:  fmt.Sprintf("Next workout suggestion: %s", suggested),
				Action:   "Start workout",
			})
		}
	}

	if todayWellness != nil && todayWellness.SleepHours != nil && *todayWellness.SleepHours < sleepFloorHours {
		recommendations = append(recommendations, models.RecommendationItem{
			Type:     "wellness",
			Priority: "high",
			Message:  "You got less than 7 hours of sleep. Recovery is crucial for progress!",
			Action:   "Improve sleep schedule",
		})
	}

	return recommendations, nil
}

func containsGoal(goals []string, goal string) bool {
	for _, g := range goals {
		if g == goal {
			return true
		}
	}
	return false
}

// nextWorkoutType picks the first type in the fixed order that differs from
// the last one. The tie-break is positional on purpose.
func nextWorkoutType(lastType string) (string, bool) {
	for _, workoutType := range suggestionOrder {
		if workoutType != lastType {
			return workoutType, true
		}
	}
	return "", false
}
