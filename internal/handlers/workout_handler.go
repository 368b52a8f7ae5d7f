package handlers

import (
	"context"
	"errors"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"

	"github.com/Pradeep-Goud2004/Physical-fittness-and-wellness-tracking-system/internal/models"
	"github.com/Pradeep-Goud2004/Physical-fittness-and-wellness-tracking-system/internal/repository"
)

type workoutStore interface {
	Create(ctx context.Context, workout *models.Workout) error
	GetByID(ctx context.Context, userID, workoutID int64) (*models.Workout, error)
	List(ctx context.Context, userID int64, filter repository.WorkoutListFilter) ([]models.Workout, error)
	Count(ctx context.Context, userID int64, filter repository.WorkoutListFilter) (int, error)
	Update(ctx context.Context, workout *models.Workout) error
	Delete(ctx context.Context, userID, workoutID int64) error
}

type gamificationApplier interface {
	ApplyWorkout(ctx context.Context, userID int64, caloriesBurned float64) (*models.GamificationState, error)
}

type weeklySummarizer interface {
	WeeklySummary(ctx context.Context, userID int64, now time.Time) (*models.WeeklySummary, error)
}

type WorkoutHandler struct {
	workoutRepo  workoutStore
	gamification gamificationApplier
	analytics    weeklySummarizer
}

func NewWorkoutHandler(workoutRepo workoutStore, gamification gamificationApplier, analytics weeklySummarizer) *WorkoutHandler {
	return &WorkoutHandler{
		workoutRepo:  workoutRepo,
		gamification: gamification,
		analytics:    analytics,
	}
}

type workoutRequest struct {
	Date           *time.Time        `json:"date"`
	WorkoutType    string            `json:"workout_type"`
	Exercises      []models.Exercise `json:"exercises"`
	TotalDuration  int               `json:"total_duration"`
	CaloriesBurned float64           `json:"calories_burned"`
	Notes          *string           `json:"notes"`
}

func (h *WorkoutHandler) CreateWorkout(c *fiber.Ctx) error {
	userID, err := requestUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	var req workoutRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if validationErr := validateWorkoutRequest(req); validationErr != "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": validationErr})
	}

	date := time.Now()
	if req.Date != nil {
		date = *req.Date
	}

	workout := &models.Workout{
		UserID:         userID,
		Date:           date,
		WorkoutType:    req.WorkoutType,
		Exercises:      sanitizeExercises(req.Exercises),
		TotalDuration:  req.TotalDuration,
		CaloriesBurned: req.CaloriesBurned,
		Notes:          req.Notes,
	}
	if err := h.workoutRepo.Create(c.Context(), workout); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create workout"})
	}

	// The workout is committed at this point; the gamification update is
	// best-effort and never rolls it back.
	if _, err := h.gamification.ApplyWorkout(c.Context(), userID, workout.CaloriesBurned); err != nil {
		log.Printf("gamification update failed for user %d: %v", userID, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"workout": workout})
}

func (h *WorkoutHandler) ListWorkouts(c *fiber.Ctx) error {
	userID, err := requestUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	filter := repository.WorkoutListFilter{WorkoutType: strings.TrimSpace(c.Query("workout_type"))}
	if filter.WorkoutType != "" && !models.IsValidWorkoutType(filter.WorkoutType) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid workout_type"})
	}
	startDate, endDate, validationErr := parseDateRange(c)
	if validationErr != "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": validationErr})
	}
	filter.StartDate = startDate
	filter.EndDate = endDate

	page, limit := parsePagination(c)
	filter.Limit = limit
	filter.Offset = (page - 1) * limit

	total, err := h.workoutRepo.Count(c.Context(), userID, filter)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to list workouts"})
	}
	workouts, err := h.workoutRepo.List(c.Context(), userID, filter)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to list workouts"})
	}
	return c.JSON(fiber.Map{
		"workouts":   workouts,
		"pagination": buildPaginationMeta(page, limit, total),
	})
}

func (h *WorkoutHandler) GetWorkout(c *fiber.Ctx) error {
	userID, err := requestUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}
	workoutID, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || workoutID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid workout id"})
	}

	workout, err := h.workoutRepo.GetByID(c.Context(), userID, workoutID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Workout not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load workout"})
	}
	return c.JSON(fiber.Map{"workout": workout})
}

func (h *WorkoutHandler) UpdateWorkout(c *fiber.Ctx) error {
	userID, err := requestUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}
	workoutID, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || workoutID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid workout id"})
	}

	var req workoutRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if validationErr := validateWorkoutRequest(req); validationErr != "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": validationErr})
	}

	workout, err := h.workoutRepo.GetByID(c.Context(), userID, workoutID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Workout not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load workout"})
	}

	if req.Date != nil {
		workout.Date = *req.Date
	}
	workout.WorkoutType = req.WorkoutType
	workout.Exercises = sanitizeExercises(req.Exercises)
	workout.TotalDuration = req.TotalDuration
	workout.CaloriesBurned = req.CaloriesBurned
	workout.Notes = req.Notes

	if err := h.workoutRepo.Update(c.Context(), workout); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update workout"})
	}
	return c.JSON(fiber.Map{"workout": workout})
}

func (h *WorkoutHandler) DeleteWorkout(c *fiber.Ctx) error {
	userID, err := requestUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}
	workoutID, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || workoutID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid workout id"})
	}

	if err := h.workoutRepo.Delete(c.Context(), userID, workoutID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Workout not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete workout"})
	}
	return c.JSON(fiber.Map{"message": "Workout deleted successfully"})
}

func (h *WorkoutHandler) WeeklySummary(c *fiber.Ctx) error {
	userID, err := requestUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	summary, err := h.analytics.WeeklySummary(c.Context(), userID, time.Now())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to build weekly summary"})
	}
	return c.JSON(fiber.Map{"summary": summary})
}

func validateWorkoutRequest(req workoutRequest) string {
	if !models.IsValidWorkoutType(req.WorkoutType) {
		return "workout_type is not recognized"
	}
	if req.TotalDuration < 0 {
		return "total_duration must not be negative"
	}
	if req.CaloriesBurned < 0 {
		return "calories_burned must not be negative"
	}
	return ""
}

// sanitizeExercises drops entries without a name, matching the ingestion
// boundary's tolerance for partially filled client forms.
func sanitizeExercises(exercises []models.Exercise) []models.Exercise {
	valid := []models.Exercise{}
	for _, exercise := range exercises {
		if strings.TrimSpace(exercise.ExerciseName) == "" {
			continue
		}
		valid = append(valid, exercise)
	}
	return valid
}

func parseDateRange(c *fiber.Ctx) (*time.Time, *time.Time, string) {
	var startDate, endDate *time.Time
	if raw := strings.TrimSpace(c.Query("start_date")); raw != "" {
		parsed, err := parseDateParam(raw)
		if err != nil {
			return nil, nil, "start_date must be an RFC3339 timestamp or YYYY-MM-DD date"
		}
		startDate = &parsed
	}
	if raw := strings.TrimSpace(c.Query("end_date")); raw != "" {
		parsed, err := parseDateParam(raw)
		if err != nil {
			return nil, nil, "end_date must be an RFC3339 timestamp or YYYY-MM-DD date"
		}
		endDate = &parsed
	}
	return startDate, endDate, ""
}

func parseDateParam(raw string) (time.Time, error) {
	if parsed, err := time.Parse(time.RFC3339, raw); err == nil {
		return parsed, nil
	}
	return time.ParseInLocation("2006-01-02", raw, time.Local)
}
