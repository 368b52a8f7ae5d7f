package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"

	"github.com/Pradeep-Goud2004/Physical-fittness-and-wellness-tracking-system/internal/models"
	"github.com/Pradeep-Goud2004/Physical-fittness-and-wellness-tracking-system/internal/repository"
)

type stubWorkoutStore struct {
	created    *models.Workout
	createErr  error
	listResult []models.Workout
	listErr    error
	countTotal int
	getResult  *models.Workout
	getErr     error
	deleteErr  error
	lastFilter repository.WorkoutListFilter
}

func (s *stubWorkoutStore) Create(_ context.Context, workout *models.Workout) error {
	if s.createErr != nil {
		return s.createErr
	}
	workout.ID = 17
	s.created = workout
	return nil
}

func (s *stubWorkoutStore) GetByID(_ context.Context, _, _ int64) (*models.Workout, error) {
	return s.getResult, s.getErr
}

func (s *stubWorkoutStore) List(_ context.Context, _ int64, filter repository.WorkoutListFilter) ([]models.Workout, error) {
	s.lastFilter = filter
	return s.listResult, s.listErr
}

func (s *stubWorkoutStore) Count(_ context.Context, _ int64, _ repository.WorkoutListFilter) (int, error) {
	return s.countTotal, nil
}

func (s *stubWorkoutStore) Update(_ context.Context, _ *models.Workout) error {
	return nil
}

func (s *stubWorkoutStore) Delete(_ context.Context, _, _ int64) error {
	return s.deleteErr
}

type stubGamificationApplier struct {
	applyErr     error
	lastUserID   int64
	lastCalories float64
	callCount    int
}

func (s *stubGamificationApplier) ApplyWorkout(_ context.Context, userID int64, caloriesBurned float64) (*models.GamificationState, error) {
	s.callCount++
	s.lastUserID = userID
	s.lastCalories = caloriesBurned
	if s.applyErr != nil {
		return nil, s.applyErr
	}
	return models.NewGamificationState(userID), nil
}

type stubWeeklySummarizer struct {
	result *models.WeeklySummary
	err    error
}

func (s *stubWeeklySummarizer) WeeklySummary(_ context.Context, _ int64, _ time.Time) (*models.WeeklySummary, error) {
	return s.result, s.err
}

func newWorkoutTestApp(store *stubWorkoutStore, gamification *stubGamificationApplier) *fiber.App {
	handler := NewWorkoutHandler(store, gamification, &stubWeeklySummarizer{result: &models.WeeklySummary{}})

	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("user_id", "42")
		c.Locals("role", "user")
		return c.Next()
	})
	app.Post("/api/v1/workouts", handler.CreateWorkout)
	app.Get("/api/v1/workouts", handler.ListWorkouts)
	app.Get("/api/v1/workouts/:id", handler.GetWorkout)
	app.Delete("/api/v1/workouts/:id", handler.DeleteWorkout)
	return app
}

func TestCreateWorkoutAppliesGamification(t *testing.T) {
	store := &stubWorkoutStore{}
	gamification := &stubGamificationApplier{}
	app := newWorkoutTestApp(store, gamification)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/workouts", strings.NewReader(`{
		"workout_type": "Chest",
		"total_duration": 45,
		"calories_burned": 300,
		"exercises": [{"exercise_name": "Bench Press"}, {"exercise_name": ""}]
	}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.StatusCode)
	}
	if gamification.callCount != 1 {
		t.Fatalf("expected gamification applied once, got %d", gamification.callCount)
	}
	if gamification.lastUserID != 42 || gamification.lastCalories != 300 {
		t.Fatalf("unexpected gamification input: user %d calories %v", gamification.lastUserID, gamification.lastCalories)
	}
	if len(store.created.Exercises) != 1 {
		t.Fatalf("expected nameless exercise dropped, got %d exercises", len(store.created.Exercises))
	}
}

func TestCreateWorkoutSucceedsWhenGamificationFails(t *testing.T) {
	store := &stubWorkoutStore{}
	gamification := &stubGamificationApplier{applyErr: errors.New("db down")}
	app := newWorkoutTestApp(store, gamification)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/workouts", strings.NewReader(`{
		"workout_type": "Legs",
		"total_duration": 30,
		"calories_burned": 200
	}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201 despite gamification failure, got %d", resp.StatusCode)
	}
	if store.created == nil {
		t.Fatal("expected workout persisted")
	}
}

func TestCreateWorkoutRejectsUnknownType(t *testing.T) {
	app := newWorkoutTestApp(&stubWorkoutStore{}, &stubGamificationApplier{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/workouts", strings.NewReader(`{
		"workout_type": "Swimming Underwater"
	}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
}

func TestListWorkoutsAppliesFilterAndPagination(t *testing.T) {
	store := &stubWorkoutStore{countTotal: 25}
	app := newWorkoutTestApp(store, &stubGamificationApplier{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/workouts?workout_type=Chest&page=2&limit=10&start_date=2026-08-01", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if store.lastFilter.WorkoutType != "Chest" {
		t.Fatalf("expected type filter Chest, got %q", store.lastFilter.WorkoutType)
	}
	if store.lastFilter.StartDate == nil {
		t.Fatal("expected start date filter set")
	}
	if store.lastFilter.Limit != 10 || store.lastFilter.Offset != 10 {
		t.Fatalf("expected limit 10 offset 10, got %d/%d", store.lastFilter.Limit, store.lastFilter.Offset)
	}

	var body struct {
		Pagination models.PaginationMeta `json:"pagination"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.Pagination.Total != 25 || body.Pagination.TotalPages != 3 {
		t.Fatalf("unexpected pagination meta: %+v", body.Pagination)
	}
}

func TestDeleteWorkoutNotFound(t *testing.T) {
	store := &stubWorkoutStore{deleteErr: pgx.ErrNoRows}
	app := newWorkoutTestApp(store, &stubGamificationApplier{})

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/workouts/9", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}
}
