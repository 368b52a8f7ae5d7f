package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"

	"github.com/Pradeep-Goud2004/Physical-fittness-and-wellness-tracking-system/internal/models"
)

type stubWellnessLogStore struct {
	upserted  *models.WellnessLog
	updated   *models.WellnessLog
	updateErr error
	today     *models.WellnessLog
}

func (s *stubWellnessLogStore) Upsert(_ context.Context, wellnessLog *models.WellnessLog) error {
	wellnessLog.ID = 7
	s.upserted = wellnessLog
	return nil
}

func (s *stubWellnessLogStore) GetByDay(_ context.Context, _ int64, _ time.Time) (*models.WellnessLog, error) {
	if s.today == nil {
		return nil, pgx.ErrNoRows
	}
	return s.today, nil
}

func (s *stubWellnessLogStore) List(_ context.Context, _ int64, _, _ *time.Time) ([]models.WellnessLog, error) {
	return []models.WellnessLog{}, nil
}

func (s *stubWellnessLogStore) Update(_ context.Context, wellnessLog *models.WellnessLog) error {
	if s.updateErr != nil {
		return s.updateErr
	}
	s.updated = wellnessLog
	return nil
}

func (s *stubWellnessLogStore) Delete(_ context.Context, _, _ int64) error {
	return nil
}

func newWellnessTestApp(store *stubWellnessLogStore) *fiber.App {
	handler := NewWellnessHandler(store)

	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("user_id", "42")
		c.Locals("role", "user")
		return c.Next()
	})
	app.Post("/api/v1/wellness", handler.LogCheckIn)
	app.Get("/api/v1/wellness/today", handler.GetTodayCheckIn)
	app.Put("/api/v1/wellness/:id", handler.UpdateWellnessLog)
	return app
}

func TestLogCheckInUpsertsDayEntry(t *testing.T) {
	store := &stubWellnessLogStore{}
	app := newWellnessTestApp(store)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/wellness", strings.NewReader(`{
		"mood": "good",
		"stress_level": 4,
		"water_intake": 2.5,
		"sleep_hours": 7.5
	}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected status 201, got %d", resp.StatusCode)
	}
	if store.upserted == nil {
		t.Fatal("expected an upserted wellness log")
	}
	if store.upserted.UserID != 42 {
		t.Fatalf("expected user 42, got %d", store.upserted.UserID)
	}
	if store.upserted.Mood != "good" {
		t.Fatalf("expected mood good, got %q", store.upserted.Mood)
	}

	var body struct {
		WellnessLog models.WellnessLog `json:"wellness_log"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body.WellnessLog.ID != 7 {
		t.Fatalf("expected log id 7, got %d", body.WellnessLog.ID)
	}
}

func TestLogCheckInDefaultsOmittedStressAndMood(t *testing.T) {
	store := &stubWellnessLogStore{}
	app := newWellnessTestApp(store)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/wellness", strings.NewReader(`{
		"water_intake": 2.5
	}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected status 201, got %d", resp.StatusCode)
	}
	if store.upserted == nil {
		t.Fatal("expected an upserted wellness log")
	}
	if store.upserted.StressLevel != 5 {
		t.Fatalf("expected stress level defaulted to 5, got %d", store.upserted.StressLevel)
	}
	if store.upserted.Mood != "good" {
		t.Fatalf("expected mood defaulted to good, got %q", store.upserted.Mood)
	}
}

func TestLogCheckInRejectsStressOutOfRange(t *testing.T) {
	store := &stubWellnessLogStore{}
	app := newWellnessTestApp(store)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/wellness", strings.NewReader(`{
		"mood": "good",
		"stress_level": 11,
		"water_intake": 2
	}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", resp.StatusCode)
	}
	if store.upserted != nil {
		t.Fatal("expected no upsert for invalid check-in")
	}
}

func TestGetTodayCheckInNotFound(t *testing.T) {
	store := &stubWellnessLogStore{}
	app := newWellnessTestApp(store)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/wellness/today", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", resp.StatusCode)
	}
}

func TestUpdateWellnessLogEditsMetricsInPlace(t *testing.T) {
	store := &stubWellnessLogStore{}
	app := newWellnessTestApp(store)

	req := httptest.NewRequest(http.MethodPut, "/api/v1/wellness/7", strings.NewReader(`{
		"mood": "okay",
		"stress_level": 6,
		"water_intake": 1.5
	}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.StatusCode)
	}
	if store.updated == nil {
		t.Fatal("expected an updated wellness log")
	}
	if store.updated.ID != 7 || store.updated.UserID != 42 {
		t.Fatalf("expected log 7 for user 42, got log %d user %d", store.updated.ID, store.updated.UserID)
	}
	if store.updated.StressLevel != 6 {
		t.Fatalf("expected stress level 6, got %d", store.updated.StressLevel)
	}
}

func TestUpdateWellnessLogNotFound(t *testing.T) {
	store := &stubWellnessLogStore{updateErr: pgx.ErrNoRows}
	app := newWellnessTestApp(store)

	req := httptest.NewRequest(http.MethodPut, "/api/v1/wellness/99", strings.NewReader(`{
		"mood": "okay",
		"stress_level": 5,
		"water_intake": 2
	}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", resp.StatusCode)
	}
}
