package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/Pradeep-Goud2004/Physical-fittness-and-wellness-tracking-system/internal/models"
)

type stubDashboardBuilder struct {
	dashboard  *models.DashboardAnalytics
	heatmap    map[string]int
	report     *models.AlertReport
	lastDays   int
	lastUserID int64
}

func (s *stubDashboardBuilder) Dashboard(_ context.Context, userID int64, _ time.Time) (*models.DashboardAnalytics, error) {
	s.lastUserID = userID
	return s.dashboard, nil
}

func (s *stubDashboardBuilder) WorkoutHeatmap(_ context.Context, userID int64, days int, _ time.Time) (map[string]int, error) {
	s.lastUserID = userID
	s.lastDays = days
	return s.heatmap, nil
}

func (s *stubDashboardBuilder) OvertrainingAlerts(_ context.Context, userID int64, _ time.Time) (*models.AlertReport, error) {
	s.lastUserID = userID
	return s.report, nil
}

func newAnalyticsTestApp(builder *stubDashboardBuilder) *fiber.App {
	handler := NewAnalyticsHandler(builder)

	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("user_id", "42")
		c.Locals("role", "user")
		return c.Next()
	})
	app.Get("/api/v1/analytics/dashboard", handler.Dashboard)
	app.Get("/api/v1/analytics/workout-heatmap", handler.WorkoutHeatmap)
	app.Get("/api/v1/analytics/overtraining-alert", handler.OvertrainingAlerts)
	return app
}

func TestDashboardReturnsAnalytics(t *testing.T) {
	builder := &stubDashboardBuilder{
		dashboard: &models.DashboardAnalytics{
			Workouts: models.WorkoutStats{Total: 12, CurrentStreak: 4},
			Metrics:  models.MetricStats{ConsistencyScore: 80, FatigueLevel: "low"},
		},
	}
	app := newAnalyticsTestApp(builder)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/analytics/dashboard", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if builder.lastUserID != 42 {
		t.Fatalf("expected user 42, got %d", builder.lastUserID)
	}

	var body struct {
		Analytics models.DashboardAnalytics `json:"analytics"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.Analytics.Workouts.Total != 12 || body.Analytics.Metrics.FatigueLevel != "low" {
		t.Fatalf("unexpected analytics payload: %+v", body.Analytics)
	}
}

func TestWorkoutHeatmapPassesDaysParam(t *testing.T) {
	builder := &stubDashboardBuilder{heatmap: map[string]int{"2026-08-30": 2}}
	app := newAnalyticsTestApp(builder)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/analytics/workout-heatmap?days=30", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if builder.lastDays != 30 {
		t.Fatalf("expected days 30, got %d", builder.lastDays)
	}
}

func TestWorkoutHeatmapRejectsBadDaysParam(t *testing.T) {
	app := newAnalyticsTestApp(&stubDashboardBuilder{})

	for _, query := range []string{"days=abc", "days=-3", "days=0"} {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/analytics/workout-heatmap?"+query, nil)
		resp, err := app.Test(req)
		if err != nil {
			t.Fatalf("app.Test %s: %v", query, err)
		}
		resp.Body.Close()

		if resp.StatusCode != http.StatusBadRequest {
			t.Fatalf("expected 400 for %s, got %d", query, resp.StatusCode)
		}
	}
}

func TestOvertrainingAlertsReturnsReport(t *testing.T) {
	builder := &stubDashboardBuilder{
		report: &models.AlertReport{
			Alerts:    []models.Alert{{Type: "overtraining", Severity: "high"}},
			HasAlerts: true,
		},
	}
	app := newAnalyticsTestApp(builder)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/analytics/overtraining-alert", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var body models.AlertReport
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if !body.HasAlerts || len(body.Alerts) != 1 {
		t.Fatalf("unexpected alert report: %+v", body)
	}
}
