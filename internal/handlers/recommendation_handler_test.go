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

type stubRecommender struct {
	items      []models.RecommendationItem
	lastUserID int64
}

func (s *stubRecommender) Recommendations(_ context.Context, userID int64, _ time.Time) ([]models.RecommendationItem, error) {
	s.lastUserID = userID
	return s.items, nil
}

func TestGetRecommendationsPreservesOrder(t *testing.T) {
	recommender := &stubRecommender{
		items: []models.RecommendationItem{
			{Type: "hydration", Priority: "medium", Message: "Drink more water! Aim for at least 2L daily."},
			{Type: "workout", Priority: "low", Message: "Next workout suggestion: Back"},
		},
	}
	handler := NewRecommendationHandler(recommender)

	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("user_id", "42")
		c.Locals("role", "user")
		return c.Next()
	})
	app.Get("/api/v1/recommendations", handler.GetRecommendations)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/recommendations", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if recommender.lastUserID != 42 {
		t.Fatalf("expected user 42, got %d", recommender.lastUserID)
	}

	var body struct {
		Recommendations []models.RecommendationItem `json:"recommendations"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if len(body.Recommendations) != 2 || body.Recommendations[0].Type != "hydration" {
		t.Fatalf("expected ordered recommendations, got %+v", body.Recommendations)
	}
}
