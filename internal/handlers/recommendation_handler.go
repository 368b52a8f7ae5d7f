package handlers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/Pradeep-Goud2004/Physical-fittness-and-wellness-tracking-system/internal/models"
)

type recommender interface {
	Recommendations(ctx context.Context, userID int64, now time.Time) ([]models.RecommendationItem, error)
}

type RecommendationHandler struct {
	recommendations recommender
}

func NewRecommendationHandler(recommendations recommender) *RecommendationHandler {
	return &RecommendationHandler{recommendations: recommendations}
}

func (h *RecommendationHandler) GetRecommendations(c *fiber.Ctx) error {
	userID, err := requestUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	items, err := h.recommendations.Recommendations(c.Context(), userID, time.Now())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to build recommendations"})
	}
	return c.JSON(fiber.Map{"recommendations": items})
}
