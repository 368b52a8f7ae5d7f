package handlers

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/Pradeep-Goud2004/Physical-fittness-and-wellness-tracking-system/internal/models"
)

type gamificationReader interface {
	State(ctx context.Context, userID int64) (*models.GamificationState, error)
	Leaderboard(ctx context.Context, sortField string) ([]models.LeaderboardEntry, error)
	AwardBadge(ctx context.Context, userID int64, badgeName, description string) (*models.GamificationState, error)
}

type GamificationHandler struct {
	gamification gamificationReader
}

func NewGamificationHandler(gamification gamificationReader) *GamificationHandler {
	return &GamificationHandler{gamification: gamification}
}

func (h *GamificationHandler) GetState(c *fiber.Ctx) error {
	userID, err := requestUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	state, err := h.gamification.State(c.Context(), userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load gamification state"})
	}
	return c.JSON(fiber.Map{"gamification": state})
}

func (h *GamificationHandler) GetLeaderboard(c *fiber.Ctx) error {
	if _, err := requestUserID(c); err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	entries, err := h.gamification.Leaderboard(c.Context(), c.Query("type"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load leaderboard"})
	}
	return c.JSON(fiber.Map{"leaderboard": entries})
}

type awardBadgeRequest struct {
	UserID      int64  `json:"user_id"`
	BadgeName   string `json:"badge_name"`
	Description string `json:"description"`
}

func (h *GamificationHandler) AwardBadge(c *fiber.Ctx) error {
	var req awardBadgeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if req.UserID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "user_id is required"})
	}
	if strings.TrimSpace(req.BadgeName) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "badge_name is required"})
	}

	state, err := h.gamification.AwardBadge(c.Context(), req.UserID, strings.TrimSpace(req.BadgeName), strings.TrimSpace(req.Description))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to award badge"})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"gamification": state})
}
