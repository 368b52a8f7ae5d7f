package handlers

import (
	"context"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/Pradeep-Goud2004/Physical-fittness-and-wellness-tracking-system/internal/models"
)

type dashboardBuilder interface {
	Dashboard(ctx context.Context, userID int64, now time.Time) (*models.DashboardAnalytics, error)
	WorkoutHeatmap(ctx context.Context, userID int64, days int, now time.Time) (map[string]int, error)
	OvertrainingAlerts(ctx context.Context, userID int64, now time.Time) (*models.AlertReport, error)
}

type AnalyticsHandler struct {
	analytics dashboardBuilder
}

func NewAnalyticsHandler(analytics dashboardBuilder) *AnalyticsHandler {
	return &AnalyticsHandler{analytics: analytics}
}

func (h *AnalyticsHandler) Dashboard(c *fiber.Ctx) error {
	userID, err := requestUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	dashboard, err := h.analytics.Dashboard(c.Context(), userID, time.Now())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to build dashboard"})
	}
	return c.JSON(fiber.Map{"analytics": dashboard})
}

func (h *AnalyticsHandler) WorkoutHeatmap(c *fiber.Ctx) error {
	userID, err := requestUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	days := 0
	if raw := c.Query("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "days must be a positive integer"})
		}
		days = parsed
	}

	heatmap, err := h.analytics.WorkoutHeatmap(c.Context(), userID, days, time.Now())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to build heatmap"})
	}
	return c.JSON(fiber.Map{"heatmap": heatmap})
}

func (h *AnalyticsHandler) OvertrainingAlerts(c *fiber.Ctx) error {
	userID, err := requestUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	report, err := h.analytics.OvertrainingAlerts(c.Context(), userID, time.Now())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to check overtraining"})
	}
	return c.JSON(report)
}
