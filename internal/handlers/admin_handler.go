package handlers

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"

	"github.com/Pradeep-Goud2004/Physical-fittness-and-wellness-tracking-system/internal/models"
)

type adminReporter interface {
	ListUsers(ctx context.Context) ([]models.User, error)
	GetUser(ctx context.Context, userID int64) (*models.User, error)
	Analytics(ctx context.Context, now time.Time) (*models.AdminAnalytics, error)
	UserPerformance(ctx context.Context, userID int64, now time.Time) (*models.UserPerformance, error)
	InactiveUsers(ctx context.Context, days int, now time.Time) ([]models.User, error)
}

type AdminHandler struct {
	admin adminReporter
}

func NewAdminHandler(admin adminReporter) *AdminHandler {
	return &AdminHandler{admin: admin}
}

func (h *AdminHandler) ListUsers(c *fiber.Ctx) error {
	users, err := h.admin.ListUsers(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to list users"})
	}
	return c.JSON(fiber.Map{"users": users})
}

func (h *AdminHandler) GetUser(c *fiber.Ctx) error {
	userID, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || userID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid user id"})
	}

	user, err := h.admin.GetUser(c.Context(), userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load user"})
	}
	return c.JSON(fiber.Map{"user": user})
}

func (h *AdminHandler) PlatformAnalytics(c *fiber.Ctx) error {
	analytics, err := h.admin.Analytics(c.Context(), time.Now())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to build analytics"})
	}
	return c.JSON(fiber.Map{"analytics": analytics})
}

func (h *AdminHandler) UserPerformance(c *fiber.Ctx) error {
	userID, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || userID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid user id"})
	}

	performance, err := h.admin.UserPerformance(c.Context(), userID, time.Now())
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to build performance report"})
	}
	return c.JSON(fiber.Map{"performance": performance})
}

func (h *AdminHandler) InactiveUsers(c *fiber.Ctx) error {
	days := 0
	if raw := c.Query("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "days must be a positive integer"})
		}
		days = parsed
	}

	users, err := h.admin.InactiveUsers(c.Context(), days, time.Now())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to list inactive users"})
	}
	return c.JSON(fiber.Map{"users": users})
}
