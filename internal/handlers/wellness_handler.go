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

type wellnessStore interface {
	Upsert(ctx context.Context, wellnessLog *models.WellnessLog) error
	GetByDay(ctx context.Context, userID int64, day time.Time) (*models.WellnessLog, error)
	List(ctx context.Context, userID int64, startDate, endDate *time.Time) ([]models.WellnessLog, error)
	Update(ctx context.Context, wellnessLog *models.WellnessLog) error
	Delete(ctx context.Context, userID, logID int64) error
}

type WellnessHandler struct {
	wellnessRepo wellnessStore
}

func NewWellnessHandler(wellnessRepo wellnessStore) *WellnessHandler {
	return &WellnessHandler{wellnessRepo: wellnessRepo}
}

type wellnessRequest struct {
	Date        *time.Time `json:"date"`
	SleepHours  *float64   `json:"sleep_hours"`
	WaterIntake float64    `json:"water_intake"`
	StressLevel int        `json:"stress_level"`
	IsRestDay   bool       `json:"is_rest_day"`
	Mood        string     `json:"mood"`
	Notes       *string    `json:"notes"`
}

// LogCheckIn records the wellness check-in for the target calendar day.
// A second submission for the same day replaces the first.
func (h *WellnessHandler) LogCheckIn(c *fiber.Ctx) error {
	userID, err := requestUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	var req wellnessRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	applyWellnessDefaults(&req)
	if validationErr := validateWellnessRequest(req); validationErr != "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": validationErr})
	}

	date := time.Now()
	if req.Date != nil {
		date = *req.Date
	}

	wellnessLog := &models.WellnessLog{
		UserID:      userID,
		Date:        date,
		SleepHours:  req.SleepHours,
		WaterIntake: req.WaterIntake,
		StressLevel: req.StressLevel,
		IsRestDay:   req.IsRestDay,
		Mood:        req.Mood,
		Notes:       req.Notes,
	}
	if err := h.wellnessRepo.Upsert(c.Context(), wellnessLog); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to save wellness log"})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"wellness_log": wellnessLog})
}

func (h *WellnessHandler) ListWellnessLogs(c *fiber.Ctx) error {
	userID, err := requestUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	startDate, endDate, validationErr := parseDateRange(c)
	if validationErr != "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": validationErr})
	}

	logs, err := h.wellnessRepo.List(c.Context(), userID, startDate, endDate)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to list wellness logs"})
	}
	return c.JSON(fiber.Map{"wellness_logs": logs})
}

func (h *WellnessHandler) GetTodayCheckIn(c *fiber.Ctx) error {
	userID, err := requestUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	wellnessLog, err := h.wellnessRepo.GetByDay(c.Context(), userID, time.Now())
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "No check-in recorded today"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load wellness log"})
	}
	return c.JSON(fiber.Map{"wellness_log": wellnessLog})
}

// UpdateWellnessLog rewrites the metrics of an existing check-in in place.
// The entry keeps its calendar day.
func (h *WellnessHandler) UpdateWellnessLog(c *fiber.Ctx) error {
	userID, err := requestUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}
	logID, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || logID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid wellness log id"})
	}

	var req wellnessRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	applyWellnessDefaults(&req)
	if validationErr := validateWellnessRequest(req); validationErr != "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": validationErr})
	}

	wellnessLog := &models.WellnessLog{
		ID:          logID,
		UserID:      userID,
		SleepHours:  req.SleepHours,
		WaterIntake: req.WaterIntake,
		StressLevel: req.StressLevel,
		IsRestDay:   req.IsRestDay,
		Mood:        req.Mood,
		Notes:       req.Notes,
	}
	if err := h.wellnessRepo.Update(c.Context(), wellnessLog); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Wellness log not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update wellness log"})
	}
	return c.JSON(fiber.Map{"wellness_log": wellnessLog})
}

func (h *WellnessHandler) DeleteWellnessLog(c *fiber.Ctx) error {
	userID, err := requestUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}
	logID, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || logID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid wellness log id"})
	}

	if err := h.wellnessRepo.Delete(c.Context(), userID, logID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Wellness log not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete wellness log"})
	}
	return c.JSON(fiber.Map{"message": "Wellness log deleted successfully"})
}

// applyWellnessDefaults coerces omitted fields instead of rejecting them:
// stress level falls back to the middle of the scale and mood to "good".
func applyWellnessDefaults(req *wellnessRequest) {
	if req.StressLevel == 0 {
		req.StressLevel = 5
	}
	if req.Mood == "" {
		req.Mood = "good"
	}
}

func validateWellnessRequest(req wellnessRequest) string {
	if !models.IsValidMood(req.Mood) {
		return "mood is not recognized"
	}
	if req.StressLevel < 1 || req.StressLevel > 10 {
		return "stress_level must be between 1 and 10"
	}
	if req.WaterIntake < 0 {
		return "water_intake must not be negative"
	}
	if req.SleepHours != nil && (*req.SleepHours < 0 || *req.SleepHours > 24) {
		return "sleep_hours must be between 0 and 24"
	}
	return ""
}
