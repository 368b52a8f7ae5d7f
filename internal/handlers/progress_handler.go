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

type progressStore interface {
	Create(ctx context.Context, progressLog *models.ProgressLog) error
	GetByID(ctx context.Context, userID, logID int64) (*models.ProgressLog, error)
	List(ctx context.Context, userID int64, startDate, endDate *time.Time) ([]models.ProgressLog, error)
	WeightSeries(ctx context.Context, userID int64) ([]models.WeightPoint, error)
	MeasurementSeries(ctx context.Context, userID int64) ([]models.MeasurementPoint, error)
	Update(ctx context.Context, progressLog *models.ProgressLog) error
	Delete(ctx context.Context, userID, logID int64) error
}

type ProgressHandler struct {
	progressRepo progressStore
}

func NewProgressHandler(progressRepo progressStore) *ProgressHandler {
	return &ProgressHandler{progressRepo: progressRepo}
}

type progressRequest struct {
	Date              *time.Time              `json:"date"`
	Weight            *float64                `json:"weight"`
	BodyMeasurements  models.BodyMeasurements `json:"body_measurements"`
	BodyFatPercentage *float64                `json:"body_fat_percentage"`
	MuscleMass        *float64                `json:"muscle_mass"`
	Notes             *string                 `json:"notes"`
}

func (h *ProgressHandler) LogProgress(c *fiber.Ctx) error {
	userID, err := requestUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	var req progressRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if validationErr := validateProgressRequest(req); validationErr != "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": validationErr})
	}

	date := time.Now()
	if req.Date != nil {
		date = *req.Date
	}

	progressLog := &models.ProgressLog{
		UserID:            userID,
		Date:              date,
		Weight:            req.Weight,
		BodyMeasurements:  req.BodyMeasurements,
		BodyFatPercentage: req.BodyFatPercentage,
		MuscleMass:        req.MuscleMass,
		Notes:             req.Notes,
	}
	if err := h.progressRepo.Create(c.Context(), progressLog); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create progress log"})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"progress_log": progressLog})
}

func (h *ProgressHandler) ListProgressLogs(c *fiber.Ctx) error {
	userID, err := requestUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	startDate, endDate, validationErr := parseDateRange(c)
	if validationErr != "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": validationErr})
	}

	logs, err := h.progressRepo.List(c.Context(), userID, startDate, endDate)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to list progress logs"})
	}
	return c.JSON(fiber.Map{"progress_logs": logs})
}

// WeightChart returns the weight readings as dated points for charting.
func (h *ProgressHandler) WeightChart(c *fiber.Ctx) error {
	userID, err := requestUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	points, err := h.progressRepo.WeightSeries(c.Context(), userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load weight progress"})
	}
	return c.JSON(fiber.Map{"weight_progress": points})
}

// MeasurementsTrend returns the body-measurement history as dated points.
func (h *ProgressHandler) MeasurementsTrend(c *fiber.Ctx) error {
	userID, err := requestUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	points, err := h.progressRepo.MeasurementSeries(c.Context(), userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load measurements trend"})
	}
	return c.JSON(fiber.Map{"measurements": points})
}

func (h *ProgressHandler) GetProgressLog(c *fiber.Ctx) error {
	userID, err := requestUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}
	logID, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || logID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid progress log id"})
	}

	progressLog, err := h.progressRepo.GetByID(c.Context(), userID, logID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Progress log not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load progress log"})
	}
	return c.JSON(fiber.Map{"progress_log": progressLog})
}

// UpdateProgressLog replaces the entry's fields. An omitted date keeps the
// entry's current date.
func (h *ProgressHandler) UpdateProgressLog(c *fiber.Ctx) error {
	userID, err := requestUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}
	logID, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || logID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid progress log id"})
	}

	var req progressRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if validationErr := validateProgressRequest(req); validationErr != "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": validationErr})
	}

	existing, err := h.progressRepo.GetByID(c.Context(), userID, logID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Progress log not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load progress log"})
	}

	date := existing.Date
	if req.Date != nil {
		date = *req.Date
	}

	progressLog := &models.ProgressLog{
		ID:                logID,
		UserID:            userID,
		Date:              date,
		Weight:            req.Weight,
		BodyMeasurements:  req.BodyMeasurements,
		BodyFatPercentage: req.BodyFatPercentage,
		MuscleMass:        req.MuscleMass,
		Notes:             req.Notes,
	}
	if err := h.progressRepo.Update(c.Context(), progressLog); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Progress log not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update progress log"})
	}
	return c.JSON(fiber.Map{"progress_log": progressLog})
}

func (h *ProgressHandler) DeleteProgressLog(c *fiber.Ctx) error {
	userID, err := requestUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}
	logID, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || logID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid progress log id"})
	}

	if err := h.progressRepo.Delete(c.Context(), userID, logID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Progress log not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete progress log"})
	}
	return c.JSON(fiber.Map{"message": "Progress log deleted successfully"})
}

func validateProgressRequest(req progressRequest) string {
	if req.Weight != nil && *req.Weight <= 0 {
		return "weight must be positive"
	}
	if req.BodyFatPercentage != nil && (*req.BodyFatPercentage < 0 || *req.BodyFatPercentage > 100) {
		return "body_fat_percentage must be between 0 and 100"
	}
	if req.MuscleMass != nil && *req.MuscleMass <= 0 {
		return "muscle_mass must be positive"
	}
	return ""
}
