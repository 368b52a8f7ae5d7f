package handlers

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"

	"github.com/Pradeep-Goud2004/Physical-fittness-and-wellness-tracking-system/internal/models"
)

type nutritionStore interface {
	Create(ctx context.Context, nutritionLog *models.NutritionLog) error
	GetByID(ctx context.Context, userID, logID int64) (*models.NutritionLog, error)
	GetByDay(ctx context.Context, userID int64, day time.Time) (*models.NutritionLog, error)
	List(ctx context.Context, userID int64, startDate, endDate *time.Time) ([]models.NutritionLog, error)
	Update(ctx context.Context, nutritionLog *models.NutritionLog) error
	Delete(ctx context.Context, userID, logID int64) error
}

type NutritionHandler struct {
	nutritionRepo nutritionStore
}

func NewNutritionHandler(nutritionRepo nutritionStore) *NutritionHandler {
	return &NutritionHandler{nutritionRepo: nutritionRepo}
}

type nutritionRequest struct {
	Date  *time.Time    `json:"date"`
	Meals []models.Meal `json:"meals"`
}

// LogMeals appends the submitted meals to the entry for the target calendar
// day, creating the entry when the day has none. Totals are rederived from
// the merged meal list on every write.
func (h *NutritionHandler) LogMeals(c *fiber.Ctx) error {
	userID, err := requestUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	var req nutritionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if validationErr := validateMeals(req.Meals); validationErr != "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": validationErr})
	}

	date := time.Now()
	if req.Date != nil {
		date = *req.Date
	}

	nutritionLog, err := h.nutritionRepo.GetByDay(c.Context(), userID, date)
	if err != nil {
		if !errors.Is(err, pgx.ErrNoRows) {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load nutrition log"})
		}
		nutritionLog = &models.NutritionLog{
			UserID: userID,
			Date:   date,
			Meals:  []models.Meal{},
		}
	}

	nutritionLog.Meals = append(nutritionLog.Meals, req.Meals...)
	nutritionLog.RecalculateTotals()

	if nutritionLog.ID == 0 {
		if err := h.nutritionRepo.Create(c.Context(), nutritionLog); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create nutrition log"})
		}
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{"nutrition_log": nutritionLog})
	}
	if err := h.nutritionRepo.Update(c.Context(), nutritionLog); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update nutrition log"})
	}
	return c.JSON(fiber.Map{"nutrition_log": nutritionLog})
}

func (h *NutritionHandler) ListNutritionLogs(c *fiber.Ctx) error {
	userID, err := requestUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	startDate, endDate, validationErr := parseDateRange(c)
	if validationErr != "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": validationErr})
	}

	logs, err := h.nutritionRepo.List(c.Context(), userID, startDate, endDate)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to list nutrition logs"})
	}
	return c.JSON(fiber.Map{"nutrition_logs": logs})
}

func (h *NutritionHandler) GetNutritionLog(c *fiber.Ctx) error {
	userID, err := requestUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}
	logID, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || logID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid nutrition log id"})
	}

	nutritionLog, err := h.nutritionRepo.GetByID(c.Context(), userID, logID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Nutrition log not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load nutrition log"})
	}
	return c.JSON(fiber.Map{"nutrition_log": nutritionLog})
}

// ReplaceMeals overwrites the meal list of an existing entry. Totals are
// rederived, never taken from the request.
func (h *NutritionHandler) ReplaceMeals(c *fiber.Ctx) error {
	userID, err := requestUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}
	logID, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || logID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid nutrition log id"})
	}

	var req nutritionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if validationErr := validateMeals(req.Meals); validationErr != "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": validationErr})
	}

	nutritionLog, err := h.nutritionRepo.GetByID(c.Context(), userID, logID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Nutrition log not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load nutrition log"})
	}

	nutritionLog.Meals = req.Meals
	nutritionLog.RecalculateTotals()

	if err := h.nutritionRepo.Update(c.Context(), nutritionLog); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update nutrition log"})
	}
	return c.JSON(fiber.Map{"nutrition_log": nutritionLog})
}

func (h *NutritionHandler) DeleteNutritionLog(c *fiber.Ctx) error {
	userID, err := requestUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}
	logID, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || logID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid nutrition log id"})
	}

	if err := h.nutritionRepo.Delete(c.Context(), userID, logID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Nutrition log not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete nutrition log"})
	}
	return c.JSON(fiber.Map{"message": "Nutrition log deleted successfully"})
}

func validateMeals(meals []models.Meal) string {
	if len(meals) == 0 {
		return "At least one meal is required"
	}
	for _, meal := range meals {
		if !models.IsValidMealType(meal.MealType) {
			return "meal_type is not recognized"
		}
		if strings.TrimSpace(meal.MealName) == "" {
			return "meal_name is required"
		}
		if meal.Calories < 0 || meal.Protein < 0 || meal.Carbs < 0 || meal.Fats < 0 {
			return "Meal macros must not be negative"
		}
	}
	return ""
}
