package handlers

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"

	"github.com/Pradeep-Goud2004/Physical-fittness-and-wellness-tracking-system/internal/models"
)

type planStore interface {
	Create(ctx context.Context, plan *models.WorkoutPlan) error
	List(ctx context.Context) ([]models.WorkoutPlan, error)
	Assign(ctx context.Context, planID, userID int64) (*models.WorkoutPlan, error)
}

type PlanHandler struct {
	planRepo planStore
}

func NewPlanHandler(planRepo planStore) *PlanHandler {
	return &PlanHandler{planRepo: planRepo}
}

type planRequest struct {
	Name          string           `json:"name"`
	Description   *string          `json:"description"`
	DurationWeeks int              `json:"duration_weeks"`
	Days          []models.PlanDay `json:"days"`
	IsTemplate    *bool            `json:"is_template"`
	AssignedTo    *int64           `json:"assigned_to"`
}

// CreatePlan stores a plan authored by the requesting admin. A plan with no
// explicit is_template flag is a template; duration defaults to four weeks.
func (h *PlanHandler) CreatePlan(c *fiber.Ctx) error {
	adminID, err := requestUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	var req planRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if validationErr := validatePlanRequest(req); validationErr != "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": validationErr})
	}

	durationWeeks := req.DurationWeeks
	if durationWeeks <= 0 {
		durationWeeks = 4
	}
	isTemplate := true
	if req.IsTemplate != nil {
		isTemplate = *req.IsTemplate
	}
	days := req.Days
	if days == nil {
		days = []models.PlanDay{}
	}

	plan := &models.WorkoutPlan{
		CreatedBy:     adminID,
		AssignedTo:    req.AssignedTo,
		Name:          strings.TrimSpace(req.Name),
		Description:   req.Description,
		DurationWeeks: durationWeeks,
		Days:          days,
		IsTemplate:    isTemplate,
		IsActive:      true,
	}
	if err := h.planRepo.Create(c.Context(), plan); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create workout plan"})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"workout_plan": plan})
}

func (h *PlanHandler) ListPlans(c *fiber.Ctx) error {
	plans, err := h.planRepo.List(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to list workout plans"})
	}
	return c.JSON(fiber.Map{"workout_plans": plans})
}

func (h *PlanHandler) AssignPlan(c *fiber.Ctx) error {
	planID, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || planID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid workout plan id"})
	}

	var req struct {
		UserID int64 `json:"user_id"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if req.UserID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "user_id is required"})
	}

	plan, err := h.planRepo.Assign(c.Context(), planID, req.UserID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Workout plan not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to assign workout plan"})
	}
	return c.JSON(fiber.Map{"workout_plan": plan})
}

func validatePlanRequest(req planRequest) string {
	if strings.TrimSpace(req.Name) == "" {
		return "name is required"
	}
	for _, day := range req.Days {
		if day.Day <= 0 {
			return "plan days must be numbered from 1"
		}
		if !models.IsValidWorkoutType(day.WorkoutType) {
			return "workout_type is not recognized"
		}
	}
	return ""
}
