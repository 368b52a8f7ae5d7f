package handlers

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"

	"github.com/Pradeep-Goud2004/Physical-fittness-and-wellness-tracking-system/internal/models"
	"github.com/Pradeep-Goud2004/Physical-fittness-and-wellness-tracking-system/internal/repository"
)

var allowedActivityLevels = map[string]struct{}{
	"sedentary":   {},
	"light":       {},
	"moderate":    {},
	"active":      {},
	"very_active": {},
}

var allowedFitnessGoals = map[string]struct{}{
	"weight_loss":       {},
	"muscle_gain":       {},
	"endurance":         {},
	"flexibility":       {},
	"general_fitness":   {},
	"strength_training": {},
}

type ProfileHandler struct {
	userRepo *repository.UserRepository
}

func NewProfileHandler(userRepo *repository.UserRepository) *ProfileHandler {
	return &ProfileHandler{userRepo: userRepo}
}

type updateProfileRequest struct {
	HeightCM       *float64  `json:"height_cm"`
	WeightKG       *float64  `json:"weight_kg"`
	Age            *int      `json:"age"`
	ActivityLevel  *string   `json:"activity_level"`
	DietPreference *string   `json:"diet_preference"`
	FitnessGoals   *[]string `json:"fitness_goals"`
}

func (h *ProfileHandler) GetProfile(c *fiber.Ctx) error {
	userID, err := requestUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	user, err := h.userRepo.GetByID(c.Context(), userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load profile"})
	}

	return c.JSON(fiber.Map{"user": user})
}

func (h *ProfileHandler) UpdateProfile(c *fiber.Ctx) error {
	userID, err := requestUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	var req updateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if validationErr := validateProfileUpdateRequest(req); validationErr != "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": validationErr})
	}

	user, err := h.userRepo.GetByID(c.Context(), userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load profile"})
	}

	profile := mergeProfile(user.Profile, req)
	updated, err := h.userRepo.UpdateProfile(c.Context(), userID, profile)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update profile"})
	}

	return c.JSON(fiber.Map{"user": updated})
}

// mergeProfile applies only the fields present in the request; omitted
// fields keep their stored values.
func mergeProfile(current models.Profile, req updateProfileRequest) models.Profile {
	if req.HeightCM != nil {
		current.HeightCM = req.HeightCM
	}
	if req.WeightKG != nil {
		current.WeightKG = req.WeightKG
	}
	if req.Age != nil {
		current.Age = req.Age
	}
	if req.ActivityLevel != nil {
		current.ActivityLevel = req.ActivityLevel
	}
	if req.DietPreference != nil {
		current.DietPreference = req.DietPreference
	}
	if req.FitnessGoals != nil {
		current.FitnessGoals = *req.FitnessGoals
	}
	return current
}

func validateProfileUpdateRequest(req updateProfileRequest) string {
	if req.HeightCM != nil && *req.HeightCM <= 0 {
		return "height_cm must be greater than 0"
	}
	if req.WeightKG != nil && *req.WeightKG <= 0 {
		return "weight_kg must be greater than 0"
	}
	if req.Age != nil && *req.Age <= 0 {
		return "age must be greater than 0"
	}
	if req.ActivityLevel != nil {
		if _, ok := allowedActivityLevels[strings.ToLower(strings.TrimSpace(*req.ActivityLevel))]; !ok {
			return "activity_level is not recognized"
		}
	}
	if req.FitnessGoals != nil {
		for _, goal := range *req.FitnessGoals {
			if _, ok := allowedFitnessGoals[strings.ToLower(strings.TrimSpace(goal))]; !ok {
				return "fitness_goals contains an unrecognized goal"
			}
		}
	}
	return ""
}
