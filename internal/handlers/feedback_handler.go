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

type feedbackStore interface {
	Create(ctx context.Context, feedback *models.Feedback) error
	ListByUser(ctx context.Context, userID int64) ([]models.Feedback, error)
	ListAll(ctx context.Context, status string) ([]models.Feedback, error)
	Respond(ctx context.Context, feedbackID, adminID int64, response string) (*models.Feedback, error)
}

type FeedbackHandler struct {
	feedbackRepo feedbackStore
}

func NewFeedbackHandler(feedbackRepo feedbackStore) *FeedbackHandler {
	return &FeedbackHandler{feedbackRepo: feedbackRepo}
}

type feedbackRequest struct {
	Type    string `json:"type"`
	Subject string `json:"subject"`
	Message string `json:"message"`
	Rating  *int   `json:"rating"`
}

func (h *FeedbackHandler) SubmitFeedback(c *fiber.Ctx) error {
	userID, err := requestUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	var req feedbackRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if !models.IsValidFeedbackType(req.Type) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "type is not recognized"})
	}
	if strings.TrimSpace(req.Subject) == "" || strings.TrimSpace(req.Message) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "subject and message are required"})
	}
	if req.Rating != nil && (*req.Rating < 1 || *req.Rating > 5) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "rating must be between 1 and 5"})
	}

	feedback := &models.Feedback{
		UserID:  userID,
		Type:    req.Type,
		Subject: strings.TrimSpace(req.Subject),
		Message: strings.TrimSpace(req.Message),
		Rating:  req.Rating,
	}
	if err := h.feedbackRepo.Create(c.Context(), feedback); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to submit feedback"})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"feedback": feedback})
}

func (h *FeedbackHandler) ListMyFeedback(c *fiber.Ctx) error {
	userID, err := requestUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	items, err := h.feedbackRepo.ListByUser(c.Context(), userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to list feedback"})
	}
	return c.JSON(fiber.Map{"feedback": items})
}

func (h *FeedbackHandler) ListAllFeedback(c *fiber.Ctx) error {
	status := strings.TrimSpace(c.Query("status"))
	if status != "" && status != "pending" && status != "responded" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "status must be pending or responded"})
	}

	items, err := h.feedbackRepo.ListAll(c.Context(), status)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to list feedback"})
	}
	return c.JSON(fiber.Map{"feedback": items})
}

type feedbackResponseRequest struct {
	Response string `json:"response"`
}

func (h *FeedbackHandler) RespondToFeedback(c *fiber.Ctx) error {
	adminID, err := requestUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}
	feedbackID, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || feedbackID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid feedback id"})
	}

	var req feedbackResponseRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if strings.TrimSpace(req.Response) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "response is required"})
	}

	feedback, err := h.feedbackRepo.Respond(c.Context(), feedbackID, adminID, strings.TrimSpace(req.Response))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Feedback not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to respond to feedback"})
	}
	return c.JSON(fiber.Map{"feedback": feedback})
}
