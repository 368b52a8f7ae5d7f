package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/Pradeep-Goud2004/Physical-fittness-and-wellness-tracking-system/internal/models"
)

type FeedbackRepository struct {
	db DBTX
}

func NewFeedbackRepository(db DBTX) *FeedbackRepository {
	return &FeedbackRepository{db: db}
}

func (r *FeedbackRepository) Create(ctx context.Context, feedback *models.Feedback) error {
	query := `
		INSERT INTO feedback (user_id, type, subject, message, rating, status)
		VALUES ($1, $2, $3, $4, $5, 'pending')
		RETURNING id, status, created_at, updated_at
	`
	return r.db.QueryRow(ctx, query,
		feedback.UserID,
		feedback.Type,
		feedback.Subject,
		feedback.Message,
		feedback.Rating,
	).Scan(&feedback.ID, &feedback.Status, &feedback.CreatedAt, &feedback.UpdatedAt)
}

func (r *FeedbackRepository) GetByID(ctx context.Context, feedbackID int64) (*models.Feedback, error) {
	query := feedbackSelect + ` WHERE id = $1`
	return scanFeedback(r.db.QueryRow(ctx, query, feedbackID))
}

func (r *FeedbackRepository) ListByUser(ctx context.Context, userID int64) ([]models.Feedback, error) {
	query := feedbackSelect + ` WHERE user_id = $1 ORDER BY created_at DESC`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectFeedback(rows)
}

func (r *FeedbackRepository) ListAll(ctx context.Context, status string) ([]models.Feedback, error) {
	query := feedbackSelect
	args := []any{}
	if status != "" {
		args = append(args, status)
		query += fmt.Sprintf(" WHERE status = $%d", len(args))
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectFeedback(rows)
}

func (r *FeedbackRepository) Respond(ctx context.Context, feedbackID, adminID int64, response string) (*models.Feedback, error) {
	query := `
		UPDATE feedback
		SET admin_id = $2,
		    response = $3,
		    responded_at = now(),
		    status = 'responded',
		    updated_at = now()
		WHERE id = $1
		RETURNING ` + feedbackColumns
	return scanFeedback(r.db.QueryRow(ctx, query, feedbackID, adminID, response))
}

const feedbackColumns = `id, user_id, admin_id, type, subject, message, rating, response, responded_at, status, created_at, updated_at`

const feedbackSelect = `SELECT ` + feedbackColumns + ` FROM feedback`

func collectFeedback(rows pgx.Rows) ([]models.Feedback, error) {
	items := []models.Feedback{}
	for rows.Next() {
		feedback, err := scanFeedback(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *feedback)
	}
	return items, rows.Err()
}

func scanFeedback(row pgx.Row) (*models.Feedback, error) {
	var feedback models.Feedback
	err := row.Scan(
		&feedback.ID,
		&feedback.UserID,
		&feedback.AdminID,
		&feedback.Type,
		&feedback.Subject,
		&feedback.Message,
		&feedback.Rating,
		&feedback.Response,
		&feedback.RespondedAt,
		&feedback.Status,
		&feedback.CreatedAt,
		&feedback.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &feedback, nil
}
