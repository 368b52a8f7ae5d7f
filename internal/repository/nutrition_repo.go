package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/Pradeep-Goud2004/Physical-fittness-and-wellness-tracking-system/internal/models"
)

type NutritionRepository struct {
	db DBTX
}

func NewNutritionRepository(db DBTX) *NutritionRepository {
	return &NutritionRepository{db: db}
}

func (r *NutritionRepository) Create(ctx context.Context, nutritionLog *models.NutritionLog) error {
	meals, err := json.Marshal(nutritionLog.Meals)
	if err != nil {
		return err
	}
	query := `
		INSERT INTO nutrition_logs (user_id, date, meals, total_calories, total_protein, total_carbs, total_fats)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at
	`
	return r.db.QueryRow(ctx, query,
		nutritionLog.UserID,
		nutritionLog.Date,
		meals,
		nutritionLog.TotalCalories,
		nutritionLog.TotalProtein,
		nutritionLog.TotalCarbs,
		nutritionLog.TotalFats,
	).Scan(&nutritionLog.ID, &nutritionLog.CreatedAt, &nutritionLog.UpdatedAt)
}

func (r *NutritionRepository) GetByID(ctx context.Context, userID, logID int64) (*models.NutritionLog, error) {
	query := nutritionSelect + ` WHERE id = $1 AND user_id = $2`
	return scanNutritionLog(r.db.QueryRow(ctx, query, logID, userID))
}

// GetByDay fetches the entry for the calendar day containing the given
// instant, if one exists.
func (r *NutritionRepository) GetByDay(ctx context.Context, userID int64, day time.Time) (*models.NutritionLog, error) {
	query := nutritionSelect + ` WHERE user_id = $1 AND date::date = $2::date`
	return scanNutritionLog(r.db.QueryRow(ctx, query, userID, day))
}

func (r *NutritionRepository) List(ctx context.Context, userID int64, startDate, endDate *time.Time) ([]models.NutritionLog, error) {
	query := nutritionSelect + ` WHERE user_id = $1`
	args := []any{userID}
	if startDate != nil {
		args = append(args, *startDate)
		query += fmt.Sprintf(" AND date >= $%d", len(args))
	}
	if endDate != nil {
		args = append(args, *endDate)
		query += fmt.Sprintf(" AND date <= $%d", len(args))
	}
	query += ` ORDER BY date DESC`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectNutritionLogs(rows)
}

func (r *NutritionRepository) ListSince(ctx context.Context, userID int64, cutoff time.Time) ([]models.NutritionLog, error) {
	query := nutritionSelect + ` WHERE user_id = $1 AND date >= $2 ORDER BY date ASC`
	rows, err := r.db.Query(ctx, query, userID, cutoff)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectNutritionLogs(rows)
}

func (r *NutritionRepository) Update(ctx context.Context, nutritionLog *models.NutritionLog) error {
	meals, err := json.Marshal(nutritionLog.Meals)
	if err != nil {
		return err
	}
	query := `
		UPDATE nutrition_logs
		SET date = $3,
		    meals = $4,
		    total_calories = $5,
		    total_protein = $6,
		    total_carbs = $7,
		    total_fats = $8,
		    updated_at = now()
		WHERE id = $1 AND user_id = $2
		RETURNING updated_at
	`
	return r.db.QueryRow(ctx, query,
		nutritionLog.ID,
		nutritionLog.UserID,
		nutritionLog.Date,
		meals,
		nutritionLog.TotalCalories,
		nutritionLog.TotalProtein,
		nutritionLog.TotalCarbs,
		nutritionLog.TotalFats,
	).Scan(&nutritionLog.UpdatedAt)
}

func (r *NutritionRepository) Delete(ctx context.Context, userID, logID int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM nutrition_logs WHERE id = $1 AND user_id = $2`, logID, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

const nutritionSelect = `
	SELECT id, user_id, date, meals, total_calories, total_protein, total_carbs, total_fats, created_at, updated_at
	FROM nutrition_logs
`

func collectNutritionLogs(rows pgx.Rows) ([]models.NutritionLog, error) {
	logs := []models.NutritionLog{}
	for rows.Next() {
		nutritionLog, err := scanNutritionLog(rows)
		if err != nil {
			return nil, err
		}
		logs = append(logs, *nutritionLog)
	}
	return logs, rows.Err()
}

func scanNutritionLog(row pgx.Row) (*models.NutritionLog, error) {
	var nutritionLog models.NutritionLog
	var meals []byte
	err := row.Scan(
		&nutritionLog.ID,
		&nutritionLog.UserID,
		&nutritionLog.Date,
		&meals,
		&nutritionLog.TotalCalories,
		&nutritionLog.TotalProtein,
		&nutritionLog.TotalCarbs,
		&nutritionLog.TotalFats,
		&nutritionLog.CreatedAt,
		&nutritionLog.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	nutritionLog.Meals = []models.Meal{}
	if len(meals) > 0 {
		if err := json.Unmarshal(meals, &nutritionLog.Meals); err != nil {
			return nil, err
		}
	}
	return &nutritionLog, nil
}
