package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/Pradeep-Goud2004/Physical-fittness-and-wellness-tracking-system/internal/models"
)

type WellnessRepository struct {
	db DBTX
}

func NewWellnessRepository(db DBTX) *WellnessRepository {
	return &WellnessRepository{db: db}
}

// Upsert writes the check-in for the entry's calendar day, replacing any
// existing row for that day. One row per user per day is a schema-level
// constraint.
func (r *WellnessRepository) Upsert(ctx context.Context, wellnessLog *models.WellnessLog) error {
	query := `
		INSERT INTO wellness_logs (user_id, date, day, sleep_hours, water_intake, stress_level, is_rest_day, mood, notes)
		VALUES ($1, $2, $2::date, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (user_id, day) DO UPDATE
		SET date = EXCLUDED.date,
		    sleep_hours = EXCLUDED.sleep_hours,
		    water_intake = EXCLUDED.water_intake,
		    stress_level = EXCLUDED.stress_level,
		    is_rest_day = EXCLUDED.is_rest_day,
		    mood = EXCLUDED.mood,
		    notes = EXCLUDED.notes,
		    updated_at = now()
		RETURNING id, created_at, updated_at
	`
	return r.db.QueryRow(ctx, query,
		wellnessLog.UserID,
		wellnessLog.Date,
		wellnessLog.SleepHours,
		wellnessLog.WaterIntake,
		wellnessLog.StressLevel,
		wellnessLog.IsRestDay,
		wellnessLog.Mood,
		wellnessLog.Notes,
	).Scan(&wellnessLog.ID, &wellnessLog.CreatedAt, &wellnessLog.UpdatedAt)
}

func (r *WellnessRepository) GetByID(ctx context.Context, userID, logID int64) (*models.WellnessLog, error) {
	query := wellnessSelect + ` WHERE id = $1 AND user_id = $2`
	return scanWellnessLog(r.db.QueryRow(ctx, query, logID, userID))
}

func (r *WellnessRepository) GetByDay(ctx context.Context, userID int64, day time.Time) (*models.WellnessLog, error) {
	query := wellnessSelect + ` WHERE user_id = $1 AND day = $2::date`
	return scanWellnessLog(r.db.QueryRow(ctx, query, userID, day))
}

func (r *WellnessRepository) List(ctx context.Context, userID int64, startDate, endDate *time.Time) ([]models.WellnessLog, error) {
	query := wellnessSelect + ` WHERE user_id = $1`
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
	return collectWellnessLogs(rows)
}

func (r *WellnessRepository) ListSince(ctx context.Context, userID int64, cutoff time.Time) ([]models.WellnessLog, error) {
	query := wellnessSelect + ` WHERE user_id = $1 AND date >= $2 ORDER BY date ASC`
	rows, err := r.db.Query(ctx, query, userID, cutoff)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectWellnessLogs(rows)
}

// Update rewrites the metrics of an existing check-in. The entry keeps its
// calendar day; use Upsert to record a check-in for another day.
func (r *WellnessRepository) Update(ctx context.Context, wellnessLog *models.WellnessLog) error {
	query := `
		UPDATE wellness_logs
		SET sleep_hours = $3, water_intake = $4, stress_level = $5, is_rest_day = $6, mood = $7, notes = $8, updated_at = now()
		WHERE id = $1 AND user_id = $2
		RETURNING date, created_at, updated_at
	`
	return r.db.QueryRow(ctx, query,
		wellnessLog.ID,
		wellnessLog.UserID,
		wellnessLog.SleepHours,
		wellnessLog.WaterIntake,
		wellnessLog.StressLevel,
		wellnessLog.IsRestDay,
		wellnessLog.Mood,
		wellnessLog.Notes,
	).Scan(&wellnessLog.Date, &wellnessLog.CreatedAt, &wellnessLog.UpdatedAt)
}

func (r *WellnessRepository) Delete(ctx context.Context, userID, logID int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM wellness_logs WHERE id = $1 AND user_id = $2`, logID, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

const wellnessSelect = `
	SELECT id, user_id, date, sleep_hours, water_intake, stress_level, is_rest_day, mood, notes, created_at, updated_at
	FROM wellness_logs
`

func collectWellnessLogs(rows pgx.Rows) ([]models.WellnessLog, error) {
	logs := []models.WellnessLog{}
	for rows.Next() {
		wellnessLog, err := scanWellnessLog(rows)
		if err != nil {
			return nil, err
		}
		logs = append(logs, *wellnessLog)
	}
	return logs, rows.Err()
}

func scanWellnessLog(row pgx.Row) (*models.WellnessLog, error) {
	var wellnessLog models.WellnessLog
	err := row.Scan(
		&wellnessLog.ID,
		&wellnessLog.UserID,
		&wellnessLog.Date,
		&wellnessLog.SleepHours,
		&wellnessLog.WaterIntake,
		&wellnessLog.StressLevel,
		&wellnessLog.IsRestDay,
		&wellnessLog.Mood,
		&wellnessLog.Notes,
		&wellnessLog.CreatedAt,
		&wellnessLog.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &wellnessLog, nil
}
