package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/Pradeep-Goud2004/Physical-fittness-and-wellness-tracking-system/internal/models"
)

type ProgressRepository struct {
	db DBTX
}

func NewProgressRepository(db DBTX) *ProgressRepository {
	return &ProgressRepository{db: db}
}

func (r *ProgressRepository) Create(ctx context.Context, progressLog *models.ProgressLog) error {
	query := `
		INSERT INTO progress_logs (user_id, date, weight, chest, waist, hips, biceps, thighs, body_fat_percentage, muscle_mass, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id, created_at, updated_at
	`
	return r.db.QueryRow(ctx, query,
		progressLog.UserID,
		progressLog.Date,
		progressLog.Weight,
		progressLog.BodyMeasurements.Chest,
		progressLog.BodyMeasurements.Waist,
		progressLog.BodyMeasurements.Hips,
		progressLog.BodyMeasurements.Biceps,
		progressLog.BodyMeasurements.Thighs,
		progressLog.BodyFatPercentage,
		progressLog.MuscleMass,
		progressLog.Notes,
	).Scan(&progressLog.ID, &progressLog.CreatedAt, &progressLog.UpdatedAt)
}

func (r *ProgressRepository) GetByID(ctx context.Context, userID, logID int64) (*models.ProgressLog, error) {
	query := progressSelect + ` WHERE id = $1 AND user_id = $2`
	return scanProgressLog(r.db.QueryRow(ctx, query, logID, userID))
}

func (r *ProgressRepository) List(ctx context.Context, userID int64, startDate, endDate *time.Time) ([]models.ProgressLog, error) {
	query := progressSelect + ` WHERE user_id = $1`
	args := []any{userID}
	if startDate != nil {
		args = append(args, *startDate)
		query += fmt.Sprintf(" AND date >= $%d", len(args))
	}
	if endDate != nil {
		args = append(args, *endDate)
		query += fmt.Sprintf(" AND date <= $%d", len(args))
	}
	query += ` ORDER BY date ASC`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectProgressLogs(rows)
}

// ListSince returns entries ascending by date so the first and last rows are
// the window's endpoints.
func (r *ProgressRepository) ListSince(ctx context.Context, userID int64, cutoff time.Time) ([]models.ProgressLog, error) {
	query := progressSelect + ` WHERE user_id = $1 AND date >= $2 ORDER BY date ASC`
	rows, err := r.db.Query(ctx, query, userID, cutoff)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectProgressLogs(rows)
}

// WeightSeries returns dated weight readings ascending, skipping entries
// without one.
func (r *ProgressRepository) WeightSeries(ctx context.Context, userID int64) ([]models.WeightPoint, error) {
	query := `
		SELECT date, weight FROM progress_logs
		WHERE user_id = $1 AND weight IS NOT NULL
		ORDER BY date ASC
	`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	points := []models.WeightPoint{}
	for rows.Next() {
		var point models.WeightPoint
		if err := rows.Scan(&point.Date, &point.Weight); err != nil {
			return nil, err
		}
		points = append(points, point)
	}
	return points, rows.Err()
}

// MeasurementSeries returns entries carrying at least one body measurement,
// ascending by date.
func (r *ProgressRepository) MeasurementSeries(ctx context.Context, userID int64) ([]models.MeasurementPoint, error) {
	query := `
		SELECT date, chest, waist, hips, biceps, thighs FROM progress_logs
		WHERE user_id = $1
		  AND (chest IS NOT NULL OR waist IS NOT NULL OR hips IS NOT NULL OR biceps IS NOT NULL OR thighs IS NOT NULL)
		ORDER BY date ASC
	`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	points := []models.MeasurementPoint{}
	for rows.Next() {
		var point models.MeasurementPoint
		err := rows.Scan(
			&point.Date,
			&point.BodyMeasurements.Chest,
			&point.BodyMeasurements.Waist,
			&point.BodyMeasurements.Hips,
			&point.BodyMeasurements.Biceps,
			&point.BodyMeasurements.Thighs,
		)
		if err != nil {
			return nil, err
		}
		points = append(points, point)
	}
	return points, rows.Err()
}

func (r *ProgressRepository) Update(ctx context.Context, progressLog *models.ProgressLog) error {
	query := `
		UPDATE progress_logs
		SET date = $3, weight = $4, chest = $5, waist = $6, hips = $7, biceps = $8, thighs = $9,
		    body_fat_percentage = $10, muscle_mass = $11, notes = $12, updated_at = now()
		WHERE id = $1 AND user_id = $2
		RETURNING created_at, updated_at
	`
	return r.db.QueryRow(ctx, query,
		progressLog.ID,
		progressLog.UserID,
		progressLog.Date,
		progressLog.Weight,
		progressLog.BodyMeasurements.Chest,
		progressLog.BodyMeasurements.Waist,
		progressLog.BodyMeasurements.Hips,
		progressLog.BodyMeasurements.Biceps,
		progressLog.BodyMeasurements.Thighs,
		progressLog.BodyFatPercentage,
		progressLog.MuscleMass,
		progressLog.Notes,
	).Scan(&progressLog.CreatedAt, &progressLog.UpdatedAt)
}

func (r *ProgressRepository) Delete(ctx context.Context, userID, logID int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM progress_logs WHERE id = $1 AND user_id = $2`, logID, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

const progressSelect = `
	SELECT id, user_id, date, weight, chest, waist, hips, biceps, thighs, body_fat_percentage, muscle_mass, notes, created_at, updated_at
	FROM progress_logs
`

func collectProgressLogs(rows pgx.Rows) ([]models.ProgressLog, error) {
	logs := []models.ProgressLog{}
	for rows.Next() {
		progressLog, err := scanProgressLog(rows)
		if err != nil {
			return nil, err
		}
		logs = append(logs, *progressLog)
	}
	return logs, rows.Err()
}

func scanProgressLog(row pgx.Row) (*models.ProgressLog, error) {
	var progressLog models.ProgressLog
	err := row.Scan(
		&progressLog.ID,
		&progressLog.UserID,
		&progressLog.Date,
		&progressLog.Weight,
		&progressLog.BodyMeasurements.Chest,
		&progressLog.BodyMeasurements.Waist,
		&progressLog.BodyMeasurements.Hips,
		&progressLog.BodyMeasurements.Biceps,
		&progressLog.BodyMeasurements.Thighs,
		&progressLog.BodyFatPercentage,
		&progressLog.MuscleMass,
		&progressLog.Notes,
		&progressLog.CreatedAt,
		&progressLog.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &progressLog, nil
}
