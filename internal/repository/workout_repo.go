package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/Pradeep-Goud2004/Physical-fittness-and-wellness-tracking-system/internal/models"
)

type WorkoutRepository struct {
	db DBTX
}

func NewWorkoutRepository(db DBTX) *WorkoutRepository {
	return &WorkoutRepository{db: db}
}

type WorkoutListFilter struct {
	StartDate   *time.Time
	EndDate     *time.Time
	WorkoutType string
	Limit       int
	Offset      int
}

func (f WorkoutListFilter) whereClause(args *[]any) string {
	clause := ""
	if f.StartDate != nil {
		*args = append(*args, *f.StartDate)
		clause += fmt.Sprintf(" AND date >= $%d", len(*args))
	}
	if f.EndDate != nil {
		*args = append(*args, *f.EndDate)
		clause += fmt.Sprintf(" AND date <= $%d", len(*args))
	}
	if f.WorkoutType != "" {
		*args = append(*args, f.WorkoutType)
		clause += fmt.Sprintf(" AND workout_type = $%d", len(*args))
	}
	return clause
}

func (r *WorkoutRepository) Create(ctx context.Context, workout *models.Workout) error {
	exercises, err := json.Marshal(workout.Exercises)
	if err != nil {
		return err
	}
	query := `
		INSERT INTO workouts (user_id, date, workout_type, exercises, total_duration, calories_burned, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at
	`
	return r.db.QueryRow(ctx, query,
		workout.UserID,
		workout.Date,
		workout.WorkoutType,
		exercises,
		workout.TotalDuration,
		workout.CaloriesBurned,
		workout.Notes,
	).Scan(&workout.ID, &workout.CreatedAt, &workout.UpdatedAt)
}

func (r *WorkoutRepository) GetByID(ctx context.Context, userID, workoutID int64) (*models.Workout, error) {
	query := workoutSelect + ` WHERE id = $1 AND user_id = $2`
	return scanWorkout(r.db.QueryRow(ctx, query, workoutID, userID))
}

func (r *WorkoutRepository) List(ctx context.Context, userID int64, filter WorkoutListFilter) ([]models.Workout, error) {
	args := []any{userID}
	query := workoutSelect + ` WHERE user_id = $1` + filter.whereClause(&args)
	query += ` ORDER BY date DESC`
	if filter.Limit > 0 {
		args = append(args, filter.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
		args = append(args, filter.Offset)
		query += fmt.Sprintf(" OFFSET $%d", len(args))
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectWorkouts(rows)
}

func (r *WorkoutRepository) Count(ctx context.Context, userID int64, filter WorkoutListFilter) (int, error) {
	args := []any{userID}
	query := `SELECT COUNT(*) FROM workouts WHERE user_id = $1` + filter.whereClause(&args)
	var count int
	err := r.db.QueryRow(ctx, query, args...).Scan(&count)
	return count, err
}

// ListSince returns the user's workouts dated on or after the cutoff,
// ascending. This is the read every aggregation window is built on.
func (r *WorkoutRepository) ListSince(ctx context.Context, userID int64, cutoff time.Time) ([]models.Workout, error) {
	query := workoutSelect + ` WHERE user_id = $1 AND date >= $2 ORDER BY date ASC`
	rows, err := r.db.Query(ctx, query, userID, cutoff)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectWorkouts(rows)
}

func (r *WorkoutRepository) ListBetween(ctx context.Context, userID int64, start, end time.Time) ([]models.Workout, error) {
	query := workoutSelect + ` WHERE user_id = $1 AND date >= $2 AND date <= $3 ORDER BY date ASC`
	rows, err := r.db.Query(ctx, query, userID, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectWorkouts(rows)
}

func (r *WorkoutRepository) GetLatest(ctx context.Context, userID int64) (*models.Workout, error) {
	query := workoutSelect + ` WHERE user_id = $1 ORDER BY date DESC LIMIT 1`
	return scanWorkout(r.db.QueryRow(ctx, query, userID))
}

func (r *WorkoutRepository) Update(ctx context.Context, workout *models.Workout) error {
	exercises, err := json.Marshal(workout.Exercises)
	if err != nil {
		return err
	}
	query := `
		UPDATE workouts
		SET date = $3,
		    workout_type = $4,
		    exercises = $5,
		    total_duration = $6,
		    calories_burned = $7,
		    notes = $8,
		    updated_at = now()
		WHERE id = $1 AND user_id = $2
		RETURNING updated_at
	`
	return r.db.QueryRow(ctx, query,
		workout.ID,
		workout.UserID,
		workout.Date,
		workout.WorkoutType,
		exercises,
		workout.TotalDuration,
		workout.CaloriesBurned,
		workout.Notes,
	).Scan(&workout.UpdatedAt)
}

func (r *WorkoutRepository) Delete(ctx context.Context, userID, workoutID int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM workouts WHERE id = $1 AND user_id = $2`, workoutID, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// Population-scope reads used by the admin aggregator.

func (r *WorkoutRepository) CountDistinctUsersSince(ctx context.Context, cutoff time.Time) (int, error) {
	var count int
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(DISTINCT user_id) FROM workouts WHERE date >= $1`, cutoff).
		Scan(&count)
	return count, err
}

func (r *WorkoutRepository) TotalsSince(ctx context.Context, cutoff time.Time) (int, float64, error) {
	var count int
	var calories float64
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*), COALESCE(SUM(calories_burned), 0) FROM workouts WHERE date >= $1`, cutoff).
		Scan(&count, &calories)
	return count, calories, err
}

const workoutSelect = `
	SELECT id, user_id, date, workout_type, exercises, total_duration, calories_burned, notes, created_at, updated_at
	FROM workouts
`

func collectWorkouts(rows pgx.Rows) ([]models.Workout, error) {
	workouts := []models.Workout{}
	for rows.Next() {
		workout, err := scanWorkout(rows)
		if err != nil {
			return nil, err
		}
		workouts = append(workouts, *workout)
	}
	return workouts, rows.Err()
}

func scanWorkout(row pgx.Row) (*models.Workout, error) {
	var workout models.Workout
	var exercises []byte
	err := row.Scan(
		&workout.ID,
		&workout.UserID,
		&workout.Date,
		&workout.WorkoutType,
		&exercises,
		&workout.TotalDuration,
		&workout.CaloriesBurned,
		&workout.Notes,
		&workout.CreatedAt,
		&workout.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	workout.Exercises = []models.Exercise{}
	if len(exercises) > 0 {
		if err := json.Unmarshal(exercises, &workout.Exercises); err != nil {
			return nil, err
		}
	}
	return &workout, nil
}
