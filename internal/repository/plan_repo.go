package repository

import (
	"context"
	"encoding/json"

	"github.com/jackc/pgx/v5"

	"github.com/Pradeep-Goud2004/Physical-fittness-and-wellness-tracking-system/internal/models"
)

type PlanRepository struct {
	db DBTX
}

func NewPlanRepository(db DBTX) *PlanRepository {
	return &PlanRepository{db: db}
}

func (r *PlanRepository) Create(ctx context.Context, plan *models.WorkoutPlan) error {
	days, err := json.Marshal(plan.Days)
	if err != nil {
		return err
	}
	query := `
		INSERT INTO workout_plans (created_by, assigned_to, name, description, duration_weeks, days, is_template, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at, updated_at
	`
	return r.db.QueryRow(ctx, query,
		plan.CreatedBy,
		plan.AssignedTo,
		plan.Name,
		plan.Description,
		plan.DurationWeeks,
		days,
		plan.IsTemplate,
		plan.IsActive,
	).Scan(&plan.ID, &plan.CreatedAt, &plan.UpdatedAt)
}

func (r *PlanRepository) List(ctx context.Context) ([]models.WorkoutPlan, error) {
	query := planSelect + ` ORDER BY created_at DESC`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	plans := []models.WorkoutPlan{}
	for rows.Next() {
		plan, err := scanWorkoutPlan(rows)
		if err != nil {
			return nil, err
		}
		plans = append(plans, *plan)
	}
	return plans, rows.Err()
}

// Assign hands the plan to a user and reactivates it. Assigning reuses the
// row rather than cloning it, so a template assigned twice moves.
func (r *PlanRepository) Assign(ctx context.Context, planID, userID int64) (*models.WorkoutPlan, error) {
	query := `
		UPDATE workout_plans
		SET assigned_to = $2, is_active = true, updated_at = now()
		WHERE id = $1
		RETURNING id, created_by, assigned_to, name, description, duration_weeks, days, is_template, is_active, created_at, updated_at
	`
	return scanWorkoutPlan(r.db.QueryRow(ctx, query, planID, userID))
}

const planSelect = `
	SELECT id, created_by, assigned_to, name, description, duration_weeks, days, is_template, is_active, created_at, updated_at
	FROM workout_plans
`

func scanWorkoutPlan(row pgx.Row) (*models.WorkoutPlan, error) {
	var plan models.WorkoutPlan
	var days []byte
	err := row.Scan(
		&plan.ID,
		&plan.CreatedBy,
		&plan.AssignedTo,
		&plan.Name,
		&plan.Description,
		&plan.DurationWeeks,
		&days,
		&plan.IsTemplate,
		&plan.IsActive,
		&plan.CreatedAt,
		&plan.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	plan.Days = []models.PlanDay{}
	if len(days) > 0 {
		if err := json.Unmarshal(days, &plan.Days); err != nil {
			return nil, err
		}
	}
	return &plan, nil
}
