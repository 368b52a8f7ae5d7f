package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/Pradeep-Goud2004/Physical-fittness-and-wellness-tracking-system/internal/models"
)

type DBTX interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type UserRepository struct {
	db DBTX
}

func NewUserRepository(db DBTX) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) CreateUser(ctx context.Context, user *models.User) error {
	query := `
		INSERT INTO users (name, email, password_hash, role)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at
	`
	return r.db.QueryRow(ctx, query, user.Name, user.Email, user.PasswordHash, user.Role).
		Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return scanUser(r.db.QueryRow(ctx, userSelect+` WHERE email = $1`, email))
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	return scanUser(r.db.QueryRow(ctx, userSelect+` WHERE id = $1`, id))
}

func (r *UserRepository) UpdateProfile(ctx context.Context, userID int64, profile models.Profile) (*models.User, error) {
	query := `
		UPDATE users
		SET height_cm = $2,
		    weight_kg = $3,
		    age = $4,
		    activity_level = $5,
		    diet_preference = $6,
		    fitness_goals = $7,
		    updated_at = now()
		WHERE id = $1
		RETURNING ` + userColumns
	return scanUser(r.db.QueryRow(ctx, query,
		userID,
		profile.HeightCM,
		profile.WeightKG,
		profile.Age,
		profile.ActivityLevel,
		profile.DietPreference,
		profile.FitnessGoals,
	))
}

func (r *UserRepository) ListByRole(ctx context.Context, role string) ([]models.User, error) {
	query := userSelect + ` WHERE role = $1 ORDER BY created_at DESC`
	rows, err := r.db.Query(ctx, query, role)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectUsers(rows)
}

func (r *UserRepository) CountByRole(ctx context.Context, role string) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM users WHERE role = $1`, role).
		Scan(&count)
	return count, err
}

// ListInactiveSince returns role=user accounts with no workout logged on or
// after the cutoff.
func (r *UserRepository) ListInactiveSince(ctx context.Context, cutoff time.Time) ([]models.User, error) {
	query := userSelect + `
		WHERE role = 'user'
		  AND id NOT IN (SELECT DISTINCT user_id FROM workouts WHERE date >= $1)
		ORDER BY created_at DESC`
	rows, err := r.db.Query(ctx, query, cutoff)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectUsers(rows)
}

const userColumns = `id, name, email, password_hash, role,
		height_cm, weight_kg, age, activity_level, diet_preference, fitness_goals,
		created_at, updated_at`

const userSelect = `SELECT ` + userColumns + ` FROM users`

func collectUsers(rows pgx.Rows) ([]models.User, error) {
	users := []models.User{}
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, *user)
	}
	return users, rows.Err()
}

func scanUser(row pgx.Row) (*models.User, error) {
	var user models.User
	err := row.Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.PasswordHash,
		&user.Role,
		&user.Profile.HeightCM,
		&user.Profile.WeightKG,
		&user.Profile.Age,
		&user.Profile.ActivityLevel,
		&user.Profile.DietPreference,
		&user.Profile.FitnessGoals,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if user.Profile.FitnessGoals == nil {
		user.Profile.FitnessGoals = []string{}
	}
	return &user, nil
}
