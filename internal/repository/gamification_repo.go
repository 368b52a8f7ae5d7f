package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/Pradeep-Goud2004/Physical-fittness-and-wellness-tracking-system/internal/models"
)

type GamificationRepository struct {
	db DBTX
}

func NewGamificationRepository(db DBTX) *GamificationRepository {
	return &GamificationRepository{db: db}
}

func (r *GamificationRepository) GetByUserID(ctx context.Context, userID int64) (*models.GamificationState, error) {
	query := gamificationSelect + ` WHERE g.user_id = $1`
	return scanGamificationState(r.db.QueryRow(ctx, query, userID))
}

// Save upserts the whole per-user record as one statement. Concurrent saves
// for the same user are last-writer-wins.
func (r *GamificationRepository) Save(ctx context.Context, state *models.GamificationState) error {
	badges, err := json.Marshal(state.Badges)
	if err != nil {
		return err
	}
	achievements, err := json.Marshal(state.Achievements)
	if err != nil {
		return err
	}
	query := `
		INSERT INTO gamification_states
			(user_id, current_streak, longest_streak, total_workouts, total_calories_burned, level, experience_points, badges, achievements)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (user_id) DO UPDATE
		SET current_streak = EXCLUDED.current_streak,
		    longest_streak = EXCLUDED.longest_streak,
		    total_workouts = EXCLUDED.total_workouts,
		    total_calories_burned = EXCLUDED.total_calories_burned,
		    level = EXCLUDED.level,
		    experience_points = EXCLUDED.experience_points,
		    badges = EXCLUDED.badges,
		    achievements = EXCLUDED.achievements,
		    updated_at = now()
		RETURNING id, created_at, updated_at
	`
	return r.db.QueryRow(ctx, query,
		state.UserID,
		state.CurrentStreak,
		state.LongestStreak,
		state.TotalWorkouts,
		state.TotalCaloriesBurned,
		state.Level,
		state.ExperiencePoints,
		badges,
		achievements,
	).Scan(&state.ID, &state.CreatedAt, &state.UpdatedAt)
}

var leaderboardSortFields = map[string]string{
	"experiencePoints": "g.experience_points",
	"currentStreak":    "g.current_streak",
	"longestStreak":    "g.longest_streak",
	"totalWorkouts":    "g.total_workouts",
	"level":            "g.level",
}

func (r *GamificationRepository) Leaderboard(ctx context.Context, sortField string, limit int) ([]models.LeaderboardEntry, error) {
	column, ok := leaderboardSortFields[sortField]
	if !ok {
		column = leaderboardSortFields["experiencePoints"]
	}
	query := fmt.Sprintf(`
		SELECT g.user_id, u.name, u.email, g.current_streak, g.longest_streak,
			g.total_workouts, g.total_calories_burned, g.level, g.experience_points
		FROM gamification_states g
		JOIN users u ON u.id = g.user_id
		ORDER BY %s DESC
		LIMIT $1
	`, column)

	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := []models.LeaderboardEntry{}
	for rows.Next() {
		var entry models.LeaderboardEntry
		if err := rows.Scan(
			&entry.UserID,
			&entry.Name,
			&entry.Email,
			&entry.CurrentStreak,
			&entry.LongestStreak,
			&entry.TotalWorkouts,
			&entry.TotalCaloriesBurned,
			&entry.Level,
			&entry.ExperiencePoints,
		); err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

const gamificationSelect = `
	SELECT g.id, g.user_id, g.current_streak, g.longest_streak, g.total_workouts,
		g.total_calories_burned, g.level, g.experience_points, g.badges, g.achievements,
		g.created_at, g.updated_at
	FROM gamification_states g
`

func scanGamificationState(row pgx.Row) (*models.GamificationState, error) {
	var state models.GamificationState
	var badges, achievements []byte
	err := row.Scan(
		&state.ID,
		&state.UserID,
		&state.CurrentStreak,
		&state.LongestStreak,
		&state.TotalWorkouts,
		&state.TotalCaloriesBurned,
		&state.Level,
		&state.ExperiencePoints,
		&badges,
		&achievements,
		&state.CreatedAt,
		&state.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	state.Badges = []models.Badge{}
	if len(badges) > 0 {
		if err := json.Unmarshal(badges, &state.Badges); err != nil {
			return nil, err
		}
	}
	state.Achievements = []models.Achievement{}
	if len(achievements) > 0 {
		if err := json.Unmarshal(achievements, &state.Achievements); err != nil {
			return nil, err
		}
	}
	return &state, nil
}
