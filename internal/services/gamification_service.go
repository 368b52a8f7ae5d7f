package services

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/Pradeep-Goud2004/Physical-fittness-and-wellness-tracking-system/internal/models"
)

const (
	caloriesPerXP    = 10
	xpPerLevel       = 1000
	leaderboardLimit = 100
)

type gamificationStore interface {
	GetByUserID(ctx context.Context, userID int64) (*models.GamificationState, error)
	Save(ctx context.Context, state *models.GamificationState) error
	Leaderboard(ctx context.Context, sortField string, limit int) ([]models.LeaderboardEntry, error)
}

// EventNotifier receives gamification milestones for push delivery. A nil
// notifier disables pushes.
type EventNotifier interface {
	NotifyLevelUp(userID int64, level int)
	NotifyBadgeEarned(userID int64, badge models.Badge)
}

type GamificationService struct {
	repo     gamificationStore
	notifier EventNotifier
}

func NewGamificationService(repo gamificationStore, notifier EventNotifier) *GamificationService {
	return &GamificationService{repo: repo, notifier: notifier}
}

// State returns the user's record, creating it with defaults on first read.
func (s *GamificationService) State(ctx context.Context, userID int64) (*models.GamificationState, error) {
	state, err := s.repo.GetByUserID(ctx, userID)
	if err == nil {
		return state, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}

	state = models.NewGamificationState(userID)
	if err := s.repo.Save(ctx, state); err != nil {
		return nil, err
	}
	return state, nil
}

// ApplyWorkout advances the state machine for one logged workout. The streak
// increments on every workout regardless of the gap since the previous one;
// this matches the shipped behavior and is a documented limitation, so the
// observable numbers must not change. The read-modify-write is a single
// upsert with last-writer-wins semantics.
func (s *GamificationService) ApplyWorkout(ctx context.Context, userID int64, caloriesBurned float64) (*models.GamificationState, error) {
	state, err := s.loadOrDefault(ctx, userID)
	if err != nil {
		return nil, err
	}

	previousLevel := state.Level

	state.TotalWorkouts++
	state.TotalCaloriesBurned += caloriesBurned
	state.ExperiencePoints += int(caloriesBurned) / caloriesPerXP

	state.CurrentStreak++
	if state.CurrentStreak > state.LongestStreak {
		state.LongestStreak = state.CurrentStreak
	}

	// The level only ever rises.
	if newLevel := state.ExperiencePoints/xpPerLevel + 1; newLevel > state.Level {
		state.Level = newLevel
	}

	if err := s.repo.Save(ctx, state); err != nil {
		return nil, err
	}

	if s.notifier != nil && state.Level > previousLevel {
		s.notifier.NotifyLevelUp(userID, state.Level)
	}
	return state, nil
}

// AwardBadge appends a badge unless one with the same name already exists.
// Re-awarding is a no-op, so the call is idempotent.
func (s *GamificationService) AwardBadge(ctx context.Context, userID int64, badgeName, description string) (*models.GamificationState, error) {
	state, err := s.loadOrDefault(ctx, userID)
	if err != nil {
		return nil, err
	}

	for _, badge := range state.Badges {
		if badge.BadgeName == badgeName {
			return state, nil
		}
	}

	badge := models.Badge{
		BadgeName:   badgeName,
		EarnedDate:  time.Now().UTC(),
		Description: description,
	}
	state.Badges = append(state.Badges, badge)
	if err := s.repo.Save(ctx, state); err != nil {
		return nil, err
	}

	if s.notifier != nil {
		s.notifier.NotifyBadgeEarned(userID, badge)
	}
	return state, nil
}

func (s *GamificationService) Leaderboard(ctx context.Context, sortField string) ([]models.LeaderboardEntry, error) {
	if sortField == "" {
		sortField = "experiencePoints"
	}
	return s.repo.Leaderboard(ctx, sortField, leaderboardLimit)
}

func (s *GamificationService) loadOrDefault(ctx context.Context, userID int64) (*models.GamificationState, error) {
	state, err := s.repo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.NewGamificationState(userID), nil
		}
		return nil, err
	}
	return state, nil
}
