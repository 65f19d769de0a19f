package service

import (
	"context"
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/BojanNestorovic/WalletApp/internal/core"
	"github.com/BojanNestorovic/WalletApp/internal/storage"
)

// GoalService handles savings goal read paths.
type GoalService struct {
	storage storage.ReadStore
}

// NewGoalService creates a new GoalService.
func NewGoalService(store storage.ReadStore) *GoalService {
	return &GoalService{storage: store}
}

// GetGoal retrieves a goal by ID, scoped to the user.
func (s *GoalService) GetGoal(ctx context.Context, userID, id uuid.UUID) (*Goal, error) {
	row, err := s.storage.Goals().FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if row.UserID != userID {
		return nil, fmt.Errorf("goal %v: %w", id, core.ErrNotFound)
	}
	g := goalFromStorage(row)
	return &g, nil
}

// ListGoals returns every goal of the user, soonest target date first.
func (s *GoalService) ListGoals(ctx context.Context, userID uuid.UUID) ([]Goal, error) {
	rows, err := s.storage.Goals().ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return goalsFromStorage(rows), nil
}

// ListGoalsByCompleted returns the user's completed or active goals.
func (s *GoalService) ListGoalsByCompleted(ctx context.Context, userID uuid.UUID, completed bool) ([]Goal, error) {
	rows, err := s.storage.Goals().ListByUserCompleted(ctx, userID, completed)
	if err != nil {
		return nil, err
	}
	return goalsFromStorage(rows), nil
}

// ListOverdueGoals returns the user's goals whose target date has passed
// without completing.
func (s *GoalService) ListOverdueGoals(ctx context.Context, userID uuid.UUID, now time.Time) ([]Goal, error) {
	rows, err := s.storage.Goals().ListByUserCompleted(ctx, userID, false)
	if err != nil {
		return nil, err
	}

	var overdue []Goal
	for _, row := range rows {
		g := goalFromStorage(row)
		if g.IsOverdue(now) {
			overdue = append(overdue, g)
		}
	}
	return overdue, nil
}
