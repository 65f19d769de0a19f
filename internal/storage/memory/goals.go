package memory

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/BojanNestorovic/WalletApp/internal/core"
	"github.com/BojanNestorovic/WalletApp/internal/storage/goal"
)

type goalTable struct {
	store *Store
	draft *state
}

var _ goal.Writer = (*goalTable)(nil)

func (t *goalTable) FindByID(ctx context.Context, id uuid.UUID) (*goal.Goal, error) {
	var found *goal.Goal
	viewState(t.store, t.draft, func(s *state) {
		if row, ok := s.goals[id]; ok {
			found = &row
		}
	})
	if found == nil {
		return nil, fmt.Errorf("savings goal %v: %w", id, core.ErrNotFound)
	}
	return found, nil
}

func (t *goalTable) ListByUser(ctx context.Context, userID uuid.UUID) ([]*goal.Goal, error) {
	return t.listWhere(func(g goal.Goal) bool { return g.UserID == userID }), nil
}

func (t *goalTable) ListByUserCompleted(ctx context.Context, userID uuid.UUID, completed bool) ([]*goal.Goal, error) {
	return t.listWhere(func(g goal.Goal) bool { return g.UserID == userID && g.Completed == completed }), nil
}

func (t *goalTable) ListByWallet(ctx context.Context, walletID uuid.UUID) ([]*goal.Goal, error) {
	return t.listWhere(func(g goal.Goal) bool { return g.WalletID == walletID }), nil
}

func (t *goalTable) Insert(ctx context.Context, create *goal.GoalCreate) (uuid.UUID, error) {
	id := uuid.Must(uuid.NewV4())
	t.draft.goals[id] = goal.Goal{
		ID:            id,
		Name:          create.Name,
		TargetAmount:  create.TargetAmount,
		CurrentAmount: create.CurrentAmount,
		TargetDate:    create.TargetDate,
		WalletID:      create.WalletID,
		UserID:        create.UserID,
		Completed:     create.Completed,
		CreatedAt:     time.Now(),
	}
	return id, nil
}

func (t *goalTable) Update(ctx context.Context, id uuid.UUID, update *goal.GoalUpdate) error {
	row, ok := t.draft.goals[id]
	if !ok {
		return fmt.Errorf("savings goal %v: %w", id, core.ErrNotFound)
	}
	row.Name = update.Name
	row.TargetAmount = update.TargetAmount
	row.TargetDate = update.TargetDate
	t.draft.goals[id] = row
	return nil
}

func (t *goalTable) SetProgress(ctx context.Context, id uuid.UUID, current decimal.Decimal, completed bool) error {
	row, ok := t.draft.goals[id]
	if !ok {
		return fmt.Errorf("savings goal %v: %w", id, core.ErrNotFound)
	}
	row.CurrentAmount = current
	row.Completed = completed
	t.draft.goals[id] = row
	return nil
}

func (t *goalTable) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := t.draft.goals[id]; !ok {
		return fmt.Errorf("savings goal %v: %w", id, core.ErrNotFound)
	}
	delete(t.draft.goals, id)
	return nil
}

func (t *goalTable) listWhere(keep func(goal.Goal) bool) []*goal.Goal {
	var result []*goal.Goal
	viewState(t.store, t.draft, func(s *state) {
		for _, g := range s.goals {
			if keep(g) {
				row := g
				result = append(result, &row)
			}
		}
	})
	sort.Slice(result, func(i, j int) bool {
		if !result[i].TargetDate.Equal(result[j].TargetDate) {
			return result[i].TargetDate.Before(result[j].TargetDate)
		}
		return result[i].ID.String() < result[j].ID.String()
	})
	return result
}
