package actions

import (
	"context"
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/BojanNestorovic/WalletApp/internal/core"
	"github.com/BojanNestorovic/WalletApp/internal/storage"
	"github.com/BojanNestorovic/WalletApp/internal/storage/goal"
)

// UpdateGoal changes a goal's name, target amount and target date. Raising
// the target does not un-complete a completed goal; lowering it can complete
// one that was not.
type UpdateGoal struct {
	UserID       uuid.UUID
	GoalID       uuid.UUID
	Name         string
	TargetAmount decimal.Decimal
	TargetDate   time.Time

	IAction
}

func (a *UpdateGoal) WalletIDs() []uuid.UUID {
	return nil
}

func (a *UpdateGoal) Perform(ctx context.Context, writer storage.TxWriter) error {
	if !a.TargetAmount.IsPositive() {
		return fmt.Errorf("target amount %v: %w", a.TargetAmount, core.ErrInvalidAmount)
	}

	g, err := writer.Goals().FindByID(ctx, a.GoalID)
	if err != nil {
		return err
	}
	if g.UserID != a.UserID {
		return fmt.Errorf("goal %v: %w", a.GoalID, core.ErrUnauthorized)
	}

	target := core.RoundMoney(a.TargetAmount)
	err = writer.Goals().Update(ctx, a.GoalID, &goal.GoalUpdate{
		Name:         a.Name,
		TargetAmount: target,
		TargetDate:   a.TargetDate,
	})
	if err != nil {
		return err
	}

	if !g.Completed && g.CurrentAmount.GreaterThanOrEqual(target) {
		return writer.Goals().SetProgress(ctx, a.GoalID, g.CurrentAmount, true)
	}
	return nil
}

// DeleteGoal removes a savings goal. The wallet and its history are untouched.
type DeleteGoal struct {
	UserID uuid.UUID
	GoalID uuid.UUID

	IAction
}

func (a *DeleteGoal) WalletIDs() []uuid.UUID {
	return nil
}

func (a *DeleteGoal) Perform(ctx context.Context, writer storage.TxWriter) error {
	g, err := writer.Goals().FindByID(ctx, a.GoalID)
	if err != nil {
		return err
	}
	if g.UserID != a.UserID {
		return fmt.Errorf("goal %v: %w", a.GoalID, core.ErrUnauthorized)
	}
	return writer.Goals().Delete(ctx, a.GoalID)
}
