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

// CreateGoal creates a savings goal against a savings wallet the caller owns.
// The current amount is seeded from the wallet balance at creation, so a
// goal that is already met starts out completed.
type CreateGoal struct {
	UserID       uuid.UUID
	WalletID     uuid.UUID
	Name         string
	TargetAmount decimal.Decimal
	TargetDate   time.Time

	GoalID uuid.UUID

	IAction
}

func (a *CreateGoal) WalletIDs() []uuid.UUID {
	return []uuid.UUID{a.WalletID}
}

func (a *CreateGoal) Perform(ctx context.Context, writer storage.TxWriter) error {
	if !a.TargetAmount.IsPositive() {
		return fmt.Errorf("target amount %v: %w", a.TargetAmount, core.ErrInvalidAmount)
	}

	w, err := findOwnedWallet(ctx, writer.Wallets(), a.WalletID, a.UserID)
	if err != nil {
		return err
	}
	if !w.Savings {
		return fmt.Errorf("wallet %v: %w", a.WalletID, core.ErrNotSavingsWallet)
	}

	target := core.RoundMoney(a.TargetAmount)
	id, err := writer.Goals().Insert(ctx, &goal.GoalCreate{
		Name:          a.Name,
		TargetAmount:  target,
		CurrentAmount: w.CurrentBalance,
		TargetDate:    a.TargetDate,
		WalletID:      a.WalletID,
		UserID:        a.UserID,
		Completed:     w.CurrentBalance.GreaterThanOrEqual(target),
	})
	if err != nil {
		return err
	}

	a.GoalID = id
	return nil
}
