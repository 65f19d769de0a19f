package actions

import (
	"context"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/BojanNestorovic/WalletApp/internal/storage"
)

// syncWalletGoals snapshots the wallet balance into every goal linked to the
// wallet. Completed latches: once a goal reached its target it stays
// completed even if the balance later drops below it.
func syncWalletGoals(ctx context.Context, writer storage.TxWriter, walletID uuid.UUID, balance decimal.Decimal) error {
	goals, err := writer.Goals().ListByWallet(ctx, walletID)
	if err != nil {
		return err
	}
	for _, g := range goals {
		completed := g.Completed || balance.GreaterThanOrEqual(g.TargetAmount)
		if err = writer.Goals().SetProgress(ctx, g.ID, balance, completed); err != nil {
			return err
		}
	}
	return nil
}

// SyncGoal re-snapshots a single goal from its wallet's current balance.
// Normally goals are synced as part of the action that moved the balance;
// this exists for explicit refreshes.
type SyncGoal struct {
	UserID uuid.UUID
	GoalID uuid.UUID

	IAction
}

// WalletIDs is empty: the goal's wallet is not known until Perform loads the
// goal, and a sync only reads the balance the enclosing unit sees.
func (a *SyncGoal) WalletIDs() []uuid.UUID {
	return nil
}

func (a *SyncGoal) Perform(ctx context.Context, writer storage.TxWriter) error {
	g, err := writer.Goals().FindByID(ctx, a.GoalID)
	if err != nil {
		return err
	}
	w, err := findOwnedWallet(ctx, writer.Wallets(), g.WalletID, a.UserID)
	if err != nil {
		return err
	}

	completed := g.Completed || w.CurrentBalance.GreaterThanOrEqual(g.TargetAmount)
	return writer.Goals().SetProgress(ctx, g.ID, w.CurrentBalance, completed)
}
