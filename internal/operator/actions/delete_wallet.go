package actions

import (
	"context"
	"fmt"

	"github.com/gofrs/uuid/v5"

	"github.com/BojanNestorovic/WalletApp/internal/core"
	"github.com/BojanNestorovic/WalletApp/internal/storage"
)

// DeleteWallet removes a wallet. Rejected while transactions or goals still
// reference it; the history must be reverted or moved first.
type DeleteWallet struct {
	UserID   uuid.UUID
	WalletID uuid.UUID

	IAction
}

func (a *DeleteWallet) WalletIDs() []uuid.UUID {
	return []uuid.UUID{a.WalletID}
}

func (a *DeleteWallet) Perform(ctx context.Context, writer storage.TxWriter) error {
	if _, err := findOwnedWallet(ctx, writer.Wallets(), a.WalletID, a.UserID); err != nil {
		return err
	}

	count, err := writer.Transactions().CountByWallet(ctx, a.WalletID)
	if err != nil {
		return err
	}
	if count > 0 {
		return fmt.Errorf("wallet %v has %d transactions: %w", a.WalletID, count, core.ErrWalletNotEmpty)
	}

	goals, err := writer.Goals().ListByWallet(ctx, a.WalletID)
	if err != nil {
		return err
	}
	if len(goals) > 0 {
		return fmt.Errorf("wallet %v has savings goals: %w", a.WalletID, core.ErrWalletNotEmpty)
	}

	return writer.Wallets().Delete(ctx, a.WalletID)
}
