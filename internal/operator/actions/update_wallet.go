package actions

import (
	"context"
	"fmt"

	"github.com/gofrs/uuid/v5"

	"github.com/BojanNestorovic/WalletApp/internal/core"
	"github.com/BojanNestorovic/WalletApp/internal/storage"
	"github.com/BojanNestorovic/WalletApp/internal/storage/wallet"
)

// UpdateWallet changes a wallet's name and savings flag. Balances and the
// currency are immutable after creation.
type UpdateWallet struct {
	UserID   uuid.UUID
	WalletID uuid.UUID
	Name     string
	Savings  bool

	IAction
}

func (a *UpdateWallet) WalletIDs() []uuid.UUID {
	return []uuid.UUID{a.WalletID}
}

func (a *UpdateWallet) Perform(ctx context.Context, writer storage.TxWriter) error {
	w, err := findOwnedWallet(ctx, writer.Wallets(), a.WalletID, a.UserID)
	if err != nil {
		return err
	}

	// Clearing the savings flag is rejected while goals still point at the
	// wallet; they would otherwise track a non-savings wallet.
	if w.Savings && !a.Savings {
		goals, err := writer.Goals().ListByWallet(ctx, a.WalletID)
		if err != nil {
			return err
		}
		if len(goals) > 0 {
			return fmt.Errorf("wallet %v has savings goals: %w", a.WalletID, core.ErrNotSavingsWallet)
		}
	}

	return writer.Wallets().Update(ctx, a.WalletID, &wallet.WalletUpdate{
		Name:    a.Name,
		Savings: a.Savings,
	})
}

// ArchiveWallet flips the archived flag. An archived wallet keeps its balance
// and history but rejects every balance-changing operation until unarchived.
type ArchiveWallet struct {
	UserID   uuid.UUID
	WalletID uuid.UUID
	Archived bool

	IAction
}

func (a *ArchiveWallet) WalletIDs() []uuid.UUID {
	return []uuid.UUID{a.WalletID}
}

func (a *ArchiveWallet) Perform(ctx context.Context, writer storage.TxWriter) error {
	if _, err := findOwnedWallet(ctx, writer.Wallets(), a.WalletID, a.UserID); err != nil {
		return err
	}
	return writer.Wallets().SetArchived(ctx, a.WalletID, a.Archived)
}
