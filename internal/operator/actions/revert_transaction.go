package actions

import (
	"context"
	"fmt"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/BojanNestorovic/WalletApp/internal/core"
	"github.com/BojanNestorovic/WalletApp/internal/storage"
)

// RevertTransaction undoes a posted transaction: the wallet balance moves by
// the inverse signed amount and the record is deleted, as one unit. Reverting
// a transaction in a predefined category requires the administrator role.
type RevertTransaction struct {
	UserID        uuid.UUID
	UserRole      string
	TransactionID uuid.UUID
	WalletID      uuid.UUID

	NewBalance decimal.Decimal

	IAction
}

func (a *RevertTransaction) WalletIDs() []uuid.UUID {
	return []uuid.UUID{a.WalletID}
}

func (a *RevertTransaction) Perform(ctx context.Context, writer storage.TxWriter) error {
	t, err := writer.Transactions().FindByID(ctx, a.TransactionID)
	if err != nil {
		return err
	}
	if t.WalletID != a.WalletID {
		return fmt.Errorf("transaction %v: %w", a.TransactionID, core.ErrNotFound)
	}
	if t.UserID != a.UserID {
		return fmt.Errorf("transaction %v: %w", a.TransactionID, core.ErrUnauthorized)
	}

	cat, err := writer.Categories().FindByID(ctx, t.CategoryID)
	if err != nil {
		return err
	}
	if cat.Predefined && a.UserRole != core.RoleAdministrator {
		return fmt.Errorf("category %q is predefined: %w", cat.Name, core.ErrUnauthorized)
	}

	inverse := t.Type.SignedAmount(t.Amount).Neg()
	newBalance, err := writer.Wallets().ApplyDelta(ctx, t.WalletID, inverse)
	if err != nil {
		return err
	}

	if err = writer.Transactions().Delete(ctx, t.ID); err != nil {
		return err
	}

	if err = syncWalletGoals(ctx, writer, t.WalletID, newBalance); err != nil {
		return err
	}

	a.NewBalance = newBalance
	return nil
}
