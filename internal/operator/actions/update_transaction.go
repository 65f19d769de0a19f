package actions

import (
	"context"
	"fmt"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/BojanNestorovic/WalletApp/internal/core"
	"github.com/BojanNestorovic/WalletApp/internal/storage"
	"github.com/BojanNestorovic/WalletApp/internal/storage/transaction"
)

// UpdateTransaction rewrites a posted transaction as revert(old) + post(new)
// inside one unit: the old signed amount comes off the wallet, the new one
// goes on, and the record is updated in place. The wallet reference never
// changes.
type UpdateTransaction struct {
	UserID        uuid.UUID
	TransactionID uuid.UUID
	WalletID      uuid.UUID

	Name       string
	Amount     decimal.Decimal
	Type       transaction.Type
	CategoryID uuid.UUID
	Repeating  bool
	Frequency  transaction.Frequency

	NewBalance decimal.Decimal

	IAction
}

func (a *UpdateTransaction) WalletIDs() []uuid.UUID {
	return []uuid.UUID{a.WalletID}
}

func (a *UpdateTransaction) Perform(ctx context.Context, writer storage.TxWriter) error {
	if !a.Amount.IsPositive() {
		return fmt.Errorf("amount %v: %w", a.Amount, core.ErrInvalidAmount)
	}
	if !a.Type.Valid() {
		return fmt.Errorf("transaction type %q: %w", a.Type, core.ErrInvalidAmount)
	}
	if !a.Frequency.Valid() {
		return fmt.Errorf("frequency %q: %w", a.Frequency, core.ErrInvalidAmount)
	}

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

	w, err := findOwnedWallet(ctx, writer.Wallets(), t.WalletID, a.UserID)
	if err != nil {
		return err
	}
	if w.Archived {
		return fmt.Errorf("wallet %v: %w", t.WalletID, core.ErrArchived)
	}

	if _, err = writer.Categories().FindByID(ctx, a.CategoryID); err != nil {
		return err
	}

	amount := core.RoundMoney(a.Amount)
	oldDelta := t.Type.SignedAmount(t.Amount)
	newDelta := a.Type.SignedAmount(amount)

	newBalance, err := writer.Wallets().ApplyDelta(ctx, t.WalletID, newDelta.Sub(oldDelta))
	if err != nil {
		return err
	}

	err = writer.Transactions().Update(ctx, t.ID, &transaction.TransactionUpdate{
		Name:       a.Name,
		Amount:     amount,
		Type:       a.Type,
		CategoryID: a.CategoryID,
		Repeating:  a.Repeating,
		Frequency:  a.Frequency,
	})
	if err != nil {
		return err
	}

	if err = syncWalletGoals(ctx, writer, t.WalletID, newBalance); err != nil {
		return err
	}

	a.NewBalance = newBalance
	return nil
}
