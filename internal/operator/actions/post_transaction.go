package actions

import (
	"context"
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/BojanNestorovic/WalletApp/internal/core"
	"github.com/BojanNestorovic/WalletApp/internal/storage"
	"github.com/BojanNestorovic/WalletApp/internal/storage/transaction"
)

// PostTransaction records a new income or expense and moves the wallet
// balance by the signed amount, as one unit.
type PostTransaction struct {
	UserID     uuid.UUID
	WalletID   uuid.UUID
	CategoryID uuid.UUID
	Name       string
	Amount     decimal.Decimal
	Type       transaction.Type
	Repeating  bool
	Frequency  transaction.Frequency
	Date       time.Time

	// Result fields, populated on success.
	TransactionID uuid.UUID
	NewBalance    decimal.Decimal

	IAction
}

func (a *PostTransaction) WalletIDs() []uuid.UUID {
	return []uuid.UUID{a.WalletID}
}

func (a *PostTransaction) Perform(ctx context.Context, writer storage.TxWriter) error {
	if !a.Amount.IsPositive() {
		return fmt.Errorf("amount %v: %w", a.Amount, core.ErrInvalidAmount)
	}
	if !a.Type.Valid() {
		return fmt.Errorf("transaction type %q: %w", a.Type, core.ErrInvalidAmount)
	}
	if !a.Frequency.Valid() {
		return fmt.Errorf("frequency %q: %w", a.Frequency, core.ErrInvalidAmount)
	}
	if a.Repeating && a.Frequency == transaction.FrequencyNone {
		return fmt.Errorf("repeating transaction without frequency: %w", core.ErrInvalidAmount)
	}

	w, err := findOwnedWallet(ctx, writer.Wallets(), a.WalletID, a.UserID)
	if err != nil {
		return err
	}
	if w.Archived {
		return fmt.Errorf("wallet %v: %w", a.WalletID, core.ErrArchived)
	}

	if _, err = writer.Categories().FindByID(ctx, a.CategoryID); err != nil {
		return err
	}

	amount := core.RoundMoney(a.Amount)
	newBalance, err := writer.Wallets().ApplyDelta(ctx, a.WalletID, a.Type.SignedAmount(amount))
	if err != nil {
		return err
	}

	id, err := writer.Transactions().Insert(ctx, &transaction.TransactionCreate{
		Name:       a.Name,
		Amount:     amount,
		Type:       a.Type,
		WalletID:   a.WalletID,
		CategoryID: a.CategoryID,
		UserID:     a.UserID,
		Repeating:  a.Repeating,
		Frequency:  a.Frequency,
		Date:       a.Date,
	})
	if err != nil {
		return err
	}

	if err = syncWalletGoals(ctx, writer, a.WalletID, newBalance); err != nil {
		return err
	}

	a.TransactionID = id
	a.NewBalance = newBalance
	return nil
}
