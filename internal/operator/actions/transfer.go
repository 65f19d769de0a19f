package actions

import (
	"context"
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/BojanNestorovic/WalletApp/internal/core"
	"github.com/BojanNestorovic/WalletApp/internal/storage"
	"github.com/BojanNestorovic/WalletApp/internal/storage/category"
	"github.com/BojanNestorovic/WalletApp/internal/storage/transaction"
)

// Transfer moves money between two wallets of the same user, converting
// through the EUR pivot when the currencies differ. It debits the source,
// credits the destination and records an expense/income pair under the
// predefined "Transfer" category, all as one unit.
type Transfer struct {
	UserID       uuid.UUID
	FromWalletID uuid.UUID
	ToWalletID   uuid.UUID
	Amount       decimal.Decimal
	Description  string

	// Result fields, populated on success.
	Received           decimal.Decimal
	ExpenseTransaction uuid.UUID
	IncomeTransaction  uuid.UUID

	IAction
}

func (a *Transfer) WalletIDs() []uuid.UUID {
	return []uuid.UUID{a.FromWalletID, a.ToWalletID}
}

func (a *Transfer) Perform(ctx context.Context, writer storage.TxWriter) error {
	if !a.Amount.IsPositive() {
		return fmt.Errorf("amount %v: %w", a.Amount, core.ErrInvalidAmount)
	}
	if a.FromWalletID == a.ToWalletID {
		return fmt.Errorf("transfer to the same wallet: %w", core.ErrInvalidAmount)
	}

	from, err := findOwnedWallet(ctx, writer.Wallets(), a.FromWalletID, a.UserID)
	if err != nil {
		return err
	}
	to, err := findOwnedWallet(ctx, writer.Wallets(), a.ToWalletID, a.UserID)
	if err != nil {
		return err
	}
	if from.Archived {
		return fmt.Errorf("wallet %v: %w", from.ID, core.ErrArchived)
	}
	if to.Archived {
		return fmt.Errorf("wallet %v: %w", to.ID, core.ErrArchived)
	}

	amount := core.RoundMoney(a.Amount)
	if from.CurrentBalance.LessThan(amount) {
		return fmt.Errorf("wallet %v balance %v, transfer %v: %w",
			from.ID, from.CurrentBalance, amount, core.ErrInsufficientFunds)
	}

	received := amount
	if from.CurrencyID != to.CurrencyID {
		fromCur, err := writer.Currencies().FindByID(ctx, from.CurrencyID)
		if err != nil {
			return err
		}
		toCur, err := writer.Currencies().FindByID(ctx, to.CurrencyID)
		if err != nil {
			return err
		}
		received = core.Convert(amount, fromCur.ValueToEur, toCur.ValueToEur)
	}

	transferCat, err := writer.Categories().FindByName(ctx, category.TransferName)
	if err != nil {
		return fmt.Errorf("transfer category: %w", err)
	}

	err = writer.Wallets().ApplyPairedDelta(ctx, from.ID, amount.Neg(), to.ID, received)
	if err != nil {
		return err
	}

	name := "Transfer: " + a.Description
	date := time.Now()

	expenseID, err := writer.Transactions().Insert(ctx, &transaction.TransactionCreate{
		Name:       name,
		Amount:     amount,
		Type:       transaction.TypeExpense,
		WalletID:   from.ID,
		CategoryID: transferCat.ID,
		UserID:     a.UserID,
		Date:       date,
	})
	if err != nil {
		return err
	}
	incomeID, err := writer.Transactions().Insert(ctx, &transaction.TransactionCreate{
		Name:       name,
		Amount:     received,
		Type:       transaction.TypeIncome,
		WalletID:   to.ID,
		CategoryID: transferCat.ID,
		UserID:     a.UserID,
		Date:       date,
	})
	if err != nil {
		return err
	}

	if err = syncWalletGoals(ctx, writer, from.ID, from.CurrentBalance.Sub(amount)); err != nil {
		return err
	}
	if err = syncWalletGoals(ctx, writer, to.ID, to.CurrentBalance.Add(received)); err != nil {
		return err
	}

	a.Received = received
	a.ExpenseTransaction = expenseID
	a.IncomeTransaction = incomeID
	return nil
}
