package actions

import (
	"context"
	"testing"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BojanNestorovic/WalletApp/internal/core"
	"github.com/BojanNestorovic/WalletApp/internal/storage/transaction"
)

func TestTransfer_CrossCurrency(t *testing.T) {
	l := newTestLedger(t)
	fromID := l.newWallet(t, l.eurID, "200.00", false)
	toID := l.newWallet(t, l.usdID, "10.00", false)

	action := &Transfer{
		UserID:       l.userID,
		FromWalletID: fromID,
		ToWalletID:   toID,
		Amount:       decimal.RequireFromString("50.00"),
		Description:  "vacation fund",
	}
	require.NoError(t, l.perform(t, action))

	// 50.00 EUR at a USD rate of 0.92 arrives as 54.35.
	assert.Equal(t, "54.35", action.Received.StringFixed(2))
	assert.Equal(t, "150.00", l.wallet(t, fromID).CurrentBalance.StringFixed(2))
	assert.Equal(t, "64.35", l.wallet(t, toID).CurrentBalance.StringFixed(2))

	expense, err := l.store.Transactions().FindByID(context.Background(), action.ExpenseTransaction)
	require.NoError(t, err)
	income, err := l.store.Transactions().FindByID(context.Background(), action.IncomeTransaction)
	require.NoError(t, err)

	assert.Equal(t, transaction.TypeExpense, expense.Type)
	assert.Equal(t, "50.00", expense.Amount.StringFixed(2))
	assert.Equal(t, fromID, expense.WalletID)
	assert.Equal(t, transaction.TypeIncome, income.Type)
	assert.Equal(t, "54.35", income.Amount.StringFixed(2))
	assert.Equal(t, toID, income.WalletID)
	assert.Equal(t, l.transferCatID, expense.CategoryID)
	assert.Equal(t, l.transferCatID, income.CategoryID)
}

func TestTransfer_SameCurrencyKeepsAmountExact(t *testing.T) {
	l := newTestLedger(t)
	fromID := l.newWallet(t, l.usdID, "100.00", false)
	toID := l.newWallet(t, l.usdID, "0.00", false)

	action := &Transfer{
		UserID:       l.userID,
		FromWalletID: fromID,
		ToWalletID:   toID,
		Amount:       decimal.RequireFromString("33.33"),
		Description:  "split",
	}
	require.NoError(t, l.perform(t, action))

	assert.Equal(t, "33.33", action.Received.StringFixed(2))
	assert.Equal(t, "66.67", l.wallet(t, fromID).CurrentBalance.StringFixed(2))
	assert.Equal(t, "33.33", l.wallet(t, toID).CurrentBalance.StringFixed(2))
}

func TestTransfer_InsufficientFunds(t *testing.T) {
	l := newTestLedger(t)
	fromID := l.newWallet(t, l.eurID, "20.00", false)
	toID := l.newWallet(t, l.eurID, "5.00", false)

	err := l.perform(t, &Transfer{
		UserID:       l.userID,
		FromWalletID: fromID,
		ToWalletID:   toID,
		Amount:       decimal.RequireFromString("20.01"),
		Description:  "too much",
	})
	assert.ErrorIs(t, err, core.ErrInsufficientFunds)

	// Neither balance moved and no records were written.
	assert.Equal(t, "20.00", l.wallet(t, fromID).CurrentBalance.StringFixed(2))
	assert.Equal(t, "5.00", l.wallet(t, toID).CurrentBalance.StringFixed(2))
	assert.Equal(t, int64(0), l.transactionCount(t, fromID))
	assert.Equal(t, int64(0), l.transactionCount(t, toID))
}

func TestTransfer_ExactBalanceAllowed(t *testing.T) {
	l := newTestLedger(t)
	fromID := l.newWallet(t, l.eurID, "20.00", false)
	toID := l.newWallet(t, l.eurID, "0.00", false)

	require.NoError(t, l.perform(t, &Transfer{
		UserID:       l.userID,
		FromWalletID: fromID,
		ToWalletID:   toID,
		Amount:       decimal.RequireFromString("20.00"),
		Description:  "drain",
	}))
	assert.Equal(t, "0.00", l.wallet(t, fromID).CurrentBalance.StringFixed(2))
	assert.Equal(t, "20.00", l.wallet(t, toID).CurrentBalance.StringFixed(2))
}

func TestTransfer_SameWalletRejected(t *testing.T) {
	l := newTestLedger(t)
	walletID := l.newWallet(t, l.eurID, "100.00", false)

	err := l.perform(t, &Transfer{
		UserID:       l.userID,
		FromWalletID: walletID,
		ToWalletID:   walletID,
		Amount:       decimal.RequireFromString("10.00"),
		Description:  "loop",
	})
	assert.ErrorIs(t, err, core.ErrInvalidAmount)
}

func TestTransfer_ArchivedDestinationRejected(t *testing.T) {
	l := newTestLedger(t)
	fromID := l.newWallet(t, l.eurID, "100.00", false)
	toID := l.newWallet(t, l.eurID, "0.00", false)
	require.NoError(t, l.perform(t, &ArchiveWallet{
		UserID: l.userID, WalletID: toID, Archived: true,
	}))

	err := l.perform(t, &Transfer{
		UserID:       l.userID,
		FromWalletID: fromID,
		ToWalletID:   toID,
		Amount:       decimal.RequireFromString("10.00"),
		Description:  "blocked",
	})
	assert.ErrorIs(t, err, core.ErrArchived)
	assert.Equal(t, "100.00", l.wallet(t, fromID).CurrentBalance.StringFixed(2))
}

func TestTransfer_ForeignDestinationRejected(t *testing.T) {
	l := newTestLedger(t)
	fromID := l.newWallet(t, l.eurID, "100.00", false)

	other := uuid.Must(uuid.NewV4())
	foreign := &CreateWallet{
		UserID:         other,
		Name:           "theirs",
		CurrencyID:     l.eurID,
		InitialBalance: decimal.Zero,
	}
	require.NoError(t, l.perform(t, foreign))

	err := l.perform(t, &Transfer{
		UserID:       l.userID,
		FromWalletID: fromID,
		ToWalletID:   foreign.WalletID,
		Amount:       decimal.RequireFromString("10.00"),
		Description:  "not yours",
	})
	assert.ErrorIs(t, err, core.ErrUnauthorized)
	assert.Equal(t, "100.00", l.wallet(t, fromID).CurrentBalance.StringFixed(2))
}

// Converting there and back again may drift by rounding, but never by more
// than a cent per leg.
func TestTransfer_RoundTripWithinTwoCents(t *testing.T) {
	l := newTestLedger(t)
	eurWallet := l.newWallet(t, l.eurID, "100.00", false)
	usdWallet := l.newWallet(t, l.usdID, "0.00", false)

	out := &Transfer{
		UserID:       l.userID,
		FromWalletID: eurWallet,
		ToWalletID:   usdWallet,
		Amount:       decimal.RequireFromString("10.00"),
		Description:  "out",
	}
	require.NoError(t, l.perform(t, out))

	back := &Transfer{
		UserID:       l.userID,
		FromWalletID: usdWallet,
		ToWalletID:   eurWallet,
		Amount:       out.Received,
		Description:  "back",
	}
	require.NoError(t, l.perform(t, back))

	drift := l.wallet(t, eurWallet).CurrentBalance.Sub(decimal.RequireFromString("100.00")).Abs()
	assert.True(t, drift.LessThanOrEqual(decimal.RequireFromString("0.02")),
		"round trip drifted by %v", drift)
	assert.Equal(t, "0.00", l.wallet(t, usdWallet).CurrentBalance.StringFixed(2))
}
