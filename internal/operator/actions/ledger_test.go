package actions

import (
	"context"
	"testing"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BojanNestorovic/WalletApp/internal/core"
	"github.com/BojanNestorovic/WalletApp/internal/storage/memory"
	"github.com/BojanNestorovic/WalletApp/internal/storage/transaction"
	"github.com/BojanNestorovic/WalletApp/internal/storage/wallet"
)

// testLedger is a seeded in-memory store plus the ids every test needs.
type testLedger struct {
	store         *memory.Store
	userID        uuid.UUID
	eurID         uuid.UUID
	usdID         uuid.UUID
	transferCatID uuid.UUID
	groceriesID   uuid.UUID
}

func newTestLedger(t *testing.T) *testLedger {
	t.Helper()

	store := memory.NewStore()
	eurID, transferCatID := store.SeedDefaults()

	l := &testLedger{
		store:         store,
		userID:        uuid.Must(uuid.NewV4()),
		eurID:         eurID,
		transferCatID: transferCatID,
		groceriesID:   store.AddCategory("Groceries", false, uuid.Nil),
	}

	createUSD := &CreateCurrency{
		Name:       "USD",
		ValueToEur: decimal.RequireFromString("0.92"),
	}
	require.NoError(t, l.perform(t, createUSD))
	l.usdID = createUSD.CurrencyID

	return l
}

// perform runs an action the way the operator does: one write unit, commit on
// success, rollback on error.
func (l *testLedger) perform(t *testing.T, action IAction) error {
	t.Helper()
	ctx := context.Background()

	w, err := l.store.Write(ctx)
	require.NoError(t, err)

	if err := action.Perform(ctx, w); err != nil {
		require.NoError(t, w.Rollback())
		return err
	}
	return w.Commit()
}

func (l *testLedger) newWallet(t *testing.T, currencyID uuid.UUID, balance string, savings bool) uuid.UUID {
	t.Helper()

	action := &CreateWallet{
		UserID:         l.userID,
		Name:           "wallet",
		CurrencyID:     currencyID,
		InitialBalance: decimal.RequireFromString(balance),
		Savings:        savings,
	}
	require.NoError(t, l.perform(t, action))
	return action.WalletID
}

func (l *testLedger) wallet(t *testing.T, id uuid.UUID) *wallet.Wallet {
	t.Helper()
	w, err := l.store.Wallets().FindByID(context.Background(), id)
	require.NoError(t, err)
	return w
}

func (l *testLedger) transactionCount(t *testing.T, walletID uuid.UUID) int64 {
	t.Helper()
	count, err := l.store.Transactions().CountByWallet(context.Background(), walletID)
	require.NoError(t, err)
	return count
}

func TestPostTransaction_Expense(t *testing.T) {
	l := newTestLedger(t)
	walletID := l.newWallet(t, l.eurID, "100.00", false)

	action := &PostTransaction{
		UserID:     l.userID,
		WalletID:   walletID,
		CategoryID: l.groceriesID,
		Name:       "weekly shop",
		Amount:     decimal.RequireFromString("30.00"),
		Type:       transaction.TypeExpense,
	}
	require.NoError(t, l.perform(t, action))

	assert.Equal(t, "70.00", action.NewBalance.StringFixed(2))
	assert.Equal(t, "70.00", l.wallet(t, walletID).CurrentBalance.StringFixed(2))

	tx, err := l.store.Transactions().FindByID(context.Background(), action.TransactionID)
	require.NoError(t, err)
	assert.Equal(t, transaction.TypeExpense, tx.Type)
	assert.Equal(t, "30.00", tx.Amount.StringFixed(2))
	assert.Equal(t, int64(1), l.transactionCount(t, walletID))
}

func TestPostTransaction_Income(t *testing.T) {
	l := newTestLedger(t)
	walletID := l.newWallet(t, l.eurID, "100.00", false)

	action := &PostTransaction{
		UserID:     l.userID,
		WalletID:   walletID,
		CategoryID: l.groceriesID,
		Name:       "salary",
		Amount:     decimal.RequireFromString("250.50"),
		Type:       transaction.TypeIncome,
	}
	require.NoError(t, l.perform(t, action))

	assert.Equal(t, "350.50", l.wallet(t, walletID).CurrentBalance.StringFixed(2))
}

func TestPostTransaction_NonPositiveAmount(t *testing.T) {
	l := newTestLedger(t)
	walletID := l.newWallet(t, l.eurID, "100.00", false)

	for _, amount := range []string{"0", "-5.00"} {
		err := l.perform(t, &PostTransaction{
			UserID:     l.userID,
			WalletID:   walletID,
			CategoryID: l.groceriesID,
			Name:       "bad",
			Amount:     decimal.RequireFromString(amount),
			Type:       transaction.TypeExpense,
		})
		assert.ErrorIs(t, err, core.ErrInvalidAmount)
	}
	assert.Equal(t, int64(0), l.transactionCount(t, walletID))
}

func TestPostTransaction_ArchivedWallet(t *testing.T) {
	l := newTestLedger(t)
	walletID := l.newWallet(t, l.eurID, "100.00", false)
	require.NoError(t, l.perform(t, &ArchiveWallet{
		UserID: l.userID, WalletID: walletID, Archived: true,
	}))

	err := l.perform(t, &PostTransaction{
		UserID:     l.userID,
		WalletID:   walletID,
		CategoryID: l.groceriesID,
		Name:       "blocked",
		Amount:     decimal.RequireFromString("10.00"),
		Type:       transaction.TypeExpense,
	})
	assert.ErrorIs(t, err, core.ErrArchived)
	assert.Equal(t, "100.00", l.wallet(t, walletID).CurrentBalance.StringFixed(2))
}

func TestPostTransaction_ForeignWallet(t *testing.T) {
	l := newTestLedger(t)
	walletID := l.newWallet(t, l.eurID, "100.00", false)

	err := l.perform(t, &PostTransaction{
		UserID:     uuid.Must(uuid.NewV4()),
		WalletID:   walletID,
		CategoryID: l.groceriesID,
		Name:       "not yours",
		Amount:     decimal.RequireFromString("10.00"),
		Type:       transaction.TypeExpense,
	})
	assert.ErrorIs(t, err, core.ErrUnauthorized)
}

func TestPostTransaction_UnknownCategory(t *testing.T) {
	l := newTestLedger(t)
	walletID := l.newWallet(t, l.eurID, "100.00", false)

	err := l.perform(t, &PostTransaction{
		UserID:     l.userID,
		WalletID:   walletID,
		CategoryID: uuid.Must(uuid.NewV4()),
		Name:       "no category",
		Amount:     decimal.RequireFromString("10.00"),
		Type:       transaction.TypeExpense,
	})
	assert.ErrorIs(t, err, core.ErrNotFound)
	assert.Equal(t, "100.00", l.wallet(t, walletID).CurrentBalance.StringFixed(2))
	assert.Equal(t, int64(0), l.transactionCount(t, walletID))
}

func TestRevertTransaction_RestoresBalance(t *testing.T) {
	l := newTestLedger(t)
	walletID := l.newWallet(t, l.eurID, "100.00", false)

	post := &PostTransaction{
		UserID:     l.userID,
		WalletID:   walletID,
		CategoryID: l.groceriesID,
		Name:       "weekly shop",
		Amount:     decimal.RequireFromString("30.00"),
		Type:       transaction.TypeExpense,
	}
	require.NoError(t, l.perform(t, post))
	require.Equal(t, "70.00", l.wallet(t, walletID).CurrentBalance.StringFixed(2))

	revert := &RevertTransaction{
		UserID:        l.userID,
		TransactionID: post.TransactionID,
		WalletID:      walletID,
	}
	require.NoError(t, l.perform(t, revert))

	assert.Equal(t, "100.00", l.wallet(t, walletID).CurrentBalance.StringFixed(2))
	assert.Equal(t, int64(0), l.transactionCount(t, walletID))
}

func TestRevertTransaction_SecondRevertRejected(t *testing.T) {
	l := newTestLedger(t)
	walletID := l.newWallet(t, l.eurID, "100.00", false)

	post := &PostTransaction{
		UserID:     l.userID,
		WalletID:   walletID,
		CategoryID: l.groceriesID,
		Name:       "once",
		Amount:     decimal.RequireFromString("30.00"),
		Type:       transaction.TypeExpense,
	}
	require.NoError(t, l.perform(t, post))

	revert := &RevertTransaction{
		UserID:        l.userID,
		TransactionID: post.TransactionID,
		WalletID:      walletID,
	}
	require.NoError(t, l.perform(t, revert))

	err := l.perform(t, &RevertTransaction{
		UserID:        l.userID,
		TransactionID: post.TransactionID,
		WalletID:      walletID,
	})
	assert.ErrorIs(t, err, core.ErrNotFound)

	// No double credit.
	assert.Equal(t, "100.00", l.wallet(t, walletID).CurrentBalance.StringFixed(2))
}

func TestRevertTransaction_PredefinedCategoryNeedsAdministrator(t *testing.T) {
	l := newTestLedger(t)
	walletID := l.newWallet(t, l.eurID, "100.00", false)

	post := &PostTransaction{
		UserID:     l.userID,
		WalletID:   walletID,
		CategoryID: l.transferCatID,
		Name:       "system entry",
		Amount:     decimal.RequireFromString("10.00"),
		Type:       transaction.TypeExpense,
	}
	require.NoError(t, l.perform(t, post))

	err := l.perform(t, &RevertTransaction{
		UserID:        l.userID,
		TransactionID: post.TransactionID,
		WalletID:      walletID,
	})
	assert.ErrorIs(t, err, core.ErrUnauthorized)

	require.NoError(t, l.perform(t, &RevertTransaction{
		UserID:        l.userID,
		UserRole:      core.RoleAdministrator,
		TransactionID: post.TransactionID,
		WalletID:      walletID,
	}))
	assert.Equal(t, "100.00", l.wallet(t, walletID).CurrentBalance.StringFixed(2))
}

func TestUpdateTransaction_RevertsOldAppliesNew(t *testing.T) {
	l := newTestLedger(t)
	walletID := l.newWallet(t, l.eurID, "100.00", false)

	post := &PostTransaction{
		UserID:     l.userID,
		WalletID:   walletID,
		CategoryID: l.groceriesID,
		Name:       "typo",
		Amount:     decimal.RequireFromString("30.00"),
		Type:       transaction.TypeExpense,
	}
	require.NoError(t, l.perform(t, post))
	require.Equal(t, "70.00", l.wallet(t, walletID).CurrentBalance.StringFixed(2))

	update := &UpdateTransaction{
		UserID:        l.userID,
		TransactionID: post.TransactionID,
		WalletID:      walletID,
		Name:          "fixed",
		Amount:        decimal.RequireFromString("20.00"),
		Type:          transaction.TypeIncome,
		CategoryID:    l.groceriesID,
	}
	require.NoError(t, l.perform(t, update))

	// -30 reverted, +20 applied: 100 + 20 = 120.
	assert.Equal(t, "120.00", l.wallet(t, walletID).CurrentBalance.StringFixed(2))

	tx, err := l.store.Transactions().FindByID(context.Background(), post.TransactionID)
	require.NoError(t, err)
	assert.Equal(t, "fixed", tx.Name)
	assert.Equal(t, transaction.TypeIncome, tx.Type)
	assert.Equal(t, "20.00", tx.Amount.StringFixed(2))
	assert.Equal(t, walletID, tx.WalletID)
	assert.Equal(t, int64(1), l.transactionCount(t, walletID))
}

// The balance invariant: current balance always equals the initial balance
// plus the signed sum of the records on file.
func TestBalanceInvariant_AfterMixedSequence(t *testing.T) {
	l := newTestLedger(t)
	walletID := l.newWallet(t, l.eurID, "100.00", false)

	post := func(amount string, typ transaction.Type) *PostTransaction {
		a := &PostTransaction{
			UserID:     l.userID,
			WalletID:   walletID,
			CategoryID: l.groceriesID,
			Name:       "entry",
			Amount:     decimal.RequireFromString(amount),
			Type:       typ,
		}
		require.NoError(t, l.perform(t, a))
		return a
	}

	post("25.00", transaction.TypeExpense)
	second := post("40.00", transaction.TypeIncome)
	post("12.34", transaction.TypeExpense)
	require.NoError(t, l.perform(t, &RevertTransaction{
		UserID:        l.userID,
		TransactionID: second.TransactionID,
		WalletID:      walletID,
	}))

	w := l.wallet(t, walletID)
	rows, err := l.store.Transactions().List(context.Background(), &transaction.Filter{
		WalletID: &walletID,
		Limit:    100,
	})
	require.NoError(t, err)

	sum := decimal.Zero
	for _, tx := range rows {
		sum = sum.Add(tx.Type.SignedAmount(tx.Amount))
	}
	assert.True(t, w.CurrentBalance.Equal(w.InitialBalance.Add(sum)),
		"balance %v != initial %v + signed sum %v", w.CurrentBalance, w.InitialBalance, sum)
}
