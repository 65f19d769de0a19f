package memory

import (
	"context"
	"testing"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BojanNestorovic/WalletApp/internal/core"
	"github.com/BojanNestorovic/WalletApp/internal/storage"
	"github.com/BojanNestorovic/WalletApp/internal/storage/wallet"
)

func newWallet(t *testing.T, store *Store, userID, currencyID uuid.UUID, balance string) uuid.UUID {
	t.Helper()
	ctx := context.Background()

	w, err := store.Write(ctx)
	require.NoError(t, err)
	id, err := w.Wallets().Insert(ctx, &wallet.WalletCreate{
		Name:           "test wallet",
		UserID:         userID,
		CurrencyID:     currencyID,
		InitialBalance: decimal.RequireFromString(balance),
	})
	require.NoError(t, err)
	require.NoError(t, w.Commit())
	return id
}

func TestWrite_CommitMakesChangesVisible(t *testing.T) {
	store := NewStore()
	eurID, _ := store.SeedDefaults()
	userID := uuid.Must(uuid.NewV4())
	ctx := context.Background()

	walletID := newWallet(t, store, userID, eurID, "100.00")

	found, err := store.Wallets().FindByID(ctx, walletID)
	require.NoError(t, err)
	assert.Equal(t, "100.00", found.CurrentBalance.StringFixed(2))
	assert.Equal(t, "100.00", found.InitialBalance.StringFixed(2))
}

func TestWrite_RollbackDropsChanges(t *testing.T) {
	store := NewStore()
	eurID, _ := store.SeedDefaults()
	userID := uuid.Must(uuid.NewV4())
	ctx := context.Background()

	w, err := store.Write(ctx)
	require.NoError(t, err)
	id, err := w.Wallets().Insert(ctx, &wallet.WalletCreate{
		Name:       "discarded",
		UserID:     userID,
		CurrencyID: eurID,
	})
	require.NoError(t, err)
	require.NoError(t, w.Rollback())

	_, err = store.Wallets().FindByID(ctx, id)
	assert.ErrorIs(t, err, core.ErrNotFound)
}

func TestWrite_DraftInvisibleUntilCommit(t *testing.T) {
	store := NewStore()
	eurID, _ := store.SeedDefaults()
	userID := uuid.Must(uuid.NewV4())
	ctx := context.Background()

	w, err := store.Write(ctx)
	require.NoError(t, err)
	id, err := w.Wallets().Insert(ctx, &wallet.WalletCreate{
		Name:       "pending",
		UserID:     userID,
		CurrencyID: eurID,
	})
	require.NoError(t, err)

	// The write unit sees its own insert, plain readers do not.
	_, err = w.Wallets().FindByID(ctx, id)
	assert.NoError(t, err)
	_, err = store.Wallets().FindByID(ctx, id)
	assert.ErrorIs(t, err, core.ErrNotFound)

	require.NoError(t, w.Commit())
	_, err = store.Wallets().FindByID(ctx, id)
	assert.NoError(t, err)
}

func TestApplyDelta(t *testing.T) {
	store := NewStore()
	eurID, _ := store.SeedDefaults()
	userID := uuid.Must(uuid.NewV4())
	ctx := context.Background()

	walletID := newWallet(t, store, userID, eurID, "100.00")

	w, err := store.Write(ctx)
	require.NoError(t, err)
	newBalance, err := w.Wallets().ApplyDelta(ctx, walletID, decimal.RequireFromString("-30.00"))
	require.NoError(t, err)
	assert.Equal(t, "70.00", newBalance.StringFixed(2))
	require.NoError(t, w.Commit())

	found, err := store.Wallets().FindByID(ctx, walletID)
	require.NoError(t, err)
	assert.Equal(t, "70.00", found.CurrentBalance.StringFixed(2))
}

func TestApplyDelta_MissingWallet(t *testing.T) {
	store := NewStore()
	store.SeedDefaults()
	ctx := context.Background()

	w, err := store.Write(ctx)
	require.NoError(t, err)
	defer func() { _ = w.Rollback() }()

	_, err = w.Wallets().ApplyDelta(ctx, uuid.Must(uuid.NewV4()), decimal.NewFromInt(1))
	assert.ErrorIs(t, err, core.ErrNotFound)
}

func TestApplyDelta_ArchivedWallet(t *testing.T) {
	store := NewStore()
	eurID, _ := store.SeedDefaults()
	userID := uuid.Must(uuid.NewV4())
	ctx := context.Background()

	walletID := newWallet(t, store, userID, eurID, "100.00")

	w, err := store.Write(ctx)
	require.NoError(t, err)
	require.NoError(t, w.Wallets().SetArchived(ctx, walletID, true))
	require.NoError(t, w.Commit())

	w, err = store.Write(ctx)
	require.NoError(t, err)
	defer func() { _ = w.Rollback() }()

	_, err = w.Wallets().ApplyDelta(ctx, walletID, decimal.NewFromInt(1))
	assert.ErrorIs(t, err, core.ErrArchived)
}

func TestApplyPairedDelta_BothOrNeither(t *testing.T) {
	store := NewStore()
	eurID, _ := store.SeedDefaults()
	userID := uuid.Must(uuid.NewV4())
	ctx := context.Background()

	a := newWallet(t, store, userID, eurID, "100.00")
	b := newWallet(t, store, userID, eurID, "50.00")

	w, err := store.Write(ctx)
	require.NoError(t, err)
	err = w.Wallets().ApplyPairedDelta(ctx,
		a, decimal.RequireFromString("-25.00"),
		b, decimal.RequireFromString("25.00"))
	require.NoError(t, err)
	require.NoError(t, w.Commit())

	wa, _ := store.Wallets().FindByID(ctx, a)
	wb, _ := store.Wallets().FindByID(ctx, b)
	assert.Equal(t, "75.00", wa.CurrentBalance.StringFixed(2))
	assert.Equal(t, "75.00", wb.CurrentBalance.StringFixed(2))

	// Second leg missing: the unit is rolled back, the first leg disappears.
	w, err = store.Write(ctx)
	require.NoError(t, err)
	err = w.Wallets().ApplyPairedDelta(ctx,
		a, decimal.RequireFromString("-10.00"),
		uuid.Must(uuid.NewV4()), decimal.RequireFromString("10.00"))
	assert.ErrorIs(t, err, core.ErrNotFound)
	require.NoError(t, w.Rollback())

	wa, _ = store.Wallets().FindByID(ctx, a)
	assert.Equal(t, "75.00", wa.CurrentBalance.StringFixed(2))
}

func TestStoreImplementsStore(t *testing.T) {
	var _ storage.Store = NewStore()
}
