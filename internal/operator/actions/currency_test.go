package actions

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BojanNestorovic/WalletApp/internal/core"
	"github.com/BojanNestorovic/WalletApp/internal/storage/currency"
)

func TestCreateCurrency_DuplicateNameRejected(t *testing.T) {
	l := newTestLedger(t)

	err := l.perform(t, &CreateCurrency{
		Name:       "USD",
		ValueToEur: decimal.RequireFromString("0.95"),
	})
	assert.ErrorIs(t, err, core.ErrDuplicateName)
}

func TestCreateCurrency_NonPositiveRateRejected(t *testing.T) {
	l := newTestLedger(t)

	err := l.perform(t, &CreateCurrency{
		Name:       "GBP",
		ValueToEur: decimal.Zero,
	})
	assert.ErrorIs(t, err, core.ErrInvalidAmount)
}

func TestUpdateCurrencyRate(t *testing.T) {
	l := newTestLedger(t)

	require.NoError(t, l.perform(t, &UpdateCurrencyRate{
		CurrencyID: l.usdID,
		ValueToEur: decimal.RequireFromString("0.95"),
	}))

	cur, err := l.store.Currencies().FindByID(context.Background(), l.usdID)
	require.NoError(t, err)
	assert.Equal(t, "0.95", cur.ValueToEur.StringFixed(2))
}

func TestUpdateCurrencyRate_PivotProtected(t *testing.T) {
	l := newTestLedger(t)

	err := l.perform(t, &UpdateCurrencyRate{
		CurrencyID: l.eurID,
		ValueToEur: decimal.RequireFromString("0.50"),
	})
	assert.ErrorIs(t, err, core.ErrProtectedCurrency)
}

func TestDeleteCurrency_PivotProtected(t *testing.T) {
	l := newTestLedger(t)

	err := l.perform(t, &DeleteCurrency{CurrencyID: l.eurID})
	assert.ErrorIs(t, err, core.ErrProtectedCurrency)
}

func TestDeleteCurrency_InUseRejected(t *testing.T) {
	l := newTestLedger(t)
	l.newWallet(t, l.usdID, "10.00", false)

	err := l.perform(t, &DeleteCurrency{CurrencyID: l.usdID})
	assert.ErrorIs(t, err, core.ErrCurrencyInUse)
}

func TestDeleteCurrency_Unreferenced(t *testing.T) {
	l := newTestLedger(t)

	require.NoError(t, l.perform(t, &DeleteCurrency{CurrencyID: l.usdID}))

	_, err := l.store.Currencies().FindByID(context.Background(), l.usdID)
	assert.ErrorIs(t, err, core.ErrNotFound)
}

func TestCurrencyRateChangeAffectsLaterTransfers(t *testing.T) {
	l := newTestLedger(t)
	fromID := l.newWallet(t, l.eurID, "100.00", false)
	toID := l.newWallet(t, l.usdID, "0.00", false)

	require.NoError(t, l.perform(t, &UpdateCurrencyRate{
		CurrencyID: l.usdID,
		ValueToEur: decimal.RequireFromString("0.50"),
	}))

	action := &Transfer{
		UserID:       l.userID,
		FromWalletID: fromID,
		ToWalletID:   toID,
		Amount:       decimal.RequireFromString("10.00"),
		Description:  "after repricing",
	}
	require.NoError(t, l.perform(t, action))
	assert.Equal(t, "20.00", action.Received.StringFixed(2))
}

func TestCurrencyCatalogList(t *testing.T) {
	l := newTestLedger(t)

	all, err := l.store.Currencies().List(context.Background())
	require.NoError(t, err)
	require.Len(t, all, 2)

	names := []string{all[0].Name, all[1].Name}
	assert.Contains(t, names, currency.PivotName)
	assert.Contains(t, names, "USD")
}
