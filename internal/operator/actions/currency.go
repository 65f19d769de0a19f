package actions

import (
	"context"
	"errors"
	"fmt"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/BojanNestorovic/WalletApp/internal/core"
	"github.com/BojanNestorovic/WalletApp/internal/storage"
	"github.com/BojanNestorovic/WalletApp/internal/storage/currency"
)

// CreateCurrency adds a currency to the catalog. Names are unique; the rate
// is the value of one unit in EUR and must be positive.
type CreateCurrency struct {
	Name       string
	ValueToEur decimal.Decimal

	CurrencyID uuid.UUID

	IAction
}

func (a *CreateCurrency) WalletIDs() []uuid.UUID {
	return nil
}

func (a *CreateCurrency) Perform(ctx context.Context, writer storage.TxWriter) error {
	if !a.ValueToEur.IsPositive() {
		return fmt.Errorf("rate %v: %w", a.ValueToEur, core.ErrInvalidAmount)
	}

	_, err := writer.Currencies().FindByName(ctx, a.Name)
	if err == nil {
		return fmt.Errorf("currency %q: %w", a.Name, core.ErrDuplicateName)
	}
	if !errors.Is(err, core.ErrNotFound) {
		return err
	}

	id, err := writer.Currencies().Insert(ctx, &currency.CurrencyCreate{
		Name:       a.Name,
		ValueToEur: a.ValueToEur,
	})
	if err != nil {
		return err
	}

	a.CurrencyID = id
	return nil
}

// UpdateCurrencyRate changes a currency's EUR rate. EUR is the pivot and its
// rate stays at 1.0.
type UpdateCurrencyRate struct {
	CurrencyID uuid.UUID
	ValueToEur decimal.Decimal

	IAction
}

func (a *UpdateCurrencyRate) WalletIDs() []uuid.UUID {
	return nil
}

func (a *UpdateCurrencyRate) Perform(ctx context.Context, writer storage.TxWriter) error {
	if !a.ValueToEur.IsPositive() {
		return fmt.Errorf("rate %v: %w", a.ValueToEur, core.ErrInvalidAmount)
	}

	cur, err := writer.Currencies().FindByID(ctx, a.CurrencyID)
	if err != nil {
		return err
	}
	if cur.Name == currency.PivotName {
		return fmt.Errorf("currency %q: %w", cur.Name, core.ErrProtectedCurrency)
	}

	return writer.Currencies().UpdateRate(ctx, a.CurrencyID, a.ValueToEur)
}

// DeleteCurrency removes a currency from the catalog. EUR and currencies
// still referenced by wallets are rejected.
type DeleteCurrency struct {
	CurrencyID uuid.UUID

	IAction
}

func (a *DeleteCurrency) WalletIDs() []uuid.UUID {
	return nil
}

func (a *DeleteCurrency) Perform(ctx context.Context, writer storage.TxWriter) error {
	cur, err := writer.Currencies().FindByID(ctx, a.CurrencyID)
	if err != nil {
		return err
	}
	if cur.Name == currency.PivotName {
		return fmt.Errorf("currency %q: %w", cur.Name, core.ErrProtectedCurrency)
	}

	count, err := writer.Currencies().CountWallets(ctx, a.CurrencyID)
	if err != nil {
		return err
	}
	if count > 0 {
		return fmt.Errorf("currency %q referenced by %d wallets: %w", cur.Name, count, core.ErrCurrencyInUse)
	}

	return writer.Currencies().Delete(ctx, a.CurrencyID)
}
