package actions

import (
	"context"
	"fmt"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/BojanNestorovic/WalletApp/internal/core"
	"github.com/BojanNestorovic/WalletApp/internal/storage"
	"github.com/BojanNestorovic/WalletApp/internal/storage/wallet"
)

// CreateWallet creates a wallet with a fixed currency. The current balance
// starts equal to the initial balance.
type CreateWallet struct {
	UserID         uuid.UUID
	Name           string
	CurrencyID     uuid.UUID
	InitialBalance decimal.Decimal
	Savings        bool

	WalletID uuid.UUID

	IAction
}

func (a *CreateWallet) WalletIDs() []uuid.UUID {
	return nil
}

func (a *CreateWallet) Perform(ctx context.Context, writer storage.TxWriter) error {
	if a.InitialBalance.IsNegative() {
		return fmt.Errorf("initial balance %v: %w", a.InitialBalance, core.ErrInvalidAmount)
	}
	if _, err := writer.Currencies().FindByID(ctx, a.CurrencyID); err != nil {
		return err
	}

	id, err := writer.Wallets().Insert(ctx, &wallet.WalletCreate{
		Name:           a.Name,
		UserID:         a.UserID,
		CurrencyID:     a.CurrencyID,
		InitialBalance: core.RoundMoney(a.InitialBalance),
		Savings:        a.Savings,
	})
	if err != nil {
		return err
	}

	a.WalletID = id
	return nil
}
