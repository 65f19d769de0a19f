package actions

import (
	"context"
	"fmt"

	"github.com/gofrs/uuid/v5"

	"github.com/BojanNestorovic/WalletApp/internal/core"
	"github.com/BojanNestorovic/WalletApp/internal/storage"
	"github.com/BojanNestorovic/WalletApp/internal/storage/wallet"
)

// IAction is a unit of ledger work. Perform runs against a single write unit;
// the operator commits on nil and rolls back on error, so an action never
// leaves partial state behind. WalletIDs names the wallets the action touches
// so the operator can serialize actions per wallet.
type IAction interface {
	Perform(ctx context.Context, writer storage.TxWriter) error
	WalletIDs() []uuid.UUID
}

// findOwnedWallet loads a wallet under row lock and checks the caller owns it.
func findOwnedWallet(ctx context.Context, w wallet.Writer, walletID, userID uuid.UUID) (*wallet.Wallet, error) {
	found, err := w.FindByID(ctx, walletID)
	if err != nil {
		return nil, err
	}
	if found.UserID != userID {
		return nil, fmt.Errorf("wallet %v: %w", walletID, core.ErrUnauthorized)
	}
	return found, nil
}
