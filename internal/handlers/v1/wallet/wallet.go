package wallet

import (
	"context"
	"time"

	"github.com/BojanNestorovic/WalletApp/internal/operator/actions"
	"github.com/BojanNestorovic/WalletApp/internal/service"
)

// Wallet is the API response model for a wallet.
type Wallet struct {
	ID             string `json:"id" doc:"Wallet UUID"`
	Name           string `json:"name" doc:"Wallet name"`
	CurrencyID     string `json:"currencyID" doc:"Currency UUID"`
	InitialBalance string `json:"initialBalance" doc:"Decimal balance at creation"`
	CurrentBalance string `json:"currentBalance" doc:"Decimal current balance"`
	Savings        bool   `json:"savings" doc:"Savings wallet flag"`
	Archived       bool   `json:"archived" doc:"Archived flag"`
	CreatedAt      string `json:"createdAt" doc:"RFC3339 creation time"`
}

func walletFromService(w service.Wallet) Wallet {
	return Wallet{
		ID:             w.ID.String(),
		Name:           w.Name,
		CurrencyID:     w.CurrencyID.String(),
		InitialBalance: w.InitialBalance.String(),
		CurrentBalance: w.CurrentBalance.String(),
		Savings:        w.Savings,
		Archived:       w.Archived,
		CreatedAt:      w.CreatedAt.Format(time.RFC3339),
	}
}

// actionProcessor is the interface for running ledger actions.
type actionProcessor interface {
	Process(ctx context.Context, action actions.IAction) error
}
