package transaction

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/BojanNestorovic/WalletApp/internal/operator/actions"
	"github.com/BojanNestorovic/WalletApp/internal/service"
)

// Transaction is the API response model for a transaction.
// It is used only for responses, not for request bodies.
type Transaction struct {
	ID         string `json:"id" doc:"Transaction UUID"`
	Name       string `json:"name" doc:"Name of the transaction"`
	Amount     string `json:"amount" doc:"Decimal amount, always positive"`
	Type       string `json:"type" doc:"INCOME or EXPENSE"`
	WalletID   string `json:"walletID" doc:"Wallet UUID"`
	CategoryID string `json:"categoryID" doc:"Category UUID"`
	Repeating  bool   `json:"repeating" doc:"Repeating flag"`
	Frequency  string `json:"frequency,omitempty" doc:"WEEKLY, MONTHLY, QUARTERLY or YEARLY"`
	Date       string `json:"date" doc:"RFC3339 transaction date"`
	CreatedAt  string `json:"createdAt" doc:"RFC3339 creation time"`
}

func transactionFromService(t service.Transaction) Transaction {
	return Transaction{
		ID:         t.ID.String(),
		Name:       t.Name,
		Amount:     t.Amount.String(),
		Type:       t.Type,
		WalletID:   t.WalletID.String(),
		CategoryID: t.CategoryID.String(),
		Repeating:  t.Repeating,
		Frequency:  t.Frequency,
		Date:       t.Date.Format(time.RFC3339),
		CreatedAt:  t.CreatedAt.Format(time.RFC3339),
	}
}

// actionProcessor is the interface for running ledger actions.
type actionProcessor interface {
	Process(ctx context.Context, action actions.IAction) error
}

// transactionGetter is the interface for reading a single transaction.
type transactionGetter interface {
	GetTransaction(ctx context.Context, userID, id uuid.UUID) (*service.Transaction, error)
}
