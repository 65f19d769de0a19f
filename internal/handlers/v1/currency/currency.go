package currency

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/BojanNestorovic/WalletApp/internal/operator/actions"
	"github.com/BojanNestorovic/WalletApp/internal/service"
)

// Currency is the API response model for a currency.
type Currency struct {
	ID         string `json:"id" doc:"Currency UUID"`
	Name       string `json:"name" doc:"Currency code, e.g. EUR"`
	ValueToEur string `json:"valueToEur" doc:"Value of one unit in EUR"`
}

func currencyFromService(c service.Currency) Currency {
	return Currency{
		ID:         c.ID.String(),
		Name:       c.Name,
		ValueToEur: c.ValueToEur.String(),
	}
}

// actionProcessor is the interface for running ledger actions.
type actionProcessor interface {
	Process(ctx context.Context, action actions.IAction) error
}

// currencyReader is the interface for reading the currency catalog.
type currencyReader interface {
	GetCurrency(ctx context.Context, id uuid.UUID) (*service.Currency, error)
	ListCurrencies(ctx context.Context) ([]service.Currency, error)
}
