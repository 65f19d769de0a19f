package service

import (
	"context"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/BojanNestorovic/WalletApp/internal/storage"
	storagecurrency "github.com/BojanNestorovic/WalletApp/internal/storage/currency"
)

// Currency represents a currency in the service layer.
type Currency struct {
	ID         uuid.UUID
	Name       string
	ValueToEur decimal.Decimal
}

// CurrencyService handles currency catalog read paths.
type CurrencyService struct {
	storage storage.ReadStore
}

// NewCurrencyService creates a new CurrencyService.
func NewCurrencyService(store storage.ReadStore) *CurrencyService {
	return &CurrencyService{storage: store}
}

// GetCurrency retrieves a currency by ID.
func (s *CurrencyService) GetCurrency(ctx context.Context, id uuid.UUID) (*Currency, error) {
	row, err := s.storage.Currencies().FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	c := currencyFromStorage(row)
	return &c, nil
}

// ListCurrencies returns the whole catalog.
func (s *CurrencyService) ListCurrencies(ctx context.Context) ([]Currency, error) {
	rows, err := s.storage.Currencies().List(ctx)
	if err != nil {
		return nil, err
	}

	currencies := make([]Currency, len(rows))
	for i, row := range rows {
		currencies[i] = currencyFromStorage(row)
	}
	return currencies, nil
}

func currencyFromStorage(row *storagecurrency.Currency) Currency {
	return Currency{
		ID:         row.ID,
		Name:       row.Name,
		ValueToEur: row.ValueToEur,
	}
}
