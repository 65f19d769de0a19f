package currency

import (
	"context"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// PivotName is the name of the pivot currency all conversions route through.
// Its rate is fixed at 1.0 and it can never be deleted.
const PivotName = "EUR"

// Currency represents a currency record. ValueToEur is the value of one unit
// of this currency expressed in EUR.
type Currency struct {
	ID         uuid.UUID       `db:"id"`
	Name       string          `db:"name"`
	ValueToEur decimal.Decimal `db:"value_to_eur"`
}

// CurrencyCreate is the input for creating a new currency.
type CurrencyCreate struct {
	Name       string
	ValueToEur decimal.Decimal
}

// Reader defines read-only currency storage operations. The ledger consults
// rates through here for the duration of a single transfer and never caches
// them.
type Reader interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Currency, error)
	FindByName(ctx context.Context, name string) (*Currency, error)
	List(ctx context.Context) ([]*Currency, error)
	CountWallets(ctx context.Context, id uuid.UUID) (int64, error)
}

// Writer defines the admin-side mutations of the currency catalog.
type Writer interface {
	Reader

	Insert(ctx context.Context, create *CurrencyCreate) (uuid.UUID, error)
	UpdateRate(ctx context.Context, id uuid.UUID, valueToEur decimal.Decimal) error
	Delete(ctx context.Context, id uuid.UUID) error
}
