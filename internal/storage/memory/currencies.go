package memory

import (
	"context"
	"fmt"
	"sort"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/BojanNestorovic/WalletApp/internal/core"
	"github.com/BojanNestorovic/WalletApp/internal/storage/currency"
)

type currencyTable struct {
	store *Store
	draft *state
}

var _ currency.Writer = (*currencyTable)(nil)

func (t *currencyTable) FindByID(ctx context.Context, id uuid.UUID) (*currency.Currency, error) {
	var found *currency.Currency
	viewState(t.store, t.draft, func(s *state) {
		if row, ok := s.currencies[id]; ok {
			found = &row
		}
	})
	if found == nil {
		return nil, fmt.Errorf("currency %v: %w", id, core.ErrNotFound)
	}
	return found, nil
}

func (t *currencyTable) FindByName(ctx context.Context, name string) (*currency.Currency, error) {
	var found *currency.Currency
	viewState(t.store, t.draft, func(s *state) {
		for _, row := range s.currencies {
			if row.Name == name {
				c := row
				found = &c
				return
			}
		}
	})
	if found == nil {
		return nil, fmt.Errorf("currency %q: %w", name, core.ErrNotFound)
	}
	return found, nil
}

func (t *currencyTable) List(ctx context.Context) ([]*currency.Currency, error) {
	var result []*currency.Currency
	viewState(t.store, t.draft, func(s *state) {
		for _, c := range s.currencies {
			row := c
			result = append(result, &row)
		}
	})
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result, nil
}

func (t *currencyTable) CountWallets(ctx context.Context, id uuid.UUID) (int64, error) {
	var count int64
	viewState(t.store, t.draft, func(s *state) {
		for _, w := range s.wallets {
			if w.CurrencyID == id {
				count++
			}
		}
	})
	return count, nil
}

func (t *currencyTable) Insert(ctx context.Context, create *currency.CurrencyCreate) (uuid.UUID, error) {
	id := uuid.Must(uuid.NewV4())
	t.draft.currencies[id] = currency.Currency{
		ID:         id,
		Name:       create.Name,
		ValueToEur: create.ValueToEur,
	}
	return id, nil
}

func (t *currencyTable) UpdateRate(ctx context.Context, id uuid.UUID, valueToEur decimal.Decimal) error {
	row, ok := t.draft.currencies[id]
	if !ok {
		return fmt.Errorf("currency %v: %w", id, core.ErrNotFound)
	}
	row.ValueToEur = valueToEur
	t.draft.currencies[id] = row
	return nil
}

func (t *currencyTable) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := t.draft.currencies[id]; !ok {
		return fmt.Errorf("currency %v: %w", id, core.ErrNotFound)
	}
	delete(t.draft.currencies, id)
	return nil
}
