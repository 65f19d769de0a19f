package memory

import (
	"context"
	"fmt"
	"sort"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/BojanNestorovic/WalletApp/internal/core"
	"github.com/BojanNestorovic/WalletApp/internal/storage/wallet"
)

type walletTable struct {
	store *Store
	draft *state
}

var _ wallet.Writer = (*walletTable)(nil)

func (t *walletTable) FindByID(ctx context.Context, id uuid.UUID) (*wallet.Wallet, error) {
	var found *wallet.Wallet
	viewState(t.store, t.draft, func(s *state) {
		if row, ok := s.wallets[id]; ok {
			found = &row
		}
	})
	if found == nil {
		return nil, fmt.Errorf("wallet %v: %w", id, core.ErrNotFound)
	}
	return found, nil
}

func (t *walletTable) ListByUser(ctx context.Context, userID uuid.UUID) ([]*wallet.Wallet, error) {
	return t.listWhere(func(w wallet.Wallet) bool { return w.UserID == userID }), nil
}

func (t *walletTable) ListSavingsByUser(ctx context.Context, userID uuid.UUID) ([]*wallet.Wallet, error) {
	return t.listWhere(func(w wallet.Wallet) bool { return w.UserID == userID && w.Savings }), nil
}

func (t *walletTable) TotalBalanceByUser(ctx context.Context, userID uuid.UUID) (decimal.Decimal, error) {
	total := decimal.Zero
	viewState(t.store, t.draft, func(s *state) {
		for _, w := range s.wallets {
			if w.UserID == userID {
				total = total.Add(w.CurrentBalance)
			}
		}
	})
	return total, nil
}

func (t *walletTable) Insert(ctx context.Context, create *wallet.WalletCreate) (uuid.UUID, error) {
	id := uuid.Must(uuid.NewV4())
	t.draft.wallets[id] = wallet.Wallet{
		ID:             id,
		Name:           create.Name,
		UserID:         create.UserID,
		CurrencyID:     create.CurrencyID,
		InitialBalance: create.InitialBalance,
		CurrentBalance: create.InitialBalance,
		Savings:        create.Savings,
	}
	return id, nil
}

func (t *walletTable) Update(ctx context.Context, id uuid.UUID, update *wallet.WalletUpdate) error {
	row, ok := t.draft.wallets[id]
	if !ok {
		return fmt.Errorf("wallet %v: %w", id, core.ErrNotFound)
	}
	row.Name = update.Name
	row.Savings = update.Savings
	t.draft.wallets[id] = row
	return nil
}

func (t *walletTable) SetArchived(ctx context.Context, id uuid.UUID, archived bool) error {
	row, ok := t.draft.wallets[id]
	if !ok {
		return fmt.Errorf("wallet %v: %w", id, core.ErrNotFound)
	}
	row.Archived = archived
	t.draft.wallets[id] = row
	return nil
}

func (t *walletTable) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := t.draft.wallets[id]; !ok {
		return fmt.Errorf("wallet %v: %w", id, core.ErrNotFound)
	}
	delete(t.draft.wallets, id)
	return nil
}

func (t *walletTable) ApplyDelta(ctx context.Context, id uuid.UUID, delta decimal.Decimal) (decimal.Decimal, error) {
	row, ok := t.draft.wallets[id]
	if !ok {
		return decimal.Zero, fmt.Errorf("wallet %v: %w", id, core.ErrNotFound)
	}
	if row.Archived {
		return decimal.Zero, fmt.Errorf("wallet %v: %w", id, core.ErrArchived)
	}
	row.CurrentBalance = core.RoundMoney(row.CurrentBalance.Add(delta))
	t.draft.wallets[id] = row
	return row.CurrentBalance, nil
}

func (t *walletTable) ApplyPairedDelta(ctx context.Context, idA uuid.UUID, deltaA decimal.Decimal, idB uuid.UUID, deltaB decimal.Decimal) error {
	if _, err := t.ApplyDelta(ctx, idA, deltaA); err != nil {
		return err
	}
	if _, err := t.ApplyDelta(ctx, idB, deltaB); err != nil {
		// The write unit's draft is dropped on rollback, reverting leg one.
		return fmt.Errorf("paired delta second leg: %w", err)
	}
	return nil
}

func (t *walletTable) listWhere(keep func(wallet.Wallet) bool) []*wallet.Wallet {
	var result []*wallet.Wallet
	viewState(t.store, t.draft, func(s *state) {
		for _, w := range s.wallets {
			if keep(w) {
				row := w
				result = append(result, &row)
			}
		}
	})
	sort.Slice(result, func(i, j int) bool {
		if result[i].Name != result[j].Name {
			return result[i].Name < result[j].Name
		}
		return result[i].ID.String() < result[j].ID.String()
	})
	return result
}
