package memory

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/BojanNestorovic/WalletApp/internal/core"
	"github.com/BojanNestorovic/WalletApp/internal/storage/transaction"
)

type transactionTable struct {
	store *Store
	draft *state
}

var _ transaction.Writer = (*transactionTable)(nil)

func (t *transactionTable) FindByID(ctx context.Context, id uuid.UUID) (*transaction.Transaction, error) {
	var found *transaction.Transaction
	viewState(t.store, t.draft, func(s *state) {
		if row, ok := s.transactions[id]; ok {
			found = &row
		}
	})
	if found == nil {
		return nil, fmt.Errorf("transaction %v: %w", id, core.ErrNotFound)
	}
	return found, nil
}

func (t *transactionTable) List(ctx context.Context, filter *transaction.Filter) ([]*transaction.Transaction, error) {
	var result []*transaction.Transaction
	viewState(t.store, t.draft, func(s *state) {
		for _, tx := range s.transactions {
			if matches(tx, filter) {
				row := tx
				result = append(result, &row)
			}
		}
	})
	sort.Slice(result, func(i, j int) bool {
		if !result[i].Date.Equal(result[j].Date) {
			return result[i].Date.After(result[j].Date)
		}
		return result[i].ID.String() > result[j].ID.String()
	})
	if filter != nil {
		if filter.Offset > 0 {
			if filter.Offset >= len(result) {
				return nil, nil
			}
			result = result[filter.Offset:]
		}
		if filter.Limit > 0 && len(result) > filter.Limit {
			result = result[:filter.Limit]
		}
	}
	return result, nil
}

func (t *transactionTable) CountByWallet(ctx context.Context, walletID uuid.UUID) (int64, error) {
	var count int64
	viewState(t.store, t.draft, func(s *state) {
		for _, tx := range s.transactions {
			if tx.WalletID == walletID {
				count++
			}
		}
	})
	return count, nil
}

func (t *transactionTable) Insert(ctx context.Context, create *transaction.TransactionCreate) (uuid.UUID, error) {
	id := uuid.Must(uuid.NewV4())
	date := create.Date
	if date.IsZero() {
		date = time.Now()
	}
	t.draft.transactions[id] = transaction.Transaction{
		ID:         id,
		Name:       create.Name,
		Amount:     create.Amount,
		Type:       create.Type,
		WalletID:   create.WalletID,
		CategoryID: create.CategoryID,
		UserID:     create.UserID,
		Repeating:  create.Repeating,
		Frequency:  create.Frequency,
		Date:       date,
		CreatedAt:  time.Now(),
	}
	return id, nil
}

func (t *transactionTable) Update(ctx context.Context, id uuid.UUID, update *transaction.TransactionUpdate) error {
	row, ok := t.draft.transactions[id]
	if !ok {
		return fmt.Errorf("transaction %v: %w", id, core.ErrNotFound)
	}
	row.Name = update.Name
	row.Amount = update.Amount
	row.Type = update.Type
	row.CategoryID = update.CategoryID
	row.Repeating = update.Repeating
	row.Frequency = update.Frequency
	t.draft.transactions[id] = row
	return nil
}

func (t *transactionTable) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := t.draft.transactions[id]; !ok {
		return fmt.Errorf("transaction %v: %w", id, core.ErrNotFound)
	}
	delete(t.draft.transactions, id)
	return nil
}

func matches(tx transaction.Transaction, filter *transaction.Filter) bool {
	if filter == nil {
		return true
	}
	if filter.UserID != nil && tx.UserID != *filter.UserID {
		return false
	}
	if filter.WalletID != nil && tx.WalletID != *filter.WalletID {
		return false
	}
	if filter.From != nil && tx.Date.Before(*filter.From) {
		return false
	}
	if filter.To != nil && tx.Date.After(*filter.To) {
		return false
	}
	return true
}
