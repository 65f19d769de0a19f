package service

import (
	"context"
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/BojanNestorovic/WalletApp/internal/core"
	"github.com/BojanNestorovic/WalletApp/internal/storage"
	storagetransaction "github.com/BojanNestorovic/WalletApp/internal/storage/transaction"
)

const defaultTransactionLimit = 20

// Transaction represents a transaction in the service layer.
type Transaction struct {
	ID         uuid.UUID
	Name       string
	Amount     decimal.Decimal
	Type       string
	WalletID   uuid.UUID
	CategoryID uuid.UUID
	Repeating  bool
	Frequency  string
	Date       time.Time
	CreatedAt  time.Time
}

// TransactionCursor identifies a position in a paginated result set.
type TransactionCursor struct {
	Position int
	Limit    int
}

// TransactionFilter narrows a transaction listing. Nil fields are ignored.
type TransactionFilter struct {
	WalletID *uuid.UUID
	From     *time.Time
	To       *time.Time
}

// TransactionService handles transaction read paths.
type TransactionService struct {
	storage storage.ReadStore
}

// NewTransactionService creates a new TransactionService.
func NewTransactionService(store storage.ReadStore) *TransactionService {
	return &TransactionService{storage: store}
}

// GetTransaction retrieves a transaction by ID, scoped to the user.
func (s *TransactionService) GetTransaction(ctx context.Context, userID, id uuid.UUID) (*Transaction, error) {
	row, err := s.storage.Transactions().FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if row.UserID != userID {
		return nil, fmt.Errorf("transaction %v: %w", id, core.ErrNotFound)
	}
	t := transactionFromStorage(row)
	return &t, nil
}

// ListTransactions returns a page of the user's transactions, newest first,
// using cursor pagination. When the filter names a wallet, the wallet must
// belong to the user.
func (s *TransactionService) ListTransactions(ctx context.Context, userID uuid.UUID, filter *TransactionFilter, cursor *TransactionCursor) ([]Transaction, *TransactionCursor, error) {
	limit := defaultTransactionLimit
	offset := 0
	if cursor != nil {
		limit = cursor.Limit
		offset = cursor.Position
	}

	storageFilter := &storagetransaction.Filter{
		UserID: &userID,
		Limit:  limit + 1,
		Offset: offset,
	}
	if filter != nil {
		if filter.WalletID != nil {
			w, err := s.storage.Wallets().FindByID(ctx, *filter.WalletID)
			if err != nil {
				return nil, nil, err
			}
			if w.UserID != userID {
				return nil, nil, fmt.Errorf("wallet %v: %w", w.ID, core.ErrNotFound)
			}
		}
		storageFilter.WalletID = filter.WalletID
		storageFilter.From = filter.From
		storageFilter.To = filter.To
	}

	rows, err := s.storage.Transactions().List(ctx, storageFilter)
	if err != nil {
		return nil, nil, err
	}

	var nextCursor *TransactionCursor
	if len(rows) > limit {
		rows = rows[:limit]
		nextCursor = &TransactionCursor{
			Position: offset + limit,
			Limit:    limit,
		}
	}

	transactions := make([]Transaction, len(rows))
	for i, row := range rows {
		transactions[i] = transactionFromStorage(row)
	}

	return transactions, nextCursor, nil
}

func transactionFromStorage(row *storagetransaction.Transaction) Transaction {
	return Transaction{
		ID:         row.ID,
		Name:       row.Name,
		Amount:     row.Amount,
		Type:       string(row.Type),
		WalletID:   row.WalletID,
		CategoryID: row.CategoryID,
		Repeating:  row.Repeating,
		Frequency:  string(row.Frequency),
		Date:       row.Date,
		CreatedAt:  row.CreatedAt,
	}
}
