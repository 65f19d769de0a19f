package service

import (
	"context"
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/BojanNestorovic/WalletApp/internal/core"
	"github.com/BojanNestorovic/WalletApp/internal/storage"
	storagewallet "github.com/BojanNestorovic/WalletApp/internal/storage/wallet"
)

// Wallet represents a wallet in the service layer.
type Wallet struct {
	ID             uuid.UUID
	Name           string
	CurrencyID     uuid.UUID
	InitialBalance decimal.Decimal
	CurrentBalance decimal.Decimal
	Savings        bool
	Archived       bool
	CreatedAt      time.Time
}

// WalletService handles wallet read paths.
type WalletService struct {
	storage storage.ReadStore
}

// NewWalletService creates a new WalletService.
func NewWalletService(store storage.ReadStore) *WalletService {
	return &WalletService{storage: store}
}

// GetWallet retrieves a wallet by ID. Wallets of other users read as not
// found rather than unauthorized, so ids cannot be probed.
func (s *WalletService) GetWallet(ctx context.Context, userID, id uuid.UUID) (*Wallet, error) {
	row, err := s.storage.Wallets().FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if row.UserID != userID {
		return nil, fmt.Errorf("wallet %v: %w", id, core.ErrNotFound)
	}
	w := walletFromStorage(row)
	return &w, nil
}

// ListWallets returns every wallet of the user.
func (s *WalletService) ListWallets(ctx context.Context, userID uuid.UUID) ([]Wallet, error) {
	rows, err := s.storage.Wallets().ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return walletsFromStorage(rows), nil
}

// ListSavingsWallets returns the user's wallets flagged as savings.
func (s *WalletService) ListSavingsWallets(ctx context.Context, userID uuid.UUID) ([]Wallet, error) {
	rows, err := s.storage.Wallets().ListSavingsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return walletsFromStorage(rows), nil
}

// TotalBalance sums the current balances of the user's wallets. Balances are
// summed as stored, without currency conversion.
func (s *WalletService) TotalBalance(ctx context.Context, userID uuid.UUID) (decimal.Decimal, error) {
	return s.storage.Wallets().TotalBalanceByUser(ctx, userID)
}

func walletFromStorage(row *storagewallet.Wallet) Wallet {
	return Wallet{
		ID:             row.ID,
		Name:           row.Name,
		CurrencyID:     row.CurrencyID,
		InitialBalance: row.InitialBalance,
		CurrentBalance: row.CurrentBalance,
		Savings:        row.Savings,
		Archived:       row.Archived,
		CreatedAt:      row.CreatedAt,
	}
}

func walletsFromStorage(rows []*storagewallet.Wallet) []Wallet {
	wallets := make([]Wallet, len(rows))
	for i, row := range rows {
		wallets[i] = walletFromStorage(row)
	}
	return wallets
}
