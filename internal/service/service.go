package service

import (
	"github.com/BojanNestorovic/WalletApp/internal/storage"
)

// Service holds all business logic services. Services only read; mutations go
// through the operator.
type Service struct {
	Wallet      *WalletService
	Transaction *TransactionService
	Goal        *GoalService
	Currency    *CurrencyService
	Category    *CategoryService
}

// NewService creates a new Service with the given storage.
func NewService(store storage.ReadStore) *Service {
	return &Service{
		Wallet:      NewWalletService(store),
		Transaction: NewTransactionService(store),
		Goal:        NewGoalService(store),
		Currency:    NewCurrencyService(store),
		Category:    NewCategoryService(store),
	}
}
