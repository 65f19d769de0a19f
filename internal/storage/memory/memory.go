// Package memory is an in-memory implementation of storage.Store. It backs
// the ledger unit tests and the "memory" storage backend for local
// development. Write units clone the committed state and swap it back in on
// Commit, so rollback semantics match the database-backed store.
package memory

import (
	"context"
	"sync"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/BojanNestorovic/WalletApp/internal/storage"
	"github.com/BojanNestorovic/WalletApp/internal/storage/category"
	"github.com/BojanNestorovic/WalletApp/internal/storage/currency"
	"github.com/BojanNestorovic/WalletApp/internal/storage/goal"
	"github.com/BojanNestorovic/WalletApp/internal/storage/transaction"
	"github.com/BojanNestorovic/WalletApp/internal/storage/wallet"
)

type state struct {
	wallets      map[uuid.UUID]wallet.Wallet
	transactions map[uuid.UUID]transaction.Transaction
	goals        map[uuid.UUID]goal.Goal
	currencies   map[uuid.UUID]currency.Currency
	categories   map[uuid.UUID]category.Category
}

func newState() *state {
	return &state{
		wallets:      make(map[uuid.UUID]wallet.Wallet),
		transactions: make(map[uuid.UUID]transaction.Transaction),
		goals:        make(map[uuid.UUID]goal.Goal),
		currencies:   make(map[uuid.UUID]currency.Currency),
		categories:   make(map[uuid.UUID]category.Category),
	}
}

func (s *state) clone() *state {
	c := newState()
	for k, v := range s.wallets {
		c.wallets[k] = v
	}
	for k, v := range s.transactions {
		c.transactions[k] = v
	}
	for k, v := range s.goals {
		c.goals[k] = v
	}
	for k, v := range s.currencies {
		c.currencies[k] = v
	}
	for k, v := range s.categories {
		c.categories[k] = v
	}
	return c
}

// Store is the in-memory storage.Store.
type Store struct {
	mu    sync.RWMutex // guards committed
	wryMu sync.Mutex   // serializes write units, like a single-writer database
	committed *state
}

var _ storage.Store = (*Store)(nil)

func NewStore() *Store {
	return &Store{committed: newState()}
}

func (s *Store) Wallets() wallet.Reader           { return &walletTable{store: s} }
func (s *Store) Transactions() transaction.Reader { return &transactionTable{store: s} }
func (s *Store) Goals() goal.Reader               { return &goalTable{store: s} }
func (s *Store) Currencies() currency.Reader      { return &currencyTable{store: s} }
func (s *Store) Categories() category.Reader      { return &categoryTable{store: s} }

// Write opens a write unit over a clone of the committed state. The clone is
// swapped in on Commit; Rollback just drops it.
func (s *Store) Write(ctx context.Context) (storage.TxWriter, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.wryMu.Lock()

	s.mu.RLock()
	draft := s.committed.clone()
	s.mu.RUnlock()

	return &writer{store: s, draft: draft}, nil
}

// SeedDefaults inserts the pivot currency and the predefined categories the
// migrations would normally seed. Used by the memory backend and tests.
func (s *Store) SeedDefaults() (eurID, transferCategoryID uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	eurID = uuid.Must(uuid.NewV4())
	s.committed.currencies[eurID] = currency.Currency{
		ID:         eurID,
		Name:       currency.PivotName,
		ValueToEur: decimal.NewFromInt(1),
	}

	transferCategoryID = uuid.Must(uuid.NewV4())
	s.committed.categories[transferCategoryID] = category.Category{
		ID:         transferCategoryID,
		Name:       category.TransferName,
		Predefined: true,
	}
	return eurID, transferCategoryID
}

type writer struct {
	store *Store
	draft *state
	done  bool
}

var _ storage.TxWriter = (*writer)(nil)

func (w *writer) Wallets() wallet.Writer           { return &walletTable{draft: w.draft} }
func (w *writer) Transactions() transaction.Writer { return &transactionTable{draft: w.draft} }
func (w *writer) Goals() goal.Writer               { return &goalTable{draft: w.draft} }
func (w *writer) Currencies() currency.Writer      { return &currencyTable{draft: w.draft} }
func (w *writer) Categories() category.Reader      { return &categoryTable{draft: w.draft} }

func (w *writer) Commit() error {
	if w.done {
		return nil
	}
	w.done = true

	w.store.mu.Lock()
	w.store.committed = w.draft
	w.store.mu.Unlock()

	w.store.wryMu.Unlock()
	return nil
}

func (w *writer) Rollback() error {
	if w.done {
		return nil
	}
	w.done = true
	w.store.wryMu.Unlock()
	return nil
}

// view resolves the state a table reads: the write unit's draft when bound
// to one, otherwise the committed state under the read lock.
func viewState(store *Store, draft *state, read func(*state)) {
	if draft != nil {
		read(draft)
		return
	}
	store.mu.RLock()
	defer store.mu.RUnlock()
	read(store.committed)
}
