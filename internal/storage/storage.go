package storage

import (
	"context"
	"database/sql"

	_ "github.com/lib/pq"
	"github.com/stephenafamo/bob"

	"github.com/BojanNestorovic/WalletApp/internal/config"
	"github.com/BojanNestorovic/WalletApp/internal/storage/category"
	"github.com/BojanNestorovic/WalletApp/internal/storage/currency"
	"github.com/BojanNestorovic/WalletApp/internal/storage/goal"
	"github.com/BojanNestorovic/WalletApp/internal/storage/transaction"
	"github.com/BojanNestorovic/WalletApp/internal/storage/wallet"
)

// ReadStore exposes the read side of the ledger's persistence. Reads run on
// the shared connection pool and observe committed state only.
type ReadStore interface {
	Wallets() wallet.Reader
	Transactions() transaction.Reader
	Goals() goal.Reader
	Currencies() currency.Reader
	Categories() category.Reader
}

// TxWriter is one atomic write unit. Everything performed through it becomes
// visible on Commit or disappears on Rollback; there is no way to apply half
// of it.
type TxWriter interface {
	Wallets() wallet.Writer
	Transactions() transaction.Writer
	Goals() goal.Writer
	Currencies() currency.Writer
	Categories() category.Reader

	Commit() error
	Rollback() error
}

// Store is the full persistence surface the ledger runs against.
type Store interface {
	ReadStore

	// Write opens a new atomic write unit.
	Write(ctx context.Context) (TxWriter, error)
}

// Storage is the postgres-backed Store.
type Storage struct {
	DB  *sql.DB
	bdb bob.DB
	*Reader
}

var _ Store = (*Storage)(nil)

func NewStorage(env *config.Config) (*Storage, error) {
	db, err := sql.Open("postgres", env.ConnectionString())
	if err != nil {
		return nil, err
	}

	bdb := bob.NewDB(db)
	return &Storage{
		DB:     db,
		bdb:    bdb,
		Reader: NewReader(bdb),
	}, nil
}

// Write begins a database transaction and wraps it in a Writer.
func (s *Storage) Write(ctx context.Context) (TxWriter, error) {
	tx, err := s.bdb.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	return NewWriter(tx), nil
}
