package wallet

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// Wallet represents a wallet record. A wallet holds a balance in exactly one
// currency, fixed at creation.
type Wallet struct {
	ID             uuid.UUID       `db:"id"`
	Name           string          `db:"name"`
	UserID         uuid.UUID       `db:"user_id"`
	CurrencyID     uuid.UUID       `db:"currency_id"`
	InitialBalance decimal.Decimal `db:"initial_balance"`
	CurrentBalance decimal.Decimal `db:"current_balance"`
	Savings        bool            `db:"savings"`
	Archived       bool            `db:"archived"`
	CreatedAt      time.Time       `db:"created_at"`
}

// WalletCreate is the input for creating a new wallet. The current balance
// starts equal to the initial balance.
type WalletCreate struct {
	Name           string
	UserID         uuid.UUID
	CurrencyID     uuid.UUID
	InitialBalance decimal.Decimal
	Savings        bool
}

// WalletUpdate carries the only mutable wallet fields. Balances and the
// currency are immutable after creation.
type WalletUpdate struct {
	Name    string
	Savings bool
}

// Reader defines read-only wallet storage operations.
type Reader interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Wallet, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*Wallet, error)
	ListSavingsByUser(ctx context.Context, userID uuid.UUID) ([]*Wallet, error)
	TotalBalanceByUser(ctx context.Context, userID uuid.UUID) (decimal.Decimal, error)
}

// Writer is the sole authority over current_balance. Every balance change in
// the system funnels through ApplyDelta or ApplyPairedDelta; no other code
// writes the column.
type Writer interface {
	Reader

	Insert(ctx context.Context, create *WalletCreate) (uuid.UUID, error)
	Update(ctx context.Context, id uuid.UUID, update *WalletUpdate) error
	SetArchived(ctx context.Context, id uuid.UUID, archived bool) error
	Delete(ctx context.Context, id uuid.UUID) error

	// ApplyDelta adds the signed amount to the wallet balance and returns
	// the new balance. Fails with core.ErrNotFound for a missing wallet and
	// core.ErrArchived for an archived one.
	ApplyDelta(ctx context.Context, id uuid.UUID, delta decimal.Decimal) (decimal.Decimal, error)

	// ApplyPairedDelta applies two deltas as one unit. It only exists on
	// the transaction-bound writer, so a failure on the second wallet rolls
	// back the first when the enclosing unit aborts.
	ApplyPairedDelta(ctx context.Context, idA uuid.UUID, deltaA decimal.Decimal, idB uuid.UUID, deltaB decimal.Decimal) error
}
