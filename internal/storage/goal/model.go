package goal

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// Goal represents a savings goal record. CurrentAmount is a synced snapshot
// of the linked wallet's balance, never an independently accumulated total.
type Goal struct {
	ID            uuid.UUID       `db:"id"`
	Name          string          `db:"name"`
	TargetAmount  decimal.Decimal `db:"target_amount"`
	CurrentAmount decimal.Decimal `db:"current_amount"`
	TargetDate    time.Time       `db:"target_date"`
	WalletID      uuid.UUID       `db:"wallet_id"`
	UserID        uuid.UUID       `db:"user_id"`
	Completed     bool            `db:"completed"`
	CreatedAt     time.Time       `db:"created_at"`
}

// GoalCreate is the input for creating a new savings goal.
type GoalCreate struct {
	Name          string
	TargetAmount  decimal.Decimal
	CurrentAmount decimal.Decimal
	TargetDate    time.Time
	WalletID      uuid.UUID
	UserID        uuid.UUID
	Completed     bool
}

// GoalUpdate carries the mutable goal fields.
type GoalUpdate struct {
	Name         string
	TargetAmount decimal.Decimal
	TargetDate   time.Time
}

// Reader defines read-only goal storage operations.
type Reader interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Goal, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*Goal, error)
	ListByUserCompleted(ctx context.Context, userID uuid.UUID, completed bool) ([]*Goal, error)
	ListByWallet(ctx context.Context, walletID uuid.UUID) ([]*Goal, error)
}

// Writer defines mutating goal storage operations.
type Writer interface {
	Reader

	Insert(ctx context.Context, create *GoalCreate) (uuid.UUID, error)
	Update(ctx context.Context, id uuid.UUID, update *GoalUpdate) error
	// SetProgress records a fresh wallet-balance snapshot and the latched
	// completed flag.
	SetProgress(ctx context.Context, id uuid.UUID, current decimal.Decimal, completed bool) error
	Delete(ctx context.Context, id uuid.UUID) error
}
