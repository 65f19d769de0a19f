package transaction

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// Type distinguishes money flowing into a wallet from money flowing out.
type Type string

const (
	TypeIncome  Type = "INCOME"
	TypeExpense Type = "EXPENSE"
)

// Valid reports whether t is one of the two known transaction types.
func (t Type) Valid() bool {
	return t == TypeIncome || t == TypeExpense
}

// SignedAmount converts the always-positive stored amount into the signed
// delta the wallet balance moves by: positive for income, negative for
// expense.
func (t Type) SignedAmount(amount decimal.Decimal) decimal.Decimal {
	if t == TypeExpense {
		return amount.Neg()
	}
	return amount
}

// Frequency is how often a repeating transaction recurs.
type Frequency string

const (
	FrequencyNone      Frequency = ""
	FrequencyWeekly    Frequency = "WEEKLY"
	FrequencyMonthly   Frequency = "MONTHLY"
	FrequencyQuarterly Frequency = "QUARTERLY"
	FrequencyYearly    Frequency = "YEARLY"
)

func (f Frequency) Valid() bool {
	switch f {
	case FrequencyNone, FrequencyWeekly, FrequencyMonthly, FrequencyQuarterly, FrequencyYearly:
		return true
	}
	return false
}

// Transaction represents a transaction record. Amount and type are immutable
// once posted; changing them goes through the ledger's update operation,
// which reverts the old effect and posts the new one as a single unit.
type Transaction struct {
	ID        uuid.UUID       `db:"id"`
	Name      string          `db:"name"`
	Amount    decimal.Decimal `db:"amount"`
	Type      Type            `db:"type"`
	WalletID  uuid.UUID       `db:"wallet_id"`
	CategoryID uuid.UUID      `db:"category_id"`
	UserID    uuid.UUID       `db:"user_id"`
	Repeating bool            `db:"repeating"`
	Frequency Frequency       `db:"frequency"`
	Date      time.Time       `db:"date_of_transaction"`
	CreatedAt time.Time       `db:"created_at"`
}

// TransactionCreate is the input for posting a new transaction.
type TransactionCreate struct {
	Name       string
	Amount     decimal.Decimal
	Type       Type
	WalletID   uuid.UUID
	CategoryID uuid.UUID
	UserID     uuid.UUID
	Repeating  bool
	Frequency  Frequency
	Date       time.Time // defaults to now if zero
}

// TransactionUpdate carries the fields the ledger's update operation may
// change. The wallet reference is fixed for the record's lifetime.
type TransactionUpdate struct {
	Name       string
	Amount     decimal.Decimal
	Type       Type
	CategoryID uuid.UUID
	Repeating  bool
	Frequency  Frequency
}

// Filter specifies filters for listing transactions. Nil fields are ignored.
type Filter struct {
	UserID   *uuid.UUID
	WalletID *uuid.UUID
	From     *time.Time
	To       *time.Time
	Limit    int
	Offset   int
}

// Reader defines read-only transaction storage operations.
type Reader interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Transaction, error)
	List(ctx context.Context, filter *Filter) ([]*Transaction, error)
	CountByWallet(ctx context.Context, walletID uuid.UUID) (int64, error)
}

// Writer defines mutating transaction storage operations. Only ledger
// actions call these, always in the same unit as the matching balance change.
type Writer interface {
	Reader

	Insert(ctx context.Context, create *TransactionCreate) (uuid.UUID, error)
	Update(ctx context.Context, id uuid.UUID, update *TransactionUpdate) error
	Delete(ctx context.Context, id uuid.UUID) error
}
