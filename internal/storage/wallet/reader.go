package wallet

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/scan"

	"github.com/BojanNestorovic/WalletApp/internal/core"
)

var columns = []any{
	"id", "name", "user_id", "currency_id",
	"initial_balance", "current_balance", "savings", "archived", "created_at",
}

type SQLReader struct {
	exec bob.Executor
}

func NewReader(exec bob.Executor) *SQLReader {
	return &SQLReader{exec: exec}
}

func (r *SQLReader) FindByID(ctx context.Context, id uuid.UUID) (*Wallet, error) {
	q := psql.Select(
		sm.Columns(columns...),
		sm.From("wallets"),
		sm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)
	row, err := bob.One(ctx, r.exec, q, scan.StructMapper[Wallet]())
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("wallet %v: %w", id, core.ErrNotFound)
		}
		return nil, err
	}
	return &row, nil
}

func (r *SQLReader) ListByUser(ctx context.Context, userID uuid.UUID) ([]*Wallet, error) {
	q := psql.Select(
		sm.Columns(columns...),
		sm.From("wallets"),
		sm.Where(psql.Quote("user_id").EQ(psql.Arg(userID))),
		sm.OrderBy("name").Asc(),
		sm.OrderBy("id").Asc(),
	)
	rows, err := bob.All(ctx, r.exec, q, scan.StructMapper[Wallet]())
	if err != nil {
		return nil, err
	}
	return toPointers(rows), nil
}

func (r *SQLReader) ListSavingsByUser(ctx context.Context, userID uuid.UUID) ([]*Wallet, error) {
	q := psql.Select(
		sm.Columns(columns...),
		sm.From("wallets"),
		sm.Where(psql.Quote("user_id").EQ(psql.Arg(userID))),
		sm.Where(psql.Quote("savings").EQ(psql.Arg(true))),
		sm.OrderBy("name").Asc(),
		sm.OrderBy("id").Asc(),
	)
	rows, err := bob.All(ctx, r.exec, q, scan.StructMapper[Wallet]())
	if err != nil {
		return nil, err
	}
	return toPointers(rows), nil
}

// TotalBalanceByUser sums current balances across all of the user's wallets,
// in wallet currency units without conversion.
func (r *SQLReader) TotalBalanceByUser(ctx context.Context, userID uuid.UUID) (decimal.Decimal, error) {
	q := psql.Select(
		sm.Columns(psql.Raw("coalesce(sum(current_balance), 0)")),
		sm.From("wallets"),
		sm.Where(psql.Quote("user_id").EQ(psql.Arg(userID))),
	)
	total, err := bob.One(ctx, r.exec, q, scan.SingleColumnMapper[decimal.Decimal])
	if err != nil {
		return decimal.Zero, err
	}
	return total, nil
}

func toPointers(rows []Wallet) []*Wallet {
	result := make([]*Wallet, len(rows))
	for i := range rows {
		result[i] = &rows[i]
	}
	return result
}
