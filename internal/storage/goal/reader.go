package goal

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/gofrs/uuid/v5"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/scan"

	"github.com/BojanNestorovic/WalletApp/internal/core"
)

var columns = []any{
	"id", "name", "target_amount", "current_amount", "target_date",
	"wallet_id", "user_id", "completed", "created_at",
}

type SQLReader struct {
	exec bob.Executor
}

func NewReader(exec bob.Executor) *SQLReader {
	return &SQLReader{exec: exec}
}

func (r *SQLReader) FindByID(ctx context.Context, id uuid.UUID) (*Goal, error) {
	q := psql.Select(
		sm.Columns(columns...),
		sm.From("savings_goals"),
		sm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)
	row, err := bob.One(ctx, r.exec, q, scan.StructMapper[Goal]())
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("savings goal %v: %w", id, core.ErrNotFound)
		}
		return nil, err
	}
	return &row, nil
}

func (r *SQLReader) ListByUser(ctx context.Context, userID uuid.UUID) ([]*Goal, error) {
	q := psql.Select(
		sm.Columns(columns...),
		sm.From("savings_goals"),
		sm.Where(psql.Quote("user_id").EQ(psql.Arg(userID))),
		sm.OrderBy("target_date").Asc(),
		sm.OrderBy("id").Asc(),
	)
	return r.list(ctx, q)
}

func (r *SQLReader) ListByUserCompleted(ctx context.Context, userID uuid.UUID, completed bool) ([]*Goal, error) {
	q := psql.Select(
		sm.Columns(columns...),
		sm.From("savings_goals"),
		sm.Where(psql.Quote("user_id").EQ(psql.Arg(userID))),
		sm.Where(psql.Quote("completed").EQ(psql.Arg(completed))),
		sm.OrderBy("target_date").Asc(),
		sm.OrderBy("id").Asc(),
	)
	return r.list(ctx, q)
}

func (r *SQLReader) ListByWallet(ctx context.Context, walletID uuid.UUID) ([]*Goal, error) {
	q := psql.Select(
		sm.Columns(columns...),
		sm.From("savings_goals"),
		sm.Where(psql.Quote("wallet_id").EQ(psql.Arg(walletID))),
		sm.OrderBy("target_date").Asc(),
		sm.OrderBy("id").Asc(),
	)
	return r.list(ctx, q)
}

func (r *SQLReader) list(ctx context.Context, q bob.Query) ([]*Goal, error) {
	rows, err := bob.All(ctx, r.exec, q, scan.StructMapper[Goal]())
	if err != nil {
		return nil, err
	}
	result := make([]*Goal, len(rows))
	for i := range rows {
		result[i] = &rows[i]
	}
	return result, nil
}
