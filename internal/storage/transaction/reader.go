package transaction

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/gofrs/uuid/v5"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dialect"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/scan"

	"github.com/BojanNestorovic/WalletApp/internal/core"
)

var columns = []any{
	"id", "name", "amount", "type", "wallet_id", "category_id", "user_id",
	"repeating", "frequency", "date_of_transaction", "created_at",
}

type SQLReader struct {
	exec bob.Executor
}

func NewReader(exec bob.Executor) *SQLReader {
	return &SQLReader{exec: exec}
}

func (r *SQLReader) FindByID(ctx context.Context, id uuid.UUID) (*Transaction, error) {
	q := psql.Select(
		sm.Columns(columns...),
		sm.From("transactions"),
		sm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)
	row, err := bob.One(ctx, r.exec, q, scan.StructMapper[Transaction]())
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("transaction %v: %w", id, core.ErrNotFound)
		}
		return nil, err
	}
	return &row, nil
}

// List returns transactions matching the filter, newest first. Nil filter
// returns all.
func (r *SQLReader) List(ctx context.Context, filter *Filter) ([]*Transaction, error) {
	queryMods := []bob.Mod[*dialect.SelectQuery]{
		sm.Columns(columns...),
		sm.From("transactions"),
	}
	if filter != nil {
		if filter.UserID != nil {
			queryMods = append(queryMods, sm.Where(psql.Quote("user_id").EQ(psql.Arg(*filter.UserID))))
		}
		if filter.WalletID != nil {
			queryMods = append(queryMods, sm.Where(psql.Quote("wallet_id").EQ(psql.Arg(*filter.WalletID))))
		}
		if filter.From != nil {
			queryMods = append(queryMods, sm.Where(psql.Quote("date_of_transaction").GTE(psql.Arg(*filter.From))))
		}
		if filter.To != nil {
			queryMods = append(queryMods, sm.Where(psql.Quote("date_of_transaction").LTE(psql.Arg(*filter.To))))
		}
		if filter.Limit > 0 {
			queryMods = append(queryMods, sm.Limit(filter.Limit))
		}
		if filter.Offset > 0 {
			queryMods = append(queryMods, sm.Offset(filter.Offset))
		}
	}
	queryMods = append(queryMods,
		sm.OrderBy("date_of_transaction").Desc(),
		sm.OrderBy("id").Desc(),
	)

	q := psql.Select(queryMods...)
	rows, err := bob.All(ctx, r.exec, q, scan.StructMapper[Transaction]())
	if err != nil {
		return nil, err
	}
	result := make([]*Transaction, len(rows))
	for i := range rows {
		result[i] = &rows[i]
	}
	return result, nil
}

func (r *SQLReader) CountByWallet(ctx context.Context, walletID uuid.UUID) (int64, error) {
	q := psql.Select(
		sm.Columns(psql.Raw("count(*)")),
		sm.From("transactions"),
		sm.Where(psql.Quote("wallet_id").EQ(psql.Arg(walletID))),
	)
	return bob.One(ctx, r.exec, q, scan.SingleColumnMapper[int64])
}
