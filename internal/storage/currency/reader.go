package currency

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

var columns = []any{"id", "name", "value_to_eur"}

type SQLReader struct {
	exec bob.Executor
}

func NewReader(exec bob.Executor) *SQLReader {
	return &SQLReader{exec: exec}
}

func (r *SQLReader) FindByID(ctx context.Context, id uuid.UUID) (*Currency, error) {
	q := psql.Select(
		sm.Columns(columns...),
		sm.From("currencies"),
		sm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)
	row, err := bob.One(ctx, r.exec, q, scan.StructMapper[Currency]())
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("currency %v: %w", id, core.ErrNotFound)
		}
		return nil, err
	}
	return &row, nil
}

func (r *SQLReader) FindByName(ctx context.Context, name string) (*Currency, error) {
	q := psql.Select(
		sm.Columns(columns...),
		sm.From("currencies"),
		sm.Where(psql.Quote("name").EQ(psql.Arg(name))),
	)
	row, err := bob.One(ctx, r.exec, q, scan.StructMapper[Currency]())
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("currency %q: %w", name, core.ErrNotFound)
		}
		return nil, err
	}
	return &row, nil
}

func (r *SQLReader) List(ctx context.Context) ([]*Currency, error) {
	q := psql.Select(
		sm.Columns(columns...),
		sm.From("currencies"),
		sm.OrderBy("name").Asc(),
	)
	rows, err := bob.All(ctx, r.exec, q, scan.StructMapper[Currency]())
	if err != nil {
		return nil, err
	}
	result := make([]*Currency, len(rows))
	for i := range rows {
		result[i] = &rows[i]
	}
	return result, nil
}

// CountWallets reports how many wallets are denominated in the currency.
func (r *SQLReader) CountWallets(ctx context.Context, id uuid.UUID) (int64, error) {
	q := psql.Select(
		sm.Columns(psql.Raw("count(*)")),
		sm.From("wallets"),
		sm.Where(psql.Quote("currency_id").EQ(psql.Arg(id))),
	)
	return bob.One(ctx, r.exec, q, scan.SingleColumnMapper[int64])
}
