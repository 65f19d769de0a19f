package currency

import (
	"context"
	"fmt"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dm"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/um"
	"github.com/stephenafamo/scan"

	"github.com/BojanNestorovic/WalletApp/internal/core"
)

var _ Writer = (*SQLWriter)(nil)

type SQLWriter struct {
	tx bob.Tx
	SQLReader
}

func NewWriter(tx bob.Tx) *SQLWriter {
	return &SQLWriter{
		tx: tx,
		SQLReader: SQLReader{
			exec: tx,
		},
	}
}

func (w *SQLWriter) Insert(ctx context.Context, create *CurrencyCreate) (uuid.UUID, error) {
	q := psql.Insert(
		im.Into("currencies", "name", "value_to_eur"),
		im.Values(psql.Arg(create.Name, create.ValueToEur)),
		im.Returning("id"),
	)
	id, err := bob.One(ctx, w.tx, q, scan.SingleColumnMapper[uuid.UUID])
	if err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

func (w *SQLWriter) UpdateRate(ctx context.Context, id uuid.UUID, valueToEur decimal.Decimal) error {
	q := psql.Update(
		um.Table("currencies"),
		um.SetCol("value_to_eur").ToArg(valueToEur),
		um.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)
	return w.execExpectingRow(ctx, q, id)
}

func (w *SQLWriter) Delete(ctx context.Context, id uuid.UUID) error {
	q := psql.Delete(
		dm.From("currencies"),
		dm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)
	return w.execExpectingRow(ctx, q, id)
}

func (w *SQLWriter) execExpectingRow(ctx context.Context, q bob.Query, id uuid.UUID) error {
	res, err := bob.Exec(ctx, w.tx, q)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("currency %v: %w", id, core.ErrNotFound)
	}
	return nil
}
