package transaction

import (
	"context"
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"
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

func (w *SQLWriter) Insert(ctx context.Context, create *TransactionCreate) (uuid.UUID, error) {
	date := create.Date
	if date.IsZero() {
		date = time.Now()
	}
	q := psql.Insert(
		im.Into("transactions",
			"name", "amount", "type", "wallet_id", "category_id", "user_id",
			"repeating", "frequency", "date_of_transaction",
		),
		im.Values(psql.Arg(
			create.Name, create.Amount, string(create.Type),
			create.WalletID, create.CategoryID, create.UserID,
			create.Repeating, string(create.Frequency), date,
		)),
		im.Returning("id"),
	)
	id, err := bob.One(ctx, w.tx, q, scan.SingleColumnMapper[uuid.UUID])
	if err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

func (w *SQLWriter) Update(ctx context.Context, id uuid.UUID, update *TransactionUpdate) error {
	q := psql.Update(
		um.Table("transactions"),
		um.SetCol("name").ToArg(update.Name),
		um.SetCol("amount").ToArg(update.Amount),
		um.SetCol("type").ToArg(string(update.Type)),
		um.SetCol("category_id").ToArg(update.CategoryID),
		um.SetCol("repeating").ToArg(update.Repeating),
		um.SetCol("frequency").ToArg(string(update.Frequency)),
		um.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)
	return w.execExpectingRow(ctx, q, id)
}

func (w *SQLWriter) Delete(ctx context.Context, id uuid.UUID) error {
	q := psql.Delete(
		dm.From("transactions"),
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
		return fmt.Errorf("transaction %v: %w", id, core.ErrNotFound)
	}
	return nil
}
