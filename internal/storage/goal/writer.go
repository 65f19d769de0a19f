package goal

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

func (w *SQLWriter) Insert(ctx context.Context, create *GoalCreate) (uuid.UUID, error) {
	q := psql.Insert(
		im.Into("savings_goals",
			"name", "target_amount", "current_amount", "target_date",
			"wallet_id", "user_id", "completed",
		),
		im.Values(psql.Arg(
			create.Name, create.TargetAmount, create.CurrentAmount,
			create.TargetDate, create.WalletID, create.UserID, create.Completed,
		)),
		im.Returning("id"),
	)
	id, err := bob.One(ctx, w.tx, q, scan.SingleColumnMapper[uuid.UUID])
	if err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

func (w *SQLWriter) Update(ctx context.Context, id uuid.UUID, update *GoalUpdate) error {
	q := psql.Update(
		um.Table("savings_goals"),
		um.SetCol("name").ToArg(update.Name),
		um.SetCol("target_amount").ToArg(update.TargetAmount),
		um.SetCol("target_date").ToArg(update.TargetDate),
		um.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)
	return w.execExpectingRow(ctx, q, id)
}

func (w *SQLWriter) SetProgress(ctx context.Context, id uuid.UUID, current decimal.Decimal, completed bool) error {
	q := psql.Update(
		um.Table("savings_goals"),
		um.SetCol("current_amount").ToArg(current),
		um.SetCol("completed").ToArg(completed),
		um.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)
	return w.execExpectingRow(ctx, q, id)
}

func (w *SQLWriter) Delete(ctx context.Context, id uuid.UUID) error {
	q := psql.Delete(
		dm.From("savings_goals"),
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
		return fmt.Errorf("savings goal %v: %w", id, core.ErrNotFound)
	}
	return nil
}
