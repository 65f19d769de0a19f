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
	"github.com/stephenafamo/bob/dialect/psql/dm"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
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

func (w *SQLWriter) Insert(ctx context.Context, create *WalletCreate) (uuid.UUID, error) {
	q := psql.Insert(
		im.Into("wallets",
			"name", "user_id", "currency_id",
			"initial_balance", "current_balance", "savings",
		),
		im.Values(psql.Arg(
			create.Name, create.UserID, create.CurrencyID,
			create.InitialBalance, create.InitialBalance, create.Savings,
		)),
		im.Returning("id"),
	)
	id, err := bob.One(ctx, w.tx, q, scan.SingleColumnMapper[uuid.UUID])
	if err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

func (w *SQLWriter) Update(ctx context.Context, id uuid.UUID, update *WalletUpdate) error {
	q := psql.Update(
		um.Table("wallets"),
		um.SetCol("name").ToArg(update.Name),
		um.SetCol("savings").ToArg(update.Savings),
		um.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)
	return w.execExpectingRow(ctx, q, id)
}

func (w *SQLWriter) SetArchived(ctx context.Context, id uuid.UUID, archived bool) error {
	q := psql.Update(
		um.Table("wallets"),
		um.SetCol("archived").ToArg(archived),
		um.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)
	return w.execExpectingRow(ctx, q, id)
}

func (w *SQLWriter) Delete(ctx context.Context, id uuid.UUID) error {
	q := psql.Delete(
		dm.From("wallets"),
		dm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)
	return w.execExpectingRow(ctx, q, id)
}

// findForUpdate locks the wallet row for the rest of the transaction.
func (w *SQLWriter) findForUpdate(ctx context.Context, id uuid.UUID) (*Wallet, error) {
	q := psql.Select(
		sm.Columns(columns...),
		sm.From("wallets"),
		sm.Where(psql.Quote("id").EQ(psql.Arg(id))),
		sm.ForUpdate(),
	)
	row, err := bob.One(ctx, w.tx, q, scan.StructMapper[Wallet]())
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("wallet %v: %w", id, core.ErrNotFound)
		}
		return nil, err
	}
	return &row, nil
}

func (w *SQLWriter) ApplyDelta(ctx context.Context, id uuid.UUID, delta decimal.Decimal) (decimal.Decimal, error) {
	row, err := w.findForUpdate(ctx, id)
	if err != nil {
		return decimal.Zero, err
	}
	if row.Archived {
		return decimal.Zero, fmt.Errorf("wallet %v: %w", id, core.ErrArchived)
	}

	newBalance := core.RoundMoney(row.CurrentBalance.Add(delta))
	q := psql.Update(
		um.Table("wallets"),
		um.SetCol("current_balance").ToArg(newBalance),
		um.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)
	if _, err := bob.Exec(ctx, w.tx, q); err != nil {
		return decimal.Zero, err
	}
	return newBalance, nil
}

// ApplyPairedDelta locks both rows first, then applies both deltas. The
// caller is responsible for acquiring the wallet locks in global order; here
// the row locks follow the same ascending-ID rule so two paired deltas can
// never deadlock each other at the database level either.
func (w *SQLWriter) ApplyPairedDelta(ctx context.Context, idA uuid.UUID, deltaA decimal.Decimal, idB uuid.UUID, deltaB decimal.Decimal) error {
	first, second := idA, idB
	if second.String() < first.String() {
		first, second = second, first
	}
	if _, err := w.findForUpdate(ctx, first); err != nil {
		return err
	}
	if _, err := w.findForUpdate(ctx, second); err != nil {
		return err
	}

	if _, err := w.ApplyDelta(ctx, idA, deltaA); err != nil {
		return err
	}
	if _, err := w.ApplyDelta(ctx, idB, deltaB); err != nil {
		// The enclosing transaction rolls back the first delta.
		return fmt.Errorf("paired delta second leg: %w", err)
	}
	return nil
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
		return fmt.Errorf("wallet %v: %w", id, core.ErrNotFound)
	}
	return nil
}
