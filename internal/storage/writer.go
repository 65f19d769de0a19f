package storage

import (
	"context"

	"github.com/stephenafamo/bob"

	"github.com/BojanNestorovic/WalletApp/internal/storage/category"
	"github.com/BojanNestorovic/WalletApp/internal/storage/currency"
	"github.com/BojanNestorovic/WalletApp/internal/storage/goal"
	"github.com/BojanNestorovic/WalletApp/internal/storage/transaction"
	"github.com/BojanNestorovic/WalletApp/internal/storage/wallet"
)

type Writer struct {
	tx           bob.Tx
	wallets      *wallet.SQLWriter
	transactions *transaction.SQLWriter
	goals        *goal.SQLWriter
	currencies   *currency.SQLWriter
	categories   *category.SQLReader
}

var _ TxWriter = (*Writer)(nil)

func NewWriter(tx bob.Tx) *Writer {
	return &Writer{
		tx:           tx,
		wallets:      wallet.NewWriter(tx),
		transactions: transaction.NewWriter(tx),
		goals:        goal.NewWriter(tx),
		currencies:   currency.NewWriter(tx),
		categories:   category.NewReader(tx),
	}
}

func (w *Writer) Wallets() wallet.Writer           { return w.wallets }
func (w *Writer) Transactions() transaction.Writer { return w.transactions }
func (w *Writer) Goals() goal.Writer               { return w.goals }
func (w *Writer) Currencies() currency.Writer      { return w.currencies }
func (w *Writer) Categories() category.Reader      { return w.categories }

func (w *Writer) Commit() error {
	return w.tx.Commit(context.Background())
}

func (w *Writer) Rollback() error {
	return w.tx.Rollback(context.Background())
}
