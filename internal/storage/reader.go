package storage

import (
	"github.com/stephenafamo/bob"

	"github.com/BojanNestorovic/WalletApp/internal/storage/category"
	"github.com/BojanNestorovic/WalletApp/internal/storage/currency"
	"github.com/BojanNestorovic/WalletApp/internal/storage/goal"
	"github.com/BojanNestorovic/WalletApp/internal/storage/transaction"
	"github.com/BojanNestorovic/WalletApp/internal/storage/wallet"
)

type Reader struct {
	wallets      *wallet.SQLReader
	transactions *transaction.SQLReader
	goals        *goal.SQLReader
	currencies   *currency.SQLReader
	categories   *category.SQLReader
}

func NewReader(exec bob.Executor) *Reader {
	return &Reader{
		wallets:      wallet.NewReader(exec),
		transactions: transaction.NewReader(exec),
		goals:        goal.NewReader(exec),
		currencies:   currency.NewReader(exec),
		categories:   category.NewReader(exec),
	}
}

func (r *Reader) Wallets() wallet.Reader            { return r.wallets }
func (r *Reader) Transactions() transaction.Reader  { return r.transactions }
func (r *Reader) Goals() goal.Reader                { return r.goals }
func (r *Reader) Currencies() currency.Reader       { return r.currencies }
func (r *Reader) Categories() category.Reader       { return r.categories }
