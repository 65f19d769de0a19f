package category

import (
	"context"

	"github.com/gofrs/uuid/v5"
)

// TransferName is the predefined system category both legs of a wallet
// transfer are posted under.
const TransferName = "Transfer"

// Category represents a category record. Predefined categories are seeded by
// the admin side; the ledger only consults the flag to gate who may revert a
// transaction.
type Category struct {
	ID         uuid.UUID `db:"id"`
	Name       string    `db:"name"`
	Predefined bool      `db:"predefined"`
	OwnerID    uuid.UUID `db:"owner_id"`
}

// Reader defines read-only category storage operations. Category
// administration lives outside the ledger core, so there is no Writer.
type Reader interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Category, error)
	FindByName(ctx context.Context, name string) (*Category, error)
	List(ctx context.Context) ([]*Category, error)
}
