package core

import "errors"

// Error kinds returned by the ledger core. Callers classify failures with
// errors.Is; the HTTP layer maps each kind to a status code.
var (
	// ErrNotFound indicates a referenced wallet, transaction, currency,
	// category or goal does not exist.
	ErrNotFound = errors.New("not found")

	// ErrUnauthorized indicates the caller does not own the resource or
	// lacks the privilege for the operation.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrArchived indicates the operation targets an archived wallet.
	ErrArchived = errors.New("wallet archived")

	// ErrInsufficientFunds indicates a transfer would drive the source
	// wallet balance negative.
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrInvalidAmount indicates a non-positive amount where a positive
	// amount is required.
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrInconsistentState indicates an internal invariant violation, e.g.
	// a paired delta that applied on one side only. The operation that hit
	// it is aborted, never repaired.
	ErrInconsistentState = errors.New("inconsistent ledger state")

	// ErrWalletNotEmpty indicates a wallet delete was rejected because
	// transactions still reference the wallet.
	ErrWalletNotEmpty = errors.New("wallet has transactions")

	// ErrDuplicateName indicates a unique-name constraint was violated,
	// e.g. creating a currency whose name already exists.
	ErrDuplicateName = errors.New("name already exists")

	// ErrNotSavingsWallet indicates a savings goal was pointed at a wallet
	// that is not marked as a savings wallet.
	ErrNotSavingsWallet = errors.New("wallet is not a savings wallet")

	// ErrCurrencyInUse indicates a currency delete was rejected because
	// wallets still reference it.
	ErrCurrencyInUse = errors.New("currency is referenced by wallets")

	// ErrProtectedCurrency indicates an attempt to delete EUR or move its
	// rate away from 1.0. EUR is the conversion pivot and must stay fixed.
	ErrProtectedCurrency = errors.New("currency is protected")
)
