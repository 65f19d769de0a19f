// Package httperr maps ledger error kinds to HTTP status codes so every
// handler reports failures the same way.
package httperr

import (
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/BojanNestorovic/WalletApp/internal/core"
)

// Wrap converts a service or operator error into a huma error with the status
// code matching its kind. Unrecognized errors become 500s.
func Wrap(err error, msg string) error {
	return huma.NewError(status(err), msg, err)
}

func status(err error) int {
	switch {
	case errors.Is(err, core.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, core.ErrUnauthorized):
		return http.StatusForbidden
	case errors.Is(err, core.ErrInvalidAmount):
		return http.StatusBadRequest
	case errors.Is(err, core.ErrInsufficientFunds):
		return http.StatusUnprocessableEntity
	case errors.Is(err, core.ErrArchived),
		errors.Is(err, core.ErrWalletNotEmpty),
		errors.Is(err, core.ErrDuplicateName),
		errors.Is(err, core.ErrNotSavingsWallet),
		errors.Is(err, core.ErrCurrencyInUse),
		errors.Is(err, core.ErrProtectedCurrency):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
