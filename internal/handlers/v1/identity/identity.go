// Package identity reads the caller identity headers. Authentication happens
// in the gateway in front of this service; the values here are trusted.
package identity

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/BojanNestorovic/WalletApp/internal/core"
)

// Identity is embedded in handler inputs to pull the caller headers.
type Identity struct {
	UserID   string `header:"X-User-ID" required:"true" doc:"Caller user UUID"`
	UserRole string `header:"X-User-Role" doc:"Caller role"`
}

// ParseUserID parses the X-User-ID header value.
func (i Identity) ParseUserID() (uuid.UUID, error) {
	userID, err := uuid.FromString(i.UserID)
	if err != nil {
		return uuid.Nil, huma.NewError(http.StatusBadRequest, "invalid X-User-ID", err)
	}
	return userID, nil
}

// IsAdministrator reports whether the caller holds the administrator role.
func (i Identity) IsAdministrator() bool {
	return i.UserRole == core.RoleAdministrator
}
