package wallet

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/BojanNestorovic/WalletApp/internal/handlers/v1/httperr"
	"github.com/BojanNestorovic/WalletApp/internal/handlers/v1/identity"
	"github.com/BojanNestorovic/WalletApp/internal/operator/actions"
)

// ArchiveWalletBody is the request body for archiving or unarchiving a wallet.
type ArchiveWalletBody struct {
	Archived bool `json:"archived" doc:"Target archived state"`
}

// ArchiveWalletInput is the Huma input for archiving a wallet.
type ArchiveWalletInput struct {
	identity.Identity
	ID   string `path:"id" format:"uuid" doc:"Wallet UUID"`
	Body ArchiveWalletBody
}

// ArchiveWalletOutput is the Huma output for archiving a wallet.
type ArchiveWalletOutput struct {
	Status int
}

// ArchiveWalletHandler handles POST /v1/wallet/{id}/archive.
type ArchiveWalletHandler struct {
	Operator actionProcessor
}

// NewArchiveWalletHandler creates a new ArchiveWalletHandler.
func NewArchiveWalletHandler(op actionProcessor) *ArchiveWalletHandler {
	return &ArchiveWalletHandler{Operator: op}
}

// Register registers the archive wallet endpoint with the Huma API.
func (h *ArchiveWalletHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "archive-wallet",
		Method:      http.MethodPost,
		Path:        "/v1/wallet/{id}/archive",
		Summary:     "Archive wallet",
		Description: "Archives or unarchives a wallet. Archived wallets keep their balance and history but reject balance changes.",
		Tags:        []string{"Wallets"},
	}, h.handle)
}

func (h *ArchiveWalletHandler) handle(ctx context.Context, input *ArchiveWalletInput) (*ArchiveWalletOutput, error) {
	userID, err := input.ParseUserID()
	if err != nil {
		return nil, err
	}
	id, err := uuid.FromString(input.ID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid wallet id", err)
	}

	action := &actions.ArchiveWallet{
		UserID:   userID,
		WalletID: id,
		Archived: input.Body.Archived,
	}

	if err := h.Operator.Process(ctx, action); err != nil {
		return nil, httperr.Wrap(err, "failed to archive wallet")
	}

	return &ArchiveWalletOutput{Status: http.StatusNoContent}, nil
}
