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

// DeleteWalletInput is the Huma input for deleting a wallet.
type DeleteWalletInput struct {
	identity.Identity
	ID string `path:"id" format:"uuid" doc:"Wallet UUID"`
}

// DeleteWalletOutput is the Huma output for deleting a wallet.
type DeleteWalletOutput struct {
	Status int
}

// DeleteWalletHandler handles DELETE /v1/wallet/{id}.
type DeleteWalletHandler struct {
	Operator actionProcessor
}

// NewDeleteWalletHandler creates a new DeleteWalletHandler.
func NewDeleteWalletHandler(op actionProcessor) *DeleteWalletHandler {
	return &DeleteWalletHandler{Operator: op}
}

// Register registers the delete wallet endpoint with the Huma API.
func (h *DeleteWalletHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "delete-wallet",
		Method:      http.MethodDelete,
		Path:        "/v1/wallet/{id}",
		Summary:     "Delete wallet",
		Description: "Deletes a wallet with no transactions or goals.",
		Tags:        []string{"Wallets"},
	}, h.handle)
}

func (h *DeleteWalletHandler) handle(ctx context.Context, input *DeleteWalletInput) (*DeleteWalletOutput, error) {
	userID, err := input.ParseUserID()
	if err != nil {
		return nil, err
	}
	id, err := uuid.FromString(input.ID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid wallet id", err)
	}

	action := &actions.DeleteWallet{
		UserID:   userID,
		WalletID: id,
	}

	if err := h.Operator.Process(ctx, action); err != nil {
		return nil, httperr.Wrap(err, "failed to delete wallet")
	}

	return &DeleteWalletOutput{Status: http.StatusNoContent}, nil
}
