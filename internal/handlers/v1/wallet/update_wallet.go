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

// UpdateWalletBody is the request body for updating a wallet.
type UpdateWalletBody struct {
	Name    string `json:"name" required:"true" minLength:"1" doc:"Wallet name"`
	Savings bool   `json:"savings" doc:"Savings wallet flag"`
}

// UpdateWalletInput is the Huma input for updating a wallet.
type UpdateWalletInput struct {
	identity.Identity
	ID   string `path:"id" format:"uuid" doc:"Wallet UUID"`
	Body UpdateWalletBody
}

// UpdateWalletOutput is the Huma output for updating a wallet.
type UpdateWalletOutput struct {
	Status int
}

// UpdateWalletHandler handles PUT /v1/wallet/{id}.
type UpdateWalletHandler struct {
	Operator actionProcessor
}

// NewUpdateWalletHandler creates a new UpdateWalletHandler.
func NewUpdateWalletHandler(op actionProcessor) *UpdateWalletHandler {
	return &UpdateWalletHandler{Operator: op}
}

// Register registers the update wallet endpoint with the Huma API.
func (h *UpdateWalletHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "update-wallet",
		Method:      http.MethodPut,
		Path:        "/v1/wallet/{id}",
		Summary:     "Update wallet",
		Description: "Renames a wallet and sets its savings flag. Balances are immutable.",
		Tags:        []string{"Wallets"},
	}, h.handle)
}

func (h *UpdateWalletHandler) handle(ctx context.Context, input *UpdateWalletInput) (*UpdateWalletOutput, error) {
	userID, err := input.ParseUserID()
	if err != nil {
		return nil, err
	}
	id, err := uuid.FromString(input.ID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid wallet id", err)
	}

	action := &actions.UpdateWallet{
		UserID:   userID,
		WalletID: id,
		Name:     input.Body.Name,
		Savings:  input.Body.Savings,
	}

	if err := h.Operator.Process(ctx, action); err != nil {
		return nil, httperr.Wrap(err, "failed to update wallet")
	}

	return &UpdateWalletOutput{Status: http.StatusNoContent}, nil
}
