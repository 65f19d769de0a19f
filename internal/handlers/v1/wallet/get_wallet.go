package wallet

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/BojanNestorovic/WalletApp/internal/handlers/v1/httperr"
	"github.com/BojanNestorovic/WalletApp/internal/handlers/v1/identity"
	"github.com/BojanNestorovic/WalletApp/internal/service"
)

// walletGetter is the interface for reading a single wallet.
type walletGetter interface {
	GetWallet(ctx context.Context, userID, id uuid.UUID) (*service.Wallet, error)
}

// GetWalletInput is the Huma input for fetching a wallet.
type GetWalletInput struct {
	identity.Identity
	ID string `path:"id" format:"uuid" doc:"Wallet UUID"`
}

// GetWalletOutput is the Huma output for fetching a wallet.
type GetWalletOutput struct {
	Body Wallet
}

// GetWalletHandler handles GET /v1/wallet/{id}.
type GetWalletHandler struct {
	WalletService walletGetter
}

// NewGetWalletHandler creates a new GetWalletHandler.
func NewGetWalletHandler(svc walletGetter) *GetWalletHandler {
	return &GetWalletHandler{WalletService: svc}
}

// Register registers the get wallet endpoint with the Huma API.
func (h *GetWalletHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-wallet",
		Method:      http.MethodGet,
		Path:        "/v1/wallet/{id}",
		Summary:     "Get wallet",
		Description: "Returns one of the caller's wallets.",
		Tags:        []string{"Wallets"},
	}, h.handle)
}

func (h *GetWalletHandler) handle(ctx context.Context, input *GetWalletInput) (*GetWalletOutput, error) {
	userID, err := input.ParseUserID()
	if err != nil {
		return nil, err
	}
	id, err := uuid.FromString(input.ID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid wallet id", err)
	}

	w, err := h.WalletService.GetWallet(ctx, userID, id)
	if err != nil {
		return nil, httperr.Wrap(err, "failed to get wallet")
	}

	return &GetWalletOutput{Body: walletFromService(*w)}, nil
}
