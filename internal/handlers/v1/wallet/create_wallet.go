package wallet

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/BojanNestorovic/WalletApp/internal/handlers/v1/httperr"
	"github.com/BojanNestorovic/WalletApp/internal/handlers/v1/identity"
	"github.com/BojanNestorovic/WalletApp/internal/operator/actions"
)

// CreateWalletBody is the request body for creating a wallet.
type CreateWalletBody struct {
	Name           string `json:"name" required:"true" minLength:"1" doc:"Wallet name"`
	CurrencyID     string `json:"currencyID" required:"true" format:"uuid" doc:"Currency UUID"`
	InitialBalance string `json:"initialBalance" required:"true" doc:"Decimal starting balance"`
	Savings        bool   `json:"savings" doc:"Savings wallet flag"`
}

// CreateWalletInput is the Huma input for creating a wallet.
type CreateWalletInput struct {
	identity.Identity
	Body CreateWalletBody
}

// CreateWalletResponse is the response body for creating a wallet.
type CreateWalletResponse struct {
	ID string `json:"id" doc:"UUID of the created wallet"`
}

// CreateWalletOutput is the Huma output for creating a wallet.
type CreateWalletOutput struct {
	Body CreateWalletResponse
}

// CreateWalletHandler handles POST /v1/wallet.
type CreateWalletHandler struct {
	Operator actionProcessor
}

// NewCreateWalletHandler creates a new CreateWalletHandler.
func NewCreateWalletHandler(op actionProcessor) *CreateWalletHandler {
	return &CreateWalletHandler{Operator: op}
}

// Register registers the create wallet endpoint with the Huma API.
func (h *CreateWalletHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "create-wallet",
		Method:        http.MethodPost,
		Path:          "/v1/wallet",
		Summary:       "Create wallet",
		Description:   "Creates a new wallet with a fixed currency.",
		Tags:          []string{"Wallets"},
		DefaultStatus: http.StatusCreated,
	}, h.handle)
}

func (h *CreateWalletHandler) handle(ctx context.Context, input *CreateWalletInput) (*CreateWalletOutput, error) {
	userID, err := input.ParseUserID()
	if err != nil {
		return nil, err
	}
	currencyID, err := uuid.FromString(input.Body.CurrencyID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid currencyID", err)
	}
	initialBalance, err := decimal.NewFromString(input.Body.InitialBalance)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid initialBalance", err)
	}

	action := &actions.CreateWallet{
		UserID:         userID,
		Name:           input.Body.Name,
		CurrencyID:     currencyID,
		InitialBalance: initialBalance,
		Savings:        input.Body.Savings,
	}

	if err := h.Operator.Process(ctx, action); err != nil {
		return nil, httperr.Wrap(err, "failed to create wallet")
	}

	return &CreateWalletOutput{
		Body: CreateWalletResponse{ID: action.WalletID.String()},
	}, nil
}
