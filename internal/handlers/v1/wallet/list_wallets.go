package wallet

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/BojanNestorovic/WalletApp/internal/handlers/v1/httperr"
	"github.com/BojanNestorovic/WalletApp/internal/handlers/v1/identity"
	"github.com/BojanNestorovic/WalletApp/internal/logging"
	"github.com/BojanNestorovic/WalletApp/internal/service"
)

// walletLister is the interface for listing wallets and their balance total.
type walletLister interface {
	ListWallets(ctx context.Context, userID uuid.UUID) ([]service.Wallet, error)
	ListSavingsWallets(ctx context.Context, userID uuid.UUID) ([]service.Wallet, error)
	TotalBalance(ctx context.Context, userID uuid.UUID) (decimal.Decimal, error)
}

// ListWalletsInput is the Huma input for listing wallets.
type ListWalletsInput struct {
	identity.Identity
	Savings bool `query:"savings" doc:"Only savings wallets"`
}

// ListWalletsResponseBody is the response body for listing wallets.
type ListWalletsResponseBody struct {
	Wallets      []Wallet `json:"wallets" doc:"The caller's wallets"`
	TotalBalance string   `json:"totalBalance" doc:"Sum of current balances, no currency conversion"`
}

// ListWalletsOutput is the Huma output for listing wallets.
type ListWalletsOutput struct {
	Body ListWalletsResponseBody
}

// ListWalletsHandler handles GET /v1/wallet.
type ListWalletsHandler struct {
	WalletService walletLister
}

// NewListWalletsHandler creates a new ListWalletsHandler.
func NewListWalletsHandler(svc walletLister) *ListWalletsHandler {
	return &ListWalletsHandler{WalletService: svc}
}

// Register registers the list wallets endpoint with the Huma API.
func (h *ListWalletsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-wallets",
		Method:      http.MethodGet,
		Path:        "/v1/wallet",
		Summary:     "List wallets",
		Description: "Returns the caller's wallets and their combined balance.",
		Tags:        []string{"Wallets"},
	}, h.handle)
}

func (h *ListWalletsHandler) handle(ctx context.Context, input *ListWalletsInput) (*ListWalletsOutput, error) {
	logData := logging.GetLogData(ctx)
	userID, err := input.ParseUserID()
	if err != nil {
		return nil, err
	}

	var wallets []service.Wallet
	if input.Savings {
		wallets, err = h.WalletService.ListSavingsWallets(ctx, userID)
	} else {
		wallets, err = h.WalletService.ListWallets(ctx, userID)
	}
	if err != nil {
		return nil, httperr.Wrap(err, "failed to list wallets")
	}

	total, err := h.WalletService.TotalBalance(ctx, userID)
	if err != nil {
		return nil, httperr.Wrap(err, "failed to total balances")
	}

	if logData != nil {
		logData.AddData("walletCount", len(wallets))
	}

	resp := ListWalletsResponseBody{
		Wallets:      make([]Wallet, len(wallets)),
		TotalBalance: total.String(),
	}
	for i, w := range wallets {
		resp.Wallets[i] = walletFromService(w)
	}

	return &ListWalletsOutput{Body: resp}, nil
}
