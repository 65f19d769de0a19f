package transfer

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

// TransferBody is the request body for a wallet-to-wallet transfer.
type TransferBody struct {
	FromWalletID string `json:"fromWalletID" required:"true" format:"uuid" doc:"Source wallet UUID"`
	ToWalletID   string `json:"toWalletID" required:"true" format:"uuid" doc:"Destination wallet UUID"`
	Amount       string `json:"amount" required:"true" doc:"Decimal amount in the source currency"`
	Description  string `json:"description" required:"true" minLength:"1" doc:"Shared description for both records"`
}

// TransferInput is the Huma input for a transfer.
type TransferInput struct {
	identity.Identity
	Body TransferBody
}

// TransferResponse is the response body for a transfer.
type TransferResponse struct {
	Received           string `json:"received" doc:"Amount credited to the destination, in its currency"`
	ExpenseTransaction string `json:"expenseTransaction" doc:"UUID of the expense record on the source"`
	IncomeTransaction  string `json:"incomeTransaction" doc:"UUID of the income record on the destination"`
}

// TransferOutput is the Huma output for a transfer.
type TransferOutput struct {
	Body TransferResponse
}

// actionProcessor is the interface for running ledger actions.
type actionProcessor interface {
	Process(ctx context.Context, action actions.IAction) error
}

// TransferHandler handles POST /v1/transfer.
type TransferHandler struct {
	Operator actionProcessor
}

// NewTransferHandler creates a new TransferHandler.
func NewTransferHandler(op actionProcessor) *TransferHandler {
	return &TransferHandler{Operator: op}
}

// Register registers the transfer endpoint with the Huma API.
func (h *TransferHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "transfer",
		Method:        http.MethodPost,
		Path:          "/v1/transfer",
		Summary:       "Transfer between wallets",
		Description:   "Moves money between two of the caller's wallets, converting through EUR when the currencies differ.",
		Tags:          []string{"Transfers"},
		DefaultStatus: http.StatusCreated,
	}, h.handle)
}

func (h *TransferHandler) handle(ctx context.Context, input *TransferInput) (*TransferOutput, error) {
	userID, err := input.ParseUserID()
	if err != nil {
		return nil, err
	}
	fromID, err := uuid.FromString(input.Body.FromWalletID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid fromWalletID", err)
	}
	toID, err := uuid.FromString(input.Body.ToWalletID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid toWalletID", err)
	}
	amount, err := decimal.NewFromString(input.Body.Amount)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid amount", err)
	}

	action := &actions.Transfer{
		UserID:       userID,
		FromWalletID: fromID,
		ToWalletID:   toID,
		Amount:       amount,
		Description:  input.Body.Description,
	}

	if err := h.Operator.Process(ctx, action); err != nil {
		return nil, httperr.Wrap(err, "failed to transfer")
	}

	return &TransferOutput{
		Body: TransferResponse{
			Received:           action.Received.String(),
			ExpenseTransaction: action.ExpenseTransaction.String(),
			IncomeTransaction:  action.IncomeTransaction.String(),
		},
	}, nil
}
