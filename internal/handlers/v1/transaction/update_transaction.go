package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/BojanNestorovic/WalletApp/internal/handlers/v1/httperr"
	"github.com/BojanNestorovic/WalletApp/internal/handlers/v1/identity"
	"github.com/BojanNestorovic/WalletApp/internal/operator/actions"
	storagetransaction "github.com/BojanNestorovic/WalletApp/internal/storage/transaction"
)

// UpdateTransactionBody is the request body for updating a transaction.
type UpdateTransactionBody struct {
	CategoryID string `json:"categoryID" required:"true" format:"uuid" doc:"Category UUID"`
	Name       string `json:"name" required:"true" minLength:"1" doc:"Name of the transaction"`
	Amount     string `json:"amount" required:"true" doc:"Decimal amount, positive"`
	Type       string `json:"type" required:"true" enum:"INCOME,EXPENSE" doc:"Transaction type"`
	Repeating  bool   `json:"repeating" doc:"Repeating flag"`
	Frequency  string `json:"frequency,omitempty" enum:",WEEKLY,MONTHLY,QUARTERLY,YEARLY" doc:"Required when repeating"`
}

// UpdateTransactionInput is the Huma input for updating a transaction.
type UpdateTransactionInput struct {
	identity.Identity
	ID   string `path:"id" format:"uuid" doc:"Transaction UUID"`
	Body UpdateTransactionBody
}

// UpdateTransactionResponse is the response body for updating a transaction.
type UpdateTransactionResponse struct {
	NewBalance string `json:"newBalance" doc:"Wallet balance after the update"`
}

// UpdateTransactionOutput is the Huma output for updating a transaction.
type UpdateTransactionOutput struct {
	Body UpdateTransactionResponse
}

// UpdateTransactionHandler handles PUT /v1/transaction/{id}.
type UpdateTransactionHandler struct {
	TransactionService transactionGetter
	Operator           actionProcessor
}

// NewUpdateTransactionHandler creates a new UpdateTransactionHandler.
func NewUpdateTransactionHandler(svc transactionGetter, op actionProcessor) *UpdateTransactionHandler {
	return &UpdateTransactionHandler{TransactionService: svc, Operator: op}
}

// Register registers the update transaction endpoint with the Huma API.
func (h *UpdateTransactionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "update-transaction",
		Method:      http.MethodPut,
		Path:        "/v1/transaction/{id}",
		Summary:     "Update transaction",
		Description: "Rewrites a transaction: the old effect comes off the wallet and the new one goes on, as one unit.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

func (h *UpdateTransactionHandler) handle(ctx context.Context, input *UpdateTransactionInput) (*UpdateTransactionOutput, error) {
	userID, err := input.ParseUserID()
	if err != nil {
		return nil, err
	}
	id, err := uuid.FromString(input.ID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid transaction id", err)
	}
	categoryID, err := uuid.FromString(input.Body.CategoryID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid categoryID", err)
	}
	amount, err := decimal.NewFromString(input.Body.Amount)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid amount", err)
	}

	// The action locks per wallet, so the wallet id is resolved up front.
	existing, err := h.TransactionService.GetTransaction(ctx, userID, id)
	if err != nil {
		return nil, httperr.Wrap(err, "failed to get transaction")
	}

	action := &actions.UpdateTransaction{
		UserID:        userID,
		TransactionID: id,
		WalletID:      existing.WalletID,
		Name:          input.Body.Name,
		Amount:        amount,
		Type:          storagetransaction.Type(input.Body.Type),
		CategoryID:    categoryID,
		Repeating:     input.Body.Repeating,
		Frequency:     storagetransaction.Frequency(input.Body.Frequency),
	}

	if err := h.Operator.Process(ctx, action); err != nil {
		return nil, httperr.Wrap(err, "failed to update transaction")
	}

	return &UpdateTransactionOutput{
		Body: UpdateTransactionResponse{NewBalance: action.NewBalance.String()},
	}, nil
}
