package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/BojanNestorovic/WalletApp/internal/handlers/v1/httperr"
	"github.com/BojanNestorovic/WalletApp/internal/handlers/v1/identity"
	"github.com/BojanNestorovic/WalletApp/internal/operator/actions"
)

// DeleteTransactionInput is the Huma input for reverting a transaction.
type DeleteTransactionInput struct {
	identity.Identity
	ID string `path:"id" format:"uuid" doc:"Transaction UUID"`
}

// DeleteTransactionResponse is the response body for reverting a transaction.
type DeleteTransactionResponse struct {
	NewBalance string `json:"newBalance" doc:"Wallet balance after the revert"`
}

// DeleteTransactionOutput is the Huma output for reverting a transaction.
type DeleteTransactionOutput struct {
	Body DeleteTransactionResponse
}

// DeleteTransactionHandler handles DELETE /v1/transaction/{id}.
type DeleteTransactionHandler struct {
	TransactionService transactionGetter
	Operator           actionProcessor
}

// NewDeleteTransactionHandler creates a new DeleteTransactionHandler.
func NewDeleteTransactionHandler(svc transactionGetter, op actionProcessor) *DeleteTransactionHandler {
	return &DeleteTransactionHandler{TransactionService: svc, Operator: op}
}

// Register registers the delete transaction endpoint with the Huma API.
func (h *DeleteTransactionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "delete-transaction",
		Method:      http.MethodDelete,
		Path:        "/v1/transaction/{id}",
		Summary:     "Delete transaction",
		Description: "Reverts a transaction: the wallet balance moves back and the record is removed. Transactions in predefined categories require the administrator role.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

func (h *DeleteTransactionHandler) handle(ctx context.Context, input *DeleteTransactionInput) (*DeleteTransactionOutput, error) {
	userID, err := input.ParseUserID()
	if err != nil {
		return nil, err
	}
	id, err := uuid.FromString(input.ID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid transaction id", err)
	}

	// The action locks per wallet, so the wallet id is resolved up front.
	existing, err := h.TransactionService.GetTransaction(ctx, userID, id)
	if err != nil {
		return nil, httperr.Wrap(err, "failed to get transaction")
	}

	action := &actions.RevertTransaction{
		UserID:        userID,
		UserRole:      input.UserRole,
		TransactionID: id,
		WalletID:      existing.WalletID,
	}

	if err := h.Operator.Process(ctx, action); err != nil {
		return nil, httperr.Wrap(err, "failed to delete transaction")
	}

	return &DeleteTransactionOutput{
		Body: DeleteTransactionResponse{NewBalance: action.NewBalance.String()},
	}, nil
}
