package transaction

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/BojanNestorovic/WalletApp/internal/handlers/v1/httperr"
	"github.com/BojanNestorovic/WalletApp/internal/handlers/v1/identity"
	"github.com/BojanNestorovic/WalletApp/internal/logging"
	"github.com/BojanNestorovic/WalletApp/internal/service"
)

// ListTransactionsCursor represents a pagination cursor in request and
// response bodies.
type ListTransactionsCursor struct {
	Position int `json:"position" minimum:"0" doc:"Numeric offset position for the next page"`
	Limit    int `json:"limit" minimum:"1" maximum:"100" doc:"Page size used for this cursor"`
}

// ListTransactionsBody is the request body for listing transactions.
type ListTransactionsBody struct {
	WalletID string                  `json:"walletID,omitempty" format:"uuid" doc:"Only transactions of this wallet"`
	From     string                  `json:"from,omitempty" format:"date-time" doc:"Inclusive lower bound on the transaction date"`
	To       string                  `json:"to,omitempty" format:"date-time" doc:"Inclusive upper bound on the transaction date"`
	Cursor   *ListTransactionsCursor `json:"cursor,omitempty" doc:"Cursor from a previous response to fetch the next page"`
}

// ListTransactionsInput is the Huma input for listing transactions.
type ListTransactionsInput struct {
	identity.Identity
	Body ListTransactionsBody
}

// ListTransactionsResponseBody is the response body for listing transactions.
type ListTransactionsResponseBody struct {
	Transactions []Transaction           `json:"transactions" doc:"Page of transactions, newest first"`
	NextCursor   *ListTransactionsCursor `json:"nextCursor,omitempty" doc:"Cursor to fetch the next page, absent on the last page"`
}

// ListTransactionsOutput is the Huma output for listing transactions.
type ListTransactionsOutput struct {
	Body ListTransactionsResponseBody
}

// transactionLister is the interface for listing transactions.
type transactionLister interface {
	ListTransactions(ctx context.Context, userID uuid.UUID, filter *service.TransactionFilter, cursor *service.TransactionCursor) ([]service.Transaction, *service.TransactionCursor, error)
}

// ListTransactionsHandler handles POST /v1/transaction/list.
type ListTransactionsHandler struct {
	TransactionService transactionLister
}

// NewListTransactionsHandler creates a new ListTransactionsHandler.
func NewListTransactionsHandler(svc transactionLister) *ListTransactionsHandler {
	return &ListTransactionsHandler{TransactionService: svc}
}

// Register registers the list transactions endpoint with the Huma API.
func (h *ListTransactionsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-transactions",
		Method:      http.MethodPost,
		Path:        "/v1/transaction/list",
		Summary:     "List transactions",
		Description: "Returns a paginated list of the caller's transactions using cursor-based pagination.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

// parseListTransactionsInput parses and validates the API input.
func parseListTransactionsInput(input *ListTransactionsInput) (filter *service.TransactionFilter, cursor *service.TransactionCursor, err error) {
	filter = &service.TransactionFilter{}

	if input.Body.WalletID != "" {
		walletID, parseErr := uuid.FromString(input.Body.WalletID)
		if parseErr != nil {
			return nil, nil, huma.NewError(http.StatusBadRequest, "invalid walletID", parseErr)
		}
		filter.WalletID = &walletID
	}
	if input.Body.From != "" {
		from, parseErr := time.Parse(time.RFC3339, input.Body.From)
		if parseErr != nil {
			return nil, nil, huma.NewError(http.StatusBadRequest, "invalid from", parseErr)
		}
		filter.From = &from
	}
	if input.Body.To != "" {
		to, parseErr := time.Parse(time.RFC3339, input.Body.To)
		if parseErr != nil {
			return nil, nil, huma.NewError(http.StatusBadRequest, "invalid to", parseErr)
		}
		filter.To = &to
	}

	if input.Body.Cursor != nil {
		if input.Body.Cursor.Position < 0 {
			return nil, nil, huma.NewError(http.StatusBadRequest, "cursor position must be non-negative")
		}
		cursor = &service.TransactionCursor{
			Position: input.Body.Cursor.Position,
			Limit:    input.Body.Cursor.Limit,
		}
	}

	return filter, cursor, nil
}

func (h *ListTransactionsHandler) handle(ctx context.Context, input *ListTransactionsInput) (*ListTransactionsOutput, error) {
	logData := logging.GetLogData(ctx)
	userID, err := input.ParseUserID()
	if err != nil {
		return nil, err
	}
	filter, requestCursor, err := parseListTransactionsInput(input)
	if err != nil {
		return nil, err
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("listTransactionsMs")
	}
	transactions, nextCursor, err := h.TransactionService.ListTransactions(ctx, userID, filter, requestCursor)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, httperr.Wrap(err, "failed to list transactions")
	}

	if logData != nil {
		logData.AddData("transactionCount", len(transactions))
	}

	resp := ListTransactionsResponseBody{
		Transactions: make([]Transaction, len(transactions)),
	}
	for i, tx := range transactions {
		resp.Transactions[i] = transactionFromService(tx)
	}
	if nextCursor != nil {
		resp.NextCursor = &ListTransactionsCursor{
			Position: nextCursor.Position,
			Limit:    nextCursor.Limit,
		}
	}

	return &ListTransactionsOutput{Body: resp}, nil
}
