package transaction

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/BojanNestorovic/WalletApp/internal/handlers/v1/httperr"
	"github.com/BojanNestorovic/WalletApp/internal/handlers/v1/identity"
	"github.com/BojanNestorovic/WalletApp/internal/operator/actions"
	storagetransaction "github.com/BojanNestorovic/WalletApp/internal/storage/transaction"
)

// CreateTransactionBody is the request body for posting a transaction.
type CreateTransactionBody struct {
	WalletID   string `json:"walletID" required:"true" format:"uuid" doc:"Wallet UUID"`
	CategoryID string `json:"categoryID" required:"true" format:"uuid" doc:"Category UUID"`
	Name       string `json:"name" required:"true" minLength:"1" doc:"Name of the transaction"`
	Amount     string `json:"amount" required:"true" doc:"Decimal amount, positive"`
	Type       string `json:"type" required:"true" enum:"INCOME,EXPENSE" doc:"Transaction type"`
	Repeating  bool   `json:"repeating" doc:"Repeating flag"`
	Frequency  string `json:"frequency,omitempty" enum:",WEEKLY,MONTHLY,QUARTERLY,YEARLY" doc:"Required when repeating"`
	Date       string `json:"date,omitempty" format:"date-time" doc:"RFC3339 transaction date, defaults to now"`
}

// CreateTransactionInput is the Huma input for posting a transaction.
type CreateTransactionInput struct {
	identity.Identity
	Body CreateTransactionBody
}

// CreateTransactionResponse is the response body for posting a transaction.
type CreateTransactionResponse struct {
	ID         string `json:"id" doc:"UUID of the created transaction"`
	NewBalance string `json:"newBalance" doc:"Wallet balance after the posting"`
}

// CreateTransactionOutput is the Huma output for posting a transaction.
type CreateTransactionOutput struct {
	Body CreateTransactionResponse
}

// CreateTransactionHandler handles POST /v1/transaction.
type CreateTransactionHandler struct {
	Operator actionProcessor
}

// NewCreateTransactionHandler creates a new CreateTransactionHandler.
func NewCreateTransactionHandler(op actionProcessor) *CreateTransactionHandler {
	return &CreateTransactionHandler{Operator: op}
}

// Register registers the create transaction endpoint with the Huma API.
func (h *CreateTransactionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "create-transaction",
		Method:        http.MethodPost,
		Path:          "/v1/transaction",
		Summary:       "Create transaction",
		Description:   "Posts a new income or expense and moves the wallet balance with it.",
		Tags:          []string{"Transactions"},
		DefaultStatus: http.StatusCreated,
	}, h.handle)
}

// parseCreateTransactionInput parses and validates the API input.
func parseCreateTransactionInput(input *CreateTransactionInput) (walletID, categoryID uuid.UUID, amount decimal.Decimal, date time.Time, err error) {
	walletID, err = uuid.FromString(input.Body.WalletID)
	if err != nil {
		err = huma.NewError(http.StatusBadRequest, "invalid walletID", err)
		return
	}
	categoryID, err = uuid.FromString(input.Body.CategoryID)
	if err != nil {
		err = huma.NewError(http.StatusBadRequest, "invalid categoryID", err)
		return
	}
	amount, err = decimal.NewFromString(input.Body.Amount)
	if err != nil {
		err = huma.NewError(http.StatusBadRequest, "invalid amount", err)
		return
	}
	if input.Body.Date != "" {
		date, err = time.Parse(time.RFC3339, input.Body.Date)
		if err != nil {
			err = huma.NewError(http.StatusBadRequest, "invalid date", err)
			return
		}
	}
	return
}

func (h *CreateTransactionHandler) handle(ctx context.Context, input *CreateTransactionInput) (*CreateTransactionOutput, error) {
	userID, err := input.ParseUserID()
	if err != nil {
		return nil, err
	}
	walletID, categoryID, amount, date, err := parseCreateTransactionInput(input)
	if err != nil {
		return nil, err
	}

	action := &actions.PostTransaction{
		UserID:     userID,
		WalletID:   walletID,
		CategoryID: categoryID,
		Name:       input.Body.Name,
		Amount:     amount,
		Type:       storagetransaction.Type(input.Body.Type),
		Repeating:  input.Body.Repeating,
		Frequency:  storagetransaction.Frequency(input.Body.Frequency),
		Date:       date,
	}

	if err := h.Operator.Process(ctx, action); err != nil {
		return nil, httperr.Wrap(err, "failed to create transaction")
	}

	return &CreateTransactionOutput{
		Body: CreateTransactionResponse{
			ID:         action.TransactionID.String(),
			NewBalance: action.NewBalance.String(),
		},
	}, nil
}
