package goal

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
)

// CreateGoalBody is the request body for creating a savings goal.
type CreateGoalBody struct {
	WalletID     string `json:"walletID" required:"true" format:"uuid" doc:"Savings wallet UUID"`
	Name         string `json:"name" required:"true" minLength:"1" doc:"Goal name"`
	TargetAmount string `json:"targetAmount" required:"true" doc:"Decimal target, positive"`
	TargetDate   string `json:"targetDate" required:"true" format:"date-time" doc:"RFC3339 target date"`
}

// CreateGoalInput is the Huma input for creating a goal.
type CreateGoalInput struct {
	identity.Identity
	Body CreateGoalBody
}

// CreateGoalResponse is the response body for creating a goal.
type CreateGoalResponse struct {
	ID string `json:"id" doc:"UUID of the created goal"`
}

// CreateGoalOutput is the Huma output for creating a goal.
type CreateGoalOutput struct {
	Body CreateGoalResponse
}

// CreateGoalHandler handles POST /v1/goal.
type CreateGoalHandler struct {
	Operator actionProcessor
}

// NewCreateGoalHandler creates a new CreateGoalHandler.
func NewCreateGoalHandler(op actionProcessor) *CreateGoalHandler {
	return &CreateGoalHandler{Operator: op}
}

// Register registers the create goal endpoint with the Huma API.
func (h *CreateGoalHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "create-goal",
		Method:        http.MethodPost,
		Path:          "/v1/goal",
		Summary:       "Create savings goal",
		Description:   "Creates a goal against one of the caller's savings wallets.",
		Tags:          []string{"Goals"},
		DefaultStatus: http.StatusCreated,
	}, h.handle)
}

func (h *CreateGoalHandler) handle(ctx context.Context, input *CreateGoalInput) (*CreateGoalOutput, error) {
	userID, err := input.ParseUserID()
	if err != nil {
		return nil, err
	}
	walletID, err := uuid.FromString(input.Body.WalletID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid walletID", err)
	}
	targetAmount, err := decimal.NewFromString(input.Body.TargetAmount)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid targetAmount", err)
	}
	targetDate, err := time.Parse(time.RFC3339, input.Body.TargetDate)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid targetDate", err)
	}

	action := &actions.CreateGoal{
		UserID:       userID,
		WalletID:     walletID,
		Name:         input.Body.Name,
		TargetAmount: targetAmount,
		TargetDate:   targetDate,
	}

	if err := h.Operator.Process(ctx, action); err != nil {
		return nil, httperr.Wrap(err, "failed to create goal")
	}

	return &CreateGoalOutput{
		Body: CreateGoalResponse{ID: action.GoalID.String()},
	}, nil
}
