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

// UpdateGoalBody is the request body for updating a goal.
type UpdateGoalBody struct {
	Name         string `json:"name" required:"true" minLength:"1" doc:"Goal name"`
	TargetAmount string `json:"targetAmount" required:"true" doc:"Decimal target, positive"`
	TargetDate   string `json:"targetDate" required:"true" format:"date-time" doc:"RFC3339 target date"`
}

// UpdateGoalInput is the Huma input for updating a goal.
type UpdateGoalInput struct {
	identity.Identity
	ID   string `path:"id" format:"uuid" doc:"Goal UUID"`
	Body UpdateGoalBody
}

// UpdateGoalOutput is the Huma output for updating a goal.
type UpdateGoalOutput struct {
	Status int
}

// UpdateGoalHandler handles PUT /v1/goal/{id}.
type UpdateGoalHandler struct {
	Operator actionProcessor
}

// NewUpdateGoalHandler creates a new UpdateGoalHandler.
func NewUpdateGoalHandler(op actionProcessor) *UpdateGoalHandler {
	return &UpdateGoalHandler{Operator: op}
}

// Register registers the update goal endpoint with the Huma API.
func (h *UpdateGoalHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "update-goal",
		Method:      http.MethodPut,
		Path:        "/v1/goal/{id}",
		Summary:     "Update savings goal",
		Description: "Changes a goal's name, target amount and target date.",
		Tags:        []string{"Goals"},
	}, h.handle)
}

func (h *UpdateGoalHandler) handle(ctx context.Context, input *UpdateGoalInput) (*UpdateGoalOutput, error) {
	userID, err := input.ParseUserID()
	if err != nil {
		return nil, err
	}
	id, err := uuid.FromString(input.ID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid goal id", err)
	}
	targetAmount, err := decimal.NewFromString(input.Body.TargetAmount)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid targetAmount", err)
	}
	targetDate, err := time.Parse(time.RFC3339, input.Body.TargetDate)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid targetDate", err)
	}

	action := &actions.UpdateGoal{
		UserID:       userID,
		GoalID:       id,
		Name:         input.Body.Name,
		TargetAmount: targetAmount,
		TargetDate:   targetDate,
	}

	if err := h.Operator.Process(ctx, action); err != nil {
		return nil, httperr.Wrap(err, "failed to update goal")
	}

	return &UpdateGoalOutput{Status: http.StatusNoContent}, nil
}
