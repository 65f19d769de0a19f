package goal

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/BojanNestorovic/WalletApp/internal/handlers/v1/httperr"
	"github.com/BojanNestorovic/WalletApp/internal/handlers/v1/identity"
	"github.com/BojanNestorovic/WalletApp/internal/operator/actions"
)

// DeleteGoalInput is the Huma input for deleting a goal.
type DeleteGoalInput struct {
	identity.Identity
	ID string `path:"id" format:"uuid" doc:"Goal UUID"`
}

// DeleteGoalOutput is the Huma output for deleting a goal.
type DeleteGoalOutput struct {
	Status int
}

// DeleteGoalHandler handles DELETE /v1/goal/{id}.
type DeleteGoalHandler struct {
	Operator actionProcessor
}

// NewDeleteGoalHandler creates a new DeleteGoalHandler.
func NewDeleteGoalHandler(op actionProcessor) *DeleteGoalHandler {
	return &DeleteGoalHandler{Operator: op}
}

// Register registers the delete goal endpoint with the Huma API.
func (h *DeleteGoalHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "delete-goal",
		Method:      http.MethodDelete,
		Path:        "/v1/goal/{id}",
		Summary:     "Delete savings goal",
		Description: "Deletes a goal. The wallet and its history are untouched.",
		Tags:        []string{"Goals"},
	}, h.handle)
}

func (h *DeleteGoalHandler) handle(ctx context.Context, input *DeleteGoalInput) (*DeleteGoalOutput, error) {
	userID, err := input.ParseUserID()
	if err != nil {
		return nil, err
	}
	id, err := uuid.FromString(input.ID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid goal id", err)
	}

	action := &actions.DeleteGoal{
		UserID: userID,
		GoalID: id,
	}

	if err := h.Operator.Process(ctx, action); err != nil {
		return nil, httperr.Wrap(err, "failed to delete goal")
	}

	return &DeleteGoalOutput{Status: http.StatusNoContent}, nil
}
