package goal

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/BojanNestorovic/WalletApp/internal/handlers/v1/httperr"
	"github.com/BojanNestorovic/WalletApp/internal/handlers/v1/identity"
)

// GetGoalInput is the Huma input for fetching a goal.
type GetGoalInput struct {
	identity.Identity
	ID string `path:"id" format:"uuid" doc:"Goal UUID"`
}

// GetGoalOutput is the Huma output for fetching a goal.
type GetGoalOutput struct {
	Body Goal
}

// GetGoalHandler handles GET /v1/goal/{id}.
type GetGoalHandler struct {
	GoalService goalGetter
}

// NewGetGoalHandler creates a new GetGoalHandler.
func NewGetGoalHandler(svc goalGetter) *GetGoalHandler {
	return &GetGoalHandler{GoalService: svc}
}

// Register registers the get goal endpoint with the Huma API.
func (h *GetGoalHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-goal",
		Method:      http.MethodGet,
		Path:        "/v1/goal/{id}",
		Summary:     "Get savings goal",
		Description: "Returns one of the caller's savings goals with its progress figures.",
		Tags:        []string{"Goals"},
	}, h.handle)
}

func (h *GetGoalHandler) handle(ctx context.Context, input *GetGoalInput) (*GetGoalOutput, error) {
	userID, err := input.ParseUserID()
	if err != nil {
		return nil, err
	}
	id, err := uuid.FromString(input.ID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid goal id", err)
	}

	g, err := h.GoalService.GetGoal(ctx, userID, id)
	if err != nil {
		return nil, httperr.Wrap(err, "failed to get goal")
	}

	return &GetGoalOutput{Body: goalFromService(*g, time.Now())}, nil
}
