package goal

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/BojanNestorovic/WalletApp/internal/handlers/v1/httperr"
	"github.com/BojanNestorovic/WalletApp/internal/handlers/v1/identity"
	"github.com/BojanNestorovic/WalletApp/internal/operator/actions"
)

// SyncGoalInput is the Huma input for refreshing a goal snapshot.
type SyncGoalInput struct {
	identity.Identity
	ID string `path:"id" format:"uuid" doc:"Goal UUID"`
}

// SyncGoalOutput is the Huma output for refreshing a goal snapshot.
type SyncGoalOutput struct {
	Body Goal
}

// SyncGoalHandler handles POST /v1/goal/{id}/sync.
type SyncGoalHandler struct {
	GoalService goalGetter
	Operator    actionProcessor
}

// NewSyncGoalHandler creates a new SyncGoalHandler.
func NewSyncGoalHandler(svc goalGetter, op actionProcessor) *SyncGoalHandler {
	return &SyncGoalHandler{GoalService: svc, Operator: op}
}

// Register registers the sync goal endpoint with the Huma API.
func (h *SyncGoalHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "sync-goal",
		Method:      http.MethodPost,
		Path:        "/v1/goal/{id}/sync",
		Summary:     "Sync savings goal",
		Description: "Re-snapshots the goal's current amount from its wallet balance.",
		Tags:        []string{"Goals"},
	}, h.handle)
}

func (h *SyncGoalHandler) handle(ctx context.Context, input *SyncGoalInput) (*SyncGoalOutput, error) {
	userID, err := input.ParseUserID()
	if err != nil {
		return nil, err
	}
	id, err := uuid.FromString(input.ID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid goal id", err)
	}

	action := &actions.SyncGoal{
		UserID: userID,
		GoalID: id,
	}
	if err := h.Operator.Process(ctx, action); err != nil {
		return nil, httperr.Wrap(err, "failed to sync goal")
	}

	g, err := h.GoalService.GetGoal(ctx, userID, id)
	if err != nil {
		return nil, httperr.Wrap(err, "failed to get goal")
	}

	return &SyncGoalOutput{Body: goalFromService(*g, time.Now())}, nil
}
