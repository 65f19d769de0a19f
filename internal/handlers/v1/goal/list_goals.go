package goal

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/BojanNestorovic/WalletApp/internal/handlers/v1/httperr"
	"github.com/BojanNestorovic/WalletApp/internal/handlers/v1/identity"
	"github.com/BojanNestorovic/WalletApp/internal/service"
)

// goalLister is the interface for listing goals.
type goalLister interface {
	ListGoals(ctx context.Context, userID uuid.UUID) ([]service.Goal, error)
	ListGoalsByCompleted(ctx context.Context, userID uuid.UUID, completed bool) ([]service.Goal, error)
	ListOverdueGoals(ctx context.Context, userID uuid.UUID, now time.Time) ([]service.Goal, error)
}

// ListGoalsInput is the Huma input for listing goals.
type ListGoalsInput struct {
	identity.Identity
	State string `query:"state" enum:",completed,active,overdue" doc:"Filter by goal state"`
}

// ListGoalsResponseBody is the response body for listing goals.
type ListGoalsResponseBody struct {
	Goals []Goal `json:"goals" doc:"The caller's goals, soonest target date first"`
}

// ListGoalsOutput is the Huma output for listing goals.
type ListGoalsOutput struct {
	Body ListGoalsResponseBody
}

// ListGoalsHandler handles GET /v1/goal.
type ListGoalsHandler struct {
	GoalService goalLister
}

// NewListGoalsHandler creates a new ListGoalsHandler.
func NewListGoalsHandler(svc goalLister) *ListGoalsHandler {
	return &ListGoalsHandler{GoalService: svc}
}

// Register registers the list goals endpoint with the Huma API.
func (h *ListGoalsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-goals",
		Method:      http.MethodGet,
		Path:        "/v1/goal",
		Summary:     "List savings goals",
		Description: "Returns the caller's savings goals, optionally filtered by state.",
		Tags:        []string{"Goals"},
	}, h.handle)
}

func (h *ListGoalsHandler) handle(ctx context.Context, input *ListGoalsInput) (*ListGoalsOutput, error) {
	userID, err := input.ParseUserID()
	if err != nil {
		return nil, err
	}

	now := time.Now()
	var goals []service.Goal
	switch input.State {
	case "completed":
		goals, err = h.GoalService.ListGoalsByCompleted(ctx, userID, true)
	case "active":
		goals, err = h.GoalService.ListGoalsByCompleted(ctx, userID, false)
	case "overdue":
		goals, err = h.GoalService.ListOverdueGoals(ctx, userID, now)
	default:
		goals, err = h.GoalService.ListGoals(ctx, userID)
	}
	if err != nil {
		return nil, httperr.Wrap(err, "failed to list goals")
	}

	resp := ListGoalsResponseBody{Goals: make([]Goal, len(goals))}
	for i, g := range goals {
		resp.Goals[i] = goalFromService(g, now)
	}

	return &ListGoalsOutput{Body: resp}, nil
}
