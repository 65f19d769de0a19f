package goal

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/BojanNestorovic/WalletApp/internal/operator/actions"
	"github.com/BojanNestorovic/WalletApp/internal/service"
)

// Goal is the API response model for a savings goal, including the derived
// progress figures.
type Goal struct {
	ID                 string `json:"id" doc:"Goal UUID"`
	Name               string `json:"name" doc:"Goal name"`
	WalletID           string `json:"walletID" doc:"Linked savings wallet UUID"`
	TargetAmount       string `json:"targetAmount" doc:"Decimal target amount"`
	CurrentAmount      string `json:"currentAmount" doc:"Last synced wallet balance"`
	TargetDate         string `json:"targetDate" doc:"RFC3339 target date"`
	Completed          bool   `json:"completed" doc:"Latched once the target is reached"`
	ProgressPercentage string `json:"progressPercentage" doc:"current/target as a percentage"`
	RemainingAmount    string `json:"remainingAmount" doc:"target minus current, negative when overshot"`
	Overdue            bool   `json:"overdue" doc:"Target date passed without completing"`
	OnTrack            bool   `json:"onTrack" doc:"Progress keeps pace with the schedule"`
	CreatedAt          string `json:"createdAt" doc:"RFC3339 creation time"`
}

func goalFromService(g service.Goal, now time.Time) Goal {
	return Goal{
		ID:                 g.ID.String(),
		Name:               g.Name,
		WalletID:           g.WalletID.String(),
		TargetAmount:       g.TargetAmount.String(),
		CurrentAmount:      g.CurrentAmount.String(),
		TargetDate:         g.TargetDate.Format(time.RFC3339),
		Completed:          g.Completed,
		ProgressPercentage: g.ProgressPercentage().String(),
		RemainingAmount:    g.RemainingAmount().String(),
		Overdue:            g.IsOverdue(now),
		OnTrack:            g.IsOnTrack(now),
		CreatedAt:          g.CreatedAt.Format(time.RFC3339),
	}
}

// actionProcessor is the interface for running ledger actions.
type actionProcessor interface {
	Process(ctx context.Context, action actions.IAction) error
}

// goalGetter is the interface for reading a single goal.
type goalGetter interface {
	GetGoal(ctx context.Context, userID, id uuid.UUID) (*service.Goal, error)
}
