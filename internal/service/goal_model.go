package service

import (
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/BojanNestorovic/WalletApp/internal/core"
	storagegoal "github.com/BojanNestorovic/WalletApp/internal/storage/goal"
)

// Goal represents a savings goal in the service layer. CurrentAmount is the
// last synced snapshot of the linked wallet's balance.
type Goal struct {
	ID            uuid.UUID
	Name          string
	TargetAmount  decimal.Decimal
	CurrentAmount decimal.Decimal
	TargetDate    time.Time
	WalletID      uuid.UUID
	Completed     bool
	CreatedAt     time.Time
}

// ProgressPercentage is current/target as a percentage, half-up at four
// decimal places. Zero when the target is zero.
func (g Goal) ProgressPercentage() decimal.Decimal {
	return core.ProgressPercent(g.CurrentAmount, g.TargetAmount)
}

// RemainingAmount is target minus current. Negative once the goal is
// overshot; callers clamp for display if they want to.
func (g Goal) RemainingAmount() decimal.Decimal {
	return g.TargetAmount.Sub(g.CurrentAmount)
}

// IsOverdue reports whether the target date has passed without the goal
// completing.
func (g Goal) IsOverdue(now time.Time) bool {
	return now.After(g.TargetDate) && !g.Completed
}

// IsOnTrack compares time elapsed against progress made: the goal is on
// track while the elapsed fraction of the schedule does not exceed the
// achieved fraction of the target. Completed goals are always on track; a
// schedule of zero or negative length never is.
func (g Goal) IsOnTrack(now time.Time) bool {
	if g.Completed {
		return true
	}

	totalDays := daysBetween(g.CreatedAt, g.TargetDate)
	if totalDays <= 0 {
		return false
	}
	elapsedDays := daysBetween(g.CreatedAt, now)

	expected := decimal.NewFromInt(elapsedDays).
		Div(decimal.NewFromInt(totalDays)).
		Round(core.PercentScale)
	actual := core.ProgressPercent(g.CurrentAmount, g.TargetAmount).
		Div(decimal.NewFromInt(100)).
		Round(core.PercentScale)

	return expected.LessThanOrEqual(actual)
}

func daysBetween(from, to time.Time) int64 {
	return int64(to.Sub(from).Hours() / 24)
}

func goalFromStorage(row *storagegoal.Goal) Goal {
	return Goal{
		ID:            row.ID,
		Name:          row.Name,
		TargetAmount:  row.TargetAmount,
		CurrentAmount: row.CurrentAmount,
		TargetDate:    row.TargetDate,
		WalletID:      row.WalletID,
		Completed:     row.Completed,
		CreatedAt:     row.CreatedAt,
	}
}

func goalsFromStorage(rows []*storagegoal.Goal) []Goal {
	goals := make([]Goal, len(rows))
	for i, row := range rows {
		goals[i] = goalFromStorage(row)
	}
	return goals
}
