package service

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestGoalProgressPercentage(t *testing.T) {
	g := Goal{
		TargetAmount:  decimal.RequireFromString("1000.00"),
		CurrentAmount: decimal.RequireFromString("250.00"),
	}
	assert.Equal(t, "25.0000", g.ProgressPercentage().String())

	g.CurrentAmount = decimal.RequireFromString("1000.00")
	assert.Equal(t, "100.0000", g.ProgressPercentage().String())

	g.TargetAmount = decimal.Zero
	assert.True(t, g.ProgressPercentage().IsZero())
}

func TestGoalRemainingAmount(t *testing.T) {
	g := Goal{
		TargetAmount:  decimal.RequireFromString("1000.00"),
		CurrentAmount: decimal.RequireFromString("400.00"),
	}
	assert.Equal(t, "600.00", g.RemainingAmount().StringFixed(2))

	// Overshot goals go negative; display code clamps.
	g.CurrentAmount = decimal.RequireFromString("1100.00")
	assert.Equal(t, "-100.00", g.RemainingAmount().StringFixed(2))
}

func TestGoalIsOverdue(t *testing.T) {
	now := time.Date(2026, time.June, 15, 12, 0, 0, 0, time.UTC)

	g := Goal{TargetDate: now.AddDate(0, 0, -1)}
	assert.True(t, g.IsOverdue(now))

	g.Completed = true
	assert.False(t, g.IsOverdue(now))

	g = Goal{TargetDate: now.AddDate(0, 0, 1)}
	assert.False(t, g.IsOverdue(now))
}

func TestGoalIsOnTrack(t *testing.T) {
	created := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)
	target := created.AddDate(0, 0, 100)

	g := Goal{
		CreatedAt:     created,
		TargetDate:    target,
		TargetAmount:  decimal.RequireFromString("1000.00"),
		CurrentAmount: decimal.RequireFromString("500.00"),
	}

	// Halfway through the money at 40% of the time: ahead of schedule.
	assert.True(t, g.IsOnTrack(created.AddDate(0, 0, 40)))

	// Halfway through the money at 60% of the time: behind.
	assert.False(t, g.IsOnTrack(created.AddDate(0, 0, 60)))

	// Exactly on pace counts as on track.
	assert.True(t, g.IsOnTrack(created.AddDate(0, 0, 50)))
}

func TestGoalIsOnTrack_CompletedAlwaysOnTrack(t *testing.T) {
	g := Goal{
		Completed:     true,
		CreatedAt:     time.Now().AddDate(0, 0, -10),
		TargetDate:    time.Now().AddDate(0, 0, -5),
		TargetAmount:  decimal.RequireFromString("1000.00"),
		CurrentAmount: decimal.Zero,
	}
	assert.True(t, g.IsOnTrack(time.Now()))
}

func TestGoalIsOnTrack_ZeroLengthSchedule(t *testing.T) {
	created := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)

	g := Goal{
		CreatedAt:     created,
		TargetDate:    created,
		TargetAmount:  decimal.RequireFromString("1000.00"),
		CurrentAmount: decimal.RequireFromString("999.00"),
	}
	assert.False(t, g.IsOnTrack(created))
}
