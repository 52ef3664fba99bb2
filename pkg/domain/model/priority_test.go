package model_test

import (
	"testing"
	"time"

	"github.com/govops-lab/ministrydesk/pkg/domain/model"
	"github.com/govops-lab/ministrydesk/pkg/domain/types"
	"github.com/m-mizutani/gt"
)

func TestDerivePriority(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	days := func(d int) *time.Time {
		due := now.AddDate(0, 0, d)
		return &due
	}

	t.Run("no due date defaults to medium", func(t *testing.T) {
		gt.Value(t, model.DerivePriority(now, nil)).Equal(types.PriorityMedium)
	})

	t.Run("past due is urgent", func(t *testing.T) {
		gt.Value(t, model.DerivePriority(now, days(-1))).Equal(types.PriorityUrgent)
		gt.Value(t, model.DerivePriority(now, days(-30))).Equal(types.PriorityUrgent)
	})

	t.Run("within two days is high", func(t *testing.T) {
		gt.Value(t, model.DerivePriority(now, days(1))).Equal(types.PriorityHigh)
		gt.Value(t, model.DerivePriority(now, days(2))).Equal(types.PriorityHigh)
	})

	t.Run("within a week is medium", func(t *testing.T) {
		gt.Value(t, model.DerivePriority(now, days(3))).Equal(types.PriorityMedium)
		gt.Value(t, model.DerivePriority(now, days(7))).Equal(types.PriorityMedium)
	})

	t.Run("beyond a week is low", func(t *testing.T) {
		gt.Value(t, model.DerivePriority(now, days(8))).Equal(types.PriorityLow)
		gt.Value(t, model.DerivePriority(now, days(10))).Equal(types.PriorityLow)
		gt.Value(t, model.DerivePriority(now, days(365))).Equal(types.PriorityLow)
	})

	t.Run("urgency is non-increasing as due date moves out", func(t *testing.T) {
		prev := model.DerivePriority(now, days(-5))
		for d := -4; d <= 30; d++ {
			cur := model.DerivePriority(now, days(d))
			gt.Bool(t, cur.Rank() <= prev.Rank()).True()
			prev = cur
		}
	})

	t.Run("sub-day remainder rounds up", func(t *testing.T) {
		due := now.Add(36 * time.Hour) // ceil(1.5d) = 2d -> high
		gt.Value(t, model.DerivePriority(now, &due)).Equal(types.PriorityHigh)
	})
}
