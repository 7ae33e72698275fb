package v1

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/vagledaren/vagledaren/pkg/types"
)

func TestProgressStatus(t *testing.T) {
	assert.Equal(t, types.GOAL_STATUS_COMPLETED, progressStatus(types.GOAL_STATUS_IN_PROGRESS, 100))
	assert.Equal(t, types.GOAL_STATUS_IN_PROGRESS, progressStatus(types.GOAL_STATUS_NOT_STARTED, 1))
	assert.Equal(t, types.GOAL_STATUS_IN_PROGRESS, progressStatus(types.GOAL_STATUS_NOT_STARTED, 99))
	// zero progress leaves the current status untouched
	assert.Equal(t, types.GOAL_STATUS_PAUSED, progressStatus(types.GOAL_STATUS_PAUSED, 0))
}

func TestBuildOverview(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("empty", func(t *testing.T) {
		overview := buildOverview(nil, now)
		assert.Equal(t, 0, overview.Total)
		assert.Zero(t, overview.CompletionRate)
		assert.NotEmpty(t, overview.Insights)
	})

	t.Run("counts and completion rate", func(t *testing.T) {
		goals := []types.Goal{
			{Title: "a", Status: types.GOAL_STATUS_COMPLETED},
			{Title: "b", Status: types.GOAL_STATUS_COMPLETED},
			{Title: "c", Status: types.GOAL_STATUS_IN_PROGRESS},
			{Title: "d", Status: types.GOAL_STATUS_NOT_STARTED},
		}
		overview := buildOverview(goals, now)
		assert.Equal(t, 4, overview.Total)
		assert.Equal(t, 2, overview.Completed)
		assert.Equal(t, 1, overview.InProgress)
		assert.Equal(t, 1, overview.NotStarted)
		assert.InDelta(t, 50.0, overview.CompletionRate, 1e-9)
	})

	t.Run("overdue goals need attention", func(t *testing.T) {
		past := now.AddDate(0, -1, 0).Unix()
		goals := []types.Goal{
			{Title: "late", Status: types.GOAL_STATUS_IN_PROGRESS, TargetDate: past},
			{Title: "done late", Status: types.GOAL_STATUS_COMPLETED, TargetDate: past},
			{Title: "future", Status: types.GOAL_STATUS_IN_PROGRESS, TargetDate: now.AddDate(0, 1, 0).Unix()},
		}
		overview := buildOverview(goals, now)
		assert.Equal(t, []string{"late"}, overview.NeedAttention)
	})

	t.Run("career heavy portfolio gets balance advice", func(t *testing.T) {
		goals := []types.Goal{
			{Title: "a", GoalType: types.GOAL_TYPE_CAREER},
			{Title: "b", GoalType: types.GOAL_TYPE_CAREER},
			{Title: "c", GoalType: types.GOAL_TYPE_CAREER},
		}
		overview := buildOverview(goals, now)
		assert.Contains(t, overview.Insights[0], "karriär")
	})
}
