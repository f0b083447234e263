package service

import (
	"bloom_daily_backend/internal/model"
	"time"
)

// ClassifyGoals partitions open goals into overdue and in-progress.
// Overdue takes priority; every other open goal, measurable at target
// included, stays in progress until it is completed explicitly.
// completedThisYear is reported as is.
func ClassifyGoals(goals []model.Goal, completedThisYear int, now time.Time) model.GoalStatusDistribution {
	dist := model.GoalStatusDistribution{Completed: completedThisYear}

	for i := range goals {
		g := &goals[i]
		if g.OverdueAt(now) {
			dist.Overdue++
			continue
		}
		dist.InProgress++
	}

	return dist
}
