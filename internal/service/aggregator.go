package service

import (
	"bloom_daily_backend/internal/model"
	"bloom_daily_backend/internal/util"
	"fmt"
	"strings"
	"time"
)

type accumulator struct {
	completed int
	expected  int
	lines     []string
}

func (a *accumulator) add(name string, points int) {
	a.completed++
	a.lines = append(a.lines, fmt.Sprintf("%s (+%dpts)", name, points))
}

func (a *accumulator) tooltip() string {
	if len(a.lines) == 0 {
		return util.EmptyBucketTooltip
	}
	return strings.Join(a.lines, "\n")
}

// AggregateRoutines buckets routine completions over rr. Several logs of
// the same routine on the same calendar day count once. Missed is the
// shortfall against routines due on each day of the bucket up to today;
// days after today expect nothing.
func AggregateRoutines(rr *ResolvedRange, routines []model.Routine, logs []model.RoutineCompletionLog, now time.Time) []model.Bucket {
	loc := rr.Start.Location()
	acc := make([]accumulator, len(rr.Buckets))

	type routineDay struct {
		routineID uint
		day       string
	}
	seen := make(map[routineDay]bool)

	for _, l := range logs {
		at := l.CompletedAt.In(loc)
		idx := rr.Locate(at)
		if idx < 0 {
			continue
		}
		key := routineDay{routineID: l.RoutineID, day: at.Format(util.DateFormat)}
		if seen[key] {
			continue
		}
		seen[key] = true
		acc[idx].add(l.RoutineName, l.RewardPoints)
	}

	today := startOfDay(now.In(loc))
	for i, b := range rr.Buckets {
		for day := b.Start; day.Before(b.End) && !day.After(today); day = day.AddDate(0, 0, 1) {
			for _, r := range routines {
				if r.ExpectedOn(day.Weekday()) {
					acc[i].expected++
				}
			}
		}
	}

	out := make([]model.Bucket, len(rr.Buckets))
	for i, b := range rr.Buckets {
		missed := acc[i].expected - acc[i].completed
		if missed < 0 {
			missed = 0
		}
		out[i] = model.Bucket{
			Label:     b.Label,
			Completed: acc[i].completed,
			Missed:    &missed,
			Tooltip:   acc[i].tooltip(),
		}
	}
	return out
}

// AggregateGoals buckets goal completions over rr, one count per log.
func AggregateGoals(rr *ResolvedRange, logs []model.GoalCompletionLog) []model.Bucket {
	loc := rr.Start.Location()
	acc := make([]accumulator, len(rr.Buckets))

	for _, l := range logs {
		idx := rr.Locate(l.CompletedAt.In(loc))
		if idx < 0 {
			continue
		}
		acc[idx].add(l.GoalName, l.RewardPoints)
	}

	out := make([]model.Bucket, len(rr.Buckets))
	for i, b := range rr.Buckets {
		out[i] = model.Bucket{
			Label:     b.Label,
			Completed: acc[i].completed,
			Tooltip:   acc[i].tooltip(),
		}
	}
	return out
}
