package service

import (
	"bloom_daily_backend/internal/model"
	"bloom_daily_backend/internal/util"
	"errors"
	"reflect"
	"testing"
	"time"
)

func TestResolveAndAggregateFromStore(t *testing.T) {
	f := newFixture(t)
	gratitude := f.routine(t, "Daily Gratitude")

	for _, day := range []int{12, 13, 14} {
		f.clock = time.Date(2026, time.October, day, 8, 0, 0, 0, time.UTC)
		if _, _, err := f.completion.MarkRoutineDone(bg, f.user.ID, gratitude.ID); err != nil {
			t.Fatalf("MarkRoutineDone(%d) error = %v", day, err)
		}
	}
	f.clock = testNow

	series, err := f.analytics.ResolveAndAggregate(bg, f.user.ID, model.RangeWeekly)
	if err != nil {
		t.Fatalf("ResolveAndAggregate() error = %v", err)
	}
	if series.Granularity != model.GranularityDay || len(series.RoutineSeries) != 7 || len(series.GoalSeries) != 7 {
		t.Fatalf("series shape = %s/%d/%d", series.Granularity, len(series.RoutineSeries), len(series.GoalSeries))
	}

	wantCompleted := []int{1, 1, 1, 0, 0, 0, 0}
	for i, b := range series.RoutineSeries {
		if b.Completed != wantCompleted[i] {
			t.Errorf("%s completed = %d, want %d", b.Label, b.Completed, wantCompleted[i])
		}
	}
	if series.RoutineSeries[0].Tooltip != "Daily Gratitude (+10pts)" {
		t.Errorf("Mon tooltip = %q", series.RoutineSeries[0].Tooltip)
	}
	if series.RoutineSeries[4].Tooltip != util.EmptyBucketTooltip {
		t.Errorf("Fri tooltip = %q", series.RoutineSeries[4].Tooltip)
	}

	// Wed: Hair Wash Day due but not done
	if m := derefInt(series.RoutineSeries[2].Missed); m != 1 {
		t.Errorf("Wed missed = %d, want 1", m)
	}

	again, err := f.analytics.ResolveAndAggregate(bg, f.user.ID, model.RangeWeekly)
	if err != nil {
		t.Fatalf("second ResolveAndAggregate() error = %v", err)
	}
	if !reflect.DeepEqual(series.RoutineSeries, again.RoutineSeries) {
		t.Error("repeated aggregation returned different buckets")
	}
}

func TestResolveAndAggregateInvalidRange(t *testing.T) {
	f := newFixture(t)

	_, err := f.analytics.ResolveAndAggregate(bg, f.user.ID, "daily")
	if !errors.Is(err, util.ErrInvalidRange) {
		t.Errorf("error = %v, want ErrInvalidRange", err)
	}
}

func TestClassifyGoalStatusFromStore(t *testing.T) {
	f := newFixture(t)

	dist, err := f.analytics.ClassifyGoalStatus(bg, f.user.ID)
	if err != nil {
		t.Fatalf("ClassifyGoalStatus() error = %v", err)
	}
	if *dist != (model.GoalStatusDistribution{InProgress: 3}) {
		t.Errorf("seeded distribution = %+v", *dist)
	}

	past := testNow.AddDate(0, -1, 0)
	overdue := &model.Goal{UserID: f.user.ID, Name: "Finish journal", Type: model.GoalSpiritual, EndDate: &past}
	if err := f.analytics.GoalRepo.Create(bg, overdue); err != nil {
		t.Fatalf("create goal: %v", err)
	}

	goal := f.goal(t, "Read the Book of John")
	if _, err := f.completion.CompleteGoal(bg, f.user.ID, goal.ID); err != nil {
		t.Fatalf("CompleteGoal() error = %v", err)
	}

	dist, err = f.analytics.ClassifyGoalStatus(bg, f.user.ID)
	if err != nil {
		t.Fatalf("ClassifyGoalStatus() error = %v", err)
	}
	want := model.GoalStatusDistribution{Completed: 1, InProgress: 2, Overdue: 1}
	if *dist != want {
		t.Errorf("distribution = %+v, want %+v", *dist, want)
	}
}

func TestGetAnalytics(t *testing.T) {
	f := newFixture(t)

	for i, name := range []string{"Read the Book of John", "Gain 8kg in 3 months"} {
		f.clock = testNow.Add(time.Duration(i) * time.Hour)
		if _, err := f.completion.CompleteGoal(bg, f.user.ID, f.goal(t, name).ID); err != nil {
			t.Fatalf("CompleteGoal(%q) error = %v", name, err)
		}
	}
	f.clock = testNow.Add(2 * time.Hour)

	data, err := f.analytics.GetAnalytics(bg, f.user.ID, model.RangeMonthly, 10)
	if err != nil {
		t.Fatalf("GetAnalytics() error = %v", err)
	}
	if data.TotalPoints != 300 {
		t.Errorf("TotalPoints = %d, want 300", data.TotalPoints)
	}
	if len(data.CompletedGoals) != 2 || data.CompletedGoals[0].GoalName != "Gain 8kg in 3 months" {
		t.Errorf("CompletedGoals = %+v, want newest first", data.CompletedGoals)
	}
	if data.GoalStatus.Completed != 2 || data.GoalStatus.InProgress != 1 {
		t.Errorf("GoalStatus = %+v", *data.GoalStatus)
	}

	total := 0
	for _, b := range data.Series.GoalSeries {
		total += b.Completed
	}
	if total != 2 {
		t.Errorf("goal series total = %d, want 2", total)
	}
}

func TestGetAnalyticsUnknownUser(t *testing.T) {
	f := newFixture(t)

	_, err := f.analytics.GetAnalytics(bg, f.user.ID+100, model.RangeWeekly, 10)
	if !errors.Is(err, util.ErrUserNotFound) {
		t.Errorf("error = %v, want ErrUserNotFound", err)
	}
}

func TestClassifyGoalStatusAcrossZones(t *testing.T) {
	f := newFixture(t)
	goal := f.goal(t, "Read the Book of John")

	// Dec 31 20:00 UTC is already Jan 1 in Tokyo
	f.clock = time.Date(2026, time.December, 31, 20, 0, 0, 0, time.UTC)
	if _, err := f.completion.CompleteGoal(bg, f.user.ID, goal.ID); err != nil {
		t.Fatalf("CompleteGoal() error = %v", err)
	}

	tokyo := time.FixedZone("JST", 9*60*60)
	f.analytics.Location = tokyo
	f.clock = time.Date(2027, time.January, 10, 12, 0, 0, 0, tokyo)

	dist, err := f.analytics.ClassifyGoalStatus(bg, f.user.ID)
	if err != nil {
		t.Fatalf("ClassifyGoalStatus() error = %v", err)
	}
	if dist.Completed != 1 {
		t.Errorf("Completed = %d, want 1", dist.Completed)
	}

	series, err := f.analytics.ResolveAndAggregate(bg, f.user.ID, model.RangeYearly)
	if err != nil {
		t.Fatalf("ResolveAndAggregate() error = %v", err)
	}
	if series.GoalSeries[0].Completed != 1 {
		t.Errorf("Jan goal bucket = %d, want 1", series.GoalSeries[0].Completed)
	}
}
