package service

import (
	"bloom_daily_backend/internal/model"
	"bloom_daily_backend/internal/repository"
	"bloom_daily_backend/pkg/monitoring"
	"bloom_daily_backend/pkg/tracing"
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
)

type AnalyticsService struct {
	UserRepo       *repository.UserRepository
	RoutineRepo    *repository.RoutineRepository
	RoutineLogRepo *repository.RoutineLogRepository
	GoalRepo       *repository.GoalRepository
	GoalLogRepo    *repository.GoalLogRepository
	Location       *time.Location
	Now            func() time.Time
}

func NewAnalyticsService(
	userRepo *repository.UserRepository,
	routineRepo *repository.RoutineRepository,
	routineLogRepo *repository.RoutineLogRepository,
	goalRepo *repository.GoalRepository,
	goalLogRepo *repository.GoalLogRepository,
	loc *time.Location,
) *AnalyticsService {
	if loc == nil {
		loc = time.Local
	}
	return &AnalyticsService{
		UserRepo:       userRepo,
		RoutineRepo:    routineRepo,
		RoutineLogRepo: routineLogRepo,
		GoalRepo:       goalRepo,
		GoalLogRepo:    goalLogRepo,
		Location:       loc,
		Now:            time.Now,
	}
}

func (s *AnalyticsService) now() time.Time {
	return s.Now().In(s.Location)
}

// ResolveAndAggregate 解析时间范围并生成例程与目标的分桶序列
func (s *AnalyticsService) ResolveAndAggregate(ctx context.Context, userID uint, tag model.TimeRange) (*model.AnalyticsSeries, error) {
	ctx, span := tracing.StartSpan(ctx, "analytics.ResolveAndAggregate")
	defer span.End()
	span.SetAttributes(attribute.String("range", string(tag)), attribute.Int("user_id", int(userID)))

	started := time.Now()
	now := s.now()

	rr, err := ResolveTimeRange(tag, now)
	if err != nil {
		return nil, err
	}

	routines, err := s.RoutineRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	routineLogs, err := s.RoutineLogRepo.FindInRange(ctx, userID, rr.Start, rr.End)
	if err != nil {
		return nil, err
	}

	goalLogs, err := s.GoalLogRepo.FindInRange(ctx, userID, rr.Start, rr.End)
	if err != nil {
		return nil, err
	}

	series := &model.AnalyticsSeries{
		Range:         rr.Range,
		Granularity:   rr.Granularity,
		StartDate:     rr.Start,
		EndDate:       rr.End,
		RoutineSeries: AggregateRoutines(rr, routines, routineLogs, now),
		GoalSeries:    AggregateGoals(rr, goalLogs),
	}

	monitoring.AggregationDuration.WithLabelValues(string(tag)).Observe(time.Since(started).Seconds())
	return series, nil
}

// ClassifyGoalStatus 统计当前开放目标的状态分布，已完成数取自本年度完成记录
func (s *AnalyticsService) ClassifyGoalStatus(ctx context.Context, userID uint) (*model.GoalStatusDistribution, error) {
	ctx, span := tracing.StartSpan(ctx, "analytics.ClassifyGoalStatus")
	defer span.End()

	now := s.now()

	goals, err := s.GoalRepo.FindOpenByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	yearStart := time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location())
	completed, err := s.GoalLogRepo.CountInRange(ctx, userID, yearStart, yearStart.AddDate(1, 0, 0))
	if err != nil {
		return nil, err
	}

	dist := ClassifyGoals(goals, int(completed), now)
	return &dist, nil
}

// CompletedGoals 最近完成的目标列表
func (s *AnalyticsService) CompletedGoals(ctx context.Context, userID uint, limit int) ([]model.CompletedGoalEntry, error) {
	logs, err := s.GoalLogRepo.FindRecent(ctx, userID, limit)
	if err != nil {
		return nil, err
	}

	entries := make([]model.CompletedGoalEntry, 0, len(logs))
	for _, l := range logs {
		entries = append(entries, model.CompletedGoalEntry{
			ID:           l.ID,
			GoalName:     l.GoalName,
			CompletedAt:  l.CompletedAt,
			RewardPoints: l.RewardPoints,
		})
	}
	return entries, nil
}

// GetAnalytics 分析页所需的全部数据
func (s *AnalyticsService) GetAnalytics(ctx context.Context, userID uint, tag model.TimeRange, limit int) (*model.AnalyticsData, error) {
	user, err := s.UserRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	series, err := s.ResolveAndAggregate(ctx, userID, tag)
	if err != nil {
		return nil, err
	}

	status, err := s.ClassifyGoalStatus(ctx, userID)
	if err != nil {
		return nil, err
	}

	completed, err := s.CompletedGoals(ctx, userID, limit)
	if err != nil {
		return nil, err
	}

	return &model.AnalyticsData{
		Series:         series,
		GoalStatus:     status,
		CompletedGoals: completed,
		TotalPoints:    user.RewardPoints,
	}, nil
}
