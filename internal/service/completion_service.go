package service

import (
	"bloom_daily_backend/internal/model"
	"bloom_daily_backend/internal/repository"
	"bloom_daily_backend/pkg/logger"
	"bloom_daily_backend/pkg/monitoring"
	"bloom_daily_backend/pkg/tracing"
	"context"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// CompletionService 写入完成记录并累加积分
type CompletionService struct {
	UserRepo       *repository.UserRepository
	RoutineRepo    *repository.RoutineRepository
	RoutineLogRepo *repository.RoutineLogRepository
	GoalRepo       *repository.GoalRepository
	GoalLogRepo    *repository.GoalLogRepository
	WishRepo       *repository.WishRepository
	DB             *gorm.DB
	Location       *time.Location
	Now            func() time.Time
}

func NewCompletionService(
	userRepo *repository.UserRepository,
	routineRepo *repository.RoutineRepository,
	routineLogRepo *repository.RoutineLogRepository,
	goalRepo *repository.GoalRepository,
	goalLogRepo *repository.GoalLogRepository,
	wishRepo *repository.WishRepository,
	db *gorm.DB,
	loc *time.Location,
) *CompletionService {
	if loc == nil {
		loc = time.Local
	}
	return &CompletionService{
		UserRepo:       userRepo,
		RoutineRepo:    routineRepo,
		RoutineLogRepo: routineLogRepo,
		GoalRepo:       goalRepo,
		GoalLogRepo:    goalLogRepo,
		WishRepo:       wishRepo,
		DB:             db,
		Location:       loc,
		Now:            time.Now,
	}
}

// now 返回配置时区下的当前时间；写库前统一转为 UTC
func (s *CompletionService) now() time.Time {
	return s.Now().In(s.Location)
}

// MarkRoutineDone appends a completion log unless the routine was already
// completed today. The check and the insert are separate statements, so two
// concurrent calls may both insert. The returned bool reports whether a log
// was written.
func (s *CompletionService) MarkRoutineDone(ctx context.Context, userID, routineID uint) (*model.RoutineCompletionLog, bool, error) {
	ctx, span := tracing.StartSpan(ctx, "completion.MarkRoutineDone")
	defer span.End()

	routine, err := s.RoutineRepo.FindByIDAndUserID(ctx, routineID, userID)
	if err != nil {
		return nil, false, err
	}

	now := s.now()
	exists, err := s.RoutineLogRepo.ExistsSince(ctx, routine.ID, userID, startOfDay(now))
	if err != nil {
		return nil, false, err
	}
	if exists {
		logger.Log.Debug("Routine already completed today",
			zap.Uint("user_id", userID),
			zap.Uint("routine_id", routine.ID))
		return nil, false, nil
	}

	entry := &model.RoutineCompletionLog{
		RoutineID:    routine.ID,
		RoutineName:  routine.Name,
		UserID:       userID,
		RewardPoints: routine.RewardPoints,
		CompletedAt:  now.UTC(),
	}

	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.RoutineLogRepo.Create(ctx, tx, entry); err != nil {
			return err
		}
		return s.UserRepo.AddRewardPoints(ctx, tx, userID, routine.RewardPoints)
	})
	if err != nil {
		return nil, false, err
	}

	monitoring.CompletionCounter.WithLabelValues("routine").Inc()
	logger.Log.Info("Routine completed",
		zap.Uint("user_id", userID),
		zap.Uint("routine_id", routine.ID),
		zap.Int("points", routine.RewardPoints))

	return entry, true, nil
}

// CompleteGoal 在同一事务中写入完成记录、累加积分并删除目标
func (s *CompletionService) CompleteGoal(ctx context.Context, userID, goalID uint) (*model.GoalCompletionLog, error) {
	ctx, span := tracing.StartSpan(ctx, "completion.CompleteGoal")
	defer span.End()

	goal, err := s.GoalRepo.FindByIDAndUserID(ctx, goalID, userID)
	if err != nil {
		return nil, err
	}

	entry := &model.GoalCompletionLog{
		GoalID:       goal.ID,
		GoalName:     goal.Name,
		GoalType:     goal.Type,
		UserID:       userID,
		RewardPoints: goal.RewardPoints,
		CompletedAt:  s.now().UTC(),
	}

	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.GoalLogRepo.Create(ctx, tx, entry); err != nil {
			return err
		}
		if err := s.UserRepo.AddRewardPoints(ctx, tx, userID, goal.RewardPoints); err != nil {
			return err
		}
		return s.GoalRepo.Delete(ctx, tx, goal.ID)
	})
	if err != nil {
		return nil, err
	}

	monitoring.CompletionCounter.WithLabelValues("goal").Inc()
	logger.Log.Info("Goal completed",
		zap.Uint("user_id", userID),
		zap.Uint("goal_id", goal.ID),
		zap.Int("points", goal.RewardPoints))

	return entry, nil
}

// FulfillWish 标记心愿已实现；重复调用不会覆盖首次时间
func (s *CompletionService) FulfillWish(ctx context.Context, userID, wishID uint) (*model.Wish, error) {
	ctx, span := tracing.StartSpan(ctx, "completion.FulfillWish")
	defer span.End()

	wish, err := s.WishRepo.FindByIDAndUserID(ctx, wishID, userID)
	if err != nil {
		return nil, err
	}
	if wish.FulfilledAt != nil {
		return wish, nil
	}

	updated, err := s.WishRepo.MarkFulfilled(ctx, wish.ID, s.now())
	if err != nil {
		return nil, err
	}
	if updated {
		monitoring.CompletionCounter.WithLabelValues("wish").Inc()
		logger.Log.Info("Wish fulfilled", zap.Uint("user_id", userID), zap.Uint("wish_id", wish.ID))
	}

	return s.WishRepo.FindByIDAndUserID(ctx, wish.ID, userID)
}

// TodayStatus 返回用户每个例程的最近完成时间，按配置时区判断今天是否已完成
func (s *CompletionService) TodayStatus(ctx context.Context, userID uint) ([]model.RoutineCompletionStatus, error) {
	ctx, span := tracing.StartSpan(ctx, "completion.TodayStatus")
	defer span.End()

	routines, err := s.RoutineRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	logs, err := s.RoutineLogRepo.FindLatestPerRoutine(ctx, userID)
	if err != nil {
		return nil, err
	}

	last := make(map[uint]time.Time, len(logs))
	for _, l := range logs {
		last[l.RoutineID] = l.CompletedAt
	}

	now := s.now()
	today := startOfDay(now)
	statuses := make([]model.RoutineCompletionStatus, 0, len(routines))
	for _, r := range routines {
		st := model.RoutineCompletionStatus{RoutineID: r.ID, RoutineName: r.Name}
		if at, ok := last[r.ID]; ok {
			local := at.In(s.Location)
			st.LastCompletedAt = &local
			st.DoneToday = !local.Before(today)
		}
		statuses = append(statuses, st)
	}
	return statuses, nil
}
