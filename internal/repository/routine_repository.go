package repository

import (
	"bloom_daily_backend/internal/model"
	"bloom_daily_backend/internal/util"
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

type RoutineRepository struct {
	DB *gorm.DB
}

func NewRoutineRepository(db *gorm.DB) *RoutineRepository {
	return &RoutineRepository{DB: db}
}

func (r *RoutineRepository) Create(ctx context.Context, routine *model.Routine) error {
	return util.StoreError("create routine", r.DB.WithContext(ctx).Create(routine).Error)
}

func (r *RoutineRepository) FindByIDAndUserID(ctx context.Context, id, userID uint) (*model.Routine, error) {
	var routine model.Routine
	err := r.DB.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).First(&routine).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrRoutineNotFound
	}
	if err != nil {
		return nil, util.StoreError("find routine", err)
	}
	return &routine, nil
}

// FindByUserID 获取用户的全部例程
func (r *RoutineRepository) FindByUserID(ctx context.Context, userID uint) ([]model.Routine, error) {
	var routines []model.Routine
	err := r.DB.WithContext(ctx).Where("user_id = ?", userID).Order("id").Find(&routines).Error
	if err != nil {
		return nil, util.StoreError("list routines", err)
	}
	return routines, nil
}

type RoutineLogRepository struct {
	DB *gorm.DB
}

func NewRoutineLogRepository(db *gorm.DB) *RoutineLogRepository {
	return &RoutineLogRepository{DB: db}
}

func (r *RoutineLogRepository) Create(ctx context.Context, tx *gorm.DB, log *model.RoutineCompletionLog) error {
	if tx == nil {
		tx = r.DB
	}
	log.CompletedAt = log.CompletedAt.UTC()
	return util.StoreError("create routine log", tx.WithContext(ctx).Create(log).Error)
}

// ExistsSince 检查例程在 since 之后是否已有完成记录
// 时间统一按 UTC 存储与比较，sqlite 以文本比较时间列
func (r *RoutineLogRepository) ExistsSince(ctx context.Context, routineID, userID uint, since time.Time) (bool, error) {
	var count int64
	err := r.DB.WithContext(ctx).Model(&model.RoutineCompletionLog{}).
		Where("routine_id = ? AND user_id = ? AND completed_at >= ?", routineID, userID, since.UTC()).
		Count(&count).Error
	if err != nil {
		return false, util.StoreError("check routine log", err)
	}
	return count > 0, nil
}

// FindInRange 返回 [start, end) 内的记录，按完成时间与 ID 升序
func (r *RoutineLogRepository) FindInRange(ctx context.Context, userID uint, start, end time.Time) ([]model.RoutineCompletionLog, error) {
	var logs []model.RoutineCompletionLog
	err := r.DB.WithContext(ctx).
		Where("user_id = ? AND completed_at >= ? AND completed_at < ?", userID, start.UTC(), end.UTC()).
		Order("completed_at ASC, id ASC").
		Find(&logs).Error
	if err != nil {
		return nil, util.StoreError("list routine logs", err)
	}
	return logs, nil
}

// FindLatestPerRoutine 返回用户每个例程最近的一条完成记录
func (r *RoutineLogRepository) FindLatestPerRoutine(ctx context.Context, userID uint) ([]model.RoutineCompletionLog, error) {
	latest := r.DB.Model(&model.RoutineCompletionLog{}).
		Select("MAX(id)").
		Where("user_id = ?", userID).
		Group("routine_id")

	var logs []model.RoutineCompletionLog
	err := r.DB.WithContext(ctx).Where("id IN (?)", latest).Order("routine_id").Find(&logs).Error
	if err != nil {
		return nil, util.StoreError("list latest routine logs", err)
	}
	return logs, nil
}
