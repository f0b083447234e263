package repository

import (
	"bloom_daily_backend/internal/model"
	"bloom_daily_backend/internal/util"
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

// GoalRepository 处理开放目标的数据访问
type GoalRepository struct {
	DB *gorm.DB
}

func NewGoalRepository(db *gorm.DB) *GoalRepository {
	return &GoalRepository{DB: db}
}

func (r *GoalRepository) Create(ctx context.Context, goal *model.Goal) error {
	return util.StoreError("create goal", r.DB.WithContext(ctx).Create(goal).Error)
}

func (r *GoalRepository) FindByIDAndUserID(ctx context.Context, id, userID uint) (*model.Goal, error) {
	var goal model.Goal
	err := r.DB.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).First(&goal).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrGoalNotFound
	}
	if err != nil {
		return nil, util.StoreError("find goal", err)
	}
	return &goal, nil
}

// FindOpenByUserID 获取用户仍然开放的目标（完成即删除）
func (r *GoalRepository) FindOpenByUserID(ctx context.Context, userID uint) ([]model.Goal, error) {
	var goals []model.Goal
	err := r.DB.WithContext(ctx).Where("user_id = ?", userID).Order("id").Find(&goals).Error
	if err != nil {
		return nil, util.StoreError("list goals", err)
	}
	return goals, nil
}

func (r *GoalRepository) Delete(ctx context.Context, tx *gorm.DB, id uint) error {
	if tx == nil {
		tx = r.DB
	}
	return util.StoreError("delete goal", tx.WithContext(ctx).Delete(&model.Goal{}, id).Error)
}

type GoalLogRepository struct {
	DB *gorm.DB
}

func NewGoalLogRepository(db *gorm.DB) *GoalLogRepository {
	return &GoalLogRepository{DB: db}
}

func (r *GoalLogRepository) Create(ctx context.Context, tx *gorm.DB, log *model.GoalCompletionLog) error {
	if tx == nil {
		tx = r.DB
	}
	log.CompletedAt = log.CompletedAt.UTC()
	return util.StoreError("create goal log", tx.WithContext(ctx).Create(log).Error)
}

// FindInRange 返回 [start, end) 内的记录，按完成时间与 ID 升序
func (r *GoalLogRepository) FindInRange(ctx context.Context, userID uint, start, end time.Time) ([]model.GoalCompletionLog, error) {
	var logs []model.GoalCompletionLog
	err := r.DB.WithContext(ctx).
		Where("user_id = ? AND completed_at >= ? AND completed_at < ?", userID, start.UTC(), end.UTC()).
		Order("completed_at ASC, id ASC").
		Find(&logs).Error
	if err != nil {
		return nil, util.StoreError("list goal logs", err)
	}
	return logs, nil
}

func (r *GoalLogRepository) CountInRange(ctx context.Context, userID uint, start, end time.Time) (int64, error) {
	var count int64
	err := r.DB.WithContext(ctx).Model(&model.GoalCompletionLog{}).
		Where("user_id = ? AND completed_at >= ? AND completed_at < ?", userID, start.UTC(), end.UTC()).
		Count(&count).Error
	if err != nil {
		return 0, util.StoreError("count goal logs", err)
	}
	return count, nil
}

// FindRecent 最近完成的目标，新的在前
func (r *GoalLogRepository) FindRecent(ctx context.Context, userID uint, limit int) ([]model.GoalCompletionLog, error) {
	var logs []model.GoalCompletionLog
	err := r.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("completed_at DESC, id DESC").
		Limit(limit).
		Find(&logs).Error
	if err != nil {
		return nil, util.StoreError("list recent goal logs", err)
	}
	return logs, nil
}
