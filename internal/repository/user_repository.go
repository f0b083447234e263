package repository

import (
	"bloom_daily_backend/internal/model"
	"bloom_daily_backend/internal/util"
	"context"
	"errors"

	"gorm.io/gorm"
)

type UserRepository struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{DB: db}
}

func (r *UserRepository) Create(ctx context.Context, user *model.User) error {
	return util.StoreError("create user", r.DB.WithContext(ctx).Create(user).Error)
}

// FindByEmail 调用方身份在单用户模式下以邮箱解析
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	err := r.DB.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrUserNotFound
	}
	if err != nil {
		return nil, util.StoreError("find user", err)
	}
	return &user, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id uint) (*model.User, error) {
	var user model.User
	err := r.DB.WithContext(ctx).First(&user, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrUserNotFound
	}
	if err != nil {
		return nil, util.StoreError("find user", err)
	}
	return &user, nil
}

// AddRewardPoints 原子累加积分，可在事务中传入 tx
func (r *UserRepository) AddRewardPoints(ctx context.Context, tx *gorm.DB, userID uint, points int) error {
	if tx == nil {
		tx = r.DB
	}
	res := tx.WithContext(ctx).Model(&model.User{}).
		Where("id = ?", userID).
		UpdateColumn("reward_points", gorm.Expr("reward_points + ?", points))
	if res.Error != nil {
		return util.StoreError("add reward points", res.Error)
	}
	if res.RowsAffected == 0 {
		return util.ErrUserNotFound
	}
	return nil
}
