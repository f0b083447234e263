package repository

import (
	"bloom_daily_backend/internal/model"
	"bloom_daily_backend/internal/util"
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

type WishRepository struct {
	DB *gorm.DB
}

func NewWishRepository(db *gorm.DB) *WishRepository {
	return &WishRepository{DB: db}
}

func (r *WishRepository) Create(ctx context.Context, wish *model.Wish) error {
	return util.StoreError("create wish", r.DB.WithContext(ctx).Create(wish).Error)
}

func (r *WishRepository) FindByIDAndUserID(ctx context.Context, id, userID uint) (*model.Wish, error) {
	var wish model.Wish
	err := r.DB.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).First(&wish).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrWishNotFound
	}
	if err != nil {
		return nil, util.StoreError("find wish", err)
	}
	return &wish, nil
}

// MarkFulfilled 仅在尚未实现时写入时间，返回是否发生更新
func (r *WishRepository) MarkFulfilled(ctx context.Context, id uint, at time.Time) (bool, error) {
	res := r.DB.WithContext(ctx).Model(&model.Wish{}).
		Where("id = ? AND fulfilled_at IS NULL", id).
		Update("fulfilled_at", at.UTC())
	if res.Error != nil {
		return false, util.StoreError("fulfill wish", res.Error)
	}
	return res.RowsAffected > 0, nil
}
