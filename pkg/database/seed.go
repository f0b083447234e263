package database

import (
	"bloom_daily_backend/internal/model"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"
)

func floatPtr(v float64) *float64 { return &v }
func strPtr(v string) *string     { return &v }

// Seed 写入演示数据；用户已存在时直接返回该用户
// 邮箱与请求解析一致，去空白并转小写
func Seed(db *gorm.DB, email string) (*model.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	var existing model.User
	err := db.Where("email = ?", email).First(&existing).Error
	if err == nil {
		return &existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	user := &model.User{Name: "Bloom User", Email: email}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return err
		}

		hairWash := model.Routine{UserID: user.ID, Name: "Hair Wash Day", Frequency: model.FrequencyWeekly, TimeOfDay: "20:00", RemindersEnabled: true, RewardPoints: 20}
		hairWash.SetWeekdays(time.Sunday, time.Wednesday)
		mealPrep := model.Routine{UserID: user.ID, Name: "Meal Prep", Frequency: model.FrequencyWeekly, TimeOfDay: "16:00", RemindersEnabled: true, RewardPoints: 50}
		mealPrep.SetWeekdays(time.Sunday)
		gratitude := model.Routine{UserID: user.ID, Name: "Daily Gratitude", Frequency: model.FrequencyDaily, TimeOfDay: "08:00", RemindersEnabled: true, RewardPoints: 10}

		routines := []model.Routine{hairWash, mealPrep, gratitude}
		if err := tx.Create(&routines).Error; err != nil {
			return err
		}

		goals := []model.Goal{
			{UserID: user.ID, Name: "Gain 8kg in 3 months", Type: model.GoalMeasurable, TargetValue: floatPtr(8), CurrentValue: floatPtr(2), Unit: strPtr("kg"), RewardPoints: 200},
			{UserID: user.ID, Name: "Read the Book of John", Type: model.GoalSpiritual, RewardPoints: 100},
			{UserID: user.ID, Name: "Meditate 15 mins daily for a month", Type: model.GoalMeasurable, TargetValue: floatPtr(30), CurrentValue: floatPtr(10), Unit: strPtr("days"), RewardPoints: 150},
		}
		if err := tx.Create(&goals).Error; err != nil {
			return err
		}

		wish := model.Wish{UserID: user.ID, Title: "A weekend by the sea", Note: "Somewhere quiet with a good book."}
		return tx.Create(&wish).Error
	})
	if err != nil {
		return nil, err
	}

	return user, nil
}
