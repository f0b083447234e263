package service

import (
	"bloom_daily_backend/internal/model"
	"bloom_daily_backend/internal/repository"
	"bloom_daily_backend/pkg/database"
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type fixture struct {
	db         *gorm.DB
	user       *model.User
	analytics  *AnalyticsService
	completion *CompletionService
	clock      time.Time
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "bloom.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	user, err := database.Seed(db, "user@example.com")
	if err != nil {
		t.Fatalf("seed: %v", err)
	}

	userRepo := repository.NewUserRepository(db)
	routineRepo := repository.NewRoutineRepository(db)
	routineLogRepo := repository.NewRoutineLogRepository(db)
	goalRepo := repository.NewGoalRepository(db)
	goalLogRepo := repository.NewGoalLogRepository(db)
	wishRepo := repository.NewWishRepository(db)

	f := &fixture{db: db, user: user, clock: testNow}
	f.analytics = NewAnalyticsService(userRepo, routineRepo, routineLogRepo, goalRepo, goalLogRepo, time.UTC)
	f.analytics.Now = func() time.Time { return f.clock }
	f.completion = NewCompletionService(userRepo, routineRepo, routineLogRepo, goalRepo, goalLogRepo, wishRepo, db, time.UTC)
	f.completion.Now = func() time.Time { return f.clock }
	return f
}

func (f *fixture) routine(t *testing.T, name string) model.Routine {
	t.Helper()
	var r model.Routine
	if err := f.db.Where("user_id = ? AND name = ?", f.user.ID, name).First(&r).Error; err != nil {
		t.Fatalf("find routine %q: %v", name, err)
	}
	return r
}

func (f *fixture) goal(t *testing.T, name string) model.Goal {
	t.Helper()
	var g model.Goal
	if err := f.db.Where("user_id = ? AND name = ?", f.user.ID, name).First(&g).Error; err != nil {
		t.Fatalf("find goal %q: %v", name, err)
	}
	return g
}

func (f *fixture) points(t *testing.T) int {
	t.Helper()
	var u model.User
	if err := f.db.First(&u, f.user.ID).Error; err != nil {
		t.Fatalf("reload user: %v", err)
	}
	return u.RewardPoints
}

var bg = context.Background()
