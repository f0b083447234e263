package database

import (
	"bloom_daily_backend/internal/model"
	"path/filepath"
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestSeedNormalizesEmail(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "seed.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	user, err := Seed(db, "  User@Example.COM ")
	if err != nil {
		t.Fatalf("Seed() error = %v", err)
	}
	if user.Email != "user@example.com" {
		t.Errorf("Email = %q, want user@example.com", user.Email)
	}

	again, err := Seed(db, "user@example.com")
	if err != nil {
		t.Fatalf("second Seed() error = %v", err)
	}
	if again.ID != user.ID {
		t.Errorf("second Seed() created user %d, want %d", again.ID, user.ID)
	}

	var count int64
	db.Model(&model.User{}).Count(&count)
	if count != 1 {
		t.Errorf("users = %d, want 1", count)
	}
}
