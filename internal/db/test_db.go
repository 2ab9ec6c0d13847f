package db

import (
	"testing"

	"github.com/akshayrj/portfolio-backend/internal/app/model"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// SetupTestDB creates an in-memory SQLite database with the full
// schema, closed automatically when the test finishes.
func SetupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	testDB, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	err = testDB.AutoMigrate(
		&model.User{},
		&model.OTP{},
		&model.PersonalInfo{},
		&model.Project{},
		&model.Skill{},
		&model.Education{},
		&model.Experience{},
		&model.Certification{},
		&model.SocialLink{},
		&model.Resume{},
	)
	if err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	t.Cleanup(func() {
		if sqlDB, err := testDB.DB(); err == nil {
			sqlDB.Close()
		}
	})

	return testDB
}
