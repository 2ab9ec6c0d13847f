package repository

import (
	"testing"
	"time"

	"github.com/akshayrj/portfolio-backend/internal/app/model"
	"github.com/akshayrj/portfolio-backend/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupOTPTest(t *testing.T) (*gorm.DB, OTPRepository) {
	testDB := db.SetupTestDB(t)
	return testDB, NewOTPRepository(testDB)
}

func TestOTPRepository_CreateAndFindValid(t *testing.T) {
	_, repo := setupOTPTest(t)

	otp := &model.OTP{
		Email:   "admin@example.com",
		Code:    "123456",
		Purpose: model.OTPPurposeAdmin,
	}
	require.NoError(t, repo.Create(otp))

	cutoff := time.Now().Add(-5 * time.Minute)
	found, err := repo.FindValid("admin@example.com", "123456", model.OTPPurposeAdmin, cutoff)
	require.NoError(t, err)
	assert.Equal(t, otp.ID, found.ID)
}

func TestOTPRepository_FindValid_WrongCode(t *testing.T) {
	_, repo := setupOTPTest(t)

	require.NoError(t, repo.Create(&model.OTP{
		Email:   "admin@example.com",
		Code:    "123456",
		Purpose: model.OTPPurposeAdmin,
	}))

	cutoff := time.Now().Add(-5 * time.Minute)
	_, err := repo.FindValid("admin@example.com", "654321", model.OTPPurposeAdmin, cutoff)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestOTPRepository_FindValid_Expired(t *testing.T) {
	testDB, repo := setupOTPTest(t)

	otp := &model.OTP{
		Email:   "admin@example.com",
		Code:    "123456",
		Purpose: model.OTPPurposeAdmin,
	}
	require.NoError(t, repo.Create(otp))

	// Age the row past the lookup cutoff.
	stale := time.Now().Add(-10 * time.Minute)
	require.NoError(t, testDB.Model(&model.OTP{}).Where("id = ?", otp.ID).Update("created_at", stale).Error)

	cutoff := time.Now().Add(-5 * time.Minute)
	_, err := repo.FindValid("admin@example.com", "123456", model.OTPPurposeAdmin, cutoff)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestOTPRepository_DeleteForEmail(t *testing.T) {
	testDB, repo := setupOTPTest(t)

	require.NoError(t, repo.Create(&model.OTP{Email: "admin@example.com", Code: "111111", Purpose: model.OTPPurposeAdmin}))
	require.NoError(t, repo.Create(&model.OTP{Email: "admin@example.com", Code: "222222", Purpose: model.OTPPurposeAdmin}))
	require.NoError(t, repo.Create(&model.OTP{Email: "other@example.com", Code: "333333", Purpose: model.OTPPurposeAdmin}))

	require.NoError(t, repo.DeleteForEmail("admin@example.com", model.OTPPurposeAdmin))

	var count int64
	require.NoError(t, testDB.Model(&model.OTP{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestOTPRepository_DeleteExpired(t *testing.T) {
	testDB, repo := setupOTPTest(t)

	fresh := &model.OTP{Email: "admin@example.com", Code: "111111", Purpose: model.OTPPurposeAdmin}
	require.NoError(t, repo.Create(fresh))

	stale := &model.OTP{Email: "admin@example.com", Code: "222222", Purpose: model.OTPPurposeAdmin}
	require.NoError(t, repo.Create(stale))
	staleAt := time.Now().Add(-10 * time.Minute)
	require.NoError(t, testDB.Model(&model.OTP{}).Where("id = ?", stale.ID).Update("created_at", staleAt).Error)

	cutoff := time.Now().Add(-5 * time.Minute)
	removed, err := repo.DeleteExpired(cutoff)
	require.NoError(t, err)
	assert.Equal(t, int64(1), removed)

	var remaining []model.OTP
	require.NoError(t, testDB.Find(&remaining).Error)
	require.Len(t, remaining, 1)
	assert.Equal(t, fresh.ID, remaining[0].ID)
}
