package repository

import (
	"time"

	"github.com/akshayrj/portfolio-backend/internal/app/model"
	"github.com/akshayrj/portfolio-backend/pkg/logger"
	"gorm.io/gorm"
)

type OTPRepository interface {
	Create(otp *model.OTP) error
	// FindValid returns the code matching (email, code, purpose) that was
	// created at or after cutoff. Expired rows fail the lookup even if
	// the sweep has not removed them yet.
	FindValid(email, code, purpose string, cutoff time.Time) (*model.OTP, error)
	// DeleteForEmail removes every code for (email, purpose). Used both
	// to invalidate prior codes on re-issue and to consume on verify.
	DeleteForEmail(email, purpose string) error
	DeleteExpired(cutoff time.Time) (int64, error)
}

type otpRepository struct {
	db *gorm.DB
}

func NewOTPRepository(db *gorm.DB) OTPRepository {
	return &otpRepository{db: db}
}

func (r *otpRepository) Create(otp *model.OTP) error {
	logger.Debug("Creating OTP in database", map[string]interface{}{
		"email":   otp.Email,
		"purpose": otp.Purpose,
	})

	if err := r.db.Create(otp).Error; err != nil {
		logger.Error("Failed to create OTP in database", err, map[string]interface{}{
			"email": otp.Email,
		})
		return err
	}
	return nil
}

func (r *otpRepository) FindValid(email, code, purpose string, cutoff time.Time) (*model.OTP, error) {
	var otp model.OTP
	err := r.db.
		Where("email = ? AND code = ? AND purpose = ? AND created_at >= ?", email, code, purpose, cutoff).
		First(&otp).Error
	if err != nil {
		return nil, err
	}
	return &otp, nil
}

func (r *otpRepository) DeleteForEmail(email, purpose string) error {
	result := r.db.Where("email = ? AND purpose = ?", email, purpose).Delete(&model.OTP{})
	if result.Error != nil {
		logger.Error("Failed to delete OTPs from database", result.Error, map[string]interface{}{
			"email":   email,
			"purpose": purpose,
		})
		return result.Error
	}

	logger.Debug("OTPs deleted from database", map[string]interface{}{
		"email":   email,
		"purpose": purpose,
		"count":   result.RowsAffected,
	})
	return nil
}

func (r *otpRepository) DeleteExpired(cutoff time.Time) (int64, error) {
	result := r.db.Where("created_at < ?", cutoff).Delete(&model.OTP{})
	if result.Error != nil {
		logger.Error("Failed to delete expired OTPs from database", result.Error)
		return 0, result.Error
	}
	return result.RowsAffected, nil
}
