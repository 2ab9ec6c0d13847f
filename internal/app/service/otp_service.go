package service

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/akshayrj/portfolio-backend/internal/app/model"
	"github.com/akshayrj/portfolio-backend/internal/app/repository"
	"github.com/akshayrj/portfolio-backend/pkg/logger"
	"github.com/akshayrj/portfolio-backend/pkg/mailer"
	"github.com/akshayrj/portfolio-backend/pkg/util"
)

var (
	ErrOTPInvalid     = errors.New("invalid or expired verification code")
	ErrDeliveryFailed = errors.New("failed to send verification email")
	ErrAdminNotFound  = errors.New("admin account not found")
)

// OTPService issues and verifies one-time passcodes for admin password
// recovery. At most one live code exists per email: requesting a new
// one invalidates any outstanding code, and a successful verification
// consumes every code for that email.
type OTPService interface {
	Request(email string) error
	Verify(email, code string) (*model.User, error)
}

type otpService struct {
	otpRepo  repository.OTPRepository
	userRepo repository.UserRepository
	mail     mailer.Sender
	expiry   time.Duration
	now      func() time.Time
}

func NewOTPService(
	otpRepo repository.OTPRepository,
	userRepo repository.UserRepository,
	mail mailer.Sender,
	expiry time.Duration,
) OTPService {
	return &otpService{
		otpRepo:  otpRepo,
		userRepo: userRepo,
		mail:     mail,
		expiry:   expiry,
		now:      time.Now,
	}
}

// Request generates a fresh 6-digit code for the admin account behind
// the email, replaces any prior code, and emails it. The code stays
// stored even when delivery fails, so a retried email can still verify.
func (s *otpService) Request(email string) error {
	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.Warn("OTP request for unknown email", map[string]interface{}{
				"email": email,
			})
			return ErrAdminNotFound
		}
		logger.Error("Failed to look up user for OTP request", err, map[string]interface{}{
			"email": email,
		})
		return err
	}

	code, err := util.GenerateOTPCode()
	if err != nil {
		logger.Error("Failed to generate OTP code", err)
		return err
	}

	if err := s.otpRepo.DeleteForEmail(user.Email, model.OTPPurposeAdmin); err != nil {
		return err
	}

	otp := &model.OTP{
		Email:   user.Email,
		Code:    code,
		Purpose: model.OTPPurposeAdmin,
	}
	if err := s.otpRepo.Create(otp); err != nil {
		return err
	}

	subject, htmlBody, textBody := mailer.OTPEmail(code)
	if err := s.mail.Send(user.Email, subject, htmlBody, textBody); err != nil {
		logger.Error("Failed to deliver OTP email", err, map[string]interface{}{
			"email": user.Email,
		})
		return ErrDeliveryFailed
	}

	logger.Info("OTP issued", map[string]interface{}{
		"email": user.Email,
	})
	return nil
}

// Verify checks the code against the freshest unexpired one for the
// email. On success every code for the pair is consumed and the admin
// user is returned so the caller can start a session.
func (s *otpService) Verify(email, code string) (*model.User, error) {
	cutoff := s.now().Add(-s.expiry)

	otp, err := s.otpRepo.FindValid(email, code, model.OTPPurposeAdmin, cutoff)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.Warn("OTP verification failed", map[string]interface{}{
				"email": email,
			})
			return nil, ErrOTPInvalid
		}
		logger.Error("Failed to look up OTP", err, map[string]interface{}{
			"email": email,
		})
		return nil, err
	}

	if err := s.otpRepo.DeleteForEmail(otp.Email, model.OTPPurposeAdmin); err != nil {
		return nil, err
	}

	user, err := s.userRepo.FindByEmail(otp.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAdminNotFound
		}
		return nil, err
	}

	logger.Info("OTP verified", map[string]interface{}{
		"email": email,
	})
	return user, nil
}
