package scheduler

import (
	"time"

	"github.com/akshayrj/portfolio-backend/internal/app/repository"
	"github.com/akshayrj/portfolio-backend/pkg/logger"
	"github.com/robfig/cron/v3"
)

// OTPCleanupScheduler sweeps expired OTP rows every minute. Expiry is
// already enforced at lookup time; the sweep keeps the table from
// accumulating dead codes.
type OTPCleanupScheduler struct {
	cron    *cron.Cron
	otpRepo repository.OTPRepository
	expiry  time.Duration
}

func NewOTPCleanupScheduler(otpRepo repository.OTPRepository, expiry time.Duration) *OTPCleanupScheduler {
	return &OTPCleanupScheduler{
		cron:    cron.New(),
		otpRepo: otpRepo,
		expiry:  expiry,
	}
}

func (s *OTPCleanupScheduler) Start() error {
	_, err := s.cron.AddFunc("* * * * *", func() {
		cutoff := time.Now().Add(-s.expiry)
		removed, err := s.otpRepo.DeleteExpired(cutoff)
		if err != nil {
			logger.Error("Failed to sweep expired OTP codes", err)
			return
		}
		if removed > 0 {
			logger.Info("Swept expired OTP codes", map[string]interface{}{
				"removed": removed,
			})
		}
	})
	if err != nil {
		logger.Error("Failed to register OTP cleanup job", err)
		return err
	}

	s.cron.Start()
	logger.Info("OTP cleanup scheduler started", nil)
	return nil
}

func (s *OTPCleanupScheduler) Stop() {
	s.cron.Stop()
	logger.Info("OTP cleanup scheduler stopped", nil)
}
