package model

import (
	"time"
)

// OTPPurposeAdmin tags codes issued for admin password recovery.
const OTPPurposeAdmin = "admin"

// OTP is a short-lived one-time passcode. At most one live code exists
// per (email, purpose): issuing a new one deletes the old rows first.
// Expiry is enforced at lookup time (creation-time cutoff) plus a cron
// sweep that removes stale rows.
type OTP struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Email     string    `gorm:"size:255;not null;index" json:"email"`
	Code      string    `gorm:"size:12;not null" json:"-"`
	Purpose   string    `gorm:"size:32;not null;default:'admin';index" json:"purpose"`
	CreatedAt time.Time `json:"created_at"`
}

func (OTP) TableName() string {
	return "otps"
}
