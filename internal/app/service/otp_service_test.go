package service

import (
	"testing"
	"time"

	"github.com/akshayrj/portfolio-backend/internal/app/model"
	"github.com/akshayrj/portfolio-backend/internal/app/repository"
	"github.com/akshayrj/portfolio-backend/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupOTPServiceTest(t *testing.T) (*otpService, *gorm.DB, *fakeMailer) {
	testDB := db.SetupTestDB(t)

	otpRepo := repository.NewOTPRepository(testDB)
	userRepo := repository.NewUserRepository(testDB)

	admin := &model.User{
		Username:     "admin",
		Email:        "admin@example.com",
		PasswordHash: "hash",
	}
	require.NoError(t, userRepo.Create(admin))

	mail := &fakeMailer{}
	svc := NewOTPService(otpRepo, userRepo, mail, 5*time.Minute).(*otpService)
	return svc, testDB, mail
}

func TestOTPService_RequestAndVerify(t *testing.T) {
	svc, _, mail := setupOTPServiceTest(t)

	require.NoError(t, svc.Request("admin@example.com"))

	sent := mail.lastSent()
	require.NotNil(t, sent)
	assert.Equal(t, "admin@example.com", sent.To)

	// The emailed code is the stored one; fish it out of the text body.
	code := extractCode(t, sent.Text)

	user, err := svc.Verify("admin@example.com", code)
	require.NoError(t, err)
	assert.Equal(t, "admin@example.com", user.Email)
}

func TestOTPService_Request_UnknownEmail(t *testing.T) {
	svc, _, _ := setupOTPServiceTest(t)

	err := svc.Request("nobody@example.com")
	assert.ErrorIs(t, err, ErrAdminNotFound)
}

func TestOTPService_Request_MailFailureKeepsCode(t *testing.T) {
	svc, testDB, mail := setupOTPServiceTest(t)

	mail.failNext = true
	err := svc.Request("admin@example.com")
	assert.ErrorIs(t, err, ErrDeliveryFailed)

	// The code survives the failed delivery so a retried request does
	// not leave the account with no valid code at all.
	var otps []model.OTP
	require.NoError(t, testDB.Find(&otps).Error)
	require.Len(t, otps, 1)

	_, err = svc.Verify("admin@example.com", otps[0].Code)
	assert.NoError(t, err)
}

func TestOTPService_Verify_OnceOnly(t *testing.T) {
	svc, _, mail := setupOTPServiceTest(t)

	require.NoError(t, svc.Request("admin@example.com"))
	code := extractCode(t, mail.lastSent().Text)

	_, err := svc.Verify("admin@example.com", code)
	require.NoError(t, err)

	// A second attempt with the same code fails: codes are consumed.
	_, err = svc.Verify("admin@example.com", code)
	assert.ErrorIs(t, err, ErrOTPInvalid)
}

func TestOTPService_Verify_WrongCode(t *testing.T) {
	svc, _, mail := setupOTPServiceTest(t)

	require.NoError(t, svc.Request("admin@example.com"))
	code := extractCode(t, mail.lastSent().Text)

	wrong := "000000"
	if wrong == code {
		wrong = "000001"
	}

	_, err := svc.Verify("admin@example.com", wrong)
	assert.ErrorIs(t, err, ErrOTPInvalid)

	// The right code still works after a wrong attempt.
	_, err = svc.Verify("admin@example.com", code)
	assert.NoError(t, err)
}

func TestOTPService_Verify_Expired(t *testing.T) {
	svc, _, mail := setupOTPServiceTest(t)

	issued := time.Now()
	require.NoError(t, svc.Request("admin@example.com"))
	code := extractCode(t, mail.lastSent().Text)

	// Move the service clock past the TTL.
	svc.now = func() time.Time { return issued.Add(6 * time.Minute) }

	_, err := svc.Verify("admin@example.com", code)
	assert.ErrorIs(t, err, ErrOTPInvalid)
}

func TestOTPService_Reissue_InvalidatesPriorCode(t *testing.T) {
	svc, _, mail := setupOTPServiceTest(t)

	require.NoError(t, svc.Request("admin@example.com"))
	firstCode := extractCode(t, mail.lastSent().Text)

	require.NoError(t, svc.Request("admin@example.com"))
	secondCode := extractCode(t, mail.lastSent().Text)

	if firstCode != secondCode {
		_, err := svc.Verify("admin@example.com", firstCode)
		assert.ErrorIs(t, err, ErrOTPInvalid)
	}

	_, err := svc.Verify("admin@example.com", secondCode)
	assert.NoError(t, err)
}

// extractCode pulls the first 6-digit run out of an email body.
func extractCode(t *testing.T, body string) string {
	t.Helper()
	for i := 0; i+6 <= len(body); i++ {
		run := body[i : i+6]
		ok := true
		for _, c := range run {
			if c < '0' || c > '9' {
				ok = false
				break
			}
		}
		if ok {
			return run
		}
	}
	t.Fatalf("no 6-digit code in email body: %q", body)
	return ""
}
