package controller

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akshayrj/portfolio-backend/internal/app/repository"
	"github.com/akshayrj/portfolio-backend/internal/app/service"
	"github.com/akshayrj/portfolio-backend/internal/db"
	"github.com/akshayrj/portfolio-backend/internal/middleware"
)

// captureMailer collects outgoing mail so tests can read the OTP code.
type captureMailer struct {
	lastTo   string
	lastText string
	fail     bool
}

func (m *captureMailer) Send(to, subject, htmlBody, textBody string) error {
	if m.fail {
		return errors.New("smtp down")
	}
	m.lastTo = to
	m.lastText = textBody
	return nil
}

func (m *captureMailer) code(t *testing.T) string {
	t.Helper()
	for i := 0; i+6 <= len(m.lastText); i++ {
		run := m.lastText[i : i+6]
		digits := true
		for _, c := range run {
			if c < '0' || c > '9' {
				digits = false
				break
			}
		}
		if digits {
			return run
		}
	}
	t.Fatalf("no code in email body: %q", m.lastText)
	return ""
}

func setupAuthControllerTest(t *testing.T) (*gin.Engine, *captureMailer) {
	gin.SetMode(gin.TestMode)

	testDB := db.SetupTestDB(t)

	userRepo := repository.NewUserRepository(testDB)
	otpRepo := repository.NewOTPRepository(testDB)
	mail := &captureMailer{}

	authService := service.NewAuthService(userRepo, "test-secret", 7*24*time.Hour, "test-register-token")
	otpService := service.NewOTPService(otpRepo, userRepo, mail, 5*time.Minute)

	ctrl := NewAuthController(authService, otpService, false)
	authMiddleware := middleware.NewAuthMiddleware("test-secret")

	router := gin.New()
	auth := router.Group("/api/v1/auth")
	auth.POST("/register", ctrl.Register)
	auth.POST("/login", ctrl.Login)
	auth.POST("/logout", ctrl.Logout)
	auth.POST("/send-otp", ctrl.SendOTP)
	auth.POST("/verify-otp", ctrl.VerifyOTP)
	auth.POST("/forget-password", authMiddleware.Authenticate(), ctrl.ForgetPassword)

	return router, mail
}

func postJSON(t *testing.T, router *gin.Engine, path string, payload interface{}, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest("POST", path, bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func registerAdmin(t *testing.T, router *gin.Engine) {
	t.Helper()
	w := postJSON(t, router, "/api/v1/auth/register", RegisterRequest{
		Username: "admin",
		Email:    "admin@example.com",
		Password: "password123",
	})
	require.Equal(t, http.StatusCreated, w.Code)
}

func sessionCookie(w *httptest.ResponseRecorder) *http.Cookie {
	for _, cookie := range w.Result().Cookies() {
		if cookie.Name == middleware.SessionCookieName {
			return cookie
		}
	}
	return nil
}

func TestAuthController_Register(t *testing.T) {
	router, _ := setupAuthControllerTest(t)

	registerAdmin(t, router)

	// Second registration without the token is rejected.
	w := postJSON(t, router, "/api/v1/auth/register", RegisterRequest{
		Username: "intruder",
		Email:    "intruder@example.com",
		Password: "password123",
	})
	assert.Equal(t, http.StatusForbidden, w.Code)

	// And accepted with it.
	w = postJSON(t, router, "/api/v1/auth/register", RegisterRequest{
		Username:      "second",
		Email:         "second@example.com",
		Password:      "password123",
		RegisterToken: "test-register-token",
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	// Duplicate email conflicts.
	w = postJSON(t, router, "/api/v1/auth/register", RegisterRequest{
		Username:      "dupe",
		Email:         "admin@example.com",
		Password:      "password123",
		RegisterToken: "test-register-token",
	})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestAuthController_Login(t *testing.T) {
	router, _ := setupAuthControllerTest(t)
	registerAdmin(t, router)

	w := postJSON(t, router, "/api/v1/auth/login", LoginRequest{
		Email:    "admin@example.com",
		Password: "password123",
	})
	assert.Equal(t, http.StatusOK, w.Code)

	cookie := sessionCookie(w)
	require.NotNil(t, cookie)
	assert.NotEmpty(t, cookie.Value)
	assert.True(t, cookie.HttpOnly)
	assert.Equal(t, "/", cookie.Path)
}

func TestAuthController_Login_DistinctErrors(t *testing.T) {
	router, _ := setupAuthControllerTest(t)
	registerAdmin(t, router)

	w := postJSON(t, router, "/api/v1/auth/login", LoginRequest{
		Email:    "nobody@example.com",
		Password: "password123",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "User not found")

	w = postJSON(t, router, "/api/v1/auth/login", LoginRequest{
		Email:    "admin@example.com",
		Password: "wrong-password",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid password")
}

func TestAuthController_Logout_ClearsCookie(t *testing.T) {
	router, _ := setupAuthControllerTest(t)

	w := postJSON(t, router, "/api/v1/auth/logout", gin.H{})
	assert.Equal(t, http.StatusOK, w.Code)

	cookie := sessionCookie(w)
	require.NotNil(t, cookie)
	assert.Empty(t, cookie.Value)
	assert.Less(t, cookie.MaxAge, 0)
}

func TestAuthController_OTPFlow_WrongThenRightCode(t *testing.T) {
	router, mail := setupAuthControllerTest(t)
	registerAdmin(t, router)

	w := postJSON(t, router, "/api/v1/auth/send-otp", SendOTPRequest{Email: "admin@example.com"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "admin@example.com", mail.lastTo)

	code := mail.code(t)
	wrong := "000000"
	if wrong == code {
		wrong = "000001"
	}

	// A wrong code is rejected and does not start a session.
	w = postJSON(t, router, "/api/v1/auth/verify-otp", VerifyOTPRequest{
		Email: "admin@example.com",
		OTP:   wrong,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Nil(t, sessionCookie(w))

	// The right code still verifies and sets the session cookie.
	w = postJSON(t, router, "/api/v1/auth/verify-otp", VerifyOTPRequest{
		Email: "admin@example.com",
		OTP:   code,
	})
	assert.Equal(t, http.StatusOK, w.Code)

	cookie := sessionCookie(w)
	require.NotNil(t, cookie)
	assert.NotEmpty(t, cookie.Value)

	// The code is consumed; a replay fails.
	w = postJSON(t, router, "/api/v1/auth/verify-otp", VerifyOTPRequest{
		Email: "admin@example.com",
		OTP:   code,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAuthController_SendOTP_UnknownEmail(t *testing.T) {
	router, _ := setupAuthControllerTest(t)
	registerAdmin(t, router)

	w := postJSON(t, router, "/api/v1/auth/send-otp", SendOTPRequest{Email: "nobody@example.com"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAuthController_SendOTP_MailFailure(t *testing.T) {
	router, mail := setupAuthControllerTest(t)
	registerAdmin(t, router)

	mail.fail = true
	w := postJSON(t, router, "/api/v1/auth/send-otp", SendOTPRequest{Email: "admin@example.com"})
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "MAIL_DELIVERY_FAILED")
}

func TestAuthController_ForgetPassword(t *testing.T) {
	router, mail := setupAuthControllerTest(t)
	registerAdmin(t, router)

	// Unauthenticated requests never reach the handler.
	w := postJSON(t, router, "/api/v1/auth/forget-password", ForgetPasswordRequest{NewPassword: "new-password"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// Recover a session through the OTP flow.
	w = postJSON(t, router, "/api/v1/auth/send-otp", SendOTPRequest{Email: "admin@example.com"})
	require.Equal(t, http.StatusOK, w.Code)
	w = postJSON(t, router, "/api/v1/auth/verify-otp", VerifyOTPRequest{
		Email: "admin@example.com",
		OTP:   mail.code(t),
	})
	require.Equal(t, http.StatusOK, w.Code)
	cookie := sessionCookie(w)
	require.NotNil(t, cookie)

	// Too-short passwords are rejected.
	w = postJSON(t, router, "/api/v1/auth/forget-password", ForgetPasswordRequest{NewPassword: "short"}, cookie)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = postJSON(t, router, "/api/v1/auth/forget-password", ForgetPasswordRequest{NewPassword: "new-password"}, cookie)
	assert.Equal(t, http.StatusOK, w.Code)

	// Old password no longer works, the new one does.
	w = postJSON(t, router, "/api/v1/auth/login", LoginRequest{
		Email:    "admin@example.com",
		Password: "password123",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = postJSON(t, router, "/api/v1/auth/login", LoginRequest{
		Email:    "admin@example.com",
		Password: "new-password",
	})
	assert.Equal(t, http.StatusOK, w.Code)
}
