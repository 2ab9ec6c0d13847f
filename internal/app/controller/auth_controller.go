package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/akshayrj/portfolio-backend/internal/app/service"
	apperrors "github.com/akshayrj/portfolio-backend/internal/errors"
	"github.com/akshayrj/portfolio-backend/internal/middleware"
)

// sessionCookieMaxAge matches the token expiry of seven days.
const sessionCookieMaxAge = 7 * 24 * 60 * 60

type AuthController struct {
	authService  service.AuthService
	otpService   service.OTPService
	cookieSecure bool
}

func NewAuthController(authService service.AuthService, otpService service.OTPService, cookieSecure bool) *AuthController {
	return &AuthController{
		authService:  authService,
		otpService:   otpService,
		cookieSecure: cookieSecure,
	}
}

type RegisterRequest struct {
	Username      string `json:"username" binding:"required"`
	Email         string `json:"email" binding:"required,email"`
	Password      string `json:"password" binding:"required,min=6"`
	RegisterToken string `json:"register_token"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type SendOTPRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type VerifyOTPRequest struct {
	Email string `json:"email" binding:"required,email"`
	OTP   string `json:"otp" binding:"required"`
}

type ForgetPasswordRequest struct {
	NewPassword string `json:"new_password" binding:"required"`
}

// setAuthCookie starts the admin session in the browser.
func (ctrl *AuthController) setAuthCookie(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(middleware.SessionCookieName, token, sessionCookieMaxAge, "/", "", ctrl.cookieSecure, true)
}

// clearAuthCookie ends the session.
func (ctrl *AuthController) clearAuthCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(middleware.SessionCookieName, "", -1, "/", "", ctrl.cookieSecure, true)
}

// Register handles admin account creation
// POST /api/v1/auth/register
func (ctrl *AuthController) Register(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("Invalid registration request", map[string]interface{}{
			"error": err.Error(),
		})
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Username, email and a password of at least 6 characters are required")
		return
	}

	user, err := ctrl.authService.Register(req.Username, req.Email, req.Password, req.RegisterToken)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRegistrationDenied):
			apperrors.Forbidden(c, "Registration is not allowed")
		case errors.Is(err, service.ErrEmailAlreadyExists):
			apperrors.Conflict(c, apperrors.AuthEmailAlreadyExists, "Email is already registered")
		default:
			log.Error("Registration failed", err, map[string]interface{}{
				"email": req.Email,
			})
			apperrors.InternalError(c, "Failed to register")
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Admin registered successfully",
		"user": gin.H{
			"id":       user.ID,
			"username": user.Username,
			"email":    user.Email,
		},
	})
}

// Login verifies credentials and starts a cookie session
// POST /api/v1/auth/login
func (ctrl *AuthController) Login(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Email and password are required")
		return
	}

	_, token, err := ctrl.authService.Login(req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			apperrors.RespondWithError(c, http.StatusUnauthorized, apperrors.AuthInvalidCredentials, "User not found")
		case errors.Is(err, service.ErrInvalidPassword):
			apperrors.RespondWithError(c, http.StatusUnauthorized, apperrors.AuthInvalidCredentials, "Invalid password")
		default:
			log.Error("Login failed", err, map[string]interface{}{
				"email": req.Email,
			})
			apperrors.InternalError(c, "Failed to log in")
		}
		return
	}

	ctrl.setAuthCookie(c, token)
	c.JSON(http.StatusOK, gin.H{"message": "Logged in successfully"})
}

// Logout clears the session cookie
// POST /api/v1/auth/logout
func (ctrl *AuthController) Logout(c *gin.Context) {
	ctrl.clearAuthCookie(c)
	c.JSON(http.StatusOK, gin.H{"message": "Logged out successfully"})
}

// SendOTP emails a password-reset code to the admin
// POST /api/v1/auth/send-otp
func (ctrl *AuthController) SendOTP(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req SendOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Email is required")
		return
	}

	if err := ctrl.otpService.Request(req.Email); err != nil {
		switch {
		case errors.Is(err, service.ErrAdminNotFound):
			apperrors.NotFound(c, apperrors.ResourceNotFound, "Admin account not found")
		case errors.Is(err, service.ErrDeliveryFailed):
			apperrors.RespondWithError(c, http.StatusInternalServerError, apperrors.MailDeliveryFailed, "Failed to send OTP email")
		default:
			log.Error("OTP request failed", err, map[string]interface{}{
				"email": req.Email,
			})
			apperrors.InternalError(c, "Failed to send OTP")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "OTP sent successfully"})
}

// VerifyOTP checks the emailed code and starts a recovery session
// POST /api/v1/auth/verify-otp
func (ctrl *AuthController) VerifyOTP(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req VerifyOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Email and otp are required")
		return
	}

	user, err := ctrl.otpService.Verify(req.Email, req.OTP)
	if err != nil {
		if errors.Is(err, service.ErrOTPInvalid) {
			apperrors.BadRequest(c, apperrors.AuthOTPInvalid, "Invalid or expired OTP")
			return
		}
		log.Error("OTP verification failed", err, map[string]interface{}{
			"email": req.Email,
		})
		apperrors.InternalError(c, "Failed to verify OTP")
		return
	}

	token, err := ctrl.authService.SessionToken(user)
	if err != nil {
		log.Error("Failed to issue session after OTP verification", err, map[string]interface{}{
			"user_id": user.ID,
		})
		apperrors.InternalError(c, "Failed to verify OTP")
		return
	}

	ctrl.setAuthCookie(c, token)
	c.JSON(http.StatusOK, gin.H{"message": "OTP verified successfully"})
}

// ForgetPassword sets a new password for the logged-in admin
// POST /api/v1/auth/forget-password
func (ctrl *AuthController) ForgetPassword(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	userID, ok := middleware.GetUserID(c)
	if !ok {
		apperrors.Unauthorized(c, "Authentication required")
		return
	}

	var req ForgetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "New password is required")
		return
	}

	if err := ctrl.authService.ChangePassword(userID, req.NewPassword); err != nil {
		switch {
		case errors.Is(err, service.ErrPasswordTooShort):
			apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Password must be at least 6 characters")
		case errors.Is(err, service.ErrUserNotFound):
			apperrors.NotFound(c, apperrors.ResourceNotFound, "Admin account not found")
		default:
			log.Error("Password change failed", err, map[string]interface{}{
				"user_id": userID,
			})
			apperrors.InternalError(c, "Failed to change password")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Password changed successfully"})
}
