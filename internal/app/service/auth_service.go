package service

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/akshayrj/portfolio-backend/internal/app/model"
	"github.com/akshayrj/portfolio-backend/internal/app/repository"
	"github.com/akshayrj/portfolio-backend/pkg/logger"
	"github.com/akshayrj/portfolio-backend/pkg/util"
)

var (
	ErrUserNotFound       = errors.New("User not found")
	ErrInvalidPassword    = errors.New("Invalid password")
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrRegistrationDenied = errors.New("registration token is invalid")
	ErrPasswordTooShort   = errors.New("password must be at least 6 characters")
)

type AuthService interface {
	Register(username, email, password, registerToken string) (*model.User, error)
	Login(email, password string) (*model.User, string, error)
	SessionToken(user *model.User) (string, error)
	ChangePassword(userID uint, newPassword string) error
}

type authService struct {
	userRepo      repository.UserRepository
	jwtSecret     string
	tokenExpiry   time.Duration
	registerToken string
}

func NewAuthService(
	userRepo repository.UserRepository,
	jwtSecret string,
	tokenExpiry time.Duration,
	registerToken string,
) AuthService {
	return &authService{
		userRepo:      userRepo,
		jwtSecret:     jwtSecret,
		tokenExpiry:   tokenExpiry,
		registerToken: registerToken,
	}
}

// Register creates an admin account. Once any account exists, further
// registrations must present the configured register token.
func (s *authService) Register(username, email, password, registerToken string) (*model.User, error) {
	logger.Info("Attempting admin registration", map[string]interface{}{
		"email":    email,
		"username": username,
	})

	count, err := s.userRepo.Count()
	if err != nil {
		logger.Error("Failed to count users", err)
		return nil, err
	}
	if count > 0 && registerToken != s.registerToken {
		logger.Warn("Registration denied: bad register token", map[string]interface{}{
			"email": email,
		})
		return nil, ErrRegistrationDenied
	}

	existing, err := s.userRepo.FindByEmail(email)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		logger.Error("Failed to check existing user", err, map[string]interface{}{
			"email": email,
		})
		return nil, err
	}
	if existing != nil {
		logger.Warn("Registration failed: email already exists", map[string]interface{}{
			"email": email,
		})
		return nil, ErrEmailAlreadyExists
	}

	hashedPassword, err := util.HashPassword(password)
	if err != nil {
		logger.Error("Failed to hash password", err)
		return nil, err
	}

	user := &model.User{
		Username:     username,
		Email:        email,
		PasswordHash: hashedPassword,
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}

	logger.Info("Admin registered successfully", map[string]interface{}{
		"user_id": user.ID,
		"email":   email,
	})
	return user, nil
}

// Login verifies credentials and returns the user plus a signed session
// token. Missing account and wrong password are reported separately.
func (s *authService) Login(email, password string) (*model.User, string, error) {
	logger.Info("Login attempt", map[string]interface{}{
		"email": email,
	})

	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.Warn("Login failed: user not found", map[string]interface{}{
				"email": email,
			})
			return nil, "", ErrUserNotFound
		}
		logger.Error("Failed to look up user for login", err, map[string]interface{}{
			"email": email,
		})
		return nil, "", err
	}

	if err := util.VerifyPassword(user.PasswordHash, password); err != nil {
		logger.Warn("Login failed: invalid password", map[string]interface{}{
			"email": email,
		})
		return nil, "", ErrInvalidPassword
	}

	token, err := util.GenerateToken(user.ID, user.Email, s.jwtSecret, s.tokenExpiry)
	if err != nil {
		logger.Error("Failed to generate session token", err, map[string]interface{}{
			"user_id": user.ID,
		})
		return nil, "", err
	}

	logger.Info("Login successful", map[string]interface{}{
		"user_id": user.ID,
		"email":   email,
	})
	return user, token, nil
}

// SessionToken signs a session token for an already-authenticated
// user, used after OTP verification.
func (s *authService) SessionToken(user *model.User) (string, error) {
	return util.GenerateToken(user.ID, user.Email, s.jwtSecret, s.tokenExpiry)
}

// ChangePassword rehashes and persists a new password for the user.
func (s *authService) ChangePassword(userID uint, newPassword string) error {
	if len(newPassword) < 6 {
		return ErrPasswordTooShort
	}

	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		logger.Error("Failed to load user for password change", err, map[string]interface{}{
			"user_id": userID,
		})
		return err
	}

	hashedPassword, err := util.HashPassword(newPassword)
	if err != nil {
		logger.Error("Failed to hash new password", err)
		return err
	}

	user.PasswordHash = hashedPassword
	if err := s.userRepo.Update(user); err != nil {
		return err
	}

	logger.Info("Password changed", map[string]interface{}{
		"user_id": userID,
	})
	return nil
}
