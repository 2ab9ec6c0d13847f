package middleware

import (
	"github.com/akshayrj/portfolio-backend/internal/errors"
	"github.com/akshayrj/portfolio-backend/pkg/util"
	"github.com/gin-gonic/gin"
)

// SessionCookieName is the cookie carrying the admin session token.
const SessionCookieName = "adminToken"

// Context keys for the authenticated admin.
const (
	UserIDKey    = "user_id"
	UserEmailKey = "user_email"
)

type AuthMiddleware struct {
	jwtSecret string
}

func NewAuthMiddleware(jwtSecret string) *AuthMiddleware {
	return &AuthMiddleware{
		jwtSecret: jwtSecret,
	}
}

// Authenticate validates the admin session cookie. Every failure mode
// (missing cookie, bad token, expired token) gets the same 401 so the
// response does not leak which check failed.
func (m *AuthMiddleware) Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		log := GetLoggerFromContext(c)

		token, err := c.Cookie(SessionCookieName)
		if err != nil || token == "" {
			log.Warn("Missing session cookie", map[string]interface{}{
				"path": c.Request.URL.Path,
			})
			errors.Unauthorized(c, "Authentication required")
			c.Abort()
			return
		}

		claims, err := util.ValidateToken(token, m.jwtSecret)
		if err != nil {
			log.Warn("Session token validation failed", map[string]interface{}{
				"path":  c.Request.URL.Path,
				"error": err.Error(),
			})
			errors.Unauthorized(c, "Authentication required")
			c.Abort()
			return
		}

		c.Set(UserIDKey, claims.UserID)
		c.Set(UserEmailKey, claims.Email)

		log.Debug("Admin authenticated", map[string]interface{}{
			"user_id": claims.UserID,
			"path":    c.Request.URL.Path,
		})

		c.Next()
	}
}

// GetUserID returns the authenticated admin's id from the context.
func GetUserID(c *gin.Context) (uint, bool) {
	value, exists := c.Get(UserIDKey)
	if !exists {
		return 0, false
	}
	id, ok := value.(uint)
	return id, ok
}
