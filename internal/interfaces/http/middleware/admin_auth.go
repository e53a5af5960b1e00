package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"event-portal.backend/pkg/logger"
	"event-portal.backend/pkg/session"
	"event-portal.backend/pkg/token"
)

const (
	// SessionCookieName is the cookie carrying the admin session ID
	SessionCookieName = "admin_session"
	// AuthorizationHeader is the header key for bearer authorization
	AuthorizationHeader = "Authorization"
	// BearerPrefix is the prefix for bearer tokens
	BearerPrefix = "Bearer "
	// AdminUserKey is the context key for the authenticated admin username
	AdminUserKey = "adminUser"
	// LoginPath is where unauthenticated browser requests are sent
	LoginPath = "/admin_login"
)

// AdminAuth gates admin-only routes. Browser clients authenticate with the
// session cookie; scripted clients may send the bearer token issued at login.
// The gate fails closed: no valid session or token, no data.
func AdminAuth(sessions *session.Store, tokens *token.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		if authHeader := c.GetHeader(AuthorizationHeader); authHeader != "" {
			if !strings.HasPrefix(authHeader, BearerPrefix) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
					"error": "Invalid authorization format. Use: Bearer <token>",
				})
				return
			}

			claims, err := tokens.Validate(strings.TrimPrefix(authHeader, BearerPrefix))
			if err != nil || !claims.IsAdmin {
				logger.Warn(c.Request.Context(), "Rejected admin bearer token", zap.Error(err))
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
					"error": "Invalid token",
				})
				return
			}

			c.Set(AdminUserKey, claims.Username)
			c.Next()
			return
		}

		sid, err := c.Cookie(SessionCookieName)
		if err != nil || sid == "" {
			redirectToLogin(c)
			return
		}

		data, err := sessions.Get(c.Request.Context(), sid)
		if err != nil || !data.IsAdmin {
			if err != nil && err != session.ErrNoSession {
				logger.Warn(c.Request.Context(), "Session lookup failed", zap.Error(err))
			}
			redirectToLogin(c)
			return
		}

		c.Set(AdminUserKey, data.Username)
		c.Next()
	}
}

// GetAdminUser gets the authenticated admin username from context
func GetAdminUser(c *gin.Context) (string, bool) {
	user, exists := c.Get(AdminUserKey)
	if !exists {
		return "", false
	}
	return user.(string), true
}

func redirectToLogin(c *gin.Context) {
	c.Redirect(http.StatusFound, LoginPath)
	c.Abort()
}
