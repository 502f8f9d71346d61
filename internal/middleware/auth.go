package middleware

import (
	"errors"
	"net/http"

	"github.com/brycehall/stache/internal/constants"
	weberrors "github.com/brycehall/stache/internal/errors"
	"github.com/brycehall/stache/internal/services"
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// RequireAuth gates protected pages. Requests without a session are
// redirected to the login page; the contract is a 302, never a 401/403.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		userID := session.Get(constants.ContextKeyUserID)

		if userID == nil {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}

		// Store user ID in context for easy access in handlers
		c.Set(constants.ContextKeyUserID, userID)
		c.Next()
	}
}

// LoadCurrentUser resolves the session user so templates can show who
// is logged in. A session pointing at a deleted account is cleared and
// sent back to login.
func LoadCurrentUser(authService *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := GetUserID(c)
		if !exists {
			c.Next()
			return
		}

		user, err := authService.GetUser(userID)
		if err != nil {
			if errors.Is(err, services.ErrUserNotFound) {
				session := sessions.Default(c)
				session.Clear()
				_ = session.Save()
				c.Redirect(http.StatusFound, "/login")
				c.Abort()
				return
			}
			weberrors.Internal(c, gin.H{})
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyCurrentUser, user)
		c.Next()
	}
}

// GetUserID retrieves the current user ID from context
func GetUserID(c *gin.Context) (uint64, bool) {
	userID, exists := c.Get(constants.ContextKeyUserID)
	if !exists {
		return 0, false
	}

	switch v := userID.(type) {
	case uint64:
		return v, true
	case uint:
		return uint64(v), true
	case int:
		if v < 0 {
			return 0, false
		}
		return uint64(v), true
	default:
		return 0, false
	}
}
