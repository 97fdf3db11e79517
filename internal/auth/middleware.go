package auth

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// SessionStore mirrors session.Store; declared here so auth does not
// import session (which imports auth for token generation).
type SessionStore interface {
	Activate(ctx context.Context) error
	Clear(ctx context.Context) error
	Active(ctx context.Context) (bool, error)
	Close() error
}

// Middleware gates protected routes on a valid session token AND the
// persisted session flag, so a logout takes effect immediately for
// every outstanding token.
func Middleware(secret string, sessions SessionStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || strings.TrimSpace(parts[0]) != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization header format"})
			c.Abort()
			return
		}

		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Token is empty"})
			c.Abort()
			return
		}

		claims, err := ValidateToken(tokenString, secret)
		if err != nil {
			if errors.Is(err, ErrTokenExpired) {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "Token expired"})
			} else {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or malformed token"})
			}
			c.Abort()
			return
		}

		active, err := sessions.Active(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check session"})
			c.Abort()
			return
		}
		if !active {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Session is logged out"})
			c.Abort()
			return
		}

		c.Set("session_email", claims.Email)

		c.Next()
	}
}

// SessionEmail returns the email the session was opened with.
func SessionEmail(c *gin.Context) (string, bool) {
	email, exists := c.Get("session_email")
	if !exists {
		return "", false
	}

	s, ok := email.(string)
	if !ok {
		return "", false
	}

	return s, true
}
