// internal/middleware/auth.go
package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/trustpulse/pulse-backend/internal/state"
	"github.com/trustpulse/pulse-backend/internal/utils"
)

// SessionRequired resolves the Bearer token into its in-memory session and
// aborts when there is none. A valid token whose state was swept gets a
// fresh session; the client does not need to log in again.
func SessionRequired(store *state.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := parseSessionToken(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Sign in to continue",
			})
			c.Abort()
			return
		}

		sess := store.GetOrCreate(claims.SessionID)
		c.Set("session", sess)
		c.Set("claims", claims)
		c.Next()
	}
}

// OptionalSession resolves the session when a valid token is present and
// continues anonymously otherwise.
func OptionalSession(store *state.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := parseSessionToken(c)
		if ok {
			sess := store.GetOrCreate(claims.SessionID)
			c.Set("session", sess)
			c.Set("claims", claims)
		}
		c.Next()
	}
}

func parseSessionToken(c *gin.Context) (*utils.SessionClaims, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return nil, false
	}

	// Extract token from "Bearer <token>"
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return nil, false
	}

	claims, err := utils.ValidateSessionToken(parts[1])
	if err != nil {
		return nil, false
	}
	return claims, true
}

// GetSession returns the session bound by SessionRequired/OptionalSession.
func GetSession(c *gin.Context) (*state.Session, bool) {
	if v, exists := c.Get("session"); exists {
		if sess, ok := v.(*state.Session); ok {
			return sess, true
		}
	}
	return nil, false
}

func GetClaims(c *gin.Context) (*utils.SessionClaims, bool) {
	if v, exists := c.Get("claims"); exists {
		if claims, ok := v.(*utils.SessionClaims); ok {
			return claims, true
		}
	}
	return nil, false
}
