// Package middleware provides HTTP middleware for the API.
package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"travely/pkg/auth"
	"travely/pkg/response"
)

// Context keys for storing user data
const (
	UserIDKey  = "userID"
	IsAdminKey = "isAdmin"
)

// Auth returns a middleware that validates JWT tokens. The token is read from
// the Authorization header, falling back to the "token" cookie so browser
// clients redirected back from the OAuth flow stay signed in.
func Auth(jwtManager *auth.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := bearerToken(c)
		if tokenString == "" {
			if cookie, err := c.Cookie("token"); err == nil {
				tokenString = cookie
			}
		}
		if tokenString == "" {
			response.Unauthorized(c, "missing authorization header")
			c.Abort()
			return
		}

		claims, err := jwtManager.ValidateToken(tokenString)
		if err != nil {
			response.Unauthorized(c, "invalid or expired token")
			c.Abort()
			return
		}

		c.Set(UserIDKey, claims.UserID)
		c.Set(IsAdminKey, claims.IsAdmin)

		c.Next()
	}
}

// bearerToken extracts the token from a "Bearer <token>" Authorization header.
func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return ""
	}
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return ""
	}
	return parts[1]
}

// GetUserID retrieves the user ID from the context.
// Returns empty string if not found.
func GetUserID(c *gin.Context) string {
	userID, exists := c.Get(UserIDKey)
	if !exists {
		return ""
	}
	return userID.(string)
}

// IsAdmin reports whether the authenticated user has admin rights.
func IsAdmin(c *gin.Context) bool {
	isAdmin, exists := c.Get(IsAdminKey)
	if !exists {
		return false
	}
	return isAdmin.(bool)
}
