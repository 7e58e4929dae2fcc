package middleware

import (
	"github.com/gin-gonic/gin"

	"travely/pkg/response"
)

// AdminOnly returns a middleware that rejects non-admin users. It must run
// after Auth, which places the admin flag on the context.
func AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !IsAdmin(c) {
			response.Forbidden(c, "admin access required")
			c.Abort()
			return
		}
		c.Next()
	}
}
