package middleware

import (
	"cucharon/internal/auth"
	"cucharon/internal/resp"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware admits only requests carrying a live admin session.
func AuthMiddleware(sessions auth.SessionStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := auth.BearerToken(c.GetHeader("Authorization"))
		if !ok {
			resp.Unauthorized(c, "Authorization required")
			return
		}

		if err := sessions.Validate(c.Request.Context(), token); err != nil {
			resp.Unauthorized(c, "Invalid or expired token")
			return
		}

		// Attach session to request context
		c.Set("sessionToken", token)
		c.Next()
	}
}
