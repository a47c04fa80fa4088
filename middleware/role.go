package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RequireRoles restricts a route to the given roles. It must run after
// JWTAuthMiddleware, which stores the authenticated role in the context.
func RequireRoles(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString("role")
		for _, allowed := range roles {
			if role == allowed {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Insufficient permissions"})
	}
}
