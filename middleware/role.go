// File: middleware/role.go
package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RequireRole gates a route group to the given roles. Must run after
// JWTAuthMiddleware has set "role".
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString("role")
		for _, allowed := range roles {
			if role == allowed {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
			"message": "Access denied for role " + role,
		})
	}
}
