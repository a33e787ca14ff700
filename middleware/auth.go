// File: middleware/auth.go
package middleware

import (
	"context"
	"net/http"
	"strings"
	"time"

	"campuscare/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const authCacheTTL = time.Hour

// JWTAuthMiddleware verifies the Bearer token and places the caller's
// identity into the request context as "userID" and "role". Verified tokens
// are cached by hash in the dedicated Redis auth DB so repeat requests skip
// signature validation; a cache outage degrades to local validation.
func JWTAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
			return
		}

		ctx := context.Background()
		cacheKey := utils.AuthCachePrefix + utils.HashToken(tokenString)

		authCache := utils.GetAuthCacheClient()
		cacheEnabled := authCache != nil

		if cacheEnabled {
			cached, err := authCache.Get(ctx, cacheKey).Result()
			if err == nil {
				if userID, role, ok := strings.Cut(cached, ":"); ok {
					_ = authCache.Expire(ctx, cacheKey, authCacheTTL).Err()
					c.Set("userID", userID)
					c.Set("role", role)
					c.Next()
					return
				}
			} else if err != redis.Nil {
				utils.GetLogger().Warn("auth cache lookup failed, validating locally", zap.Error(err))
			}
		}

		userID, role, err := utils.ExtractIdentityFromToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
			return
		}

		if cacheEnabled {
			_ = authCache.Set(ctx, cacheKey, userID+":"+role, authCacheTTL).Err()
		}

		c.Set("userID", userID)
		c.Set("role", role)
		c.Next()
	}
}
