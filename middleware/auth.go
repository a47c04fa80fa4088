package middleware

import (
	"net/http"
	"strings"

	userRepo "tidify/database/repository/user"
	"tidify/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// JWTAuthMiddleware authenticates requests with a bearer token. The token
// must parse and its hash must match the session hash stored on the user
// row; Redis fronts that check and any cache failure falls back to the
// datastore. On success the username and role land in the gin context.
func JWTAuthMiddleware(users userRepo.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		authHeader := c.GetHeader("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}

		username, role, err := utils.ExtractClaimsFromToken(tokenString)
		if err != nil || username == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		computedHash := utils.HashToken(tokenString)
		cacheKey := utils.AuthCachePrefix + username

		if authCache := utils.GetAuthCacheClient(); authCache != nil {
			cachedHash, err := authCache.Get(ctx, cacheKey).Result()
			if err == nil {
				if cachedHash == computedHash {
					_ = authCache.Expire(ctx, cacheKey, utils.AuthCacheTTL).Err()
					c.Set("username", username)
					c.Set("role", role)
					c.Next()
					return
				}
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token mismatch"})
				return
			}
			if err != redis.Nil {
				zap.L().Warn("Auth cache lookup failed, falling back to datastore", zap.Error(err))
			}
		}

		// Cache miss: the user row holds the authoritative session hash.
		usr, err := users.GetByUsername(ctx, username)
		if err != nil || usr == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication error"})
			return
		}
		if usr.TokenHash == "" || usr.TokenHash != computedHash {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token mismatch"})
			return
		}

		utils.CacheAuthToken(ctx, username, computedHash)
		c.Set("username", usr.Username)
		c.Set("role", usr.Role)
		c.Next()
	}
}
