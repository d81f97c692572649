package middleware

import (
	"net/http" // HTTP status codes
	"strings"  // String manipulation

	"mealplanner/internal/utils" // JWT utility functions

	"github.com/gin-gonic/gin" // Gin web framework
)

// JWTAuthMiddleware validates JWT tokens and extracts user information
func JWTAuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization") // Get Authorization header
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{
				"message": "Missing or invalid Authorization header",
				"status":  http.StatusUnauthorized,
			}})
			return
		}
		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := utils.ParseJWT(tokenStr, secret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{
				"message": "Invalid or expired token",
				"status":  http.StatusUnauthorized,
			}})
			return
		}
		c.Set("userID", claims.UserID)   // Store userID in context
		c.Set("username", claims.Username)
		c.Set("isAdmin", claims.IsAdmin) // Admin flag drives the owner guard
		c.Next()
	}
}
