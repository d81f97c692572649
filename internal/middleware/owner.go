package middleware

import (
	"net/http" // HTTP status codes
	"strconv"  // String conversion

	"github.com/gin-gonic/gin" // Gin web framework
)

func reject(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, gin.H{"error": gin.H{
		"message": message,
		"status":  status,
	}})
}

// EnsureCorrectUser only lets a request through when the token's user id
// matches the :id route parameter, or the token marks an admin. Runs
// after JWTAuthMiddleware, which puts the claims in the context.
func EnsureCorrectUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := c.Get("userID")
		if !exists {
			reject(c, http.StatusUnauthorized, "Unauthorized")
			return
		}
		if c.GetBool("isAdmin") {
			c.Next()
			return
		}
		routeID, err := strconv.ParseUint(c.Param("id"), 10, 32)
		if err != nil || uint(routeID) != userID.(uint) {
			reject(c, http.StatusUnauthorized, "Unauthorized")
			return
		}
		c.Next()
	}
}

// AdminOnly restricts a route to tokens carrying the admin flag.
func AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !c.GetBool("isAdmin") {
			reject(c, http.StatusUnauthorized, "Unauthorized")
			return
		}
		c.Next()
	}
}
