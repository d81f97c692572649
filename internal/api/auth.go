package api

import (
	"net/http" // HTTP status codes
	"regexp"   // Regular expressions

	"mealplanner/internal/model"
	"mealplanner/internal/utils" // Utility functions

	"github.com/gin-gonic/gin" // Gin web framework
	"gorm.io/gorm"             // GORM ORM library
)

// Request and Response structs
type RegisterRequest struct {
	Username string `json:"username" binding:"required"` // Username must be provided
	Password string `json:"password" binding:"required"` // Password must be provided
}

// Request struct for login
type LoginRequest struct {
	Username string `json:"username" binding:"required"` // Username must be provided
	Password string `json:"password" binding:"required"` // Password must be provided
}

// Response struct for authentication
type AuthResponse struct {
	Token string `json:"token"` // JWT token
}

var usernameRe = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9]{0,29}$`)

// isValidUsername checks that the username starts with a letter and is
// alphanumeric, at most 30 characters
func isValidUsername(username string) bool {
	return usernameRe.MatchString(username)
}

// isValidPassword checks that the password is at least 5 characters
func isValidPassword(password string) bool {
	return len(password) >= 5
}

// RegisterHandler creates a new user and returns a token for it
func RegisterHandler(db *gorm.DB, jwtSecret string) gin.HandlerFunc {
	users := model.NewUserModel(db)
	return func(c *gin.Context) {
		var req RegisterRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{
				"message": "Invalid request",
				"status":  http.StatusBadRequest,
			}})
			return
		}
		if !isValidUsername(req.Username) {
			c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{
				"message": "Username must be alphanumeric and start with a letter",
				"status":  http.StatusBadRequest,
			}})
			return
		}
		if !isValidPassword(req.Password) {
			c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{
				"message": "Password must be at least 5 characters",
				"status":  http.StatusBadRequest,
			}})
			return
		}

		user, err := users.Register(req.Username, req.Password)
		if err != nil {
			respondErr(c, err)
			return
		}
		token, err := utils.GenerateJWT(user.ID, user.Username, user.IsAdmin, jwtSecret)
		if err != nil {
			respondErr(c, err)
			return
		}
		c.JSON(http.StatusCreated, AuthResponse{Token: token})
	}
}

// LoginHandler authenticates a user and returns a JWT token
func LoginHandler(db *gorm.DB, jwtSecret string) gin.HandlerFunc {
	users := model.NewUserModel(db)
	return func(c *gin.Context) {
		var req LoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{
				"message": "Invalid request",
				"status":  http.StatusBadRequest,
			}})
			return
		}
		user, err := users.Authenticate(req.Username, req.Password)
		if err != nil {
			respondErr(c, err)
			return
		}
		token, err := utils.GenerateJWT(user.ID, user.Username, user.IsAdmin, jwtSecret)
		if err != nil {
			respondErr(c, err)
			return
		}
		c.JSON(http.StatusOK, AuthResponse{Token: token})
	}
}
